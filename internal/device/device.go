package device

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"vol/internal/volume"
)

var (
	// ErrDeviceNotFound indicates the requested endpoint does not exist
	// or no default output endpoint is available.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrNoBackend indicates no platform audio backend is available.
	ErrNoBackend = errors.New("no audio backend available")
)

// State describes an endpoint's availability.
type State int

const (
	StateActive State = iota
	StateDisabled
	StateUnplugged
	StateNotPresent
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDisabled:
		return "disabled"
	case StateUnplugged:
		return "unplugged"
	case StateNotPresent:
		return "not present"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Info describes one enumerable audio output endpoint.
type Info struct {
	ID      string
	Name    string
	Default bool
	State   State
}

// Backend is the platform audio layer: endpoint enumeration and opening.
type Backend interface {
	// List enumerates the output endpoints visible to the backend.
	List() ([]Info, error)
	// Default opens the system default output endpoint.
	Default() (Endpoint, error)
	// Open opens the endpoint with the given backend id.
	Open(id string) (Endpoint, error)
}

// Endpoint is one opened audio output device. Levels are percentages in
// [0, 100]; the backend converts to and from the device scalar.
type Endpoint interface {
	Info() Info
	Channels() int
	Snapshot() (volume.Snapshot, error)
	SetMaster(pct float64) error
	SetChannel(index int, pct float64) error
	Close() error
}

// Select opens the endpoint named by selector, which may be a backend id or
// a friendly name (matched case-insensitively). An empty selector opens the
// default endpoint.
func Select(backend Backend, selector string) (Endpoint, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return backend.Default()
	}

	infos, err := backend.List()
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	for _, info := range infos {
		if info.ID == selector {
			return backend.Open(info.ID)
		}
	}
	for _, info := range infos {
		if strings.EqualFold(info.Name, selector) {
			return backend.Open(info.ID)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, selector)
}

// SortByName orders endpoint infos by friendly name using a locale-aware,
// case-insensitive collation, with the id as tie-break. List output depends
// on this being stable between invocations.
func SortByName(infos []Info) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(infos, func(i, j int) bool {
		if by := c.CompareString(infos[i].Name, infos[j].Name); by != 0 {
			return by < 0
		}
		return infos[i].ID < infos[j].ID
	})
}
