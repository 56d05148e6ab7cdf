// Package testsupport provides an in-memory audio backend for tests.
package testsupport

import (
	"fmt"

	"vol/internal/device"
	"vol/internal/volume"
)

// FakeEndpoint is an in-memory device.Endpoint that records every write.
type FakeEndpoint struct {
	Desc   device.Info
	Master float64
	Levels []float64

	// FailMaster and FailChannel make the corresponding writes fail.
	FailMaster  error
	FailChannel map[int]error

	// Writes lists every committed write in order, e.g. "master=40" or
	// "ch1=75". Failed writes are not recorded.
	Writes []string
	Closed bool
}

// NewStereoEndpoint builds a two-channel fake with the given levels.
func NewStereoEndpoint(id, name string, master, left, right float64) *FakeEndpoint {
	return &FakeEndpoint{
		Desc:   device.Info{ID: id, Name: name, Default: true, State: device.StateActive},
		Master: master,
		Levels: []float64{left, right},
	}
}

func (f *FakeEndpoint) Info() device.Info { return f.Desc }

func (f *FakeEndpoint) Channels() int { return len(f.Levels) }

func (f *FakeEndpoint) Snapshot() (volume.Snapshot, error) {
	channels := make([]float64, len(f.Levels))
	copy(channels, f.Levels)
	return volume.Snapshot{Master: f.Master, Channels: channels}, nil
}

func (f *FakeEndpoint) SetMaster(pct float64) error {
	if f.FailMaster != nil {
		return f.FailMaster
	}
	f.Master = pct
	f.Writes = append(f.Writes, fmt.Sprintf("master=%g", pct))
	return nil
}

func (f *FakeEndpoint) SetChannel(index int, pct float64) error {
	if err := f.FailChannel[index]; err != nil {
		return err
	}
	if index < 0 || index >= len(f.Levels) {
		return fmt.Errorf("channel %d out of range", index)
	}
	f.Levels[index] = pct
	f.Writes = append(f.Writes, fmt.Sprintf("ch%d=%g", index, pct))
	return nil
}

func (f *FakeEndpoint) Close() error {
	f.Closed = true
	return nil
}

// FakeBackend serves a fixed set of fake endpoints.
type FakeBackend struct {
	Endpoints []*FakeEndpoint
	ListErr   error
}

func (b *FakeBackend) List() ([]device.Info, error) {
	if b.ListErr != nil {
		return nil, b.ListErr
	}
	infos := make([]device.Info, len(b.Endpoints))
	for i, ep := range b.Endpoints {
		infos[i] = ep.Desc
	}
	return infos, nil
}

func (b *FakeBackend) Default() (device.Endpoint, error) {
	for _, ep := range b.Endpoints {
		if ep.Desc.Default {
			return ep, nil
		}
	}
	return nil, fmt.Errorf("%w: no default output endpoint", device.ErrDeviceNotFound)
}

func (b *FakeBackend) Open(id string) (device.Endpoint, error) {
	for _, ep := range b.Endpoints {
		if ep.Desc.ID == id {
			return ep, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", device.ErrDeviceNotFound, id)
}
