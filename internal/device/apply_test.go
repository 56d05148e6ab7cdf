package device_test

import (
	"errors"
	"strings"
	"testing"

	"vol/internal/device"
	"vol/internal/testsupport"
	"vol/internal/volume"
)

func TestApplyWritesMasterFirstThenChannels(t *testing.T) {
	ep := testsupport.NewStereoEndpoint("dev-1", "Speakers", 50, 20, 80)
	resolved := volume.Resolved{
		volume.ChannelKey(1): 10,
		volume.MasterKey():   40,
		volume.ChannelKey(0): 30,
	}
	if err := device.Apply(ep, resolved); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := []string{"master=40", "ch0=30", "ch1=10"}
	if len(ep.Writes) != len(want) {
		t.Fatalf("writes = %v, want %v", ep.Writes, want)
	}
	for i := range want {
		if ep.Writes[i] != want[i] {
			t.Fatalf("writes = %v, want %v", ep.Writes, want)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	ep := testsupport.NewStereoEndpoint("dev-1", "Speakers", 50, 20, 80)
	resolved := volume.Resolved{volume.MasterKey(): 40, volume.ChannelKey(0): 30}
	for i := 0; i < 2; i++ {
		if err := device.Apply(ep, resolved); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	if ep.Master != 40 || ep.Levels[0] != 30 || ep.Levels[1] != 80 {
		t.Fatalf("unexpected final state: master=%v levels=%v", ep.Master, ep.Levels)
	}
}

func TestApplyCollectsAllFailures(t *testing.T) {
	ep := testsupport.NewStereoEndpoint("dev-1", "Speakers", 50, 20, 80)
	ep.FailMaster = errors.New("master write rejected")
	ep.FailChannel = map[int]error{1: errors.New("channel 1 write rejected")}

	resolved := volume.Resolved{
		volume.MasterKey():   40,
		volume.ChannelKey(0): 30,
		volume.ChannelKey(1): 10,
	}
	err := device.Apply(ep, resolved)
	var aerr *device.ApplyError
	if !errors.As(err, &aerr) {
		t.Fatalf("got %v, want ApplyError", err)
	}
	if len(aerr.Failures) != 2 {
		t.Fatalf("failures = %+v, want 2 entries", aerr.Failures)
	}
	// Channel 0 must still have been written despite the other failures.
	if ep.Levels[0] != 30 {
		t.Fatalf("channel 0 = %v, want 30", ep.Levels[0])
	}
	msg := err.Error()
	if !strings.Contains(msg, "master") || !strings.Contains(msg, "channel 1") {
		t.Fatalf("error message missing failed levels: %q", msg)
	}
}

func TestSelectByIDThenName(t *testing.T) {
	backend := &testsupport.FakeBackend{Endpoints: []*testsupport.FakeEndpoint{
		testsupport.NewStereoEndpoint("dev-1", "Speakers", 50, 50, 50),
		{Desc: device.Info{ID: "dev-2", Name: "Headphones", State: device.StateActive}, Levels: []float64{10, 10}},
	}}

	tests := []struct {
		selector string
		wantID   string
	}{
		{"", "dev-1"}, // default endpoint
		{"dev-2", "dev-2"},
		{"headphones", "dev-2"}, // friendly name, case-insensitive
		{"Speakers", "dev-1"},
	}
	for _, tt := range tests {
		ep, err := device.Select(backend, tt.selector)
		if err != nil {
			t.Errorf("Select(%q): %v", tt.selector, err)
			continue
		}
		if got := ep.Info().ID; got != tt.wantID {
			t.Errorf("Select(%q) = %s, want %s", tt.selector, got, tt.wantID)
		}
	}
}

func TestSelectUnknownDevice(t *testing.T) {
	backend := &testsupport.FakeBackend{Endpoints: []*testsupport.FakeEndpoint{
		testsupport.NewStereoEndpoint("dev-1", "Speakers", 50, 50, 50),
	}}
	_, err := device.Select(backend, "no such device")
	if !errors.Is(err, device.ErrDeviceNotFound) {
		t.Fatalf("got %v, want ErrDeviceNotFound", err)
	}
}

func TestSortByName(t *testing.T) {
	infos := []device.Info{
		{ID: "3", Name: "speakers"},
		{ID: "1", Name: "Headphones"},
		{ID: "2", Name: "HDMI Output"},
	}
	device.SortByName(infos)
	want := []string{"2", "1", "3"}
	for i, id := range want {
		if infos[i].ID != id {
			t.Fatalf("order = %+v, want ids %v", infos, want)
		}
	}
}

func TestSystemBackendReportsUnsupported(t *testing.T) {
	backend := device.System()
	if _, err := backend.Default(); !errors.Is(err, device.ErrNoBackend) {
		t.Fatalf("got %v, want ErrNoBackend", err)
	}
	if _, err := backend.List(); !errors.Is(err, device.ErrNoBackend) {
		t.Fatalf("got %v, want ErrNoBackend", err)
	}
}
