package volume

import "testing"

func TestSilences(t *testing.T) {
	tests := []struct {
		name     string
		snap     Snapshot
		resolved Resolved
		want     bool
	}{
		{
			name:     "master to zero silences",
			snap:     stereo(50, 50, 50),
			resolved: Resolved{MasterKey(): 0, ChannelKey(0): 0, ChannelKey(1): 0},
			want:     true,
		},
		{
			name:     "one channel stays audible",
			snap:     stereo(50, 50, 50),
			resolved: Resolved{MasterKey(): 0, ChannelKey(0): 0},
			want:     false,
		},
		{
			name:     "already silent endpoint is untouched by the guard",
			snap:     stereo(0, 0, 0),
			resolved: Resolved{MasterKey(): 0, ChannelKey(0): 0, ChannelKey(1): 0},
			want:     false,
		},
		{
			name:     "raising levels never silences",
			snap:     stereo(50, 50, 50),
			resolved: Resolved{MasterKey(): 80},
			want:     false,
		},
		{
			name:     "just below the floor counts as silent",
			snap:     stereo(50, 50, 50),
			resolved: Resolved{MasterKey(): 4, ChannelKey(0): 4, ChannelKey(1): 4},
			want:     true,
		},
		{
			name:     "exactly at the floor stays audible",
			snap:     stereo(50, 50, 50),
			resolved: Resolved{MasterKey(): 5, ChannelKey(0): 5, ChannelKey(1): 5},
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Silences(tt.snap, tt.resolved); got != tt.want {
				t.Fatalf("Silences = %v, want %v", got, tt.want)
			}
		})
	}
}
