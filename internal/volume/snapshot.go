package volume

import "fmt"

// Snapshot is a point-in-time read of one endpoint's levels, captured once
// per command and never mutated. All reference resolution happens against a
// Snapshot, so the order of tokens within a command cannot influence what a
// reference sees.
type Snapshot struct {
	Master   float64
	Channels []float64
}

// ResolutionError reports a target or reference whose channel index does not
// exist on the opened endpoint.
type ResolutionError struct {
	Selector Selector
	Channels int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s is out of range: the device only has %d channels", e.Selector, e.Channels)
}

// Level returns the snapshot level for sel. All is not a readable source and
// out-of-range channel indexes yield a ResolutionError.
func (s Snapshot) Level(sel Selector) (float64, error) {
	switch sel.Kind {
	case SelectMaster:
		return s.Master, nil
	case SelectChannel:
		if sel.Index >= len(s.Channels) {
			return 0, &ResolutionError{Selector: sel, Channels: len(s.Channels)}
		}
		return s.Channels[sel.Index], nil
	default:
		return 0, fmt.Errorf("%s cannot be read as a reference", sel)
	}
}
