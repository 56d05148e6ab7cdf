package device

import (
	"fmt"
	"strings"

	"vol/internal/volume"
)

// WriteFailure records one level that could not be written.
type WriteFailure struct {
	Key volume.Key
	Err error
}

func (f WriteFailure) String() string {
	name := "master"
	if !f.Key.Master {
		name = fmt.Sprintf("channel %d", f.Key.Index)
	}
	return fmt.Sprintf("%s: %v", name, f.Err)
}

// ApplyError reports the levels a batch commit failed to write. The command
// fails overall even when other levels were written successfully.
type ApplyError struct {
	Failures []WriteFailure
}

func (e *ApplyError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.String()
	}
	return "failed to set " + strings.Join(parts, "; ")
}

// Apply writes every resolved level to the endpoint as one batch: master
// first, then channels in ascending index order. Each entry is written
// exactly once; a failed write does not stop the batch, and all failures are
// reported together.
func Apply(ep Endpoint, resolved volume.Resolved) error {
	var failures []WriteFailure
	for _, key := range resolved.Keys() {
		pct := resolved[key]
		var err error
		if key.Master {
			err = ep.SetMaster(pct)
		} else {
			err = ep.SetChannel(key.Index, pct)
		}
		if err != nil {
			failures = append(failures, WriteFailure{Key: key, Err: err})
		}
	}
	if len(failures) > 0 {
		return &ApplyError{Failures: failures}
	}
	return nil
}
