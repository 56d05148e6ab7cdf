package device

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// CommitLock serialises the snapshot-read-to-batch-write window across
// concurrent invocations, so two commands cannot interleave their
// capture-then-commit cycles against the same audio subsystem.
type CommitLock struct {
	lock *flock.Flock
}

// NewCommitLock creates the advisory lock file in dir. An empty dir means
// the user cache directory, falling back to the system temp directory.
func NewCommitLock(dir string) (*CommitLock, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		dir = filepath.Join(base, "vol")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	return &CommitLock{lock: flock.New(filepath.Join(dir, "commit.lock"))}, nil
}

// Acquire blocks until the lock is held.
func (l *CommitLock) Acquire() error {
	if err := l.lock.Lock(); err != nil {
		return fmt.Errorf("acquire commit lock %s: %w", l.lock.Path(), err)
	}
	return nil
}

// Release drops the lock. Safe to call after a failed Acquire.
func (l *CommitLock) Release() {
	_ = l.lock.Unlock()
}
