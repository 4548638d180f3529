// Package applock prevents two monitor processes from racing on the same
// clipboard. It takes a non-blocking flock on a per-user file in the temp
// directory; the lock dies with the process, so a crashed monitor never
// leaves a stale lock behind.
package applock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning reports that another monitor holds the lock.
var ErrAlreadyRunning = errors.New("another copyhist monitor is already running")

// Lock is a held single-instance lock.
type Lock struct {
	fl *flock.Flock
}

// Path returns the per-user lock file path.
func Path() string {
	user := os.Getenv("USER")
	if user == "" {
		user = "default"
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("copyhist_%s.lock", user))
}

// Acquire takes the single-instance lock, failing immediately with
// ErrAlreadyRunning if another process holds it.
func Acquire() (*Lock, error) {
	fl := flock.New(Path())
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("applock: %s: %w", Path(), err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe to call once on shutdown.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
