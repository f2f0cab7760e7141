package store

import (
	"fmt"

	"github.com/gofrs/flock"
)

// A Lock is an advisory whole-file lock over a database directory.
// Writers hold it exclusively; readers share it. The OS drops the lock
// if the process dies without releasing it.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock locks the file at path, creating it if absent. Exclusive
// acquisition blocks until every other holder releases; shared acquisition
// blocks only on an exclusive holder.
func AcquireLock(path string, exclusive bool) (*Lock, error) {
	fl := flock.New(path)
	var err error
	if exclusive {
		err = fl.Lock()
	} else {
		err = fl.RLock()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	return &Lock{fl: fl}, nil
}

// TryAcquireLock is the non-blocking variant; ok is false when the lock is
// held in a conflicting mode by someone else.
func TryAcquireLock(path string, exclusive bool) (lock *Lock, ok bool, err error) {
	fl := flock.New(path)
	if exclusive {
		ok, err = fl.TryLock()
	} else {
		ok, err = fl.TryRLock()
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !ok {
		return nil, false, nil
	}
	return &Lock{fl: fl}, true, nil
}

// Release unlocks and closes the lock file.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
