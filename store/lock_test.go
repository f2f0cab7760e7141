package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLockExclusiveExcludesExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	l, err := AcquireLock(path, true)
	require.NoError(t, err)

	_, ok, err := TryAcquireLock(path, true)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, l.Release())

	l2, ok, err := TryAcquireLock(path, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, l2.Release())
}

func TestLockSharedAllowsSharers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	r1, err := AcquireLock(path, false)
	require.NoError(t, err)
	r2, ok, err := TryAcquireLock(path, false)
	require.NoError(t, err)
	require.True(t, ok)

	// a writer is kept out while readers hold the lock
	_, ok, err = TryAcquireLock(path, true)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, r1.Release())
	require.NoError(t, r2.Release())
}

func TestLockWriterBlocksReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	w, err := AcquireLock(path, true)
	require.NoError(t, err)

	_, ok, err := TryAcquireLock(path, false)
	require.NoError(t, err)
	require.False(t, ok)

	// a blocked writer gets through once the holder releases
	var g errgroup.Group
	acquired := make(chan struct{})
	g.Go(func() error {
		l, err := AcquireLock(path, true)
		if err != nil {
			return err
		}
		close(acquired)
		return l.Release()
	})
	time.Sleep(50 * time.Millisecond)
	select {
	case <-acquired:
		t.Fatal("second writer acquired the lock while it was held")
	default:
	}
	require.NoError(t, w.Release())
	require.NoError(t, g.Wait())
}
