package fileutil

import (
	"os"
	"path/filepath"

	"github.com/RolandGoud/bikescaper/pkg/constants"
	"github.com/RolandGoud/bikescaper/pkg/errors"
)

// Lock is an advisory exclusive lock on a per-brand master store. The
// master store format assumes a single writer; the lock makes that
// assumption explicit so two concurrent invocations against the same
// brand cannot race a read-modify-write.
type Lock struct {
	path string
	file *os.File
}

// AcquireLock takes an exclusive advisory lock on the lock file for the
// given master store path. It returns ErrLocked (wrapped) without
// blocking when another process holds the lock.
func AcquireLock(masterPath string) (*Lock, error) {
	lockPath := masterPath + ".lock"
	dir := filepath.Dir(lockPath)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, constants.FilePermissions)
	if err != nil {
		return nil, errors.WrapIO("open", lockPath, err)
	}

	if err := flock(f); err != nil {
		f.Close()
		return nil, &errors.IOError{
			Operation: "lock",
			Path:      lockPath,
			Message:   "already held by another process",
			Err:       errors.ErrLocked,
		}
	}

	return &Lock{path: lockPath, file: f}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := funlock(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if err != nil {
		return errors.WrapIO("unlock", l.path, err)
	}
	if closeErr != nil {
		return errors.WrapIO("close", l.path, closeErr)
	}
	return nil
}
