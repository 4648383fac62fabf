// Package fileutil provides the write-safety primitives for the per-brand
// master store: atomic write-to-temp-then-rename and an advisory file lock
// held across a load-reconcile-save sequence.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/RolandGoud/bikescaper/pkg/constants"
	"github.com/RolandGoud/bikescaper/pkg/errors"
)

// WriteFileAtomic writes data to path by writing a temporary file in the
// same directory and renaming it into place. A reader never observes a
// partially written file, and a failed run leaves the previous contents
// untouched.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("sync", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("close", tmpName, err)
	}

	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("chmod", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// CopyFile copies src to dst, creating parent directories as needed.
// Used to retain historical copies of current snapshots.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.WrapIO("read", src, err)
	}
	return WriteFileAtomic(dst, data)
}
