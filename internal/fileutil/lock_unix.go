//go:build unix

package fileutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// flock takes a non-blocking exclusive lock on the open file.
func flock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

// funlock releases the lock.
func funlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
