//go:build !unix

package fileutil

import "os"

// flock is a no-op on platforms without flock semantics; the atomic
// rename in WriteFileAtomic still prevents torn writes there.
func flock(_ *os.File) error { return nil }

// funlock matches flock on non-unix platforms.
func funlock(_ *os.File) error { return nil }
