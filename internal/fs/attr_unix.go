//go:build !windows
// +build !windows

package fs

import "os"

// attributes derives the portable attribute set from the file mode.
// Unix has no hidden/system/archive bits; only the read-only flag
// carries over.
func attributes(_ string, fi os.FileInfo) Attributes {
	return Attributes{
		ReadOnly: fi.Mode().Perm()&0200 == 0,
	}
}
