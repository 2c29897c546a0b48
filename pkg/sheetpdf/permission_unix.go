//go:build unix

package sheetpdf

import "golang.org/x/sys/unix"

// Check uses access(2); directories additionally need search permission.
func (OSGate) Check(path string, access Access) error {
	mode := uint32(unix.R_OK | unix.X_OK)
	if access == AccessWrite {
		mode = unix.W_OK | unix.X_OK
	}
	return unix.Access(path, mode)
}
