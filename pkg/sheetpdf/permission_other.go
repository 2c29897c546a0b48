//go:build !unix

package sheetpdf

import "os"

// Check probes access by opening the directory, or by creating and removing
// a temporary file in it.
func (OSGate) Check(path string, access Access) error {
	if access == AccessWrite {
		f, err := os.CreateTemp(path, ".sheetpdf-probe-*")
		if err != nil {
			return err
		}
		name := f.Name()
		f.Close()
		return os.Remove(name)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
