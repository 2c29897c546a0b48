// Package output writes document artifacts.
package output

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// FilePerm is the mode of written artifacts.
const FilePerm = 0644

// WriteFile calls write with a temporary file next to path and renames it to
// path only when write succeeds. On failure the temporary file is removed and
// an existing file at path is left as it was.
func WriteFile(path string, write func(w io.Writer) error) (n int64, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	cw := &countingWriter{w: tmp}
	if err = write(cw); err != nil {
		return 0, multierr.Append(err, tmp.Close())
	}
	if err = tmp.Sync(); err != nil {
		return 0, multierr.Append(err, tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return 0, err
	}
	if err = os.Chmod(tmpName, FilePerm); err != nil {
		return 0, err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return 0, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
