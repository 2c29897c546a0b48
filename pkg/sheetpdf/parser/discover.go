package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtension is the file extension searched for by FindSource.
const DefaultExtension = ".xlsx"

// ErrNoCandidates indicates the directory holds no file with the wanted
// extension.
var ErrNoCandidates = errors.New("no matching files")

// FindSource returns the first regular file in dir whose name ends with ext,
// in directory-listing (lexical) order. Matching is case-sensitive. Symbolic
// links count when they resolve to a regular file; dangling links and links
// to directories are skipped.
func FindSource(dir, ext string) (string, error) {
	if ext == "" {
		ext = DefaultExtension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if isRegular(path, e) {
			return path, nil
		}
	}

	return "", ErrNoCandidates
}

func isRegular(path string, e os.DirEntry) bool {
	if e.Type()&os.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
