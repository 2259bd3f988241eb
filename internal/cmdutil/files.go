package cmdutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
)

// Unchanged reports whether path already holds exactly content. A missing file is changed.
func Unchanged(path string, content []byte) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(b, content), nil
}

// RefuseOverwrite returns a UsageError when path exists with content other than want and
// overwrite is false. Read errors other than fs.ErrNotExist are returned as-is.
func RefuseOverwrite(path string, want []byte, overwrite bool) error {
	if path == "" || overwrite {
		return nil
	}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return err
	case bytes.Equal(b, want):
		return nil
	}
	return Usagef("refusing to overwrite existing file: %s (use --overwrite)", path)
}
