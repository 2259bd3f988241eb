// Package atomicfile writes files through a temp file and rename so readers never observe a
// partial write.
package atomicfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// WriteFile replaces filename with data unless it already holds exactly data.
// It reports whether the file changed.
func WriteFile(filename string, data []byte, perm os.FileMode) (bool, error) {
	cur, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if bytes.Equal(cur, data) {
			return false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, err
	}
	if err := write(filename, data, perm); err != nil {
		return false, err
	}
	return true, nil
}

func write(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	f, err := os.CreateTemp(dir, "."+base+".tmp.*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	ok := false
	defer func() {
		_ = f.Close()
		if !ok {
			_ = os.Remove(tmp)
		}
	}()

	if runtime.GOOS != "windows" {
		if err := f.Chmod(perm); err != nil {
			return err
		}
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// On Windows, os.Rename does not overwrite an existing destination.
	if runtime.GOOS == "windows" {
		_ = os.Remove(filename)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return err
	}
	ok = true
	return nil
}
