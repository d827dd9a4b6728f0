package utils

import (
	"os"
	"path/filepath"
)

// ReadyDir creates the parent directory of filename.
func ReadyDir(filename string) error {
	return os.MkdirAll(filepath.Dir(filename), os.FileMode(0755))
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// IsRegular ...
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}

// AbsPath returns the absolute form of fpath, or fpath when that fails.
func AbsPath(fpath string) string {
	if abs, err := filepath.Abs(fpath); err == nil {
		return abs
	}
	return fpath
}
