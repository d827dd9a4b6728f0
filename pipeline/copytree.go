package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-imsto/properjpg/naming"
	"github.com/go-imsto/properjpg/utils"
)

// CopyTree recreates the directory structure of src under dst, without
// files. Existing directories are left as they are. When dst lies inside
// src it is not copied into itself.
func CopyTree(src, dst string) error {
	src = filepath.Clean(src)
	skip := utils.AbsPath(dst)
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != src && utils.AbsPath(path) == skip {
			return filepath.SkipDir
		}
		target, err := naming.MirrorPath(src, dst, path)
		if err != nil {
			return err
		}
		return os.MkdirAll(target, os.FileMode(0755))
	})
}
