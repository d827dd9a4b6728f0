package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultDirName is the output directory created beside the input
// directory when no output is given.
const DefaultDirName = "PROPER JPG"

// DefaultOutputDir returns <parent of input>/PROPER JPG.
func DefaultOutputDir(input string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(input)), DefaultDirName)
}

// ForceExt replaces the extension of path with ext (leading dot included).
// Only the final extension is replaced: "a.tar.png" becomes "a.tar.jpg".
func ForceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// MirrorPath maps file, which lives under srcRoot, to the same relative
// location under dstRoot.
func MirrorPath(srcRoot, dstRoot, file string) (string, error) {
	rel, err := filepath.Rel(srcRoot, file)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is not inside %q", file, srcRoot)
	}
	return filepath.Join(dstRoot, rel), nil
}
