package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyDir(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a", "b", "c.jpg")
	assert.NoError(t, ReadyDir(name))
	assert.True(t, IsDir(filepath.Join(dir, "a", "b")))
	assert.False(t, IsRegular(name))

	assert.NoError(t, os.WriteFile(name, []byte("x"), 0644))
	assert.True(t, IsRegular(name))
	assert.False(t, IsDir(name))
	assert.NoError(t, ReadyDir(name), "existing parent")
}

func TestAbsPath(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "x.png"), AbsPath("x.png"))
	assert.Equal(t, "/tmp/y.png", AbsPath("/tmp/y.png"))
}
