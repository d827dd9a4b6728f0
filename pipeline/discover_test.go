package pipeline

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, name string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 0x80
	}
	m.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())
}

func writeText(t *testing.T, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(body), 0644))
}

// makeTree creates 4 images and 3 other files:
//
//	src/a.png
//	src/a.jpg       (collides with a.png once forced to .jpg)
//	src/sub/b.png
//	src/sub/deep/c.gif
//	src/readme.txt
//	src/sub/notes.md
//	src/noext       (png content, no extension)
func makeTree(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	writePNG(t, filepath.Join(src, "a.png"), 20, 10)
	writePNG(t, filepath.Join(src, "a.jpg"), 20, 10) // png content, decodes all the same
	writePNG(t, filepath.Join(src, "sub", "b.png"), 10, 20)
	writePNG(t, filepath.Join(src, "sub", "deep", "c.gif"), 8, 8)
	writeText(t, filepath.Join(src, "readme.txt"), "hello")
	writeText(t, filepath.Join(src, "sub", "notes.md"), "# notes")
	writePNG(t, filepath.Join(src, "noext"), 4, 4)
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))
	return src
}

func dsts(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Dst)
	}
	sort.Strings(out)
	return out
}

func TestWalkerTasks(t *testing.T) {
	src := makeTree(t)
	dst := filepath.Join(filepath.Dir(src), "out")

	tasks, err := NewWalker(src, dst).Tasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	got := dsts(tasks)
	assert.Contains(t, got, filepath.Join(dst, "sub", "b.jpg"))
	assert.Contains(t, got, filepath.Join(dst, "sub", "deep", "c.jpg"))
	assert.Contains(t, got, filepath.Join(dst, "a.jpg"))
	assert.Contains(t, got, filepath.Join(dst, "a-1.jpg"))

	for _, tk := range tasks {
		rel, err := filepath.Rel(src, tk.Src)
		require.NoError(t, err)
		assert.Equal(t, filepath.Dir(rel), func() string {
			r, _ := filepath.Rel(dst, tk.Dst)
			return filepath.Dir(r)
		}(), "mirrored dir of %s", tk.Src)
	}
}

func TestWalkerSniff(t *testing.T) {
	src := makeTree(t)
	dst := filepath.Join(filepath.Dir(src), "out")

	tasks, err := NewWalker(src, dst, WithSniff(true)).Tasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 5)
	assert.Contains(t, dsts(tasks), filepath.Join(dst, "noext.jpg"))
}

func TestWalkerPrunesNestedOutput(t *testing.T) {
	src := makeTree(t)
	dst := filepath.Join(src, "converted")
	writePNG(t, filepath.Join(dst, "old.png"), 2, 2)

	tasks, err := NewWalker(src, dst).Tasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
	for _, tk := range tasks {
		assert.NotContains(t, tk.Src, "converted")
	}
}

func TestWalkerStops(t *testing.T) {
	src := makeTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewWalker(src, "out").Tasks(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewWalker(filepath.Join(src, "missing"), "out").Tasks(context.Background())
	assert.Error(t, err)
}

func TestIsImage(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsImage("x.png", false))
	assert.True(t, IsImage("x.JPG", false))
	assert.True(t, IsImage("x.jpeg", false))
	assert.True(t, IsImage("x.gif", false))
	assert.True(t, IsImage("x.webp", false))
	assert.True(t, IsImage("x.bmp", false))
	assert.False(t, IsImage("x.txt", false))
	assert.False(t, IsImage("x", false))

	raw := filepath.Join(dir, "raw")
	writePNG(t, raw, 2, 2)
	assert.False(t, IsImage(raw, false))
	assert.True(t, IsImage(raw, true))

	text := filepath.Join(dir, "text")
	writeText(t, text, "plain words")
	assert.False(t, IsImage(text, true))
	assert.False(t, IsImage(filepath.Join(dir, "gone"), true))
}

func TestCopyTree(t *testing.T) {
	src := makeTree(t)
	dst := filepath.Join(filepath.Dir(src), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "sub"), 0755)) // existing dirs are fine

	require.NoError(t, CopyTree(src, dst))
	for _, d := range []string{"sub", filepath.Join("sub", "deep"), "empty"} {
		fi, err := os.Stat(filepath.Join(dst, d))
		require.NoError(t, err, d)
		assert.True(t, fi.IsDir())
	}
	_, err := os.Stat(filepath.Join(dst, "readme.txt"))
	assert.True(t, os.IsNotExist(err), "files are not copied")

	// nested output is not copied into itself
	nested := filepath.Join(src, "converted")
	require.NoError(t, CopyTree(src, nested))
	_, err = os.Stat(filepath.Join(nested, "converted"))
	assert.True(t, os.IsNotExist(err))
}
