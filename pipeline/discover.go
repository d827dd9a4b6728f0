package pipeline

import (
	"context"
	"io/fs"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/go-imsto/properjpg/base"
	"github.com/go-imsto/properjpg/naming"
	"github.com/go-imsto/properjpg/utils"
)

// Task pairs a source image with its output path.
type Task struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// WalkOption configures a Walker.
type WalkOption func(*Walker)

// WithSniff makes the walker also detect images by content when the file
// extension is unknown.
func WithSniff(on bool) WalkOption {
	return func(w *Walker) {
		w.sniff = on
	}
}

// WithResolver shares a collision resolver between walks.
func WithResolver(cr *naming.CollisionResolver) WalkOption {
	return func(w *Walker) {
		if cr != nil {
			w.resolver = cr
		}
	}
}

// Walker enumerates the images under a source root and pairs each with its
// mirrored .jpg path under a destination root.
type Walker struct {
	srcRoot  string
	dstRoot  string
	sniff    bool
	resolver *naming.CollisionResolver
}

// NewWalker ...
func NewWalker(srcRoot, dstRoot string, opts ...WalkOption) *Walker {
	w := &Walker{
		srcRoot:  filepath.Clean(srcRoot),
		dstRoot:  filepath.Clean(dstRoot),
		resolver: naming.NewCollisionResolver(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk calls fn for every image found, in filesystem order. Non-image files
// are skipped silently. The destination root is pruned when it lies inside
// the source root. Walking stops at the first error from fn or when ctx is
// done. Each call is a fresh traversal.
func (w *Walker) Walk(ctx context.Context, fn func(Task) error) error {
	skip := utils.AbsPath(w.dstRoot)
	return filepath.WalkDir(w.srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if path != w.srcRoot && utils.AbsPath(path) == skip {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !IsImage(path, w.sniff) {
			return nil
		}
		dst, err := naming.MirrorPath(w.srcRoot, w.dstRoot, path)
		if err != nil {
			return err
		}
		dst = w.resolver.Resolve(path, naming.ForceExt(dst, base.EtJPEG.Ext()))
		return fn(Task{Src: path, Dst: dst})
	})
}

// Tasks collects every task of one traversal.
func (w *Walker) Tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := w.Walk(ctx, func(t Task) error {
		tasks = append(tasks, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// IsImage reports whether the extension of path maps to an image/* MIME
// type. Extensions of the decodable formats count even when the system
// MIME table lacks them. With sniff, a file whose extension is unknown is
// also accepted when its content looks like an image.
func IsImage(path string, sniff bool) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return strings.HasPrefix(mt, "image/")
		}
		if base.ParseExt(ext) != base.EtNone {
			return true
		}
	}
	if !sniff {
		return false
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		logger().Debugw("sniff fail", "path", path, "err", err)
		return false
	}
	return strings.HasPrefix(mt.String(), "image/")
}
