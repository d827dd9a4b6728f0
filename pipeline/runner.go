package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-imsto/properjpg/base"
	"github.com/go-imsto/properjpg/image"
	zlog "github.com/go-imsto/properjpg/log"
	"github.com/go-imsto/properjpg/naming"
	"github.com/go-imsto/properjpg/utils"
)

func logger() zlog.Logger {
	return zlog.Get()
}

// Options describes one run.
type Options struct {
	Input     string
	Output    string // empty: auto-generated name or the default directory
	Directory bool

	Resize image.ResizeSpec
	Encode image.EncodeOptions

	Workers   int  // pool size, < 1 means one per CPU
	KeepGoing bool // directory mode: run every task, report all failures
	Sniff     bool // directory mode: detect extensionless images by content
}

// Runner converts a single file or a directory tree.
type Runner struct {
	opt    Options
	output string
	fitter *image.Fitter
}

// New validates opt and resolves the output path. Every error it returns
// is a *ConfigError and is raised before any file is touched.
func New(opt Options) (*Runner, error) {
	if err := opt.Resize.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	if err := opt.Encode.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	if opt.Input == "" {
		return nil, &ConfigError{Err: fmt.Errorf("input path is required")}
	}

	r := &Runner{opt: opt, fitter: image.NewFitter()}
	switch {
	case opt.Output != "":
		r.output = opt.Output
	case opt.Directory:
		r.output = naming.DefaultOutputDir(opt.Input)
	default:
		r.output = naming.UniqueName(opt.Input)
	}
	if !opt.Directory {
		r.output = naming.ForceExt(r.output, base.EtJPEG.Ext())
	}

	if err := r.checkPaths(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Runner) checkPaths() error {
	in := utils.AbsPath(r.opt.Input)
	fi, err := os.Stat(r.opt.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return &ConfigError{Role: "input", Path: in, Err: ErrNotFound}
		}
		return &ConfigError{Role: "input", Path: in, Err: err}
	}

	if r.opt.Directory {
		if !fi.IsDir() {
			return &ConfigError{Role: "input", Path: in, Err: ErrNotDir}
		}
		out := utils.AbsPath(r.output)
		if utils.IsRegular(r.output) {
			return &ConfigError{Role: "output", Path: out, Err: ErrOutputIsFile}
		}
		if out == in || sameFile(fi, r.output) {
			return &ConfigError{Role: "output", Path: out, Err: ErrSameAsInput}
		}
		return nil
	}

	if !fi.Mode().IsRegular() {
		return &ConfigError{Role: "input", Path: in, Err: ErrNotFile}
	}
	if utils.IsDir(r.output) {
		return &ConfigError{Role: "output", Path: utils.AbsPath(r.output), Err: ErrNotFile}
	}
	return nil
}

// sameFile reports whether name exists and is the same file as fi, which
// catches symlinked or differently spelled paths.
func sameFile(fi os.FileInfo, name string) bool {
	other, err := os.Stat(name)
	return err == nil && os.SameFile(fi, other)
}

// Output returns the resolved output path: the .jpg file in single mode,
// the root directory in directory mode.
func (r *Runner) Output() string {
	return r.output
}

// Run performs the conversion and returns its summary. The summary is
// returned even when err is not nil.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	sum := &Summary{Output: r.output, Directory: r.opt.Directory}
	var (
		stats runStats
		err   error
	)
	if r.opt.Directory {
		err = r.runDir(ctx, sum, &stats)
	} else {
		sum.Total = 1
		err = r.runFile(&stats)
	}
	stats.fill(sum)
	sum.Elapsed = time.Since(start)
	return sum, err
}

func (r *Runner) runFile(stats *runStats) error {
	if err := utils.ReadyDir(r.output); err != nil {
		return err
	}
	res, err := image.ProcessFile(r.opt.Input, r.output, r.opt.Resize, r.opt.Encode, r.fitter)
	if err != nil {
		stats.fail()
		return err
	}
	stats.done(res.Bytes)
	return nil
}

func (r *Runner) runDir(ctx context.Context, sum *Summary, stats *runStats) error {
	if err := CopyTree(r.opt.Input, r.output); err != nil {
		return fmt.Errorf("copy tree to %q: %w", utils.AbsPath(r.output), err)
	}

	tasks, err := NewWalker(r.opt.Input, r.output, WithSniff(r.opt.Sniff)).Tasks(ctx)
	if err != nil {
		return fmt.Errorf("walk %q: %w", utils.AbsPath(r.opt.Input), err)
	}
	sum.Total = len(tasks)

	pool := NewPool(r.opt.Workers, r.opt.KeepGoing)
	logger().Infow("batch start", "input", r.opt.Input, "output", r.output,
		"images", len(tasks), "workers", pool.Size(),
		"resize", r.opt.Resize.String(), "encode", r.opt.Encode.String())

	return pool.Run(ctx, tasks, func(_ context.Context, t Task) error {
		res, err := image.ProcessFile(t.Src, t.Dst, r.opt.Resize, r.opt.Encode, r.fitter)
		if err != nil {
			stats.fail()
			logger().Warnw("process fail", "src", t.Src, "err", err)
			return err
		}
		stats.done(res.Bytes)
		return nil
	})
}
