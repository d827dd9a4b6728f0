package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/go-imsto/properjpg/config"
	"github.com/go-imsto/properjpg/image"
	"github.com/go-imsto/properjpg/pipeline"
	"github.com/go-imsto/properjpg/utils"
)

var cmdConvert = &Command{
	UsageLine: "convert [-d] [-wi W] [-he H | -re N] [-q Q] [-o] [-np] <input> [output]",
	Short:     "convert an image or a directory of images to jpeg",
	Long: `
Convert re-encodes one image, or every image under a directory, as JPEG.

Without an output path a single file is written next to the input as
<name>-N.jpg, and a directory is mirrored into "PROPER JPG" beside it.
Images are fitted into -wi x -he keeping their aspect ratio, or divided
by -re. Both at once is an error.

Environment: PROPERJPG_DEBUG, PROPERJPG_WORKERS, PROPERJPG_QUALITY.
`,
	Flags: func(fs *flag.FlagSet) { new(convertArgs).register(fs) },
}

func init() {
	cmdConvert.Run = runConvert
}

type convertArgs struct {
	directory     bool
	resize        image.ResizeSpec
	quality       int
	optimize      bool
	noProgressive bool
	version       bool
	keepGoing     bool
	jobs          int
	sniff         bool
}

func (a *convertArgs) register(fs *flag.FlagSet) {
	boolVar(fs, &a.directory, "d", "directory", false, "convert every image under the input directory")
	resizeFlags(fs, &a.resize)
	intVar(fs, &a.quality, "q", "quality", 0, "jpeg quality 1-95, 0 means 85")
	boolVar(fs, &a.optimize, "o", "optimize", false, "optimize the huffman tables")
	boolVar(fs, &a.noProgressive, "np", "no-progressive", false, "write baseline jpeg")
	boolVar(fs, &a.version, "v", "version", false, "print version and exit")
	boolVar(fs, &a.keepGoing, "k", "keep-going", false, "directory mode: continue after a failed image")
	intVar(fs, &a.jobs, "j", "jobs", 0, "directory mode: parallel workers, 0 is one per CPU")
	fs.BoolVar(&a.sniff, "sniff", false, "directory mode: detect images without a known extension by content")
}

func resizeFlags(fs *flag.FlagSet, rs *image.ResizeSpec) {
	intVar(fs, &rs.MaxWidth, "wi", "max-width", 0, "max width of the output, 0 is unset")
	intVar(fs, &rs.MaxHeight, "he", "max-height", 0, "max height of the output, 0 is unset")
	intVar(fs, &rs.Reduce, "re", "reduce", 0, "divide both sides by this factor")
}

func boolVar(fs *flag.FlagSet, p *bool, short, long string, value bool, usage string) {
	fs.BoolVar(p, short, value, usage)
	fs.BoolVar(p, long, value, "same as -"+short)
}

func intVar(fs *flag.FlagSet, p *int, short, long string, value int, usage string) {
	fs.IntVar(p, short, value, usage)
	fs.IntVar(p, long, value, "same as -"+short)
}

// options turns the parsed command line into runner options. Values from
// the environment fill in what the flags leave unset.
func (a *convertArgs) options(pos []string) (pipeline.Options, error) {
	if len(pos) < 1 {
		return pipeline.Options{}, usageErrorf("missing input path")
	}
	if len(pos) > 2 {
		return pipeline.Options{}, usageErrorf("too many arguments: %q", pos[2:])
	}

	opt := pipeline.Options{
		Input:     pos[0],
		Directory: a.directory,
		Resize:    a.resize,
		Encode: image.EncodeOptions{
			Quality:     a.quality,
			Optimize:    a.optimize,
			Progressive: !a.noProgressive,
		},
		Workers:   a.jobs,
		KeepGoing: a.keepGoing,
		Sniff:     a.sniff,
	}
	if len(pos) == 2 {
		opt.Output = pos[1]
	}
	if opt.Encode.Quality == 0 {
		opt.Encode.Quality = config.Current.Quality
	}
	if opt.Workers == 0 {
		opt.Workers = config.Current.Workers
	}
	return opt, nil
}

func runConvert(ctx context.Context, args []string) error {
	var a convertArgs
	fs := cmdConvert.FlagSet()
	a.register(fs)
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if a.version {
		fmt.Fprintln(stdout, "properjpg", config.Version)
		return nil
	}

	opt, err := a.options(pos)
	if err != nil {
		return err
	}

	r, err := pipeline.New(opt)
	if err != nil {
		return err
	}
	logger().Debugw("convert", "input", opt.Input, "output", r.Output(), "directory", opt.Directory,
		"resize", opt.Resize.String(), "encode", opt.Encode.String())

	out := utils.AbsPath(r.Output())
	fmt.Fprintf(stdout, "Output path: %s\n", out)
	fmt.Fprintln(stdout, "STARTING PROCESS")

	sum, err := r.Run(ctx)
	if sum != nil {
		printSummary(out, sum)
	}
	return err
}

func printSummary(out string, sum *pipeline.Summary) {
	if sum.Failed == 0 {
		fmt.Fprintln(stdout, "DONE")
	} else {
		fmt.Fprintln(stdout, "DONE WITH ERRORS")
	}
	fmt.Fprintf(stdout, "Output path: %s\n", out)
	fmt.Fprintf(stdout, "Elapsed time: %s\n", sum.Elapsed.Round(time.Millisecond))
	if !sum.Directory {
		return
	}
	fmt.Fprintf(stdout, "Images processed: %d\n", sum.Processed)
	if sum.Failed > 0 {
		fmt.Fprintf(stdout, "Images failed: %d\n", sum.Failed)
	}
	if skipped := sum.Total - sum.Processed - sum.Failed; skipped > 0 {
		fmt.Fprintf(stdout, "Images skipped: %d\n", skipped)
	}
	fmt.Fprintf(stdout, "Bytes written: %s\n", humanize.Bytes(uint64(sum.Bytes)))
}
