package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/go-imsto/properjpg/image"
)

var cmdFit = &Command{
	UsageLine: "fit [-wi W] [-he H | -re N] <width> <height>",
	Short:     "print the size an image would be resized to",
	Long: `
Fit prints the output size for a source of <width> x <height> under the
same -wi, -he and -re rules as convert, without touching any file.
`,
	Flags: func(fs *flag.FlagSet) { resizeFlags(fs, new(image.ResizeSpec)) },
}

func init() {
	cmdFit.Run = runFit
}

func runFit(_ context.Context, args []string) error {
	var rs image.ResizeSpec
	fs := cmdFit.FlagSet()
	resizeFlags(fs, &rs)
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) != 2 {
		return usageErrorf("want <width> <height>, got %d arguments", len(pos))
	}

	var orig image.Dimensions
	if orig.Width, err = strconv.Atoi(pos[0]); err != nil {
		return usageErrorf("bad width %q", pos[0])
	}
	if orig.Height, err = strconv.Atoi(pos[1]); err != nil {
		return usageErrorf("bad height %q", pos[1])
	}
	if !orig.Valid() {
		return usageErrorf("invalid size %s", orig)
	}
	if err = rs.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(stdout, rs.Target(orig, nil))
	return nil
}
