// Package cmd The command line tool for running properjpg.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/template"

	"github.com/go-imsto/properjpg/config"
	zlog "github.com/go-imsto/properjpg/log"
	"github.com/go-imsto/properjpg/pipeline"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(ctx context.Context, args []string) error
	UsageLine, Short, Long string
	// Flags registers the command flags on fs for the help output. Run
	// builds its own set on every call, so runs never share flag state.
	Flags func(fs *flag.FlagSet)
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

// FlagSet returns an empty, silent flag set. Execute reports parse
// errors and prints the usage.
func (cmd *Command) FlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

func (cmd *Command) Usage() {
	fmt.Fprintf(stderr, "Usage: properjpg %s\n", cmd.UsageLine)
	fmt.Fprintf(stderr, "Default Usage:\n")
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(stderr)
	if cmd.Flags != nil {
		cmd.Flags(fs)
	}
	fs.PrintDefaults()
	fmt.Fprintf(stderr, "Description:\n")
	fmt.Fprintf(stderr, "  %s\n", strings.TrimSpace(cmd.Long))
}

// exit codes
const (
	exitOK     = 0
	exitFail   = 1
	exitUsage  = 2
	defaultCmd = "convert"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var commands = []*Command{
	cmdConvert,
	cmdFit,
	cmdVersion,
}

func logger() zlog.Logger {
	return zlog.Get()
}

// Main runs the command line and exits.
func Main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// Execute runs one command line and returns the process exit code. When
// args[0] is not a command name the arguments go to "convert", so
// "properjpg photo.png -wi 800" works as is.
func Execute(ctx context.Context, args []string) int {
	if err := config.Load(); err != nil {
		fmt.Fprintf(stderr, "properjpg: %s\n", err)
		return exitFail
	}

	sugar, err := zlog.New(config.InDevelop())
	if err != nil {
		fmt.Fprintf(stderr, "properjpg: %s\n", err)
		return exitFail
	}
	defer sugar.Sync() // flushes buffer, if any
	zlog.Set(sugar)
	sugar.Debugw("logger start", "version", config.Version)

	if len(args) < 1 {
		usage()
		return exitUsage
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		return help(args[1:])
	}

	cmd := lookup(args[0])
	if cmd == nil {
		cmd = lookup(defaultCmd)
	} else {
		args = args[1:]
	}

	err = cmd.Run(ctx, args)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		cmd.Usage()
		return exitOK
	case isUsageError(err):
		errorf("properjpg %s: %s", cmd.Name(), err)
		cmd.Usage()
		return exitUsage
	case pipeline.IsConfigError(err):
		errorf("properjpg: %s", err)
		return exitFail
	}
	errorf("properjpg: %s", err)
	return exitFail
}

func lookup(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

func help(args []string) int {
	if len(args) == 0 {
		usage()
		return exitOK
	}
	if cmd := lookup(args[0]); cmd != nil {
		tmpl(stdout, helpTemplate, cmd)
		return exitOK
	}
	errorf("unknown help topic %q. Run 'properjpg help'.", args[0])
	return exitUsage
}

// usageError marks bad command line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{fmt.Errorf(format, args...)}
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

// parseArgs parses flags that may appear before, between or after
// positional arguments, and returns the positional ones. Everything after
// "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, &usageError{err}
		}
		rest := fs.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(pos, rest...), nil
		}
		if len(rest) == 0 {
			return pos, nil
		}
		pos = append(pos, rest[0])
		args = rest[1:]
	}
}

func errorf(format string, args ...any) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(stderr, format, args...)
}

const usageTemplate = `usage: properjpg [command] [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Without a command name the arguments are passed to "convert".
Use "properjpg help [command]" for more information.
`

var helpTemplate = `usage: properjpg {{.UsageLine}}
{{.Long}}
`

func usage() {
	fmt.Fprintln(stderr, "version", config.Version)
	tmpl(stderr, usageTemplate, commands)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}
