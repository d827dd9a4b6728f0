package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-imsto/properjpg/config"
	"github.com/go-imsto/properjpg/image"
)

var cmdVersion = &Command{
	UsageLine: "version",
	Short:     "print version and build info",
	Long: `
Version prints the properjpg version, the Go runtime and the jpeg encoder
in use, followed by the supported environment variables.
`,
}

func init() {
	cmdVersion.Run = runVersion
}

func runVersion(_ context.Context, _ []string) error {
	encoder := "image/jpeg (baseline)"
	if image.SupportsProgressive() {
		encoder = "libjpeg"
	}
	fmt.Fprintf(stdout, "properjpg %s %s/%s %s\n", config.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	fmt.Fprintf(stdout, "encoder: %s\n", encoder)
	return config.Usage()
}
