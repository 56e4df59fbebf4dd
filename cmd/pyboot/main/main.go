package main

import (
	"os"

	"github.com/arthur-debert/pyboot/cmd/pyboot"
	"github.com/arthur-debert/pyboot/pkg/output"
)

func main() {
	rootCmd := pyboot.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = output.NewRenderer(os.Stderr, output.FormatAuto).RenderError(err)
		os.Exit(1)
	}
}
