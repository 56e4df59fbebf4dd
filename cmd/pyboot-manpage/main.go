package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pyboot/cmd/pyboot"
	"github.com/arthur-debert/pyboot/internal/version"
)

func main() {
	rootCmd := pyboot.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PYBOOT",
		Section: "1",
		Source:  "pyboot " + version.Version,
		Manual:  "pyboot manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
