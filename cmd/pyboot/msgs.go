package pyboot

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Scaffold tooling files into a uv Python project"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show what would be written without touching any file"
	MsgFlagForce   = "Overwrite existing files for every template"
	MsgFlagConfig  = "Use this configuration file instead of the user one"

	// Error messages
	MsgErrWorkingDir = "failed to determine the current directory: %w"
	MsgErrRender     = "failed to write output: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
