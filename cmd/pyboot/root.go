package pyboot

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pyboot/internal/version"
	"github.com/arthur-debert/pyboot/pkg/commands/bootstrap"
	"github.com/arthur-debert/pyboot/pkg/config"
	"github.com/arthur-debert/pyboot/pkg/filesystem"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/output"
	"github.com/arthur-debert/pyboot/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps holds what the root command talks to. Zero values use the real
// process environment.
type Deps struct {
	FS         types.FS
	Getwd      func() (string, error)
	Stdout     io.Writer
	LoadConfig func(config.Options) (*config.Config, error)
}

func (d Deps) withDefaults() Deps {
	if d.FS == nil {
		d.FS = filesystem.NewOS()
	}
	if d.Getwd == nil {
		d.Getwd = os.Getwd
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.LoadConfig == nil {
		d.LoadConfig = config.Load
	}
	return d
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Deps{})
}

// NewRootCmdWith creates the root command over the given dependencies.
func NewRootCmdWith(deps Deps) *cobra.Command {
	deps = deps.withDefaults()

	var (
		verbosity  int
		dryRun     bool
		force      bool
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "pyboot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Str("version", version.Info()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := deps.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrWorkingDir, err)
			}

			cfg, err := deps.LoadConfig(config.Options{ConfigFile: configFile})
			if err != nil {
				return err
			}

			result, err := bootstrap.Bootstrap(cmd.Context(), bootstrap.Options{
				ProjectDir: projectDir,
				DryRun:     dryRun,
				Force:      force,
				FS:         deps.FS,
				Config:     cfg,
			})
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(deps.Stdout, output.FormatAuto)
			if err := renderer.Render(result); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&dryRun, "dryrun", false, MsgFlagDryRun)
	_ = flags.MarkHidden("dryrun")
	flags.BoolVar(&force, "force", false, MsgFlagForce)
	flags.StringVar(&configFile, "config", "", MsgFlagConfig)

	return rootCmd
}
