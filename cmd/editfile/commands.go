package editfile

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/editfile/internal/version"
	"github.com/arthur-debert/editfile/pkg/config"
	"github.com/arthur-debert/editfile/pkg/editor"
	"github.com/arthur-debert/editfile/pkg/logging"
	"github.com/arthur-debert/editfile/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned by the check command when the desired state
// does not hold. It carries no message worth printing.
var ErrCheckFailed = errors.New("desired state does not hold")

// app holds the global flags and the configuration they select
type app struct {
	verbosity  int
	configPath string
	dryRun     bool
	color      string

	cfg *config.Config
}

// setup loads the configuration and configures logging. Logging goes to
// the console first so configuration problems are visible, and is set up
// again once the configuration says whether to use the log file.
func (a *app) setup(cmd *cobra.Command) error {
	logging.Setup(logging.Options{Verbosity: a.verbosity, Console: cmd.ErrOrStderr()})

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("color") {
		overrides["output.color"] = a.color
	}
	cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.Setup(logging.Options{
		Verbosity: a.verbosity,
		File:      cfg.Logging.File,
		NoColor:   cfg.Output.Color == config.ColorNever,
		Console:   cmd.ErrOrStderr(),
	})
	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

func (a *app) editorOptions() editor.Options {
	return editor.Options{
		MatchTimeout: a.cfg.Regex.MatchTimeout,
		CreateMode:   a.cfg.Files.CreateMode,
	}
}

func (a *app) styler(cmd *cobra.Command) *style.Styler {
	return style.New(cmd.OutOrStdout(), a.cfg.Output.Color)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "editfile",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", config.ColorAuto, MsgFlagColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd, a)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
