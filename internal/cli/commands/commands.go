package commands

import (
	"utest/internal/cli"
	"utest/internal/config"
	"utest/internal/storage"
	"utest/internal/ui"
	"utest/pkg/load"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands.
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies.
func NewCommands(cfg *config.Config, registry *load.Registry) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, registry, jsonStorage, formatter),
		List:     NewListCommand(cfg, registry, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	runCmd := &cobra.Command{
		Use:   "run [names...]",
		Short: "Run registered checks",
		Long: "Resolve the given dotted names to suites and execute them. " +
			"With no names, every registered fixture runs.",
		RunE: c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags(args))
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "One-character progress only, no per-unit lines")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "One line per unit with id and description")
	runCmd.Flags().BoolVarP(&flags.Explain, "explain", "e", false, "Include long-form explanations on failures and errors")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while checks run")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list [names...]",
		Short: "List resolved checks without running them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			merged := config.Load(flags.ToConfigFlags(args))
			*cfg = *merged
			return nil
		},
	}
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "Include descriptions next to unit ids")
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "Browse the last run's failures interactively",
		RunE:  c.Failures.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			merged := config.Load(flags.ToConfigFlags(nil))
			*cfg = *merged
			return nil
		},
	}
	rootCmd.AddCommand(failuresCmd)
}
