package main

import (
	"errors"
	"fmt"
	"os"

	"utest/internal/cli"
	"utest/internal/cli/commands"
	"utest/internal/config"
	"utest/internal/demo"
	"utest/pkg/load"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "utest",
		Short:   "In-process test execution engine",
		Long:    `utest discovers registered fixtures, runs their checks in a deterministic order, and reports failures separately from errors. Progress goes to stdout, diagnostics to stderr, and the exit status reflects the verdict.`,
		Version: version,
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Create initial config with defaults.
	cfg := config.New()

	// Flags struct, populated by command flags.
	var flags cli.Flags

	// The registry stands in for the calling namespace: everything the
	// binary can run is registered here at startup.
	registry := load.NewRegistry()
	demo.Register(registry)

	cmds := commands.NewCommands(cfg, registry)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
