package commands

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"utest/internal/config"
	"utest/internal/logging"
	"utest/internal/storage"
	"utest/internal/ui"
	"utest/pkg/check"
	"utest/pkg/load"
	"utest/pkg/run"
)

// ErrRunFailed signals a completed run whose collector was not
// successful. The entry point maps it to a nonzero exit status without
// printing a second error message; the verdict line already went to
// the diagnostic stream.
var ErrRunFailed = errors.New("run failed")

// RunCommand handles the run command.
type RunCommand struct {
	config    *config.Config
	registry  *load.Registry
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(
	cfg *config.Config,
	registry *load.Registry,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  registry,
		storage:   st,
		formatter: formatter,
	}
}

// Execute resolves the requested names, runs them and persists the
// results. Resolution errors are fatal; check failures are not — the
// run always reaches its summary and verdict.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	log := logging.New(rc.config.LogLevel)

	loader := load.NewLoader(rc.registry)
	root, err := rc.resolve(loader)
	if err != nil {
		return err
	}

	runner := run.New(os.Stdout, os.Stderr, rc.config.Verbosity(), rc.config.Flags.Explain)
	runner.Log = log

	// An interrupt stops the traversal at the next unit boundary; the
	// running unit completes, including its cleanup.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	go func() {
		<-sig
		runner.RequestStop()
	}()

	var bar *ui.ProgressBar
	if rc.config.Flags.Progress {
		bar = ui.NewProgressBar(root.CountCases())
		runner.OnUnitDone = func(runs, failures, errs int) {
			bar.Update(runs, failures+errs)
		}
	}

	res := runner.Run(root)
	if bar != nil {
		bar.Finish()
	}

	out := storage.Snapshot(res)
	if err := rc.storage.Save(out); err != nil {
		log.Warn().Err(err).Msg("could not persist run results")
	}
	history := storage.NewHistory(rc.config.HistoryDSN, log)
	if history.Enabled() {
		if err := history.Record(out.Meta); err != nil {
			log.Warn().Err(err).Msg("could not record run history")
		}
	}

	if !rc.config.Flags.Quiet {
		rc.formatter.PrintSummary(out)
	}
	if !res.WasSuccessful() {
		return ErrRunFailed
	}
	return nil
}

func (rc *RunCommand) resolve(loader *load.Loader) (check.Runnable, error) {
	names := rc.config.Flags.Names
	if len(names) == 0 {
		return loader.FromRegistry()
	}
	return loader.FromNames(names)
}
