package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"utest/internal/config"
	"utest/internal/storage"
	"utest/internal/ui"
)

// FailuresCommand handles the failures command.
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand.
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailuresCommand {
	return &FailuresCommand{config: cfg, storage: st, viewer: viewer}
}

// Execute opens the interactive viewer over the last persisted run.
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	out, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no stored results (run `utest run` first): %w", err)
	}
	return fc.viewer.View(out)
}
