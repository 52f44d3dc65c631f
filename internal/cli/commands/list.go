package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"utest/internal/config"
	"utest/internal/ui"
	"utest/pkg/check"
	"utest/pkg/load"
)

// ListCommand handles the list command.
type ListCommand struct {
	config    *config.Config
	registry  *load.Registry
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand.
func NewListCommand(cfg *config.Config, registry *load.Registry, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{config: cfg, registry: registry, formatter: formatter}
}

// Execute resolves the requested names and lists the unit ids in
// execution order, without running anything.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	loader := load.NewLoader(lc.registry)

	var root check.Runnable
	var err error
	if names := lc.config.Flags.Names; len(names) > 0 {
		root, err = loader.FromNames(names)
	} else {
		root, err = loader.FromRegistry()
	}
	if err != nil {
		return err
	}

	var ids []string
	for _, u := range collectUnits(root) {
		if lc.config.Flags.Cases && u.Description() != "" {
			ids = append(ids, fmt.Sprintf("%s (%s)", u.ID(), u.Description()))
		} else {
			ids = append(ids, u.ID())
		}
	}
	lc.formatter.PrintUnitList(ids)
	return nil
}

// collectUnits flattens a suite tree into its units in execution
// order.
func collectUnits(item check.Runnable) []check.Unit {
	switch v := item.(type) {
	case *check.Suite:
		var out []check.Unit
		for _, child := range v.Children() {
			out = append(out, collectUnits(child)...)
		}
		return out
	case check.Unit:
		return []check.Unit{v}
	default:
		return nil
	}
}
