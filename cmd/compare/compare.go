// Package compare implements the compare command: it resolves one or two
// device slugs and renders their specification diff.
package compare

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocompare/cmd/common"
	internalcompare "github.com/jonesrussell/gocompare/internal/compare"
	"github.com/jonesrussell/gocompare/internal/content"
	"github.com/jonesrussell/gocompare/internal/selection"
)

// Cmd represents the compare command.
var Cmd = &cobra.Command{
	Use:   "compare <slug> [slug]",
	Short: "Compare two devices' specifications",
	Long: `Compare command fetches one or two devices by slug and renders a
side-by-side specification table.

Examples:
  # Compare two devices
  gocompare compare phone-a phone-b

  # Show a single device's specifications
  gocompare compare phone-a
`,
	Args: cobra.RangeArgs(1, selection.SlotCount),
	RunE: runCompare,
}

// Command returns the compare command for use in the root command
func Command() *cobra.Command {
	return Cmd
}

// runCompare executes the compare command.
func runCompare(cmd *cobra.Command, args []string) error {
	cfgFile, debug := common.GlobalFlags(cmd)
	deps, err := common.NewCommandDeps(cfgFile, debug)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The CLI invocation is one comparison session: the slugs arrive as
	// navigation parameters and reconciliation resolves them into slots.
	params := selection.Params{Device1: args[0]}
	if len(args) > 1 {
		params.Device2 = args[1]
	}

	screen := selection.NewScreen(
		ctx,
		deps.Client,
		selection.NewDeviceCache(),
		selection.NewMemoryParams(params),
		deps.Logger,
		deps.Config.GetCompareConfig(),
	)

	if reconcileErr := screen.Reconcile(ctx); reconcileErr != nil {
		// Unresolved slots render as empty columns; report and continue.
		fmt.Fprintf(os.Stderr, "Could not load device(s): %v\n", reconcileErr)
	}

	devices := screen.SelectedDevices()
	if devices[0] == nil && devices[1] == nil {
		fmt.Println("No devices to compare")
		return nil
	}

	sections := screen.Comparison()
	if len(sections) == 0 {
		fmt.Println("No specifications found for the selected device(s)")
		return nil
	}

	internalcompare.Render(os.Stdout, deviceTitle(devices[0]), deviceTitle(devices[1]), sections)
	return nil
}

// deviceTitle returns the device's display name, or a placeholder for an
// empty slot.
func deviceTitle(dev *content.Device) string {
	if dev == nil {
		return "(empty)"
	}
	return dev.Title
}
