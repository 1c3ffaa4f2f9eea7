// Package search implements the search command for querying devices in the
// content API.
package search

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocompare/cmd/common"
	"github.com/jonesrussell/gocompare/internal/content"
)

// Column widths for the results table.
const (
	indexColumnWidth = 4
	slugColumnWidth  = 40
	titleColumnWidth = 60
)

// Cmd represents the search command.
var Cmd = &cobra.Command{
	Use:   "search",
	Short: "Search devices in the content API",
	Long: `Search command queries the content API for devices matching a text query.

Examples:
  # Search for devices matching "iphone"
  gocompare search -q "iphone"
`,
	RunE: runSearch,
}

// Command returns the search command for use in the root command
func Command() *cobra.Command {
	Cmd.Flags().StringP("query", "q", "", "Query string to search for (required)")

	if err := Cmd.MarkFlagRequired("query"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking query flag as required: %v\n", err)
		os.Exit(1)
	}

	return Cmd
}

// runSearch executes the search command.
func runSearch(cmd *cobra.Command, _ []string) error {
	cfgFile, debug := common.GlobalFlags(cmd)
	deps, err := common.NewCommandDeps(cfgFile, debug)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	query := strings.TrimSpace(cmd.Flag("query").Value.String())

	results, err := deps.Client.SearchDevices(contextOrBackground(cmd), query)
	if err != nil {
		// Content API failures are non-fatal: show no results plus a message.
		deps.Logger.Error("device search failed", "query", query, "error", err)
		fmt.Fprintf(os.Stderr, "Search failed, please try again: %v\n", err)
		return nil
	}

	renderResults(results, query)
	return nil
}

// contextOrBackground returns the command's context, or a background context
// when cobra was invoked without one.
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// renderResults formats and displays the search results in a table.
func renderResults(results []content.DeviceSummary, query string) {
	if len(results) == 0 {
		fmt.Printf("No devices found for %q\n", query)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: indexColumnWidth},
		{Number: 2, WidthMax: slugColumnWidth},
		{Number: 3, WidthMax: titleColumnWidth},
	})
	t.AppendHeader(table.Row{"#", "Slug", "Title"})

	for i, result := range results {
		t.AppendRow(table.Row{i + 1, result.Slug, result.Title})
	}

	t.Render()
	fmt.Printf("\nFound %d device(s) for %q\n", len(results), query)
}
