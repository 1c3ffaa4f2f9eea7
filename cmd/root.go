// Package cmd implements the command-line interface for gocompare.
// It provides the root command and subcommands for searching devices and
// comparing their specifications.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocompare/cmd/compare"
	"github.com/jonesrussell/gocompare/cmd/httpd"
	"github.com/jonesrussell/gocompare/cmd/search"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands
	debug bool

	// rootCmd represents the root command for the gocompare CLI.
	rootCmd = &cobra.Command{
		Use:   "gocompare",
		Short: "Search and compare device specifications",
		Long:  `A device specification search and comparison tool over a GraphQL content API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gocompare version %s\n", "1.0.0")
		},
	})

	rootCmd.AddCommand(search.Command())
	rootCmd.AddCommand(compare.Command())
	rootCmd.AddCommand(httpd.Command())
}
