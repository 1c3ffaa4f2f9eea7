package common

import "github.com/spf13/cobra"

// GlobalFlags reads the root command's persistent --config and --debug flags
// as seen from a subcommand.
func GlobalFlags(cmd *cobra.Command) (cfgFile string, debug bool) {
	if f := cmd.Flag("config"); f != nil {
		cfgFile = f.Value.String()
	}
	if f := cmd.Flag("debug"); f != nil {
		debug = f.Value.String() == "true"
	}
	return cfgFile, debug
}
