// Package cli wires the generator to the command line.
package cli

import (
	"github.com/spf13/cobra"

	"vo-scaffolding/internal/config"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// RootCmd builds the vogen command tree. Running the root command without a
// subcommand performs a full generation.
func RootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "vogen",
		Short: "Generate Java value objects from a database schema",
		Long: `vogen reads the tables and views of a database and writes one Java
value object class per table, with a private field and a getter/setter
pair for every column.

The configuration file is XML (re-engineer.xml), YAML or dotenv.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, configPath, false)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "path to the configuration file")

	rootCmd.AddCommand(generateCmd(&configPath))
	rootCmd.AddCommand(tablesCmd(&configPath))

	return rootCmd
}
