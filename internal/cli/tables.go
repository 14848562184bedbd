package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vo-scaffolding/internal/config"
	"vo-scaffolding/internal/database"
)

func tablesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables and views that would be generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return explain(err, *configPath)
			}

			scanner := database.NewScanner()
			if err := scanner.Connect(ctx, cfg.Connection()); err != nil {
				return err
			}
			defer scanner.Disconnect()

			entities, err := database.ReadSchema(ctx, scanner, database.ReadOptions{
				Pattern: cfg.Pattern(),
				Prefix:  cfg.Prefix,
				Suffix:  cfg.Suffix,
			})
			if err != nil {
				return err
			}

			for _, e := range entities {
				fmt.Fprintf(out, "  %-5s %-30s -> %s (%d columns)\n",
					strings.ToLower(e.Kind), e.Table, color.New(color.FgCyan).Sprint(e.Name), len(e.Columns))
			}
			fmt.Fprintf(out, "%d table(s) matched %q\n", len(entities), cfg.Pattern())
			return nil
		},
	}
}
