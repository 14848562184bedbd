package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vo-scaffolding/internal/config"
	"vo-scaffolding/internal/generator"
)

func generateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one value object per table or view",
		Long: `Generate reads every table and view matching tableNamePattern and writes
<prefix><Table><suffix>.java into packagePath/<package dirs>. Existing
files are overwritten.

Examples:
  vogen generate
  vogen generate --config vogen.yaml
  vogen generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return runGenerate(cmd, *configPath, dryRun)
		},
	}

	cmd.Flags().Bool("dry-run", false, "print generated sources instead of writing files")

	return cmd
}

func runGenerate(cmd *cobra.Command, configPath string, dryRun bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if !dryRun {
		result, err := generator.Run(ctx, configPath)
		if err != nil {
			return explain(err, configPath)
		}

		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s %s\n", color.New(color.FgGreen).Sprint("WRITE"), filepath.Base(f))
		}
		fmt.Fprintf(out, "%s VO class file(s) created in %d ms.\n",
			color.New(color.Bold).Sprint(result.Entities), result.Elapsed.Milliseconds())
		return nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return explain(err, configPath)
	}

	gen, disconnect, err := generator.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer disconnect()

	rendered, err := gen.Preview(ctx)
	if err != nil {
		return err
	}

	for _, r := range rendered {
		fmt.Fprintf(out, "--- %s ---\n", filepath.Join(cfg.OutputDir, r.FileName))
		fmt.Fprintln(out, r.Source)
	}
	fmt.Fprintln(out, color.New(color.FgYellow).Sprintf("(dry-run mode - %d file(s) not written)", len(rendered)))
	return nil
}

func explain(err error, configPath string) error {
	if config.IsNotFound(err) {
		return fmt.Errorf("%w\nCreate %s or pass --config", err, configPath)
	}
	return err
}
