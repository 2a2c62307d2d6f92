package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agenda/internal/config"
	"agenda/internal/render"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var year int
	var output string
	var htmlOutput string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the event page from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := render.Options{
				DatabasePath:   cfg.Paths.Database,
				TemplateDir:    cfg.Paths.TemplateDir,
				OutputPath:     cfg.Paths.Output,
				HTMLOutputPath: cfg.Paths.HTMLOutput,
				Year:           year,
			}
			if opts.OutputPath, err = overridePath(opts.OutputPath, output); err != nil {
				return err
			}
			if opts.HTMLOutputPath, err = overridePath(opts.HTMLOutputPath, htmlOutput); err != nil {
				return err
			}

			result, err := render.Generate(cmd.Context(), opts, ctx.loggerValue())
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", result.OutputPath)
			if result.HTMLOutputPath != "" {
				fmt.Fprintf(out, "Wrote %s\n", result.HTMLOutputPath)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year whose months are linked (default: current year)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Markdown output path (overrides paths.output)")
	cmd.Flags().StringVar(&htmlOutput, "html", "", "Also write an HTML page to this path")
	return cmd
}

func overridePath(current, flagValue string) (string, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return current, nil
	}
	expanded, err := config.ExpandPath(flagValue)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", flagValue, err)
	}
	return expanded, nil
}
