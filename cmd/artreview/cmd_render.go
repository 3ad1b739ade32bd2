package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artreview/internal/validate"
)

var (
	renderOut    string
	renderPretty bool
)

// renderCmd validates a payload and renders the Markdown report
var renderCmd = &cobra.Command{
	Use:   "render [payload.json]",
	Short: "Validate a payload and render its Markdown report",
	Long: `Validates the payload, then renders the report: project header, files to
attach, verification tables A-H, optional fields when present, and special
notes. With --pretty the report is additionally rendered for the terminal;
a file given with -o still receives the raw Markdown.

Examples:
  artreview render payload.json
  artreview render payload.json -o report.md
  artreview render payload.json --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write the report to this file (default stdout)")
	renderCmd.Flags().BoolVar(&renderPretty, "pretty", false, "render the report for the terminal")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	pipeline, err := newPipeline()
	if err != nil {
		return err
	}

	md, err := pipeline.Run(data)
	if err != nil {
		var vs validate.Violations
		if errors.As(err, &vs) {
			printViolations(vs)
		}
		return err
	}

	// The raw Markdown goes to the resolved output regardless of --pretty;
	// the pretty rendering is a terminal preview on top, not a replacement.
	out := renderOut
	if out == "" {
		out = cfg.Render.Output
	}
	if out != "" {
		if err := os.WriteFile(out, []byte(md), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", zap.String("path", out), zap.Int("bytes", len(md)))
	}

	if renderPretty {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("terminal renderer: %w", err)
		}
		pretty, err := tr.Render(md)
		if err != nil {
			return fmt.Errorf("terminal render: %w", err)
		}
		fmt.Print(pretty)
		return nil
	}

	if out == "" {
		fmt.Print(md)
		return nil
	}
	fmt.Printf("Wrote report to %s\n", out)
	return nil
}
