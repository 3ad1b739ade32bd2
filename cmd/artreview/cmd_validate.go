package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artreview/internal/validate"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	codeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// validateCmd checks a payload against the SOP schema
var validateCmd = &cobra.Command{
	Use:   "validate [payload.json]",
	Short: "Validate an SOP payload against the schema",
	Long: `Walks the payload against the declarative schema model and prints every
violation with its path and classification. The validator never stops at the
first error, so the report is complete in one run.

Example:
  artreview validate payload.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	pipeline, err := newPipeline()
	if err != nil {
		return err
	}

	logger.Info("validating payload", zap.String("path", args[0]))
	vs, err := pipeline.Validate(data)
	if err != nil {
		return err
	}
	if len(vs) == 0 {
		fmt.Println(okStyle.Render("payload is valid"))
		return nil
	}

	printViolations(vs)
	return vs
}

// printViolations lists each violation in path order.
func printViolations(vs validate.Violations) {
	for _, v := range vs {
		fmt.Printf("%s %s %s\n",
			pathStyle.Render(v.PathString()),
			codeStyle.Render("["+string(v.Code)+"]"),
			v.Message,
		)
	}
}
