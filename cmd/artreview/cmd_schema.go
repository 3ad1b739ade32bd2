package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"artreview/internal/schema"
)

var schemaOut string

// schemaCmd exports the declarative schema model
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Export the SOP schema as JSON Schema",
	Long: `Serializes the built-in schema model in JSON Schema form for external
tooling. The output is deterministic.

Example:
  artreview schema -o sop.artwork-review.schema.json`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOut, "out", "o", "", "write the schema to this file (default stdout)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := schema.Document().ExportJSON()
	if err != nil {
		return fmt.Errorf("export schema: %w", err)
	}

	if schemaOut == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(schemaOut, data, 0644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Printf("Wrote schema to %s\n", schemaOut)
	return nil
}
