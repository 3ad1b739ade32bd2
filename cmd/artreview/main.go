package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artreview/internal/config"
	"artreview/internal/report"
	"artreview/internal/validate"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "artreview",
	Short: "artreview - Artwork Review SOP validator and report renderer",
	Long: `artreview checks an Artwork Review SOP payload (steps 1-5) against its
schema and renders a deterministic Markdown report of pipe tables.

Identical input always yields byte-identical output: validation and
rendering are pure functions over the payload, with fixed table order and
fixed symbol tables.

Exit codes: 0 valid/rendered, 1 schema violations, 2 malformed input or
usage error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid logging.level %q: %w", cfg.Logging.Level, err)
		}
		zc.Level = level
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "config file path")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(watchCmd)
}

// newPipeline builds the report pipeline from the loaded configuration.
func newPipeline() (*report.Pipeline, error) {
	return report.New(cfg, logger)
}

// exitCode maps error classes to externally observable codes: schema
// violations and malformed input must be distinguishable to callers.
func exitCode(err error) int {
	var vs validate.Violations
	if errors.As(err, &vs) {
		return 1
	}
	return 2
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var vs validate.Violations
		if errors.As(err, &vs) {
			fmt.Fprintf(os.Stderr, "Error: payload failed validation with %d violation(s)\n", len(vs))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}
