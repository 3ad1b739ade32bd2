package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artreview/internal/report"
	"artreview/internal/validate"
	"artreview/internal/watch"
)

var watchOut string

// watchCmd re-renders the report whenever the payload changes
var watchCmd = &cobra.Command{
	Use:   "watch [payload.json]",
	Short: "Watch a payload file and re-render the report on change",
	Long: `Renders the report once, then watches the payload file and re-runs
validation and rendering on every save. A payload that fails validation
mid-edit is reported and the watcher keeps running.

Stop with Ctrl-C.

Example:
  artreview watch payload.json -o report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "report.md", "report file to keep up to date")
}

func runWatch(cmd *cobra.Command, args []string) error {
	payload := args[0]

	pipeline, err := newPipeline()
	if err != nil {
		return err
	}

	render := func() { renderToFile(pipeline, payload, watchOut) }
	render()

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return err
	}

	w, err := watch.New(payload, debounce, logger, render)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Printf("Watching %s; writing %s (Ctrl-C to stop)\n", payload, watchOut)
	<-ctx.Done()
	return nil
}

// renderToFile runs the pipeline once and reports the outcome without
// terminating the watch loop.
func renderToFile(pipeline *report.Pipeline, payload, out string) {
	data, err := os.ReadFile(payload)
	if err != nil {
		logger.Error("read payload", zap.Error(err))
		return
	}

	md, err := pipeline.Run(data)
	if err != nil {
		var vs validate.Violations
		if errors.As(err, &vs) {
			printViolations(vs)
		} else {
			logger.Error("render failed", zap.Error(err))
		}
		return
	}

	if err := os.WriteFile(out, []byte(md), 0644); err != nil {
		logger.Error("write report", zap.Error(err))
		return
	}
	fmt.Printf("Wrote report to %s\n", out)
}
