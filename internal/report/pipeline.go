// Package report wires the schema, validator, and renderers into one
// pipeline: bytes in, Markdown report or classified error out. This is the
// testable half of the orchestrator; file and terminal I/O stay in the CLI.
package report

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"artreview/internal/config"
	"artreview/internal/document"
	"artreview/internal/render"
	"artreview/internal/schema"
	"artreview/internal/validate"
)

// Pipeline validates and renders SOP payloads. Safe to reuse across runs;
// all of its state is read-only after construction.
type Pipeline struct {
	schema    *schema.Schema
	validator *validate.Validator
	renderer  *render.Renderer
	logger    *zap.Logger
}

// New builds a pipeline from configuration. Symbol-table overrides are
// merged and checked here, so a config gap fails fast at startup.
func New(cfg *config.Config, logger *zap.Logger) (*Pipeline, error) {
	symbols := render.DefaultSymbols()
	symbols.Merge(cfg.Symbols.Status, cfg.Symbols.RegionFlags, cfg.Symbols.RegionAliases)
	if err := symbols.Check(schema.StatusCodes()); err != nil {
		return nil, err
	}

	s := schema.Document()
	return &Pipeline{
		schema:    s,
		validator: validate.New(s),
		renderer:  render.NewRenderer(symbols),
		logger:    logger,
	}, nil
}

// Validate parses the payload and returns its violation report. The error
// is non-nil only for malformed (unparseable) input.
func (p *Pipeline) Validate(input []byte) (validate.Violations, error) {
	tree, err := document.Parse(input)
	if err != nil {
		return nil, err
	}
	return p.validator.Validate(tree), nil
}

// Run validates then renders. Identical input always yields byte-identical
// output. Failures are classified: document.ErrMalformed for unparseable
// input, validate.Violations for schema violations.
func (p *Pipeline) Run(input []byte) (string, error) {
	runID := uuid.NewString()
	log := p.logger.With(zap.String("run_id", runID))

	tree, err := document.Parse(input)
	if err != nil {
		log.Warn("payload does not parse", zap.Error(err))
		return "", err
	}

	if vs := p.validator.Validate(tree); len(vs) > 0 {
		log.Warn("payload failed validation", zap.Int("violations", len(vs)))
		return "", vs
	}

	doc, err := document.Decode(input)
	if err != nil {
		return "", fmt.Errorf("materialize validated payload: %w", err)
	}

	out := p.renderer.Report(doc)
	log.Debug("report rendered", zap.Int("bytes", len(out)))
	return out, nil
}
