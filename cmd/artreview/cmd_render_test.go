package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"artreview/internal/config"
)

const renderTestPayload = `{
	"step1": {"project_name": "X", "round_version": "1.0", "regions_in_scope": ["USA"], "due_date": "2025-01-01"},
	"step2": {"files": [
		{"type": "Copy Document", "filename": "copy.docx", "status_code": "OK"},
		{"type": "Artwork", "filename": "art.pdf", "status_code": "OK"}
	]},
	"step3": {
		"copy_quality": [], "claim_risk": [], "label_claim_conversion": [],
		"artwork_match": [], "font_size": [], "barcode": [], "visual_snapshots": [],
		"score_summary": {"summary_rows": [], "top_fixes": [], "attention": [], "next_steps": []}
	},
	"step5": {"constraints": []}
}`

func setupRenderTest(t *testing.T) string {
	t.Helper()
	cfg = config.Default()
	logger = zap.NewNop()
	t.Cleanup(func() {
		renderOut = ""
		renderPretty = false
	})

	payload := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(payload, []byte(renderTestPayload), 0644))
	return payload
}

func TestRunRender_WritesFile(t *testing.T) {
	payload := setupRenderTest(t)
	out := filepath.Join(filepath.Dir(payload), "report.md")
	renderOut = out

	require.NoError(t, runRender(renderCmd, []string{payload}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| Project Name | X |")
}

func TestRunRender_PrettyStillWritesFile(t *testing.T) {
	payload := setupRenderTest(t)
	out := filepath.Join(filepath.Dir(payload), "report.md")
	renderOut = out
	renderPretty = true

	require.NoError(t, runRender(renderCmd, []string{payload}))

	// The preview goes to the terminal; the file still gets the raw Markdown.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| Project Name | X |")
}
