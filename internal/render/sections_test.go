package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artreview/internal/document"
)

func newTestRenderer() *Renderer {
	return NewRenderer(DefaultSymbols())
}

func minimalDoc() *document.Document {
	return &document.Document{
		Step1: document.Step1{
			ProjectName:    "X",
			RoundVersion:   "1.0",
			RegionsInScope: []string{"USA"},
			DueDate:        "2025-01-01",
		},
		Step2: document.Step2{Files: []document.FileItem{
			{Type: "Copy Document", Filename: "copy.docx", StatusCode: "OK"},
			{Type: "Artwork", Filename: "art.pdf", StatusCode: "ATTN", Note: "v2"},
		}},
		Step5: document.Step5{},
	}
}

func TestRenderer_Step1(t *testing.T) {
	got := newTestRenderer().Step1(minimalDoc().Step1)
	want := strings.Join([]string{
		TitleStep1,
		"",
		"| Field | Fill In |",
		"|---|---|",
		"| Project Name | X |",
		"| Round / Version | 1.0 |",
		"| Regions in Scope | \U0001F1FA\U0001F1F8 USA |",
		"| Due Date | 2025-01-01 |",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderer_Step2(t *testing.T) {
	got := newTestRenderer().Step2(minimalDoc().Step2)
	assert.Contains(t, got, "| Type | Filename | Status | Note |")
	assert.Contains(t, got, "| Copy Document | copy.docx | ✅ |  |")
	assert.Contains(t, got, "| Artwork | art.pdf | ⚠️ | v2 |")
}

func TestRenderer_Conversion(t *testing.T) {
	got := newTestRenderer().Conversion([]document.ConversionRow{{
		Source:          "front panel",
		DeclaredML:      473,
		CalculatedFlOz:  15.99,
		DeclaredFlOz:    16,
		WithinTolerance: true,
		StatusCode:      "OK",
		Notes:           "",
	}})
	assert.Contains(t, got, "Within ±0.10")
	assert.Contains(t, got, "| front panel | 473 | 15.99 | 16 | Yes | ✅ |  |")
}

func TestRenderer_ArtworkMatch(t *testing.T) {
	got := newTestRenderer().ArtworkMatch([]document.ArtworkMatchRow{
		{Field: "Net Contents", CopyDocValue: "473 mL", ArtworkValue: "473 mL", Match: true},
		{Field: "UPC", CopyDocValue: "0123", ArtworkValue: "0124", Match: false, Notes: "digit swap"},
	})
	assert.Contains(t, got, "| Net Contents | 473 mL | 473 mL | ✅ |  |")
	assert.Contains(t, got, "| UPC | 0123 | 0124 | ❌ | digit swap |")
}

func TestRenderer_ScoreSummary(t *testing.T) {
	parts := newTestRenderer().ScoreSummary(document.ScoreSummary{
		SummaryRows: []document.SummaryRow{{Area: "Copy", Checks: 12, Matches: 11, ScorePercent: 91.7, Notes: "one miss"}},
		TopFixes:    []string{"fix the UPC"},
		NextSteps:   []string{"resubmit"},
	})
	require.Len(t, parts, 4)

	assert.True(t, strings.HasPrefix(parts[0], TitleScoreSummary))
	assert.Contains(t, parts[0], "| Copy | 12 | 11 | 91.7 | one miss |")

	// The three lists always follow in fixed order, even when empty.
	assert.True(t, strings.HasPrefix(parts[1], TitleTopFixes))
	assert.Contains(t, parts[1], "| fix the UPC |")
	assert.Equal(t, TitleAttention+"\n\n| Item |\n|---|", parts[2])
	assert.True(t, strings.HasPrefix(parts[3], TitleNextSteps))
}

func TestRenderer_Step4_PresenceSensitive(t *testing.T) {
	r := newTestRenderer()

	t.Run("no fields set", func(t *testing.T) {
		got := r.Step4(document.Step4{})
		assert.Equal(t, TitleStep4+"\n\n| Field | Content |\n|---|---|", got)
	})

	t.Run("only export flag set", func(t *testing.T) {
		exported := false
		got := r.Step4(document.Step4{OnePagePDFSummaryExport: &exported})
		assert.Contains(t, got, "| One-Page PDF Summary Export | No |")
		assert.NotContains(t, got, "Version-Change Log")
	})

	t.Run("empty string is still a row", func(t *testing.T) {
		empty := ""
		got := r.Step4(document.Step4{VersionChangeLog: &empty})
		assert.Contains(t, got, "| Version-Change Log |  |")
	})
}

func TestRenderer_Report_Order(t *testing.T) {
	out := newTestRenderer().Report(minimalDoc())

	titles := []string{
		TitleStep1, TitleStep2,
		TitleCopyQuality, TitleClaimRisk, TitleConversion, TitleArtworkMatch,
		TitleFontSize, TitleBarcode, TitleVisualSnapshots, TitleScoreSummary,
		TitleTopFixes, TitleAttention, TitleNextSteps,
		TitleStep5,
	}
	pos := -1
	for _, title := range titles {
		idx := strings.Index(out, title)
		require.GreaterOrEqual(t, idx, 0, "missing %q", title)
		require.Greater(t, idx, pos, "%q out of order", title)
		pos = idx
	}

	assert.NotContains(t, out, TitleStep4, "absent step4 renders nothing")
	assert.True(t, strings.HasSuffix(out, "|\n"), "single trailing newline")
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestRenderer_Report_IncludesStep4WhenPresent(t *testing.T) {
	doc := minimalDoc()
	log := "round 2: updated claims"
	doc.Step4 = &document.Step4{VersionChangeLog: &log}

	out := newTestRenderer().Report(doc)
	step4 := strings.Index(out, TitleStep4)
	step5 := strings.Index(out, TitleStep5)
	require.GreaterOrEqual(t, step4, 0)
	assert.Greater(t, step5, step4, "step4 renders before step5")
}

func TestRenderer_Report_Deterministic(t *testing.T) {
	doc := minimalDoc()
	r := newTestRenderer()
	assert.Equal(t, r.Report(doc), r.Report(doc), "byte-identical output for identical input")
}
