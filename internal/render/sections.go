package render

import (
	"strconv"
	"strings"

	"artreview/internal/document"
)

// Section and table titles, in report order.
const (
	TitleStep1           = "1️⃣ Project Header"
	TitleStep2           = "2️⃣ Files to Attach"
	TitleCopyQuality     = "A. Copy Quality"
	TitleClaimRisk       = "B. Claim Risk"
	TitleConversion      = "C. Label-Claim Conversion"
	TitleArtworkMatch    = "D. Artwork Match"
	TitleFontSize        = "E. Font Size"
	TitleBarcode         = "F. Barcode"
	TitleVisualSnapshots = "G. Visual Snapshots"
	TitleScoreSummary    = "H. Score & Summary"
	TitleTopFixes        = "Top Fixes (❌)"
	TitleAttention       = "Attention (⚠️)"
	TitleNextSteps       = "Next Steps"
	TitleStep4           = "4️⃣ Optional Fields"
	TitleStep5           = "5️⃣ Special Notes / Constraints"
)

// Renderer maps validated documents to report text using fixed symbol
// tables. It never reorders rows and never mutates its input.
type Renderer struct {
	symbols *Symbols
}

// NewRenderer returns a renderer over the given symbol tables.
func NewRenderer(symbols *Symbols) *Renderer {
	return &Renderer{symbols: symbols}
}

// Report renders the whole document: step1, step2, step3's tables A-H (H
// followed by its three lists), step4 when present, step5. Artifacts are
// separated by a blank line; the report ends with a single newline.
func (r *Renderer) Report(doc *document.Document) string {
	parts := []string{
		r.Step1(doc.Step1),
		r.Step2(doc.Step2),
	}
	parts = append(parts, r.Step3(doc.Step3)...)
	if doc.Step4 != nil {
		parts = append(parts, r.Step4(*doc.Step4))
	}
	parts = append(parts, r.Step5(doc.Step5))
	return strings.Join(parts, "\n\n") + "\n"
}

// Step1 renders the project header table.
func (r *Renderer) Step1(s document.Step1) string {
	return Table(TitleStep1, []string{"Field", "Fill In"}, [][]string{
		{"Project Name", s.ProjectName},
		{"Round / Version", s.RoundVersion},
		{"Regions in Scope", r.symbols.FormatRegions(s.RegionsInScope)},
		{"Due Date", s.DueDate},
	})
}

// Step2 renders the attachment list.
func (r *Renderer) Step2(s document.Step2) string {
	rows := make([][]string, 0, len(s.Files))
	for _, f := range s.Files {
		rows = append(rows, []string{f.Type, f.Filename, r.symbols.StatusSymbol(f.StatusCode), f.Note})
	}
	return Table(TitleStep2, []string{"Type", "Filename", "Status", "Note"}, rows)
}

// Step3 renders the eight verification tables in letter order. The score
// summary contributes four artifacts: its table plus three lists.
func (r *Renderer) Step3(s document.Step3) []string {
	parts := []string{
		r.CopyQuality(s.CopyQuality),
		r.ClaimRisk(s.ClaimRisk),
		r.Conversion(s.LabelClaimConversion),
		r.ArtworkMatch(s.ArtworkMatch),
		r.FontSize(s.FontSize),
		r.Barcode(s.Barcode),
		r.VisualSnapshots(s.VisualSnapshots),
	}
	return append(parts, r.ScoreSummary(s.ScoreSummary)...)
}

func (r *Renderer) CopyQuality(items []document.CopyQualityRow) string {
	rows := make([][]string, 0, len(items))
	for _, x := range items {
		rows = append(rows, []string{x.Language, x.OriginalText, x.Recommendation, r.symbols.StatusSymbol(x.StatusCode), x.Evidence})
	}
	return Table(TitleCopyQuality, []string{"Language", "Original Text", "Recommendation", "Status", "Evidence"}, rows)
}

func (r *Renderer) ClaimRisk(items []document.ClaimRiskRow) string {
	rows := make([][]string, 0, len(items))
	for _, x := range items {
		rows = append(rows, []string{
			x.Language, x.Claim, x.RiskLevel, x.Rationale,
			strings.Join(x.RegionsImpacted, ", "), x.Action, r.symbols.StatusSymbol(x.StatusCode),
		})
	}
	return Table(TitleClaimRisk, []string{"Language", "Claim (quote)", "Risk Level", "Rationale", "Regions", "Action", "Status"}, rows)
}

func (r *Renderer) Conversion(items []document.ConversionRow) string {
	rows := make([][]string, 0, len(items))
	for _, x := range items {
		rows = append(rows, []string{
			x.Source, formatNumber(x.DeclaredML), formatNumber(x.CalculatedFlOz), formatNumber(x.DeclaredFlOz),
			yesNo(x.WithinTolerance), r.symbols.StatusSymbol(x.StatusCode), x.Notes,
		})
	}
	return Table(TitleConversion, []string{"Source", "Declared (mL)", "Calculated (fl oz)", "Declared (fl oz)", "Within ±0.10", "Status", "Notes"}, rows)
}

func (r *Renderer) ArtworkMatch(items []document.ArtworkMatchRow) string {
	rows := make([][]string, 0, len(items))
	for _, x := range items {
		match := r.symbols.StatusSymbol("FAIL")
		if x.Match {
			match = r.symbols.StatusSymbol("OK")
		}
		rows = append(rows, []string{x.Field, x.CopyDocValue, x.ArtworkValue, match, x.Notes})
	}
	return Table(TitleArtworkMatch, []string{"Field", "Copy Doc Value", "Artwork Value", "Match", "Notes"}, rows)
}

func (r *Renderer) FontSize(items []document.FontSizeRow) string {
	rows := make([][]string, 0, len(items))
	for _, x := range items {
		rows = append(rows, []string{
			x.Text, x.Jurisdiction, formatNumber(x.RequiredMinPt), formatNumber(x.MeasuredMinPt),
			x.Method, r.symbols.StatusSymbol(x.StatusCode), x.ScreenshotID,
		})
	}
	return Table(TitleFontSize, []string{"Text String / Field", "Jurisdiction", "Required Min (pt)", "Measured Min (pt)", "Method", "Status", "Screenshot ID"}, rows)
}

func (r *Renderer) Barcode(items []document.BarcodeRow) string {
	rows := make([][]string, 0, len(items))
	for _, x := range items {
		rows = append(rows, []string{
			x.Symbology, x.EncodedDigits, yesNo(x.CheckDigitValid),
			formatNumber(x.XDimMM), formatNumber(x.QuietZoneMM), strconv.Itoa(int(x.ModuleCount)),
			formatNumber(x.PrintContrast), x.ScanTest,
		})
	}
	return Table(TitleBarcode, []string{"Symbology", "Encoded Digits", "Check Digit Valid", "X-Dim (mm)", "Quiet Zone (mm)", "Module Count", "Print Contrast", "Scan Test"}, rows)
}

func (r *Renderer) VisualSnapshots(items []document.VisualSnapshotRow) string {
	rows := make([][]string, 0, len(items))
	for _, x := range items {
		rows = append(rows, []string{x.ID, x.What, x.Where, x.Fix, strings.Join(x.LinkedRows, ", "), x.StatusAfterFix})
	}
	return Table(TitleVisualSnapshots, []string{"ID", "What", "Where", "Fix", "Linked Rows", "Status After Fix"}, rows)
}

// ScoreSummary renders table H followed by the three single-column lists,
// always in the same order, headers included even when empty.
func (r *Renderer) ScoreSummary(s document.ScoreSummary) []string {
	rows := make([][]string, 0, len(s.SummaryRows))
	for _, x := range s.SummaryRows {
		rows = append(rows, []string{x.Area, strconv.Itoa(int(x.Checks)), strconv.Itoa(int(x.Matches)), formatNumber(x.ScorePercent), x.Notes})
	}
	return []string{
		Table(TitleScoreSummary, []string{"Area", "Checks", "Matches", "Score %", "Notes"}, rows),
		listTable(TitleTopFixes, s.TopFixes),
		listTable(TitleAttention, s.Attention),
		listTable(TitleNextSteps, s.NextSteps),
	}
}

// Step4 renders only the fields that are present; absence means no row.
func (r *Renderer) Step4(s document.Step4) string {
	var rows [][]string
	if s.VersionChangeLog != nil {
		rows = append(rows, []string{"Version-Change Log", *s.VersionChangeLog})
	}
	if s.CreativeBrandVoiceCheck != nil {
		rows = append(rows, []string{"Creative Brand-Voice Check", *s.CreativeBrandVoiceCheck})
	}
	if s.OnePagePDFSummaryExport != nil {
		rows = append(rows, []string{"One-Page PDF Summary Export", yesNo(*s.OnePagePDFSummaryExport)})
	}
	return Table(TitleStep4, []string{"Field", "Content"}, rows)
}

// Step5 renders the constraints table.
func (r *Renderer) Step5(s document.Step5) string {
	rows := make([][]string, 0, len(s.Constraints))
	for _, x := range s.Constraints {
		rows = append(rows, []string{x.Constraint, x.Source, x.AppliesTo, x.Notes})
	}
	return Table(TitleStep5, []string{"Constraint", "Source", "Applies To (Region/Panel)", "Notes"}, rows)
}

func listTable(title string, items []string) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it})
	}
	return Table(title, []string{"Item"}, rows)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// formatNumber renders a numeric cell with the shortest exact decimal form.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
