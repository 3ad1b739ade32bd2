// Package document holds both faces of an SOP payload: the loosely-typed
// value tree the validator walks, and the strongly-typed records the
// renderers consume. Typed records are only materialized after the tree has
// passed validation.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks input that could not be parsed at all. It is a distinct
// failure class from schema violations: a payload can be well-formed JSON
// and still fail validation, but a payload that does not parse never reaches
// the validator.
var ErrMalformed = errors.New("malformed payload")

// Parse decodes raw bytes into a generic value tree: map[string]any, []any,
// string, json.Number, bool, nil. Numbers stay as json.Number so the
// validator can distinguish integers from fractional values.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// Trailing garbage after the first value is malformed too.
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformed)
	}
	return tree, nil
}

// Count is a whole number that may arrive on the wire as 30 or 30.0. The
// validator accepts both forms for integer-typed fields, so decoding must
// accept both too.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Count(f)
	return nil
}

// Document is a fully validated SOP payload.
type Document struct {
	Version string `json:"version"`
	Step1   Step1  `json:"step1"`
	Step2   Step2  `json:"step2"`
	Step3   Step3  `json:"step3"`
	Step4   *Step4 `json:"step4"`
	Step5   Step5  `json:"step5"`
}

// Step1 is the project header.
type Step1 struct {
	ProjectName    string   `json:"project_name"`
	RoundVersion   string   `json:"round_version"`
	RegionsInScope []string `json:"regions_in_scope"`
	DueDate        string   `json:"due_date"`
}

// Step2 lists the files to attach.
type Step2 struct {
	Files []FileItem `json:"files"`
}

// FileItem is one attachment row. Note is optional and renders empty when
// absent.
type FileItem struct {
	Type       string `json:"type"`
	Filename   string `json:"filename"`
	StatusCode string `json:"status_code"`
	Note       string `json:"note"`
}

// Step3 carries the core verification tables A-H.
type Step3 struct {
	CopyQuality          []CopyQualityRow     `json:"copy_quality"`
	ClaimRisk            []ClaimRiskRow       `json:"claim_risk"`
	LabelClaimConversion []ConversionRow      `json:"label_claim_conversion"`
	ArtworkMatch         []ArtworkMatchRow    `json:"artwork_match"`
	FontSize             []FontSizeRow        `json:"font_size"`
	Barcode              []BarcodeRow         `json:"barcode"`
	VisualSnapshots      []VisualSnapshotRow  `json:"visual_snapshots"`
	ScoreSummary         ScoreSummary         `json:"score_summary"`
}

type CopyQualityRow struct {
	Language       string `json:"language"`
	OriginalText   string `json:"original_text"`
	Recommendation string `json:"recommendation"`
	StatusCode     string `json:"status_code"`
	Evidence       string `json:"evidence"`
}

type ClaimRiskRow struct {
	Language        string   `json:"language"`
	Claim           string   `json:"claim"`
	RiskLevel       string   `json:"risk_level"`
	Rationale       string   `json:"rationale"`
	RegionsImpacted []string `json:"regions_impacted"`
	Action          string   `json:"action"`
	StatusCode      string   `json:"status_code"`
}

type ConversionRow struct {
	Source          string  `json:"source"`
	DeclaredML      float64 `json:"declared_ml"`
	CalculatedFlOz  float64 `json:"calculated_fl_oz"`
	DeclaredFlOz    float64 `json:"declared_fl_oz"`
	WithinTolerance bool    `json:"within_tolerance"`
	StatusCode      string  `json:"status_code"`
	Notes           string  `json:"notes"`
}

type ArtworkMatchRow struct {
	Field        string `json:"field"`
	CopyDocValue string `json:"copy_doc_value"`
	ArtworkValue string `json:"artwork_value"`
	Match        bool   `json:"match"`
	Notes        string `json:"notes"`
}

type FontSizeRow struct {
	Text          string  `json:"text"`
	Jurisdiction  string  `json:"jurisdiction"`
	RequiredMinPt float64 `json:"required_min_pt"`
	MeasuredMinPt float64 `json:"measured_min_pt"`
	Method        string  `json:"method"`
	StatusCode    string  `json:"status_code"`
	ScreenshotID  string  `json:"screenshot_id"`
}

type BarcodeRow struct {
	Symbology       string  `json:"symbology"`
	EncodedDigits   string  `json:"encoded_digits"`
	CheckDigitValid bool    `json:"check_digit_valid"`
	XDimMM          float64 `json:"x_dim_mm"`
	QuietZoneMM     float64 `json:"quiet_zone_mm"`
	ModuleCount     Count   `json:"module_count"`
	PrintContrast   float64 `json:"print_contrast"`
	ScanTest        string  `json:"scan_test"`
}

type VisualSnapshotRow struct {
	ID             string   `json:"id"`
	What           string   `json:"what"`
	Where          string   `json:"where"`
	Fix            string   `json:"fix"`
	LinkedRows     []string `json:"linked_rows"`
	StatusAfterFix string   `json:"status_after_fix"`
}

// ScoreSummary is table H plus its three trailing lists.
type ScoreSummary struct {
	SummaryRows []SummaryRow `json:"summary_rows"`
	TopFixes    []string     `json:"top_fixes"`
	Attention   []string     `json:"attention"`
	NextSteps   []string     `json:"next_steps"`
}

type SummaryRow struct {
	Area         string  `json:"area"`
	Checks       Count   `json:"checks"`
	Matches      Count   `json:"matches"`
	ScorePercent float64 `json:"score_percent"`
	Notes        string  `json:"notes"`
}

// Step4 holds the optional fields. Pointers preserve presence: an absent
// field emits no row at all, which is different from an empty value.
type Step4 struct {
	VersionChangeLog        *string `json:"version_change_log"`
	CreativeBrandVoiceCheck *string `json:"creative_brand_voice_check"`
	OnePagePDFSummaryExport *bool   `json:"one_page_pdf_summary_export"`
}

// Step5 lists special notes and constraints.
type Step5 struct {
	Constraints []Constraint `json:"constraints"`
}

type Constraint struct {
	Constraint string `json:"constraint"`
	Source     string `json:"source"`
	AppliesTo  string `json:"applies_to"`
	Notes      string `json:"notes"`
}

// Decode materializes typed records from raw bytes. It assumes the payload
// has already passed validation; a decode failure here means the caller
// skipped that step.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode validated payload: %w", err)
	}
	return &doc, nil
}
