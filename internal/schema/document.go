package schema

import "regexp"

// Enumerations shared across sections. These are the single source of truth:
// the validator checks membership against them and the symbol tables are
// checked against them at startup.
var (
	regionValues    = []string{"USA", "EU", "UK", "CA", "AU", "Other"}
	languageValues  = []string{"EN", "FR", "ES", "DE", "IT", "PT", "NL", "Other"}
	statusValues    = []string{"OK", "ATTN", "FAIL", "TBD", "FYI"}
	riskLevelValues = []string{"Low", "Medium", "High", "Prohibited"}
	actionValues    = []string{"Keep", "Modify", "Remove", "Escalate"}
	methodValues    = []string{"Bitmap", "Vector", "OCR", "Manual"}
	symbologyValues = []string{"UPC-A", "EAN-13", "Code128", "QR", "DataMatrix", "Other"}
)

// StatusCodes returns the status enumeration. Callers must not mutate it.
func StatusCodes() []string { return statusValues }

// RegionCodes returns the region enumeration. Callers must not mutate it.
func RegionCodes() []string { return regionValues }

var document = buildDocument()

// Document returns the Artwork Review SOP schema. The same instance is
// returned on every call; it is read-only after package initialization.
func Document() *Schema { return document }

func zero() *float64    { v := 0.0; return &v }
func hundred() *float64 { v := 100.0; return &v }

func ref(name string) *Node { return &Node{Ref: name} }

func str() *Node           { return &Node{Kind: String} }
func nonEmptyStr() *Node   { return &Node{Kind: String, MinLength: 1} }
func boolean() *Node       { return &Node{Kind: Boolean} }
func nonNegNumber() *Node  { return &Node{Kind: Number, Minimum: zero()} }
func nonNegInteger() *Node { return &Node{Kind: Integer, Minimum: zero()} }

func enum(values ...string) *Node { return &Node{Kind: String, Enum: values} }

func rowArray(items *Node) *Node { return &Node{Kind: Array, Items: items} }

func stringArray() *Node { return &Node{Kind: Array, Items: str()} }

func object(required []string, props ...Property) *Node {
	return &Node{Kind: Object, Required: required, Properties: props}
}

func prop(name string, n *Node) Property { return Property{Name: name, Node: n} }

func buildDocument() *Schema {
	step1 := object(
		[]string{"project_name", "round_version", "regions_in_scope", "due_date"},
		prop("project_name", nonEmptyStr()),
		prop("round_version", nonEmptyStr()),
		prop("regions_in_scope", &Node{
			Kind:        Array,
			MinItems:    1,
			UniqueItems: true,
			Items:       ref("regionEnum"),
		}),
		prop("due_date", &Node{Kind: String, Pattern: `^TBD$|^\d{4}-\d{2}-\d{2}$`}),
	)
	step1.Title = "Project Header"

	fileItem := object(
		[]string{"type", "filename", "status_code"},
		prop("type", enum("Copy Document", "Artwork", "Other")),
		prop("filename", nonEmptyStr()),
		prop("status_code", ref("statusEnum")),
		prop("note", str()),
	)

	step2 := object(
		[]string{"files"},
		prop("files", &Node{
			Kind:     Array,
			Items:    ref("fileItem"),
			MinItems: 2,
			Contains: []ContainsRule{
				{Field: "type", Value: "Copy Document"},
				{Field: "type", Value: "Artwork"},
			},
		}),
	)
	step2.Title = "Files to Attach"

	copyQuality := rowArray(object(
		[]string{"language", "original_text", "recommendation", "status_code", "evidence"},
		prop("language", ref("languageEnum")),
		prop("original_text", str()),
		prop("recommendation", str()),
		prop("status_code", ref("statusEnum")),
		prop("evidence", str()),
	))

	claimRisk := rowArray(object(
		[]string{"language", "claim", "risk_level", "rationale", "regions_impacted", "action", "status_code"},
		prop("language", ref("languageEnum")),
		prop("claim", str()),
		prop("risk_level", ref("riskLevelEnum")),
		prop("rationale", str()),
		prop("regions_impacted", &Node{
			Kind:        Array,
			MinItems:    1,
			UniqueItems: true,
			Items:       ref("regionEnum"),
		}),
		prop("action", ref("actionEnum")),
		prop("status_code", ref("statusEnum")),
	))

	labelClaimConversion := rowArray(object(
		[]string{"source", "declared_ml", "calculated_fl_oz", "declared_fl_oz", "within_tolerance", "status_code", "notes"},
		prop("source", nonEmptyStr()),
		prop("declared_ml", nonNegNumber()),
		prop("calculated_fl_oz", nonNegNumber()),
		prop("declared_fl_oz", nonNegNumber()),
		prop("within_tolerance", boolean()),
		prop("status_code", ref("statusEnum")),
		prop("notes", str()),
	))

	artworkMatch := rowArray(object(
		[]string{"field", "copy_doc_value", "artwork_value", "match", "notes"},
		prop("field", str()),
		prop("copy_doc_value", str()),
		prop("artwork_value", str()),
		prop("match", boolean()),
		prop("notes", str()),
	))

	fontSize := rowArray(object(
		[]string{"text", "jurisdiction", "required_min_pt", "measured_min_pt", "method", "status_code", "screenshot_id"},
		prop("text", str()),
		prop("jurisdiction", str()),
		prop("required_min_pt", nonNegNumber()),
		prop("measured_min_pt", nonNegNumber()),
		prop("method", ref("methodEnum")),
		prop("status_code", ref("statusEnum")),
		prop("screenshot_id", str()),
	))

	barcode := rowArray(object(
		[]string{"symbology", "encoded_digits", "check_digit_valid", "x_dim_mm", "quiet_zone_mm", "module_count", "print_contrast", "scan_test"},
		prop("symbology", ref("symbologyEnum")),
		prop("encoded_digits", &Node{Kind: String, Pattern: `^[0-9X]+$`}),
		prop("check_digit_valid", boolean()),
		prop("x_dim_mm", nonNegNumber()),
		prop("quiet_zone_mm", nonNegNumber()),
		prop("module_count", nonNegInteger()),
		prop("print_contrast", &Node{Kind: Number, Minimum: zero(), Maximum: hundred()}),
		prop("scan_test", enum("Pass", "Fail", "N/A")),
	))

	visualSnapshots := rowArray(object(
		[]string{"id", "what", "where", "fix", "linked_rows", "status_after_fix"},
		prop("id", &Node{Kind: String, Pattern: `^G-\d{3}$`}),
		prop("what", str()),
		prop("where", str()),
		prop("fix", str()),
		prop("linked_rows", stringArray()),
		prop("status_after_fix", enum("TBD", "Resolved", "Rejected")),
	))

	scoreSummary := object(
		[]string{"summary_rows", "top_fixes", "attention", "next_steps"},
		prop("summary_rows", rowArray(object(
			[]string{"area", "checks", "matches", "score_percent", "notes"},
			prop("area", str()),
			prop("checks", nonNegInteger()),
			prop("matches", nonNegInteger()),
			prop("score_percent", &Node{Kind: Number, Minimum: zero(), Maximum: hundred()}),
			prop("notes", str()),
		))),
		prop("top_fixes", stringArray()),
		prop("attention", stringArray()),
		prop("next_steps", stringArray()),
	)

	step3 := object(
		[]string{"copy_quality", "claim_risk", "label_claim_conversion", "artwork_match", "font_size", "barcode", "visual_snapshots", "score_summary"},
		prop("copy_quality", copyQuality),
		prop("claim_risk", claimRisk),
		prop("label_claim_conversion", labelClaimConversion),
		prop("artwork_match", artworkMatch),
		prop("font_size", fontSize),
		prop("barcode", barcode),
		prop("visual_snapshots", visualSnapshots),
		prop("score_summary", scoreSummary),
	)
	step3.Title = "Core Verification Tables (A–H)"

	step4 := object(
		nil,
		prop("version_change_log", str()),
		prop("creative_brand_voice_check", str()),
		prop("one_page_pdf_summary_export", boolean()),
	)
	step4.Title = "Optional Fields"

	step5 := object(
		[]string{"constraints"},
		prop("constraints", rowArray(object(
			[]string{"constraint", "source", "applies_to", "notes"},
			prop("constraint", str()),
			prop("source", enum("Retailer", "Regulatory", "Brand", "Legal", "Other")),
			prop("applies_to", str()),
			prop("notes", str()),
		))),
	)
	step5.Title = "Special Notes / Constraints"

	root := object(
		[]string{"step1", "step2", "step3", "step5"},
		prop("version", &Node{Kind: String, Pattern: `^\d+\.\d+\.\d+$`}),
		prop("step1", step1),
		prop("step2", step2),
		prop("step3", step3),
		prop("step4", step4),
		prop("step5", step5),
	)

	s := &Schema{
		Title: "Artwork Review SOP — Steps 1–5",
		Root:  root,
		Defs: map[string]*Node{
			"regionEnum":    enum(regionValues...),
			"languageEnum":  enum(languageValues...),
			"statusEnum":    enum(statusValues...),
			"riskLevelEnum": enum(riskLevelValues...),
			"actionEnum":    enum(actionValues...),
			"methodEnum":    enum(methodValues...),
			"symbologyEnum": enum(symbologyValues...),
			"fileItem":      fileItem,
		},
	}
	compilePatterns(s.Root)
	for _, def := range s.Defs {
		compilePatterns(def)
	}
	return s
}

// compilePatterns pre-compiles every pattern in the graph so the schema is
// truly read-only after startup.
func compilePatterns(n *Node) {
	if n == nil {
		return
	}
	if n.Pattern != "" {
		n.pattern = regexp.MustCompile(n.Pattern)
	}
	for _, p := range n.Properties {
		compilePatterns(p.Node)
	}
	compilePatterns(n.Items)
}
