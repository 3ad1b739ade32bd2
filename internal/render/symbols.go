// Package render turns a validated SOP document into a deterministic
// Markdown report: fixed normalization tables, a pipe-table writer, and one
// renderer per document section. Nothing here guards against invalid data;
// rendering assumes the validator has already accepted the payload.
package render

import (
	"fmt"
	"strings"
)

// FallbackRegionKey is the canonical key whose symbol decorates any region
// label with no entry of its own.
const FallbackRegionKey = "OTHER"

// Symbols holds the display lookup tables. They are assembled once at
// startup (defaults plus any config overrides) and read-only afterwards.
type Symbols struct {
	Status        map[string]string
	RegionFlags   map[string]string
	RegionAliases map[string]string
}

// DefaultSymbols returns the built-in tables.
func DefaultSymbols() *Symbols {
	return &Symbols{
		Status: map[string]string{
			"OK":   "✅",
			"ATTN": "⚠️",
			"FAIL": "❌",
			"TBD":  "TBD",
			"FYI":  "FYI",
		},
		RegionFlags: map[string]string{
			"USA":             "\U0001F1FA\U0001F1F8", // 🇺🇸
			"EU":              "\U0001F1EA\U0001F1FA", // 🇪🇺
			"UK":              "\U0001F1EC\U0001F1E7", // 🇬🇧
			"CA":              "\U0001F1E8\U0001F1E6", // 🇨🇦
			FallbackRegionKey: "\U0001F310",           // 🌐
		},
		RegionAliases: map[string]string{
			"US":             "USA",
			"UNITED STATES":  "USA",
			"EUROPEAN UNION": "EU",
			"UNITED KINGDOM": "UK",
			"CANADA":         "CA",
		},
	}
}

// Merge layers non-empty override tables on top of the receiver's entries.
func (s *Symbols) Merge(status, flags, aliases map[string]string) {
	for k, v := range status {
		s.Status[k] = v
	}
	for k, v := range flags {
		s.RegionFlags[k] = v
	}
	for k, v := range aliases {
		s.RegionAliases[k] = v
	}
}

// Check verifies the tables cover what rendering will ask of them: every
// status code has a symbol and the fallback flag exists. A gap here is a
// configuration defect, surfaced at startup rather than mid-render.
func (s *Symbols) Check(statusCodes []string) error {
	for _, code := range statusCodes {
		if _, ok := s.Status[code]; !ok {
			return fmt.Errorf("symbols: no status symbol for %q", code)
		}
	}
	if _, ok := s.RegionFlags[FallbackRegionKey]; !ok {
		return fmt.Errorf("symbols: no fallback region flag (%s)", FallbackRegionKey)
	}
	return nil
}

// StatusSymbol maps a status code to its display symbol. The validator
// guarantees only enum members reach this point.
func (s *Symbols) StatusSymbol(code string) string {
	return s.Status[code]
}

// CanonicalRegion normalizes a raw region label (trim, upper-case, strip
// periods) and resolves aliases to the canonical key. Canonical keys map to
// themselves, so the function is idempotent.
func (s *Symbols) CanonicalRegion(raw string) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, ".", "")
	if canonical, ok := s.RegionAliases[key]; ok {
		return canonical
	}
	return key
}

// RegionSymbol returns the flag for a raw region label, substituting the
// fallback symbol for unrecognized labels.
func (s *Symbols) RegionSymbol(raw string) string {
	if flag, ok := s.RegionFlags[s.CanonicalRegion(raw)]; ok {
		return flag
	}
	return s.RegionFlags[FallbackRegionKey]
}

// FormatRegions decorates each label with its flag, preserving the original
// label text, and joins with ", ".
func (s *Symbols) FormatRegions(regions []string) string {
	parts := make([]string, 0, len(regions))
	for _, r := range regions {
		parts = append(parts, strings.TrimSpace(s.RegionSymbol(r)+" "+r))
	}
	return strings.Join(parts, ", ")
}
