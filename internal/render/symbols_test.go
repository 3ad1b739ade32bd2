package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artreview/internal/schema"
)

func TestSymbols_Check(t *testing.T) {
	t.Run("defaults cover every status code", func(t *testing.T) {
		assert.NoError(t, DefaultSymbols().Check(schema.StatusCodes()))
	})

	t.Run("missing status symbol is a defect", func(t *testing.T) {
		s := DefaultSymbols()
		delete(s.Status, "TBD")
		assert.Error(t, s.Check(schema.StatusCodes()))
	})

	t.Run("missing fallback flag is a defect", func(t *testing.T) {
		s := DefaultSymbols()
		delete(s.RegionFlags, FallbackRegionKey)
		assert.Error(t, s.Check(schema.StatusCodes()))
	})
}

func TestSymbols_CanonicalRegion(t *testing.T) {
	s := DefaultSymbols()

	cases := []struct {
		in   string
		want string
	}{
		{"us", "USA"},
		{"US", "USA"},
		{" US ", "USA"},
		{"U.S.", "USA"},
		{"UNITED STATES", "USA"},
		{"USA", "USA"},
		{"european union", "EU"},
		{"United Kingdom", "UK"},
		{"canada", "CA"},
		{"MARS", "MARS"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, s.CanonicalRegion(tc.in))
		})
	}
}

func TestSymbols_CanonicalRegion_Idempotent(t *testing.T) {
	s := DefaultSymbols()
	for _, raw := range []string{"us", "UNITED STATES", "USA", "MARS"} {
		once := s.CanonicalRegion(raw)
		assert.Equal(t, once, s.CanonicalRegion(once), "canonical key must map to itself")
	}
}

func TestSymbols_RegionSymbol(t *testing.T) {
	s := DefaultSymbols()
	usa := s.RegionFlags["USA"]

	// Aliases and variants all resolve to the USA flag.
	for _, raw := range []string{"us", "US", " US ", "UNITED STATES", "USA"} {
		assert.Equal(t, usa, s.RegionSymbol(raw), "raw=%q", raw)
	}

	// Unknown labels get the fallback symbol.
	assert.Equal(t, s.RegionFlags[FallbackRegionKey], s.RegionSymbol("MARS"))
	// AU is a valid enum member with no dedicated flag; it falls back too.
	assert.Equal(t, s.RegionFlags[FallbackRegionKey], s.RegionSymbol("AU"))
}

func TestSymbols_FormatRegions(t *testing.T) {
	s := DefaultSymbols()

	t.Run("original label is preserved next to the flag", func(t *testing.T) {
		got := s.FormatRegions([]string{"us", "MARS"})
		want := s.RegionFlags["USA"] + " us, " + s.RegionFlags[FallbackRegionKey] + " MARS"
		assert.Equal(t, want, got)
	})

	t.Run("empty list renders empty", func(t *testing.T) {
		assert.Equal(t, "", s.FormatRegions(nil))
	})
}

func TestSymbols_Merge(t *testing.T) {
	s := DefaultSymbols()
	s.Merge(
		map[string]string{"OK": "[ok]"},
		map[string]string{"AU": "\U0001F1E6\U0001F1FA"},
		map[string]string{"AUSTRALIA": "AU"},
	)

	assert.Equal(t, "[ok]", s.StatusSymbol("OK"))
	assert.Equal(t, "❌", s.StatusSymbol("FAIL"), "unmentioned entries keep defaults")
	assert.Equal(t, "\U0001F1E6\U0001F1FA", s.RegionSymbol("australia"))
	require.NoError(t, s.Check(schema.StatusCodes()))
}
