package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFromWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected Tier
	}{
		{width: 0, expected: TierNarrow},
		{width: 639, expected: TierNarrow},
		{width: 640, expected: TierMedium},
		{width: 767, expected: TierMedium},
		{width: 768, expected: TierWide},
		{width: 1920, expected: TierWide},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFromWidth(tt.width), "width %d", tt.width)
	}
}

func TestTierFromQuery(t *testing.T) {
	t.Run("absent value defaults to wide", func(t *testing.T) {
		assert.Equal(t, TierWide, TierFromQuery(""))
	})

	t.Run("unparseable value defaults to wide", func(t *testing.T) {
		assert.Equal(t, TierWide, TierFromQuery("abc"))
	})

	t.Run("numeric value maps through breakpoints", func(t *testing.T) {
		assert.Equal(t, TierNarrow, TierFromQuery("375"))
		assert.Equal(t, TierMedium, TierFromQuery("700"))
		assert.Equal(t, TierWide, TierFromQuery("1024"))
	})
}

func TestFonts(t *testing.T) {
	t.Run("every tier defines every role", func(t *testing.T) {
		roles := []string{"base", "name", "section", "side_section", "item", "body", "detail", "side", "side_small", "date", "tiny", "padding"}
		for _, tier := range []Tier{TierNarrow, TierMedium, TierWide} {
			set := Fonts(tier)
			for _, role := range roles {
				assert.NotEmpty(t, set[role], "tier %s role %s", tier, role)
			}
		}
	})

	t.Run("unknown tier falls back to wide", func(t *testing.T) {
		assert.Equal(t, Fonts(TierWide), Fonts(Tier("huge")))
	})
}
