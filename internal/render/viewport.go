package render

import "strconv"

// Tier is a responsive size tier derived from viewport width
type Tier string

const (
	TierNarrow Tier = "narrow"
	TierMedium Tier = "medium"
	TierWide   Tier = "wide"
)

// Viewport breakpoints in pixels
const (
	mediumMinWidth = 640
	wideMinWidth   = 768
)

// FontSet maps text roles to CSS font sizes for one tier
type FontSet map[string]string

// fontSizes holds the precomputed per-role sizes for each tier. Roles mirror
// the text levels used by both templates.
var fontSizes = map[Tier]FontSet{
	TierNarrow: {
		"base":         "11px",
		"name":         "16px",
		"section":      "16px",
		"side_section": "8px",
		"item":         "12px",
		"body":         "10px",
		"detail":       "9px",
		"side":         "7px",
		"side_small":   "6px",
		"date":         "8px",
		"tiny":         "6px",
		"padding":      "8px",
	},
	TierMedium: {
		"base":         "13px",
		"name":         "20px",
		"section":      "17px",
		"side_section": "12px",
		"item":         "13px",
		"body":         "11px",
		"detail":       "10px",
		"side":         "11px",
		"side_small":   "10px",
		"date":         "9px",
		"tiny":         "8px",
		"padding":      "10px",
	},
	TierWide: {
		"base":         "14px",
		"name":         "22px",
		"section":      "18px",
		"side_section": "14px",
		"item":         "14px",
		"body":         "12px",
		"detail":       "11px",
		"side":         "13px",
		"side_small":   "12px",
		"date":         "10px",
		"tiny":         "10px",
		"padding":      "15mm",
	},
}

// TierFromWidth maps a viewport width in pixels to a size tier
func TierFromWidth(width int) Tier {
	switch {
	case width < mediumMinWidth:
		return TierNarrow
	case width < wideMinWidth:
		return TierMedium
	default:
		return TierWide
	}
}

// TierFromQuery resolves a tier from a viewport-width query value. Absent or
// unparseable values default to the wide tier, which is what headless
// rendering gets.
func TierFromQuery(value string) Tier {
	if value == "" {
		return TierWide
	}
	width, err := strconv.Atoi(value)
	if err != nil {
		return TierWide
	}
	return TierFromWidth(width)
}

// Fonts returns the font sizes for a tier. Unknown tiers get the wide set.
func Fonts(tier Tier) FontSet {
	if set, ok := fontSizes[tier]; ok {
		return set
	}
	return fontSizes[TierWide]
}
