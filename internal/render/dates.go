package render

import "strings"

// CurrentLabel is shown instead of an end date for ongoing entries
const CurrentLabel = "נוכחי"

// hebrewMonths maps two-digit month codes to Hebrew month names
var hebrewMonths = map[string]string{
	"01": "ינואר",
	"02": "פברואר",
	"03": "מרץ",
	"04": "אפריל",
	"05": "מאי",
	"06": "יוני",
	"07": "יולי",
	"08": "אוגוסט",
	"09": "ספטמבר",
	"10": "אוקטובר",
	"11": "נובמבר",
	"12": "דצמבר",
}

// FormatMonthYear formats a "YYYY-MM" date string as a Hebrew month name
// followed by the year. An empty string formats to empty text. A value that
// does not parse as year-month with a known month code is returned verbatim.
func FormatMonthYear(date string) string {
	if date == "" {
		return ""
	}

	parts := strings.SplitN(date, "-", 2)
	if len(parts) != 2 {
		return date
	}
	month, ok := hebrewMonths[parts[1]]
	if !ok {
		return date
	}
	return month + " " + parts[0]
}

// DateRange renders "<start> - <end>" with localized month names. When
// current is true the end date is ignored entirely and the current label is
// shown in its place.
func DateRange(start, end string, current bool) string {
	if current {
		return FormatMonthYear(start) + " - " + CurrentLabel
	}
	return FormatMonthYear(start) + " - " + FormatMonthYear(end)
}
