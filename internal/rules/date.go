package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthsByAbbrev decodes 3-letter month prefixes. Matching month names by
// table lookup instead of time.Parse keeps "Sept", "Sep." and full names
// working with one pattern.
var monthsByAbbrev = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

const monthAlt = `(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

// datePattern pairs a regex with a handler that decodes its submatches into
// an ISO date. Patterns are evaluated in declared order with early exit.
type datePattern struct {
	re     *regexp.Regexp
	decode func(m []string) (string, bool)
}

var datePatterns = []datePattern{
	{
		// "Fri, Sep 19, 2025" and variants with full names or periods.
		re: regexp.MustCompile(`(?i)\b(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*\.?,?\s+` + monthAlt + `[a-z]*\.?\s+(\d{1,2}),?\s+(\d{4})`),
		decode: func(m []string) (string, bool) {
			return isoFromMonthName(m[1], m[2], m[3])
		},
	},
	{
		// "Sep 19, 2025" / "September 19 2025".
		re: regexp.MustCompile(`(?i)\b` + monthAlt + `[a-z]*\.?\s+(\d{1,2}),?\s+(\d{4})`),
		decode: func(m []string) (string, bool) {
			return isoFromMonthName(m[1], m[2], m[3])
		},
	},
	{
		// Numeric D/M/Y or Y/M/D with "/", "-" or "." separators.
		re: regexp.MustCompile(`\b(\d{1,4})[/\-.](\d{1,2})[/\-.](\d{2,4})\b`),
		decode: decodeNumericDate,
	},
	{
		// "19 September 2025".
		re: regexp.MustCompile(`(?i)\b(\d{1,2})\s+` + monthAlt + `[a-z]*\.?\s+(\d{4})`),
		decode: func(m []string) (string, bool) {
			return isoFromMonthName(m[2], m[1], m[3])
		},
	},
}

// ExtractDate finds the first recognizable date in the text and returns it
// as YYYY-MM-DD. When nothing matches, the processing day is the documented
// best guess, not an error.
func ExtractDate(text string) string {
	return extractDateAt(text, time.Now())
}

func extractDateAt(text string, now time.Time) string {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if iso, ok := p.decode(m); ok {
			return iso
		}
	}
	return now.Format("2006-01-02")
}

func isoFromMonthName(monthName, dayStr, yearStr string) (string, bool) {
	month, ok := monthsByAbbrev[strings.ToLower(monthName)[:3]]
	if !ok {
		return "", false
	}
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	return isoDate(year, month, day)
}

// decodeNumericDate interprets three numeric fields as Y/M/D when the first
// field has four digits and D/M/Y otherwise. Generic time.Parse is the last
// resort for dates our decoding rejects.
func decodeNumericDate(m []string) (string, bool) {
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	c, _ := strconv.Atoi(m[3])

	var year, month, day int
	if len(m[1]) == 4 {
		year, month, day = a, b, c
	} else {
		day, month, year = a, b, c
		if year < 100 {
			year += 2000
		}
	}

	if iso, ok := isoDate(year, month, day); ok {
		return iso, true
	}

	normalized := strings.NewReplacer("-", "/", ".", "/").Replace(m[0])
	for _, layout := range []string{"2006/01/02", "02/01/2006", "01/02/2006"} {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

func isoDate(year, month, day int) (string, bool) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
