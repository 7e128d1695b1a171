package rules

import (
	"regexp"
	"strings"
	"unicode"
)

// wellKnownMerchants is checked against every line as a whole-line or prefix
// match before any heuristic runs. First hit wins.
var wellKnownMerchants = []string{
	"Amazon", "Walmart", "Costco", "Target", "Starbucks", "McDonald",
	"Tim Hortons", "Uber", "Lyft", "Netflix", "Spotify", "Apple", "Google",
	"Microsoft", "PayPal",
}

// noiseWords disqualify administrative lines from being merchant candidates.
var noiseWords = []string{
	"transaction", "details", "posted", "card number", "category", "budget",
	"note", "merchant", "website",
}

var (
	weekdayRe    = regexp.MustCompile(`(?i)\b(mon|tue|wed|thu|fri|sat|sun)\b`)
	phoneRe      = regexp.MustCompile(`\(\d{3}\)|\d{3}[-.\s]\d{3}[-.\s]?\d{0,4}`)
	leadingPrice = regexp.MustCompile(`^\s*(?:[$€£¥₹₽]\s?\d|\d+\.\d{2}\b)`)
)

// ExtractMerchant picks the most plausible merchant line. Well-known names
// win outright; otherwise the shortest surviving candidate line is assumed
// to be the cleanest merchant name.
func ExtractMerchant(text string) string {
	lines := strings.Split(text, "\n")

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		for _, known := range wellKnownMerchants {
			if strings.EqualFold(line, known) ||
				strings.HasPrefix(strings.ToLower(line), strings.ToLower(known)) {
				return known
			}
		}
	}

	best := ""
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !isMerchantCandidate(line) {
			continue
		}
		if best == "" || len(line) < len(best) {
			best = line
		}
	}
	if best == "" {
		return DefaultMerchant
	}
	return best
}

func isMerchantCandidate(line string) bool {
	if len(line) <= 2 || len(line) >= 50 {
		return false
	}

	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}

	lower := strings.ToLower(line)
	for _, word := range noiseWords {
		if strings.Contains(lower, word) {
			return false
		}
	}

	if weekdayRe.MatchString(line) || phoneRe.MatchString(line) || leadingPrice.MatchString(line) {
		return false
	}

	return true
}
