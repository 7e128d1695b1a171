package rules

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyAmountRe = regexp.MustCompile(`[$€£¥₹₽]\s?([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
	numberTokenRe    = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)
)

// totalLineWords mark lines whose first number is likely the receipt total.
var totalLineWords = []string{"total", "amount", "balance"}

// bareNumberCeiling excludes years, phone numbers and reference codes from
// the bare-number fallback.
var bareNumberCeiling = decimal.NewFromInt(100000)

// ExtractAmount finds the transaction amount in the OCR text. Currency-tagged
// numbers win, and the largest one is assumed to be the total, outranking
// line items and subtotals. Failing that, the first number on a
// total/amount/balance line is used, then the largest bare number below the
// ceiling. No numbers at all yields 0.
func ExtractAmount(text string) float64 {
	if max, ok := maxCurrencyAmount(text); ok {
		return max
	}
	if amt, ok := totalLineAmount(text); ok {
		return amt
	}
	if max, ok := maxBareNumber(text); ok {
		return max
	}
	return 0
}

func maxCurrencyAmount(text string) (float64, bool) {
	matches := currencyAmountRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	max := decimal.Zero
	found := false
	for _, m := range matches {
		d, err := parseDecimal(m[1])
		if err != nil {
			continue
		}
		if !found || d.GreaterThan(max) {
			max = d
			found = true
		}
	}
	return max.InexactFloat64(), found
}

func totalLineAmount(text string) (float64, bool) {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		keyed := false
		for _, word := range totalLineWords {
			if strings.Contains(lower, word) {
				keyed = true
				break
			}
		}
		if !keyed {
			continue
		}
		if token := numberTokenRe.FindString(line); token != "" {
			if d, err := parseDecimal(token); err == nil {
				return d.InexactFloat64(), true
			}
		}
	}
	return 0, false
}

func maxBareNumber(text string) (float64, bool) {
	max := decimal.Zero
	found := false
	for _, token := range numberTokenRe.FindAllString(text, -1) {
		d, err := parseDecimal(token)
		if err != nil {
			continue
		}
		if d.LessThanOrEqual(decimal.Zero) || d.GreaterThanOrEqual(bareNumberCeiling) {
			continue
		}
		if !found || d.GreaterThan(max) {
			max = d
			found = true
		}
	}
	return max.InexactFloat64(), found
}

func parseDecimal(token string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
}
