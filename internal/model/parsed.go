package model

// ParsedTransaction is the output of the rule-based fallback parser. Every
// field carries a documented default, so producing one never fails.
type ParsedTransaction struct {
	Date        string // YYYY-MM-DD, defaults to the processing day
	Description string // defaults to "Unknown Merchant"
	Type        Direction
	Amount      float64 // defaults to 0
}
