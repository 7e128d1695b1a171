package model

// RecordType is the direction vocabulary used by the AI structuring path.
type RecordType string

const (
	// RecordTypeIn marks money coming in.
	RecordTypeIn RecordType = "in"
	// RecordTypeOut marks money going out.
	RecordTypeOut RecordType = "out"
)

// Valid reports whether rt is one of the allowed record types.
func (rt RecordType) Valid() bool {
	return rt == RecordTypeIn || rt == RecordTypeOut
}

// Direction maps the AI vocabulary onto the persisted vocabulary.
func (rt RecordType) Direction() Direction {
	if rt == RecordTypeIn {
		return DirectionCredit
	}
	return DirectionDebit
}

// RecordCategories is the closed category set the AI structuring path may
// emit. Order matters only for prompt construction.
var RecordCategories = []string{
	"shopping",
	"rent",
	"utility",
	"grocery",
	"dining",
	"transportation",
	"entertainment",
	"health",
	"income",
	"fees",
	"transfers",
	"education",
	"other",
}

// ValidRecordCategory reports whether c is in the closed category set.
func ValidRecordCategory(c string) bool {
	for _, known := range RecordCategories {
		if c == known {
			return true
		}
	}
	return false
}

// StructuredRecord is the validated output of the AI structuring path.
// Pointer fields are nullable in the model's JSON output.
type StructuredRecord struct {
	Date        *string    `json:"date"`
	SubCategory *string    `json:"sub_category"`
	Note        *string    `json:"note"`
	Type        RecordType `json:"type"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
}
