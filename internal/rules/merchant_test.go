package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "well known merchant whole line",
			text: "Walmart\n123 Main St\nTOTAL $45.67",
			want: "Walmart",
		},
		{
			name: "well known merchant as prefix",
			text: "STARBUCKS STORE #4821\nLatte 5.75",
			want: "Starbucks",
		},
		{
			name: "first well known merchant wins",
			text: "PayPal payment\nNetflix subscription",
			want: "PayPal",
		},
		{
			name: "shortest candidate line wins",
			text: "Fresh Valley Organic Market\nJoe's\n123-456-7890",
			want: "Joe's",
		},
		{
			name: "administrative noise is skipped",
			text: "Transaction Details\nPosted Sep 20\nCorner Bakery\nCard Number ****1234",
			want: "Corner Bakery",
		},
		{
			name: "weekday lines are skipped",
			text: "Fri Sep 19\nCorner Bakery",
			want: "Corner Bakery",
		},
		{
			name: "price leading lines are skipped",
			text: "$45.67 charged\nCorner Bakery",
			want: "Corner Bakery",
		},
		{
			name: "numeric lines are skipped",
			text: "4821 0099 1234\n--- *** ---\nCorner Bakery",
			want: "Corner Bakery",
		},
		{
			name: "no candidates",
			text: "12345\n(555) 123-4567\n$9.99",
			want: DefaultMerchant,
		},
		{
			name: "empty text",
			text: "",
			want: DefaultMerchant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMerchant(tt.text))
		})
	}
}
