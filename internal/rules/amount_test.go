package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "largest currency amount wins",
			text: "Subtotal $12.00\nTax $3.67\nTotal $45.67",
			want: 45.67,
		},
		{
			name: "currency amounts outrank later line items",
			text: "$45.67\n$12.00",
			want: 45.67,
		},
		{
			name: "thousands separators",
			text: "Balance $1,234.56",
			want: 1234.56,
		},
		{
			name: "euro symbol",
			text: "Gesamt €23.90",
			want: 23.9,
		},
		{
			name: "currency symbol with space",
			text: "TOTAL: ₹ 540.00",
			want: 540,
		},
		{
			name: "total line without currency symbol",
			text: "Item 12.00\nTotal 89.99\nCash 100.00",
			want: 89.99,
		},
		{
			name: "balance line without currency symbol",
			text: "Remaining balance: 250.75",
			want: 250.75,
		},
		{
			name: "bare number fallback takes the maximum",
			text: "Qty 2\nWidget 34.99",
			want: 34.99,
		},
		{
			name: "bare numbers outside range are ignored",
			text: "Ref 5551234567\nItem 34.99",
			want: 34.99,
		},
		{
			name: "no numbers at all",
			text: "Thanks for shopping with us",
			want: 0,
		},
		{
			name: "empty text",
			text: "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractAmount(tt.text), 0.0001)
		})
	}
}
