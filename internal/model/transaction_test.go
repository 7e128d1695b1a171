package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHash(t *testing.T) {
	txn := Transaction{
		Date:        "2025-09-19",
		Amount:      45.67,
		Description: "Starbucks",
		UserID:      "user-1",
	}

	first := txn.GenerateHash()
	second := txn.GenerateHash()
	assert.Equal(t, first, second, "hash must be stable for identical input")

	other := txn
	other.Amount = 45.68
	assert.NotEqual(t, first, other.GenerateHash(), "hash must change with amount")
}

func TestRecordTypeDirection(t *testing.T) {
	assert.Equal(t, DirectionCredit, RecordTypeIn.Direction())
	assert.Equal(t, DirectionDebit, RecordTypeOut.Direction())
	assert.True(t, RecordTypeIn.Valid())
	assert.False(t, RecordType("inflow").Valid())
}

func TestValidRecordCategory(t *testing.T) {
	for _, c := range RecordCategories {
		assert.True(t, ValidRecordCategory(c), c)
	}
	assert.False(t, ValidRecordCategory("Dining"))
	assert.False(t, ValidRecordCategory(""))
}
