package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionKind(t *testing.T) {
	credit := Transaction{Amount: decimal.NewFromInt(100), Kind: KindCredit}
	debit := Transaction{Amount: decimal.NewFromInt(-40), Kind: KindDebit}

	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
}

func TestParseOutcomeFailed(t *testing.T) {
	tests := []struct {
		name     string
		outcome  ParseOutcome
		expected bool
	}{
		{
			"Errors with no rows is a hard failure",
			ParseOutcome{Errors: []string{"failed to open file"}, TotalRows: 0},
			true,
		},
		{
			"Errors alongside rows stay advisory",
			ParseOutcome{Errors: []string{"row 3: field count mismatch"}, TotalRows: 10},
			false,
		},
		{
			"No errors no rows is an empty success",
			ParseOutcome{},
			false,
		},
		{
			"Clean parse",
			ParseOutcome{TotalRows: 5},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.outcome.Failed())
		})
	}
}

func TestCapErrors(t *testing.T) {
	o := ParseOutcome{Errors: []string{"a", "b", "c", "d", "e", "f", "g"}}
	o.CapErrors()
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, o.Errors)

	short := ParseOutcome{Errors: []string{"a"}}
	short.CapErrors()
	assert.Equal(t, []string{"a"}, short.Errors)
}
