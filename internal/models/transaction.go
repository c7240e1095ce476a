// Package models defines the canonical transaction representation shared by
// all parsers and the metrics engine.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is a single input record keyed by the (trimmed) header strings of the
// source file. Row order relative to the input is significant; key order is not.
type RawRow map[string]string

// TransactionKind classifies a transaction as money in or money out.
type TransactionKind string

const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

// Transaction is the canonical output unit of normalization. It is constructed
// once per raw row and never mutated afterwards.
//
// Amount is signed: negative for debits, zero or positive for credits. Formats
// that classify by an explicit transaction-type column (paybill) still store
// the amount with a sign consistent with Kind.
type Transaction struct {
	ID          string           `json:"id" csv:"ID"`
	Date        time.Time        `json:"date" csv:"Date"`
	Description string           `json:"description" csv:"Description"`
	Amount      decimal.Decimal  `json:"amount" csv:"Amount"`
	Kind        TransactionKind  `json:"type" csv:"Type"`
	Balance     *decimal.Decimal `json:"balance,omitempty" csv:"Balance"`
	Reference   string           `json:"reference,omitempty" csv:"Reference"`
	Raw         RawRow           `json:"-" csv:"-"`
}

// IsCredit returns true if the transaction is a credit.
func (t Transaction) IsCredit() bool {
	return t.Kind == KindCredit
}

// IsDebit returns true if the transaction is a debit.
func (t Transaction) IsDebit() bool {
	return t.Kind == KindDebit
}
