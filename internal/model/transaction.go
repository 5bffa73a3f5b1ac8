package model

import "time"

// TransactionKind is the type of cash-flow event a transaction records.
type TransactionKind string

// Supported transaction kinds.
const (
	TransactionBuy      TransactionKind = "buy"
	TransactionSell     TransactionKind = "sell"
	TransactionDividend TransactionKind = "dividend"
	TransactionInterest TransactionKind = "interest"
	TransactionFee      TransactionKind = "fee"
)

// ValidTransactionKind reports whether k is one of the supported kinds.
func ValidTransactionKind(k TransactionKind) bool {
	switch k {
	case TransactionBuy, TransactionSell, TransactionDividend,
		TransactionInterest, TransactionFee:
		return true
	}
	return false
}

// Transaction records a single cash-flow event against an investment.
// The investment reference must resolve at creation time; afterwards the
// cascade rules guarantee no live transaction ever points at a deleted
// investment.
type Transaction struct {
	ID           string          `json:"id"`
	InvestmentID string          `json:"investmentId"`
	Kind         TransactionKind `json:"kind"`
	Amount       float64         `json:"amount"`
	Quantity     float64         `json:"quantity,omitempty"`
	UnitPrice    float64         `json:"unitPrice,omitempty"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description,omitempty"`
	Broker       string          `json:"broker,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
