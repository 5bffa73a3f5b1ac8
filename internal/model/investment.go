package model

import "time"

// InvestmentType classifies an investment position.
type InvestmentType string

// Supported investment classifications.
const (
	InvestmentTypeFixedIncome    InvestmentType = "fixed_income"
	InvestmentTypeVariableIncome InvestmentType = "variable_income"
	InvestmentTypeFunds          InvestmentType = "funds"
	InvestmentTypeCrypto         InvestmentType = "crypto"
	InvestmentTypeOther          InvestmentType = "other"
)

// ValidInvestmentType reports whether t is one of the supported classifications.
func ValidInvestmentType(t InvestmentType) bool {
	switch t {
	case InvestmentTypeFixedIncome, InvestmentTypeVariableIncome,
		InvestmentTypeFunds, InvestmentTypeCrypto, InvestmentTypeOther:
		return true
	}
	return false
}

// Investment represents a single position held inside a portfolio.
// Transactions reference investments by ID across the whole snapshot,
// so IDs are globally unique even though ownership is per portfolio.
type Investment struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Category             string         `json:"category,omitempty"`
	Type                 InvestmentType `json:"type"`
	InvestedAmount       float64        `json:"investedAmount"`
	CurrentValue         float64        `json:"currentValue"`
	AcquisitionDate      time.Time      `json:"acquisitionDate"`
	MaturityDate         *time.Time     `json:"maturityDate,omitempty"`
	RealizedReturn       float64        `json:"realizedReturn"`
	AnnualizedReturnRate float64        `json:"annualizedReturnRate"`
	Broker               string         `json:"broker,omitempty"`
	Notes                string         `json:"notes,omitempty"`
	Tags                 []string       `json:"tags,omitempty"`
	Active               bool           `json:"active"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}
