package request

// CreateInvestmentRequest represents the request body for adding an
// investment to a portfolio. Dates use the YYYY-MM-DD format.
type CreateInvestmentRequest struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category,omitempty"`
	Type                 string   `json:"type"`
	InvestedAmount       float64  `json:"investedAmount"`
	CurrentValue         float64  `json:"currentValue"`
	AcquisitionDate      string   `json:"acquisitionDate"`
	MaturityDate         *string  `json:"maturityDate,omitempty"`
	RealizedReturn       float64  `json:"realizedReturn,omitempty"`
	AnnualizedReturnRate float64  `json:"annualizedReturnRate,omitempty"`
	Broker               string   `json:"broker,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	Active               *bool    `json:"active,omitempty"`
}

// UpdateInvestmentRequest carries partial investment fields; absent
// fields are left unchanged.
type UpdateInvestmentRequest struct {
	Name                 *string  `json:"name,omitempty"`
	Category             *string  `json:"category,omitempty"`
	Type                 *string  `json:"type,omitempty"`
	InvestedAmount       *float64 `json:"investedAmount,omitempty"`
	CurrentValue         *float64 `json:"currentValue,omitempty"`
	AcquisitionDate      *string  `json:"acquisitionDate,omitempty"`
	MaturityDate         *string  `json:"maturityDate,omitempty"`
	RealizedReturn       *float64 `json:"realizedReturn,omitempty"`
	AnnualizedReturnRate *float64 `json:"annualizedReturnRate,omitempty"`
	Broker               *string  `json:"broker,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	Active               *bool    `json:"active,omitempty"`
}
