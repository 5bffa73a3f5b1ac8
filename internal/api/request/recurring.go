package request

// CreateObligationRequest represents the request body for creating a
// recurring obligation. EndDate and InstallmentCount are mutually
// exclusive; leaving both unset makes the obligation open-ended.
type CreateObligationRequest struct {
	Description      string  `json:"description"`
	Amount           float64 `json:"amount"`
	Direction        string  `json:"direction"`
	Category         string  `json:"category,omitempty"`
	InvestmentID     string  `json:"investmentId,omitempty"`
	Frequency        string  `json:"frequency"`
	StartDate        string  `json:"startDate"`
	EndDate          *string `json:"endDate,omitempty"`
	InstallmentCount int     `json:"installmentCount,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}

// UpdateObligationRequest carries partial obligation metadata. Amount,
// category and schedule edits go through the installment edit endpoint.
type UpdateObligationRequest struct {
	Description *string `json:"description,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// SettleInstallmentRequest represents the request body for settling an
// installment. All fields are optional overrides.
type SettleInstallmentRequest struct {
	SettledDate *string  `json:"settledDate,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// EditInstallmentsRequest represents the request body for editing
// installments. Mode is "individual" or "all".
type EditInstallmentsRequest struct {
	Mode          string   `json:"mode"`
	Amount        *float64 `json:"amount,omitempty"`
	Category      *string  `json:"category,omitempty"`
	ScheduledDate *string  `json:"scheduledDate,omitempty"`
}
