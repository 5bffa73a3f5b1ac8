package request

// CreateTransactionRequest represents the request body for recording a
// transaction against an investment. Date uses the YYYY-MM-DD format.
type CreateTransactionRequest struct {
	InvestmentID string  `json:"investmentId"`
	Kind         string  `json:"kind"`
	Amount       float64 `json:"amount"`
	Quantity     float64 `json:"quantity,omitempty"`
	UnitPrice    float64 `json:"unitPrice,omitempty"`
	Date         string  `json:"date"`
	Description  string  `json:"description,omitempty"`
	Broker       string  `json:"broker,omitempty"`
}
