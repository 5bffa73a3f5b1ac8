package model

import "time"

// Portfolio represents a named group of investments owned by the profile.
// An investment belongs to exactly one portfolio; deleting a portfolio
// cascades to its investments and their transactions.
type Portfolio struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Goal        *Goal        `json:"goal,omitempty"`
	Investments []Investment `json:"investments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Goal is an optional savings target attached to a portfolio.
type Goal struct {
	TargetValue float64   `json:"targetValue"`
	Deadline    time.Time `json:"deadline"`
	Description string    `json:"description,omitempty"`
}

// Investment returns the investment with the given ID, or nil if the
// portfolio does not own it.
func (p *Portfolio) Investment(investmentID string) *Investment {
	for i := range p.Investments {
		if p.Investments[i].ID == investmentID {
			return &p.Investments[i]
		}
	}
	return nil
}

// InvestmentIDs returns the set of investment ids owned by the portfolio.
// Used by the cascading delete to resolve the full ownership set before
// any transaction is filtered out.
func (p *Portfolio) InvestmentIDs() map[string]bool {
	ids := make(map[string]bool, len(p.Investments))
	for i := range p.Investments {
		ids[p.Investments[i].ID] = true
	}
	return ids
}
