package model

import "time"

// Snapshot is the complete state of one profile at a point in time.
// It is the unit of durability for the persistence gateway and the unit
// of consistency for every command: mutations clone the snapshot, apply
// their changes to the clone and return it, so a snapshot handed to a
// reader never changes underneath it.
type Snapshot struct {
	Portfolios   []Portfolio           `json:"portfolios"`
	Transactions []Transaction         `json:"transactions"`
	Obligations  []RecurringObligation `json:"obligations"`
	SavedAt      time.Time             `json:"savedAt,omitempty"`
}

// Clone returns a deep copy of the snapshot. Slices are copied element
// by element so the clone shares no mutable state with the original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Portfolios:   make([]Portfolio, len(s.Portfolios)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Obligations:  make([]RecurringObligation, len(s.Obligations)),
		SavedAt:      s.SavedAt,
	}
	for i, p := range s.Portfolios {
		cp := p
		if p.Goal != nil {
			goal := *p.Goal
			cp.Goal = &goal
		}
		cp.Investments = make([]Investment, len(p.Investments))
		for j, inv := range p.Investments {
			ci := inv
			if inv.MaturityDate != nil {
				md := *inv.MaturityDate
				ci.MaturityDate = &md
			}
			if inv.Tags != nil {
				ci.Tags = append([]string(nil), inv.Tags...)
			}
			cp.Investments[j] = ci
		}
		out.Portfolios[i] = cp
	}
	copy(out.Transactions, s.Transactions)
	for i, o := range s.Obligations {
		co := o
		if o.EndDate != nil {
			ed := *o.EndDate
			co.EndDate = &ed
		}
		co.Installments = make([]Installment, len(o.Installments))
		for j, inst := range o.Installments {
			ci := inst
			if inst.SettledDate != nil {
				sd := *inst.SettledDate
				ci.SettledDate = &sd
			}
			co.Installments[j] = ci
		}
		out.Obligations[i] = co
	}
	return out
}

// Portfolio returns the portfolio with the given ID, or nil.
func (s *Snapshot) Portfolio(portfolioID string) *Portfolio {
	for i := range s.Portfolios {
		if s.Portfolios[i].ID == portfolioID {
			return &s.Portfolios[i]
		}
	}
	return nil
}

// Investment resolves an investment ID anywhere in the snapshot.
// Returns the owning portfolio and the investment, or nils when the ID
// does not resolve.
func (s *Snapshot) Investment(investmentID string) (*Portfolio, *Investment) {
	for i := range s.Portfolios {
		if inv := s.Portfolios[i].Investment(investmentID); inv != nil {
			return &s.Portfolios[i], inv
		}
	}
	return nil, nil
}

// Obligation returns the recurring obligation with the given ID, or nil.
func (s *Snapshot) Obligation(obligationID string) *RecurringObligation {
	for i := range s.Obligations {
		if s.Obligations[i].ID == obligationID {
			return &s.Obligations[i]
		}
	}
	return nil
}
