package model

import "time"

// Direction indicates whether a recurring obligation moves money in or out.
type Direction string

// Supported obligation directions.
const (
	DirectionInflow  Direction = "inflow"
	DirectionOutflow Direction = "outflow"
)

// ValidDirection reports whether d is a supported direction.
func ValidDirection(d Direction) bool {
	return d == DirectionInflow || d == DirectionOutflow
}

// Frequency is the calendar interval between two consecutive installments.
type Frequency string

// Supported recurrence frequencies.
const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyBiweekly   Frequency = "biweekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyBimonthly  Frequency = "bimonthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

// ValidFrequency reports whether f is a supported frequency.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly,
		FrequencyBimonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// InstallmentStatus is the lifecycle state of one installment.
type InstallmentStatus string

// Installment lifecycle states. Settlement is one-way: there is no
// transition out of settled.
const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentSettled InstallmentStatus = "settled"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// RecurringObligation is the template rule from which installments are
// generated. Exactly one of EndDate, InstallmentCount or open-endedness
// (both unset) determines where generation stops.
type RecurringObligation struct {
	ID               string        `json:"id"`
	Description      string        `json:"description"`
	Amount           float64       `json:"amount"`
	Direction        Direction     `json:"direction"`
	Category         string        `json:"category"`
	InvestmentID     string        `json:"investmentId,omitempty"`
	Frequency        Frequency     `json:"frequency"`
	StartDate        time.Time     `json:"startDate"`
	EndDate          *time.Time    `json:"endDate,omitempty"`
	InstallmentCount int           `json:"installmentCount,omitempty"`
	Active           bool          `json:"active"`
	Notes            string        `json:"notes,omitempty"`
	Installments     []Installment `json:"installments"`
	// AnchorDate and AnchorSequence are the generation basis: the
	// installment at AnchorSequence falls on AnchorDate and every later
	// date advances from that pair by whole frequency steps. Creation
	// anchors at (StartDate, 1); an all-mode scheduled-date edit
	// re-anchors at the edited installment.
	AnchorDate     time.Time `json:"anchorDate"`
	AnchorSequence int       `json:"anchorSequence"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Anchor returns the generation basis for scheduled dates. Obligations
// serialized before re-anchoring existed carry a zero AnchorDate and
// fall back to the start date.
func (o *RecurringObligation) Anchor() (time.Time, int) {
	if o.AnchorDate.IsZero() {
		return o.StartDate, 1
	}
	return o.AnchorDate, o.AnchorSequence
}

// OpenEnded reports whether the obligation has no stop condition and is
// generated lazily up to a look-ahead horizon.
func (o *RecurringObligation) OpenEnded() bool {
	return o.EndDate == nil && o.InstallmentCount == 0
}

// Installment is one concrete, dated occurrence generated from a
// recurring obligation. Sequence numbers are 1-based and contiguous
// within one obligation.
type Installment struct {
	ID            string            `json:"id"`
	ObligationID  string            `json:"obligationId"`
	Sequence      int               `json:"sequence"`
	ScheduledDate time.Time         `json:"scheduledDate"`
	SettledDate   *time.Time        `json:"settledDate,omitempty"`
	Amount        float64           `json:"amount"`
	Category      string            `json:"category"`
	Status        InstallmentStatus `json:"status"`
	TransactionID string            `json:"transactionId,omitempty"`
}
