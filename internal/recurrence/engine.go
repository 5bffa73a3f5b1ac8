// Package recurrence implements the recurrence engine: expanding a
// recurring-obligation rule into concrete installments, advancing their
// lifecycle, and applying single-vs-bulk edits.
//
// The installment state machine is pending -> settled (explicit
// settlement), pending -> overdue (time-driven sweep) and
// overdue -> settled. There is no transition out of settled.
//
// Like the entity store, every operation here maps an old snapshot to a
// new one or fails without touching the old snapshot.
package recurrence

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/clock"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

// DefaultLookaheadMonths is how far ahead open-ended obligations are
// materialized when no explicit horizon is configured.
const DefaultLookaheadMonths = 12

// Engine executes recurrence commands against snapshots.
type Engine struct {
	clock           clock.Clock
	newID           func() string
	lookaheadMonths int
}

// NewEngine creates an Engine with the given clock and open-ended
// look-ahead horizon in months. A non-positive horizon falls back to
// DefaultLookaheadMonths.
func NewEngine(c clock.Clock, lookaheadMonths int) *Engine {
	if lookaheadMonths <= 0 {
		lookaheadMonths = DefaultLookaheadMonths
	}
	return &Engine{clock: c, newID: uuid.NewString, lookaheadMonths: lookaheadMonths}
}

// ObligationInput carries the caller-supplied fields for a new
// recurring obligation.
type ObligationInput struct {
	Description      string
	Amount           float64
	Direction        model.Direction
	Category         string
	InvestmentID     string
	Frequency        model.Frequency
	StartDate        time.Time
	EndDate          *time.Time
	InstallmentCount int
	Notes            string
}

// CreateObligation validates the rule and generates its installment
// schedule immediately. Bounded obligations (end date or fixed count)
// are fully materialized; open-ended ones are generated lazily up to
// the look-ahead horizon.
func (e *Engine) CreateObligation(snap model.Snapshot, in ObligationInput) (model.Snapshot, model.RecurringObligation, error) {
	if strings.TrimSpace(in.Description) == "" {
		return snap, model.RecurringObligation{}, apperrors.ErrEmptyDescription
	}
	if in.Amount <= 0 {
		return snap, model.RecurringObligation{}, apperrors.ErrNonPositiveAmount
	}
	if !model.ValidDirection(in.Direction) {
		return snap, model.RecurringObligation{}, apperrors.ErrInvalidDirection
	}
	if !model.ValidFrequency(in.Frequency) {
		return snap, model.RecurringObligation{}, apperrors.ErrInvalidFrequency
	}
	if in.EndDate != nil && in.InstallmentCount > 0 {
		return snap, model.RecurringObligation{}, apperrors.ErrConflictingStopCondition
	}
	if in.InvestmentID != "" {
		if _, inv := snap.Investment(in.InvestmentID); inv == nil {
			return snap, model.RecurringObligation{}, apperrors.ErrUnresolvedInvestment
		}
	}

	now := e.clock.Now()
	obligation := model.RecurringObligation{
		ID:               e.newID(),
		Description:      in.Description,
		Amount:           in.Amount,
		Direction:        in.Direction,
		Category:         in.Category,
		InvestmentID:     in.InvestmentID,
		Frequency:        in.Frequency,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		InstallmentCount: in.InstallmentCount,
		AnchorDate:       in.StartDate,
		AnchorSequence:   1,
		Active:           true,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	obligation.Installments = e.generate(&obligation, now)

	next := snap.Clone()
	next.Obligations = append(next.Obligations, obligation)
	return next, obligation, nil
}

// generate produces the installment sequence for an obligation,
// starting at sequence 1 from its anchor.
func (e *Engine) generate(ob *model.RecurringObligation, now time.Time) []model.Installment {
	horizon := e.horizon(now)
	installments := []model.Installment{}
	anchorDate, anchorSeq := ob.Anchor()
	for seq := 1; ; seq++ {
		if ob.InstallmentCount > 0 && seq > ob.InstallmentCount {
			break
		}
		scheduled := Advance(anchorDate, ob.Frequency, seq-anchorSeq)
		if ob.EndDate != nil && scheduled.After(*ob.EndDate) {
			break
		}
		if ob.OpenEnded() && scheduled.After(horizon) {
			break
		}
		installments = append(installments, e.newInstallment(ob, seq, scheduled))
	}
	return installments
}

func (e *Engine) newInstallment(ob *model.RecurringObligation, seq int, scheduled time.Time) model.Installment {
	return model.Installment{
		ID:            e.newID(),
		ObligationID:  ob.ID,
		Sequence:      seq,
		ScheduledDate: scheduled,
		Amount:        ob.Amount,
		Category:      ob.Category,
		Status:        model.InstallmentPending,
	}
}

func (e *Engine) horizon(now time.Time) time.Time {
	return addMonthsClamped(now, e.lookaheadMonths)
}

// UpdateObligationInput carries partial obligation metadata fields.
// Amount, category and schedule changes go through EditInstallments so
// the single-vs-bulk semantics stay explicit.
type UpdateObligationInput struct {
	Description *string
	Notes       *string
	Active      *bool
}

// UpdateObligation merges metadata fields into an obligation. Setting
// Active to false halts future generation without retroactively
// altering existing installments.
func (e *Engine) UpdateObligation(snap model.Snapshot, obligationID string, in UpdateObligationInput) (model.Snapshot, model.RecurringObligation, error) {
	if snap.Obligation(obligationID) == nil {
		return snap, model.RecurringObligation{}, apperrors.ErrObligationNotFound
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return snap, model.RecurringObligation{}, apperrors.ErrEmptyDescription
	}

	next := snap.Clone()
	ob := next.Obligation(obligationID)
	if in.Description != nil {
		ob.Description = *in.Description
	}
	if in.Notes != nil {
		ob.Notes = *in.Notes
	}
	if in.Active != nil {
		ob.Active = *in.Active
	}
	ob.UpdatedAt = e.clock.Now()
	return next, *ob, nil
}

// DeleteObligation removes an obligation and its contained installments.
// Transactions already created by settlements are real ledger events and
// are kept.
func (e *Engine) DeleteObligation(snap model.Snapshot, obligationID string) (model.Snapshot, error) {
	if snap.Obligation(obligationID) == nil {
		return snap, apperrors.ErrObligationNotFound
	}
	next := snap.Clone()
	obligations := next.Obligations[:0]
	for _, ob := range next.Obligations {
		if ob.ID != obligationID {
			obligations = append(obligations, ob)
		}
	}
	next.Obligations = obligations
	return next, nil
}

// SettleInput carries optional overrides for a settlement. A nil
// SettledDate means the settlement is dated at the injected clock's now.
type SettleInput struct {
	SettledDate *time.Time
	Amount      *float64
	Category    *string
}

// SettleInstallment transitions an installment to settled. Settling is
// always possible from pending or overdue; settling an already-settled
// installment is a no-op returning the snapshot unchanged, so repeated
// settlement can never duplicate the linked transaction.
//
// When the obligation references an existing investment, settlement
// appends a concrete transaction (interest for inflows, fee for
// outflows) and links its ID on the installment.
func (e *Engine) SettleInstallment(snap model.Snapshot, obligationID string, sequence int, in SettleInput) (model.Snapshot, model.Installment, error) {
	ob := snap.Obligation(obligationID)
	if ob == nil {
		return snap, model.Installment{}, apperrors.ErrObligationNotFound
	}
	current := findInstallment(ob, sequence)
	if current == nil {
		return snap, model.Installment{}, apperrors.ErrInstallmentNotFound
	}
	if current.Status == model.InstallmentSettled {
		return snap, *current, nil
	}
	if in.Amount != nil && *in.Amount <= 0 {
		return snap, model.Installment{}, apperrors.ErrNonPositiveAmount
	}

	settledAt := e.clock.Now()
	if in.SettledDate != nil {
		settledAt = *in.SettledDate
	}

	next := snap.Clone()
	nextOb := next.Obligation(obligationID)
	inst := findInstallment(nextOb, sequence)
	inst.Status = model.InstallmentSettled
	inst.SettledDate = &settledAt
	if in.Amount != nil {
		inst.Amount = *in.Amount
	}
	if in.Category != nil {
		inst.Category = *in.Category
	}

	if nextOb.InvestmentID != "" {
		if _, inv := next.Investment(nextOb.InvestmentID); inv != nil {
			kind := model.TransactionFee
			if nextOb.Direction == model.DirectionInflow {
				kind = model.TransactionInterest
			}
			tx := model.Transaction{
				ID:           e.newID(),
				InvestmentID: nextOb.InvestmentID,
				Kind:         kind,
				Amount:       inst.Amount,
				Date:         settledAt,
				Description:  nextOb.Description,
				CreatedAt:    e.clock.Now(),
			}
			next.Transactions = append(next.Transactions, tx)
			inst.TransactionID = tx.ID
		}
	}
	nextOb.UpdatedAt = e.clock.Now()
	return next, *inst, nil
}

// EditMode selects whether an edit touches one installment or the rule
// template plus all future unsettled installments.
type EditMode string

// Edit modes. EditAll means "this and all future, not-yet-settled
// installments".
const (
	EditIndividual EditMode = "individual"
	EditAll        EditMode = "all"
)

// EditInput carries the fields an edit may change. Nil pointers leave
// the corresponding field unchanged.
type EditInput struct {
	Amount        *float64
	Category      *string
	ScheduledDate *time.Time
}

// EditInstallments applies an edit at the given sequence number.
//
// Individual mode mutates exactly one installment and leaves the parent
// rule and every other installment untouched.
//
// All mode rewrites the obligation's template fields and every
// pending or overdue installment with sequence >= the edited one.
// Settled installments and installments before the edited sequence are
// left byte-for-byte unchanged. When the scheduled date changes, the
// edited installment's new date becomes the obligation's generation
// anchor: affected later installments re-derive their dates from it by
// frequency, and so do installments appended by later horizon top-ups.
func (e *Engine) EditInstallments(snap model.Snapshot, obligationID string, sequence int, mode EditMode, in EditInput) (model.Snapshot, model.RecurringObligation, error) {
	ob := snap.Obligation(obligationID)
	if ob == nil {
		return snap, model.RecurringObligation{}, apperrors.ErrObligationNotFound
	}
	if findInstallment(ob, sequence) == nil {
		return snap, model.RecurringObligation{}, apperrors.ErrInstallmentNotFound
	}
	if in.Amount != nil && *in.Amount <= 0 {
		return snap, model.RecurringObligation{}, apperrors.ErrNonPositiveAmount
	}

	switch mode {
	case EditIndividual, EditAll:
	default:
		return snap, model.RecurringObligation{}, apperrors.ErrInvalidEditMode
	}

	next := snap.Clone()
	nextOb := next.Obligation(obligationID)

	if mode == EditIndividual {
		inst := findInstallment(nextOb, sequence)
		applyEdit(inst, in)
		nextOb.UpdatedAt = e.clock.Now()
		return next, *nextOb, nil
	}

	// All mode: rewrite the template first, then every affected
	// installment. The anchor for re-derived dates is the edited
	// installment's new scheduled date.
	if in.Amount != nil {
		nextOb.Amount = *in.Amount
	}
	if in.Category != nil {
		nextOb.Category = *in.Category
	}

	// A date change moves the generation basis too, so later horizon
	// top-ups stay on the edited schedule instead of reverting to the
	// start date's.
	var anchor time.Time
	if in.ScheduledDate != nil {
		anchor = *in.ScheduledDate
		nextOb.AnchorDate = anchor
		nextOb.AnchorSequence = sequence
	}
	for i := range nextOb.Installments {
		inst := &nextOb.Installments[i]
		if inst.Sequence < sequence || inst.Status == model.InstallmentSettled {
			continue
		}
		if in.Amount != nil {
			inst.Amount = *in.Amount
		}
		if in.Category != nil {
			inst.Category = *in.Category
		}
		if in.ScheduledDate != nil {
			inst.ScheduledDate = Advance(anchor, nextOb.Frequency, inst.Sequence-sequence)
		}
	}
	nextOb.UpdatedAt = e.clock.Now()
	return next, *nextOb, nil
}

func applyEdit(inst *model.Installment, in EditInput) {
	if in.Amount != nil {
		inst.Amount = *in.Amount
	}
	if in.Category != nil {
		inst.Category = *in.Category
	}
	if in.ScheduledDate != nil {
		inst.ScheduledDate = *in.ScheduledDate
	}
}

// AdvanceOverdue is the overdue sweep: every pending installment whose
// scheduled date is strictly before now becomes overdue. The sweep is
// idempotent; running it twice at the same instant changes nothing the
// second time. It never touches settled installments and never reverses
// a status.
func (e *Engine) AdvanceOverdue(snap model.Snapshot, now time.Time) (model.Snapshot, int) {
	changed := 0
	next := snap.Clone()
	for i := range next.Obligations {
		ob := &next.Obligations[i]
		for j := range ob.Installments {
			inst := &ob.Installments[j]
			if inst.Status == model.InstallmentPending && inst.ScheduledDate.Before(now) {
				inst.Status = model.InstallmentOverdue
				changed++
			}
		}
	}
	if changed == 0 {
		return snap, 0
	}
	return next, changed
}

// EnsureHorizon tops up open-ended, active obligations so their
// schedules extend to the look-ahead horizon from now. Sequence numbers
// stay contiguous; existing installments are never touched. Returns the
// number of installments added.
func (e *Engine) EnsureHorizon(snap model.Snapshot, now time.Time) (model.Snapshot, int) {
	horizon := e.horizon(now)
	added := 0
	next := snap.Clone()
	for i := range next.Obligations {
		ob := &next.Obligations[i]
		if !ob.Active || !ob.OpenEnded() {
			continue
		}
		anchorDate, anchorSeq := ob.Anchor()
		for {
			seq := len(ob.Installments) + 1
			scheduled := Advance(anchorDate, ob.Frequency, seq-anchorSeq)
			if scheduled.After(horizon) {
				break
			}
			ob.Installments = append(ob.Installments, e.newInstallment(ob, seq, scheduled))
			added++
		}
	}
	if added == 0 {
		return snap, 0
	}
	return next, added
}

// findInstallment returns the installment with the given sequence
// number, or nil.
func findInstallment(ob *model.RecurringObligation, sequence int) *model.Installment {
	for i := range ob.Installments {
		if ob.Installments[i].Sequence == sequence {
			return &ob.Installments[i]
		}
	}
	return nil
}
