package apperrors

import "errors"

// Category sentinels. Every domain error wraps exactly one of these so
// callers can classify with errors.Is without matching specific entities.
var (
	// ErrNotFound indicates that a referenced ID does not exist in the
	// current snapshot.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed or missing required input.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence indicates that the persistence gateway failed to
	// load or save a snapshot.
	ErrPersistence = errors.New("persistence failed")
)

// Domain entity errors represent missing entities in the snapshot.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = wrap(ErrNotFound, "portfolio not found")

	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = wrap(ErrNotFound, "investment not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = wrap(ErrNotFound, "transaction not found")

	// ErrObligationNotFound indicates that a recurring obligation with the given ID does not exist.
	ErrObligationNotFound = wrap(ErrNotFound, "recurring obligation not found")

	// ErrInstallmentNotFound indicates that an installment with the given sequence does not exist.
	ErrInstallmentNotFound = wrap(ErrNotFound, "installment not found")

	// ErrProfileNotFound indicates that no snapshot has been stored for the profile.
	ErrProfileNotFound = wrap(ErrNotFound, "profile not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrEmptyName indicates that a required name field is empty.
	ErrEmptyName = wrap(ErrValidation, "name cannot be empty")

	// ErrEmptyDescription indicates that a required description field is empty.
	ErrEmptyDescription = wrap(ErrValidation, "description cannot be empty")

	// ErrNonPositiveAmount indicates that an amount must be strictly positive.
	ErrNonPositiveAmount = wrap(ErrValidation, "amount must be positive")

	// ErrInvalidInvestmentType indicates an unsupported investment classification.
	ErrInvalidInvestmentType = wrap(ErrValidation, "invalid investment type")

	// ErrInvalidTransactionKind indicates an unsupported transaction kind.
	ErrInvalidTransactionKind = wrap(ErrValidation, "invalid transaction kind")

	// ErrInvalidFrequency indicates an unsupported recurrence frequency.
	ErrInvalidFrequency = wrap(ErrValidation, "invalid recurrence frequency")

	// ErrInvalidDirection indicates an unsupported obligation direction.
	ErrInvalidDirection = wrap(ErrValidation, "invalid direction")

	// ErrUnresolvedInvestment indicates that a transaction references an
	// investment that does not currently exist.
	ErrUnresolvedInvestment = wrap(ErrValidation, "referenced investment does not exist")

	// ErrConflictingStopCondition indicates that an obligation carries both
	// an end date and a fixed installment count.
	ErrConflictingStopCondition = wrap(ErrValidation, "end date and installment count are mutually exclusive")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = wrap(ErrValidation, "invalid UUID format")

	// ErrInvalidEditMode indicates an unsupported installment edit mode.
	ErrInvalidEditMode = wrap(ErrValidation, "invalid edit mode")
)

// Persistence gateway errors. These are propagated to the caller, never
// swallowed; the in-memory snapshot is left untouched when save fails.
var (
	// ErrSnapshotLoad indicates that the gateway failed to load a snapshot.
	ErrSnapshotLoad = wrap(ErrPersistence, "failed to load snapshot")

	// ErrSnapshotSave indicates that the gateway failed to save a snapshot.
	ErrSnapshotSave = wrap(ErrPersistence, "failed to save snapshot")
)

func wrap(category error, msg string) error {
	return &categorized{category: category, msg: msg}
}

// categorized pairs a human-readable message with its category sentinel
// so errors.Is matches both the specific error and its category.
type categorized struct {
	category error
	msg      string
}

func (e *categorized) Error() string { return e.msg }

func (e *categorized) Unwrap() error { return e.category }
