package error

import (
	"errors"
	"fmt"

	"github.com/daily-budget/backend/internal/domain/period"
)

// Budget and ledger domain errors. Amount, month, year and date validation
// errors live with their value objects in valueobject and period.
var (
	// ErrBudgetNotFound is returned when no budget exists for a period label.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget for the same label is created twice.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this period")

	// ErrInvalidStartDay is returned when a month start day is outside 1..28.
	ErrInvalidStartDay = errors.New("start day must be between 1 and 28")

	// ErrInvalidLocale is returned when a locale tag cannot be parsed.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrDailyLogNotFound is returned when no ledger row exists for a date.
	ErrDailyLogNotFound = errors.New("daily log not found")

	// ErrDailyLogAlreadyExists is returned when a ledger row for (user, date) already exists.
	ErrDailyLogAlreadyExists = errors.New("daily log already exists for this date")

	// ErrFixedExpenseNotFound is returned when a fixed expense is not found.
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")

	// ErrIncomeNotFound is returned when an income is not found.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrLedgerBusy is returned when the per-user ledger lock could not be obtained.
	ErrLedgerBusy = errors.New("another update for this user is in progress")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount       BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidMonth        BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidYear         BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidStartDay     BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidDate         BudgetErrorCode = "BDG-010005"
	ErrCodeInvalidLocale       BudgetErrorCode = "BDG-010006"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BDG-010007"
	ErrCodeInvalidTimezone     BudgetErrorCode = "BDG-010008"

	// Not found errors (02XXXX)
	ErrCodeBudgetNotFound       BudgetErrorCode = "BDG-020001"
	ErrCodeBudgetUserNotFound   BudgetErrorCode = "BDG-020002"
	ErrCodeFixedExpenseNotFound BudgetErrorCode = "BDG-020003"
	ErrCodeIncomeNotFound       BudgetErrorCode = "BDG-020004"

	// Ledger errors (03XXXX)
	ErrCodeLedgerBusy BudgetErrorCode = "BDG-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewLabelError converts a period.NewLabel failure into a coded budget error.
func NewLabelError(err error) *BudgetError {
	if errors.Is(err, period.ErrInvalidYear) {
		return NewBudgetError(ErrCodeInvalidYear,
			fmt.Sprintf("year must be between %d and %d", period.MinYear, period.MaxYear), err)
	}
	return NewBudgetError(ErrCodeInvalidMonth, "month must be between 1 and 12", err)
}
