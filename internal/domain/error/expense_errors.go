package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidCategory is returned when an expense category is not recognized.
	ErrInvalidCategory = errors.New("invalid expense category")

	// ErrNotAuthorizedToModifyExpense is returned when user tries to modify another user's expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify this expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidCategory      ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseID     ExpenseErrorCode = "EXP-010005"

	// Not found errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Authorization errors (03XXXX)
	ErrCodeNotAuthorizedExpense ExpenseErrorCode = "EXP-030001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
