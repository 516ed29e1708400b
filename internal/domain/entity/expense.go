package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// ExpenseCategory classifies a daily expense.
type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "food"
	ExpenseCategoryTransport     ExpenseCategory = "transport"
	ExpenseCategoryHousing       ExpenseCategory = "housing"
	ExpenseCategoryHealth        ExpenseCategory = "health"
	ExpenseCategoryEntertainment ExpenseCategory = "entertainment"
	ExpenseCategoryShopping      ExpenseCategory = "shopping"
	ExpenseCategoryEducation     ExpenseCategory = "education"
	ExpenseCategoryOther         ExpenseCategory = "other"
)

// ExpenseCategories lists every accepted category in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryFood,
	ExpenseCategoryTransport,
	ExpenseCategoryHousing,
	ExpenseCategoryHealth,
	ExpenseCategoryEntertainment,
	ExpenseCategoryShopping,
	ExpenseCategoryEducation,
	ExpenseCategoryOther,
}

// IsValid reports whether c is a known category.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single spending event on a calendar date.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      valueobject.Amount
	Description *string
	Category    ExpenseCategory
	Date        valueobject.Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	amount valueobject.Amount,
	description *string,
	category ExpenseCategory,
	date valueobject.Date,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TotalExpenses sums the amounts of the given expenses.
func TotalExpenses(items []*Expense) valueobject.Amount {
	total := valueobject.ZeroAmount
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
