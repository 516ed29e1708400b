package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

type expenseRepository struct{ s *Store }

func (r *expenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.expenses[expense.ID] = *expense
	return nil
}

func (r *expenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	expense, ok := r.s.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return &expense, nil
}

func (r *expenseRepository) FindByDateRange(_ context.Context, userID uuid.UUID, start, end valueobject.Date) ([]*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*entity.Expense, 0)
	for _, expense := range r.s.expenses {
		if expense.UserID != userID || expense.Date.Before(start) || expense.Date.After(end) {
			continue
		}
		expense := expense
		items = append(items, &expense)
	}
	sort.Slice(items, func(i, j int) bool {
		if c := items[i].Date.Compare(items[j].Date); c != 0 {
			return c < 0
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *expenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.expenses[id]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.s.expenses, id)
	return nil
}
