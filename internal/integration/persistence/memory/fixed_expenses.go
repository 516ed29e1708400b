package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

type fixedExpenseRepository struct{ s *Store }

func (r *fixedExpenseRepository) Create(_ context.Context, item *entity.FixedExpense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.fixedExpenses[item.ID] = *item
	return nil
}

func (r *fixedExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.fixedExpenses[id]
	if !ok {
		return nil, domainerror.ErrFixedExpenseNotFound
	}
	return &item, nil
}

func (r *fixedExpenseRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.FixedExpense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*entity.FixedExpense, 0)
	for _, item := range r.s.fixedExpenses {
		if item.UserID == userID {
			item := item
			items = append(items, &item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *fixedExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.fixedExpenses[id]; !ok {
		return domainerror.ErrFixedExpenseNotFound
	}
	delete(r.s.fixedExpenses, id)
	return nil
}
