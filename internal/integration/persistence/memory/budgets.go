package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

type budgetRepository struct{ s *Store }

func (r *budgetRepository) Create(_ context.Context, budget *entity.Budget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.findLocked(budget.UserID, budget.Month, budget.Year); ok {
		return domainerror.ErrBudgetAlreadyExists
	}
	r.s.budgets[budget.ID] = *budget
	return nil
}

func (r *budgetRepository) Update(_ context.Context, budget *entity.Budget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.budgets[budget.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	r.s.budgets[budget.ID] = *budget
	return nil
}

func (r *budgetRepository) FindByLabel(_ context.Context, userID uuid.UUID, month time.Month, year int) (*entity.Budget, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	budget, ok := r.findLocked(userID, month, year)
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return &budget, nil
}

func (r *budgetRepository) findLocked(userID uuid.UUID, month time.Month, year int) (entity.Budget, bool) {
	for _, b := range r.s.budgets {
		if b.UserID == userID && b.Month == month && b.Year == year {
			return b, true
		}
	}
	return entity.Budget{}, false
}
