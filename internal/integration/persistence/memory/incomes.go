package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

type incomeRepository struct{ s *Store }

func (r *incomeRepository) Create(_ context.Context, income *entity.Income) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.incomes[income.ID] = *income
	return nil
}

func (r *incomeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Income, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	income, ok := r.s.incomes[id]
	if !ok {
		return nil, domainerror.ErrIncomeNotFound
	}
	return &income, nil
}

func (r *incomeRepository) FindByLabel(_ context.Context, userID uuid.UUID, month time.Month, year int) ([]*entity.Income, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*entity.Income, 0)
	for _, income := range r.s.incomes {
		if income.UserID == userID && income.Month == month && income.Year == year {
			income := income
			items = append(items, &income)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *incomeRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.incomes[id]; !ok {
		return domainerror.ErrIncomeNotFound
	}
	delete(r.s.incomes, id)
	return nil
}
