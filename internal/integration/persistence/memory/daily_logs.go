package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

type dailyLogRepository struct{ s *Store }

func (r *dailyLogRepository) FindByDate(_ context.Context, userID uuid.UUID, date valueobject.Date) (*entity.DailyLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	log, ok := r.findLocked(userID, date)
	if !ok {
		return nil, domainerror.ErrDailyLogNotFound
	}
	return &log, nil
}

func (r *dailyLogRepository) Create(_ context.Context, log *entity.DailyLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.findLocked(log.UserID, log.Date); ok {
		return domainerror.ErrDailyLogAlreadyExists
	}
	r.s.dailyLogs[log.ID] = *log
	return nil
}

func (r *dailyLogRepository) Update(_ context.Context, log *entity.DailyLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.dailyLogs[log.ID]; !ok {
		return domainerror.ErrDailyLogNotFound
	}
	r.s.dailyLogs[log.ID] = *log
	return nil
}

func (r *dailyLogRepository) FindByDateRange(_ context.Context, userID uuid.UUID, start, end valueobject.Date) ([]*entity.DailyLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*entity.DailyLog, 0)
	for _, log := range r.s.dailyLogs {
		if log.UserID != userID || log.Date.Before(start) || log.Date.After(end) {
			continue
		}
		log := log
		items = append(items, &log)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func (r *dailyLogRepository) findLocked(userID uuid.UUID, date valueobject.Date) (entity.DailyLog, bool) {
	for _, log := range r.s.dailyLogs {
		if log.UserID == userID && log.Date == date {
			return log, true
		}
	}
	return entity.DailyLog{}, false
}
