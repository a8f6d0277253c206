package postgres

import (
	"context"
	"time"

	"github.com/taskora/taskora-api/internal/domain"
	"gorm.io/gorm"
)

type pomodoroRepository struct {
	db *gorm.DB
}

func NewPomodoroRepository(db *gorm.DB) *pomodoroRepository {
	return &pomodoroRepository{db: db}
}

func (r *pomodoroRepository) Create(ctx context.Context, session *domain.PomodoroSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *pomodoroRepository) CountWorkInWindow(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.PomodoroSession{}).
		Where("user_id = ? AND mode = ? AND created_at >= ? AND created_at < ?",
			userID, domain.PomodoroModeWork, from, to).
		Count(&count).Error
	return count, err
}

func (r *pomodoroRepository) SumWorkDurationInWindow(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.PomodoroSession{}).
		Where("user_id = ? AND mode = ? AND created_at >= ? AND created_at < ?",
			userID, domain.PomodoroModeWork, from, to).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	return total, err
}
