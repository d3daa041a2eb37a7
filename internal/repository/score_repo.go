package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/singhkartik1407/skillforge-ai/internal/models"
)

// ScoreRepository defines data operations for score records.
type ScoreRepository interface {
	Append(ctx context.Context, record *models.ScoreRecord) error
	Latest(ctx context.Context, userID string) (models.ScoreRecord, error)
	ListNewestFirst(ctx context.Context) ([]models.ScoreRecord, error)
}

type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository instantiates the repository.
func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Append(ctx context.Context, record *models.ScoreRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *scoreRepository) Latest(ctx context.Context, userID string) (models.ScoreRecord, error) {
	var record models.ScoreRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		First(&record).Error; err != nil {
		return models.ScoreRecord{}, err
	}

	return record, nil
}

func (r *scoreRepository) ListNewestFirst(ctx context.Context) ([]models.ScoreRecord, error) {
	var records []models.ScoreRecord
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
