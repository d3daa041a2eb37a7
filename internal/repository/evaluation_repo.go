package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/singhkartik1407/skillforge-ai/internal/models"
)

// EvaluationRepository persists the evaluation audit trail.
type EvaluationRepository interface {
	Append(ctx context.Context, record *models.EvaluationRecord) error
	ListByKind(ctx context.Context, kind string, limit int) ([]models.EvaluationRecord, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository instantiates the repository.
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Append(ctx context.Context, record *models.EvaluationRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *evaluationRepository) ListByKind(ctx context.Context, kind string, limit int) ([]models.EvaluationRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.EvaluationRecord{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []models.EvaluationRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
