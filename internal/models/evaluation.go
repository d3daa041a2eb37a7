package models

import (
	"time"

	"gorm.io/datatypes"
)

// Evaluation outcome labels recorded in the audit trail.
const (
	EvaluationOutcomeParsed      = "parsed"
	EvaluationOutcomeDefaulted   = "defaulted"
	EvaluationOutcomeUnavailable = "unavailable"
	EvaluationOutcomeInternal    = "internal"
)

// EvaluationRecord captures one AI evaluation outcome for auditing. Appends
// are best-effort and never block the evaluation response.
type EvaluationRecord struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	Kind          string            `gorm:"size:32;index;not null" json:"kind"`
	Outcome       string            `gorm:"size:32;not null" json:"outcome"`
	CorrelationID string            `gorm:"size:64" json:"correlation_id"`
	Result        datatypes.JSONMap `json:"result"`
	CreatedAt     time.Time         `json:"created_at"`
}
