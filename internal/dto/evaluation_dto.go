package dto

import (
	"time"

	"github.com/singhkartik1407/skillforge-ai/internal/models"
)

// CodeEvaluationRequest carries a code submission to evaluate.
type CodeEvaluationRequest struct {
	Question string `json:"question" validate:"required"`
	Language string `json:"language" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

// AptitudeEvaluationRequest carries an answered multiple-choice question.
type AptitudeEvaluationRequest struct {
	Question       string   `json:"question" validate:"required"`
	Options        []string `json:"options" validate:"required,min=1,dive,required"`
	SelectedAnswer string   `json:"selectedAnswer" validate:"required"`
}

// CommunicationEvaluationRequest carries a free-text communication sample.
type CommunicationEvaluationRequest struct {
	Response string `json:"response" validate:"required"`
}

// InsightRequest carries the three module scores the advisory summary is
// derived from. Pointers distinguish an absent field from a legitimate zero.
type InsightRequest struct {
	Coding        *float64 `json:"coding" validate:"required"`
	Aptitude      *float64 `json:"aptitude" validate:"required"`
	Communication *float64 `json:"communication" validate:"required"`
}

// EvaluationRecordResponse is the serialized representation of one audit
// trail entry.
type EvaluationRecordResponse struct {
	ID            uint                   `json:"id"`
	Kind          string                 `json:"kind"`
	Outcome       string                 `json:"outcome"`
	CorrelationID string                 `json:"correlation_id"`
	Result        map[string]interface{} `json:"result"`
	CreatedAt     time.Time              `json:"created_at"`
}

// NewEvaluationRecordResponse converts a model into a DTO.
func NewEvaluationRecordResponse(record models.EvaluationRecord) EvaluationRecordResponse {
	return EvaluationRecordResponse{
		ID:            record.ID,
		Kind:          record.Kind,
		Outcome:       record.Outcome,
		CorrelationID: record.CorrelationID,
		Result:        map[string]interface{}(record.Result),
		CreatedAt:     record.CreatedAt,
	}
}

// NewEvaluationRecordResponseSlice converts a slice of models into DTOs.
func NewEvaluationRecordResponseSlice(records []models.EvaluationRecord) []EvaluationRecordResponse {
	out := make([]EvaluationRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, NewEvaluationRecordResponse(record))
	}
	return out
}
