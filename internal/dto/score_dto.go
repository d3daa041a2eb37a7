package dto

import (
	"time"

	"github.com/singhkartik1407/skillforge-ai/internal/models"
)

// SaveScoresRequest carries one score snapshot. Overall is optional; when
// omitted the service derives it as the arithmetic mean of the three modules.
type SaveScoresRequest struct {
	UserID        string   `json:"user_id" validate:"omitempty,max=64"`
	Coding        *float64 `json:"coding" validate:"required"`
	Aptitude      *float64 `json:"aptitude" validate:"required"`
	Communication *float64 `json:"communication" validate:"required"`
	Overall       *float64 `json:"overall"`
}

// ScoreRecordResponse is the serialized representation of a score snapshot.
type ScoreRecordResponse struct {
	ID                 uint      `json:"id"`
	UserID             string    `json:"user_id"`
	CodingScore        float64   `json:"coding_score"`
	AptitudeScore      float64   `json:"aptitude_score"`
	CommunicationScore float64   `json:"communication_score"`
	OverallScore       float64   `json:"overall_score"`
	CreatedAt          time.Time `json:"created_at"`
}

// NewScoreRecordResponse converts a model into a DTO.
func NewScoreRecordResponse(record models.ScoreRecord) ScoreRecordResponse {
	return ScoreRecordResponse{
		ID:                 record.ID,
		UserID:             record.UserID,
		CodingScore:        record.CodingScore,
		AptitudeScore:      record.AptitudeScore,
		CommunicationScore: record.CommunicationScore,
		OverallScore:       record.OverallScore,
		CreatedAt:          record.CreatedAt,
	}
}

// NewScoreRecordResponseSlice converts a slice of models into DTOs.
func NewScoreRecordResponseSlice(records []models.ScoreRecord) []ScoreRecordResponse {
	out := make([]ScoreRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, NewScoreRecordResponse(record))
	}
	return out
}
