package models

import "time"

// ScoreRecord is one persisted snapshot of a user's module scores plus their
// average. Rows are append-only: saves never update or delete earlier rows.
type ScoreRecord struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             string    `gorm:"size:64;index;not null;default:anonymous" json:"user_id"`
	CodingScore        float64   `gorm:"not null" json:"coding_score"`
	AptitudeScore      float64   `gorm:"not null" json:"aptitude_score"`
	CommunicationScore float64   `gorm:"not null" json:"communication_score"`
	OverallScore       float64   `gorm:"not null" json:"overall_score"`
	CreatedAt          time.Time `json:"created_at"`
}
