package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/singhkartik1407/skillforge-ai/internal/dto"
	"github.com/singhkartik1407/skillforge-ai/internal/models"
	"github.com/singhkartik1407/skillforge-ai/internal/repository"
)

const (
	scoreCacheKey = "scores:history"

	// defaultUserID is used when no identity accompanies the request.
	defaultUserID = "anonymous"
)

// ScoreService persists score snapshots and serves the history feed.
type ScoreService interface {
	Save(ctx context.Context, payload dto.SaveScoresRequest) (dto.ScoreRecordResponse, error)
	History(ctx context.Context) ([]dto.ScoreRecordResponse, error)
}

type scoreService struct {
	scores    repository.ScoreRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewScoreService constructs the score service. The cache client may be nil.
func NewScoreService(scores repository.ScoreRepository, cache *redis.Client, ttl time.Duration, validate *validator.Validate, logger zerolog.Logger) ScoreService {
	return &scoreService{
		scores:    scores,
		cache:     cache,
		cacheTTL:  ttl,
		validator: validate,
		logger:    logger.With().Str("component", "score_service").Logger(),
	}
}

// OverallScore derives the overall score as the arithmetic mean of the three
// module scores.
func OverallScore(coding, aptitude, communication float64) float64 {
	return (coding + aptitude + communication) / 3
}

func (s *scoreService) Save(ctx context.Context, payload dto.SaveScoresRequest) (dto.ScoreRecordResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ScoreRecordResponse{}, err
	}

	userID := payload.UserID
	if userID == "" {
		userID = defaultUserID
	}

	overall := OverallScore(*payload.Coding, *payload.Aptitude, *payload.Communication)
	if payload.Overall != nil {
		overall = *payload.Overall
	}

	record := models.ScoreRecord{
		UserID:             userID,
		CodingScore:        *payload.Coding,
		AptitudeScore:      *payload.Aptitude,
		CommunicationScore: *payload.Communication,
		OverallScore:       overall,
	}

	// Re-saving an unchanged snapshot is a no-op so retries stay idempotent.
	latest, err := s.scores.Latest(ctx, userID)
	if err == nil && sameSnapshot(latest, record) {
		return dto.NewScoreRecordResponse(latest), nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ScoreRecordResponse{}, err
	}

	if err := s.scores.Append(ctx, &record); err != nil {
		return dto.ScoreRecordResponse{}, err
	}

	s.invalidateCache(ctx)

	return dto.NewScoreRecordResponse(record), nil
}

func (s *scoreService) History(ctx context.Context) ([]dto.ScoreRecordResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, scoreCacheKey).Result(); err == nil {
			var response []dto.ScoreRecordResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("score history cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read score history cache")
		}
	}

	records, err := s.scores.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	response := dto.NewScoreRecordResponseSlice(records)

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, scoreCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store score history cache")
			}
		}
	}

	return response, nil
}

// invalidateCache drops the history cache after a confirmed write; the next
// read repopulates it from the datastore.
func (s *scoreService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, scoreCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate score history cache")
	}
}

func sameSnapshot(a, b models.ScoreRecord) bool {
	const epsilon = 1e-9
	return math.Abs(a.CodingScore-b.CodingScore) < epsilon &&
		math.Abs(a.AptitudeScore-b.AptitudeScore) < epsilon &&
		math.Abs(a.CommunicationScore-b.CommunicationScore) < epsilon &&
		math.Abs(a.OverallScore-b.OverallScore) < epsilon
}
