package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/singhkartik1407/skillforge-ai/internal/dto"
	"github.com/singhkartik1407/skillforge-ai/internal/middleware"
	"github.com/singhkartik1407/skillforge-ai/internal/models"
	"github.com/singhkartik1407/skillforge-ai/internal/observability"
	"github.com/singhkartik1407/skillforge-ai/pkg/ai"
)

// Evaluation use-case labels. They key generation parameters, metrics, and the
// audit trail.
const (
	KindCode          = "code"
	KindAptitude      = "aptitude"
	KindCommunication = "communication"
	KindInsight       = "insight"
)

// Diagnostic kinds emitted on fallback paths. The response contract masks
// failures from callers, so these are the only way to tell a flaky upstream
// from an internal defect.
const (
	diagUpstream = "upstream-error"
	diagParse    = "parse-error"
	diagInternal = "internal-error"
)

var generationParams = map[string]ai.GenerateOptions{
	KindCode:          {Temperature: 0.2, MaxOutputTokens: 1500},
	KindAptitude:      {Temperature: 0.2, MaxOutputTokens: 2000},
	KindCommunication: {Temperature: 0.2, MaxOutputTokens: 2500},
	KindInsight:       {Temperature: 0.3, MaxOutputTokens: 2000},
}

// Audit trail paging bounds.
const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// EvaluationService runs the AI normalization pipeline for each use case.
// Evaluation methods return an error only when the payload fails validation;
// every downstream failure is absorbed into a degraded-but-well-formed result.
type EvaluationService interface {
	EvaluateCode(ctx context.Context, payload dto.CodeEvaluationRequest) (ai.CodeEvaluation, error)
	EvaluateAptitude(ctx context.Context, payload dto.AptitudeEvaluationRequest) (ai.AptitudeEvaluation, error)
	EvaluateCommunication(ctx context.Context, payload dto.CommunicationEvaluationRequest) (ai.CommunicationEvaluation, error)
	GenerateInsight(ctx context.Context, payload dto.InsightRequest) (ai.InsightResult, error)
	AuditTrail(ctx context.Context, kind string, limit int) ([]dto.EvaluationRecordResponse, error)
}

type evaluationService struct {
	generator ai.TextGenerator
	audits    EvaluationAuditor
	validator *validator.Validate
	logger    zerolog.Logger
}

// EvaluationAuditor persists and reads back the evaluation audit trail.
type EvaluationAuditor interface {
	Append(ctx context.Context, record *models.EvaluationRecord) error
	ListByKind(ctx context.Context, kind string, limit int) ([]models.EvaluationRecord, error)
}

// NewEvaluationService constructs the evaluation orchestrator. The auditor may
// be nil, in which case no audit trail is written.
func NewEvaluationService(generator ai.TextGenerator, audits EvaluationAuditor, validate *validator.Validate, logger zerolog.Logger) EvaluationService {
	return &evaluationService{
		generator: generator,
		audits:    audits,
		validator: validate,
		logger:    logger.With().Str("component", "evaluation_service").Logger(),
	}
}

func (s *evaluationService) EvaluateCode(ctx context.Context, payload dto.CodeEvaluationRequest) (result ai.CodeEvaluation, err error) {
	if err := s.validator.Struct(payload); err != nil {
		return ai.CodeEvaluation{}, err
	}
	defer absorbFault(s, ctx, KindCode, ai.CodeEvaluationFallback, &result, &err)

	prompt := ai.BuildCodePrompt(payload.Question, payload.Language, payload.Code)
	raw, outcome := runPipeline(s, ctx, KindCode, prompt, ai.CodeEvaluationFallback)
	result = raw.Normalized()
	s.audit(ctx, KindCode, outcome, result)
	return result, nil
}

func (s *evaluationService) EvaluateAptitude(ctx context.Context, payload dto.AptitudeEvaluationRequest) (result ai.AptitudeEvaluation, err error) {
	if err := s.validator.Struct(payload); err != nil {
		return ai.AptitudeEvaluation{}, err
	}
	defer absorbFault(s, ctx, KindAptitude, ai.AptitudeEvaluationFallback, &result, &err)

	prompt := ai.BuildAptitudePrompt(payload.Question, payload.Options, payload.SelectedAnswer)
	raw, outcome := runPipeline(s, ctx, KindAptitude, prompt, ai.AptitudeEvaluationFallback)
	result = raw.Normalized()
	s.audit(ctx, KindAptitude, outcome, result)
	return result, nil
}

func (s *evaluationService) EvaluateCommunication(ctx context.Context, payload dto.CommunicationEvaluationRequest) (result ai.CommunicationEvaluation, err error) {
	if err := s.validator.Struct(payload); err != nil {
		return ai.CommunicationEvaluation{}, err
	}
	defer absorbFault(s, ctx, KindCommunication, ai.CommunicationEvaluationFallback, &result, &err)

	prompt := ai.BuildCommunicationPrompt(payload.Response)
	raw, outcome := runPipeline(s, ctx, KindCommunication, prompt, ai.CommunicationEvaluationFallback)
	result = raw.Normalized()
	s.audit(ctx, KindCommunication, outcome, result)
	return result, nil
}

func (s *evaluationService) GenerateInsight(ctx context.Context, payload dto.InsightRequest) (result ai.InsightResult, err error) {
	if err := s.validator.Struct(payload); err != nil {
		return ai.InsightResult{}, err
	}
	defer absorbFault(s, ctx, KindInsight, ai.InsightResultFallback, &result, &err)

	prompt := ai.BuildInsightPrompt(*payload.Coding, *payload.Aptitude, *payload.Communication)
	raw, outcome := runPipeline(s, ctx, KindInsight, prompt, ai.InsightResultFallback)
	result = raw.Normalized()
	s.audit(ctx, KindInsight, outcome, result)
	return result, nil
}

// AuditTrail returns recent evaluation outcomes, newest first, optionally
// filtered by use case. Without an auditor wired the trail is always empty.
func (s *evaluationService) AuditTrail(ctx context.Context, kind string, limit int) ([]dto.EvaluationRecordResponse, error) {
	if s.audits == nil {
		return []dto.EvaluationRecordResponse{}, nil
	}

	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	records, err := s.audits.ListByKind(ctx, kind, limit)
	if err != nil {
		return nil, err
	}

	return dto.NewEvaluationRecordResponseSlice(records), nil
}

// runPipeline is the shared generate -> sanitize -> recover routine. It never
// returns an error: upstream failures and unrecoverable output both map to the
// use-case fallback, with a diagnostic event on each degraded path.
func runPipeline[T any](s *evaluationService, ctx context.Context, kind, prompt string, fallback func(ai.FallbackReason) T) (T, string) {
	text, err := s.generator.Generate(ctx, prompt, generationParams[kind])
	if err != nil {
		s.diagnose(ctx, kind, diagUpstream, err)
		return fallback(ai.FallbackUnavailable), models.EvaluationOutcomeUnavailable
	}

	var result T
	if !ai.DecodeLenient(ai.SanitizeModelText(text), &result) {
		s.diagnose(ctx, kind, diagParse, nil)
		return fallback(ai.FallbackUnparsable), models.EvaluationOutcomeDefaulted
	}

	return result, models.EvaluationOutcomeParsed
}

// absorbFault converts a panic during orchestration into the use-case's
// generic default so callers still receive a well-formed result.
func absorbFault[T any](s *evaluationService, ctx context.Context, kind string, fallback func(ai.FallbackReason) T, result *T, errp *error) {
	if r := recover(); r != nil {
		s.diagnose(ctx, kind, diagInternal, fmt.Errorf("panic: %v", r))
		*result = fallback(ai.FallbackInternal)
		*errp = nil
		s.audit(ctx, kind, models.EvaluationOutcomeInternal, *result)
	}
}

func (s *evaluationService) diagnose(ctx context.Context, kind, diagnostic string, err error) {
	observability.FallbackEvents().WithLabelValues(kind, diagnostic).Inc()

	event := s.logger.Warn().
		Str("kind", kind).
		Str("diagnostic", diagnostic).
		Str("correlation_id", middleware.CorrelationIDFromContext(ctx))
	if err != nil {
		event = event.Err(err)
	}
	event.Msg("evaluation degraded")
}

func (s *evaluationService) audit(ctx context.Context, kind, outcome string, result any) {
	if s.audits == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	var fields datatypes.JSONMap
	if err := json.Unmarshal(payload, &fields); err != nil {
		return
	}

	record := models.EvaluationRecord{
		Kind:          kind,
		Outcome:       outcome,
		CorrelationID: middleware.CorrelationIDFromContext(ctx),
		Result:        fields,
	}
	if err := s.audits.Append(ctx, &record); err != nil {
		s.logger.Warn().Err(err).Str("kind", kind).Msg("failed to append evaluation audit record")
	}
}
