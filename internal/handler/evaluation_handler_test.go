package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/singhkartik1407/skillforge-ai/internal/dto"
	"github.com/singhkartik1407/skillforge-ai/internal/models"
	"github.com/singhkartik1407/skillforge-ai/internal/repository"
	"github.com/singhkartik1407/skillforge-ai/internal/service"
	"github.com/singhkartik1407/skillforge-ai/internal/utils"
	"github.com/singhkartik1407/skillforge-ai/pkg/ai"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ string, _ ai.GenerateOptions) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newEvaluationApp(generator ai.TextGenerator) *fiber.App {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := service.NewEvaluationService(generator, nil, validate, zerolog.Nop())

	app := fiber.New()
	NewEvaluationHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	require.NoError(t, resp.Body.Close())
}

func TestEvaluateCodeMissingFieldsReturns400(t *testing.T) {
	generator := &stubGenerator{text: "{}"}
	app := newEvaluationApp(generator)

	resp := postJSON(t, app, "/api/v1/evaluate-code", `{"language":"go","code":"func main() {}"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body utils.APIResponse
	decodeBody(t, resp, &body)
	require.False(t, body.Success)
	require.Equal(t, "missing required fields", body.Message)
	require.Equal(t, 0, generator.calls)
}

func TestEvaluateCodeMalformedBodyReturns400(t *testing.T) {
	generator := &stubGenerator{text: "{}"}
	app := newEvaluationApp(generator)

	resp := postJSON(t, app, "/api/v1/evaluate-code", `{"question":`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body utils.APIResponse
	decodeBody(t, resp, &body)
	require.Equal(t, "invalid request body", body.Message)
	require.Equal(t, 0, generator.calls)
}

func TestEvaluateCommunicationReturnsUnwrappedResult(t *testing.T) {
	generator := &stubGenerator{
		text: `{"grammar":90,"clarity":80,"confidence":75,"vocabulary":88,"overall":85,"suggestions":["slow down"]}`,
	}
	app := newEvaluationApp(generator)

	resp := postJSON(t, app, "/api/v1/evaluate-communication", `{"response":"I lead the weekly sync."}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ai.CommunicationEvaluation
	decodeBody(t, resp, &result)
	require.Equal(t, 85.0, result.Overall)
	require.Equal(t, []string{"slow down"}, result.Suggestions)
}

func TestEvaluateCodeUpstreamFailureStillReturns200(t *testing.T) {
	generator := &stubGenerator{err: errors.New("gemini status 503")}
	app := newEvaluationApp(generator)

	resp := postJSON(t, app, "/api/v1/evaluate-code", `{"question":"Reverse a string","language":"go","code":"func r() {}"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ai.CodeEvaluation
	decodeBody(t, resp, &result)
	require.Equal(t, 5.0, result.Score)
	require.Equal(t, "AI temporarily unavailable", result.Correctness)
}

func TestEvaluateAptitudeFencedModelOutput(t *testing.T) {
	generator := &stubGenerator{
		text: "```json\n{\"isCorrect\":false,\"correctAnswer\":\"C. 12\",\"explanation\":\"Twelve is the product.\",\"difficulty\":\"Medium\"}\n```",
	}
	app := newEvaluationApp(generator)

	resp := postJSON(t, app, "/api/v1/evaluate-aptitude", `{"question":"3*4?","options":["A. 7","B. 11","C. 12"],"selectedAnswer":"B. 11"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ai.AptitudeEvaluation
	decodeBody(t, resp, &result)
	require.False(t, result.IsCorrect)
	require.Equal(t, "C. 12", result.CorrectAnswer)
	require.Equal(t, "Medium", result.Difficulty)
}

func TestEvaluationsListsAuditTrail(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EvaluationRecord{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := service.NewEvaluationService(
		&stubGenerator{text: `{"isCorrect":true,"correctAnswer":"B. 4","explanation":"Two plus two is four.","difficulty":"Easy"}`},
		repository.NewEvaluationRepository(db),
		validate,
		zerolog.Nop(),
	)

	app := fiber.New()
	NewEvaluationHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1"))

	resp := postJSON(t, app, "/api/v1/evaluate-aptitude", `{"question":"2+2?","options":["A. 3","B. 4"],"selectedAnswer":"B. 4"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/evaluations?kind=aptitude", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []dto.EvaluationRecordResponse
	decodeBody(t, resp, &records)
	require.Len(t, records, 1)
	require.Equal(t, "aptitude", records[0].Kind)
	require.Equal(t, "parsed", records[0].Outcome)
	require.Equal(t, true, records[0].Result["isCorrect"])
}

func TestGenerateInsightReturnsAdvisorySummary(t *testing.T) {
	generator := &stubGenerator{
		text: `{"strongest":"Aptitude","weakest":"Coding","careerSuggestion":"Data Analyst","recommendations":["drill recursion problems"]}`,
	}
	app := newEvaluationApp(generator)

	resp := postJSON(t, app, "/api/v1/generate-insight", `{"coding":40,"aptitude":90,"communication":70}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ai.InsightResult
	decodeBody(t, resp, &result)
	require.Equal(t, "Aptitude", result.Strongest)
	require.Equal(t, []string{"drill recursion problems"}, result.Recommendations)
}
