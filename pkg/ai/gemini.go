package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	generateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "skillforge",
		Subsystem: "ai",
		Name:      "generate_duration_seconds",
		Help:      "Duration of generative text requests",
	}, []string{"model"})

	generateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skillforge",
		Subsystem: "ai",
		Name:      "generate_failures_total",
		Help:      "Number of failed generative text requests",
	}, []string{"model"})
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1"
	defaultTimeout = 30 * time.Second
)

// GeminiConfig defines configuration options for the Gemini text client.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// GeminiClient implements TextGenerator against the generateContent REST API.
type GeminiClient struct {
	cfg        GeminiConfig
	httpClient *http.Client
	tracer     trace.Tracer
	logger     zerolog.Logger
}

// NewGeminiClient builds a new client using the provided configuration.
func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	tracer := otel.Tracer("github.com/singhkartik1407/skillforge-ai/pkg/ai/gemini")
	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	return &GeminiClient{
		cfg:        cfg,
		httpClient: httpClient,
		tracer:     tracer,
		logger:     logger,
	}, nil
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Generate sends the prompt to the generateContent endpoint and returns the
// first candidate's text. Any transport error, non-success status, or response
// missing the candidate text path is reported as an error; a single attempt is
// made per call.
func (c *GeminiClient) Generate(parent context.Context, prompt string, opts GenerateOptions) (string, error) {
	ctx, span := c.tracer.Start(parent, "gemini.generate", trace.WithAttributes(
		attribute.String("model", c.cfg.Model),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	payload := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	generateDuration.WithLabelValues(c.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", c.fail(span, fmt.Errorf("gemini generate: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.fail(span, fmt.Errorf("read gemini response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("model", c.cfg.Model).Msg("gemini returned non-success status")
		return "", c.fail(span, fmt.Errorf("gemini status %d: %s", resp.StatusCode, truncate(string(raw), 512)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", c.fail(span, fmt.Errorf("decode gemini envelope: %w", err))
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", c.fail(span, fmt.Errorf("gemini envelope missing candidate text"))
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (c *GeminiClient) fail(span trace.Span, err error) error {
	generateFailures.WithLabelValues(c.cfg.Model).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
