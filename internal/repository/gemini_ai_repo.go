package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolio-insights/config"
	"portfolio-insights/internal/dto"
	"portfolio-insights/pkg/httpclient"
	"portfolio-insights/pkg/logger"
	"portfolio-insights/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrMissingAPIKey signals that no provider credential is configured.
// Callers treat it like any other generation failure.
var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// TextGenerator is the capability the insight generator depends on:
// one blocking call turning a system instruction and a user prompt
// into free text. Tests substitute canned implementations.
type TextGenerator interface {
	GenerateText(ctx context.Context, system string, prompt string) (string, error)
}

// geminiAIRepository implements TextGenerator against the Google
// Gemini API.
type geminiAIRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
// A missing API key is not a constructor error, the repository stays
// usable and reports ErrMissingAPIKey at call time.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (TextGenerator, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute)

	repo := &geminiAIRepository{
		httpClient:     httpclient.New(cfg.Gemini.BaseURL, cfg.Gemini.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
	}

	if cfg.Gemini.APIKey != "" {
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		repo.genAiClient = genAiClient
	}

	return repo, nil
}

func (r *geminiAIRepository) GenerateText(ctx context.Context, system string, prompt string) (string, error) {
	if r.cfg.Gemini.APIKey == "" || r.genAiClient == nil {
		r.logger.WarnContext(ctx, "gemini api key missing, skipping provider call")
		return "", ErrMissingAPIKey
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	geminiTokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.BaseModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(geminiTokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)
	if err := r.tokenLimiter.Wait(ctx, int(geminiTokenResp.TotalTokens)); err != nil {
		return "", fmt.Errorf("failed to wait for token gemini limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request gemini limit: %w", err)
	}

	payload := dto.GeminiAPIRequest{
		Contents: []dto.Content{{Parts: []dto.Part{{Text: prompt}}}},
	}
	if system != "" {
		payload.SystemInstruction = &dto.Content{Parts: []dto.Part{{Text: system}}}
	}

	geminiAPIResponse := dto.GeminiAPIResponse{}

	apiURL := fmt.Sprintf("/%s:generateContent?key=%s", r.cfg.Gemini.BaseModel, r.cfg.Gemini.APIKey)

	geminiResp, err := r.httpClient.Post(ctx, apiURL, payload, nil, &geminiAPIResponse)
	if err != nil {
		return "", fmt.Errorf("failed to send request to gemini: %w", err)
	}

	if geminiResp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "failed to get data from gemini", logger.IntField("status_code", geminiResp.StatusCode))
		return "", fmt.Errorf("failed to get data: %v", string(geminiResp.Body))
	}

	if len(geminiAPIResponse.Candidates) == 0 || len(geminiAPIResponse.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("invalid response from Gemini API: no content found")
	}

	return geminiAPIResponse.Candidates[0].Content.Parts[0].Text, nil
}
