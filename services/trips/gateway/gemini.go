package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// GeminiClient calls the Gemini generateContent endpoint. API-key auth
// goes in a query parameter per the provider's scheme.
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiClient creates a Gemini inference client
func NewGeminiClient(cfg models.GeminiConfig) *GeminiClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends a text prompt tuned for consistent structured output
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.4,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 2048,
		},
	}
	return g.generate(ctx, req)
}

// GenerateFromAudio sends a prompt plus inline WAV audio with low
// temperature and a small output budget, favoring deterministic
// transcription
func (g *GeminiClient) GenerateFromAudio(ctx context.Context, prompt, audioBase64 string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{Text: prompt},
			{InlineData: &inlineData{MimeType: "audio/wav", Data: audioBase64}},
		}}},
		GenerationConfig: generationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 256,
		},
	}
	return g.generate(ctx, req)
}

func (g *GeminiClient) generate(ctx context.Context, genReq generateRequest) (string, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("Gemini request failed",
			logger.String("model", g.model),
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(errBody)))
		return "", fmt.Errorf("%w: gemini returned status %d", apperrors.ErrProvider, resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrProvider, err)
	}

	// No candidate means an empty generation, not a failure
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}
