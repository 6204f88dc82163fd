// internal/generation/gemini.go
package generation

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"flashcard_keep/internal/config"
)

// TextCompleter は1回分の補完を返す外部プロバイダの抽象です。
// テストではフェイク実装に差し替える。
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiCompleter は Gemini API を使う TextCompleter の実装です。
// リトライは行わず、1回の失敗をそのまま生成失敗として返します。
type GeminiCompleter struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	logger          *slog.Logger
}

// NewGeminiCompleter はクライアントを初期化します。
// APIキー未設定は起動エラーにせず、Complete 呼び出し時に失敗させます。
func NewGeminiCompleter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*GeminiCompleter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &GeminiCompleter{
		model:           cfg.Gemini.Model,
		temperature:     float32(cfg.Gemini.Temperature),
		maxOutputTokens: int32(cfg.Gemini.MaxOutputTokens),
		logger:          logger,
	}

	if cfg.Gemini.APIKey == "" {
		logger.Warn("Gemini API key not configured; generation requests will fail")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: API key not configured", ErrProvider)
	}
	if prompt == "" {
		return "", ErrEmptyInput
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxOutputTokens,
	}

	g.logger.DebugContext(ctx, "Calling Gemini API",
		"model", g.model,
		"prompt_length", len(prompt),
	)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrProvider)
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", ErrProvider)
	}

	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}
	if text == "" {
		return "", fmt.Errorf("%w: no text in response", ErrProvider)
	}

	g.logger.DebugContext(ctx, "Gemini API call succeeded", "completion_length", len(text))
	return text, nil
}

var _ TextCompleter = (*GeminiCompleter)(nil)
