// internal/service/generation_service.go
package service

import (
	"context"
	"errors"

	"flashcard_keep/internal/generation"
	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
)

type GenerationService interface {
	GenerateFlashcards(ctx context.Context, req *model.GenerateRequest) ([]model.CardPayload, error)
}

type generationService struct {
	completer generation.TextCompleter
}

func NewGenerationService(completer generation.TextCompleter) GenerationService {
	return &generationService{completer: completer}
}

// GenerateFlashcards はプロンプトを組み立て、LLMの応答からカードを抽出します。
// パイプラインは プロンプト組立 → 補完呼び出し → 抽出 の3段で、各段の失敗を区別して返します。
func (s *generationService) GenerateFlashcards(ctx context.Context, req *model.GenerateRequest) ([]model.CardPayload, error) {
	logger := middleware.GetLogger(ctx)

	prompt, err := generation.ComposePrompt(req.Prompt, req.FileContent)
	if err != nil {
		if errors.Is(err, generation.ErrEmptyInput) {
			logger.Warn("Generation rejected: empty input")
			return nil, model.NewAppError("EMPTY_INPUT", "プロンプトまたはファイルを指定してください。", "prompt", model.ErrInvalidInput)
		}
		logger.Error("Failed to compose prompt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロンプトの組み立てに失敗しました。", "", err)
	}

	completion, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		logger.Error("LLM completion failed", "error", err)
		return nil, model.NewAppError("GENERATION_FAILED", "AIによるカード生成に失敗しました。", "", err)
	}

	cards, err := generation.ExtractCards(completion)
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrNoArrayFound), errors.Is(err, generation.ErrMalformedJSON):
			logger.Error("Failed to parse AI response", "error", err)
			return nil, model.NewAppError("GENERATION_PARSE_FAILED", "AIの応答を解析できませんでした。", "", err)
		case errors.Is(err, generation.ErrEmptyResult):
			logger.Warn("AI returned no flashcards")
			return nil, model.NewAppError("GENERATION_EMPTY", "カードが1枚も生成されませんでした。", "", err)
		case errors.Is(err, generation.ErrInvalidCard):
			logger.Error("AI returned invalid card", "error", err)
			return nil, model.NewAppError("GENERATION_PARSE_FAILED", "AIの応答に不正なカードが含まれています。", "", err)
		default:
			logger.Error("Failed to extract cards", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの抽出に失敗しました。", "", err)
		}
	}

	logger.Info("Flashcards generated", "count", len(cards))
	return cards, nil
}
