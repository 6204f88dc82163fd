// internal/service/generation_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"flashcard_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用のTextCompleter。受け取ったプロンプトを記録し、固定の応答を返す
type stubCompleter struct {
	gotPrompt string
	response  string
	err       error
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func Test_generationService_GenerateFlashcards(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       *model.GenerateRequest
		completer *stubCompleter
		wantCode  string
		wantCards int
	}{
		{
			name: "正常系: 前後に説明文が付いた応答からカードを抽出できる",
			req:  &model.GenerateRequest{Prompt: "photosynthesis"},
			completer: &stubCompleter{
				response: "Here you go:\n[{\"question\": \"Q1\", \"answer\": \"A1\"}, {\"question\": \"Q2\", \"answer\": \"A2\"}]\nEnjoy!",
			},
			wantCards: 2,
		},
		{
			name:      "異常系: プロンプトもファイルも空",
			req:       &model.GenerateRequest{Prompt: "   "},
			completer: &stubCompleter{},
			wantCode:  "EMPTY_INPUT",
		},
		{
			name:      "異常系: プロバイダ呼び出し失敗",
			req:       &model.GenerateRequest{Prompt: "topic"},
			completer: &stubCompleter{err: errors.New("api quota exceeded")},
			wantCode:  "GENERATION_FAILED",
		},
		{
			name:      "異常系: 応答にJSON配列が含まれない",
			req:       &model.GenerateRequest{Prompt: "topic"},
			completer: &stubCompleter{response: "sorry, I cannot help with that"},
			wantCode:  "GENERATION_PARSE_FAILED",
		},
		{
			name:      "異常系: 空の配列が返された",
			req:       &model.GenerateRequest{Prompt: "topic"},
			completer: &stubCompleter{response: "[]"},
			wantCode:  "GENERATION_EMPTY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGenerationService(tt.completer)
			cards, err := svc.GenerateFlashcards(ctx, tt.req)

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, cards)
			} else {
				require.NoError(t, err)
				assert.Len(t, cards, tt.wantCards)
				assert.Equal(t, "Q1", cards[0].Question)
				// プロンプトに入力内容が埋め込まれていること
				assert.Contains(t, tt.completer.gotPrompt, "photosynthesis")
			}
		})
	}
}

// ファイル内容のみでも生成できること
func Test_generationService_GenerateFlashcards_FileOnly(t *testing.T) {
	ctx := context.Background()
	completer := &stubCompleter{response: `[{"question": "Q", "answer": "A"}]`}

	svc := NewGenerationService(completer)
	cards, err := svc.GenerateFlashcards(ctx, &model.GenerateRequest{FileContent: "lecture notes"})

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Contains(t, completer.gotPrompt, "lecture notes")
}
