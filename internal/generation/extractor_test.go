// internal/generation/extractor_test.go
package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashcard_keep/internal/model"
)

func TestExtractCards(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		wantErr    error
		wantCards  []model.CardPayload
	}{
		{
			name:       "正常系: 配列のみの応答",
			completion: `[{"question":"Q1","answer":"A1"}]`,
			wantCards:  []model.CardPayload{{Question: "Q1", Answer: "A1"}},
		},
		{
			name:       "正常系: 配列の前後に文章が付いている",
			completion: "Here you go:\n[{\"question\":\"Q1\",\"answer\":\"A1\"},{\"question\":\"Q2\",\"answer\":\"A2\"}]\nEnjoy!",
			wantCards: []model.CardPayload{
				{Question: "Q1", Answer: "A1"},
				{Question: "Q2", Answer: "A2"},
			},
		},
		{
			name:       "正常系: マークダウンのコードフェンス付き",
			completion: "```json\n[{\"question\":\"What is Go?\",\"answer\":\"A programming language\"}]\n```",
			wantCards:  []model.CardPayload{{Question: "What is Go?", Answer: "A programming language"}},
		},
		{
			name:       "異常系: '[' が存在しない",
			completion: "I'm sorry, I can't produce flashcards for that.",
			wantErr:    ErrNoArrayFound,
		},
		{
			name:       "異常系: '[' の後に ']' がない",
			completion: "Sure [here is something incomplete",
			wantErr:    ErrNoArrayFound,
		},
		{
			name:       "異常系: 候補がJSONとして壊れている",
			completion: `[{"question": "Q1", "answer": ]`,
			wantErr:    ErrMalformedJSON,
		},
		{
			name:       "異常系: 空の配列",
			completion: "Result: []",
			wantErr:    ErrEmptyResult,
		},
		{
			name:       "異常系: answer が欠けた要素",
			completion: `[{"question":"Q1","answer":"A1"},{"question":"Q2"}]`,
			wantErr:    ErrInvalidCard,
		},
		{
			name:       "異常系: question が空白のみ",
			completion: `[{"question":"  ","answer":"A1"}]`,
			wantErr:    ErrInvalidCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ExtractCards(tt.completion)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cards)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCards, cards)
		})
	}
}

func TestExtractCards_MalformedJSONKeepsCandidate(t *testing.T) {
	// パースエラー時は診断用に候補文字列がエラーメッセージに残る
	_, err := ExtractCards(`garbage [not json] garbage`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedJSON)
	assert.Contains(t, err.Error(), "[not json]")
}

func TestExtractCards_GreedyMatchTakesFirstToLastBracket(t *testing.T) {
	// トップレベルの配列が複数ある場合は区別しない仕様。
	// 最初の '[' から最後の ']' までが1つの候補になり、パースに失敗する。
	completion := `[{"question":"Q1","answer":"A1"}] and also [{"question":"Q2","answer":"A2"}]`
	_, err := ExtractCards(completion)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}
