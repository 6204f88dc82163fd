// internal/generation/extractor.go
package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"flashcard_keep/internal/model"
)

// ExtractCards はモデルの応答テキストからカードの配列を取り出します。
//
// 候補の切り出しは最初の '[' から最後の ']' までを1つのJSON配列とみなす
// 貪欲なマッチです。ネストした配列や複数のトップレベル配列は区別しません。
// 配列の前後に説明文やコードフェンスが付いていても動作します。
func ExtractCards(completion string) ([]model.CardPayload, error) {
	start := strings.Index(completion, "[")
	if start < 0 {
		return nil, ErrNoArrayFound
	}
	end := strings.LastIndex(completion, "]")
	if end < start {
		return nil, ErrNoArrayFound
	}
	candidate := completion[start : end+1]

	var cards []model.CardPayload
	if err := json.Unmarshal([]byte(candidate), &cards); err != nil {
		// 診断のため、パースエラーと候補文字列の両方を残す
		return nil, fmt.Errorf("%w: %v (candidate: %q)", ErrMalformedJSON, err, truncate(candidate, 200))
	}

	if len(cards) == 0 {
		return nil, ErrEmptyResult
	}

	// question / answer の欠けた要素はここで弾く
	for i, card := range cards {
		if strings.TrimSpace(card.Question) == "" || strings.TrimSpace(card.Answer) == "" {
			return nil, fmt.Errorf("%w: element %d", ErrInvalidCard, i)
		}
	}

	return cards, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
