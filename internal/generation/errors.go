// internal/generation/errors.go
package generation

import "errors"

// 生成パイプラインのエラー。すべて errors.Is で判別できる。
var (
	// ErrEmptyInput はプロンプトもファイル内容も空の場合
	ErrEmptyInput = errors.New("prompt or file content required")

	// ErrProvider はモデルAPIの呼び出し自体が失敗した場合
	ErrProvider = errors.New("completion provider call failed")

	// ErrNoArrayFound は応答テキストにJSON配列が見つからない場合
	ErrNoArrayFound = errors.New("no JSON array found in completion")

	// ErrMalformedJSON は配列候補のパースに失敗した場合
	ErrMalformedJSON = errors.New("completion contained malformed JSON")

	// ErrEmptyResult は配列が空だった場合
	ErrEmptyResult = errors.New("no flashcards generated")

	// ErrInvalidCard は question / answer が欠けた要素があった場合
	ErrInvalidCard = errors.New("generated card missing question or answer")
)
