// internal/model/generation.go
package model

// GenerateRequest は JSON で受け取る生成リクエスト。
// ファイルアップロード時は multipart の "file" パートの内容が
// FileContent としてハンドラで補われる。
type GenerateRequest struct {
	Prompt      string `json:"prompt"`
	FileContent string `json:"-"`
}

// GenerateResponse は生成したカードの一覧
type GenerateResponse struct {
	Cards []CardPayload `json:"cards"`
}
