// internal/handlers/generate_handler.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
	"flashcard_keep/internal/service"
	"flashcard_keep/internal/webutil"
)

// アップロードファイルはメモリ上で展開する。講義ノート程度を想定したサイズ上限
const maxUploadBytes = 10 << 20 // 10MiB

type GenerateHandler struct {
	service service.GenerationService
}

func NewGenerateHandler(s service.GenerationService) *GenerateHandler {
	return &GenerateHandler{service: s}
}

// Generate はプロンプトやアップロードされたテキストファイルからフラッシュカードを生成します。
// multipart/form-data (prompt フィールド + file) と JSON ボディ ({"prompt": "..."}) の両方を受け付けます。
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	req, err := decodeGenerateRequest(r)
	if err != nil {
		logger.Warn("Failed to decode generate request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.service.GenerateFlashcards(r.Context(), req)
	if err != nil {
		// 入力なし・生成失敗の区別はサービス側のAppErrorに入っている
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.GenerateResponse{Cards: cards}, logger)
}

func decodeGenerateRequest(r *http.Request) (*model.GenerateRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, model.NewAppError("INVALID_REQUEST_BODY", "マルチパートリクエストの解析に失敗しました。", "", model.ErrInvalidInput)
		}

		req := &model.GenerateRequest{Prompt: r.FormValue("prompt")}

		file, _, err := r.FormFile("file")
		switch {
		case err == nil:
			defer file.Close()
			content, readErr := io.ReadAll(file)
			if readErr != nil {
				return nil, model.NewAppError("INVALID_REQUEST_BODY", "ファイルの読み込みに失敗しました。", "file", model.ErrInvalidInput)
			}
			req.FileContent = string(content)
		case errors.Is(err, http.ErrMissingFile):
			// ファイルは任意。プロンプトだけでも生成できる
		default:
			return nil, model.NewAppError("INVALID_REQUEST_BODY", "ファイルの読み込みに失敗しました。", "file", model.ErrInvalidInput)
		}

		return req, nil
	}

	var req model.GenerateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		return nil, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}
	return &req, nil
}
