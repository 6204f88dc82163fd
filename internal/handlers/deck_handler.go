// internal/handlers/deck_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
	"flashcard_keep/internal/service"
	"flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type DeckHandler struct {
	service service.DeckService
}

func NewDeckHandler(s service.DeckService) *DeckHandler {
	return &DeckHandler{service: s}
}

// CreateSet は新しいフラッシュカードセットを作成するハンドラ
func (h *DeckHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateSetRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode create set request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for create set", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for create set", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	deckID, err := h.service.CreateSet(r.Context(), &req)
	if err != nil {
		logger.Error("Create set failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, model.CreateSetResponse{ID: deckID}, logger)
}

// ListSets は指定メールアドレスのユーザーが所有するセット一覧を返すハンドラ。
// 未登録のメールアドレスでも空のリストを返します。
func (h *DeckHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	email := r.URL.Query().Get("email")
	sets, err := h.service.ListSets(r.Context(), email)
	if err != nil {
		logger.Error("List sets failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.ListSetsResponse{Sets: sets}, logger)
}

// ReplaceSet はセット名とカードリストを丸ごと置き換えるハンドラ
func (h *DeckHandler) ReplaceSet(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	deckID, ok := parseDeckID(w, r, logger)
	if !ok {
		return
	}

	var req model.ReplaceSetRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode replace set request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for replace set", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for replace set", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	if err := h.service.ReplaceSet(r.Context(), deckID, &req); err != nil {
		logger.Error("Replace set failed in service", "error", err, "deck_id", deckID)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Set updated"}, logger)
}

// DeleteSet はセットと配下のカードを削除するハンドラ
func (h *DeckHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	deckID, ok := parseDeckID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteSet(r.Context(), deckID); err != nil {
		logger.Error("Delete set failed in service", "error", err, "deck_id", deckID)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Set deleted"}, logger)
}

func parseDeckID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		logger.Warn("Invalid set ID format in URL", "id_str", idStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "idの形式が正しくありません。", "id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return 0, false
	}
	return uint(id), true
}
