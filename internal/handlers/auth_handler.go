// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"

	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
	"flashcard_keep/internal/service"
	"flashcard_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service service.AccountService
}

func NewAuthHandler(s service.AccountService) *AuthHandler {
	return &AuthHandler{service: s}
}

// SignUp は新規ユーザーを登録します
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SignUpRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode signup request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for signup", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for signup", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	user, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		logger.Error("Signup process failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Signup request successful", "user_id", user.UserID)
	webutil.RespondWithJSON(w, http.StatusCreated, model.SignUpResponse{
		Message: "User created successfully",
		User:    model.NewUserResponse(user),
	}, logger)
}

// SignIn はユーザーを認証し、アクセストークンを返します
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SignInRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode signin request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for signin", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for signin", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		// 認証失敗の詳細はサービス側でログ済み
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
