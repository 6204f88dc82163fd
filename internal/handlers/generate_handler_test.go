// internal/handlers/generate_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flashcard_keep/internal/handlers"
	"flashcard_keep/internal/model"
	"flashcard_keep/internal/service/mocks"
)

func newGenerateRouter(m *mocks.GenerationService) *chi.Mux {
	handler := handlers.NewGenerateHandler(m)
	router := chi.NewRouter()
	router.Post("/api/generate-flashcards", handler.Generate)
	return router
}

func TestGenerateHandler_Generate_JSON(t *testing.T) {
	generatedCards := []model.CardPayload{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.GenerationService)
		expectedStatus int
		wantCards      int
	}{
		{
			name: "正常系: プロンプトからカードが生成される",
			body: map[string]string{"prompt": "photosynthesis"},
			setupMock: func(m *mocks.GenerationService) {
				expected := &model.GenerateRequest{Prompt: "photosynthesis"}
				m.On("GenerateFlashcards", mock.Anything, expected).Return(generatedCards, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantCards:      2,
		},
		{
			name: "異常系: 入力が空の場合は400",
			body: map[string]string{"prompt": ""},
			setupMock: func(m *mocks.GenerationService) {
				appErr := model.NewAppError("EMPTY_INPUT", "プロンプトまたはファイルを指定してください。", "prompt", model.ErrInvalidInput)
				m.On("GenerateFlashcards", mock.Anything, mock.AnythingOfType("*model.GenerateRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 生成失敗は500",
			body: map[string]string{"prompt": "photosynthesis"},
			setupMock: func(m *mocks.GenerationService) {
				appErr := model.NewAppError("GENERATION_FAILED", "AIによるカード生成に失敗しました。", "", model.ErrInternalServer)
				m.On("GenerateFlashcards", mock.Anything, mock.AnythingOfType("*model.GenerateRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.GenerationService)
			tc.setupMock(mockService)
			router := newGenerateRouter(mockService)

			req := createJSONRequest(t, "POST", "/api/generate-flashcards", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.GenerateResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.Cards, tc.wantCards)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestGenerateHandler_Generate_Multipart(t *testing.T) {
	t.Run("正常系: ファイルとプロンプトの両方が渡される", func(t *testing.T) {
		mockService := new(mocks.GenerationService)
		expected := &model.GenerateRequest{Prompt: "summarize this", FileContent: "lecture notes body"}
		cards := []model.CardPayload{{Question: "Q", Answer: "A"}}
		mockService.On("GenerateFlashcards", mock.Anything, expected).Return(cards, nil).Once()
		router := newGenerateRouter(mockService)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("prompt", "summarize this"))
		fw, err := writer.CreateFormFile("file", "notes.txt")
		require.NoError(t, err)
		_, err = fw.Write([]byte("lecture notes body"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/generate-flashcards", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.GenerateResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Cards, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: ファイルなしのマルチパートも受け付ける", func(t *testing.T) {
		mockService := new(mocks.GenerationService)
		expected := &model.GenerateRequest{Prompt: "photosynthesis"}
		cards := []model.CardPayload{{Question: "Q", Answer: "A"}}
		mockService.On("GenerateFlashcards", mock.Anything, expected).Return(cards, nil).Once()
		router := newGenerateRouter(mockService)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("prompt", "photosynthesis"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/generate-flashcards", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})
}
