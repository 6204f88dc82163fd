// internal/handlers/deck_handler_test.go
package handlers_test

import (
	"encoding/json"
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

func newDeckRouter(m *mocks.DeckService) *chi.Mux {
	handler := handlers.NewDeckHandler(m)
	router := chi.NewRouter()
	router.Route("/api/flashcard-sets", func(r chi.Router) {
		r.Post("/", handler.CreateSet)
		r.Get("/", handler.ListSets)
		r.Put("/{id}", handler.ReplaceSet)
		r.Delete("/{id}", handler.DeleteSet)
	})
	return router
}

func TestDeckHandler_CreateSet(t *testing.T) {
	validReq := model.CreateSetRequest{
		Set: model.SetPayload{
			Name: "biology",
			Cards: []model.CardPayload{
				{Question: "Q1", Answer: "A1"},
			},
		},
		Email: "taro@example.com",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.DeckService)
		expectedStatus int
	}{
		{
			name: "正常系: 201で新しいセットIDが返る",
			body: validReq,
			setupMock: func(m *mocks.DeckService) {
				m.On("CreateSet", mock.Anything, &validReq).Return(uint(42), nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: メールアドレス未指定は400",
			body:           model.CreateSetRequest{Set: validReq.Set},
			setupMock:      func(m *mocks.DeckService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: サービス内部エラーは500",
			body: validReq,
			setupMock: func(m *mocks.DeckService) {
				appErr := model.NewAppError("INTERNAL_SERVER_ERROR", "セットの作成に失敗しました。", "", model.ErrInternalServer)
				m.On("CreateSet", mock.Anything, &validReq).Return(uint(0), appErr).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.DeckService)
			tc.setupMock(mockService)
			router := newDeckRouter(mockService)

			req := createJSONRequest(t, "POST", "/api/flashcard-sets", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.CreateSetResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, uint(42), resp.ID)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestDeckHandler_ListSets(t *testing.T) {
	t.Run("正常系: セット一覧が返る", func(t *testing.T) {
		mockService := new(mocks.DeckService)
		sets := []model.SetResponse{
			{ID: 1, Name: "biology", Cards: []model.CardPayload{{Question: "Q1", Answer: "A1"}}},
			{ID: 2, Name: "history", Cards: []model.CardPayload{}},
		}
		mockService.On("ListSets", mock.Anything, "taro@example.com").Return(sets, nil).Once()
		router := newDeckRouter(mockService)

		req := httptest.NewRequest("GET", "/api/flashcard-sets?email=taro%40example.com", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.ListSetsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Sets, 2)
		assert.Equal(t, "biology", resp.Sets[0].Name)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: 未登録のメールアドレスでも空のリストが返る", func(t *testing.T) {
		mockService := new(mocks.DeckService)
		mockService.On("ListSets", mock.Anything, "unknown@example.com").Return([]model.SetResponse{}, nil).Once()
		router := newDeckRouter(mockService)

		req := httptest.NewRequest("GET", "/api/flashcard-sets?email=unknown%40example.com", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		// sets は null ではなく [] で返ること
		assert.JSONEq(t, `{"sets": []}`, rr.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestDeckHandler_ReplaceSet(t *testing.T) {
	validReq := model.ReplaceSetRequest{
		Name:  "biology v2",
		Cards: []model.CardPayload{{Question: "Q1", Answer: "A1"}},
	}

	tests := []struct {
		name           string
		url            string
		body           interface{}
		setupMock      func(m *mocks.DeckService)
		expectedStatus int
		wantMessage    string
	}{
		{
			name: "正常系: 200でSet updatedが返る",
			url:  "/api/flashcard-sets/42",
			body: validReq,
			setupMock: func(m *mocks.DeckService) {
				m.On("ReplaceSet", mock.Anything, uint(42), &validReq).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantMessage:    "Set updated",
		},
		{
			name:           "異常系: IDが数値でない場合は400",
			url:            "/api/flashcard-sets/abc",
			body:           validReq,
			setupMock:      func(m *mocks.DeckService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 存在しないセットは404",
			url:  "/api/flashcard-sets/999",
			body: validReq,
			setupMock: func(m *mocks.DeckService) {
				appErr := model.NewAppError("SET_NOT_FOUND", "指定されたセットが見つかりません。", "id", model.ErrNotFound)
				m.On("ReplaceSet", mock.Anything, uint(999), &validReq).Return(appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.DeckService)
			tc.setupMock(mockService)
			router := newDeckRouter(mockService)

			req := createJSONRequest(t, "PUT", tc.url, tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.wantMessage != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantMessage, resp["message"])
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestDeckHandler_DeleteSet(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(m *mocks.DeckService)
		expectedStatus int
		wantMessage    string
	}{
		{
			name: "正常系: 200でSet deletedが返る",
			url:  "/api/flashcard-sets/42",
			setupMock: func(m *mocks.DeckService) {
				m.On("DeleteSet", mock.Anything, uint(42)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantMessage:    "Set deleted",
		},
		{
			name:           "異常系: IDが数値でない場合は400",
			url:            "/api/flashcard-sets/abc",
			setupMock:      func(m *mocks.DeckService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 存在しないセットは404",
			url:  "/api/flashcard-sets/999",
			setupMock: func(m *mocks.DeckService) {
				appErr := model.NewAppError("SET_NOT_FOUND", "指定されたセットが見つかりません。", "id", model.ErrNotFound)
				m.On("DeleteSet", mock.Anything, uint(999)).Return(appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.DeckService)
			tc.setupMock(mockService)
			router := newDeckRouter(mockService)

			req := httptest.NewRequest("DELETE", tc.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.wantMessage != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantMessage, resp["message"])
			}

			mockService.AssertExpectations(t)
		})
	}
}
