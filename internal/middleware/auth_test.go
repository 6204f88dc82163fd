// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flashcard_keep/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, sub string, ttl time.Duration) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"

	userID := uuid.New()

	// ミドルウェア通過後にコンテキストからユーザーIDを取り出すハンドラ
	var gotUserID uuid.UUID
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	protected := JWTAuthMiddleware(cfg)(nextHandler)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "正常系: 有効なトークン",
			authHeader:     "Bearer " + signTestToken(t, cfg.JWT.SecretKey, userID.String(), time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: Authorizationヘッダーなし",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: Bearer形式でない",
			authHeader:     "Basic abcdef",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 別の鍵で署名されたトークン",
			authHeader:     "Bearer " + signTestToken(t, "wrong-secret", userID.String(), time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 期限切れトークン",
			authHeader:     "Bearer " + signTestToken(t, cfg.JWT.SecretKey, userID.String(), -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: subjectがUUIDでない",
			authHeader:     "Bearer " + signTestToken(t, cfg.JWT.SecretKey, "not-a-uuid", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotUserID = uuid.Nil
			req := httptest.NewRequest("GET", "/api/flashcard-sets", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()
			protected.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, userID, gotUserID)
			}
		})
	}
}
