// internal/model/auth.go
package model

// SignInRequest はログインAPIのリクエストボディ
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse はログイン成功時のレスポンス。
// access_token は auth.enabled 時に保護ルートへ渡すためのJWT。
// 従来のクライアントは message と user だけを見る。
type SignInResponse struct {
	Message     string        `json:"message"`
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token,omitempty"`
}

// SignUpResponse は新規登録成功時のレスポンス
type SignUpResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}
