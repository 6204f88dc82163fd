// internal/model/deck.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Deck は1ユーザーが所有するフラッシュカードのセットを表します。
// PUT/DELETE のURLが数値IDを受け取るため、主キーは自動採番の整数です。
type Deck struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// position 昇順で学習順を保持する
	Flashcards []Flashcard `gorm:"foreignKey:DeckID" json:"-"`
}

func (Deck) TableName() string {
	return "decks"
}

// Flashcard は1枚の問題と答えのペアです。順序はセット内の position で決まります。
type Flashcard struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	DeckID   uint   `gorm:"not null;index" json:"-"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"not null" json:"answer"`
	Position int    `gorm:"not null" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// CardPayload はAPIでやり取りするカード1枚分のDTO
type CardPayload struct {
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer" validate:"required,min=1"`
}

// SetPayload はセットの作成・更新で受け取るDTO
type SetPayload struct {
	Name  string        `json:"name" validate:"required,min=1,max=200"`
	Cards []CardPayload `json:"cards" validate:"dive"`
}

// CreateSetRequest は POST /api/flashcard-sets のリクエストボディ
type CreateSetRequest struct {
	Set   SetPayload `json:"set" validate:"required"`
	Email string     `json:"email" validate:"required,email"`
}

// ReplaceSetRequest は PUT /api/flashcard-sets/{id} のリクエストボディ。
// カードリストは全件置き換え (部分更新は存在しない)。
type ReplaceSetRequest struct {
	Name  string        `json:"name" validate:"required,min=1,max=200"`
	Cards []CardPayload `json:"cards" validate:"dive"`
}

// SetResponse は一覧取得で返すセット1件分
type SetResponse struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Cards []CardPayload `json:"cards"`
}

// ListSetsResponse は GET /api/flashcard-sets のレスポンス
type ListSetsResponse struct {
	Sets []SetResponse `json:"sets"`
}

// CreateSetResponse は POST /api/flashcard-sets のレスポンス
type CreateSetResponse struct {
	ID uint `json:"id"`
}
