// internal/service/deck_service.go
package service

import (
	"context"
	"errors"

	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
	"flashcard_keep/internal/repository"

	"gorm.io/gorm"
)

type DeckService interface {
	CreateSet(ctx context.Context, req *model.CreateSetRequest) (uint, error)
	ListSets(ctx context.Context, email string) ([]model.SetResponse, error)
	ReplaceSet(ctx context.Context, deckID uint, req *model.ReplaceSetRequest) error
	DeleteSet(ctx context.Context, deckID uint) error
}

type deckService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	deckRepo repository.DeckRepository
}

func NewDeckService(db *gorm.DB, userRepo repository.UserRepository, deckRepo repository.DeckRepository) DeckService {
	return &deckService{
		db:       db,
		userRepo: userRepo,
		deckRepo: deckRepo,
	}
}

// CreateSet はオーナーのメールアドレスを解決し、セットとカードを1トランザクションで保存します
func (s *deckService) CreateSet(ctx context.Context, req *model.CreateSetRequest) (uint, error) {
	logger := middleware.GetLogger(ctx)
	var deckID uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Set owner not found", "email", req.Email)
				return model.NewAppError("OWNER_NOT_FOUND", "指定されたメールアドレスのユーザーが見つかりません。", "email", model.ErrNotFound)
			}
			logger.Error("Failed to resolve set owner", "error", err, "email", req.Email)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		deck := &model.Deck{
			Name:   req.Set.Name,
			UserID: user.UserID,
		}
		if err := s.deckRepo.Create(ctx, tx, deck); err != nil {
			logger.Error("Failed to create deck in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セットの作成に失敗しました。", "", err)
		}

		if err := s.deckRepo.CreateCards(ctx, tx, deck.ID, toFlashcards(req.Set.Cards)); err != nil {
			logger.Error("Failed to create flashcards in DB", "error", err, "deck_id", deck.ID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの保存に失敗しました。", "", err)
		}

		deckID = deck.ID
		return nil
	})

	if err != nil {
		return 0, err
	}

	logger.Info("Flashcard set created", "deck_id", deckID, "cards", len(req.Set.Cards))
	return deckID, nil
}

// ListSets は指定メールアドレスのユーザーが所有するセットを作成順で返します。
// ユーザーが存在しない場合はエラーにせず空のリストを返します。
func (s *deckService) ListSets(ctx context.Context, email string) ([]model.SetResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("Listing sets for unknown email", "email", email)
			return []model.SetResponse{}, nil
		}
		logger.Error("Failed to find user by email", "error", err, "email", email)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	decks, err := s.deckRepo.FindByUser(ctx, s.db, user.UserID)
	if err != nil {
		logger.Error("Failed to list decks", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セットの取得に失敗しました。", "", err)
	}

	sets := make([]model.SetResponse, 0, len(decks))
	for _, deck := range decks {
		sets = append(sets, toSetResponse(deck))
	}
	return sets, nil
}

// ReplaceSet はセット名の更新とカードの全件入れ替えを1トランザクションで行います。
// 途中で失敗した場合はロールバックされ、既存のカードはそのまま残ります。
func (s *deckService) ReplaceSet(ctx context.Context, deckID uint, req *model.ReplaceSetRequest) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.UpdateName(ctx, tx, deckID, req.Name); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Deck not found for update", "deck_id", deckID)
				return model.NewAppError("SET_NOT_FOUND", "指定されたセットが見つかりません。", "id", model.ErrNotFound)
			}
			logger.Error("Failed to update deck name", "error", err, "deck_id", deckID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セットの更新に失敗しました。", "", err)
		}

		if err := s.deckRepo.DeleteCards(ctx, tx, deckID); err != nil {
			logger.Error("Failed to delete old flashcards", "error", err, "deck_id", deckID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの入れ替えに失敗しました。", "", err)
		}

		if err := s.deckRepo.CreateCards(ctx, tx, deckID, toFlashcards(req.Cards)); err != nil {
			logger.Error("Failed to insert new flashcards", "error", err, "deck_id", deckID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの入れ替えに失敗しました。", "", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	logger.Info("Flashcard set replaced", "deck_id", deckID, "cards", len(req.Cards))
	return nil
}

// DeleteSet はカードとセット本体を1トランザクションで削除します
func (s *deckService) DeleteSet(ctx context.Context, deckID uint) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.DeleteCards(ctx, tx, deckID); err != nil {
			logger.Error("Failed to delete flashcards", "error", err, "deck_id", deckID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セットの削除に失敗しました。", "", err)
		}

		if err := s.deckRepo.Delete(ctx, tx, deckID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Deck not found for delete", "deck_id", deckID)
				return model.NewAppError("SET_NOT_FOUND", "指定されたセットが見つかりません。", "id", model.ErrNotFound)
			}
			logger.Error("Failed to delete deck", "error", err, "deck_id", deckID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セットの削除に失敗しました。", "", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	logger.Info("Flashcard set deleted", "deck_id", deckID)
	return nil
}

func toFlashcards(cards []model.CardPayload) []model.Flashcard {
	flashcards := make([]model.Flashcard, 0, len(cards))
	for _, c := range cards {
		flashcards = append(flashcards, model.Flashcard{
			Question: c.Question,
			Answer:   c.Answer,
		})
	}
	return flashcards
}

func toSetResponse(deck *model.Deck) model.SetResponse {
	cards := make([]model.CardPayload, 0, len(deck.Flashcards))
	for _, f := range deck.Flashcards {
		cards = append(cards, model.CardPayload{
			Question: f.Question,
			Answer:   f.Answer,
		})
	}
	return model.SetResponse{
		ID:    deck.ID,
		Name:  deck.Name,
		Cards: cards,
	}
}
