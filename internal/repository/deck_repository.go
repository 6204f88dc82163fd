//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckRepository interface {
	Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	CreateCards(ctx context.Context, tx *gorm.DB, deckID uint, cards []model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, deckID uint) (*model.Deck, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Deck, error)
	UpdateName(ctx context.Context, tx *gorm.DB, deckID uint, name string) error
	DeleteCards(ctx context.Context, tx *gorm.DB, deckID uint) error
	Delete(ctx context.Context, tx *gorm.DB, deckID uint) error
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

func (r *gormDeckRepository) Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(deck)
	if result.Error != nil {
		logger.Error("Error creating deck in DB",
			"error", result.Error,
			"user_id", deck.UserID.String(),
			"name", deck.Name,
		)
		return fmt.Errorf("gormDeckRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) CreateCards(ctx context.Context, tx *gorm.DB, deckID uint, cards []model.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	for i := range cards {
		cards[i].DeckID = deckID
		cards[i].Position = i
	}
	result := tx.WithContext(ctx).Create(&cards)
	if result.Error != nil {
		logger.Error("Error creating flashcards in DB",
			"error", result.Error,
			"deck_id", deckID,
			"count", len(cards),
		)
		return fmt.Errorf("gormDeckRepository.CreateCards: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, deckID uint) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var deck model.Deck
	result := db.WithContext(ctx).
		Preload("Flashcards", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&deck, deckID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding deck by ID in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByID: %w", result.Error)
	}
	return &deck, nil
}

func (r *gormDeckRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var decks []*model.Deck
	result := db.WithContext(ctx).
		Preload("Flashcards", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding decks by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByUser: %w", result.Error)
	}
	return decks, nil
}

func (r *gormDeckRepository) UpdateName(ctx context.Context, tx *gorm.DB, deckID uint, name string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Deck{}).Where("id = ?", deckID).Update("name", name)
	if result.Error != nil {
		logger.Error("Error updating deck name in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return fmt.Errorf("gormDeckRepository.UpdateName: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeckRepository) DeleteCards(ctx context.Context, tx *gorm.DB, deckID uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("deck_id = ?", deckID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcards in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return fmt.Errorf("gormDeckRepository.DeleteCards: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) Delete(ctx context.Context, tx *gorm.DB, deckID uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Deck{}, deckID)
	if result.Error != nil {
		logger.Error("Error deleting deck in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return fmt.Errorf("gormDeckRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
