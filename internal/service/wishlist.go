package service

import (
	"context"
	"log/slog"

	"github.com/showrack/showrack/internal/domain"
	"github.com/showrack/showrack/internal/event"
	"github.com/showrack/showrack/internal/repository"
	apperrors "github.com/showrack/showrack/pkg/errors"
)

// WishlistService implements the business logic for wishlist operations.
type WishlistService struct {
	repo     repository.WishlistRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, producer *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// Add puts a catalog item on the user's wishlist. Adding an item that is
// already present is a conflict.
func (s *WishlistService) Add(ctx context.Context, userID, itemID int64) (*domain.WishlistEntry, error) {
	if itemID <= 0 {
		return nil, apperrors.InvalidInput("item_id must be a positive integer")
	}

	entry, err := s.repo.Add(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if s.producer != nil {
		if err := s.producer.PublishWishlistItemAdded(ctx, userID, itemID); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish wishlist.item_added event",
				slog.Int64("user_id", userID),
				slog.Int64("item_id", itemID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "wishlist item added",
		slog.Int64("user_id", userID),
		slog.Int64("item_id", itemID),
	)

	return entry, nil
}

// Remove takes an item off the user's wishlist. Removing an item that is not
// present succeeds without effect.
func (s *WishlistService) Remove(ctx context.Context, userID, itemID int64) error {
	if itemID <= 0 {
		return apperrors.InvalidInput("item_id must be a positive integer")
	}

	if err := s.repo.Remove(ctx, userID, itemID); err != nil {
		return err
	}

	if s.producer != nil {
		if err := s.producer.PublishWishlistItemRemoved(ctx, userID, itemID); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish wishlist.item_removed event",
				slog.Int64("user_id", userID),
				slog.Int64("item_id", itemID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "wishlist item removed",
		slog.Int64("user_id", userID),
		slog.Int64("item_id", itemID),
	)

	return nil
}

// List returns the user's wishlist in insertion order, oldest first.
func (s *WishlistService) List(ctx context.Context, userID int64) ([]domain.WishlistEntry, error) {
	return s.repo.List(ctx, userID)
}
