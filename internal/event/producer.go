package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	pkgkafka "github.com/showrack/showrack/pkg/kafka"

	"github.com/showrack/showrack/internal/domain"
)

// Kafka topic constants for the service's domain events.
const (
	TopicUserRegistered      = "showrack.user.registered"
	TopicWishlistItemAdded   = "showrack.wishlist.item_added"
	TopicWishlistItemRemoved = "showrack.wishlist.item_removed"
)

// Aggregate type constants.
const (
	AggregateTypeUser     = "user"
	AggregateTypeWishlist = "wishlist"
)

// Source identifier for events originating from this service.
const Source = "showrack"

// UserRegisteredData is the payload for a user.registered event.
type UserRegisteredData struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// WishlistItemData is the payload for the wishlist item_added and
// item_removed events.
type WishlistItemData struct {
	UserID int64 `json:"user_id"`
	ItemID int64 `json:"item_id"`
}

// Producer publishes the service's domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishUserRegistered publishes a user.registered event.
func (p *Producer) PublishUserRegistered(ctx context.Context, user *domain.User) error {
	data := UserRegisteredData{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}

	aggregateID := strconv.FormatInt(user.ID, 10)
	event, err := pkgkafka.NewEvent(TopicUserRegistered, aggregateID, AggregateTypeUser, Source, data)
	if err != nil {
		return fmt.Errorf("create user.registered event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicUserRegistered, event); err != nil {
		return fmt.Errorf("publish user.registered event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.registered event",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}

// PublishWishlistItemAdded publishes a wishlist.item_added event.
func (p *Producer) PublishWishlistItemAdded(ctx context.Context, userID, itemID int64) error {
	return p.publishWishlistEvent(ctx, TopicWishlistItemAdded, userID, itemID)
}

// PublishWishlistItemRemoved publishes a wishlist.item_removed event.
func (p *Producer) PublishWishlistItemRemoved(ctx context.Context, userID, itemID int64) error {
	return p.publishWishlistEvent(ctx, TopicWishlistItemRemoved, userID, itemID)
}

func (p *Producer) publishWishlistEvent(ctx context.Context, topic string, userID, itemID int64) error {
	data := WishlistItemData{UserID: userID, ItemID: itemID}

	aggregateID := strconv.FormatInt(userID, 10)
	event, err := pkgkafka.NewEvent(topic, aggregateID, AggregateTypeWishlist, Source, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published wishlist event",
		slog.String("topic", topic),
		slog.Int64("user_id", userID),
		slog.Int64("item_id", itemID),
	)

	return nil
}
