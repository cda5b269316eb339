package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/showrack/showrack/internal/catalog"
	"github.com/showrack/showrack/internal/llm"
	"github.com/showrack/showrack/internal/repository"
)

const assistantSystemPrompt = "You are a friendly movie and TV assistant. " +
	"Answer the user's question using their watchlist as context. " +
	"Keep answers short and conversational, and only recommend titles that suit their taste."

// emptyContextAnswer is returned without consulting the language model when
// no wishlist titles could be resolved.
const emptyContextAnswer = "I don't know anything about your taste yet. " +
	"Add a few movies or shows to your wishlist and ask me again!"

// AssistantService answers free-form questions about the user's wishlist by
// resolving each saved title and handing the summary to a language model.
type AssistantService struct {
	wishlistRepo repository.WishlistRepository
	gateway      catalog.Gateway
	llm          llm.Client
	logger       *slog.Logger
}

// NewAssistantService creates a new assistant service.
func NewAssistantService(
	wishlistRepo repository.WishlistRepository,
	gateway catalog.Gateway,
	llmClient llm.Client,
	logger *slog.Logger,
) *AssistantService {
	return &AssistantService{
		wishlistRepo: wishlistRepo,
		gateway:      gateway,
		llm:          llmClient,
		logger:       logger,
	}
}

// Ask answers the user's question in the context of their wishlist. Titles
// that fail to resolve are silently dropped from the context; only a failure
// of the language model itself is surfaced.
func (s *AssistantService) Ask(ctx context.Context, userID int64, question string) (string, error) {
	entries, err := s.wishlistRepo.List(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("list wishlist: %w", err)
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		resolved, err := s.gateway.Resolve(ctx, entry.ItemID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to resolve wishlist item for assistant context",
				slog.Int64("item_id", entry.ItemID),
				slog.String("error", err.Error()),
			)
			continue
		}
		d := resolved.Details
		lines = append(lines, fmt.Sprintf("%s (%s): %s", d.DisplayTitle(), d.ReleasedOn(), d.Overview))
	}

	if len(lines) == 0 {
		return emptyContextAnswer, nil
	}

	prompt := fmt.Sprintf("My watchlist:\n\n%s\n\nQuestion: %s",
		strings.Join(lines, "\n\n"), question)

	answer, err := s.llm.GenerateText(ctx, assistantSystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	return answer, nil
}
