package http

import (
	"log/slog"
	"net/http"

	"github.com/showrack/showrack/internal/service"
	"github.com/showrack/showrack/pkg/httputil"
	"github.com/showrack/showrack/pkg/middleware"
	"github.com/showrack/showrack/pkg/validator"
)

// ChatHandler handles HTTP requests for the wishlist assistant.
type ChatHandler struct {
	assistant *service.AssistantService
	logger    *slog.Logger
}

// NewChatHandler creates a new chat HTTP handler.
func NewChatHandler(assistant *service.AssistantService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{assistant: assistant, logger: logger}
}

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Ask handles POST /api/v1/chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req ChatRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	answer, err := h.assistant.Ask(r.Context(), userID, req.Question)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ChatResponse{Answer: answer}})
}
