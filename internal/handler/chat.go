package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/momhive/momhive/internal/service"
	"github.com/momhive/momhive/internal/ui"
	"github.com/momhive/momhive/internal/ui/pages"
	"github.com/momhive/momhive/internal/validation"
)

const maxChatBodyBytes = 64 << 10

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) IndexPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.ChatIndex())
}

// Chat answers {"message": ...} with {"response": ...}
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	var req validation.ChatRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request body must be JSON with a message"})
		return
	}

	err = validation.ValidateChatRequest(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}

	response, err := h.chatService.Complete(r.Context(), req.Message)
	if errors.Is(err, service.ErrEmptyMessage) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}
	if err != nil {
		slog.Error("chat completion failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "the assistant is unavailable, please try again"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": response})
}
