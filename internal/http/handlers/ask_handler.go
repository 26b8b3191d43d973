package handlers

import (
	"context"
	"errors"
	"net/http"
	"todo-manager/internal/assistant"
	"todo-manager/internal/http/dto"
	"todo-manager/internal/service"
	"todo-manager/internal/workerpool"
)

type AskService interface {
	Ask(ctx context.Context, question string) (string, error)
}

type AskHandler struct {
	askService AskService
}

func NewAskHandler(askService AskService) *AskHandler {
	return &AskHandler{askService: askService}
}

// POST /api/gemini/ask
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req dto.AskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	answer, err := h.askService.Ask(r.Context(), req.Question)
	if err != nil {
		// upstream details are logged by the service, never returned
		switch {
		case errors.Is(err, service.ErrQuestionRequired):
			writeError(w, http.StatusBadRequest, msgQuestionRequired)
		case errors.Is(err, workerpool.ErrPoolFull), errors.Is(err, workerpool.ErrPoolClosed):
			writeError(w, http.StatusServiceUnavailable, msgAssistantBusy)
		case errors.Is(err, assistant.ErrEmptyAnswer):
			writeError(w, http.StatusInternalServerError, msgInvalidAnswer)
		default:
			writeError(w, http.StatusInternalServerError, msgAskFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.AskResponse{Answer: answer})
}
