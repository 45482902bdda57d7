package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nmaffly/portfolio-assistant/internal/api"
	"github.com/nmaffly/portfolio-assistant/internal/api/middleware"
	"github.com/nmaffly/portfolio-assistant/internal/domain"
	"github.com/nmaffly/portfolio-assistant/internal/service"
	"github.com/nmaffly/portfolio-assistant/internal/telemetry"
)

// genericErrorMessage is the user-visible text for unclassified
// failures. The machine-readable detail rides in the details field
// outside production mode.
const genericErrorMessage = "Sorry, I encountered an error. Please try again or contact Nate directly at nmaffly@example.com"

type ChatService interface {
	Answer(ctx context.Context, input service.AnswerInput) (*service.AnswerOutput, error)
}

type ChatHandler struct {
	svc        ChatService
	production bool
}

func NewChatHandler(svc ChatService, production bool) *ChatHandler {
	return &ChatHandler{svc: svc, production: production}
}

type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []HistoryTurn `json:"conversationHistory"`
}

// Chat answers one visitor question
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Covers malformed JSON and non-string message values
		api.Error(w, http.StatusBadRequest, domain.ErrMessageRequired.Message)
		return
	}

	history := make([]domain.ConversationTurn, 0, len(req.ConversationHistory))
	for _, turn := range req.ConversationHistory {
		history = append(history, domain.ConversationTurn{
			Role:    domain.Role(turn.Role),
			Content: turn.Content,
		})
	}

	output, err := h.svc.Answer(r.Context(), service.AnswerInput{
		Message: req.Message,
		History: history,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, api.ChatResponse{
		Response:   output.Response,
		TokensUsed: output.TokensUsed,
	})
}

// writeError converts pipeline failures into the wire error taxonomy.
// Full detail always goes to the server log; the details field is only
// populated outside production mode, and never for credential errors.
func (h *ChatHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := api.DomainErrorToHTTP(err)
	requestID := middleware.GetRequestID(r.Context())
	log.Printf("chat request failed (request_id=%s): %v", requestID, err)

	resp := api.ErrorResponse{Error: genericErrorMessage}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeValidation, domain.ErrCodeUpstreamQuota, domain.ErrCodeUpstreamConfig:
			resp.Error = domainErr.Message
		case domain.ErrCodeInternalError:
			if !h.production && domainErr.Err != nil {
				resp.Details = domainErr.Err.Error()
			}
		}
	} else if !h.production {
		resp.Details = err.Error()
	}

	if status >= http.StatusInternalServerError {
		telemetry.CaptureError(r.Context(), err)
	}

	api.JSON(w, status, resp)
}
