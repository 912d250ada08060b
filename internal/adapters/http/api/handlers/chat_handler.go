package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/middleware"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/usecase"
	res "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/http"
)

type ChatHandler struct {
	service usecase.ChatService
}

func NewChatHandler(s usecase.ChatService) *ChatHandler { return &ChatHandler{service: s} }

type sendRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

type sendResponse struct {
	Response         string               `json:"response"`
	ConversationID   string               `json:"conversation_id"`
	MessageID        string               `json:"message_id"`
	SuggestedOptions []string             `json:"suggested_options,omitempty"`
	McqQuestion      *usecase.McqQuestion `json:"mcq_question,omitempty"`
}

func (h *ChatHandler) Send(c echo.Context) error {
	req := new(sendRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	if req.Message == "" {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "message required", requestIDFromCtx(c), nil)
	}

	user := authmw.UserFromCtx(c)
	result, err := h.service.Send(c.Request().Context(), requestIDFromCtx(c), user.UserID, req.ConversationID, req.Message)
	if err != nil {
		return res.ErrorJSON(c, http.StatusInternalServerError, "chat_failed", "failed to process message", requestIDFromCtx(c), nil)
	}

	return c.JSON(http.StatusOK, sendResponse{
		Response:         result.Response,
		ConversationID:   result.ConversationID,
		MessageID:        result.MessageID,
		SuggestedOptions: result.SuggestedOptions,
		McqQuestion:      result.McqQuestion,
	})
}

// History returns either one full transcript or the grouped conversation
// summaries, depending on whether conversation_id is supplied.
func (h *ChatHandler) History(c echo.Context) error {
	user := authmw.UserFromCtx(c)
	conversationID := c.QueryParam("conversation_id")

	if conversationID != "" {
		messages, err := h.service.Transcript(c.Request().Context(), user.UserID, conversationID)
		if err != nil {
			return res.ErrorJSON(c, http.StatusInternalServerError, "history_failed", "failed to load history", requestIDFromCtx(c), nil)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"messages": messages})
	}

	conversations, err := h.service.Conversations(c.Request().Context(), user.UserID)
	if err != nil {
		return res.ErrorJSON(c, http.StatusInternalServerError, "history_failed", "failed to load conversations", requestIDFromCtx(c), nil)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"conversations": conversations})
}
