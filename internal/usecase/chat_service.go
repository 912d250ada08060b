package usecase

import (
	"context"
	"time"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/llm"
	repo "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/postgres"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	pkglog "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/log"
)

const (
	// historyLimit bounds the context window sent to the gateway.
	historyLimit      = 20
	conversationLimit = 50

	mentorSystemPrompt = `You are an expert AI Career Mentor helping students discover careers,
build skills, and create personalized learning roadmaps. Be encouraging, insightful,
and provide actionable advice. When discussing careers, mention required skills,
typical responsibilities, growth potential, and learning resources.

After providing your response, if relevant, suggest 2-3 follow-up questions or topics
the user might want to explore. Format these as simple, clear options.`

	// apologyText is stored as the assistant turn whenever the gateway
	// fails; the request itself still succeeds.
	apologyText = "I'm having trouble connecting right now. Please try again in a moment."
)

// ChatResult is what one mentor turn returns to the caller.
type ChatResult struct {
	Response         string
	ConversationID   string
	MessageID        string
	SuggestedOptions []string
	McqQuestion      *McqQuestion
}

// ChatService owns the conversation ledger and the send flow: append the
// user turn, decide any structured prompt, obtain the assistant text and
// append it too.
type ChatService interface {
	Send(ctx context.Context, traceID, userID, conversationID, message string) (*ChatResult, error)
	Transcript(ctx context.Context, userID, conversationID string) ([]domain.ChatMessage, error)
	Conversations(ctx context.Context, userID string) ([]domain.ConversationSummary, error)
}

type chatService struct {
	logger   pkglog.Logger
	messages repo.MessageRepository
	gateway  llm.Client
}

func NewChatService(logger pkglog.Logger, messages repo.MessageRepository, gateway llm.Client) ChatService {
	return &chatService{logger: logger, messages: messages, gateway: gateway}
}

func (s *chatService) Send(ctx context.Context, traceID, userID, conversationID, message string) (*ChatResult, error) {
	if conversationID == "" {
		conversationID = newID("conv")
	}

	// Turn index is the message count before this turn is appended; the
	// prompt rule table is keyed on it.
	turnIndex, err := s.messages.CountInConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	userMsg := &domain.ChatMessage{
		MessageID:      newID("msg"),
		UserID:         userID,
		ConversationID: conversationID,
		Role:           domain.RoleUser,
		Content:        message,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := s.messages.History(ctx, userID, conversationID, historyLimit)
	if err != nil {
		return nil, err
	}
	// The gateway receives the new message separately; drop it from the
	// context window if the bounded fetch picked it up.
	gatewayHistory := history
	if n := len(history); n > 0 && history[n-1].MessageID == userMsg.MessageID {
		gatewayHistory = history[:n-1]
	}

	decision := DecidePrompt(int(turnIndex), message)

	response, err := s.gateway.Complete(ctx, mentorSystemPrompt, gatewayHistory, message)
	if err != nil {
		// Degrade, never fail: the apology becomes the assistant turn and
		// this turn's prompts are withheld.
		s.logger.Warn().Str("trace_id", traceID).Str("conversation_id", conversationID).Err(err).Msg("completion failed")
		response = apologyText
		decision = PromptDecision{}
	}

	assistantMsg := &domain.ChatMessage{
		MessageID:      newID("msg"),
		UserID:         userID,
		ConversationID: conversationID,
		Role:           domain.RoleAssistant,
		Content:        response,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return &ChatResult{
		Response:         response,
		ConversationID:   conversationID,
		MessageID:        assistantMsg.MessageID,
		SuggestedOptions: decision.Suggestions,
		McqQuestion:      decision.Mcq,
	}, nil
}

func (s *chatService) Transcript(ctx context.Context, userID, conversationID string) ([]domain.ChatMessage, error) {
	return s.messages.AllMessages(ctx, userID, conversationID)
}

func (s *chatService) Conversations(ctx context.Context, userID string) ([]domain.ConversationSummary, error) {
	return s.messages.ListConversations(ctx, userID, conversationLimit)
}
