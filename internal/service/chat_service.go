package service

import (
	"context"

	"chat-relay-be/internal/config"
	"chat-relay-be/internal/dto"
	"chat-relay-be/internal/entity"
	"chat-relay-be/internal/pkg/apperr"
	"chat-relay-be/internal/pkg/logger"
	"chat-relay-be/internal/repository/contract"
	"chat-relay-be/pkg/chat/history"
	"chat-relay-be/pkg/llm"
)

// IChatService defines the chat relay service interface
type IChatService interface {
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	turns    contract.TurnRepository
	loader   *history.Loader
	provider llm.ChatProvider
	log      logger.ILogger

	systemPrompt  string
	model         string
	temperature   float64
	historyWindow int
	defaultUserID string
}

func NewChatService(
	turns contract.TurnRepository,
	provider llm.ChatProvider,
	log logger.ILogger,
	cfg *config.Config,
) IChatService {
	return &chatService{
		turns:         turns,
		loader:        history.NewLoader(turns),
		provider:      provider,
		log:           log,
		systemPrompt:  cfg.Ai.SystemPrompt,
		model:         cfg.Ai.Model,
		temperature:   cfg.Ai.Temperature,
		historyWindow: cfg.Chat.HistoryWindow,
		defaultUserID: cfg.Chat.DefaultUserID,
	}
}

// SendChat relays one user message: load the recent window, ask the model,
// persist both turns, return the reply. Nothing is written before the
// completion succeeds, so an upstream failure leaves storage untouched.
func (s *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if request.Message == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "message is required", nil)
	}

	userID := request.UserId
	if userID == "" {
		userID = s.defaultUserID
	}

	chatHistory, err := s.loader.Load(ctx, userID, s.historyWindow)
	if err != nil {
		s.log.Error("chat", "failed to load history", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, apperr.New(apperr.KindStorage, "load history", err)
	}

	messages := make([]llm.Message, 0, len(chatHistory)+2)
	messages = append(messages, llm.Message{Role: "system", Content: s.systemPrompt})
	messages = append(messages, chatHistory...)
	messages = append(messages, llm.Message{Role: entity.TurnRoleUser, Content: request.Message})

	reply, err := s.provider.Chat(ctx, messages,
		llm.WithModel(s.model),
		llm.WithTemperature(s.temperature),
	)
	if err != nil {
		s.log.Error("chat", "completion request failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, apperr.New(apperr.KindUpstream, "completion request", err)
	}

	// User turn first, assistant turn second: the alternating order of a
	// conversation is the insertion order.
	userTurn := &entity.Turn{UserId: userID, Role: entity.TurnRoleUser, Content: request.Message}
	if err := s.turns.Create(ctx, userTurn); err != nil {
		s.log.Error("chat", "failed to persist user turn", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, apperr.New(apperr.KindStorage, "persist user turn", err)
	}

	assistantTurn := &entity.Turn{UserId: userID, Role: entity.TurnRoleAssistant, Content: reply}
	if err := s.turns.Create(ctx, assistantTurn); err != nil {
		// The computed reply is lost here; the caller sees a plain storage
		// failure with no partial-success signal.
		s.log.Error("chat", "failed to persist assistant turn", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, apperr.New(apperr.KindStorage, "persist assistant turn", err)
	}

	return &dto.SendChatResponse{Reply: reply}, nil
}
