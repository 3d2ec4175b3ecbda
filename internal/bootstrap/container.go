package bootstrap

import (
	"chat-relay-be/internal/config"
	"chat-relay-be/internal/controller"
	"chat-relay-be/internal/pkg/logger"
	"chat-relay-be/internal/repository/implementation"
	"chat-relay-be/internal/service"
	"chat-relay-be/pkg/llm/openai"

	"gorm.io/gorm"
)

type Container struct {
	ChatController controller.IChatController
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	turnRepository := implementation.NewTurnRepository(db)

	llmProvider := openai.NewOpenAIProvider(cfg.Ai.APIKey, cfg.Ai.BaseURL, cfg.Ai.Model)

	chatService := service.NewChatService(turnRepository, llmProvider, sysLogger, cfg)

	return &Container{
		ChatController: controller.NewChatController(chatService),
		Logger:         sysLogger,
	}
}
