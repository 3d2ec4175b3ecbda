package controller

import (
	"chat-relay-be/internal/dto"
	"chat-relay-be/internal/pkg/apperr"
	"chat-relay-be/internal/pkg/serverutils"
	"chat-relay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.SendChat)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "message is required"})
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "message is required"})
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		// Stable messages per error kind; raw internal detail stays in the
		// logs, never in the response body.
		switch apperr.KindOf(err) {
		case apperr.KindInvalidInput:
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "message is required"})
		case apperr.KindUpstream:
			return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "upstream completion failed"})
		case apperr.KindStorage:
			return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "storage failure"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
		}
	}

	return ctx.JSON(res)
}
