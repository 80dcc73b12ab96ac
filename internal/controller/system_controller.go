package controller

import (
	"errors"

	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/pkg/serverutils"
	"manasfit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultLogPageSize = 50

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	StorageStatus(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogById(ctx *fiber.Ctx) error
}

type systemController struct {
	chatService service.IChatService
	logger      logger.ILogger
}

func NewSystemController(chatService service.IChatService, logger logger.ILogger) ISystemController {
	return &systemController{chatService: chatService, logger: logger}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/system/v1")
	h.Get("/health", c.Health)

	h.Use(serverutils.JwtMiddleware)
	h.Get("/storage-status", c.StorageStatus)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogById)
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{"status": "ok"}))
}

func (c *systemController) StorageStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get storage status", c.chatService.StorageStatus()))
}

func (c *systemController) GetLogs(ctx *fiber.Ctx) error {
	logs, err := c.logger.GetLogs(ctx.Query("level"), ctx.QueryInt("limit", defaultLogPageSize), ctx.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", logs))
}

func (c *systemController) GetLogById(ctx *fiber.Ctx) error {
	entry, err := c.logger.GetLogById(ctx.Params("id"))
	if errors.Is(err, logger.ErrLogNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Log not found"))
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get log", entry))
}
