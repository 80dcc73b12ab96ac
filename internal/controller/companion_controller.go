package controller

import (
	"errors"

	"manasfit-be/internal/dto"
	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/serverutils"
	"manasfit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICompanionController interface {
	RegisterRoutes(r fiber.Router)
	GetSelection(ctx *fiber.Ctx) error
	SaveSelection(ctx *fiber.Ctx) error
}

type companionController struct {
	service service.ICompanionService
}

func NewCompanionController(service service.ICompanionService) ICompanionController {
	return &companionController{service: service}
}

func (c *companionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/companion/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/selection", c.GetSelection)
	h.Put("/selection", c.SaveSelection)
}

func (c *companionController) GetSelection(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	selection, err := c.service.GetSelection(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if selection == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Companion not selected"))
	}

	mode := c.service.ActiveCompanionMode(ctx.Context(), userId)
	return ctx.JSON(serverutils.SuccessResponse("Success get companion selection", dto.ToCompanionSelectionResponse(selection, string(mode))))
}

func (c *companionController) SaveSelection(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.CompanionSelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	selection, err := c.service.SaveSelection(ctx.Context(), userId, req.ToEntity())
	if errors.Is(err, entity.ErrInvalidSelectionKind) ||
		errors.Is(err, entity.ErrMissingCharacter) ||
		errors.Is(err, entity.ErrMissingCompanionType) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err != nil {
		return err
	}

	mode := c.service.ActiveCompanionMode(ctx.Context(), userId)
	return ctx.JSON(serverutils.SuccessResponse("Success save companion selection", dto.ToCompanionSelectionResponse(selection, string(mode))))
}
