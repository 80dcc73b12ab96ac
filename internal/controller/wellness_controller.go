package controller

import (
	"errors"

	"manasfit-be/internal/dto"
	"manasfit-be/internal/pkg/serverutils"
	"manasfit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWellnessController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	SaveProfile(ctx *fiber.Ctx) error
	DeleteProfile(ctx *fiber.Ctx) error
	ProfileCompleted(ctx *fiber.Ctx) error
	GetEntries(ctx *fiber.Ctx) error
	SaveEntry(ctx *fiber.Ctx) error
}

type wellnessController struct {
	service service.IWellnessService
}

func NewWellnessController(service service.IWellnessService) IWellnessController {
	return &wellnessController{service: service}
}

func (c *wellnessController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wellness/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/profile", c.GetProfile)
	h.Put("/profile", c.SaveProfile)
	h.Delete("/profile", c.DeleteProfile)
	h.Get("/profile/completed", c.ProfileCompleted)
	h.Get("/entries", c.GetEntries)
	h.Post("/entries", c.SaveEntry)
}

func (c *wellnessController) GetProfile(ctx *fiber.Ctx) error {
	profile, err := c.service.GetProfile(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	if profile == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Wellness profile not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wellness profile", dto.ToWellnessProfileResponse(profile)))
}

func (c *wellnessController) SaveProfile(ctx *fiber.Ctx) error {
	var req dto.WellnessProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	profile, err := c.service.SaveProfile(ctx.Context(), serverutils.UserID(ctx), req.ToEntity())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save wellness profile", dto.ToWellnessProfileResponse(profile)))
}

func (c *wellnessController) DeleteProfile(ctx *fiber.Ctx) error {
	if err := c.service.DeleteProfile(ctx.Context(), serverutils.UserID(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete wellness profile", nil))
}

func (c *wellnessController) ProfileCompleted(ctx *fiber.Ctx) error {
	completed := c.service.HasCompletedProfile(ctx.Context(), serverutils.UserID(ctx))

	return ctx.JSON(serverutils.SuccessResponse("Success check wellness profile", dto.ProfileCompletedResponse{Completed: completed}))
}

func (c *wellnessController) GetEntries(ctx *fiber.Ctx) error {
	entries, err := c.service.ListEntries(ctx.Context(), serverutils.UserID(ctx), ctx.QueryInt("days", 0))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wellness entries", dto.ToWellnessEntryResponses(entries)))
}

func (c *wellnessController) SaveEntry(ctx *fiber.Ctx) error {
	var req dto.WellnessEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	entry, err := c.service.SaveEntry(ctx.Context(), serverutils.UserID(ctx), req.ToEntity())
	if errors.Is(err, service.ErrInvalidEntryDate) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save wellness entry", dto.ToWellnessEntryResponse(entry)))
}
