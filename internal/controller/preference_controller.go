package controller

import (
	"errors"

	"manasfit-be/internal/dto"
	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/serverutils"
	"manasfit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	GetTheme(ctx *fiber.Ctx) error
	SetTheme(ctx *fiber.Ctx) error
	GetPetProfile(ctx *fiber.Ctx) error
	SetPetProfile(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service service.IPreferenceService
}

func NewPreferenceController(service service.IPreferenceService) IPreferenceController {
	return &preferenceController{service: service}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preferences/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/theme", c.GetTheme)
	h.Put("/theme", c.SetTheme)
	h.Get("/pet", c.GetPetProfile)
	h.Put("/pet", c.SetPetProfile)
}

func (c *preferenceController) GetTheme(ctx *fiber.Ctx) error {
	theme, err := c.service.GetTheme(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get theme", dto.ThemeResponse{Theme: string(theme)}))
}

func (c *preferenceController) SetTheme(ctx *fiber.Ctx) error {
	var req dto.ThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SetTheme(ctx.Context(), serverutils.UserID(ctx), entity.Theme(req.Theme)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set theme", dto.ThemeResponse{Theme: req.Theme}))
}

func (c *preferenceController) GetPetProfile(ctx *fiber.Ctx) error {
	pet, err := c.service.GetPetProfile(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	if pet == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Pet profile not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get pet profile", pet))
}

func (c *preferenceController) SetPetProfile(ctx *fiber.Ctx) error {
	var req dto.PetProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	pet, err := c.service.SetPetProfile(ctx.Context(), serverutils.UserID(ctx), &entity.PetProfile{
		Name:      req.Name,
		ImageKey:  entity.PetImageKey(req.ImageKey),
		StartDate: req.StartDate,
		Mood:      req.Mood,
	})
	if errors.Is(err, service.ErrPetNameRequired) || errors.Is(err, service.ErrInvalidPetImage) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set pet profile", pet))
}
