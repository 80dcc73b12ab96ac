package controller

import (
	"time"

	"manasfit-be/internal/dto"
	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/serverutils"
	"manasfit-be/internal/service"
	"manasfit-be/pkg/companion"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultSuggestedQuestions = 3

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SaveSession(ctx *fiber.Ctx) error
	RenameSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Exchange(ctx *fiber.Ctx) error
	SuggestedQuestions(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService      service.IChatService
	companionService service.ICompanionService
}

func NewChatController(chatService service.IChatService, companionService service.ICompanionService) IChatController {
	return &chatController{
		chatService:      chatService,
		companionService: companionService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/sessions", c.GetSessions)
	h.Get("/sessions/:id", c.GetSession)
	h.Post("/sessions/:id/save", c.SaveSession)
	h.Put("/sessions/:id/name", c.RenameSession)
	h.Delete("/sessions/:id", c.DeleteSession)
	h.Post("/send", c.SendMessage)
	h.Post("/exchange", c.Exchange)
	h.Get("/companions/:mode/questions", c.SuggestedQuestions)
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	sessions := c.chatService.GetUserChatSessions(ctx.Context(), userId)
	res := make([]dto.ChatSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, dto.ToChatSessionDTO(s))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat sessions", res))
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	conv, ok := c.chatService.LoadChatSession(ctx.Context(), ctx.Params("id"), userId)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Chat session not found"))
	}

	res := dto.ConversationResponse{
		Session:  dto.ToChatSessionDTO(conv.Session),
		Messages: make([]dto.ChatMessageDTO, 0, len(conv.Messages)),
	}
	for _, m := range conv.Messages {
		res.Messages = append(res.Messages, dto.ToChatMessageDTO(m))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat session", res))
}

func (c *chatController) SaveSession(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)
	sessionId := ctx.Params("id")

	var req dto.SaveChatSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	now := time.Now()
	session := &entity.ChatSession{
		Id:          sessionId,
		UserId:      userId,
		SessionName: req.SessionName,
		SessionType: entity.SessionType(req.SessionType),
		Context:     req.Context,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if session.SessionType == "" {
		session.SessionType = entity.SessionTypeGeneral
	}
	if req.IsActive != nil {
		session.IsActive = *req.IsActive
	}
	if req.CreatedAt != nil {
		session.CreatedAt = *req.CreatedAt
	}
	if req.UpdatedAt != nil {
		session.UpdatedAt = *req.UpdatedAt
	}

	var message *entity.ChatMessage
	if req.Message != nil {
		message = toChatMessage(req.Message, sessionId, userId, now)
	}

	if !c.chatService.SaveChatSession(ctx.Context(), session, message) {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to save chat session"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save chat session", dto.ToChatSessionDTO(session)))
}

func (c *chatController) RenameSession(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.RenameChatSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if !c.chatService.RenameChatSession(ctx.Context(), ctx.Params("id"), userId, req.SessionName) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Chat session not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success rename chat session", nil))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	if !c.chatService.DeleteChatSession(ctx.Context(), ctx.Params("id"), userId) {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to delete chat session"))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chat session", nil))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	chatCtx := c.chatContext(ctx, userId, req.SessionId, req.ChatProfileRequest)
	now := time.Now()
	for i := range req.History {
		chatCtx.History = append(chatCtx.History, toChatMessage(&req.History[i], req.SessionId, userId, now))
	}

	resp := c.chatService.SendMessage(ctx.Context(), req.Content, chatCtx)

	return ctx.JSON(serverutils.SuccessResponse("Success send message", dto.SendMessageResponse{
		Success: resp.Success,
		Message: dto.ToChatMessageDTO(resp.Message),
	}))
}

func (c *chatController) Exchange(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.ExchangeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result := c.chatService.Exchange(ctx.Context(), req.Content, c.chatContext(ctx, userId, req.SessionId, req.ChatProfileRequest))

	return ctx.JSON(serverutils.SuccessResponse("Success exchange message", dto.ExchangeResponse{
		Session:          dto.ToChatSessionDTO(result.Session),
		UserMessage:      dto.ToChatMessageDTO(result.UserMessage),
		AssistantMessage: dto.ToChatMessageDTO(result.AssistantMessage),
		Saved:            result.Saved,
	}))
}

func (c *chatController) SuggestedQuestions(ctx *fiber.Ctx) error {
	mode := companion.ParseMode(ctx.Params("mode"))
	count := ctx.QueryInt("count", defaultSuggestedQuestions)

	return ctx.JSON(serverutils.SuccessResponse("Success get suggested questions", dto.SuggestedQuestionsResponse{
		Mode:      string(mode),
		Questions: companion.SuggestedQuestions(mode, count, nil),
	}))
}

// chatContext falls back to the user's stored companion when the request
// does not pick one.
func (c *chatController) chatContext(ctx *fiber.Ctx, userId, sessionId string, profile dto.ChatProfileRequest) *dto.ChatContext {
	mode := profile.CompanionMode
	if mode == "" && c.companionService != nil {
		mode = string(c.companionService.ActiveCompanionMode(ctx.Context(), userId))
	}
	return &dto.ChatContext{
		UserId:               userId,
		UserName:             profile.UserName,
		UserEmail:            profile.UserEmail,
		Timezone:             profile.Timezone,
		Language:             profile.Language,
		SessionId:            sessionId,
		CompanionMode:        mode,
		SurfaceFailureDetail: profile.SurfaceFailureDetail,
	}
}

func toChatMessage(m *dto.ChatMessageDTO, sessionId, userId string, now time.Time) *entity.ChatMessage {
	msg := &entity.ChatMessage{
		Id:        m.Id,
		SessionId: sessionId,
		UserId:    userId,
		Role:      entity.MessageRole(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Metadata:  m.Metadata,
	}
	if msg.Id == "" {
		msg.Id = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = now
	}
	return msg
}
