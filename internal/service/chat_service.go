package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"manasfit-be/internal/dto"
	"manasfit-be/internal/entity"
	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/repository/chatstore"
	"manasfit-be/pkg/chatevents"
	"manasfit-be/pkg/companion"
	"manasfit-be/pkg/fallback"
	"manasfit-be/pkg/llm"

	"github.com/google/uuid"
)

const (
	chatLogModule          = "CHAT"
	DefaultRequestTimeout  = 30 * time.Second
	sessionTitleMaxRunes   = 30
	failureReasonEmptyText = "empty_input"
)

// IChatService is the conversation boundary. Every method is total: storage
// and generation failures are logged and folded into the return value.
type IChatService interface {
	SendMessage(ctx context.Context, content string, chatCtx *dto.ChatContext) *dto.ChatResponse
	SaveChatSession(ctx context.Context, session *entity.ChatSession, message *entity.ChatMessage) bool
	LoadChatSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, bool)
	GetUserChatSessions(ctx context.Context, userId string) []*entity.ChatSession
	DeleteChatSession(ctx context.Context, sessionId, userId string) bool
	RenameChatSession(ctx context.Context, sessionId, userId, name string) bool
	Exchange(ctx context.Context, content string, chatCtx *dto.ChatContext) *dto.ExchangeResult
	StorageStatus() chatstore.Status
	Close()
}

// ChatStorage is the storage surface the service needs: one write that
// covers session and message, plus reads and status.
type ChatStorage interface {
	chatstore.Storage
	Save(ctx context.Context, session *entity.ChatSession, message *entity.ChatMessage) (string, error)
	Status() chatstore.Status
}

type ChatServiceConfig struct {
	RequestTimeout   time.Duration
	AutoSaveInterval time.Duration
	// MaxHistory caps the prior turns sent with a prompt. Zero means no cap.
	MaxHistory int
	// SurfaceFailureDetail applies to every request, on top of the per
	// request flag.
	SurfaceFailureDetail bool
}

type chatService struct {
	storage     ChatStorage
	llmProvider llm.LLMProvider
	publisher   IPublisherService
	events      chatevents.Publisher
	logger      logger.ILogger

	timeout         time.Duration
	maxHistory      int
	surfaceFailures bool
	sessions        *keyedMutex
	autoSave        *autoSaver

	now   func() time.Time
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewChatService(
	storage ChatStorage,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	events chatevents.Publisher,
	logger logger.ILogger,
	cfg ChatServiceConfig,
) IChatService {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	s := &chatService{
		storage:         storage,
		llmProvider:     llmProvider,
		publisher:       publisher,
		events:          events,
		logger:          logger,
		timeout:         timeout,
		maxHistory:      cfg.MaxHistory,
		surfaceFailures: cfg.SurfaceFailureDetail,
		sessions:        newKeyedMutex(),
		now:             time.Now,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.autoSave = newAutoSaver(cfg.AutoSaveInterval, s.publishAutoSave)
	return s
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func toLLMRole(role entity.MessageRole) string {
	switch role {
	case entity.MessageRoleAssistant:
		return llm.RoleAssistant
	case entity.MessageRoleSystem:
		return llm.RoleSystem
	default:
		return llm.RoleUser
	}
}

func (s *chatService) systemPrompt(chatCtx *dto.ChatContext) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return companion.BuildSystemPrompt(companion.PromptContext{
		UserName:  chatCtx.UserName,
		UserEmail: chatCtx.UserEmail,
		Timezone:  chatCtx.Timezone,
		Language:  chatCtx.Language,
		Mode:      companion.ParseMode(chatCtx.CompanionMode),
		Now:       s.now(),
		Rand:      s.rng,
	})
}

func (s *chatService) buildPrompt(content string, chatCtx *dto.ChatContext) []llm.Message {
	history := make([]*entity.ChatMessage, len(chatCtx.History))
	copy(history, chatCtx.History)
	entity.SortMessages(history)
	if s.maxHistory > 0 && len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: s.systemPrompt(chatCtx)})
	for _, m := range history {
		if m == nil || strings.TrimSpace(m.Content) == "" {
			continue
		}
		messages = append(messages, llm.Message{Role: toLLMRole(m.Role), Content: m.Content})
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: content})
}

// generate calls the provider under the request timeout. A panic inside the
// provider is reported as an upstream failure.
func (s *chatService) generate(ctx context.Context, prompt []llm.Message, opts ...llm.Option) (text string, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = llm.NewError(llm.ReasonUpstream, fmt.Errorf("provider panic: %v", r))
		}
	}()

	if s.llmProvider == nil {
		return "", llm.NewError(llm.ReasonConfiguration, llm.ErrMissingAPIKey)
	}
	text, err = s.llmProvider.Chat(ctx, prompt, opts...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", llm.NewError(llm.ReasonTimeout, err)
		}
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", llm.NewError(llm.ReasonEmptyResponse, llm.ErrNoCandidates)
	}
	return text, nil
}

func (s *chatService) SendMessage(ctx context.Context, content string, chatCtx *dto.ChatContext) *dto.ChatResponse {
	if chatCtx == nil {
		chatCtx = &dto.ChatContext{}
	}
	if chatCtx.SessionId != "" {
		unlock := s.sessions.Lock(chatCtx.SessionId)
		defer unlock()
	}
	return s.respond(ctx, content, chatCtx)
}

// respond generates the assistant turn. Callers hold the session lock.
func (s *chatService) respond(ctx context.Context, content string, chatCtx *dto.ChatContext) *dto.ChatResponse {
	mode := companion.ParseMode(chatCtx.CompanionMode)

	reply := &entity.ChatMessage{
		Id:        uuid.NewString(),
		SessionId: chatCtx.SessionId,
		UserId:    chatCtx.UserId,
		Role:      entity.MessageRoleAssistant,
		Metadata:  entity.MessageMetadata{CompanionMode: string(mode)},
	}

	started := s.now()
	var text string
	var err error
	var usage llm.Usage
	if strings.TrimSpace(content) == "" {
		err = fmt.Errorf("%s: message is empty", failureReasonEmptyText)
	} else {
		text, err = s.generate(ctx, s.buildPrompt(content, chatCtx), llm.WithUsage(&usage))
	}
	elapsed := s.now().Sub(started).Milliseconds()
	reply.Metadata.ResponseTimeMs = &elapsed
	if err == nil && usage.TotalTokens > 0 {
		tokens := usage.TotalTokens
		reply.Metadata.TokensUsed = &tokens
	}

	if err != nil {
		reason := string(llm.ReasonOf(err))
		if strings.TrimSpace(content) == "" {
			reason = failureReasonEmptyText
		}
		fb := fallback.Select(content, firstName(chatCtx.UserName))
		text = fb.Content
		if chatCtx.SurfaceFailureDetail || s.surfaceFailures {
			text = fallback.Technical(llm.FailureReason(reason))
		}
		reply.Metadata.IsFallback = true
		reply.Metadata.FailureReason = reason
		reply.Metadata.Topics = []string{string(fb.Topic)}

		s.logger.Warn(chatLogModule, "Generation failed, sending fallback reply", map[string]interface{}{
			"session_id": chatCtx.SessionId,
			"user_id":    chatCtx.UserId,
			"reason":     reason,
			"topic":      string(fb.Topic),
			"error":      err.Error(),
		})
		if s.events != nil {
			s.events.PublishFallbackReply(ctx, chatCtx.SessionId, chatCtx.UserId, reason, string(fb.Topic))
		}
	}

	reply.Content = text
	reply.CreatedAt = s.now()

	if chatCtx.SessionId != "" {
		s.autoSave.Schedule(dto.AutoSaveMessage{
			SessionId:   chatCtx.SessionId,
			UserId:      chatCtx.UserId,
			RequestedAt: reply.CreatedAt,
		})
	}

	return &dto.ChatResponse{Success: true, Message: reply}
}

func (s *chatService) publishAutoSave(req dto.AutoSaveMessage) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), payload); err != nil {
		s.logger.Warn(chatLogModule, "Failed to publish auto-save request", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
	}
}

func (s *chatService) SaveChatSession(ctx context.Context, session *entity.ChatSession, message *entity.ChatMessage) bool {
	used, err := s.storage.Save(ctx, session, message)
	if err != nil {
		details := map[string]interface{}{"error": err.Error()}
		if session != nil {
			details["session_id"] = session.Id
			details["user_id"] = session.UserId
		}
		s.logger.Error(chatLogModule, "Failed to save chat session", details)
		return false
	}
	if session != nil && s.events != nil {
		s.events.PublishSessionSaved(ctx, session.Id, session.UserId, used)
	}
	return true
}

func (s *chatService) LoadChatSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, bool) {
	conv, err := s.storage.LoadSession(ctx, sessionId, userId)
	if err != nil {
		s.logger.Error(chatLogModule, "Failed to load chat session", map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
			"error":      err.Error(),
		})
		return nil, false
	}
	if conv == nil {
		return nil, false
	}
	if conv.Messages == nil {
		conv.Messages = []*entity.ChatMessage{}
	}
	entity.SortMessages(conv.Messages)
	return conv, true
}

func (s *chatService) GetUserChatSessions(ctx context.Context, userId string) []*entity.ChatSession {
	sessions, err := s.storage.ListSessions(ctx, userId)
	if err != nil {
		s.logger.Error(chatLogModule, "Failed to list chat sessions", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return []*entity.ChatSession{}
	}
	if sessions == nil {
		return []*entity.ChatSession{}
	}
	return sessions
}

func (s *chatService) DeleteChatSession(ctx context.Context, sessionId, userId string) bool {
	if err := s.storage.DeleteSession(ctx, sessionId, userId); err != nil {
		s.logger.Error(chatLogModule, "Failed to delete chat session", map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
			"error":      err.Error(),
		})
		return false
	}
	if s.events != nil {
		s.events.PublishSessionDeleted(ctx, sessionId, userId)
	}
	return true
}

func (s *chatService) RenameChatSession(ctx context.Context, sessionId, userId, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	conv, ok := s.LoadChatSession(ctx, sessionId, userId)
	if !ok {
		return false
	}
	session := *conv.Session
	session.SessionName = name
	session.UpdatedAt = s.now()
	return s.SaveChatSession(ctx, &session, nil)
}

// sessionTitle is the first words of the opening message.
func sessionTitle(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= sessionTitleMaxRunes {
		return content
	}
	runes := []rune(content)
	return string(runes[:sessionTitleMaxRunes]) + "..."
}

// Exchange runs one full turn: persist the user message, generate the reply
// and persist it. A new session is created when the context names none or
// the named one does not exist yet. The whole turn holds the session lock,
// so concurrent turns on one session are stored one after the other.
func (s *chatService) Exchange(ctx context.Context, content string, chatCtx *dto.ChatContext) *dto.ExchangeResult {
	if chatCtx == nil {
		chatCtx = &dto.ChatContext{}
	}
	turn := *chatCtx
	if turn.SessionId == "" {
		turn.SessionId = uuid.NewString()
	}

	unlock := s.sessions.Lock(turn.SessionId)
	defer unlock()

	now := s.now()
	var session *entity.ChatSession
	if conv, ok := s.LoadChatSession(ctx, turn.SessionId, turn.UserId); ok {
		session = conv.Session
		if len(turn.History) == 0 {
			turn.History = conv.Messages
		}
		if n := len(conv.Messages); n > 0 && !now.After(conv.Messages[n-1].CreatedAt) {
			now = conv.Messages[n-1].CreatedAt.Add(time.Millisecond)
		}
	}
	if session == nil {
		session = &entity.ChatSession{
			Id:          turn.SessionId,
			UserId:      turn.UserId,
			SessionName: sessionTitle(content),
			SessionType: entity.SessionTypeGeneral,
			IsActive:    true,
			CreatedAt:   now,
		}
	}
	session.UpdatedAt = now

	userMessage := &entity.ChatMessage{
		Id:        uuid.NewString(),
		SessionId: session.Id,
		UserId:    turn.UserId,
		Role:      entity.MessageRoleUser,
		Content:   content,
		CreatedAt: now,
	}
	saved := s.SaveChatSession(ctx, session, userMessage)

	resp := s.respond(ctx, content, &turn)
	assistant := resp.Message
	if !assistant.CreatedAt.After(userMessage.CreatedAt) {
		assistant.CreatedAt = userMessage.CreatedAt.Add(time.Millisecond)
	}

	updated := *session
	updated.UpdatedAt = assistant.CreatedAt
	saved = s.SaveChatSession(ctx, &updated, assistant) && saved

	return &dto.ExchangeResult{
		Session:          &updated,
		UserMessage:      userMessage,
		AssistantMessage: assistant,
		Saved:            saved,
	}
}

func (s *chatService) StorageStatus() chatstore.Status {
	return s.storage.Status()
}

func (s *chatService) Close() {
	s.autoSave.Stop()
}
