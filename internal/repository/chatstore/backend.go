package chatstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"manasfit-be/internal/entity"
)

type sessionPayload struct {
	Id          string                `json:"id"`
	UserId      string                `json:"user_id"`
	SessionName string                `json:"session_name"`
	SessionType entity.SessionType    `json:"session_type"`
	Context     entity.SessionContext `json:"context_data"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type messagePayload struct {
	Id        string                 `json:"id"`
	SessionId string                 `json:"session_id"`
	UserId    string                 `json:"user_id"`
	Role      entity.MessageRole     `json:"role"`
	Content   string                 `json:"content"`
	CreatedAt time.Time              `json:"created_at"`
	Metadata  entity.MessageMetadata `json:"metadata"`
}

type conversationPayload struct {
	Session  sessionPayload   `json:"session"`
	Messages []messagePayload `json:"messages"`
}

type sessionListPayload struct {
	Sessions []sessionPayload `json:"sessions"`
}

func toSessionPayload(s *entity.ChatSession) sessionPayload {
	return sessionPayload{
		Id:          s.Id,
		UserId:      s.UserId,
		SessionName: s.SessionName,
		SessionType: s.SessionType,
		Context:     s.Context,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (p sessionPayload) toEntity() *entity.ChatSession {
	return &entity.ChatSession{
		Id:          p.Id,
		UserId:      p.UserId,
		SessionName: p.SessionName,
		SessionType: p.SessionType,
		Context:     p.Context,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toMessagePayload(m *entity.ChatMessage) messagePayload {
	return messagePayload{
		Id:        m.Id,
		SessionId: m.SessionId,
		UserId:    m.UserId,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Metadata:  m.Metadata,
	}
}

func (p messagePayload) toEntity() *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:        p.Id,
		SessionId: p.SessionId,
		UserId:    p.UserId,
		Role:      p.Role,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		Metadata:  p.Metadata,
	}
}

// BackendStorage talks to the companion backend API over HTTP.
type BackendStorage struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewBackendStorage(baseURL, token string, timeout time.Duration) *BackendStorage {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BackendStorage{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *BackendStorage) Name() string { return string(StorageTypeBackend) }

func (s *BackendStorage) Available() bool { return s != nil && s.BaseURL != "" }

// do sends the request and decodes a 2xx body into out. It reports false
// for 404.
func (s *BackendStorage) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) (bool, error) {
	if !s.Available() {
		return false, ErrUnavailable
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return false, err
		}
		reader = bytes.NewReader(raw)
	}

	target := s.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode == http.StatusForbidden:
		return false, ErrSessionOwnership
	case resp.StatusCode == http.StatusGone:
		return false, ErrSessionDeleted
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("backend %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("decode backend response: %w", err)
		}
	}
	return true, nil
}

func sessionPath(sessionId string) string {
	return "/chat-sessions/" + url.PathEscape(sessionId)
}

func (s *BackendStorage) SaveSession(ctx context.Context, session *entity.ChatSession) error {
	if err := validateSession(session); err != nil {
		return err
	}
	_, err := s.do(ctx, http.MethodPut, sessionPath(session.Id), nil, toSessionPayload(session), nil)
	return err
}

func (s *BackendStorage) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	if err := validateMessage(message); err != nil {
		return err
	}
	found, err := s.do(ctx, http.MethodPost, sessionPath(message.SessionId)+"/messages", nil, toMessagePayload(message), nil)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("backend has no session %s", message.SessionId)
	}
	return nil
}

func (s *BackendStorage) LoadSession(ctx context.Context, sessionId, userId string) (*entity.Conversation, error) {
	var payload conversationPayload
	found, err := s.do(ctx, http.MethodGet, sessionPath(sessionId), url.Values{"user_id": {userId}}, nil, &payload)
	if err != nil || !found {
		return nil, err
	}

	session := payload.Session.toEntity()
	if session.UserId != userId {
		return nil, nil
	}
	messages := make([]*entity.ChatMessage, len(payload.Messages))
	for i, m := range payload.Messages {
		messages[i] = m.toEntity()
	}
	entity.SortMessages(messages)
	return &entity.Conversation{Session: session, Messages: messages}, nil
}

func (s *BackendStorage) ListSessions(ctx context.Context, userId string) ([]*entity.ChatSession, error) {
	var payload sessionListPayload
	if _, err := s.do(ctx, http.MethodGet, "/chat-sessions", url.Values{"user_id": {userId}}, nil, &payload); err != nil {
		return nil, err
	}

	sessions := make([]*entity.ChatSession, 0, len(payload.Sessions))
	for _, p := range payload.Sessions {
		if p.UserId == userId && p.IsActive {
			sessions = append(sessions, p.toEntity())
		}
	}
	entity.SortSessionsByUpdatedDesc(sessions)
	return sessions, nil
}

func (s *BackendStorage) DeleteSession(ctx context.Context, sessionId, userId string) error {
	_, err := s.do(ctx, http.MethodDelete, sessionPath(sessionId), url.Values{"user_id": {userId}}, nil, nil)
	return err
}
