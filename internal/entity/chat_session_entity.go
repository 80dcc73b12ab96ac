package entity

import (
	"sort"
	"time"
)

type SessionType string

const (
	SessionTypeGeneral     SessionType = "general"
	SessionTypeWellness    SessionType = "wellness"
	SessionTypeAcademic    SessionType = "academic"
	SessionTypeCrisis      SessionType = "crisis"
	SessionTypeGoalSetting SessionType = "goal_setting"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeGeneral, SessionTypeWellness, SessionTypeAcademic, SessionTypeCrisis, SessionTypeGoalSetting:
		return true
	}
	return false
}

// SessionContext is the closed set of context keys a session carries.
type SessionContext struct {
	Tags     []string `json:"tags,omitempty"`
	Category string   `json:"category,omitempty"`
	Summary  string   `json:"summary,omitempty"`
}

type ChatSession struct {
	Id          string
	UserId      string
	SessionName string
	SessionType SessionType
	Context     SessionContext
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// SortSessionsByUpdatedDesc orders newest-updated first, ties by id.
func SortSessionsByUpdatedDesc(sessions []*ChatSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if !sessions[i].UpdatedAt.Equal(sessions[j].UpdatedAt) {
			return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
		}
		return sessions[i].Id < sessions[j].Id
	})
}
