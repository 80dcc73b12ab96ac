package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Timestamps are set by the application so the repository can keep
// updated_at monotonic and created_at stable across upserts.
type ChatSession struct {
	Id          string         `gorm:"type:text;primaryKey"`
	UserId      string         `gorm:"type:text;not null;index"`
	SessionName string         `gorm:"type:text;not null"`
	SessionType string         `gorm:"type:varchar(32);not null"`
	ContextData datatypes.JSON `gorm:"type:jsonb"`
	IsActive    bool           `gorm:"not null;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime:false;index"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

type ChatMessage struct {
	Id        string         `gorm:"type:text;primaryKey"`
	SessionId string         `gorm:"type:text;not null;index"`
	UserId    string         `gorm:"type:text;not null;index"`
	Role      string         `gorm:"type:varchar(16);not null"`
	Content   string         `gorm:"type:text;not null"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime:false;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
