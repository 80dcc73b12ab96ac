package dto

import (
	"time"

	"manasfit-be/internal/entity"
)

type CompanionSelectionRequest struct {
	Type          string `json:"type" validate:"required,oneof=pet companion"`
	Character     string `json:"character" validate:"required_if=Type pet"`
	CompanionType string `json:"companion_type" validate:"required_if=Type companion"`
}

type CompanionSelectionResponse struct {
	Type          string    `json:"type"`
	Character     string    `json:"character,omitempty"`
	CompanionType string    `json:"companion_type,omitempty"`
	ActiveMode    string    `json:"active_mode"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r *CompanionSelectionRequest) ToEntity() *entity.CompanionSelection {
	return &entity.CompanionSelection{
		Kind:          entity.SelectionKind(r.Type),
		Character:     r.Character,
		CompanionType: r.CompanionType,
	}
}

func ToCompanionSelectionResponse(s *entity.CompanionSelection, activeMode string) CompanionSelectionResponse {
	return CompanionSelectionResponse{
		Type:          string(s.Kind),
		Character:     s.Character,
		CompanionType: s.CompanionType,
		ActiveMode:    activeMode,
		UpdatedAt:     s.UpdatedAt,
	}
}
