package mapper

import (
	"manasfit-be/internal/entity"
	"manasfit-be/internal/model"
)

type CompanionMapper struct{}

func NewCompanionMapper() *CompanionMapper {
	return &CompanionMapper{}
}

func (m *CompanionMapper) SelectionToEntity(s *model.UserCompanionSelection) *entity.CompanionSelection {
	if s == nil {
		return nil
	}
	return &entity.CompanionSelection{
		UserId:        s.UserId,
		Kind:          entity.SelectionKind(s.CompanionType),
		Character:     s.Character,
		CompanionType: s.CompanionSubtype,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *CompanionMapper) SelectionToModel(s *entity.CompanionSelection) *model.UserCompanionSelection {
	if s == nil {
		return nil
	}
	return &model.UserCompanionSelection{
		UserId:           s.UserId,
		CompanionType:    string(s.Kind),
		Character:        s.Character,
		CompanionSubtype: s.CompanionType,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
