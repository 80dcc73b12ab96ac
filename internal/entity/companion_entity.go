package entity

import (
	"errors"
	"time"
)

type SelectionKind string

const (
	SelectionKindPet       SelectionKind = "pet"
	SelectionKindCompanion SelectionKind = "companion"
)

var (
	ErrInvalidSelectionKind = errors.New("selection type must be pet or companion")
	ErrMissingCharacter     = errors.New("pet selection requires a character")
	ErrMissingCompanionType = errors.New("companion selection requires a companion type")
)

// CompanionSelection is a tagged union: Character belongs to the pet branch,
// CompanionType to the companion branch.
type CompanionSelection struct {
	UserId        string
	Kind          SelectionKind
	Character     string
	CompanionType string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Normalize clears the fields of the branch Kind does not select.
func (s *CompanionSelection) Normalize() {
	switch s.Kind {
	case SelectionKindPet:
		s.CompanionType = ""
	case SelectionKindCompanion:
		s.Character = ""
	}
}

func (s *CompanionSelection) Validate() error {
	switch s.Kind {
	case SelectionKindPet:
		if s.Character == "" {
			return ErrMissingCharacter
		}
	case SelectionKindCompanion:
		if s.CompanionType == "" {
			return ErrMissingCompanionType
		}
	default:
		return ErrInvalidSelectionKind
	}
	return nil
}
