package specification

import (
	"manasfit-be/internal/repository/scope"

	"gorm.io/gorm"
)

type ByEntryDate struct {
	Date string
}

func (s ByEntryDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entry_date = ?", s.Date)
}

// EntryDateSince keeps entries on or after Date (YYYY-MM-DD compares lexically).
type EntryDateSince struct {
	Date string
}

func (s EntryDateSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entry_date >= ?", s.Date).Scopes(scope.OrderByEntryDateDesc)
}
