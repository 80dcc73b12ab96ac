package model

import "time"

type UserCompanionSelection struct {
	Id               string `gorm:"type:text;primaryKey"`
	UserId           string `gorm:"type:text;not null;uniqueIndex"`
	CompanionType    string `gorm:"type:varchar(16);not null"` // pet | companion
	Character        string `gorm:"type:text"`
	CompanionSubtype string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserCompanionSelection) TableName() string {
	return "user_companion_selection"
}
