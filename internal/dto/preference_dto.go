package dto

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type PetProfileRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	ImageKey  string `json:"imageKey" validate:"omitempty,oneof=pet1 pet2"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	Mood      string `json:"mood" validate:"max=30"`
}
