package entity

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type PetImageKey string

const (
	PetImageOne PetImageKey = "pet1"
	PetImageTwo PetImageKey = "pet2"
)

type PetProfile struct {
	Name      string      `json:"name"`
	ImageKey  PetImageKey `json:"imageKey"`
	StartDate string      `json:"startDate"`
	Mood      string      `json:"mood"`
}
