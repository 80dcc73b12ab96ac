package model

import (
	"time"

	"gorm.io/datatypes"
)

type UserWellnessProfile struct {
	Id     string `gorm:"type:text;primaryKey"`
	UserId string `gorm:"type:text;not null;uniqueIndex"`

	SleepSchedule      *string
	BedtimePreference  *string
	WakeTimePreference *string
	SleepDurationHours *float64
	SleepQualityRating *int
	SleepIssues        datatypes.JSON `gorm:"type:jsonb"`

	ExerciseFrequency       *string
	PreferredExerciseTypes  datatypes.JSON `gorm:"type:jsonb"`
	ExerciseDurationMinutes *int
	FitnessLevel            *string

	MealFrequency      *int
	DietaryPreferences datatypes.JSON `gorm:"type:jsonb"`
	WaterIntakeGlasses *int
	NutritionConcerns  datatypes.JSON `gorm:"type:jsonb"`

	StressLevel      *int
	StressSources    datatypes.JSON `gorm:"type:jsonb"`
	CopingStrategies datatypes.JSON `gorm:"type:jsonb"`
	MoodPatterns     *string

	StudyWorkHours       *float64
	AcademicWorkload     *string
	ProductivityPeakTime *string

	SocialActivityLevel  *string
	SocialSupportQuality *int

	PrimaryWellnessGoals       datatypes.JSON `gorm:"type:jsonb"`
	MotivationLevel            *int
	PreviousWellnessExperience *string

	HealthConditions datatypes.JSON `gorm:"type:jsonb"`
	Medications      datatypes.JSON `gorm:"type:jsonb"`
	LifestyleFactors datatypes.JSON `gorm:"type:jsonb"`

	CompletionPercentage int  `gorm:"not null"`
	IsCompleted          bool `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (UserWellnessProfile) TableName() string {
	return "user_wellness_profile"
}

type WellnessEntry struct {
	Id                 string `gorm:"type:text;primaryKey"`
	UserId             string `gorm:"type:text;not null;uniqueIndex:idx_wellness_entries_user_date"`
	EntryDate          string `gorm:"type:varchar(10);not null;uniqueIndex:idx_wellness_entries_user_date"`
	SleepHours         *float64
	SleepQuality       *int
	ExerciseMinutes    *int
	ExerciseType       *string
	WaterIntakeGlasses *int
	MealsConsumed      *int
	MoodScore          *int
	StressLevel        *int
	EnergyLevel        *int
	Notes              *string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (WellnessEntry) TableName() string {
	return "wellness_entries"
}
