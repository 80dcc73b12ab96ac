package dto

import (
	"time"

	"manasfit-be/internal/entity"
)

// WellnessProfileRequest is a partial update: nil fields are left as stored.
type WellnessProfileRequest struct {
	SleepSchedule      *string  `json:"sleep_schedule" validate:"omitempty,oneof=regular irregular shift_work"`
	BedtimePreference  *string  `json:"bedtime_preference"`
	WakeTimePreference *string  `json:"wake_time_preference"`
	SleepDurationHours *float64 `json:"sleep_duration_hours" validate:"omitempty,min=0,max=24"`
	SleepQualityRating *int     `json:"sleep_quality_rating" validate:"omitempty,min=1,max=10"`
	SleepIssues        []string `json:"sleep_issues"`

	ExerciseFrequency       *string  `json:"exercise_frequency" validate:"omitempty,oneof=daily weekly rarely never"`
	PreferredExerciseTypes  []string `json:"preferred_exercise_types"`
	ExerciseDurationMinutes *int     `json:"exercise_duration_minutes" validate:"omitempty,min=0"`
	FitnessLevel            *string  `json:"fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`

	MealFrequency      *int     `json:"meal_frequency" validate:"omitempty,min=0"`
	DietaryPreferences []string `json:"dietary_preferences"`
	WaterIntakeGlasses *int     `json:"water_intake_glasses" validate:"omitempty,min=0"`
	NutritionConcerns  []string `json:"nutrition_concerns"`

	StressLevel      *int     `json:"stress_level" validate:"omitempty,min=1,max=10"`
	StressSources    []string `json:"stress_sources"`
	CopingStrategies []string `json:"coping_strategies"`
	MoodPatterns     *string  `json:"mood_patterns"`

	StudyWorkHours       *float64 `json:"study_work_hours" validate:"omitempty,min=0,max=24"`
	AcademicWorkload     *string  `json:"academic_workload" validate:"omitempty,oneof=light moderate heavy"`
	ProductivityPeakTime *string  `json:"productivity_peak_time" validate:"omitempty,oneof=morning afternoon evening night"`

	SocialActivityLevel  *string `json:"social_activity_level" validate:"omitempty,oneof=low moderate high"`
	SocialSupportQuality *int    `json:"social_support_quality" validate:"omitempty,min=1,max=10"`

	PrimaryWellnessGoals       []string `json:"primary_wellness_goals"`
	MotivationLevel            *int     `json:"motivation_level" validate:"omitempty,min=1,max=10"`
	PreviousWellnessExperience *string  `json:"previous_wellness_experience"`

	HealthConditions []string `json:"health_conditions"`
	Medications      []string `json:"medications"`
	LifestyleFactors []string `json:"lifestyle_factors"`
}

type WellnessProfileResponse struct {
	Id     string `json:"id"`
	UserId string `json:"user_id"`
	WellnessProfileRequest
	CompletionPercentage int       `json:"completion_percentage"`
	IsCompleted          bool      `json:"is_completed"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type ProfileCompletedResponse struct {
	Completed bool `json:"completed"`
}

type WellnessEntryRequest struct {
	EntryDate          string   `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
	SleepHours         *float64 `json:"sleep_hours" validate:"omitempty,min=0,max=24"`
	SleepQuality       *int     `json:"sleep_quality" validate:"omitempty,min=1,max=10"`
	ExerciseMinutes    *int     `json:"exercise_minutes" validate:"omitempty,min=0"`
	ExerciseType       *string  `json:"exercise_type"`
	WaterIntakeGlasses *int     `json:"water_intake_glasses" validate:"omitempty,min=0"`
	MealsConsumed      *int     `json:"meals_consumed" validate:"omitempty,min=0"`
	MoodScore          *int     `json:"mood_score" validate:"omitempty,min=1,max=10"`
	StressLevel        *int     `json:"stress_level" validate:"omitempty,min=1,max=10"`
	EnergyLevel        *int     `json:"energy_level" validate:"omitempty,min=1,max=10"`
	Notes              *string  `json:"notes" validate:"omitempty,max=2000"`
}

type WellnessEntryResponse struct {
	Id     string `json:"id"`
	UserId string `json:"user_id"`
	WellnessEntryRequest
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *WellnessProfileRequest) ToEntity() *entity.WellnessProfile {
	return &entity.WellnessProfile{
		SleepSchedule:              r.SleepSchedule,
		BedtimePreference:          r.BedtimePreference,
		WakeTimePreference:         r.WakeTimePreference,
		SleepDurationHours:         r.SleepDurationHours,
		SleepQualityRating:         r.SleepQualityRating,
		SleepIssues:                r.SleepIssues,
		ExerciseFrequency:          r.ExerciseFrequency,
		PreferredExerciseTypes:     r.PreferredExerciseTypes,
		ExerciseDurationMinutes:    r.ExerciseDurationMinutes,
		FitnessLevel:               r.FitnessLevel,
		MealFrequency:              r.MealFrequency,
		DietaryPreferences:         r.DietaryPreferences,
		WaterIntakeGlasses:         r.WaterIntakeGlasses,
		NutritionConcerns:          r.NutritionConcerns,
		StressLevel:                r.StressLevel,
		StressSources:              r.StressSources,
		CopingStrategies:           r.CopingStrategies,
		MoodPatterns:               r.MoodPatterns,
		StudyWorkHours:             r.StudyWorkHours,
		AcademicWorkload:           r.AcademicWorkload,
		ProductivityPeakTime:       r.ProductivityPeakTime,
		SocialActivityLevel:        r.SocialActivityLevel,
		SocialSupportQuality:       r.SocialSupportQuality,
		PrimaryWellnessGoals:       r.PrimaryWellnessGoals,
		MotivationLevel:            r.MotivationLevel,
		PreviousWellnessExperience: r.PreviousWellnessExperience,
		HealthConditions:           r.HealthConditions,
		Medications:                r.Medications,
		LifestyleFactors:           r.LifestyleFactors,
	}
}

func ToWellnessProfileResponse(p *entity.WellnessProfile) WellnessProfileResponse {
	return WellnessProfileResponse{
		Id:     p.Id,
		UserId: p.UserId,
		WellnessProfileRequest: WellnessProfileRequest{
			SleepSchedule:              p.SleepSchedule,
			BedtimePreference:          p.BedtimePreference,
			WakeTimePreference:         p.WakeTimePreference,
			SleepDurationHours:         p.SleepDurationHours,
			SleepQualityRating:         p.SleepQualityRating,
			SleepIssues:                p.SleepIssues,
			ExerciseFrequency:          p.ExerciseFrequency,
			PreferredExerciseTypes:     p.PreferredExerciseTypes,
			ExerciseDurationMinutes:    p.ExerciseDurationMinutes,
			FitnessLevel:               p.FitnessLevel,
			MealFrequency:              p.MealFrequency,
			DietaryPreferences:         p.DietaryPreferences,
			WaterIntakeGlasses:         p.WaterIntakeGlasses,
			NutritionConcerns:          p.NutritionConcerns,
			StressLevel:                p.StressLevel,
			StressSources:              p.StressSources,
			CopingStrategies:           p.CopingStrategies,
			MoodPatterns:               p.MoodPatterns,
			StudyWorkHours:             p.StudyWorkHours,
			AcademicWorkload:           p.AcademicWorkload,
			ProductivityPeakTime:       p.ProductivityPeakTime,
			SocialActivityLevel:        p.SocialActivityLevel,
			SocialSupportQuality:       p.SocialSupportQuality,
			PrimaryWellnessGoals:       p.PrimaryWellnessGoals,
			MotivationLevel:            p.MotivationLevel,
			PreviousWellnessExperience: p.PreviousWellnessExperience,
			HealthConditions:           p.HealthConditions,
			Medications:                p.Medications,
			LifestyleFactors:           p.LifestyleFactors,
		},
		CompletionPercentage: p.CompletionPercentage,
		IsCompleted:          p.IsCompleted,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (r *WellnessEntryRequest) ToEntity() *entity.WellnessEntry {
	return &entity.WellnessEntry{
		EntryDate:          r.EntryDate,
		SleepHours:         r.SleepHours,
		SleepQuality:       r.SleepQuality,
		ExerciseMinutes:    r.ExerciseMinutes,
		ExerciseType:       r.ExerciseType,
		WaterIntakeGlasses: r.WaterIntakeGlasses,
		MealsConsumed:      r.MealsConsumed,
		MoodScore:          r.MoodScore,
		StressLevel:        r.StressLevel,
		EnergyLevel:        r.EnergyLevel,
		Notes:              r.Notes,
	}
}

func ToWellnessEntryResponse(e *entity.WellnessEntry) WellnessEntryResponse {
	return WellnessEntryResponse{
		Id:     e.Id,
		UserId: e.UserId,
		WellnessEntryRequest: WellnessEntryRequest{
			EntryDate:          e.EntryDate,
			SleepHours:         e.SleepHours,
			SleepQuality:       e.SleepQuality,
			ExerciseMinutes:    e.ExerciseMinutes,
			ExerciseType:       e.ExerciseType,
			WaterIntakeGlasses: e.WaterIntakeGlasses,
			MealsConsumed:      e.MealsConsumed,
			MoodScore:          e.MoodScore,
			StressLevel:        e.StressLevel,
			EnergyLevel:        e.EnergyLevel,
			Notes:              e.Notes,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToWellnessEntryResponses(entries []*entity.WellnessEntry) []WellnessEntryResponse {
	res := make([]WellnessEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, ToWellnessEntryResponse(e))
	}
	return res
}
