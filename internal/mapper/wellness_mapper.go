package mapper

import (
	"manasfit-be/internal/entity"
	"manasfit-be/internal/model"

	"gorm.io/datatypes"
)

type WellnessMapper struct{}

func NewWellnessMapper() *WellnessMapper {
	return &WellnessMapper{}
}

func listToJSON(l []string) datatypes.JSON {
	if l == nil {
		return nil
	}
	return toJSON(l)
}

func listFromJSON(raw datatypes.JSON) []string {
	var l []string
	fromJSON(raw, &l)
	return l
}

func (m *WellnessMapper) ProfileToEntity(p *model.UserWellnessProfile) *entity.WellnessProfile {
	if p == nil {
		return nil
	}
	return &entity.WellnessProfile{
		Id:                         p.Id,
		UserId:                     p.UserId,
		SleepSchedule:              p.SleepSchedule,
		BedtimePreference:          p.BedtimePreference,
		WakeTimePreference:         p.WakeTimePreference,
		SleepDurationHours:         p.SleepDurationHours,
		SleepQualityRating:         p.SleepQualityRating,
		SleepIssues:                listFromJSON(p.SleepIssues),
		ExerciseFrequency:          p.ExerciseFrequency,
		PreferredExerciseTypes:     listFromJSON(p.PreferredExerciseTypes),
		ExerciseDurationMinutes:    p.ExerciseDurationMinutes,
		FitnessLevel:               p.FitnessLevel,
		MealFrequency:              p.MealFrequency,
		DietaryPreferences:         listFromJSON(p.DietaryPreferences),
		WaterIntakeGlasses:         p.WaterIntakeGlasses,
		NutritionConcerns:          listFromJSON(p.NutritionConcerns),
		StressLevel:                p.StressLevel,
		StressSources:              listFromJSON(p.StressSources),
		CopingStrategies:           listFromJSON(p.CopingStrategies),
		MoodPatterns:               p.MoodPatterns,
		StudyWorkHours:             p.StudyWorkHours,
		AcademicWorkload:           p.AcademicWorkload,
		ProductivityPeakTime:       p.ProductivityPeakTime,
		SocialActivityLevel:        p.SocialActivityLevel,
		SocialSupportQuality:       p.SocialSupportQuality,
		PrimaryWellnessGoals:       listFromJSON(p.PrimaryWellnessGoals),
		MotivationLevel:            p.MotivationLevel,
		PreviousWellnessExperience: p.PreviousWellnessExperience,
		HealthConditions:           listFromJSON(p.HealthConditions),
		Medications:                listFromJSON(p.Medications),
		LifestyleFactors:           listFromJSON(p.LifestyleFactors),
		CompletionPercentage:       p.CompletionPercentage,
		IsCompleted:                p.IsCompleted,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

func (m *WellnessMapper) ProfileToModel(p *entity.WellnessProfile) *model.UserWellnessProfile {
	if p == nil {
		return nil
	}
	return &model.UserWellnessProfile{
		Id:                         p.Id,
		UserId:                     p.UserId,
		SleepSchedule:              p.SleepSchedule,
		BedtimePreference:          p.BedtimePreference,
		WakeTimePreference:         p.WakeTimePreference,
		SleepDurationHours:         p.SleepDurationHours,
		SleepQualityRating:         p.SleepQualityRating,
		SleepIssues:                listToJSON(p.SleepIssues),
		ExerciseFrequency:          p.ExerciseFrequency,
		PreferredExerciseTypes:     listToJSON(p.PreferredExerciseTypes),
		ExerciseDurationMinutes:    p.ExerciseDurationMinutes,
		FitnessLevel:               p.FitnessLevel,
		MealFrequency:              p.MealFrequency,
		DietaryPreferences:         listToJSON(p.DietaryPreferences),
		WaterIntakeGlasses:         p.WaterIntakeGlasses,
		NutritionConcerns:          listToJSON(p.NutritionConcerns),
		StressLevel:                p.StressLevel,
		StressSources:              listToJSON(p.StressSources),
		CopingStrategies:           listToJSON(p.CopingStrategies),
		MoodPatterns:               p.MoodPatterns,
		StudyWorkHours:             p.StudyWorkHours,
		AcademicWorkload:           p.AcademicWorkload,
		ProductivityPeakTime:       p.ProductivityPeakTime,
		SocialActivityLevel:        p.SocialActivityLevel,
		SocialSupportQuality:       p.SocialSupportQuality,
		PrimaryWellnessGoals:       listToJSON(p.PrimaryWellnessGoals),
		MotivationLevel:            p.MotivationLevel,
		PreviousWellnessExperience: p.PreviousWellnessExperience,
		HealthConditions:           listToJSON(p.HealthConditions),
		Medications:                listToJSON(p.Medications),
		LifestyleFactors:           listToJSON(p.LifestyleFactors),
		CompletionPercentage:       p.CompletionPercentage,
		IsCompleted:                p.IsCompleted,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

func (m *WellnessMapper) EntryToEntity(e *model.WellnessEntry) *entity.WellnessEntry {
	if e == nil {
		return nil
	}
	return &entity.WellnessEntry{
		Id:                 e.Id,
		UserId:             e.UserId,
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
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (m *WellnessMapper) EntryToModel(e *entity.WellnessEntry) *model.WellnessEntry {
	if e == nil {
		return nil
	}
	return &model.WellnessEntry{
		Id:                 e.Id,
		UserId:             e.UserId,
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
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
