package entity

import (
	"math"
	"time"
)

// CompletionThreshold is the percentage at which a profile counts as completed.
const CompletionThreshold = 70

type WellnessProfile struct {
	Id     string
	UserId string

	// Sleep
	SleepSchedule      *string
	BedtimePreference  *string
	WakeTimePreference *string
	SleepDurationHours *float64
	SleepQualityRating *int
	SleepIssues        []string

	// Exercise
	ExerciseFrequency       *string
	PreferredExerciseTypes  []string
	ExerciseDurationMinutes *int
	FitnessLevel            *string

	// Nutrition
	MealFrequency      *int
	DietaryPreferences []string
	WaterIntakeGlasses *int
	NutritionConcerns  []string

	// Stress and mood
	StressLevel      *int
	StressSources    []string
	CopingStrategies []string
	MoodPatterns     *string

	// Academic / work
	StudyWorkHours       *float64
	AcademicWorkload     *string
	ProductivityPeakTime *string

	// Social
	SocialActivityLevel  *string
	SocialSupportQuality *int

	// Goals
	PrimaryWellnessGoals       []string
	MotivationLevel            *int
	PreviousWellnessExperience *string

	// Health
	HealthConditions []string
	Medications      []string
	LifestyleFactors []string

	CompletionPercentage int
	IsCompleted          bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func setStr(p *string) bool { return p != nil && *p != "" }
func setInt(p *int) bool { return p != nil }
func setF(p *float64) bool { return p != nil }
func setList(l []string) bool { return len(l) > 0 }

func (p *WellnessProfile) trackedFields() []bool {
	return []bool{
		setStr(p.SleepSchedule), setStr(p.BedtimePreference), setStr(p.WakeTimePreference),
		setF(p.SleepDurationHours), setInt(p.SleepQualityRating), setList(p.SleepIssues),
		setStr(p.ExerciseFrequency), setList(p.PreferredExerciseTypes), setInt(p.ExerciseDurationMinutes), setStr(p.FitnessLevel),
		setInt(p.MealFrequency), setList(p.DietaryPreferences), setInt(p.WaterIntakeGlasses), setList(p.NutritionConcerns),
		setInt(p.StressLevel), setList(p.StressSources), setList(p.CopingStrategies), setStr(p.MoodPatterns),
		setF(p.StudyWorkHours), setStr(p.AcademicWorkload), setStr(p.ProductivityPeakTime),
		setStr(p.SocialActivityLevel), setInt(p.SocialSupportQuality),
		setList(p.PrimaryWellnessGoals), setInt(p.MotivationLevel), setStr(p.PreviousWellnessExperience),
		setList(p.HealthConditions), setList(p.Medications), setList(p.LifestyleFactors),
	}
}

// Recompute derives CompletionPercentage and IsCompleted from the populated fields.
func (p *WellnessProfile) Recompute() {
	fields := p.trackedFields()
	filled := 0
	for _, ok := range fields {
		if ok {
			filled++
		}
	}
	p.CompletionPercentage = int(math.Round(float64(filled) / float64(len(fields)) * 100))
	p.IsCompleted = p.CompletionPercentage >= CompletionThreshold
}

// Merge copies every field the patch sets onto p. Lists are replaced, not appended.
func (p *WellnessProfile) Merge(patch *WellnessProfile) {
	if patch == nil {
		return
	}
	mergeStr(&p.SleepSchedule, patch.SleepSchedule)
	mergeStr(&p.BedtimePreference, patch.BedtimePreference)
	mergeStr(&p.WakeTimePreference, patch.WakeTimePreference)
	mergeF(&p.SleepDurationHours, patch.SleepDurationHours)
	mergeInt(&p.SleepQualityRating, patch.SleepQualityRating)
	mergeList(&p.SleepIssues, patch.SleepIssues)
	mergeStr(&p.ExerciseFrequency, patch.ExerciseFrequency)
	mergeList(&p.PreferredExerciseTypes, patch.PreferredExerciseTypes)
	mergeInt(&p.ExerciseDurationMinutes, patch.ExerciseDurationMinutes)
	mergeStr(&p.FitnessLevel, patch.FitnessLevel)
	mergeInt(&p.MealFrequency, patch.MealFrequency)
	mergeList(&p.DietaryPreferences, patch.DietaryPreferences)
	mergeInt(&p.WaterIntakeGlasses, patch.WaterIntakeGlasses)
	mergeList(&p.NutritionConcerns, patch.NutritionConcerns)
	mergeInt(&p.StressLevel, patch.StressLevel)
	mergeList(&p.StressSources, patch.StressSources)
	mergeList(&p.CopingStrategies, patch.CopingStrategies)
	mergeStr(&p.MoodPatterns, patch.MoodPatterns)
	mergeF(&p.StudyWorkHours, patch.StudyWorkHours)
	mergeStr(&p.AcademicWorkload, patch.AcademicWorkload)
	mergeStr(&p.ProductivityPeakTime, patch.ProductivityPeakTime)
	mergeStr(&p.SocialActivityLevel, patch.SocialActivityLevel)
	mergeInt(&p.SocialSupportQuality, patch.SocialSupportQuality)
	mergeList(&p.PrimaryWellnessGoals, patch.PrimaryWellnessGoals)
	mergeInt(&p.MotivationLevel, patch.MotivationLevel)
	mergeStr(&p.PreviousWellnessExperience, patch.PreviousWellnessExperience)
	mergeList(&p.HealthConditions, patch.HealthConditions)
	mergeList(&p.Medications, patch.Medications)
	mergeList(&p.LifestyleFactors, patch.LifestyleFactors)
}

func mergeStr(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func mergeInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}

func mergeF(dst **float64, src *float64) {
	if src != nil {
		*dst = src
	}
}

func mergeList(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}

// EntryDateLayout is the calendar-date format of WellnessEntry.EntryDate.
const EntryDateLayout = "2006-01-02"

// WellnessEntry is one day of tracker data; (UserId, EntryDate) is unique.
type WellnessEntry struct {
	Id                 string
	UserId             string
	EntryDate          string
	SleepHours         *float64
	SleepQuality       *int
	ExerciseMinutes    *int
	ExerciseType       *string
	WaterIntakeGlasses *int
	MealsConsumed      *int
	MoodScore          *int
	StressLevel        *int
	EnergyLevel        *int
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (e *WellnessEntry) Merge(patch *WellnessEntry) {
	if patch == nil {
		return
	}
	mergeF(&e.SleepHours, patch.SleepHours)
	mergeInt(&e.SleepQuality, patch.SleepQuality)
	mergeInt(&e.ExerciseMinutes, patch.ExerciseMinutes)
	mergeStr(&e.ExerciseType, patch.ExerciseType)
	mergeInt(&e.WaterIntakeGlasses, patch.WaterIntakeGlasses)
	mergeInt(&e.MealsConsumed, patch.MealsConsumed)
	mergeInt(&e.MoodScore, patch.MoodScore)
	mergeInt(&e.StressLevel, patch.StressLevel)
	mergeInt(&e.EnergyLevel, patch.EnergyLevel)
	mergeStr(&e.Notes, patch.Notes)
}
