package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTemplateNotFound = errors.New("workout template not found")
)

// TemplateCategory classifies a whole workout
type TemplateCategory int

const (
	TemplateCategoryResistance TemplateCategory = iota + 1
	TemplateCategoryCardio
	TemplateCategoryYoga
	TemplateCategoryPlyometrics
	TemplateCategoryCore
	TemplateCategoryFlexibility
	TemplateCategoryMartialArts
	TemplateCategoryMixed
)

var templateCategoryNames = map[TemplateCategory]string{
	TemplateCategoryResistance:  "Resistance",
	TemplateCategoryCardio:      "Cardio",
	TemplateCategoryYoga:        "Yoga",
	TemplateCategoryPlyometrics: "Plyometrics",
	TemplateCategoryCore:        "Core",
	TemplateCategoryFlexibility: "Flexibility",
	TemplateCategoryMartialArts: "MartialArts",
	TemplateCategoryMixed:       "Mixed",
}

func (c TemplateCategory) IsValid() bool {
	_, ok := templateCategoryNames[c]
	return ok
}

func (c TemplateCategory) String() string {
	if name, ok := templateCategoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// SectionType describes the role of a section inside a template
type SectionType int

const (
	SectionTypeWarmup SectionType = iota + 1
	SectionTypeMain
	SectionTypeCircuit
	SectionTypeSuperset
	SectionTypeInterval
	SectionTypeCooldown
)

var sectionTypeNames = map[SectionType]string{
	SectionTypeWarmup:   "Warmup",
	SectionTypeMain:     "Main",
	SectionTypeCircuit:  "Circuit",
	SectionTypeSuperset: "Superset",
	SectionTypeInterval: "Interval",
	SectionTypeCooldown: "Cooldown",
}

func (t SectionType) IsValid() bool {
	_, ok := sectionTypeNames[t]
	return ok
}

func (t SectionType) String() string {
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// P90XTemplateNames are the canonical workouts of the P90X curriculum
var P90XTemplateNames = []string{
	"Chest & Back",
	"Shoulders & Arms",
	"Legs & Back",
	"Back & Biceps",
	"Chest, Shoulders & Triceps",
	"Plyometrics",
	"Kenpo X",
	"Core Synergistics",
	"Cardio X",
	"Yoga X",
	"X Stretch",
	"Ab Ripper X",
}

// WorkoutTemplate represents a predefined workout structure
type WorkoutTemplate struct {
	ID              string                   `json:"id" bson:"_id,omitempty" yaml:"id,omitempty"`
	Name            string                   `json:"name" bson:"name" yaml:"name"`
	Description     string                   `json:"description" bson:"description" yaml:"description"`
	Category        TemplateCategory         `json:"category" bson:"category" yaml:"category"`
	Difficulty      Difficulty               `json:"difficulty" bson:"difficulty" yaml:"difficulty"`
	DurationMinutes int                      `json:"duration_minutes" bson:"duration_minutes" yaml:"duration_minutes"`
	Equipment       string                   `json:"equipment" bson:"equipment" yaml:"equipment"`
	Instructions    string                   `json:"instructions" bson:"instructions" yaml:"instructions"`
	IsP90X          bool                     `json:"is_p90x" bson:"is_p90x" yaml:"is_p90x"`
	IsActive        bool                     `json:"is_active" bson:"is_active" yaml:"is_active"`
	Sections        []WorkoutTemplateSection `json:"sections" bson:"sections" yaml:"sections"`
	CreatedAt       time.Time                `json:"created_at" bson:"created_at" yaml:"-"`
	UpdatedAt       time.Time                `json:"updated_at" bson:"updated_at" yaml:"-"`
}

// ExerciseCount is the number of exercise entries across all sections
func (t *WorkoutTemplate) ExerciseCount() int {
	total := 0
	for i := range t.Sections {
		total += len(t.Sections[i].Exercises)
	}
	return total
}

// WorkoutTemplateSection is an ordered group of exercises (a round, a circuit)
type WorkoutTemplateSection struct {
	Name              string             `json:"name" bson:"name" yaml:"name"`
	Type              SectionType        `json:"type" bson:"type" yaml:"type"`
	Order             int                `json:"order" bson:"order" yaml:"order"`
	RestPeriodSeconds *int               `json:"rest_period_seconds,omitempty" bson:"rest_period_seconds,omitempty" yaml:"rest_period_seconds,omitempty"`
	Exercises         []TemplateExercise `json:"exercises" bson:"exercises" yaml:"exercises"`
}

// TemplateExercise references a catalog exercise with its prescription
type TemplateExercise struct {
	ExerciseID             string   `json:"exercise_id" bson:"exercise_id" yaml:"exercise_id"`
	Order                  int      `json:"order" bson:"order" yaml:"order"`
	Sets                   *int     `json:"sets,omitempty" bson:"sets,omitempty" yaml:"sets,omitempty"`
	RepsMin                *int     `json:"reps_min,omitempty" bson:"reps_min,omitempty" yaml:"reps_min,omitempty"`
	RepsMax                *int     `json:"reps_max,omitempty" bson:"reps_max,omitempty" yaml:"reps_max,omitempty"`
	Weight                 *float64 `json:"weight,omitempty" bson:"weight,omitempty" yaml:"weight,omitempty"`
	DurationSeconds        *int     `json:"duration_seconds,omitempty" bson:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	RestBetweenSetsSeconds *int     `json:"rest_between_sets_seconds,omitempty" bson:"rest_between_sets_seconds,omitempty" yaml:"rest_between_sets_seconds,omitempty"`
	Notes                  string   `json:"notes,omitempty" bson:"notes,omitempty" yaml:"notes,omitempty"`
	IsOptional             bool     `json:"is_optional" bson:"is_optional" yaml:"is_optional"`
}

type TemplateRepository interface {
	Create(ctx context.Context, template *WorkoutTemplate) error
	GetByID(ctx context.Context, id string) (*WorkoutTemplate, error)
	List(ctx context.Context) ([]*WorkoutTemplate, error)
	Update(ctx context.Context, template *WorkoutTemplate) error
	Delete(ctx context.Context, id string) error
}
