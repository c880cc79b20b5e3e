package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("exercise name already exists")
)

// ExerciseCategory classifies a move in the exercise library
type ExerciseCategory int

const (
	ExerciseCategoryResistance ExerciseCategory = iota + 1
	ExerciseCategoryCardio
	ExerciseCategoryYoga
	ExerciseCategoryPlyometrics
	ExerciseCategoryCore
	ExerciseCategoryFlexibility
	ExerciseCategoryMartialArts
	ExerciseCategoryBalance
	ExerciseCategoryStretching
)

var exerciseCategoryNames = map[ExerciseCategory]string{
	ExerciseCategoryResistance:  "Resistance",
	ExerciseCategoryCardio:      "Cardio",
	ExerciseCategoryYoga:        "Yoga",
	ExerciseCategoryPlyometrics: "Plyometrics",
	ExerciseCategoryCore:        "Core",
	ExerciseCategoryFlexibility: "Flexibility",
	ExerciseCategoryMartialArts: "MartialArts",
	ExerciseCategoryBalance:     "Balance",
	ExerciseCategoryStretching:  "Stretching",
}

func (c ExerciseCategory) IsValid() bool {
	_, ok := exerciseCategoryNames[c]
	return ok
}

func (c ExerciseCategory) String() string {
	if name, ok := exerciseCategoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Difficulty is shared by exercises and templates
type Difficulty int

const (
	DifficultyBeginner Difficulty = iota + 1
	DifficultyIntermediate
	DifficultyAdvanced
)

var difficultyNames = map[Difficulty]string{
	DifficultyBeginner:     "Beginner",
	DifficultyIntermediate: "Intermediate",
	DifficultyAdvanced:     "Advanced",
}

func (d Difficulty) IsValid() bool {
	_, ok := difficultyNames[d]
	return ok
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "Unknown"
}

// MuscleGroup is a bitset of muscle groups worked by an exercise
type MuscleGroup uint32

const (
	MuscleChest MuscleGroup = 1 << iota
	MuscleBack
	MuscleShoulders
	MuscleBiceps
	MuscleTriceps
	MuscleForearms
	MuscleAbs
	MuscleObliques
	MuscleQuads
	MuscleHamstrings
	MuscleGlutes
	MuscleCalves
	MuscleFullBody
)

var muscleGroupNames = []struct {
	group MuscleGroup
	name  string
}{
	{MuscleChest, "Chest"},
	{MuscleBack, "Back"},
	{MuscleShoulders, "Shoulders"},
	{MuscleBiceps, "Biceps"},
	{MuscleTriceps, "Triceps"},
	{MuscleForearms, "Forearms"},
	{MuscleAbs, "Abs"},
	{MuscleObliques, "Obliques"},
	{MuscleQuads, "Quads"},
	{MuscleHamstrings, "Hamstrings"},
	{MuscleGlutes, "Glutes"},
	{MuscleCalves, "Calves"},
	{MuscleFullBody, "FullBody"},
}

func (m MuscleGroup) Has(group MuscleGroup) bool {
	return m&group == group
}

// String renders the set as "Chest|Triceps"
func (m MuscleGroup) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	for _, g := range muscleGroupNames {
		if m.Has(g.group) {
			parts = append(parts, g.name)
		}
	}
	return strings.Join(parts, "|")
}

// Exercise represents a move in the global library
type Exercise struct {
	ID                    string           `json:"id" bson:"_id,omitempty" yaml:"id"`
	Name                  string           `json:"name" bson:"name" yaml:"name"` // Unique Index
	Description           string           `json:"description,omitempty" bson:"description,omitempty" yaml:"description,omitempty"`
	Category              ExerciseCategory `json:"category" bson:"category" yaml:"category"`
	Difficulty            Difficulty       `json:"difficulty" bson:"difficulty" yaml:"difficulty"`
	PrimaryMuscleGroups   MuscleGroup      `json:"primary_muscle_groups" bson:"primary_muscle_groups" yaml:"primary_muscle_groups"`
	SecondaryMuscleGroups MuscleGroup      `json:"secondary_muscle_groups" bson:"secondary_muscle_groups" yaml:"secondary_muscle_groups"`
	Equipment             string           `json:"equipment" bson:"equipment" yaml:"equipment"` // e.g., "Pull-up bar", "Dumbbells"
	DefaultRepsMin        *int             `json:"default_reps_min,omitempty" bson:"default_reps_min,omitempty" yaml:"default_reps_min,omitempty"`
	DefaultRepsMax        *int             `json:"default_reps_max,omitempty" bson:"default_reps_max,omitempty" yaml:"default_reps_max,omitempty"`
	DefaultSets           *int             `json:"default_sets,omitempty" bson:"default_sets,omitempty" yaml:"default_sets,omitempty"`
	CreatedAt             time.Time        `json:"created_at" bson:"created_at" yaml:"-"`
	UpdatedAt             time.Time        `json:"updated_at" bson:"updated_at" yaml:"-"`
}

// ExerciseCatalog is the read-only lookup the validator needs.
// Exists returns (false, nil) only when the exercise is definitively absent.
type ExerciseCatalog interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type ExerciseRepository interface {
	ExerciseCatalog
	Create(ctx context.Context, exercise *Exercise) error
	GetByID(ctx context.Context, id string) (*Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]*Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id string) error
}

// ExerciseFilter narrows List results; zero values are ignored
type ExerciseFilter struct {
	Name     string
	Category ExerciseCategory
}
