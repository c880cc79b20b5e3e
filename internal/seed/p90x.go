// Package seed holds the P90X exercise library and the twelve canonical
// workout templates used to bootstrap a catalog.
package seed

import (
	"fmt"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
)

type move struct {
	name      string
	category  domain.ExerciseCategory
	primary   domain.MuscleGroup
	secondary domain.MuscleGroup
	equipment string
}

var library = []move{
	// Resistance
	{"Standard Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleChest, domain.MuscleTriceps | domain.MuscleShoulders, "None"},
	{"Military Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleChest | domain.MuscleTriceps, domain.MuscleShoulders, "None"},
	{"Wide Fly Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleChest, domain.MuscleShoulders, "None"},
	{"Decline Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleChest | domain.MuscleShoulders, domain.MuscleTriceps, "Chair"},
	{"Diamond Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleTriceps, domain.MuscleChest, "None"},
	{"Dive-Bomber Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleChest | domain.MuscleShoulders, domain.MuscleTriceps, "None"},
	{"Wide Front Pull-Ups", domain.ExerciseCategoryResistance, domain.MuscleBack, domain.MuscleBiceps, "Pull-up bar"},
	{"Reverse Grip Chin-Ups", domain.ExerciseCategoryResistance, domain.MuscleBack | domain.MuscleBiceps, domain.MuscleForearms, "Pull-up bar"},
	{"Closed Grip Overhand Pull-Ups", domain.ExerciseCategoryResistance, domain.MuscleBack, domain.MuscleBiceps, "Pull-up bar"},
	{"Switch Grip Pull-Ups", domain.ExerciseCategoryResistance, domain.MuscleBack, domain.MuscleBiceps, "Pull-up bar"},
	{"Heavy Pants", domain.ExerciseCategoryResistance, domain.MuscleBack, domain.MuscleBiceps, "Dumbbells"},
	{"Lawnmowers", domain.ExerciseCategoryResistance, domain.MuscleBack, domain.MuscleBiceps, "Dumbbells"},
	{"Back Flys", domain.ExerciseCategoryResistance, domain.MuscleBack | domain.MuscleShoulders, 0, "Dumbbells"},
	{"Alternating Shoulder Press", domain.ExerciseCategoryResistance, domain.MuscleShoulders, domain.MuscleTriceps, "Dumbbells"},
	{"Deep Swimmer's Press", domain.ExerciseCategoryResistance, domain.MuscleShoulders, domain.MuscleTriceps, "Dumbbells"},
	{"Upright Rows", domain.ExerciseCategoryResistance, domain.MuscleShoulders, domain.MuscleBiceps, "Dumbbells"},
	{"In & Out Bicep Curls", domain.ExerciseCategoryResistance, domain.MuscleBiceps, domain.MuscleForearms, "Dumbbells"},
	{"Static Arm Curls", domain.ExerciseCategoryResistance, domain.MuscleBiceps, domain.MuscleForearms, "Dumbbells"},
	{"Twenty-Ones", domain.ExerciseCategoryResistance, domain.MuscleBiceps, domain.MuscleForearms, "Dumbbells"},
	{"Two-Arm Tricep Kickbacks", domain.ExerciseCategoryResistance, domain.MuscleTriceps, 0, "Dumbbells"},
	{"Chair Dips", domain.ExerciseCategoryResistance, domain.MuscleTriceps, domain.MuscleChest | domain.MuscleShoulders, "Chair"},
	{"Lying Down Tricep Extensions", domain.ExerciseCategoryResistance, domain.MuscleTriceps, 0, "Dumbbells"},
	{"Slow-Motion 3-in-1 Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleChest | domain.MuscleShoulders, domain.MuscleTriceps, "None"},
	{"In & Out Shoulder Flys", domain.ExerciseCategoryResistance, domain.MuscleShoulders, 0, "Dumbbells"},
	{"Plange Push-Ups", domain.ExerciseCategoryResistance, domain.MuscleChest | domain.MuscleShoulders, domain.MuscleTriceps, "None"},
	{"Pike Presses", domain.ExerciseCategoryResistance, domain.MuscleShoulders, domain.MuscleTriceps, "Chair"},
	{"Side Tri-Rises", domain.ExerciseCategoryResistance, domain.MuscleTriceps, domain.MuscleObliques, "None"},
	{"Balance Lunges", domain.ExerciseCategoryResistance, domain.MuscleQuads | domain.MuscleGlutes, domain.MuscleHamstrings, "Chair"},
	{"Calf-Raise Squats", domain.ExerciseCategoryResistance, domain.MuscleQuads | domain.MuscleCalves, domain.MuscleGlutes, "None"},
	{"Wall Squats", domain.ExerciseCategoryResistance, domain.MuscleQuads, domain.MuscleGlutes, "None"},
	{"Step Back Lunges", domain.ExerciseCategoryResistance, domain.MuscleQuads | domain.MuscleGlutes, domain.MuscleHamstrings, "Dumbbells"},
	{"Deadlift Squats", domain.ExerciseCategoryResistance, domain.MuscleHamstrings | domain.MuscleGlutes, domain.MuscleBack, "Dumbbells"},

	// Plyometrics
	{"Jump Squats", domain.ExerciseCategoryPlyometrics, domain.MuscleQuads | domain.MuscleGlutes, domain.MuscleCalves, "None"},
	{"Run Stance Squats", domain.ExerciseCategoryPlyometrics, domain.MuscleQuads, domain.MuscleGlutes, "None"},
	{"Airborne Heisman", domain.ExerciseCategoryPlyometrics, domain.MuscleQuads | domain.MuscleCalves, 0, "None"},
	{"Swing Kicks", domain.ExerciseCategoryPlyometrics, domain.MuscleFullBody, 0, "None"},
	{"Squat Reach Jumps", domain.ExerciseCategoryPlyometrics, domain.MuscleQuads | domain.MuscleGlutes, domain.MuscleShoulders, "None"},
	{"Rock Star Hops", domain.ExerciseCategoryPlyometrics, domain.MuscleQuads | domain.MuscleCalves, 0, "None"},
	{"Super Skaters", domain.ExerciseCategoryPlyometrics, domain.MuscleGlutes | domain.MuscleQuads, domain.MuscleCalves, "None"},

	// Martial arts
	{"Jab Cross", domain.ExerciseCategoryMartialArts, domain.MuscleShoulders, domain.MuscleObliques, "None"},
	{"Jab Cross Hook Uppercut", domain.ExerciseCategoryMartialArts, domain.MuscleShoulders, domain.MuscleObliques, "None"},
	{"Front Kick", domain.ExerciseCategoryMartialArts, domain.MuscleQuads | domain.MuscleAbs, 0, "None"},
	{"Knee Kick", domain.ExerciseCategoryMartialArts, domain.MuscleAbs, domain.MuscleQuads, "None"},
	{"Back Kick", domain.ExerciseCategoryMartialArts, domain.MuscleGlutes | domain.MuscleHamstrings, 0, "None"},

	// Core
	{"In & Outs", domain.ExerciseCategoryCore, domain.MuscleAbs, 0, "Mat"},
	{"Bicycles", domain.ExerciseCategoryCore, domain.MuscleAbs | domain.MuscleObliques, 0, "Mat"},
	{"Reverse Bicycles", domain.ExerciseCategoryCore, domain.MuscleAbs, 0, "Mat"},
	{"Crunchy Frog", domain.ExerciseCategoryCore, domain.MuscleAbs, 0, "Mat"},
	{"Fifer Scissors", domain.ExerciseCategoryCore, domain.MuscleAbs, 0, "Mat"},
	{"Mason Twists", domain.ExerciseCategoryCore, domain.MuscleObliques, domain.MuscleAbs, "Mat"},
	{"Banana Rolls", domain.ExerciseCategoryCore, domain.MuscleAbs | domain.MuscleBack, 0, "Mat"},
	{"Sphinx Push-Ups", domain.ExerciseCategoryCore, domain.MuscleTriceps | domain.MuscleAbs, 0, "Mat"},
	{"Bow to Boat", domain.ExerciseCategoryCore, domain.MuscleBack | domain.MuscleAbs, 0, "Mat"},

	// Yoga and stretching
	{"Sun Salutation", domain.ExerciseCategoryYoga, domain.MuscleFullBody, 0, "Yoga mat"},
	{"Warrior One", domain.ExerciseCategoryYoga, domain.MuscleQuads | domain.MuscleShoulders, 0, "Yoga mat"},
	{"Crescent Moon", domain.ExerciseCategoryYoga, domain.MuscleQuads | domain.MuscleHamstrings, 0, "Yoga mat"},
	{"Triangle Pose", domain.ExerciseCategoryYoga, domain.MuscleObliques | domain.MuscleHamstrings, 0, "Yoga mat"},
	{"Tree Pose", domain.ExerciseCategoryBalance, domain.MuscleCalves | domain.MuscleAbs, 0, "Yoga mat"},
	{"Crane Pose", domain.ExerciseCategoryBalance, domain.MuscleShoulders | domain.MuscleAbs, 0, "Yoga mat"},
	{"Runner's Stretch", domain.ExerciseCategoryStretching, domain.MuscleHamstrings | domain.MuscleCalves, 0, "None"},
	{"Hurdler's Stretch", domain.ExerciseCategoryStretching, domain.MuscleHamstrings, 0, "None"},
	{"Frog Stretch", domain.ExerciseCategoryStretching, domain.MuscleGlutes, 0, "None"},
	{"Cat Stretch", domain.ExerciseCategoryFlexibility, domain.MuscleBack, 0, "Mat"},
	{"Child's Pose", domain.ExerciseCategoryFlexibility, domain.MuscleBack | domain.MuscleGlutes, 0, "Mat"},
}

// Exercises returns the P90X exercise library ready to be inserted
func Exercises() []domain.Exercise {
	out := make([]domain.Exercise, 0, len(library))
	for _, m := range library {
		ex := domain.Exercise{
			Name:                  m.name,
			Category:              m.category,
			Difficulty:            domain.DifficultyIntermediate,
			PrimaryMuscleGroups:   m.primary,
			SecondaryMuscleGroups: m.secondary,
			Equipment:             m.equipment,
		}
		if m.category == domain.ExerciseCategoryResistance {
			ex.DefaultSets = intPtr(1)
			ex.DefaultRepsMin = intPtr(8)
			ex.DefaultRepsMax = intPtr(15)
		}
		out = append(out, ex)
	}
	return out
}

// prescription styles; zero fields are left unset
type dose struct {
	sets, repsMin, repsMax, seconds int
}

var (
	reps     = dose{sets: 1, repsMin: 8, repsMax: 15}
	pullReps = dose{sets: 1, repsMin: 6, repsMax: 12}
	timed    = dose{seconds: 60}
	hold     = dose{seconds: 30}
	abReps   = dose{sets: 1, repsMin: 25, repsMax: 25}
)

type sectionSpec struct {
	name  string
	kind  domain.SectionType
	rest  int
	dose  dose
	moves []string
}

type templateSpec struct {
	name        string
	description string
	category    domain.TemplateCategory
	difficulty  domain.Difficulty
	minutes     int
	equipment   string
	sections    []sectionSpec
}

var warmup = sectionSpec{name: "Warm-up", kind: domain.SectionTypeWarmup, dose: timed, moves: []string{"Sun Salutation", "Runner's Stretch"}}
var cooldown = sectionSpec{name: "Cool-down", kind: domain.SectionTypeCooldown, dose: hold, moves: []string{"Child's Pose", "Cat Stretch"}}

var curriculum = []templateSpec{
	{
		name: "Chest & Back", description: "Push-up and pull-up supersets for the upper body",
		category: domain.TemplateCategoryResistance, difficulty: domain.DifficultyIntermediate, minutes: 55,
		equipment: "Pull-up bar, dumbbells, chair",
		sections: []sectionSpec{warmup,
			{name: "Round 1", kind: domain.SectionTypeSuperset, rest: 30, dose: reps, moves: []string{
				"Standard Push-Ups", "Wide Front Pull-Ups", "Military Push-Ups", "Reverse Grip Chin-Ups",
				"Wide Fly Push-Ups", "Closed Grip Overhand Pull-Ups", "Decline Push-Ups", "Heavy Pants",
				"Diamond Push-Ups", "Lawnmowers", "Dive-Bomber Push-Ups", "Back Flys",
			}},
			cooldown,
		},
	},
	{
		name: "Shoulders & Arms", description: "Shoulder, bicep and tricep sequences",
		category: domain.TemplateCategoryResistance, difficulty: domain.DifficultyIntermediate, minutes: 60,
		equipment: "Dumbbells, chair",
		sections: []sectionSpec{warmup,
			{name: "Main Set", kind: domain.SectionTypeCircuit, rest: 30, dose: reps, moves: []string{
				"Alternating Shoulder Press", "In & Out Bicep Curls", "Two-Arm Tricep Kickbacks",
				"Deep Swimmer's Press", "Static Arm Curls", "Chair Dips", "Upright Rows",
			}},
			cooldown,
		},
	},
	{
		name: "Legs & Back", description: "Lower body work broken up by pull-ups",
		category: domain.TemplateCategoryResistance, difficulty: domain.DifficultyIntermediate, minutes: 60,
		equipment: "Pull-up bar, dumbbells, chair",
		sections: []sectionSpec{warmup,
			{name: "Legs", kind: domain.SectionTypeMain, rest: 30, dose: reps, moves: []string{
				"Balance Lunges", "Calf-Raise Squats", "Super Skaters", "Wall Squats", "Step Back Lunges", "Deadlift Squats",
			}},
			{name: "Back", kind: domain.SectionTypeMain, rest: 60, dose: pullReps, moves: []string{
				"Reverse Grip Chin-Ups", "Wide Front Pull-Ups", "Closed Grip Overhand Pull-Ups", "Switch Grip Pull-Ups",
			}},
			cooldown,
		},
	},
	{
		name: "Back & Biceps", description: "Pull-ups paired with curl variations",
		category: domain.TemplateCategoryResistance, difficulty: domain.DifficultyAdvanced, minutes: 60,
		equipment: "Pull-up bar, dumbbells",
		sections: []sectionSpec{warmup,
			{name: "Round 1", kind: domain.SectionTypeSuperset, rest: 45, dose: pullReps, moves: []string{
				"Wide Front Pull-Ups", "Lawnmowers", "Twenty-Ones", "Switch Grip Pull-Ups", "Static Arm Curls", "Heavy Pants",
			}},
			cooldown,
		},
	},
	{
		name: "Chest, Shoulders & Triceps", description: "Pushing muscles worked to fatigue",
		category: domain.TemplateCategoryResistance, difficulty: domain.DifficultyAdvanced, minutes: 60,
		equipment: "Dumbbells, chair",
		sections: []sectionSpec{warmup,
			{name: "Main Set", kind: domain.SectionTypeCircuit, rest: 30, dose: reps, moves: []string{
				"Slow-Motion 3-in-1 Push-Ups", "In & Out Shoulder Flys", "Chair Dips", "Plange Push-Ups",
				"Pike Presses", "Side Tri-Rises", "Lying Down Tricep Extensions",
			}},
			cooldown,
		},
	},
	{
		name: "Plyometrics", description: "Jump training for explosive power",
		category: domain.TemplateCategoryPlyometrics, difficulty: domain.DifficultyAdvanced, minutes: 60,
		equipment: "None",
		sections: []sectionSpec{warmup,
			{name: "Jump Circuit", kind: domain.SectionTypeInterval, rest: 30, dose: timed, moves: []string{
				"Jump Squats", "Run Stance Squats", "Airborne Heisman", "Swing Kicks",
				"Squat Reach Jumps", "Rock Star Hops", "Super Skaters",
			}},
			cooldown,
		},
	},
	{
		name: "Kenpo X", description: "Martial arts cardio combinations",
		category: domain.TemplateCategoryMartialArts, difficulty: domain.DifficultyIntermediate, minutes: 55,
		equipment: "None",
		sections: []sectionSpec{warmup,
			{name: "Combinations", kind: domain.SectionTypeInterval, rest: 15, dose: timed, moves: []string{
				"Jab Cross", "Jab Cross Hook Uppercut", "Front Kick", "Knee Kick", "Back Kick",
			}},
			cooldown,
		},
	},
	{
		name: "Core Synergistics", description: "Full body core strength and stability",
		category: domain.TemplateCategoryCore, difficulty: domain.DifficultyIntermediate, minutes: 55,
		equipment: "Dumbbells, mat",
		sections: []sectionSpec{warmup,
			{name: "Core Circuit", kind: domain.SectionTypeCircuit, rest: 20, dose: reps, moves: []string{
				"Banana Rolls", "Sphinx Push-Ups", "Bow to Boat", "Step Back Lunges", "Plange Push-Ups",
			}},
			cooldown,
		},
	},
	{
		name: "Cardio X", description: "Low-impact mix of yoga, kenpo and plyometric moves",
		category: domain.TemplateCategoryCardio, difficulty: domain.DifficultyBeginner, minutes: 45,
		equipment: "None",
		sections: []sectionSpec{warmup,
			{name: "Cardio Mix", kind: domain.SectionTypeInterval, rest: 15, dose: timed, moves: []string{
				"Warrior One", "Jab Cross", "Front Kick", "Jump Squats", "Rock Star Hops",
			}},
			cooldown,
		},
	},
	{
		name: "Yoga X", description: "Power yoga for balance and flexibility",
		category: domain.TemplateCategoryYoga, difficulty: domain.DifficultyIntermediate, minutes: 90,
		equipment: "Yoga mat, blocks",
		sections: []sectionSpec{
			{name: "Vinyasa", kind: domain.SectionTypeWarmup, dose: timed, moves: []string{"Sun Salutation", "Warrior One", "Crescent Moon"}},
			{name: "Balance", kind: domain.SectionTypeMain, dose: timed, moves: []string{"Triangle Pose", "Tree Pose", "Crane Pose"}},
			cooldown,
		},
	},
	{
		name: "X Stretch", description: "Full body stretching for recovery days",
		category: domain.TemplateCategoryFlexibility, difficulty: domain.DifficultyBeginner, minutes: 55,
		equipment: "Mat",
		sections: []sectionSpec{
			{name: "Stretch", kind: domain.SectionTypeMain, dose: hold, moves: []string{
				"Runner's Stretch", "Hurdler's Stretch", "Frog Stretch", "Cat Stretch", "Child's Pose",
			}},
		},
	},
	{
		name: "Ab Ripper X", description: "Non-stop abdominal sequence",
		category: domain.TemplateCategoryCore, difficulty: domain.DifficultyIntermediate, minutes: 16,
		equipment: "Mat",
		sections: []sectionSpec{
			{name: "Ab Sequence", kind: domain.SectionTypeCircuit, dose: abReps, moves: []string{
				"In & Outs", "Bicycles", "Reverse Bicycles", "Crunchy Frog", "Fifer Scissors", "Mason Twists",
			}},
		},
	},
}

// ExerciseNames lists every exercise name the templates reference, in first
// use order.
func ExerciseNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range curriculum {
		for _, s := range t.sections {
			for _, name := range s.moves {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	return names
}

// Templates builds the twelve P90X templates. idByName maps exercise names to
// catalog IDs; a referenced name missing from it is an error.
func Templates(idByName map[string]string) ([]*domain.WorkoutTemplate, error) {
	out := make([]*domain.WorkoutTemplate, 0, len(curriculum))
	for _, spec := range curriculum {
		tmpl := &domain.WorkoutTemplate{
			Name:            spec.name,
			Description:     spec.description,
			Category:        spec.category,
			Difficulty:      spec.difficulty,
			DurationMinutes: spec.minutes,
			Equipment:       spec.equipment,
			Instructions:    "Press play and follow along. Rest only where the section allows it.",
			IsP90X:          true,
			IsActive:        true,
			Sections:        make([]domain.WorkoutTemplateSection, 0, len(spec.sections)),
		}

		for i, s := range spec.sections {
			section := domain.WorkoutTemplateSection{
				Name:      s.name,
				Type:      s.kind,
				Order:     i + 1,
				Exercises: make([]domain.TemplateExercise, 0, len(s.moves)),
			}
			if s.rest > 0 {
				section.RestPeriodSeconds = intPtr(s.rest)
			}
			for j, name := range s.moves {
				id, ok := idByName[name]
				if !ok {
					return nil, fmt.Errorf("template %q: exercise %q is not in the catalog", spec.name, name)
				}
				section.Exercises = append(section.Exercises, s.dose.apply(domain.TemplateExercise{
					ExerciseID: id,
					Order:      j + 1,
				}))
			}
			tmpl.Sections = append(tmpl.Sections, section)
		}
		out = append(out, tmpl)
	}
	return out, nil
}

func (d dose) apply(ex domain.TemplateExercise) domain.TemplateExercise {
	if d.sets > 0 {
		ex.Sets = intPtr(d.sets)
	}
	if d.repsMin > 0 {
		ex.RepsMin = intPtr(d.repsMin)
		ex.RepsMax = intPtr(d.repsMax)
	}
	if d.seconds > 0 {
		ex.DurationSeconds = intPtr(d.seconds)
	}
	return ex
}

func intPtr(v int) *int { return &v }
