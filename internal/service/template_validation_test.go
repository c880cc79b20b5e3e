package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog answers Exists from a fixed set and counts lookups
type stubCatalog struct {
	mu    sync.Mutex
	ids   map[string]bool
	err   error
	calls []string
}

func newStubCatalog(ids ...string) *stubCatalog {
	c := &stubCatalog{ids: make(map[string]bool)}
	for _, id := range ids {
		c.ids[id] = true
	}
	return c
}

func (c *stubCatalog) Exists(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, id)
	if c.err != nil {
		return false, c.err
	}
	return c.ids[id], nil
}

type panicCatalog struct{}

func (panicCatalog) Exists(context.Context, string) (bool, error) {
	panic("catalog exploded")
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validTemplate() *domain.WorkoutTemplate {
	return &domain.WorkoutTemplate{
		Name:            "Morning Flow",
		Description:     "Gentle start",
		Category:        domain.TemplateCategoryYoga,
		Difficulty:      domain.DifficultyBeginner,
		DurationMinutes: 30,
		Equipment:       "Mat",
		Instructions:    "Move slowly",
		Sections: []domain.WorkoutTemplateSection{
			{
				Name:  "Main",
				Type:  domain.SectionTypeMain,
				Order: 1,
				Exercises: []domain.TemplateExercise{
					{ExerciseID: "ex-1", Order: 1, Sets: intPtr(3), RepsMin: intPtr(8), RepsMax: intPtr(12)},
					{ExerciseID: "ex-2", Order: 2, DurationSeconds: intPtr(60)},
				},
			},
		},
	}
}

func newService(catalog domain.ExerciseCatalog) *TemplateValidationService {
	return NewTemplateValidationService(catalog, nil)
}

func errorKinds(r *domain.ValidationResult) []domain.ErrorKind {
	kinds := make([]domain.ErrorKind, 0, len(r.Errors))
	for _, e := range r.Errors {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func warningKinds(r *domain.ValidationResult) []domain.WarningKind {
	kinds := make([]domain.WarningKind, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}

func countErrors(r *domain.ValidationResult, kind domain.ErrorKind) int {
	n := 0
	for _, e := range r.Errors {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestValidateTemplate_ValidTemplate(t *testing.T) {
	svc := newService(newStubCatalog("ex-1", "ex-2"))

	result := svc.ValidateTemplate(context.Background(), validTemplate())

	assert.True(t, result.IsValid())
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.True(t, result.HasInfo(domain.InfoWorkoutBalancedMuscleGroups))
	assert.True(t, result.HasInfo(domain.InfoTemplateEquipmentListed))
	assert.Equal(t, "Workout contains 2 exercise(s) across 1 section(s)", result.Info[0].Message)
}

func TestValidateTemplate_EmptyTemplate(t *testing.T) {
	svc := newService(newStubCatalog())

	result := svc.ValidateTemplate(context.Background(), &domain.WorkoutTemplate{
		Name:            "",
		DurationMinutes: 0,
		Category:        domain.TemplateCategory(42),
		Difficulty:      domain.DifficultyBeginner,
	})

	assert.False(t, result.IsValid())
	assert.GreaterOrEqual(t, result.ErrorCount(), 4)
	assert.Equal(t, []domain.ErrorKind{
		domain.ErrorTemplateNameEmpty,
		domain.ErrorTemplateDurationInvalid,
		domain.ErrorTemplateCategoryInvalid,
		domain.ErrorWorkoutNoSections,
	}, errorKinds(result))
}

func TestValidateTemplate_FieldChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.WorkoutTemplate)
		want   domain.ErrorKind
	}{
		{"blank name", func(tt *domain.WorkoutTemplate) { tt.Name = "   " }, domain.ErrorTemplateNameEmpty},
		{"long name", func(tt *domain.WorkoutTemplate) { tt.Name = strings.Repeat("x", 101) }, domain.ErrorTemplateNameTooLong},
		{"negative duration", func(tt *domain.WorkoutTemplate) { tt.DurationMinutes = -5 }, domain.ErrorTemplateDurationInvalid},
		{"unset category", func(tt *domain.WorkoutTemplate) { tt.Category = 0 }, domain.ErrorTemplateCategoryInvalid},
		{"bad difficulty", func(tt *domain.WorkoutTemplate) { tt.Difficulty = 9 }, domain.ErrorTemplateDifficultyInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := validTemplate()
			tt.mutate(tmpl)

			result := newService(newStubCatalog("ex-1", "ex-2")).ValidateTemplate(context.Background(), tmpl)
			assert.False(t, result.IsValid())
			assert.Equal(t, []domain.ErrorKind{tt.want}, errorKinds(result))
		})
	}

	t.Run("name of exactly 100 runes is accepted", func(t *testing.T) {
		tmpl := validTemplate()
		tmpl.Name = strings.Repeat("é", MaxTemplateNameLength)
		result := newService(newStubCatalog("ex-1", "ex-2")).ValidateTemplate(context.Background(), tmpl)
		assert.True(t, result.IsValid())
	})
}

func TestValidateTemplate_DuplicateSectionOrders(t *testing.T) {
	tmpl := validTemplate()
	base := tmpl.Sections[0]
	sections := []domain.WorkoutTemplateSection{}
	for i, order := range []int{1, 2, 1, 1, 2, 3} {
		s := base
		s.Name = "S" + string(rune('A'+i))
		s.Order = order
		sections = append(sections, s)
	}
	tmpl.Sections = sections

	result := newService(newStubCatalog("ex-1", "ex-2")).ValidateTemplate(context.Background(), tmpl)

	var flagged []string
	for _, e := range result.Errors {
		if e.Kind == domain.ErrorSectionOrderDuplicate {
			flagged = append(flagged, e.SectionName)
		}
	}
	// value 1 repeats twice, value 2 once
	assert.Equal(t, []string{"SC", "SD", "SE"}, flagged)
}

func TestValidateSection(t *testing.T) {
	ctx := context.Background()

	t.Run("reports every section rule", func(t *testing.T) {
		section := &domain.WorkoutTemplateSection{
			Name:              "",
			Type:              domain.SectionType(0),
			Order:             0,
			RestPeriodSeconds: intPtr(-10),
			Exercises:         []domain.TemplateExercise{{ExerciseID: "ex-1", Order: 1}},
		}
		result := newService(newStubCatalog("ex-1")).ValidateSection(ctx, section, "Template")

		assert.Equal(t, []domain.ErrorKind{
			domain.ErrorSectionNameEmpty,
			domain.ErrorSectionOrderInvalid,
			domain.ErrorSectionTypeInvalid,
			domain.ErrorSectionRestPeriodInvalid,
		}, errorKinds(result))
		for _, e := range result.Errors {
			assert.Equal(t, "Template", e.TemplateName)
		}
	})

	t.Run("no exercises short-circuits exercise checks", func(t *testing.T) {
		catalog := newStubCatalog()
		section := &domain.WorkoutTemplateSection{Name: "Empty", Type: domain.SectionTypeMain, Order: 1}

		result := newService(catalog).ValidateSection(ctx, section, "Template")

		assert.Equal(t, []domain.ErrorKind{domain.ErrorSectionNoExercises}, errorKinds(result))
		assert.Empty(t, catalog.calls)
	})

	t.Run("zero rest period is accepted", func(t *testing.T) {
		section := &domain.WorkoutTemplateSection{
			Name: "Round", Type: domain.SectionTypeCircuit, Order: 1, RestPeriodSeconds: intPtr(0),
			Exercises: []domain.TemplateExercise{{ExerciseID: "ex-1", Order: 1}},
		}
		result := newService(newStubCatalog("ex-1")).ValidateSection(ctx, section, "Template")
		assert.True(t, result.IsValid())
	})

	t.Run("duplicate exercise orders inside a section", func(t *testing.T) {
		section := &domain.WorkoutTemplateSection{
			Name: "Round", Type: domain.SectionTypeCircuit, Order: 1,
			Exercises: []domain.TemplateExercise{
				{ExerciseID: "ex-1", Order: 1},
				{ExerciseID: "ex-2", Order: 1},
				{ExerciseID: "ex-3", Order: 1},
				{ExerciseID: "ex-4", Order: 2},
			},
		}
		result := newService(newStubCatalog("ex-1", "ex-2", "ex-3", "ex-4")).ValidateSection(ctx, section, "Template")

		require.Equal(t, 2, countErrors(result, domain.ErrorExerciseOrderDuplicate))
		assert.Equal(t, "ex-2", result.Errors[0].ExerciseID)
		assert.Equal(t, "ex-3", result.Errors[1].ExerciseID)
		assert.Equal(t, "Round", result.Errors[0].SectionName)
	})
}

func TestValidateExercise(t *testing.T) {
	ctx := context.Background()

	t.Run("missing exercise is reported with its id", func(t *testing.T) {
		catalog := newStubCatalog()
		result := newService(catalog).ValidateExercise(ctx, &domain.TemplateExercise{ExerciseID: "ghost", Order: 1}, "T", "S")

		require.Len(t, result.Errors, 1)
		e := result.Errors[0]
		assert.Equal(t, domain.ErrorExerciseNotFound, e.Kind)
		assert.Contains(t, e.Message, "ghost")
		assert.Equal(t, "ghost", e.ExerciseID)
		assert.Equal(t, "T", e.TemplateName)
		assert.Equal(t, "S", e.SectionName)
		assert.NotEmpty(t, e.Suggestion)
		assert.Equal(t, []string{"ghost"}, catalog.calls)
	})

	t.Run("field checks run even when the exercise is missing", func(t *testing.T) {
		ex := &domain.TemplateExercise{
			ExerciseID:             "ghost",
			Order:                  0,
			Sets:                   intPtr(0),
			RepsMin:                intPtr(12),
			RepsMax:                intPtr(8),
			Weight:                 floatPtr(-2.5),
			DurationSeconds:        intPtr(0),
			RestBetweenSetsSeconds: intPtr(-1),
		}
		result := newService(newStubCatalog()).ValidateExercise(ctx, ex, "T", "S")

		assert.Equal(t, []domain.ErrorKind{
			domain.ErrorExerciseNotFound,
			domain.ErrorExerciseOrderInvalid,
			domain.ErrorExerciseSetsInvalid,
			domain.ErrorExerciseRepsInvalid,
			domain.ErrorExerciseWeightInvalid,
			domain.ErrorExerciseDurationInvalid,
			domain.ErrorExerciseRestInvalid,
		}, errorKinds(result))
	})

	t.Run("inverted rep range yields exactly one error with min-max value", func(t *testing.T) {
		ex := &domain.TemplateExercise{ExerciseID: "ex-1", Order: 1, RepsMin: intPtr(15), RepsMax: intPtr(10)}
		result := newService(newStubCatalog("ex-1")).ValidateExercise(ctx, ex, "T", "S")

		require.Equal(t, 1, countErrors(result, domain.ErrorExerciseRepsInvalid))
		assert.Equal(t, "15-10", result.Errors[0].Value)
	})

	t.Run("one-sided rep range and zero weight are accepted", func(t *testing.T) {
		ex := &domain.TemplateExercise{ExerciseID: "ex-1", Order: 1, RepsMin: intPtr(50), Weight: floatPtr(0)}
		result := newService(newStubCatalog("ex-1")).ValidateExercise(ctx, ex, "T", "S")
		assert.True(t, result.IsValid())
	})
}

func TestValidateTemplate_LooksUpEachEntryOnce(t *testing.T) {
	catalog := newStubCatalog("ex-1")
	tmpl := validTemplate()
	tmpl.Sections[0].Exercises = append(tmpl.Sections[0].Exercises, domain.TemplateExercise{ExerciseID: "ex-1", Order: 3})

	result := newService(catalog).ValidateTemplate(context.Background(), tmpl)

	assert.Equal(t, []string{"ex-1", "ex-2", "ex-1"}, catalog.calls)
	assert.Equal(t, 1, countErrors(result, domain.ErrorExerciseNotFound))
}

func TestValidateStructure(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	t.Run("no sections", func(t *testing.T) {
		tmpl := validTemplate()
		tmpl.Sections = nil

		result := svc.ValidateStructure(ctx, tmpl)
		assert.True(t, result.HasError(domain.ErrorWorkoutNoSections))
		assert.False(t, result.HasInfo(domain.InfoWorkoutBalancedMuscleGroups))
		assert.False(t, svc.ValidateTemplate(ctx, tmpl).IsValid())
	})

	t.Run("short workout", func(t *testing.T) {
		tmpl := validTemplate()
		tmpl.DurationMinutes = 5
		result := svc.ValidateStructure(ctx, tmpl)
		assert.Equal(t, []domain.WarningKind{domain.WarningWorkoutIntensityLow}, warningKinds(result))
		assert.True(t, result.IsValid())
	})

	t.Run("long workout", func(t *testing.T) {
		tmpl := validTemplate()
		tmpl.DurationMinutes = 121
		result := svc.ValidateStructure(ctx, tmpl)
		assert.Equal(t, []domain.WarningKind{domain.WarningWorkoutIntensityHigh}, warningKinds(result))
	})

	t.Run("boundaries are not flagged", func(t *testing.T) {
		for _, minutes := range []int{10, 120} {
			tmpl := validTemplate()
			tmpl.DurationMinutes = minutes
			assert.Empty(t, svc.ValidateStructure(ctx, tmpl).Warnings, minutes)
		}
	})

	t.Run("equipment missing or listed", func(t *testing.T) {
		tmpl := validTemplate()
		tmpl.Equipment = " "
		result := svc.ValidateStructure(ctx, tmpl)
		assert.True(t, result.HasWarning(domain.WarningTemplateEquipmentMissing))
		assert.False(t, result.HasInfo(domain.InfoTemplateEquipmentListed))

		tmpl.Equipment = "Dumbbells"
		result = svc.ValidateStructure(ctx, tmpl)
		require.True(t, result.HasInfo(domain.InfoTemplateEquipmentListed))
		assert.Equal(t, "Dumbbells", result.Info[1].Value)
	})
}

func TestValidateP90XRequirements(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	t.Run("non-P90X templates are skipped", func(t *testing.T) {
		result := svc.ValidateP90XRequirements(ctx, &domain.WorkoutTemplate{Name: "Leg Day", DurationMinutes: 500})
		assert.True(t, result.IsValid())
		assert.Empty(t, result.Warnings)
		assert.Empty(t, result.Info)
	})

	t.Run("leg day", func(t *testing.T) {
		result := svc.ValidateP90XRequirements(ctx, &domain.WorkoutTemplate{
			Name: "Leg Day", IsP90X: true, DurationMinutes: 150, Equipment: "",
		})
		assert.Equal(t, []domain.WarningKind{
			domain.WarningTemplateNameSimilar,
			domain.WarningTemplateDurationLong,
			domain.WarningTemplateEquipmentMissing,
		}, warningKinds(result))
		assert.True(t, result.IsValid())
	})

	t.Run("short duration reuses the long kind", func(t *testing.T) {
		result := svc.ValidateP90XRequirements(ctx, &domain.WorkoutTemplate{
			Name: "Ab Ripper X", IsP90X: true, DurationMinutes: 16, Equipment: "Mat",
		})
		assert.Equal(t, []domain.WarningKind{domain.WarningTemplateDurationLong}, warningKinds(result))
	})

	t.Run("canonical names match case-insensitively", func(t *testing.T) {
		result := svc.ValidateP90XRequirements(ctx, &domain.WorkoutTemplate{
			Name: "  chest, SHOULDERS & triceps ", IsP90X: true, DurationMinutes: 60, Equipment: "Dumbbells",
		})
		assert.Empty(t, result.Warnings)
	})

	t.Run("near miss suggests the closest canonical name", func(t *testing.T) {
		result := svc.ValidateP90XRequirements(ctx, &domain.WorkoutTemplate{
			Name: "Kenpo-X", IsP90X: true, DurationMinutes: 60, Equipment: "None",
		})
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0].Suggestion, "Did you mean 'Kenpo X'?")
	})

	t.Run("full validation runs P90X checks only when flagged", func(t *testing.T) {
		tmpl := validTemplate()
		tmpl.Equipment = ""
		tmpl.DurationMinutes = 150
		plain := newService(newStubCatalog("ex-1", "ex-2")).ValidateTemplate(ctx, tmpl)
		assert.False(t, plain.HasWarning(domain.WarningTemplateDurationLong))

		tmpl.IsP90X = true
		flagged := newService(newStubCatalog("ex-1", "ex-2")).ValidateTemplate(ctx, tmpl)
		assert.Equal(t, []domain.WarningKind{
			domain.WarningWorkoutIntensityHigh,
			domain.WarningTemplateEquipmentMissing,
			domain.WarningTemplateNameSimilar,
			domain.WarningTemplateDurationLong,
			domain.WarningTemplateEquipmentMissing,
		}, warningKinds(flagged))
	})
}

func TestGetSuggestions(t *testing.T) {
	ctx := context.Background()

	t.Run("empty template", func(t *testing.T) {
		tmpl := &domain.WorkoutTemplate{
			Name:            "Bare",
			Category:        domain.TemplateCategoryCardio,
			Difficulty:      domain.DifficultyBeginner,
			DurationMinutes: 30,
		}
		suggestions := newService(newStubCatalog()).GetSuggestions(ctx, tmpl)

		assert.Equal(t, []string{
			SuggestionAddSection,
			"List the equipment needed, or 'None' for bodyweight workouts",
			SuggestionAddSection,
			SuggestionAddInstructions,
			SuggestionAddEquipment,
		}, suggestions)
	})

	t.Run("valid template with instructions has none", func(t *testing.T) {
		suggestions := newService(newStubCatalog("ex-1", "ex-2")).GetSuggestions(ctx, validTemplate())
		assert.NotNil(t, suggestions)
		assert.Empty(t, suggestions)
	})

	t.Run("errors come before warnings", func(t *testing.T) {
		tmpl := validTemplate()
		tmpl.DurationMinutes = 200
		tmpl.Sections[0].Exercises[0].Sets = intPtr(0)

		suggestions := newService(newStubCatalog("ex-1", "ex-2")).GetSuggestions(ctx, tmpl)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Set at least one set or leave sets empty", suggestions[0])
		assert.Equal(t, "Consider splitting this into multiple workouts", suggestions[1])
	})
}

func TestValidateConsistency(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	t.Run("case-insensitive duplicates", func(t *testing.T) {
		result := svc.ValidateConsistency(ctx, []*domain.WorkoutTemplate{
			{Name: "cardio x"},
			{Name: "Cardio X"},
		})

		require.Equal(t, 1, countErrors(result, domain.ErrorDuplicateName))
		assert.Equal(t, "cardio x", result.Errors[0].Value)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, domain.WarningTemplateNameSimilar, result.Warnings[0].Kind)
		assert.Equal(t, "cardio x, Cardio X", result.Warnings[0].Value)
	})

	t.Run("one error per duplicated name", func(t *testing.T) {
		result := svc.ValidateConsistency(ctx, []*domain.WorkoutTemplate{
			{Name: "Yoga X"}, {Name: "Plyometrics"}, {Name: "YOGA X"}, {Name: "plyometrics"}, {Name: "yoga x"}, {Name: "Ab Ripper X"},
		})
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "Yoga X", result.Errors[0].Value)
		assert.Equal(t, "Plyometrics", result.Errors[1].Value)
		assert.Contains(t, result.Errors[0].Message, "3 templates")
	})

	t.Run("distinct names and nil entries", func(t *testing.T) {
		result := svc.ValidateConsistency(ctx, []*domain.WorkoutTemplate{
			{Name: "Chest & Back"}, nil, {Name: "Ab Ripper X"},
		})
		assert.True(t, result.IsValid())
		assert.Empty(t, result.Warnings)
	})

	t.Run("empty input", func(t *testing.T) {
		result := svc.ValidateConsistency(ctx, nil)
		assert.True(t, result.IsValid())
	})
}

func TestInternalFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog error replaces partial findings", func(t *testing.T) {
		catalog := newStubCatalog()
		catalog.err = errors.New("connection refused")
		tmpl := validTemplate()
		tmpl.Name = ""

		result := newService(catalog).ValidateTemplate(ctx, tmpl)

		require.Len(t, result.Errors, 1)
		assert.Equal(t, domain.ErrorInternalValidation, result.Errors[0].Kind)
		assert.Contains(t, result.Errors[0].Message, "connection refused")
		assert.Empty(t, result.Warnings)
		assert.Empty(t, result.Info)
		assert.False(t, result.IsValid())
	})

	t.Run("panicking catalog is recovered", func(t *testing.T) {
		result := newService(panicCatalog{}).ValidateTemplate(ctx, validTemplate())

		require.Len(t, result.Errors, 1)
		assert.Equal(t, domain.ErrorInternalValidation, result.Errors[0].Kind)
		assert.Contains(t, result.Errors[0].Message, "catalog exploded")
	})

	t.Run("missing catalog", func(t *testing.T) {
		result := newService(nil).ValidateExercise(ctx, &domain.TemplateExercise{ExerciseID: "ex-1", Order: 1}, "", "")
		require.Len(t, result.Errors, 1)
		assert.Equal(t, domain.ErrorInternalValidation, result.Errors[0].Kind)
	})

	t.Run("nil inputs", func(t *testing.T) {
		svc := newService(newStubCatalog())
		for _, result := range []*domain.ValidationResult{
			svc.ValidateTemplate(ctx, nil),
			svc.ValidateSection(ctx, nil, ""),
			svc.ValidateExercise(ctx, nil, "", ""),
			svc.ValidateStructure(ctx, nil),
			svc.ValidateP90XRequirements(ctx, nil),
		} {
			require.Len(t, result.Errors, 1)
			assert.Equal(t, domain.ErrorInternalValidation, result.Errors[0].Kind)
		}
		suggestions := svc.GetSuggestions(ctx, nil)
		assert.Empty(t, suggestions)
	})
}

func TestValidateTemplate_Concurrent(t *testing.T) {
	svc := newService(newStubCatalog("ex-1", "ex-2"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, svc.ValidateTemplate(context.Background(), validTemplate()).IsValid())
		}()
	}
	wg.Wait()
}
