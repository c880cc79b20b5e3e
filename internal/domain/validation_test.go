package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationResult_Empty(t *testing.T) {
	r := NewValidationResult()

	assert.True(t, r.IsValid())
	assert.Equal(t, "Valid: 0 error(s), 0 warning(s), 0 info", r.Summary())
	assert.NotNil(t, r.Errors)
	assert.NotNil(t, r.Warnings)
	assert.NotNil(t, r.Info)
}

func TestValidationResult_WarningsDoNotInvalidate(t *testing.T) {
	r := NewValidationResult()
	r.AddWarning(ValidationWarning{Kind: WarningWorkoutIntensityLow, Message: "short"})
	r.AddInfo(ValidationInfo{Kind: InfoTemplateEquipmentListed, Message: "mat"})

	assert.True(t, r.IsValid())
	assert.True(t, r.HasWarning(WarningWorkoutIntensityLow))
	assert.False(t, r.HasWarning(WarningWorkoutIntensityHigh))
	assert.True(t, r.HasInfo(InfoTemplateEquipmentListed))
	assert.Equal(t, "Valid: 0 error(s), 1 warning(s), 1 info", r.Summary())
}

func TestValidationResult_MergeKeepsOrder(t *testing.T) {
	first := NewValidationResult()
	first.AddError(ValidationError{Kind: ErrorTemplateNameEmpty})
	second := NewValidationResult()
	second.AddError(ValidationError{Kind: ErrorSectionNameEmpty})
	second.AddError(ValidationError{Kind: ErrorExerciseNotFound})

	merged := first.Merge(second).Merge(nil)

	require.Len(t, merged.Errors, 3)
	assert.Equal(t, ErrorTemplateNameEmpty, merged.Errors[0].Kind)
	assert.Equal(t, ErrorSectionNameEmpty, merged.Errors[1].Kind)
	assert.Equal(t, ErrorExerciseNotFound, merged.Errors[2].Kind)
	assert.False(t, merged.IsValid())
	assert.Equal(t, "Invalid: 3 error(s), 0 warning(s), 0 info", merged.Summary())
}

func TestInternalFailure(t *testing.T) {
	r := InternalFailure(errors.New("catalog offline"))

	require.Len(t, r.Errors, 1)
	assert.Equal(t, ErrorInternalValidation, r.Errors[0].Kind)
	assert.Contains(t, r.Errors[0].Message, "catalog offline")
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Info)
}

func TestValidationResult_MarshalJSON(t *testing.T) {
	r := &ValidationResult{}
	r.AddError(ValidationError{Kind: ErrorExerciseSetsInvalid, Message: "bad sets", ExerciseID: "ex-1", Value: "0"})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, false, raw["is_valid"])
	assert.Equal(t, float64(1), raw["error_count"])
	assert.Equal(t, "Invalid: 1 error(s), 0 warning(s), 0 info", raw["summary"])
	assert.Equal(t, []any{}, raw["warnings"])
	assert.Equal(t, []any{}, raw["info"])

	errs := raw["errors"].([]any)
	first := errs[0].(map[string]any)
	assert.Equal(t, "ExerciseSetsInvalid", first["kind"])
	assert.Equal(t, "ex-1", first["exercise_id"])
	assert.NotContains(t, first, "suggestion")

	var back ValidationResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r.Errors, back.Errors)
}

func TestKindCatalogs(t *testing.T) {
	t.Run("every error kind is described", func(t *testing.T) {
		kinds := []ErrorKind{
			ErrorTemplateNameEmpty, ErrorTemplateNameTooLong, ErrorTemplateDurationInvalid,
			ErrorTemplateCategoryInvalid, ErrorTemplateDifficultyInvalid, ErrorSectionNameEmpty,
			ErrorSectionOrderInvalid, ErrorSectionOrderDuplicate, ErrorSectionTypeInvalid,
			ErrorSectionRestPeriodInvalid, ErrorSectionNoExercises, ErrorExerciseNotFound,
			ErrorExerciseOrderInvalid, ErrorExerciseOrderDuplicate, ErrorExerciseSetsInvalid,
			ErrorExerciseRepsInvalid, ErrorExerciseWeightInvalid, ErrorExerciseDurationInvalid,
			ErrorExerciseRestInvalid, ErrorWorkoutNoSections, ErrorDuplicateName, ErrorInternalValidation,
		}
		assert.Len(t, ErrorKinds(), len(kinds))
		for _, k := range kinds {
			assert.NotEmpty(t, k.Description(), k)
		}
	})

	t.Run("warnings and info are described", func(t *testing.T) {
		for _, k := range []WarningKind{
			WarningWorkoutIntensityLow, WarningWorkoutIntensityHigh, WarningTemplateEquipmentMissing,
			WarningTemplateNameSimilar, WarningTemplateDurationLong,
		} {
			assert.NotEmpty(t, k.Description(), k)
		}
		for _, k := range []InfoKind{InfoWorkoutBalancedMuscleGroups, InfoTemplateEquipmentListed} {
			assert.NotEmpty(t, k.Description(), k)
		}
		assert.Empty(t, WarningKind("Bogus").Description())
	})

	t.Run("returned tables are copies", func(t *testing.T) {
		kinds := ErrorKinds()
		kinds[0].Description = "changed"
		assert.NotEqual(t, "changed", ErrorKinds()[0].Description)
	})
}

func TestEnums(t *testing.T) {
	assert.False(t, ExerciseCategory(0).IsValid())
	assert.True(t, ExerciseCategoryStretching.IsValid())
	assert.False(t, TemplateCategory(0).IsValid())
	assert.True(t, TemplateCategoryMixed.IsValid())
	assert.False(t, TemplateCategory(99).IsValid())
	assert.False(t, SectionType(0).IsValid())
	assert.Equal(t, "Cooldown", SectionTypeCooldown.String())
	assert.False(t, Difficulty(0).IsValid())
	assert.Equal(t, "Unknown", Difficulty(7).String())

	groups := MuscleChest | MuscleTriceps
	assert.True(t, groups.Has(MuscleChest))
	assert.False(t, groups.Has(MuscleBack))
	assert.Equal(t, "Chest|Triceps", groups.String())
	assert.Equal(t, "None", MuscleGroup(0).String())
}

func TestWorkoutTemplate_ExerciseCount(t *testing.T) {
	tmpl := &WorkoutTemplate{Sections: []WorkoutTemplateSection{
		{Exercises: make([]TemplateExercise, 3)},
		{},
		{Exercises: make([]TemplateExercise, 2)},
	}}
	assert.Equal(t, 5, tmpl.ExerciseCount())
}
