package domain

// ErrorKind identifies a finding that invalidates a template
type ErrorKind string

// WarningKind identifies an advisory finding
type WarningKind string

// InfoKind identifies a purely descriptive finding
type InfoKind string

const (
	ErrorTemplateNameEmpty         ErrorKind = "TemplateNameEmpty"
	ErrorTemplateNameTooLong       ErrorKind = "TemplateNameTooLong"
	ErrorTemplateDurationInvalid   ErrorKind = "TemplateDurationInvalid"
	ErrorTemplateCategoryInvalid   ErrorKind = "TemplateCategoryInvalid"
	ErrorTemplateDifficultyInvalid ErrorKind = "TemplateDifficultyInvalid"

	ErrorSectionNameEmpty         ErrorKind = "SectionNameEmpty"
	ErrorSectionOrderInvalid      ErrorKind = "SectionOrderInvalid"
	ErrorSectionOrderDuplicate    ErrorKind = "SectionOrderDuplicate"
	ErrorSectionTypeInvalid       ErrorKind = "SectionTypeInvalid"
	ErrorSectionRestPeriodInvalid ErrorKind = "SectionRestPeriodInvalid"
	ErrorSectionNoExercises       ErrorKind = "SectionNoExercises"

	ErrorExerciseNotFound        ErrorKind = "ExerciseNotFound"
	ErrorExerciseOrderInvalid    ErrorKind = "ExerciseOrderInvalid"
	ErrorExerciseOrderDuplicate  ErrorKind = "ExerciseOrderDuplicate"
	ErrorExerciseSetsInvalid     ErrorKind = "ExerciseSetsInvalid"
	ErrorExerciseRepsInvalid     ErrorKind = "ExerciseRepsInvalid"
	ErrorExerciseWeightInvalid   ErrorKind = "ExerciseWeightInvalid"
	ErrorExerciseDurationInvalid ErrorKind = "ExerciseDurationInvalid"
	ErrorExerciseRestInvalid     ErrorKind = "ExerciseRestInvalid"

	ErrorWorkoutNoSections  ErrorKind = "WorkoutNoSections"
	ErrorDuplicateName      ErrorKind = "DuplicateName"
	ErrorInternalValidation ErrorKind = "InternalValidationError"
)

const (
	WarningWorkoutIntensityLow      WarningKind = "WorkoutIntensityLow"
	WarningWorkoutIntensityHigh     WarningKind = "WorkoutIntensityHigh"
	WarningTemplateEquipmentMissing WarningKind = "TemplateEquipmentMissing"
	WarningTemplateNameSimilar      WarningKind = "TemplateNameSimilar"
	// Used for P90X durations outside 30-120 minutes in either direction.
	WarningTemplateDurationLong WarningKind = "TemplateDurationLong"
)

const (
	InfoWorkoutBalancedMuscleGroups InfoKind = "WorkoutBalancedMuscleGroups"
	InfoTemplateEquipmentListed     InfoKind = "TemplateEquipmentListed"
)

// KindDescription pairs a kind with its human-readable explanation
type KindDescription struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

var errorKindTable = []KindDescription{
	{string(ErrorTemplateNameEmpty), "Template name is required"},
	{string(ErrorTemplateNameTooLong), "Template name exceeds 100 characters"},
	{string(ErrorTemplateDurationInvalid), "Estimated duration must be greater than zero minutes"},
	{string(ErrorTemplateCategoryInvalid), "Template category is not a known workout category"},
	{string(ErrorTemplateDifficultyInvalid), "Template difficulty is not a known difficulty level"},
	{string(ErrorSectionNameEmpty), "Section name is required"},
	{string(ErrorSectionOrderInvalid), "Section order must be greater than zero"},
	{string(ErrorSectionOrderDuplicate), "Another section in the template already uses this order"},
	{string(ErrorSectionTypeInvalid), "Section type is not a known section type"},
	{string(ErrorSectionRestPeriodInvalid), "Section rest period cannot be negative"},
	{string(ErrorSectionNoExercises), "Section must contain at least one exercise"},
	{string(ErrorExerciseNotFound), "Referenced exercise does not exist in the exercise catalog"},
	{string(ErrorExerciseOrderInvalid), "Exercise order must be greater than zero"},
	{string(ErrorExerciseOrderDuplicate), "Another exercise in the section already uses this order"},
	{string(ErrorExerciseSetsInvalid), "Sets must be greater than zero"},
	{string(ErrorExerciseRepsInvalid), "Minimum reps cannot exceed maximum reps"},
	{string(ErrorExerciseWeightInvalid), "Weight cannot be negative"},
	{string(ErrorExerciseDurationInvalid), "Exercise duration must be greater than zero seconds"},
	{string(ErrorExerciseRestInvalid), "Rest between sets cannot be negative"},
	{string(ErrorWorkoutNoSections), "Template must contain at least one section"},
	{string(ErrorDuplicateName), "Another template already uses this name"},
	{string(ErrorInternalValidation), "Validation could not complete because of an unexpected failure"},
}

var warningKindTable = []KindDescription{
	{string(WarningWorkoutIntensityLow), "Workout is shorter than 10 minutes"},
	{string(WarningWorkoutIntensityHigh), "Workout is longer than 120 minutes"},
	{string(WarningTemplateEquipmentMissing), "Required equipment is not specified"},
	{string(WarningTemplateNameSimilar), "Template name is similar to, or does not match, an expected name"},
	{string(WarningTemplateDurationLong), "Duration is outside the typical P90X range of 30 to 120 minutes"},
}

var infoKindTable = []KindDescription{
	{string(InfoWorkoutBalancedMuscleGroups), "Summary of exercise and section counts"},
	{string(InfoTemplateEquipmentListed), "Equipment required by the template"},
}

func ErrorKinds() []KindDescription   { return append([]KindDescription(nil), errorKindTable...) }
func WarningKinds() []KindDescription { return append([]KindDescription(nil), warningKindTable...) }
func InfoKinds() []KindDescription    { return append([]KindDescription(nil), infoKindTable...) }

func describe(table []KindDescription, kind string) string {
	for _, d := range table {
		if d.Kind == kind {
			return d.Description
		}
	}
	return ""
}

func (k ErrorKind) Description() string   { return describe(errorKindTable, string(k)) }
func (k WarningKind) Description() string { return describe(warningKindTable, string(k)) }
func (k InfoKind) Description() string    { return describe(infoKindTable, string(k)) }
