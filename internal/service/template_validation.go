package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	MaxTemplateNameLength = 100

	minRecommendedMinutes = 10
	maxRecommendedMinutes = 120
	minP90XMinutes        = 30
	maxP90XMinutes        = 120

	instrumentationName = "github.com/mansoorceksport/p90xcheck/internal/service"
)

// Suggestions appended by GetSuggestions regardless of earlier findings
const (
	SuggestionAddSection      = "Add at least one section with exercises"
	SuggestionAddInstructions = "Add workout instructions for better user experience"
	SuggestionAddEquipment    = "Specify required equipment"
)

var errNilTemplate = errors.New("template is nil")

// TemplateValidationService checks workout templates against structural,
// catalog and P90X curriculum rules. It holds no per-call state and is safe
// for concurrent use.
type TemplateValidationService struct {
	catalog  domain.ExerciseCatalog
	logger   *zap.Logger
	tracer   trace.Tracer
	runs     metric.Int64Counter
	findings metric.Int64Counter
}

func NewTemplateValidationService(catalog domain.ExerciseCatalog, logger *zap.Logger) *TemplateValidationService {
	if logger == nil {
		logger = zap.NewNop()
	}

	meter := otel.Meter(instrumentationName)
	runs, err := meter.Int64Counter("validation.runs",
		metric.WithDescription("Validation operations executed"),
	)
	if err != nil {
		logger.Warn("failed to create validation.runs counter", zap.Error(err))
	}
	findings, err := meter.Int64Counter("validation.findings",
		metric.WithDescription("Findings produced by validation, by severity"),
	)
	if err != nil {
		logger.Warn("failed to create validation.findings counter", zap.Error(err))
	}

	return &TemplateValidationService{
		catalog:  catalog,
		logger:   logger.Named("validation"),
		tracer:   otel.Tracer(instrumentationName),
		runs:     runs,
		findings: findings,
	}
}

// ValidateTemplate runs the template, section, exercise and structure checks,
// plus the P90X checks when the template is flagged as P90X.
func (s *TemplateValidationService) ValidateTemplate(ctx context.Context, template *domain.WorkoutTemplate) (result *domain.ValidationResult) {
	const op = "validate_template"
	ctx, span := s.tracer.Start(ctx, "validation.ValidateTemplate")
	defer func() { s.finish(ctx, span, op, result) }()
	defer s.recoverInto(ctx, op, &result)

	if template == nil {
		return s.fail(ctx, op, errNilTemplate)
	}
	span.SetAttributes(attribute.String("template.name", template.Name))

	result = domain.NewValidationResult()
	result.Merge(templateFieldChecks(template))

	sections, err := s.sectionChecks(ctx, template)
	if err != nil {
		return s.fail(ctx, op, err)
	}
	result.Merge(sections)
	result.Merge(structureChecks(template))

	if template.IsP90X {
		result.Merge(p90xChecks(template))
	}
	return result
}

// ValidateSection checks one section and its exercises in isolation.
// Order uniqueness against sibling sections is not checked.
func (s *TemplateValidationService) ValidateSection(ctx context.Context, section *domain.WorkoutTemplateSection, templateName string) (result *domain.ValidationResult) {
	const op = "validate_section"
	ctx, span := s.tracer.Start(ctx, "validation.ValidateSection")
	defer func() { s.finish(ctx, span, op, result) }()
	defer s.recoverInto(ctx, op, &result)

	if section == nil {
		return s.fail(ctx, op, errors.New("section is nil"))
	}

	result, err := s.checkSection(ctx, section, templateName, nil)
	if err != nil {
		return s.fail(ctx, op, err)
	}
	return result
}

// ValidateExercise checks one exercise entry in isolation.
func (s *TemplateValidationService) ValidateExercise(ctx context.Context, exercise *domain.TemplateExercise, templateName, sectionName string) (result *domain.ValidationResult) {
	const op = "validate_exercise"
	ctx, span := s.tracer.Start(ctx, "validation.ValidateExercise")
	defer func() { s.finish(ctx, span, op, result) }()
	defer s.recoverInto(ctx, op, &result)

	if exercise == nil {
		return s.fail(ctx, op, errors.New("exercise is nil"))
	}

	result, err := s.checkExercise(ctx, exercise, templateName, sectionName, nil)
	if err != nil {
		return s.fail(ctx, op, err)
	}
	return result
}

// ValidateStructure checks duration bounds, section presence and equipment.
func (s *TemplateValidationService) ValidateStructure(ctx context.Context, template *domain.WorkoutTemplate) (result *domain.ValidationResult) {
	const op = "validate_structure"
	ctx, span := s.tracer.Start(ctx, "validation.ValidateStructure")
	defer func() { s.finish(ctx, span, op, result) }()
	defer s.recoverInto(ctx, op, &result)

	if template == nil {
		return s.fail(ctx, op, errNilTemplate)
	}
	return structureChecks(template)
}

// ValidateP90XRequirements applies the curriculum rules. Templates not
// flagged as P90X yield an empty result.
func (s *TemplateValidationService) ValidateP90XRequirements(ctx context.Context, template *domain.WorkoutTemplate) (result *domain.ValidationResult) {
	const op = "validate_p90x"
	ctx, span := s.tracer.Start(ctx, "validation.ValidateP90XRequirements")
	defer func() { s.finish(ctx, span, op, result) }()
	defer s.recoverInto(ctx, op, &result)

	if template == nil {
		return s.fail(ctx, op, errNilTemplate)
	}
	if !template.IsP90X {
		return domain.NewValidationResult()
	}
	return p90xChecks(template)
}

// GetSuggestions returns the suggestions of every error then every warning
// of a full validation, followed by the fixed heuristics that apply.
// Duplicates are kept.
func (s *TemplateValidationService) GetSuggestions(ctx context.Context, template *domain.WorkoutTemplate) []string {
	suggestions := []string{}

	result := s.ValidateTemplate(ctx, template)
	for _, e := range result.Errors {
		if e.Suggestion != "" {
			suggestions = append(suggestions, e.Suggestion)
		}
	}
	for _, w := range result.Warnings {
		if w.Suggestion != "" {
			suggestions = append(suggestions, w.Suggestion)
		}
	}

	if template == nil {
		return suggestions
	}
	if len(template.Sections) == 0 {
		suggestions = append(suggestions, SuggestionAddSection)
	}
	if isBlank(template.Instructions) {
		suggestions = append(suggestions, SuggestionAddInstructions)
	}
	if isBlank(template.Equipment) {
		suggestions = append(suggestions, SuggestionAddEquipment)
	}
	return suggestions
}

// ValidateConsistency reports case-insensitive duplicate names as errors and
// groups of similar names as warnings. Nil entries are ignored.
func (s *TemplateValidationService) ValidateConsistency(ctx context.Context, templates []*domain.WorkoutTemplate) (result *domain.ValidationResult) {
	const op = "validate_consistency"
	ctx, span := s.tracer.Start(ctx, "validation.ValidateConsistency")
	defer func() { s.finish(ctx, span, op, result) }()
	defer s.recoverInto(ctx, op, &result)

	span.SetAttributes(attribute.Int("template.count", len(templates)))

	result = domain.NewValidationResult()

	type nameGroup struct {
		key   string
		count int
	}
	var groups []*nameGroup
	byLower := make(map[string]*nameGroup)
	names := make([]string, 0, len(templates))

	for _, t := range templates {
		if t == nil {
			continue
		}
		names = append(names, t.Name)

		lower := strings.ToLower(t.Name)
		g, ok := byLower[lower]
		if !ok {
			g = &nameGroup{key: t.Name}
			byLower[lower] = g
			groups = append(groups, g)
		}
		g.count++
	}

	for _, g := range groups {
		if g.count < 2 {
			continue
		}
		result.AddError(domain.ValidationError{
			Kind:         domain.ErrorDuplicateName,
			Message:      fmt.Sprintf("Template name '%s' is used by %d templates", g.key, g.count),
			Field:        "name",
			TemplateName: g.key,
			Value:        g.key,
			Suggestion:   "Give each template a unique name",
		})
	}

	for _, group := range GroupSimilarNames(names, NameSimilarityThreshold) {
		listed := strings.Join(group, ", ")
		result.AddWarning(domain.ValidationWarning{
			Kind:       domain.WarningTemplateNameSimilar,
			Message:    fmt.Sprintf("Similar template names found: %s", listed),
			Field:      "name",
			Value:      listed,
			Suggestion: "Use clearly distinct names so templates are not confused",
		})
	}

	return result
}

func (s *TemplateValidationService) fail(ctx context.Context, op string, err error) *domain.ValidationResult {
	s.logger.Error("validation failed unexpectedly", zap.String("operation", op), zap.Error(err))
	trace.SpanFromContext(ctx).RecordError(err)
	return domain.InternalFailure(err)
}

// recoverInto turns a panic in a public operation into an internal failure.
// It must be deferred directly.
func (s *TemplateValidationService) recoverInto(ctx context.Context, op string, result **domain.ValidationResult) {
	if r := recover(); r != nil {
		*result = s.fail(ctx, op, fmt.Errorf("panic: %v", r))
	}
}

func (s *TemplateValidationService) finish(ctx context.Context, span trace.Span, op string, result *domain.ValidationResult) {
	defer span.End()
	if result == nil {
		return
	}

	span.SetAttributes(
		attribute.Bool("validation.valid", result.IsValid()),
		attribute.Int("validation.errors", result.ErrorCount()),
		attribute.Int("validation.warnings", result.WarningCount()),
	)
	if !result.IsValid() {
		span.SetStatus(codes.Error, result.Summary())
	}

	if s.runs != nil {
		s.runs.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.Bool("valid", result.IsValid()),
		))
	}
	if s.findings != nil {
		s.findings.Add(ctx, int64(result.ErrorCount()), metric.WithAttributes(attribute.String("severity", "error")))
		s.findings.Add(ctx, int64(result.WarningCount()), metric.WithAttributes(attribute.String("severity", "warning")))
		s.findings.Add(ctx, int64(result.InfoCount()), metric.WithAttributes(attribute.String("severity", "info")))
	}

	s.logger.Debug("validation finished",
		zap.String("operation", op),
		zap.String("summary", result.Summary()),
	)
}

func templateFieldChecks(t *domain.WorkoutTemplate) *domain.ValidationResult {
	r := domain.NewValidationResult()

	if isBlank(t.Name) {
		r.AddError(domain.ValidationError{
			Kind:       domain.ErrorTemplateNameEmpty,
			Message:    "Template name is required",
			Field:      "name",
			Suggestion: "Provide a descriptive template name",
		})
	} else if n := len([]rune(t.Name)); n > MaxTemplateNameLength {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorTemplateNameTooLong,
			Message:      fmt.Sprintf("Template name is %d characters, the maximum is %d", n, MaxTemplateNameLength),
			Field:        "name",
			TemplateName: t.Name,
			Value:        strconv.Itoa(n),
			Suggestion:   fmt.Sprintf("Shorten the name to %d characters or fewer", MaxTemplateNameLength),
		})
	}

	if t.DurationMinutes <= 0 {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorTemplateDurationInvalid,
			Message:      "Estimated duration must be greater than zero",
			Field:        "duration_minutes",
			TemplateName: t.Name,
			Value:        strconv.Itoa(t.DurationMinutes),
			Suggestion:   "Set the estimated duration in minutes",
		})
	}

	if !t.Category.IsValid() {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorTemplateCategoryInvalid,
			Message:      fmt.Sprintf("Category %d is not a valid workout category", int(t.Category)),
			Field:        "category",
			TemplateName: t.Name,
			Value:        strconv.Itoa(int(t.Category)),
			Suggestion:   "Choose one of the supported workout categories",
		})
	}

	if !t.Difficulty.IsValid() {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorTemplateDifficultyInvalid,
			Message:      fmt.Sprintf("Difficulty %d is not a valid difficulty level", int(t.Difficulty)),
			Field:        "difficulty",
			TemplateName: t.Name,
			Value:        strconv.Itoa(int(t.Difficulty)),
			Suggestion:   "Choose Beginner, Intermediate or Advanced",
		})
	}

	return r
}

// sectionChecks validates every section in order. A section whose order was
// already used by an earlier section is reported as a duplicate.
func (s *TemplateValidationService) sectionChecks(ctx context.Context, t *domain.WorkoutTemplate) (*domain.ValidationResult, error) {
	r := domain.NewValidationResult()
	seenOrders := make(map[int]bool, len(t.Sections))

	for i := range t.Sections {
		sr, err := s.checkSection(ctx, &t.Sections[i], t.Name, seenOrders)
		if err != nil {
			return nil, err
		}
		r.Merge(sr)
	}
	return r, nil
}

// checkSection validates one section. seenOrders is nil when the section is
// validated on its own.
func (s *TemplateValidationService) checkSection(ctx context.Context, section *domain.WorkoutTemplateSection, templateName string, seenOrders map[int]bool) (*domain.ValidationResult, error) {
	r := domain.NewValidationResult()

	if isBlank(section.Name) {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorSectionNameEmpty,
			Message:      "Section name is required",
			Field:        "name",
			TemplateName: templateName,
			Value:        strconv.Itoa(section.Order),
			Suggestion:   "Name the section, e.g. Warm-up or Round 1",
		})
	}

	if section.Order <= 0 {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorSectionOrderInvalid,
			Message:      fmt.Sprintf("Section order must be greater than zero, got %d", section.Order),
			Field:        "order",
			TemplateName: templateName,
			SectionName:  section.Name,
			Value:        strconv.Itoa(section.Order),
			Suggestion:   "Number sections starting at 1",
		})
	}

	if seenOrders != nil {
		if seenOrders[section.Order] {
			r.AddError(domain.ValidationError{
				Kind:         domain.ErrorSectionOrderDuplicate,
				Message:      fmt.Sprintf("Section order %d is used by more than one section", section.Order),
				Field:        "order",
				TemplateName: templateName,
				SectionName:  section.Name,
				Value:        strconv.Itoa(section.Order),
				Suggestion:   "Give each section a unique order",
			})
		}
		seenOrders[section.Order] = true
	}

	if !section.Type.IsValid() {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorSectionTypeInvalid,
			Message:      fmt.Sprintf("Section type %d is not a valid section type", int(section.Type)),
			Field:        "type",
			TemplateName: templateName,
			SectionName:  section.Name,
			Value:        strconv.Itoa(int(section.Type)),
			Suggestion:   "Choose one of the supported section types",
		})
	}

	if section.RestPeriodSeconds != nil && *section.RestPeriodSeconds < 0 {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorSectionRestPeriodInvalid,
			Message:      "Section rest period cannot be negative",
			Field:        "rest_period_seconds",
			TemplateName: templateName,
			SectionName:  section.Name,
			Value:        strconv.Itoa(*section.RestPeriodSeconds),
			Suggestion:   "Use zero or a positive number of seconds",
		})
	}

	if len(section.Exercises) == 0 {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorSectionNoExercises,
			Message:      fmt.Sprintf("Section '%s' has no exercises", section.Name),
			Field:        "exercises",
			TemplateName: templateName,
			SectionName:  section.Name,
			Suggestion:   "Add at least one exercise to the section",
		})
		return r, nil
	}

	seenExerciseOrders := make(map[int]bool, len(section.Exercises))
	for i := range section.Exercises {
		er, err := s.checkExercise(ctx, &section.Exercises[i], templateName, section.Name, seenExerciseOrders)
		if err != nil {
			return nil, err
		}
		r.Merge(er)
	}
	return r, nil
}

// checkExercise validates one exercise entry, looking it up in the catalog
// exactly once. seenOrders is nil when the entry is validated on its own.
func (s *TemplateValidationService) checkExercise(ctx context.Context, ex *domain.TemplateExercise, templateName, sectionName string, seenOrders map[int]bool) (*domain.ValidationResult, error) {
	r := domain.NewValidationResult()

	if s.catalog == nil {
		return nil, errors.New("exercise catalog is not configured")
	}
	exists, err := s.catalog.Exists(ctx, ex.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise catalog lookup for %q: %w", ex.ExerciseID, err)
	}
	if !exists {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorExerciseNotFound,
			Message:      fmt.Sprintf("Exercise with ID '%s' was not found", ex.ExerciseID),
			Field:        "exercise_id",
			TemplateName: templateName,
			SectionName:  sectionName,
			ExerciseID:   ex.ExerciseID,
			Value:        ex.ExerciseID,
			Suggestion:   "Verify the exercise exists in the exercise catalog",
		})
	}

	if ex.Order <= 0 {
		r.AddError(exerciseError(domain.ErrorExerciseOrderInvalid, ex, templateName, sectionName,
			"order", strconv.Itoa(ex.Order),
			fmt.Sprintf("Exercise order must be greater than zero, got %d", ex.Order),
			"Number exercises starting at 1"))
	}

	if seenOrders != nil {
		if seenOrders[ex.Order] {
			r.AddError(exerciseError(domain.ErrorExerciseOrderDuplicate, ex, templateName, sectionName,
				"order", strconv.Itoa(ex.Order),
				fmt.Sprintf("Exercise order %d is used by more than one exercise in section '%s'", ex.Order, sectionName),
				"Give each exercise in the section a unique order"))
		}
		seenOrders[ex.Order] = true
	}

	if ex.Sets != nil && *ex.Sets <= 0 {
		r.AddError(exerciseError(domain.ErrorExerciseSetsInvalid, ex, templateName, sectionName,
			"sets", strconv.Itoa(*ex.Sets),
			"Sets must be greater than zero",
			"Set at least one set or leave sets empty"))
	}

	if ex.RepsMin != nil && ex.RepsMax != nil && *ex.RepsMin > *ex.RepsMax {
		r.AddError(exerciseError(domain.ErrorExerciseRepsInvalid, ex, templateName, sectionName,
			"reps", fmt.Sprintf("%d-%d", *ex.RepsMin, *ex.RepsMax),
			fmt.Sprintf("Minimum reps (%d) cannot exceed maximum reps (%d)", *ex.RepsMin, *ex.RepsMax),
			"Swap the rep range so the minimum is not above the maximum"))
	}

	if ex.Weight != nil && *ex.Weight < 0 {
		r.AddError(exerciseError(domain.ErrorExerciseWeightInvalid, ex, templateName, sectionName,
			"weight", strconv.FormatFloat(*ex.Weight, 'f', -1, 64),
			"Weight cannot be negative",
			"Use zero for bodyweight exercises"))
	}

	if ex.DurationSeconds != nil && *ex.DurationSeconds <= 0 {
		r.AddError(exerciseError(domain.ErrorExerciseDurationInvalid, ex, templateName, sectionName,
			"duration_seconds", strconv.Itoa(*ex.DurationSeconds),
			"Exercise duration must be greater than zero seconds",
			"Set a positive duration or leave it empty"))
	}

	if ex.RestBetweenSetsSeconds != nil && *ex.RestBetweenSetsSeconds < 0 {
		r.AddError(exerciseError(domain.ErrorExerciseRestInvalid, ex, templateName, sectionName,
			"rest_between_sets_seconds", strconv.Itoa(*ex.RestBetweenSetsSeconds),
			"Rest between sets cannot be negative",
			"Use zero or a positive number of seconds"))
	}

	return r, nil
}

func exerciseError(kind domain.ErrorKind, ex *domain.TemplateExercise, templateName, sectionName, field, value, message, suggestion string) domain.ValidationError {
	return domain.ValidationError{
		Kind:         kind,
		Message:      message,
		Field:        field,
		TemplateName: templateName,
		SectionName:  sectionName,
		ExerciseID:   ex.ExerciseID,
		Value:        value,
		Suggestion:   suggestion,
	}
}

// structureChecks counts exercises and sections only; it does not analyze
// which muscle groups the exercises work.
func structureChecks(t *domain.WorkoutTemplate) *domain.ValidationResult {
	r := domain.NewValidationResult()

	if t.DurationMinutes < minRecommendedMinutes {
		r.AddWarning(domain.ValidationWarning{
			Kind:         domain.WarningWorkoutIntensityLow,
			Message:      fmt.Sprintf("Workout duration of %d minutes may be too short to be effective", t.DurationMinutes),
			Field:        "duration_minutes",
			TemplateName: t.Name,
			Value:        strconv.Itoa(t.DurationMinutes),
			Suggestion:   "Consider adding more exercises or increasing the duration",
		})
	} else if t.DurationMinutes > maxRecommendedMinutes {
		r.AddWarning(domain.ValidationWarning{
			Kind:         domain.WarningWorkoutIntensityHigh,
			Message:      fmt.Sprintf("Workout duration of %d minutes may be too long", t.DurationMinutes),
			Field:        "duration_minutes",
			TemplateName: t.Name,
			Value:        strconv.Itoa(t.DurationMinutes),
			Suggestion:   "Consider splitting this into multiple workouts",
		})
	}

	if len(t.Sections) == 0 {
		r.AddError(domain.ValidationError{
			Kind:         domain.ErrorWorkoutNoSections,
			Message:      "Workout must have at least one section",
			Field:        "sections",
			TemplateName: t.Name,
			Suggestion:   SuggestionAddSection,
		})
	}

	if total := t.ExerciseCount(); total > 0 {
		r.AddInfo(domain.ValidationInfo{
			Kind:         domain.InfoWorkoutBalancedMuscleGroups,
			Message:      fmt.Sprintf("Workout contains %d exercise(s) across %d section(s)", total, len(t.Sections)),
			TemplateName: t.Name,
			Value:        strconv.Itoa(total),
		})
	}

	if isBlank(t.Equipment) {
		r.AddWarning(domain.ValidationWarning{
			Kind:         domain.WarningTemplateEquipmentMissing,
			Message:      "No equipment is specified for this workout",
			Field:        "equipment",
			TemplateName: t.Name,
			Suggestion:   "List the equipment needed, or 'None' for bodyweight workouts",
		})
	} else {
		r.AddInfo(domain.ValidationInfo{
			Kind:         domain.InfoTemplateEquipmentListed,
			Message:      fmt.Sprintf("Required equipment: %s", t.Equipment),
			Field:        "equipment",
			TemplateName: t.Name,
			Value:        t.Equipment,
		})
	}

	return r
}

func p90xChecks(t *domain.WorkoutTemplate) *domain.ValidationResult {
	r := domain.NewValidationResult()

	if !IsCanonicalP90XName(t.Name) {
		suggestion := "Use one of the official P90X workout names"
		if closest, _, ok := ClosestName(t.Name, domain.P90XTemplateNames); ok {
			suggestion = fmt.Sprintf("Did you mean '%s'? Use one of the official P90X workout names", closest)
		}
		r.AddWarning(domain.ValidationWarning{
			Kind:         domain.WarningTemplateNameSimilar,
			Message:      fmt.Sprintf("'%s' is not one of the standard P90X workouts", t.Name),
			Field:        "name",
			TemplateName: t.Name,
			Value:        t.Name,
			Suggestion:   suggestion,
		})
	}

	if t.DurationMinutes < minP90XMinutes || t.DurationMinutes > maxP90XMinutes {
		r.AddWarning(domain.ValidationWarning{
			Kind: domain.WarningTemplateDurationLong,
			Message: fmt.Sprintf("Duration of %d minutes is outside the typical P90X range (%d-%d minutes)",
				t.DurationMinutes, minP90XMinutes, maxP90XMinutes),
			Field:        "duration_minutes",
			TemplateName: t.Name,
			Value:        strconv.Itoa(t.DurationMinutes),
			Suggestion:   fmt.Sprintf("P90X workouts usually last between %d and %d minutes", minP90XMinutes, maxP90XMinutes),
		})
	}

	if isBlank(t.Equipment) {
		r.AddWarning(domain.ValidationWarning{
			Kind:         domain.WarningTemplateEquipmentMissing,
			Message:      "P90X workouts should list their equipment",
			Field:        "equipment",
			TemplateName: t.Name,
			Suggestion:   "List equipment such as dumbbells, resistance bands or a pull-up bar",
		})
	}

	return r
}

// IsCanonicalP90XName reports whether name matches one of the twelve P90X
// workouts, ignoring case and surrounding whitespace.
func IsCanonicalP90XName(name string) bool {
	name = strings.TrimSpace(name)
	for _, canonical := range domain.P90XTemplateNames {
		if strings.EqualFold(name, canonical) {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
