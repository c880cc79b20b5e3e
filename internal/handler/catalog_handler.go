package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/service"
)

// CatalogHandler serves the exercise library and the template store.
// Writes go through validation: a template with errors is never stored.
type CatalogHandler struct {
	exerciseRepo domain.ExerciseRepository
	templateRepo domain.TemplateRepository
	validator    *service.TemplateValidationService
}

func NewCatalogHandler(
	exerciseRepo domain.ExerciseRepository,
	templateRepo domain.TemplateRepository,
	validator *service.TemplateValidationService,
) *CatalogHandler {
	return &CatalogHandler{
		exerciseRepo: exerciseRepo,
		templateRepo: templateRepo,
		validator:    validator,
	}
}

// --- Exercises ---

// ListExercises GET /v1/exercises?name=&category=
func (h *CatalogHandler) ListExercises(c *fiber.Ctx) error {
	filter := domain.ExerciseFilter{Name: c.Query("name")}
	if raw := c.Query("category"); raw != "" {
		category, err := strconv.Atoi(raw)
		if err != nil || !domain.ExerciseCategory(category).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
		}
		filter.Category = domain.ExerciseCategory(category)
	}

	exs, err := h.exerciseRepo.List(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(exs)
}

func (h *CatalogHandler) GetExercise(c *fiber.Ctx) error {
	ex, err := h.exerciseRepo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(ex)
}

func (h *CatalogHandler) CreateExercise(c *fiber.Ctx) error {
	var req domain.Exercise
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if msg := validateExercisePayload(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	req.ID = ""
	if err := h.exerciseRepo.Create(c.UserContext(), &req); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

func (h *CatalogHandler) UpdateExercise(c *fiber.Ctx) error {
	var req domain.Exercise
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if msg := validateExercisePayload(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	req.ID = c.Params("id")
	if err := h.exerciseRepo.Update(c.UserContext(), &req); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(req)
}

func (h *CatalogHandler) DeleteExercise(c *fiber.Ctx) error {
	if err := h.exerciseRepo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// validateExercisePayload returns a message for the first invalid field
func validateExercisePayload(ex *domain.Exercise) string {
	if ex.Name == "" {
		return "name is required"
	}
	if !ex.Category.IsValid() {
		return "category is invalid"
	}
	if !ex.Difficulty.IsValid() {
		return "difficulty is invalid"
	}
	if ex.DefaultRepsMin != nil && ex.DefaultRepsMax != nil && *ex.DefaultRepsMin > *ex.DefaultRepsMax {
		return "default_reps_min cannot exceed default_reps_max"
	}
	if ex.DefaultSets != nil && *ex.DefaultSets <= 0 {
		return "default_sets must be greater than 0"
	}
	return ""
}

// --- Templates ---

func (h *CatalogHandler) ListTemplates(c *fiber.Ctx) error {
	tmps, err := h.templateRepo.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tmps)
}

func (h *CatalogHandler) GetTemplate(c *fiber.Ctx) error {
	tmpl, err := h.templateRepo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tmpl)
}

// CreateTemplate POST /v1/admin/templates
// Responds 422 with the validation result when the template has errors.
func (h *CatalogHandler) CreateTemplate(c *fiber.Ctx) error {
	var req domain.WorkoutTemplate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	result := h.validator.ValidateTemplate(c.UserContext(), &req)
	if !result.IsValid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":      "Template failed validation",
			"validation": result,
		})
	}

	if err := h.templateRepo.Create(c.UserContext(), &req); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"template":   req,
		"validation": result,
	})
}

// UpdateTemplate PUT /v1/admin/templates/:id
func (h *CatalogHandler) UpdateTemplate(c *fiber.Ctx) error {
	var req domain.WorkoutTemplate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	req.ID = c.Params("id")

	result := h.validator.ValidateTemplate(c.UserContext(), &req)
	if !result.IsValid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":      "Template failed validation",
			"validation": result,
		})
	}

	if err := h.templateRepo.Update(c.UserContext(), &req); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"template":   req,
		"validation": result,
	})
}

func (h *CatalogHandler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.templateRepo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
