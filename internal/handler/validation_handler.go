package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/service"
	"github.com/mansoorceksport/p90xcheck/internal/telemetry"
)

// ValidationHandler exposes the template validation operations over HTTP.
// Validation outcomes are always 200; validity is carried in the result.
type ValidationHandler struct {
	validator    *service.TemplateValidationService
	auditService *service.TemplateAuditService
	templateRepo domain.TemplateRepository
}

func NewValidationHandler(
	validator *service.TemplateValidationService,
	auditService *service.TemplateAuditService,
	templateRepo domain.TemplateRepository,
) *ValidationHandler {
	return &ValidationHandler{
		validator:    validator,
		auditService: auditService,
		templateRepo: templateRepo,
	}
}

type validationResponse struct {
	ReportID string                   `json:"report_id"`
	Result   *domain.ValidationResult `json:"result"`
}

func respondWithResult(c *fiber.Ctx, result *domain.ValidationResult) error {
	reportID := service.NewReportID(time.Now())
	c.Locals(telemetry.ReportIDLocal, reportID)
	return c.JSON(validationResponse{ReportID: reportID, Result: result})
}

// ValidateTemplate POST /v1/validation/template
func (h *ValidationHandler) ValidateTemplate(c *fiber.Ctx) error {
	var req domain.WorkoutTemplate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	return respondWithResult(c, h.validator.ValidateTemplate(c.UserContext(), &req))
}

// ValidateSection POST /v1/validation/section?template_name=
func (h *ValidationHandler) ValidateSection(c *fiber.Ctx) error {
	var req domain.WorkoutTemplateSection
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	return respondWithResult(c, h.validator.ValidateSection(c.UserContext(), &req, c.Query("template_name")))
}

// ValidateExercise POST /v1/validation/exercise?template_name=&section_name=
func (h *ValidationHandler) ValidateExercise(c *fiber.Ctx) error {
	var req domain.TemplateExercise
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	result := h.validator.ValidateExercise(c.UserContext(), &req, c.Query("template_name"), c.Query("section_name"))
	return respondWithResult(c, result)
}

// ValidateStructure POST /v1/validation/structure
func (h *ValidationHandler) ValidateStructure(c *fiber.Ctx) error {
	var req domain.WorkoutTemplate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	return respondWithResult(c, h.validator.ValidateStructure(c.UserContext(), &req))
}

// ValidateP90X POST /v1/validation/p90x
func (h *ValidationHandler) ValidateP90X(c *fiber.Ctx) error {
	var req domain.WorkoutTemplate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	return respondWithResult(c, h.validator.ValidateP90XRequirements(c.UserContext(), &req))
}

// Suggestions POST /v1/validation/suggestions
func (h *ValidationHandler) Suggestions(c *fiber.Ctx) error {
	var req domain.WorkoutTemplate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	return c.JSON(fiber.Map{
		"suggestions": h.validator.GetSuggestions(c.UserContext(), &req),
	})
}

// ValidateConsistency POST /v1/validation/consistency
// Body is a JSON array of templates.
func (h *ValidationHandler) ValidateConsistency(c *fiber.Ctx) error {
	var req []*domain.WorkoutTemplate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	return respondWithResult(c, h.validator.ValidateConsistency(c.UserContext(), req))
}

// --- Kind catalogs ---

func (h *ValidationHandler) ListErrorKinds(c *fiber.Ctx) error {
	return c.JSON(domain.ErrorKinds())
}

func (h *ValidationHandler) ListWarningKinds(c *fiber.Ctx) error {
	return c.JSON(domain.WarningKinds())
}

func (h *ValidationHandler) ListInfoKinds(c *fiber.Ctx) error {
	return c.JSON(domain.InfoKinds())
}

// --- Stored templates ---

// ValidateStoredTemplate GET /v1/templates/:id/validation
func (h *ValidationHandler) ValidateStoredTemplate(c *fiber.Ctx) error {
	tmpl, err := h.templateRepo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	telemetry.SetSpanAttribute(c, "template.id", tmpl.ID)
	return respondWithResult(c, h.validator.ValidateTemplate(c.UserContext(), tmpl))
}

// StoredTemplateSuggestions GET /v1/templates/:id/suggestions
func (h *ValidationHandler) StoredTemplateSuggestions(c *fiber.Ctx) error {
	tmpl, err := h.templateRepo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"template_id": tmpl.ID,
		"suggestions": h.validator.GetSuggestions(c.UserContext(), tmpl),
	})
}

// RunAudit POST /v1/admin/audit
func (h *ValidationHandler) RunAudit(c *fiber.Ctx) error {
	report, err := h.auditService.Run(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Locals(telemetry.ReportIDLocal, report.ID)
	return c.JSON(report)
}

// statusForError maps repository sentinel errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTemplateNotFound), errors.Is(err, domain.ErrExerciseNotFound), errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateExercise):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
