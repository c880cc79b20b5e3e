package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/p90xcheck/internal/config"
	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/handler"
	"github.com/mansoorceksport/p90xcheck/internal/middleware"
	"github.com/mansoorceksport/p90xcheck/internal/repository"
	"github.com/mansoorceksport/p90xcheck/internal/service"
	"github.com/mansoorceksport/p90xcheck/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	Logger      *zap.Logger
	ReportStore domain.ReportStore // nil disables audit archiving
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Initialize repositories
	exerciseRepo := repository.NewMongoExerciseRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)
	templateRepo := repository.NewCachedTemplateRepository(
		repository.NewMongoTemplateRepository(deps.MongoDB),
		cacheRepo,
		deps.Config.Validation.TemplateCacheTTL,
	)

	// Initialize services
	validationService := service.NewTemplateValidationService(exerciseRepo, log)
	auditService := service.NewTemplateAuditService(
		templateRepo,
		validationService,
		deps.ReportStore,
		deps.Config.Validation.AuditConcurrency,
		log,
	)

	// Initialize handlers
	validationHandler := handler.NewValidationHandler(validationService, auditService, templateRepo)
	catalogHandler := handler.NewCatalogHandler(exerciseRepo, templateRepo, validationService)

	bodyLimitMB := deps.Config.Server.MaxBodySizeMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = 2
	}

	app := fiber.New(fiber.Config{
		AppName:      "P90X Template Validation API",
		BodyLimit:    int(bodyLimitMB * 1024 * 1024),
		ErrorHandler: newErrorHandler(log),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(telemetry.FiberMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "p90xcheck",
		})
	})

	v1 := app.Group("/v1")

	// ===========================================
	// VALIDATION API - /v1/validation/* (public)
	// ===========================================
	validation := v1.Group("/validation")
	validation.Post("/template", validationHandler.ValidateTemplate)
	validation.Post("/section", validationHandler.ValidateSection)
	validation.Post("/exercise", validationHandler.ValidateExercise)
	validation.Post("/structure", validationHandler.ValidateStructure)
	validation.Post("/p90x", validationHandler.ValidateP90X)
	validation.Post("/suggestions", validationHandler.Suggestions)
	validation.Post("/consistency", validationHandler.ValidateConsistency)

	kinds := validation.Group("/kinds")
	kinds.Get("/errors", validationHandler.ListErrorKinds)
	kinds.Get("/warnings", validationHandler.ListWarningKinds)
	kinds.Get("/info", validationHandler.ListInfoKinds)

	// ===========================================
	// EXERCISES & TEMPLATES - public read
	// ===========================================
	v1.Get("/exercises", catalogHandler.ListExercises)
	v1.Get("/exercises/:id", catalogHandler.GetExercise)

	v1.Get("/templates", catalogHandler.ListTemplates)
	v1.Get("/templates/:id", catalogHandler.GetTemplate)
	v1.Get("/templates/:id/validation", validationHandler.ValidateStoredTemplate)
	v1.Get("/templates/:id/suggestions", validationHandler.StoredTemplateSuggestions)

	// ===========================================
	// ADMIN API - /v1/admin/* (requires 'admin' role)
	// ===========================================
	admin := v1.Group("/admin")
	admin.Use(middleware.VerifyToken(deps.Config.JWT.Secret))
	admin.Use(middleware.AuthorizeRole(domain.RoleAdmin))
	admin.Use(middleware.Idempotency(deps.RedisClient, deps.Config.Validation.IdempotencyTTL, log))

	adminEx := admin.Group("/exercises")
	adminEx.Post("/", catalogHandler.CreateExercise)
	adminEx.Put("/:id", catalogHandler.UpdateExercise)
	adminEx.Delete("/:id", catalogHandler.DeleteExercise)

	adminTpl := admin.Group("/templates")
	adminTpl.Post("/", catalogHandler.CreateTemplate)
	adminTpl.Put("/:id", catalogHandler.UpdateTemplate)
	adminTpl.Delete("/:id", catalogHandler.DeleteTemplate)

	admin.Post("/audit", validationHandler.RunAudit)

	return app
}

func newErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
