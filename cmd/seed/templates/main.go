package main

import (
	"context"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/config"
	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/repository"
	"github.com/mansoorceksport/p90xcheck/internal/seed"
	"github.com/mansoorceksport/p90xcheck/internal/service"
	"github.com/mansoorceksport/p90xcheck/internal/telemetry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Read()

	logger, err := telemetry.NewLogger(cfg.Log.Environment, cfg.Log.Debug)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		logger.Fatal("failed to connect to Mongo", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	exRepo := repository.NewMongoExerciseRepository(db)
	tplRepo := repository.NewMongoTemplateRepository(db)
	validator := service.NewTemplateValidationService(exRepo, logger)

	exercises, err := exRepo.List(ctx, domain.ExerciseFilter{})
	if err != nil {
		logger.Fatal("failed to list exercises", zap.Error(err))
	}
	idByName := make(map[string]string, len(exercises))
	for _, ex := range exercises {
		idByName[ex.Name] = ex.ID
	}

	templates, err := seed.Templates(idByName)
	if err != nil {
		logger.Fatal("exercise catalog is incomplete, run the exercise seed first", zap.Error(err))
	}

	existing, err := tplRepo.List(ctx)
	if err != nil {
		logger.Fatal("failed to list templates", zap.Error(err))
	}
	stored := make(map[string]bool, len(existing))
	for _, t := range existing {
		stored[t.Name] = true
	}

	for _, tmpl := range templates {
		if stored[tmpl.Name] {
			logger.Info("skipping existing template", zap.String("name", tmpl.Name))
			continue
		}

		result := validator.ValidateTemplate(ctx, tmpl)
		if !result.IsValid() {
			logger.Error("template failed validation",
				zap.String("name", tmpl.Name),
				zap.String("summary", result.Summary()),
				zap.Any("errors", result.Errors),
			)
			continue
		}

		if err := tplRepo.Create(ctx, tmpl); err != nil {
			logger.Error("failed to create template", zap.String("name", tmpl.Name), zap.Error(err))
			continue
		}
		logger.Info("created template",
			zap.String("name", tmpl.Name),
			zap.String("id", tmpl.ID),
			zap.String("summary", result.Summary()),
		)
	}
	logger.Info("seeding templates complete")
}
