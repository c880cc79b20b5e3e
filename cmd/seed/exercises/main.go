package main

import (
	"context"
	"errors"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/config"
	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/repository"
	"github.com/mansoorceksport/p90xcheck/internal/seed"
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

	repo := repository.NewMongoExerciseRepository(client.Database(cfg.MongoDB.Database))

	var created, skipped int
	for _, ex := range seed.Exercises() {
		if err := repo.Create(ctx, &ex); err != nil {
			if errors.Is(err, domain.ErrDuplicateExercise) {
				logger.Info("skipping duplicate", zap.String("name", ex.Name))
				skipped++
				continue
			}
			logger.Error("failed to create exercise", zap.String("name", ex.Name), zap.Error(err))
			continue
		}
		logger.Info("created exercise", zap.String("name", ex.Name), zap.String("id", ex.ID))
		created++
	}
	logger.Info("seeding exercises complete", zap.Int("created", created), zap.Int("skipped", skipped))
}
