package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/cli"
	"github.com/mansoorceksport/p90xcheck/internal/config"
	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/mansoorceksport/p90xcheck/internal/repository"
	"github.com/mansoorceksport/p90xcheck/internal/telemetry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Read()

	logger, err := telemetry.NewLogger(cfg.Log.Environment, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	app := &cli.App{
		Logger:      logger,
		OpenCatalog: mongoCatalog(cfg),
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrInvalidTemplates) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func mongoCatalog(cfg *config.Config) cli.CatalogOpener {
	return func(ctx context.Context) (domain.ExerciseCatalog, func(), error) {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoDB.URI))
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}

		release := func() { _ = client.Disconnect(context.Background()) }
		return repository.NewMongoExerciseRepository(client.Database(cfg.MongoDB.Database)), release, nil
	}
}
