package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupTestDB spins up a fresh MongoDB container for the test
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err, "failed to start container")

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(endpoint))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
	})
	return client.Database("p90xcheck_test")
}

func intPtr(v int) *int { return &v }

func TestMongoExerciseRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewMongoExerciseRepository(db)

	pushUps := &domain.Exercise{
		Name:                "Standard Push-Ups",
		Category:            domain.ExerciseCategoryResistance,
		Difficulty:          domain.DifficultyIntermediate,
		PrimaryMuscleGroups: domain.MuscleChest | domain.MuscleTriceps,
		Equipment:           "None",
		DefaultRepsMin:      intPtr(8),
		DefaultRepsMax:      intPtr(15),
	}
	require.NoError(t, repo.Create(ctx, pushUps))
	require.NotEmpty(t, pushUps.ID)

	warrior := &domain.Exercise{
		Name:                "Warrior One",
		Category:            domain.ExerciseCategoryYoga,
		Difficulty:          domain.DifficultyBeginner,
		PrimaryMuscleGroups: domain.MuscleQuads,
	}
	require.NoError(t, repo.Create(ctx, warrior))

	t.Run("duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Exercise{Name: "Standard Push-Ups", Category: domain.ExerciseCategoryCore})
		assert.ErrorIs(t, err, domain.ErrDuplicateExercise)
	})

	t.Run("exists", func(t *testing.T) {
		found, err := repo.Exists(ctx, pushUps.ID)
		require.NoError(t, err)
		assert.True(t, found)

		found, err = repo.Exists(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.False(t, found)

		found, err = repo.Exists(ctx, "not-an-object-id")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, pushUps.ID)
		require.NoError(t, err)
		assert.Equal(t, "Standard Push-Ups", got.Name)
		assert.True(t, got.PrimaryMuscleGroups.Has(domain.MuscleChest))
		require.NotNil(t, got.DefaultRepsMax)
		assert.Equal(t, 15, *got.DefaultRepsMax)

		_, err = repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, domain.ErrExerciseNotFound)

		_, err = repo.GetByID(ctx, "bad")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("list filters", func(t *testing.T) {
		all, err := repo.List(ctx, domain.ExerciseFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Standard Push-Ups", all[0].Name)

		yoga, err := repo.List(ctx, domain.ExerciseFilter{Category: domain.ExerciseCategoryYoga})
		require.NoError(t, err)
		require.Len(t, yoga, 1)
		assert.Equal(t, warrior.ID, yoga[0].ID)

		byName, err := repo.List(ctx, domain.ExerciseFilter{Name: "push"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, pushUps.ID, byName[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		warrior.Name = "Warrior Two"
		require.NoError(t, repo.Update(ctx, warrior))

		got, err := repo.GetByID(ctx, warrior.ID)
		require.NoError(t, err)
		assert.Equal(t, "Warrior Two", got.Name)

		missing := &domain.Exercise{ID: primitive.NewObjectID().Hex(), Name: "Ghost"}
		assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrExerciseNotFound)

		warrior.Name = "Standard Push-Ups"
		assert.ErrorIs(t, repo.Update(ctx, warrior), domain.ErrDuplicateExercise)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, warrior.ID))
		found, err := repo.Exists(ctx, warrior.ID)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestMongoTemplateRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewMongoTemplateRepository(db)

	newTemplate := func(name string) *domain.WorkoutTemplate {
		return &domain.WorkoutTemplate{
			Name:            name,
			Category:        domain.TemplateCategoryResistance,
			Difficulty:      domain.DifficultyIntermediate,
			DurationMinutes: 55,
			Equipment:       "Pull-up bar",
			IsP90X:          true,
			IsActive:        true,
			Sections: []domain.WorkoutTemplateSection{
				{
					Name:              "Round 1",
					Type:              domain.SectionTypeCircuit,
					Order:             1,
					RestPeriodSeconds: intPtr(60),
					Exercises: []domain.TemplateExercise{
						{ExerciseID: primitive.NewObjectID().Hex(), Order: 1, Sets: intPtr(1), RepsMin: intPtr(8), RepsMax: intPtr(15)},
					},
				},
			},
		}
	}

	chest := newTemplate("Chest & Back")
	chest.ID = "ignored"
	require.NoError(t, repo.Create(ctx, chest))
	require.NotEqual(t, "ignored", chest.ID)
	assert.False(t, chest.CreatedAt.IsZero())

	time.Sleep(5 * time.Millisecond)
	legs := newTemplate("Legs & Back")
	require.NoError(t, repo.Create(ctx, legs))

	t.Run("get by id keeps sections", func(t *testing.T) {
		got, err := repo.GetByID(ctx, chest.ID)
		require.NoError(t, err)
		assert.Equal(t, "Chest & Back", got.Name)
		require.Len(t, got.Sections, 1)
		assert.Equal(t, domain.SectionTypeCircuit, got.Sections[0].Type)
		require.Len(t, got.Sections[0].Exercises, 1)
		assert.Equal(t, 15, *got.Sections[0].Exercises[0].RepsMax)
		assert.Nil(t, got.Sections[0].Exercises[0].Weight)

		_, err = repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
		_, err = repo.GetByID(ctx, "bad")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("list in creation order", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, chest.ID, list[0].ID)
		assert.Equal(t, legs.ID, list[1].ID)
	})

	t.Run("update", func(t *testing.T) {
		legs.DurationMinutes = 60
		legs.Sections = nil
		require.NoError(t, repo.Update(ctx, legs))

		got, err := repo.GetByID(ctx, legs.ID)
		require.NoError(t, err)
		assert.Equal(t, 60, got.DurationMinutes)
		assert.Empty(t, got.Sections)

		ghost := newTemplate("Ghost")
		ghost.ID = primitive.NewObjectID().Hex()
		assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrTemplateNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, legs.ID))
		_, err := repo.GetByID(ctx, legs.ID)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})
}
