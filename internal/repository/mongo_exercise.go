package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoExerciseRepository struct {
	collection *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	coll := db.Collection("exercises")

	// Create Index
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mod := mongo.IndexModel{
		Keys:    bson.M{"name": 1},
		Options: options.Index().SetUnique(true),
	}
	coll.Indexes().CreateOne(ctx, mod)

	return &MongoExerciseRepository{
		collection: coll,
	}
}

func (r *MongoExerciseRepository) Create(ctx context.Context, ex *domain.Exercise) error {
	ex.CreatedAt = time.Now()
	ex.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, ex)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateExercise
		}
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		ex.ID = oid.Hex()
	}
	return nil
}

// Exists answers the validator's catalog lookup. A malformed id cannot
// reference a stored exercise, so it is reported as absent.
func (r *MongoExerciseRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to look up exercise %s: %w", id, err)
	}
	return count > 0, nil
}

func (r *MongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var ex domain.Exercise
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&ex)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, err
	}
	return &ex, nil
}

func (r *MongoExerciseRepository) List(ctx context.Context, filter domain.ExerciseFilter) ([]*domain.Exercise, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Category != 0 {
		query["category"] = filter.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []*domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *MongoExerciseRepository) Update(ctx context.Context, ex *domain.Exercise) error {
	oid, err := primitive.ObjectIDFromHex(ex.ID)
	if err != nil {
		return domain.ErrInvalidID
	}
	ex.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":                    ex.Name,
			"description":             ex.Description,
			"category":                ex.Category,
			"difficulty":              ex.Difficulty,
			"primary_muscle_groups":   ex.PrimaryMuscleGroups,
			"secondary_muscle_groups": ex.SecondaryMuscleGroups,
			"equipment":               ex.Equipment,
			"default_reps_min":        ex.DefaultRepsMin,
			"default_reps_max":        ex.DefaultRepsMax,
			"default_sets":            ex.DefaultSets,
			"updated_at":              ex.UpdatedAt,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateExercise
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrExerciseNotFound
	}
	return nil
}

func (r *MongoExerciseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
