package database

import (
	"context"
	"errors"
	"fmt"

	"golang-exercisebackend/models"
	"golang-exercisebackend/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type MongoExerciseStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *zap.SugaredLogger
}

func NewMongoExerciseStore(client *mongo.Client, databaseName, collectionName string, log *zap.SugaredLogger) *MongoExerciseStore {
	return &MongoExerciseStore{
		client:     client,
		collection: OpenCollection(client, databaseName, collectionName),
		log:        log,
	}
}

func (s *MongoExerciseStore) Create(ctx context.Context, fields models.ExerciseFields) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("create", outcomeOf(err)) }()

	if err = fields.Validate(); err != nil {
		return models.Exercise{}, err
	}

	exercise = fields.ToExercise(primitive.NewObjectID())
	if _, err = s.collection.InsertOne(ctx, exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("insert exercise: %w", err)
	}
	s.log.Debugw("Created exercise", "id", exercise.ID.Hex())
	return exercise, nil
}

func (s *MongoExerciseStore) Find(ctx context.Context, filter models.ExerciseFilter) (exercises []models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("find", outcomeOf(err)) }()

	cursor, err := s.collection.Find(ctx, filter.BSON())
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	exercises = []models.Exercise{}
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return exercises, nil
}

func (s *MongoExerciseStore) FindByID(ctx context.Context, id string) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("find_by_id", outcomeOf(err)) }()

	oid, err := parseID("find exercise", id)
	if err != nil {
		return models.Exercise{}, err
	}

	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&exercise)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Exercise{}, ErrNotFound
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("find exercise %s: %w", id, err)
	}
	return exercise, nil
}

// UpdateByID replaces all five fields of the record. Fields are validated
// before the id is cast, matching the order the handlers rely on.
func (s *MongoExerciseStore) UpdateByID(ctx context.Context, id string, fields models.ExerciseFields) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("update_by_id", outcomeOf(err)) }()

	if err = fields.Validate(); err != nil {
		return models.Exercise{}, err
	}
	oid, err := parseID("update exercise", id)
	if err != nil {
		return models.Exercise{}, err
	}

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	err = s.collection.FindOneAndReplace(ctx, bson.M{"_id": oid}, fields.ToExercise(oid), opts).Decode(&exercise)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Exercise{}, ErrNotFound
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("replace exercise %s: %w", id, err)
	}
	s.log.Debugw("Updated exercise", "id", id)
	return exercise, nil
}

func (s *MongoExerciseStore) DeleteByID(ctx context.Context, id string) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("delete_by_id", outcomeOf(err)) }()

	oid, err := parseID("delete exercise", id)
	if err != nil {
		return models.Exercise{}, err
	}

	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&exercise)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Exercise{}, ErrNotFound
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("delete exercise %s: %w", id, err)
	}
	s.log.Debugw("Deleted exercise", "id", id)
	return exercise, nil
}

func (s *MongoExerciseStore) DeleteMany(ctx context.Context, filter models.ExerciseFilter) (deleted int64, err error) {
	defer func() { observability.RecordStoreOperation("delete_many", outcomeOf(err)) }()

	result, err := s.collection.DeleteMany(ctx, filter.BSON())
	if err != nil {
		return 0, fmt.Errorf("delete exercises: %w", err)
	}
	s.log.Debugw("Deleted exercises", "filter", filter.BSON(), "count", result.DeletedCount)
	return result.DeletedCount, nil
}

func (s *MongoExerciseStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return models.KindOf(err).String()
	}
}
