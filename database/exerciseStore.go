package database

import (
	"context"
	"errors"

	"golang-exercisebackend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a well-formed id resolves to no record.
var ErrNotFound = errors.New("exercise not found")

// ExerciseStore is the persistence boundary used by the controllers.
// Writes validate all five fields before touching storage, so an invalid
// payload never partially applies.
type ExerciseStore interface {
	Create(ctx context.Context, fields models.ExerciseFields) (models.Exercise, error)
	Find(ctx context.Context, filter models.ExerciseFilter) ([]models.Exercise, error)
	FindByID(ctx context.Context, id string) (models.Exercise, error)
	UpdateByID(ctx context.Context, id string, fields models.ExerciseFields) (models.Exercise, error)
	DeleteByID(ctx context.Context, id string) (models.Exercise, error)
	DeleteMany(ctx context.Context, filter models.ExerciseFilter) (int64, error)
	Ping(ctx context.Context) error
}

// parseID casts a client-supplied id, tagging malformed input as a CastError.
func parseID(op string, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.NewError(models.CastError, op, err)
	}
	return oid, nil
}
