package database

import (
	"context"
	"testing"

	"golang-exercisebackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func benchPress() models.ExerciseFields {
	return models.ExerciseFields{Name: "Bench Press", Reps: 10, Weight: 135, Unit: "lbs", Date: "01-25-24"}
}

func squat() models.ExerciseFields {
	return models.ExerciseFields{Name: "Squat", Reps: 5, Weight: 100, Unit: "kgs", Date: "01-26-24"}
}

func TestInMemoryCreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	created, err := store.Create(ctx, benchPress())
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	found, err := store.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestInMemoryCreateRejectsInvalidFields(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	fields := benchPress()
	fields.Reps = 0
	_, err := store.Create(ctx, fields)
	assert.Equal(t, models.FieldValidationError, models.KindOf(err))

	all, err := store.Find(ctx, models.ExerciseFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInMemoryFind(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	bench, err := store.Create(ctx, benchPress())
	require.NoError(t, err)
	sq, err := store.Create(ctx, squat())
	require.NoError(t, err)

	all, err := store.Find(ctx, models.ExerciseFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.Exercise{bench, sq}, all)

	unit := "kgs"
	matched, err := store.Find(ctx, models.ExerciseFilter{Unit: &unit})
	require.NoError(t, err)
	assert.Equal(t, []models.Exercise{sq}, matched)

	reps := 99.0
	none, err := store.Find(ctx, models.ExerciseFilter{Reps: &reps})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestInMemoryFindByIDErrors(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	_, err := store.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindByID(ctx, "not-an-id")
	assert.Equal(t, models.CastError, models.KindOf(err))
}

func TestInMemoryUpdateByID(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	created, err := store.Create(ctx, benchPress())
	require.NoError(t, err)

	updated, err := store.UpdateByID(ctx, created.ID.Hex(), squat())
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Squat", updated.Name)
	assert.Equal(t, 5, updated.Reps)

	found, err := store.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestInMemoryUpdateByIDErrors(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	created, err := store.Create(ctx, benchPress())
	require.NoError(t, err)

	_, err = store.UpdateByID(ctx, primitive.NewObjectID().Hex(), squat())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdateByID(ctx, "bad", squat())
	assert.Equal(t, models.CastError, models.KindOf(err))

	// Field validation runs before the id is cast.
	invalid := squat()
	invalid.Unit = "pounds"
	_, err = store.UpdateByID(ctx, "bad", invalid)
	assert.Equal(t, models.FieldValidationError, models.KindOf(err))

	_, err = store.UpdateByID(ctx, created.ID.Hex(), invalid)
	assert.Equal(t, models.FieldValidationError, models.KindOf(err))

	found, err := store.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "lbs", found.Unit)
}

func TestInMemoryDeleteByID(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	created, err := store.Create(ctx, benchPress())
	require.NoError(t, err)

	deleted, err := store.DeleteByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = store.DeleteByID(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.DeleteByID(ctx, "123")
	assert.Equal(t, models.CastError, models.KindOf(err))
}

func TestInMemoryDeleteMany(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryExerciseStore()

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, benchPress())
		require.NoError(t, err)
	}
	sq, err := store.Create(ctx, squat())
	require.NoError(t, err)

	name := "Bench Press"
	count, err := store.DeleteMany(ctx, models.ExerciseFilter{Name: &name})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = store.DeleteMany(ctx, models.ExerciseFilter{Name: &name})
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	remaining, err := store.Find(ctx, models.ExerciseFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.Exercise{sq}, remaining)
}

func TestInMemoryPing(t *testing.T) {
	store := NewInMemoryExerciseStore()
	assert.NoError(t, store.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}
