package database

import (
	"context"
	"sync"

	"golang-exercisebackend/models"
	"golang-exercisebackend/observability"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryExerciseStore keeps exercises in process memory for local
// development and tests. Ids are ObjectIDs so cast behaviour matches Mongo.
type InMemoryExerciseStore struct {
	mu        sync.RWMutex
	order     []primitive.ObjectID
	exercises map[primitive.ObjectID]models.Exercise
}

func NewInMemoryExerciseStore() *InMemoryExerciseStore {
	return &InMemoryExerciseStore{
		exercises: make(map[primitive.ObjectID]models.Exercise),
	}
}

func (s *InMemoryExerciseStore) Create(ctx context.Context, fields models.ExerciseFields) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("create", outcomeOf(err)) }()

	if err = fields.Validate(); err != nil {
		return models.Exercise{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exercise = fields.ToExercise(primitive.NewObjectID())
	s.exercises[exercise.ID] = exercise
	s.order = append(s.order, exercise.ID)
	return exercise, nil
}

// Find returns matches in insertion order.
func (s *InMemoryExerciseStore) Find(ctx context.Context, filter models.ExerciseFilter) ([]models.Exercise, error) {
	defer observability.RecordStoreOperation("find", "ok")

	s.mu.RLock()
	defer s.mu.RUnlock()

	found := []models.Exercise{}
	for _, id := range s.order {
		if exercise := s.exercises[id]; filter.Matches(exercise) {
			found = append(found, exercise)
		}
	}
	return found, nil
}

func (s *InMemoryExerciseStore) FindByID(ctx context.Context, id string) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("find_by_id", outcomeOf(err)) }()

	oid, err := parseID("find exercise", id)
	if err != nil {
		return models.Exercise{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	exercise, ok := s.exercises[oid]
	if !ok {
		return models.Exercise{}, ErrNotFound
	}
	return exercise, nil
}

func (s *InMemoryExerciseStore) UpdateByID(ctx context.Context, id string, fields models.ExerciseFields) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("update_by_id", outcomeOf(err)) }()

	if err = fields.Validate(); err != nil {
		return models.Exercise{}, err
	}
	oid, err := parseID("update exercise", id)
	if err != nil {
		return models.Exercise{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exercises[oid]; !ok {
		return models.Exercise{}, ErrNotFound
	}
	exercise = fields.ToExercise(oid)
	s.exercises[oid] = exercise
	return exercise, nil
}

func (s *InMemoryExerciseStore) DeleteByID(ctx context.Context, id string) (exercise models.Exercise, err error) {
	defer func() { observability.RecordStoreOperation("delete_by_id", outcomeOf(err)) }()

	oid, err := parseID("delete exercise", id)
	if err != nil {
		return models.Exercise{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, ok := s.exercises[oid]
	if !ok {
		return models.Exercise{}, ErrNotFound
	}
	s.remove(oid)
	return exercise, nil
}

func (s *InMemoryExerciseStore) DeleteMany(ctx context.Context, filter models.ExerciseFilter) (int64, error) {
	defer observability.RecordStoreOperation("delete_many", "ok")

	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range append([]primitive.ObjectID(nil), s.order...) {
		if filter.Matches(s.exercises[id]) {
			s.remove(id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *InMemoryExerciseStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// remove must be called with mu held.
func (s *InMemoryExerciseStore) remove(id primitive.ObjectID) {
	delete(s.exercises, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
