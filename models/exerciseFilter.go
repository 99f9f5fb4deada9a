package models

import "go.mongodb.org/mongo-driver/bson"

// ExerciseFilter selects records by exact match on any subset of fields.
// A nil field is not part of the filter.
type ExerciseFilter struct {
	Name   *string
	Reps   *float64
	Weight *float64
	Unit   *string
	Date   *string
}

func (f ExerciseFilter) IsEmpty() bool {
	return f.Name == nil && f.Reps == nil && f.Weight == nil && f.Unit == nil && f.Date == nil
}

// Matches reports whether e satisfies every set field. Numeric fields
// compare as numbers, so a NaN filter value matches nothing.
func (f ExerciseFilter) Matches(e Exercise) bool {
	if f.Name != nil && *f.Name != e.Name {
		return false
	}
	if f.Reps != nil && *f.Reps != float64(e.Reps) {
		return false
	}
	if f.Weight != nil && *f.Weight != float64(e.Weight) {
		return false
	}
	if f.Unit != nil && *f.Unit != e.Unit {
		return false
	}
	if f.Date != nil && *f.Date != e.Date {
		return false
	}
	return true
}

// BSON renders the filter as a MongoDB query document.
func (f ExerciseFilter) BSON() bson.M {
	query := bson.M{}
	if f.Name != nil {
		query["name"] = *f.Name
	}
	if f.Reps != nil {
		query["reps"] = *f.Reps
	}
	if f.Weight != nil {
		query["weight"] = *f.Weight
	}
	if f.Unit != nil {
		query["unit"] = *f.Unit
	}
	if f.Date != nil {
		query["date"] = *f.Date
	}
	return query
}
