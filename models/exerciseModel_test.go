package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validFields() ExerciseFields {
	return ExerciseFields{Name: "Bench Press", Reps: 10, Weight: 135, Unit: "lbs", Date: "01-25-24"}
}

func TestParseExerciseFieldsValid(t *testing.T) {
	fields, err := ParseExerciseFields([]byte(`{"name":"Bench Press","reps":10,"weight":135,"unit":"lbs","date":"01-25-24"}`))
	require.NoError(t, err)
	assert.Equal(t, validFields(), fields)
}

func TestParseExerciseFieldsNumericStrings(t *testing.T) {
	fields, err := ParseExerciseFields([]byte(`{"name":"Squat","reps":"5","weight":"225","unit":"lbs","date":"02-01-24"}`))
	require.NoError(t, err)
	assert.Equal(t, float64(5), fields.Reps)
	assert.Equal(t, float64(225), fields.Weight)
}

func TestParseExerciseFieldsShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"reps":10,"weight":150,"unit":"kgs","date":"03-15-24"}`},
		{"extra property", `{"name":"Row","reps":10,"weight":150,"unit":"kgs","date":"03-15-24","notes":"x"}`},
		{"swapped property", `{"title":"Row","reps":10,"weight":150,"unit":"kgs","date":"03-15-24"}`},
		{"empty object", `{}`},
		{"array", `[1,2,3]`},
		{"null", `null`},
		{"not json", `name=Row`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExerciseFields([]byte(tt.body))
			require.Error(t, err)
			assert.Equal(t, ShapeError, KindOf(err))
		})
	}
}

func TestParseExerciseFieldsWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"reps not numeric", `{"name":"Row","reps":"ten","weight":150,"unit":"kgs","date":"03-15-24"}`},
		{"weight null", `{"name":"Row","reps":10,"weight":null,"unit":"kgs","date":"03-15-24"}`},
		{"name is object", `{"name":{"x":1},"reps":10,"weight":150,"unit":"kgs","date":"03-15-24"}`},
		{"unit is number", `{"name":"Row","reps":10,"weight":150,"unit":5,"date":"03-15-24"}`},
		{"date is bool", `{"name":"Row","reps":10,"weight":150,"unit":"kgs","date":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExerciseFields([]byte(tt.body))
			require.Error(t, err)
			assert.Equal(t, FieldValidationError, KindOf(err))
		})
	}
}

func TestValidateAcceptsValidFields(t *testing.T) {
	assert.NoError(t, validFields().Validate())

	kgs := validFields()
	kgs.Unit = UnitKilograms
	assert.NoError(t, kgs.Validate())
}

func TestValidateRejectsFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExerciseFields)
		msg    string
	}{
		{"empty name", func(f *ExerciseFields) { f.Name = "" }, "Path `name` is required."},
		{"zero reps", func(f *ExerciseFields) { f.Reps = 0 }, "The number 0 is not a valid number of reps."},
		{"fractional reps", func(f *ExerciseFields) { f.Reps = 10.5 }, "The number 10.5 is not a valid number of reps."},
		{"negative weight", func(f *ExerciseFields) { f.Weight = -1 }, "The number -1 is not a valid weight."},
		{"bad unit", func(f *ExerciseFields) { f.Unit = "pounds" }, "pounds is not a valid unit."},
		{"four digit year first", func(f *ExerciseFields) { f.Date = "2023-01-25" }, "2023-01-25 is not a valid date format."},
		{"four digit year last", func(f *ExerciseFields) { f.Date = "01-25-2024" }, "01-25-2024 is not a valid date format."},
		{"trailing text", func(f *ExerciseFields) { f.Date = "01-25-24x" }, "01-25-24x is not a valid date format."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)

			err := fields.Validate()
			require.Error(t, err)
			assert.Equal(t, FieldValidationError, KindOf(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	err := ExerciseFields{Name: "Row", Reps: 0, Weight: 0, Unit: "stone", Date: "today"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reps")
	assert.Contains(t, err.Error(), "weight")
	assert.Contains(t, err.Error(), "stone is not a valid unit.")
	assert.Contains(t, err.Error(), "today is not a valid date format.")
}

func TestExerciseSchemaIsBuiltOnce(t *testing.T) {
	assert.Same(t, exerciseSchema(), exerciseSchema())
}

func TestToExercise(t *testing.T) {
	id := primitive.NewObjectID()
	exercise := validFields().ToExercise(id)
	assert.Equal(t, Exercise{ID: id, Name: "Bench Press", Reps: 10, Weight: 135, Unit: "lbs", Date: "01-25-24"}, exercise)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Unhandled, KindOf(errors.New("boom")))
	assert.Equal(t, Unhandled, KindOf(nil))

	wrapped := errors.Join(errors.New("context"), NewError(CastError, "find exercise", errors.New("bad hex")))
	assert.Equal(t, CastError, KindOf(wrapped))
	assert.Equal(t, "CastError", CastError.String())
}
