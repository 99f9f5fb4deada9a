package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UnitKilograms = "kgs"
	UnitPounds    = "lbs"
)

// RequiredFields is the exact key set accepted on create and update.
var RequiredFields = []string{"name", "reps", "weight", "unit", "date"}

// maxSafeInteger bounds reps and weight to integers JSON clients can represent exactly.
const maxSafeInteger = 1 << 53

var dateRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}$`)

type Exercise struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Name   string             `json:"name" bson:"name"`
	Reps   int                `json:"reps" bson:"reps"`
	Weight int                `json:"weight" bson:"weight"`
	Unit   string             `json:"unit" bson:"unit"`
	Date   string             `json:"date" bson:"date"`
}

// ExerciseFields is a decoded client payload, before field validation.
// Reps and Weight stay float64 so that fractional input reaches the
// integral rule instead of failing the decode.
type ExerciseFields struct {
	Name   string  `json:"name" validate:"required"`
	Reps   float64 `json:"reps" validate:"gt=0,integral"`
	Weight float64 `json:"weight" validate:"gt=0,integral"`
	Unit   string  `json:"unit" validate:"required,oneof=kgs lbs"`
	Date   string  `json:"date" validate:"required,exdate"`
}

var (
	schemaOnce sync.Once
	schema     *validator.Validate
)

// exerciseSchema returns the process-wide validator, registering the
// custom exercise rules the first time it is called.
func exerciseSchema() *validator.Validate {
	schemaOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		})
		_ = v.RegisterValidation("integral", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return f == math.Trunc(f) && f < maxSafeInteger
		})
		_ = v.RegisterValidation("exdate", func(fl validator.FieldLevel) bool {
			return dateRegex.MatchString(fl.Field().String())
		})
		schema = v
	})
	return schema
}

// Validate checks every field rule and returns a FieldValidationError
// listing each violation.
func (f ExerciseFields) Validate() error {
	err := exerciseSchema().Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewError(Unhandled, "validate exercise", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return NewError(FieldValidationError, "validate exercise", errors.New(strings.Join(msgs, "; ")))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "reps":
		return fmt.Sprintf("The number %v is not a valid number of reps.", fe.Value())
	case "weight":
		return fmt.Sprintf("The number %v is not a valid weight.", fe.Value())
	case "unit":
		return fmt.Sprintf("%v is not a valid unit.", fe.Value())
	case "date":
		return fmt.Sprintf("%v is not a valid date format.", fe.Value())
	default:
		return fmt.Sprintf("Path `%s` is required.", fe.Field())
	}
}

// ToExercise builds the stored record. Call it only after Validate.
func (f ExerciseFields) ToExercise(id primitive.ObjectID) Exercise {
	return Exercise{
		ID:     id,
		Name:   f.Name,
		Reps:   int(f.Reps),
		Weight: int(f.Weight),
		Unit:   f.Unit,
		Date:   f.Date,
	}
}

// ParseExerciseFields checks the payload shape and decodes each field.
// A body that is not an object, or whose keys differ from RequiredFields,
// is a ShapeError. A field of the wrong JSON type is a FieldValidationError.
func ParseExerciseFields(body []byte) (ExerciseFields, error) {
	var fields ExerciseFields

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return fields, NewError(ShapeError, "parse exercise", errors.New("body is not a JSON object"))
	}
	if len(raw) != len(RequiredFields) {
		return fields, NewError(ShapeError, "parse exercise", fmt.Errorf("expected %d properties, got %d", len(RequiredFields), len(raw)))
	}
	for _, key := range RequiredFields {
		if _, ok := raw[key]; !ok {
			return fields, NewError(ShapeError, "parse exercise", fmt.Errorf("missing property %q", key))
		}
	}

	var err error
	if fields.Name, err = decodeText(raw["name"]); err != nil {
		return fields, NewError(FieldValidationError, "parse exercise", fmt.Errorf("name: %w", err))
	}
	if fields.Reps, err = decodeNumber(raw["reps"]); err != nil {
		return fields, NewError(FieldValidationError, "parse exercise", fmt.Errorf("reps: %w", err))
	}
	if fields.Weight, err = decodeNumber(raw["weight"]); err != nil {
		return fields, NewError(FieldValidationError, "parse exercise", fmt.Errorf("weight: %w", err))
	}
	if fields.Unit, err = decodeText(raw["unit"]); err != nil {
		return fields, NewError(FieldValidationError, "parse exercise", fmt.Errorf("unit: %w", err))
	}
	if fields.Date, err = decodeText(raw["date"]); err != nil {
		return fields, NewError(FieldValidationError, "parse exercise", fmt.Errorf("date: %w", err))
	}
	return fields, nil
}

func decodeText(raw json.RawMessage) (string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("cast to string failed: %w", err)
	}
	return s, nil
}

// decodeNumber accepts a JSON number or a numeric string.
func decodeNumber(raw json.RawMessage) (float64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("cast to number failed: %w", err)
	}
	if n == "" {
		return 0, errors.New("value is required")
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("cast to number failed: %w", err)
	}
	return f, nil
}
