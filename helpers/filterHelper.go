package helpers

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"golang-exercisebackend/models"
)

// ErrMissingFilter is returned when a delete-by-filter request names none
// of the exercise fields.
var ErrMissingFilter = errors.New("missing required query parameter")

// ListFilter builds a filter from every non-empty exercise field in query.
// reps and weight are compared as numbers.
func ListFilter(query url.Values) models.ExerciseFilter {
	var filter models.ExerciseFilter
	if v := query.Get("name"); v != "" {
		filter.Name = &v
	}
	if v := query.Get("reps"); v != "" {
		filter.Reps = toNumber(v)
	}
	if v := query.Get("weight"); v != "" {
		filter.Weight = toNumber(v)
	}
	if v := query.Get("unit"); v != "" {
		filter.Unit = &v
	}
	if v := query.Get("date"); v != "" {
		filter.Date = &v
	}
	return filter
}

// DeleteFilter picks exactly one field to filter on, taking the first
// non-empty one in the order name, reps, weight, unit, date. Any other
// fields in the query are ignored.
func DeleteFilter(query url.Values) (models.ExerciseFilter, error) {
	var filter models.ExerciseFilter
	switch {
	case query.Get("name") != "":
		name := query.Get("name")
		filter.Name = &name
	case query.Get("reps") != "":
		filter.Reps = toNumber(query.Get("reps"))
	case query.Get("weight") != "":
		filter.Weight = toNumber(query.Get("weight"))
	case query.Get("unit") != "":
		unit := query.Get("unit")
		filter.Unit = &unit
	case query.Get("date") != "":
		date := query.Get("date")
		filter.Date = &date
	default:
		return filter, ErrMissingFilter
	}
	return filter, nil
}

// toNumber converts a query value to a number. Unparseable input becomes
// NaN, which no stored record equals.
func toNumber(v string) *float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		n = math.NaN()
	}
	return &n
}
