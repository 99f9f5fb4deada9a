package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang-exercisebackend/database"
	"golang-exercisebackend/helpers"
	"golang-exercisebackend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInvalidRequest = "Invalid request"
	msgNotFound       = "Not found"
	msgMissingFilter  = "Missing required query parameter."
)

type ExerciseController struct {
	store          database.ExerciseStore
	requestTimeout time.Duration
	log            *zap.SugaredLogger
}

// NewExerciseController wires the handlers to store. A zero requestTimeout
// leaves store calls bound only to the request context.
func NewExerciseController(store database.ExerciseStore, requestTimeout time.Duration, log *zap.SugaredLogger) *ExerciseController {
	return &ExerciseController{store: store, requestTimeout: requestTimeout, log: log}
}

func (ec *ExerciseController) CreateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, ok := ec.bindExercise(c)
		if !ok {
			return
		}

		ctx, cancel := ec.storeContext(c)
		defer cancel()

		exercise, err := ec.store.Create(ctx, fields)
		if err != nil {
			ec.handleStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, exercise)
	}
}

func (ec *ExerciseController) GetExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ec.storeContext(c)
		defer cancel()

		exercises, err := ec.store.Find(ctx, helpers.ListFilter(c.Request.URL.Query()))
		if err != nil {
			ec.handleStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercises)
	}
}

func (ec *ExerciseController) GetExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ec.storeContext(c)
		defer cancel()

		exercise, err := ec.store.FindByID(ctx, c.Param("id"))
		if err != nil {
			ec.handleStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercise)
	}
}

// UpdateExercise checks the body shape before looking at the id, so a bad
// body against an unknown id is a 400 and never a 404.
func (ec *ExerciseController) UpdateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, ok := ec.bindExercise(c)
		if !ok {
			return
		}

		ctx, cancel := ec.storeContext(c)
		defer cancel()

		exercise, err := ec.store.UpdateByID(ctx, c.Param("id"), fields)
		if err != nil {
			ec.handleStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercise)
	}
}

func (ec *ExerciseController) DeleteExercises() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := helpers.DeleteFilter(c.Request.URL.Query())
		if err != nil {
			respondError(c, http.StatusBadRequest, msgMissingFilter)
			return
		}

		ctx, cancel := ec.storeContext(c)
		defer cancel()

		deleted, err := ec.store.DeleteMany(ctx, filter)
		if err != nil {
			ec.handleStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
	}
}

func (ec *ExerciseController) DeleteExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ec.storeContext(c)
		defer cancel()

		if _, err := ec.store.DeleteByID(ctx, c.Param("id")); err != nil {
			ec.handleStoreError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// bindExercise reads the body and runs the shape check. It writes the 400
// itself and reports false when the request must stop.
func (ec *ExerciseController) bindExercise(c *gin.Context) (models.ExerciseFields, bool) {
	body, err := c.GetRawData()
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return models.ExerciseFields{}, false
	}

	fields, err := models.ParseExerciseFields(body)
	if err != nil {
		ec.log.Debugw("Rejected exercise payload", "error", err)
		respondError(c, http.StatusBadRequest, msgInvalidRequest)
		return models.ExerciseFields{}, false
	}
	return fields, true
}

// handleStoreError maps store outcomes to responses. Errors without a
// known kind go to the error middleware as a 500.
func (ec *ExerciseController) handleStoreError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	}

	switch models.KindOf(err) {
	case models.ShapeError, models.FieldValidationError:
		ec.log.Debugw("Exercise failed validation", "error", err)
		respondError(c, http.StatusBadRequest, msgInvalidRequest)
	case models.CastError:
		respondError(c, http.StatusNotFound, msgNotFound)
	default:
		_ = c.Error(err)
		c.Abort()
	}
}

func (ec *ExerciseController) storeContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if ec.requestTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), ec.requestTimeout)
	}
	return context.WithCancel(c.Request.Context())
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"Error": msg})
}
