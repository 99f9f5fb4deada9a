package routes

import (
	controller "golang-exercisebackend/controllers"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup, exercises *controller.ExerciseController) {
	incomingRoutes.POST("/exercises", exercises.CreateExercise())
	incomingRoutes.GET("/exercises", exercises.GetExercises())
	incomingRoutes.GET("/exercises/:id", exercises.GetExercise())
	incomingRoutes.PUT("/exercises/:id", exercises.UpdateExercise())
	incomingRoutes.DELETE("/exercises", exercises.DeleteExercises())
	incomingRoutes.DELETE("/exercises/:id", exercises.DeleteExercise())
}
