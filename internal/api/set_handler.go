package api

import (
	"errors"
	"net/http"
	"time"

	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetHandler holds the set service dependency.
type SetHandler struct {
	setService service.SetService
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(setService service.SetService) *SetHandler {
	return &SetHandler{setService: setService}
}

// --- DTOs ---

// SetRowRequest is one weight/reps row of a batch.
type SetRowRequest struct {
	Weight float64 `json:"weight" binding:"min=0"`
	Reps   int     `json:"reps" binding:"required,min=1"`
}

// CreateSetsRequest defines the expected JSON for a batch set submission.
// The exercise comes from the route, not the body.
type CreateSetsRequest struct {
	Sets []SetRowRequest `json:"sets" binding:"required,min=1,dive"`
}

// SetResponse is the DTO for returning set details.
type SetResponse struct {
	ID         string    `json:"id"`
	ExerciseID string    `json:"exerciseId"`
	WorkoutID  string    `json:"workoutId"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MapSetToResponse converts a domain.Set to SetResponse DTO.
func MapSetToResponse(set *domain.Set) SetResponse {
	if set == nil {
		return SetResponse{}
	}
	return SetResponse{
		ID:         set.ID.Hex(),
		ExerciseID: set.ExerciseID.Hex(),
		WorkoutID:  set.WorkoutID.Hex(),
		Weight:     set.Weight,
		Reps:       set.Reps,
		CreatedAt:  set.CreatedAt,
	}
}

// MapSetsToResponse converts a slice of domain.Set to DTOs.
func MapSetsToResponse(sets []domain.Set) []SetResponse {
	responses := make([]SetResponse, len(sets))
	for i, set := range sets {
		responses[i] = MapSetToResponse(&set)
	}
	return responses
}

// --- Handler Methods ---

// CreateSets godoc
// @Summary Log a batch of sets for an exercise
// @Description Inserts all rows or none; one invalid row rejects the batch.
// @Tags Sets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param sets body CreateSetsRequest true "Batch of weight/reps rows"
// @Success 201 {array} SetResponse "Created sets"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id}/sets [post]
func (h *SetHandler) CreateSets(c *gin.Context) {
	var req CreateSetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID.")
		return
	}

	inputs := make([]service.SetInput, len(req.Sets))
	for i, row := range req.Sets {
		inputs[i] = service.SetInput{Weight: row.Weight, Reps: row.Reps}
	}

	sets, err := h.setService.CreateSets(c.Request.Context(), userID, exerciseID, inputs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrInvalidSet):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrExerciseNotFound), errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create sets.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapSetsToResponse(sets))
}

// GetSetsByExerciseID godoc
// @Summary List the sets logged for an exercise
// @Tags Sets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {array} SetResponse "List of sets"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id}/sets [get]
func (h *SetHandler) GetSetsByExerciseID(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID.")
		return
	}

	sets, err := h.setService.GetSetsByExerciseID(c.Request.Context(), userID, exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) || errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve sets.")
		}
		return
	}

	if sets == nil {
		c.JSON(http.StatusOK, []SetResponse{}) // Return empty array
		return
	}

	c.JSON(http.StatusOK, MapSetsToResponse(sets))
}
