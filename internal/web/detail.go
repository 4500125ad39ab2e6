package web

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"gympal/workout-app/internal/cache"
	"gympal/workout-app/internal/catalog"
	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// exerciseCard is the per-exercise block on the detail page: the exercise, its
// cached set list and the batch entry form for new sets.
type exerciseCard struct {
	Exercise domain.Exercise
	Sets     QueryView // Data: []domain.Set
	Form     SetForm
}

type workoutDetailData struct {
	Title        string
	Flash        string
	Authed       bool
	Banner       string
	Workout      QueryView // Data: *domain.Workout
	Exercises    QueryView // Data: []exerciseCard
	Suggestions  []catalog.Suggestion
	ExerciseForm ExerciseForm
	ProgressJSON template.JS
}

// detailRender carries per-request overrides into renderWorkoutDetail: a
// rejected form is re-rendered with the user's values and inline errors
// instead of the pristine defaults.
type detailRender struct {
	exerciseForm *ExerciseForm
	setForms     map[string]SetForm // keyed by exercise ID hex
	banner       string
	flash        string
}

// WorkoutDetail renders one workout with its exercise list, per-exercise set
// lists, catalog suggestions and the progress chart.
func (h *Handlers) WorkoutDetail(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		setFlash(c, "Workout not found")
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}
	h.renderWorkoutDetail(c, userID, workoutID, detailRender{flash: takeFlash(c)})
}

func (h *Handlers) renderWorkoutDetail(c *gin.Context, userID, workoutID primitive.ObjectID, opts detailRender) {
	ctx := c.Request.Context()

	// The workout header and the exercise list are independent queries, so
	// they are fetched side by side the way the original screen mounted them.
	var workoutEntry, exercisesEntry cache.Entry
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		workoutEntry = h.cache.Query(ctx, keyGetWorkoutByID(userID, workoutID), func(ctx context.Context) (interface{}, error) {
			return h.client.GetWorkoutByID(ctx, userID, workoutID)
		})
	}()
	go func() {
		defer wg.Done()
		exercisesEntry = h.cache.Query(ctx, keyGetExercises(userID, workoutID), func(ctx context.Context) (interface{}, error) {
			return h.client.GetExercises(ctx, userID, workoutID)
		})
	}()
	wg.Wait()

	if workoutEntry.Status == cache.StatusError && errors.Is(workoutEntry.Err, service.ErrWorkoutNotFound) {
		setFlash(c, "Workout not found")
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}

	data := workoutDetailData{
		Title:   "Workout",
		Flash:   opts.flash,
		Authed:  true,
		Banner:  opts.banner,
		Workout: queryView(workoutEntry),
	}

	if workout, ok := workoutEntry.Data.(*domain.Workout); ok && workout != nil {
		data.Title = workout.Name
		data.Suggestions = catalog.ForType(workout.Type)
	}
	if opts.exerciseForm != nil {
		data.ExerciseForm = *opts.exerciseForm
	}

	exercisesView := queryView(exercisesEntry)
	if exercises, ok := exercisesEntry.Data.([]domain.Exercise); ok {
		cards := make([]exerciseCard, 0, len(exercises))
		for _, exercise := range exercises {
			exerciseID := exercise.ID
			setsEntry := h.cache.Query(ctx, keyGetSetsByExerciseID(userID, exerciseID), func(ctx context.Context) (interface{}, error) {
				return h.client.GetSetsByExerciseID(ctx, userID, exerciseID)
			})
			form, ok := opts.setForms[exercise.ID.Hex()]
			if !ok {
				form = NewSetForm()
			}
			cards = append(cards, exerciseCard{
				Exercise: exercise,
				Sets:     queryView(setsEntry),
				Form:     form,
			})
		}
		exercisesView = exercisesView.withData(cards)
	}
	data.Exercises = exercisesView

	// Progress is derived from the set data above, so it is recomputed per
	// render rather than cached under a key no mutation invalidates.
	if progress, err := h.client.GetWorkoutProgress(ctx, userID, workoutID); err == nil {
		if encoded, err := json.Marshal(progress); err == nil {
			data.ProgressJSON = template.JS(encoded)
		}
	}

	c.HTML(http.StatusOK, "workout_detail.html", data)
}

// CreateExercise adds an exercise to the workout — from the free-text form or
// a catalog suggestion, both posting the same field to the same endpoint —
// then invalidates this workout's exercise-list query so the new exercise
// appears on the next render. A sibling workout's list keeps its entry.
func (h *Handlers) CreateExercise(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		setFlash(c, "Workout not found")
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}

	_ = c.Request.ParseForm()
	form := ParseExerciseForm(c.Request.PostForm)
	if !form.Validate() {
		h.renderWorkoutDetail(c, userID, workoutID, detailRender{exerciseForm: &form})
		return
	}

	if _, err := h.client.CreateExercise(c.Request.Context(), userID, workoutID, form.Name.Value); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			setFlash(c, "Workout not found")
			c.Redirect(http.StatusSeeOther, "/workouts")
			return
		}
		h.renderWorkoutDetail(c, userID, workoutID, detailRender{
			exerciseForm: &form,
			banner:       "Could not add exercise, please try again",
		})
		return
	}

	h.cache.Invalidate(keyGetExercises(userID, workoutID))
	c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
}

// DeleteExercise removes one exercise and invalidates the owning workout's
// exercise-list query.
func (h *Handlers) DeleteExercise(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		setFlash(c, "Workout not found")
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		setFlash(c, "Exercise not found")
		c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
		return
	}

	if _, err := h.client.DeleteExercise(c.Request.Context(), userID, exerciseID); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			setFlash(c, "Exercise not found")
		} else {
			setFlash(c, "Could not delete exercise, please try again")
		}
		c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
		return
	}

	h.cache.Invalidate(keyGetExercises(userID, workoutID))
	c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
}

// SubmitSets drives the dynamic set form of one exercise. The action field
// selects the operation: "append" adds an empty row, "remove:<i>" drops the
// row at position i (later rows renumber, values intact), "save" validates the
// whole batch and records it. Append and remove are pure form-state edits —
// they re-render the page without any remote call.
func (h *Handlers) SubmitSets(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		setFlash(c, "Workout not found")
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		setFlash(c, "Exercise not found")
		c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
		return
	}

	_ = c.Request.ParseForm()
	form := ParseSetForm(c.Request.PostForm)
	rerender := func() {
		h.renderWorkoutDetail(c, userID, workoutID, detailRender{
			setForms: map[string]SetForm{exerciseID.Hex(): form},
		})
	}

	action := c.PostForm("action")
	switch {
	case action == "append":
		form.Append()
		rerender()
		return
	case strings.HasPrefix(action, "remove:"):
		i, err := strconv.Atoi(strings.TrimPrefix(action, "remove:"))
		if err == nil {
			form.RemoveAt(i)
		}
		rerender()
		return
	}

	inputs, ok := form.Validate()
	if !ok {
		// Invalid rows block the whole batch; nothing reaches the remote layer.
		rerender()
		return
	}

	if _, err := h.client.CreateSets(c.Request.Context(), userID, exerciseID, inputs); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			setFlash(c, "Exercise not found")
			c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
			return
		}
		h.renderWorkoutDetail(c, userID, workoutID, detailRender{
			setForms: map[string]SetForm{exerciseID.Hex(): form},
			banner:   "Could not save sets, please try again",
		})
		return
	}

	h.cache.Invalidate(keyGetSetsByExerciseID(userID, exerciseID))
	c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
}

// CompleteWorkout marks the workout done; the congratulatory text message is
// sent behind the service layer when the account has a phone number.
func (h *Handlers) CompleteWorkout(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		setFlash(c, "Workout not found")
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}

	if err := h.client.CompleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			setFlash(c, "Workout not found")
			c.Redirect(http.StatusSeeOther, "/workouts")
			return
		}
		setFlash(c, "Could not complete workout, please try again")
		c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
		return
	}

	setFlash(c, "Great job on your workout!")
	c.Redirect(http.StatusSeeOther, "/workouts/"+workoutID.Hex())
}
