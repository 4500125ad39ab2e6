package web

import (
	"context"
	"errors"
	"net/http"

	"gympal/workout-app/internal/cache"
	"gympal/workout-app/internal/catalog"
	"gympal/workout-app/internal/domain"
	"gympal/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handlers wires the pages: thin view/controller glue over the DataClient.
// Every read goes through the query cache; every mutation follows the same
// protocol — submit, then invalidate exactly the queries it made stale.
type Handlers struct {
	client        DataClient
	authService   service.AuthService
	cache         *cache.Cache
	sessionMaxAge int
}

// NewHandlers creates the page handler set.
func NewHandlers(client DataClient, authService service.AuthService, queryCache *cache.Cache, sessionMaxAge int) *Handlers {
	if sessionMaxAge <= 0 {
		sessionMaxAge = 24 * 60 * 60
	}
	return &Handlers{
		client:        client,
		authService:   authService,
		cache:         queryCache,
		sessionMaxAge: sessionMaxAge,
	}
}

// --- Landing / auth pages ---

type loginForm struct {
	Email    Field
	Password Field
	Banner   string
}

type registerForm struct {
	Name     Field
	Email    Field
	Password Field
	Banner   string
}

type landingData struct {
	Title    string
	Flash    string
	Authed   bool
	Login    loginForm
	Register registerForm
}

// Landing renders the public page with the login and register forms.
func (h *Handlers) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", landingData{
		Title: "GymPal",
		Flash: takeFlash(c),
	})
}

// Login authenticates the posted credentials and starts a cookie session.
func (h *Handlers) Login(c *gin.Context) {
	form := loginForm{
		Email:    Field{Value: c.PostForm("email")},
		Password: Field{Value: c.PostForm("password")},
	}
	emailOK := form.Email.requireValue()
	passwordOK := form.Password.requireValue()
	if !emailOK || !passwordOK {
		c.HTML(http.StatusOK, "landing.html", landingData{Title: "GymPal", Login: form})
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), form.Email.Value, form.Password.Value)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			form.Banner = "Invalid email or password"
		} else {
			form.Banner = "Something went wrong, please try again"
		}
		c.HTML(http.StatusOK, "landing.html", landingData{Title: "GymPal", Login: form})
		return
	}

	setSessionCookie(c, token, h.sessionMaxAge)
	c.Redirect(http.StatusSeeOther, "/workouts")
}

// Register creates an account and logs it straight in.
func (h *Handlers) Register(c *gin.Context) {
	form := registerForm{
		Name:     Field{Value: c.PostForm("name")},
		Email:    Field{Value: c.PostForm("email")},
		Password: Field{Value: c.PostForm("password")},
	}
	nameOK := form.Name.requireValue()
	emailOK := form.Email.requireValue()
	passwordOK := form.Password.requireValue()
	if !nameOK || !emailOK || !passwordOK {
		c.HTML(http.StatusOK, "landing.html", landingData{Title: "GymPal", Register: form})
		return
	}

	_, err := h.authService.Register(c.Request.Context(), form.Name.Value, form.Email.Value, form.Password.Value)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			form.Banner = "An account with this email already exists"
		} else {
			form.Banner = "Something went wrong, please try again"
		}
		c.HTML(http.StatusOK, "landing.html", landingData{Title: "GymPal", Register: form})
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), form.Email.Value, form.Password.Value)
	if err != nil {
		setFlash(c, "Account created, please log in")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	setSessionCookie(c, token, h.sessionMaxAge)
	c.Redirect(http.StatusSeeOther, "/workouts")
}

// Logout clears the session cookie.
func (h *Handlers) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// --- Workout list ---

type workoutsData struct {
	Title    string
	Flash    string
	Authed   bool
	Workouts QueryView // Data: []domain.Workout
}

// Workouts renders the workout list with per-item delete actions.
func (h *Handlers) Workouts(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	entry := h.cache.Query(c.Request.Context(), keyGetWorkouts(userID), func(ctx context.Context) (interface{}, error) {
		return h.client.GetWorkouts(ctx, userID)
	})

	c.HTML(http.StatusOK, "workouts.html", workoutsData{
		Title:    "View Workouts",
		Flash:    takeFlash(c),
		Authed:   true,
		Workouts: queryView(entry),
	})
}

// DeleteWorkout removes one workout, then invalidates the workout-list query
// so the next render refetches without the deleted item.
func (h *Handlers) DeleteWorkout(c *gin.Context) {
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

	if _, err := h.client.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			setFlash(c, "Workout not found")
		} else {
			setFlash(c, "Could not delete workout, please try again")
		}
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}

	h.cache.Invalidate(keyGetWorkouts(userID))
	c.Redirect(http.StatusSeeOther, "/workouts")
}

// --- Create workout ---

type workoutNewData struct {
	Title  string
	Flash  string
	Authed bool
	Banner string
	Form   WorkoutForm
	Types  []domain.WorkoutType
}

// WorkoutNew renders the create-workout form.
func (h *Handlers) WorkoutNew(c *gin.Context) {
	c.HTML(http.StatusOK, "workout_new.html", workoutNewData{
		Title:  "Create Workout",
		Flash:  takeFlash(c),
		Authed: true,
		Types:  catalog.Types(),
	})
}

// CreateWorkout validates the form and, on success, navigates straight to the
// new workout's detail page without touching any cached query.
func (h *Handlers) CreateWorkout(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	_ = c.Request.ParseForm()
	form := ParseWorkoutForm(c.Request.PostForm)
	if !form.Validate() {
		// Required fields failed; no remote call is made.
		c.HTML(http.StatusOK, "workout_new.html", workoutNewData{
			Title:  "Create Workout",
			Authed: true,
			Form:   form,
			Types:  catalog.Types(),
		})
		return
	}

	workout, err := h.client.CreateWorkout(c.Request.Context(), userID, form.Name.Value, form.Description.Value, form.WorkoutType())
	if err != nil {
		c.HTML(http.StatusOK, "workout_new.html", workoutNewData{
			Title:  "Create Workout",
			Authed: true,
			Banner: "Could not create workout, please try again",
			Form:   form,
			Types:  catalog.Types(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/workouts/"+workout.ID.Hex())
}

// --- Settings ---

type settingsData struct {
	Title     string
	Flash     string
	Authed    bool
	User      QueryView // Data: *domain.User
	AvatarURL string
	Form      ProfileForm
}

// Settings renders the profile page with the edit and delete-account actions.
func (h *Handlers) Settings(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.renderSettings(c, userID, nil, takeFlash(c))
}

func (h *Handlers) renderSettings(c *gin.Context, userID primitive.ObjectID, form *ProfileForm, flash string) {
	entry := h.cache.Query(c.Request.Context(), keyGetUser(userID), func(ctx context.Context) (interface{}, error) {
		return h.client.GetUser(ctx, userID)
	})

	data := settingsData{
		Title:  "Settings",
		Flash:  flash,
		Authed: true,
		User:   queryView(entry),
	}

	if user, ok := entry.Data.(*domain.User); ok && user != nil {
		// Presigned URLs are short-lived, so the avatar link is resolved per
		// render rather than cached.
		if url, err := h.client.AvatarURL(c.Request.Context(), user); err == nil {
			data.AvatarURL = url
		}
		if form == nil {
			form = &ProfileForm{
				Name:        Field{Value: user.Name},
				PhoneNumber: Field{Value: user.PhoneNumber},
			}
		}
	}
	if form != nil {
		data.Form = *form
	}

	c.HTML(http.StatusOK, "settings.html", data)
}

// UpdateProfile applies the edit-profile form, then invalidates the cached
// profile so the page refetches the fresh values.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	_ = c.Request.ParseForm()
	form := ParseProfileForm(c.Request.PostForm)
	if !form.Validate() {
		h.renderSettings(c, userID, &form, "")
		return
	}

	if _, err := h.client.UpdateUser(c.Request.Context(), userID, form.Name.Value, form.PhoneNumber.Value); err != nil {
		setFlash(c, "Could not update profile, please try again")
		c.Redirect(http.StatusSeeOther, "/settings")
		return
	}

	h.cache.Invalidate(keyGetUser(userID))
	setFlash(c, "Profile updated")
	c.Redirect(http.StatusSeeOther, "/settings")
}

// DeleteAccount removes the account, drops every cached query for the session
// and navigates to the landing page. Nothing is invalidated piecemeal: the
// session is gone.
func (h *Handlers) DeleteAccount(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.client.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			setFlash(c, "Account not found")
		} else {
			setFlash(c, "Could not delete account, please try again")
		}
		c.Redirect(http.StatusSeeOther, "/settings")
		return
	}

	h.cache.Clear()
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}
