package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"exercisetracker/internal/domain"
	"exercisetracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// rawString captures a JSON field as its literal text whether it arrives as a
// string or a number. Interpretation (numeric coercion, presence checks) is
// deferred to the service layer so that user resolution can run first.
type rawString string

func (v *rawString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = rawString(s)
		return nil
	}
	*v = rawString(b)
	return nil
}

// AddExerciseRequest defines the expected payload for adding an exercise.
// Accepted as JSON or form-encoded; duration may be a number or a numeric
// string on the wire.
type AddExerciseRequest struct {
	Description string    `json:"description" form:"description"`
	Duration    rawString `json:"duration" form:"duration"`
	Date        string    `json:"date" form:"date"`
}

// AddExerciseResponse is the DTO returned after adding an exercise.
// ID carries the owning user's id, not the exercise's; existing clients
// depend on that.
type AddExerciseResponse struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
	ID          string  `json:"id"`
}

// LogEntryResponse is one shaped entry of a user's exercise log.
type LogEntryResponse struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// LogResponse is the DTO for the log query. From/To are echoed whenever the
// corresponding query parameter was supplied, even if it contributed no
// filter bound.
type LogResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	From     string             `json:"from,omitempty"`
	To       string             `json:"to,omitempty"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

// MapLogToResponse converts a service.Log plus the raw query into the
// response DTO.
func MapLogToResponse(result *service.Log, query service.LogQuery) LogResponse {
	entries := make([]LogEntryResponse, 0, len(result.Exercises))
	for _, exercise := range result.Exercises {
		entries = append(entries, LogEntryResponse{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        domain.FormatDate(exercise.Date),
		})
	}

	return LogResponse{
		ID:       result.User.ID.Hex(),
		Username: result.User.Username,
		From:     echoDate(query.From),
		To:       echoDate(query.To),
		Count:    len(entries),
		Log:      entries,
	}
}

// echoDate renders a supplied from/to parameter for the response: the
// formatted calendar date when it parses, the raw string otherwise. Empty
// input stays empty so omitempty drops the field.
func echoDate(raw string) string {
	if raw == "" {
		return ""
	}
	if t, ok := domain.ParseDate(raw); ok {
		return domain.FormatDate(t)
	}
	return raw
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	// A malformed id cannot reference any user, so it maps to not-found
	// rather than a validation error.
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, exercise, err := h.exerciseService.AddExercise(
		c.Request.Context(),
		userID,
		req.Description,
		string(req.Duration),
		req.Date,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to add exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, AddExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        domain.FormatDate(exercise.Date),
		ID:          user.ID.Hex(),
	})
}

// GetLog handles GET /api/users/:id/logs.
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	query := service.LogQuery{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	}

	result, err := h.exerciseService.GetLog(c.Request.Context(), userID, query)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve log.")
		}
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(result, query))
}
