package controllers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/delivery/http/middleware"
	"communitycalendar/internal/domain"
	"communitycalendar/internal/i18n"
)

// dateLayouts are the accepted ISO-8601 shapes for startDate/endDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// truthy mirrors JavaScript Boolean() coercion for the isOnline field,
// which older clients send as a string or number.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}

// EventRequest is the request body for POST /api/events and
// PUT /api/events/{eventID}. Optional fields omitted from the body are
// stored as null.
type EventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	ImageURL    *string `json:"imageUrl"`
	Speaker     *string `json:"speaker"`
	Location    *string `json:"location"`
	Platform    *string `json:"platform"`
	IsOnline    any     `json:"isOnline"`
}

// DeleteEventResponse is the response body for DELETE /api/events/{eventID}.
type DeleteEventResponse struct {
	Success bool `json:"success"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	T       *i18n.Translator
}

func NewEventController(logger *slog.Logger, svc domain.EventService, t *i18n.Translator) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		T:       t,
	}
}

func (c *EventController) msg(r *http.Request, key string) string {
	return c.T.T(helpers.Locale(r), key)
}

func (c *EventController) logErr(r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}

// eventInput validates required fields and date formats and builds a
// domain.EventInput. On failure it writes a 400 and returns false.
func (c *EventController) eventInput(w http.ResponseWriter, r *http.Request) (domain.EventInput, bool) {
	var req EventRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, c.msg(r, "error.invalid_body"))
		return domain.EventInput{}, false
	}
	if req.Title == "" || req.StartDate == "" || req.EndDate == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, c.msg(r, "error.missing_fields"))
		return domain.EventInput{}, false
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, c.msg(r, "error.invalid_date"))
		return domain.EventInput{}, false
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, c.msg(r, "error.invalid_date"))
		return domain.EventInput{}, false
	}
	return domain.EventInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		ImageURL:    req.ImageURL,
		Speaker:     req.Speaker,
		Location:    req.Location,
		Platform:    req.Platform,
		IsOnline:    truthy(req.IsOnline),
	}, true
}

// List godoc
// @Summary List all events
// @Description Returns all events ordered by start time ascending. Public.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.logErr(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, c.msg(r, "error.events_fetch_failed"))
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetByID godoc
// @Summary Get an event by ID
// @Description Returns a single event. Public.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetByID(r.Context(), r.PathValue("eventID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, c.msg(r, "error.event_not_found"))
			return
		}
		c.logErr(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, c.msg(r, "error.event_fetch_failed"))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create a new event
// @Description Creates an event. Requires an authenticated session. Title, startDate, and endDate are mandatory; string fields are trimmed before persistence.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, c.msg(r, "error.unauthorized"))
		return
	}
	in, ok := c.eventInput(w, r)
	if !ok {
		return
	}
	event, err := c.Service.Create(r.Context(), in)
	if err != nil {
		c.logErr(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, c.msg(r, "error.event_create_failed"))
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Description Full replace of the event's fields. Requires an authenticated session. An unknown identifier surfaces as 500.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, c.msg(r, "error.unauthorized"))
		return
	}
	in, ok := c.eventInput(w, r)
	if !ok {
		return
	}
	// Store-level failures, including unknown identifiers, are reported
	// generically; see the error handling notes in DESIGN.md.
	event, err := c.Service.Update(r.Context(), r.PathValue("eventID"), in)
	if err != nil {
		c.logErr(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, c.msg(r, "error.event_update_failed"))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes an event by ID. Requires an authenticated session. An unknown identifier surfaces as 500.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} DeleteEventResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, c.msg(r, "error.unauthorized"))
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("eventID")); err != nil {
		c.logErr(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, c.msg(r, "error.event_delete_failed"))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, DeleteEventResponse{Success: true})
}
