package handler

import (
	"log/slog"
	"net/http"
	"time"

	"flint/internal/delivery/http/response"
	"flint/internal/domain/entity"
	"flint/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler holds dependencies for reminder-related handlers
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// ScheduleReminderRequest represents the request body for creating a reminder
type ScheduleReminderRequest struct {
	MatchID     string    `json:"match_id,omitempty"`
	SubjectName string    `json:"subject_name" validate:"required"`
	PlaceName   string    `json:"place_name" validate:"required"`
	Latitude    float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64   `json:"longitude" validate:"min=-180,max=180"`
	EventTime   time.Time `json:"event_time" validate:"required"`
	AlertOffset string    `json:"alert_offset" validate:"required"`
}

// Schedule handles creating a reminder for the authenticated user
func (h *ReminderHandler) Schedule(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ScheduleReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ScheduleReminderInput{
		MatchID:     req.MatchID,
		SubjectName: req.SubjectName,
		PlaceName:   req.PlaceName,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		EventTime:   req.EventTime,
		AlertOffset: entity.AlertOffset(req.AlertOffset),
	}

	reminder, err := h.reminderUC.Schedule(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder scheduled successfully")
}

// List handles listing the authenticated user's reminders
func (h *ReminderHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reminders, err := h.reminderUC.ListReminders(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminders, "Reminders retrieved successfully")
}

// Delete handles deleting one of the authenticated user's reminders
func (h *ReminderHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reminder ID")
	}

	if err := h.reminderUC.Delete(c.Request().Context(), userID, reminderID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Reminder deleted successfully")
}
