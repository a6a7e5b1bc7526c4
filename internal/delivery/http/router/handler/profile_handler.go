package handler

import (
	"log/slog"
	"net/http"
	"time"

	"flint/internal/delivery/http/response"
	"flint/internal/domain/entity"
	"flint/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateProfileRequest represents the request body for creating a profile
type CreateProfileRequest struct {
	Name      string    `json:"name" validate:"required"`
	Gender    string    `json:"gender" validate:"required"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
	Bio       string    `json:"bio"`
}

// UpdateProfileRequest represents the request body for partial profile edits
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// UpdateLocationRequest represents the request body for a location update
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	IsVirtual bool    `json:"is_virtual"`
}

// RegisterDeviceRequest represents the request body for a device registration
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// CreateProfile handles creating the authenticated user's profile
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user := &entity.User{
		ID:        userID,
		Name:      req.Name,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
		Bio:       req.Bio,
	}

	created, err := h.profileUC.CreateProfile(c.Request().Context(), user)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created, "Profile created successfully")
}

// GetMyProfile handles retrieving the authenticated user's own profile
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	return h.renderProfile(c, userID)
}

// GetProfile handles retrieving a profile by ID
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	return h.renderProfile(c, c.Param("id"))
}

func (h *ProfileHandler) renderProfile(c echo.Context, userID string) error {
	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles partial edits to the authenticated user's profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	input := &usecase.UpdateProfileInput{
		Name:   req.Name,
		Gender: req.Gender,
		Bio:    req.Bio,
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// UpdateLocation handles updating the authenticated user's location
func (h *ProfileHandler) UpdateLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsVirtual: req.IsVirtual,
	}

	user, err := h.profileUC.UpdateLocation(c.Request().Context(), userID, input, time.Now())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Location updated successfully")
}

// UploadPhoto handles uploading a profile photo as multipart form data
func (h *ProfileHandler) UploadPhoto(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable photo file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.profileUC.UploadPhoto(c.Request().Context(), userID, contentType, file)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"photo_key": key}, "Photo uploaded successfully")
}

// RegisterDevice handles registering a push device for the authenticated user
func (h *ProfileHandler) RegisterDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterDeviceInput{
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	}

	if err := h.profileUC.RegisterDevice(c.Request().Context(), userID, input); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Device registered successfully")
}

// ShareQR renders the authenticated user's profile-share QR code
func (h *ProfileHandler) ShareQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	png, err := h.profileUC.ShareQR(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
