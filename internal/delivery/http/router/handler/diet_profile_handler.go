package handler

import (
	"log/slog"
	"net/http"

	"mealkit/internal/delivery/http/response"
	"mealkit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DietProfileHandler holds dependencies for diet profile handlers.
type DietProfileHandler struct {
	uc     usecase.DietProfileUsecase
	logger *slog.Logger
}

// NewDietProfileHandler is the constructor for DietProfileHandler, injected by Fx.
func NewDietProfileHandler(uc usecase.DietProfileUsecase, logger *slog.Logger) *DietProfileHandler {
	return &DietProfileHandler{uc: uc, logger: logger}
}

// Get returns the authenticated user's diet profile.
func (h *DietProfileHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetDietProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

type saveDietProfileRequest struct {
	Age                 int      `json:"age" validate:"gte=0"`
	Gender              string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Height              float64  `json:"height" validate:"gte=0"`
	Weight              float64  `json:"weight" validate:"gte=0"`
	ActivityLevel       string   `json:"activityLevel"`
	HealthGoals         []string `json:"healthGoals"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	PreferredCuisines   []string `json:"preferredCuisines"`
	Allergies           string   `json:"allergies"`
	CalorieTarget       int      `json:"calorieTarget" validate:"gte=0"`
}

// Save upserts the authenticated user's diet profile.
func (h *DietProfileHandler) Save(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req saveDietProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diet profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.SaveDietProfile(c.Request().Context(), userID, usecase.DietProfileInput{
		Age:                 req.Age,
		Gender:              req.Gender,
		Height:              req.Height,
		Weight:              req.Weight,
		ActivityLevel:       req.ActivityLevel,
		HealthGoals:         req.HealthGoals,
		DietaryRestrictions: req.DietaryRestrictions,
		PreferredCuisines:   req.PreferredCuisines,
		Allergies:           req.Allergies,
		CalorieTarget:       req.CalorieTarget,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "飲食檔案已儲存")
}

// Delete removes the authenticated user's diet profile.
func (h *DietProfileHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteDietProfile(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "飲食檔案已刪除")
}
