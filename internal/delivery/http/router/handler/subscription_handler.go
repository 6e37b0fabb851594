package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mealkit/internal/delivery/http/response"
	"mealkit/internal/domain/entity"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for subscription lifecycle handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, logger: logger}
}

type createSubscriptionRequest struct {
	PackageID       uuid.UUID              `json:"packageId" validate:"required"`
	Frequency       string                 `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
	Quantity        int                    `json:"quantity" validate:"required,gt=0"`
	DurationMonths  int                    `json:"durationMonths" validate:"required,gt=0"`
	StartDate       *time.Time             `json:"startDate"`
	DeliveryAddress entity.DeliveryAddress `json:"deliveryAddress"`
	ContactName     string                 `json:"contactName"`
	ContactPhone    string                 `json:"contactPhone"`
}

// Create starts a new subscription.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.CreateSubscriptionInput{
		PackageID:       req.PackageID,
		Frequency:       req.Frequency,
		Quantity:        req.Quantity,
		DurationMonths:  req.DurationMonths,
		DeliveryAddress: req.DeliveryAddress,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}

	subscription, err := h.uc.CreateSubscription(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "訂閱建立成功")
}

// List returns the authenticated user's subscriptions, newest first.
func (h *SubscriptionHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	page, pageSize := pagination(c)

	output, err := h.uc.ListSubscriptions(c.Request().Context(), userID, c.QueryParam("status"), page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Paginated{
		Items:    output.Items,
		Total:    output.Total,
		Page:     output.Page,
		PageSize: output.PageSize,
	}, "")
}

// Get returns one of the authenticated user's subscriptions.
func (h *SubscriptionHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscription, err := h.uc.GetSubscription(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscription, "")
}

// Pause suspends deliveries of an active subscription.
func (h *SubscriptionHandler) Pause(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscription, err := h.uc.PauseSubscription(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscription, "訂閱已暫停")
}

// Resume reactivates a paused subscription.
func (h *SubscriptionHandler) Resume(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscription, err := h.uc.ResumeSubscription(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscription, "訂閱已恢復")
}

// Cancel terminates the subscription permanently.
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscription, err := h.uc.CancelSubscription(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscription, "訂閱已取消")
}
