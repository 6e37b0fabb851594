package handler

import (
	"log/slog"
	"net/http"

	"mealkit/internal/delivery/http/response"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for platform administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// ListUsers returns every registered account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), actorID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "帳號已刪除")
}

// ListOrders returns every order on the platform, newest first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	page, pageSize := pagination(c)

	output, err := h.uc.ListAllOrders(c.Request().Context(), c.QueryParam("status"), page, pageSize)
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

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus overrides an order's state.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "訂單狀態已更新")
}

// ListSubscriptions returns every subscription on the platform, newest first.
func (h *AdminHandler) ListSubscriptions(c echo.Context) error {
	page, pageSize := pagination(c)

	output, err := h.uc.ListAllSubscriptions(c.Request().Context(), c.QueryParam("status"), page, pageSize)
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

// Statistics returns the dashboard rollup.
func (h *AdminHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.Statistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
