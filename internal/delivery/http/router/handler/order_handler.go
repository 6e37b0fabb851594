package handler

import (
	"log/slog"
	"net/http"

	"mealkit/internal/delivery/http/response"
	"mealkit/internal/domain/entity"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type createOrderRequest struct {
	PackageID       uuid.UUID              `json:"packageId" validate:"required"`
	Quantity        int                    `json:"quantity" validate:"required,gt=0"`
	DeliveryAddress entity.DeliveryAddress `json:"deliveryAddress" validate:"required"`
	ContactName     string                 `json:"contactName" validate:"required"`
	ContactPhone    string                 `json:"contactPhone" validate:"required"`
	Remark          string                 `json:"remark"`
}

// Create places a new order.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		PackageID:       req.PackageID,
		Quantity:        req.Quantity,
		DeliveryAddress: req.DeliveryAddress,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		Remark:          req.Remark,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "訂單建立成功")
}

// List returns the authenticated user's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	page, pageSize := pagination(c)

	output, err := h.uc.ListOrders(c.Request().Context(), userID, c.QueryParam("status"), page, pageSize)
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

// Get returns one of the authenticated user's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

type payOrderRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// Pay settles a pending order with the mock gateway.
func (h *OrderHandler) Pay(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req payOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	output, err := h.uc.PayOrder(c.Request().Context(), userID, c.Param("id"), usecase.PayOrderInput{
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"transactionId": output.TransactionID,
		"order":         output.Order,
	}, "支付成功")
}

// Cancel cancels a pending or paid order and restores its stock.
func (h *OrderHandler) Cancel(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.CancelOrder(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "訂單已取消")
}

// PaymentQR streams the PNG QR code encoding the order's payment link.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.PaymentQR(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
