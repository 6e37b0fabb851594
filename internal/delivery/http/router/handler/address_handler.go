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

// AddressHandler holds dependencies for saved address handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{uc: uc, logger: logger}
}

type addressRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Province      string `json:"province" validate:"required"`
	City          string `json:"city" validate:"required"`
	District      string `json:"district"`
	DetailAddress string `json:"detailAddress" validate:"required"`
	IsDefault     bool   `json:"isDefault"`
}

func (r *addressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Name:          r.Name,
		Phone:         r.Phone,
		Province:      r.Province,
		City:          r.City,
		District:      r.District,
		DetailAddress: r.DetailAddress,
		IsDefault:     r.IsDefault,
	}
}

// List returns all of the user's saved addresses, default first.
func (h *AddressHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// Get returns one of the user's saved addresses.
func (h *AddressHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	address, err := h.uc.GetAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "")
}

// Create saves a new delivery address.
func (h *AddressHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "地址建立成功")
}

// Update rewrites a saved address.
func (h *AddressHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "地址更新成功")
}

// Delete removes a saved address.
func (h *AddressHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "地址刪除成功")
}

// SetDefault marks one address as the default and clears the others.
func (h *AddressHandler) SetDefault(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	address, err := h.uc.SetDefaultAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "預設地址已更新")
}
