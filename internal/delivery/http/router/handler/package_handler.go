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

// PackageHandler holds dependencies for catalog and inventory handlers.
type PackageHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler, injected by Fx.
func NewPackageHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *PackageHandler {
	return &PackageHandler{uc: uc, logger: logger}
}

// List returns the public catalog, active packages only.
func (h *PackageHandler) List(c echo.Context) error {
	page, pageSize := pagination(c)

	output, err := h.uc.ListPackages(c.Request().Context(), usecase.ListPackagesInput{
		Keyword:  c.QueryParam("search"),
		Level:    c.QueryParam("level"),
		Page:     page,
		PageSize: pageSize,
	})
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

// Get returns one package by id.
func (h *PackageHandler) Get(c echo.Context) error {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package id")
	}

	pkg, err := h.uc.GetPackage(c.Request().Context(), packageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pkg, "")
}

type packageContentRequest struct {
	Name          string               `json:"name" validate:"required"`
	Description   string               `json:"description"`
	Level         string               `json:"level" validate:"omitempty,oneof=basic advanced premium"`
	Price         float64              `json:"price" validate:"required,gt=0"`
	OriginalPrice float64              `json:"originalPrice"`
	Image         string               `json:"image"`
	Tags          []string             `json:"tags"`
	Ingredients   []entity.Ingredient  `json:"ingredients"`
	Recipes       []entity.RecipeStep  `json:"recipes"`
	Seasonings    []entity.Seasoning   `json:"seasonings"`
	Nutrition     entity.NutritionInfo `json:"nutrition"`
	StockQuantity int                  `json:"stockQuantity"`
	Status        string               `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *packageContentRequest) toInput() usecase.PackageContentInput {
	return usecase.PackageContentInput{
		Name:          r.Name,
		Description:   r.Description,
		Level:         r.Level,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		Tags:          r.Tags,
		Ingredients:   r.Ingredients,
		Recipes:       r.Recipes,
		Seasonings:    r.Seasonings,
		Nutrition:     r.Nutrition,
		StockQuantity: r.StockQuantity,
		Status:        r.Status,
	}
}

// Create lists a new package owned by the acting merchant.
func (h *PackageHandler) Create(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req packageContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pkg, err := h.uc.CreatePackage(c.Request().Context(), actorID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pkg, "套餐建立成功")
}

// Update rewrites an owned package.
func (h *PackageHandler) Update(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package id")
	}

	var req packageContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pkg, err := h.uc.UpdatePackage(c.Request().Context(), actorID, packageID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pkg, "套餐更新成功")
}

// Delete removes an owned package.
func (h *PackageHandler) Delete(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package id")
	}

	if err := h.uc.DeletePackage(c.Request().Context(), actorID, packageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "套餐刪除成功")
}

type adjustInventoryRequest struct {
	Type     string `json:"type" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Remark   string `json:"remark"`
}

// AdjustInventory applies one manual stock movement.
func (h *PackageHandler) AdjustInventory(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package id")
	}

	var req adjustInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.AdjustInventory(c.Request().Context(), actorID, packageID, usecase.AdjustInventoryInput{
		Type:     req.Type,
		Quantity: req.Quantity,
		Remark:   req.Remark,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"previousQuantity": output.PreviousQuantity,
		"currentQuantity":  output.CurrentQuantity,
		"change":           output.Change,
		"log":              output.Log,
	}, "庫存調整成功")
}

// ListInventoryLogs returns the stock ledger of an owned package, newest first.
func (h *PackageHandler) ListInventoryLogs(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package id")
	}
	page, pageSize := pagination(c)

	output, err := h.uc.ListInventoryLogs(c.Request().Context(), actorID, packageID, page, pageSize)
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

// ListMerchantOrders returns the orders against the merchant's packages.
func (h *PackageHandler) ListMerchantOrders(c echo.Context) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}
	page, pageSize := pagination(c)

	output, err := h.uc.ListMerchantOrders(c.Request().Context(), actorID, c.QueryParam("status"), page, pageSize)
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
