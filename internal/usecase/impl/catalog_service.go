package impl

import (
	"context"
	"log/slog"

	deliverycontext "mealkit/internal/delivery/context"
	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInitialStock = 100

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	packageRepo repository.FoodPackageRepository
	logRepo     repository.InventoryLogRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	PackageRepo repository.FoodPackageRepository
	LogRepo     repository.InventoryLogRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		packageRepo: params.PackageRepo,
		logRepo:     params.LogRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPackages returns one catalog page. An empty status filter defaults
// to active packages, which is what the public storefront sees.
func (srv *catalogService) ListPackages(ctx context.Context, input usecase.ListPackagesInput) (*usecase.PackageListOutput, error) {
	status := entity.PackageStatus(input.Status)
	if input.Status == "" {
		status = entity.PackageActive
	}

	items, total, err := srv.packageRepo.List(ctx, repository.PackageFilter{
		Keyword:  input.Keyword,
		Level:    entity.PackageLevel(input.Level),
		Status:   status,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food packages")
	}

	return &usecase.PackageListOutput{
		Items:    items,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}, nil
}

// GetPackage returns one package regardless of listing state.
func (srv *catalogService) GetPackage(ctx context.Context, id uuid.UUID) (*entity.FoodPackage, error) {
	pkg, err := srv.packageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find food package")
	}

	return pkg, nil
}

// CreatePackage lists a new package owned by the acting merchant.
func (srv *catalogService) CreatePackage(ctx context.Context, actorID uuid.UUID, input usecase.PackageContentInput) (*entity.FoodPackage, error) {
	actor, err := srv.requireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanPublishPackages() {
		return nil, domainerrors.ErrForbidden
	}

	stock := input.StockQuantity
	if stock <= 0 {
		stock = defaultInitialStock
	}
	status := entity.PackageStatus(input.Status)
	if input.Status == "" {
		status = entity.PackageActive
	}

	pkg := &entity.FoodPackage{
		Name:          input.Name,
		Description:   input.Description,
		Level:         entity.PackageLevel(input.Level),
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Image:         input.Image,
		Tags:          input.Tags,
		Ingredients:   input.Ingredients,
		Recipes:       input.Recipes,
		Seasonings:    input.Seasonings,
		Nutrition:     input.Nutrition,
		StockQuantity: stock,
		Status:        status,
		MerchantID:    actorID,
	}
	if err := srv.packageRepo.Create(ctx, pkg); err != nil {
		srv.log(ctx).Error("Failed to create food package", slog.Any("merchantID", actorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Food package created", slog.Any("packageID", pkg.ID), slog.Any("merchantID", actorID))

	return pkg, nil
}

// UpdatePackage rewrites the content fields of an owned package.
// Stock changes go through AdjustInventory so the ledger stays complete.
func (srv *catalogService) UpdatePackage(ctx context.Context, actorID, packageID uuid.UUID, input usecase.PackageContentInput) (*entity.FoodPackage, error) {
	pkg, err := srv.requireManagedPackage(ctx, actorID, packageID)
	if err != nil {
		return nil, err
	}

	pkg.Name = input.Name
	pkg.Description = input.Description
	pkg.Level = entity.PackageLevel(input.Level)
	pkg.Price = input.Price
	pkg.OriginalPrice = input.OriginalPrice
	pkg.Image = input.Image
	pkg.Tags = input.Tags
	pkg.Ingredients = input.Ingredients
	pkg.Recipes = input.Recipes
	pkg.Seasonings = input.Seasonings
	pkg.Nutrition = input.Nutrition
	if input.Status != "" {
		pkg.Status = entity.PackageStatus(input.Status)
	}

	if err := srv.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// DeletePackage removes an owned package permanently.
func (srv *catalogService) DeletePackage(ctx context.Context, actorID, packageID uuid.UUID) error {
	if _, err := srv.requireManagedPackage(ctx, actorID, packageID); err != nil {
		return err
	}

	if err := srv.packageRepo.Delete(ctx, packageID); err != nil {
		return err
	}

	srv.log(ctx).Info("Food package deleted", slog.Any("packageID", packageID), slog.Any("actorID", actorID))

	return nil
}

// AdjustInventory applies one manual stock movement and appends the matching
// ledger row inside a single transaction.
func (srv *catalogService) AdjustInventory(ctx context.Context, actorID, packageID uuid.UUID, input usecase.AdjustInventoryInput) (*usecase.AdjustInventoryOutput, error) {
	adjType := entity.AdjustmentType(input.Type)
	if !adjType.IsMerchantAdjustment() {
		return nil, domainerrors.ErrInvalidAdjustmentType
	}
	if input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
	}

	if _, err := srv.requireManagedPackage(ctx, actorID, packageID); err != nil {
		return nil, err
	}

	var out *usecase.AdjustInventoryOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		packageRepo := repoFactory.NewFoodPackageRepository()
		logRepo := repoFactory.NewInventoryLogRepository()

		// Re-read inside the transaction so concurrent adjustments serialize.
		pkg, err := packageRepo.FindByID(ctx, packageID)
		if err != nil {
			return err
		}

		newQty, change := adjType.Apply(pkg.StockQuantity, input.Quantity)
		if err := packageRepo.SetStock(ctx, packageID, newQty); err != nil {
			return err
		}

		logRow := &entity.InventoryLog{
			PackageID:       packageID,
			MerchantID:      actorID,
			ChangeQuantity:  change,
			CurrentQuantity: newQty,
			Type:            adjType,
			Remark:          input.Remark,
		}
		if err := logRepo.Create(ctx, logRow); err != nil {
			return err
		}

		out = &usecase.AdjustInventoryOutput{
			PreviousQuantity: pkg.StockQuantity,
			CurrentQuantity:  newQty,
			Change:           change,
			Log:              logRow,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Inventory adjustment failed",
			slog.Any("packageID", packageID), slog.String("type", input.Type), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Inventory adjusted",
		slog.Any("packageID", packageID),
		slog.String("type", input.Type),
		slog.Int("change", out.Change),
		slog.Int("currentQuantity", out.CurrentQuantity))

	return out, nil
}

// ListInventoryLogs returns one ledger page of an owned package.
func (srv *catalogService) ListInventoryLogs(ctx context.Context, actorID, packageID uuid.UUID, page, pageSize int) (*usecase.InventoryLogListOutput, error) {
	if _, err := srv.requireManagedPackage(ctx, actorID, packageID); err != nil {
		return nil, err
	}

	items, total, err := srv.logRepo.ListByPackage(ctx, packageID, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory logs")
	}

	return &usecase.InventoryLogListOutput{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListMerchantOrders returns the orders placed against the merchant's packages.
func (srv *catalogService) ListMerchantOrders(ctx context.Context, actorID uuid.UUID, status string, page, pageSize int) (*usecase.MerchantOrderListOutput, error) {
	actor, err := srv.requireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanPublishPackages() {
		return nil, domainerrors.ErrForbidden
	}

	pkgs, _, err := srv.packageRepo.List(ctx, repository.PackageFilter{
		MerchantID: actorID,
		PageSize:   -1,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant packages")
	}
	if len(pkgs) == 0 {
		return &usecase.MerchantOrderListOutput{Items: []*entity.Order{}, Page: page, PageSize: pageSize}, nil
	}

	packageIDs := make([]uuid.UUID, len(pkgs))
	for i, pkg := range pkgs {
		packageIDs[i] = pkg.ID
	}

	items, total, err := srv.orderRepo.List(ctx, repository.OrderFilter{
		PackageIDs: packageIDs,
		Status:     entity.OrderStatus(status),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant orders")
	}

	return &usecase.MerchantOrderListOutput{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// requireActor loads the acting user.
func (srv *catalogService) requireActor(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	actor, err := srv.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find acting user")
	}

	return actor, nil
}

// requireManagedPackage loads the package and checks the actor may mutate it.
func (srv *catalogService) requireManagedPackage(ctx context.Context, actorID, packageID uuid.UUID) (*entity.FoodPackage, error) {
	actor, err := srv.requireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	pkg, err := srv.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find food package")
	}

	if !actor.CanManagePackage(pkg) {
		return nil, domainerrors.ErrForbidden
	}

	return pkg, nil
}
