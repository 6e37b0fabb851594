package impl

import (
	"context"
	"testing"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixture struct {
	service     usecase.CatalogUsecase
	userRepo    *mockUserRepository
	packageRepo *mockFoodPackageRepository
	logRepo     *mockInventoryLogRepository
	orderRepo   *mockOrderRepository
}

func newCatalogServiceFixture() *catalogServiceFixture {
	f := &catalogServiceFixture{
		userRepo:    &mockUserRepository{},
		packageRepo: &mockFoodPackageRepository{},
		logRepo:     &mockInventoryLogRepository{},
		orderRepo:   &mockOrderRepository{},
	}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		userRepo:    f.userRepo,
		packageRepo: f.packageRepo,
		logRepo:     f.logRepo,
		orderRepo:   f.orderRepo,
	}}
	f.service = NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		UserRepo:    f.userRepo,
		PackageRepo: f.packageRepo,
		LogRepo:     f.logRepo,
		OrderRepo:   f.orderRepo,
		Logger:      newDiscardLogger(),
	})

	return f
}

func merchantUser(id uuid.UUID) *entity.User {
	return &entity.User{ID: id, Role: entity.RoleMerchant}
}

func adminUser(id uuid.UUID) *entity.User {
	return &entity.User{ID: id, Role: entity.RoleAdmin}
}

func TestCatalogService_ListPackages_DefaultsToActive(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()

	f.packageRepo.On("List", ctx, repository.PackageFilter{
		Keyword: "川味",
		Level:   entity.LevelBasic,
		Status:  entity.PackageActive,
		Page:    1, PageSize: 10,
	}).Return([]*entity.FoodPackage{{Name: "川味快手餐"}}, int64(1), nil)

	out, err := f.service.ListPackages(ctx, usecase.ListPackagesInput{
		Keyword: "川味", Level: "basic", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Total)
}

func TestCatalogService_CreatePackage_DefaultsStockAndStatus(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	merchantID := uuid.New()

	f.userRepo.On("FindByID", ctx, merchantID).Return(merchantUser(merchantID), nil)
	f.packageRepo.On("Create", ctx, mock.AnythingOfType("*entity.FoodPackage")).Return(nil)

	pkg, err := f.service.CreatePackage(ctx, merchantID, usecase.PackageContentInput{
		Name:  "輕食沙拉組",
		Level: "basic",
		Price: 59,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, pkg.StockQuantity)
	assert.Equal(t, entity.PackageActive, pkg.Status)
	assert.Equal(t, merchantID, pkg.MerchantID)
}

func TestCatalogService_CreatePackage_ConsumerForbidden(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

	_, err := f.service.CreatePackage(ctx, userID, usecase.PackageContentInput{Name: "輕食沙拉組"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.packageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdatePackage_OtherMerchantForbidden(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	actorID := uuid.New()
	pkg := &entity.FoodPackage{ID: uuid.New(), MerchantID: uuid.New()}

	f.userRepo.On("FindByID", ctx, actorID).Return(merchantUser(actorID), nil)
	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)

	_, err := f.service.UpdatePackage(ctx, actorID, pkg.ID, usecase.PackageContentInput{Name: "改名"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.packageRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_DeletePackage_AdminMayDeleteAny(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	actorID := uuid.New()
	pkg := &entity.FoodPackage{ID: uuid.New(), MerchantID: uuid.New()}

	f.userRepo.On("FindByID", ctx, actorID).Return(adminUser(actorID), nil)
	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	f.packageRepo.On("Delete", ctx, pkg.ID).Return(nil)

	err := f.service.DeletePackage(ctx, actorID, pkg.ID)
	require.NoError(t, err)
	f.packageRepo.AssertExpectations(t)
}

func TestCatalogService_AdjustInventory_InAddsStock(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	merchantID := uuid.New()
	pkg := &entity.FoodPackage{ID: uuid.New(), MerchantID: merchantID, StockQuantity: 10}

	f.userRepo.On("FindByID", ctx, merchantID).Return(merchantUser(merchantID), nil)
	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	f.packageRepo.On("SetStock", ctx, pkg.ID, 15).Return(nil)
	f.logRepo.On("Create", ctx, mock.AnythingOfType("*entity.InventoryLog")).Return(nil)

	out, err := f.service.AdjustInventory(ctx, merchantID, pkg.ID, usecase.AdjustInventoryInput{
		Type: "in", Quantity: 5, Remark: "補貨",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, out.PreviousQuantity)
	assert.Equal(t, 15, out.CurrentQuantity)
	assert.Equal(t, 5, out.Change)
	assert.Equal(t, merchantID, out.Log.MerchantID)
	assert.Equal(t, "補貨", out.Log.Remark)
}

func TestCatalogService_AdjustInventory_OutClampsAtZero(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	merchantID := uuid.New()
	pkg := &entity.FoodPackage{ID: uuid.New(), MerchantID: merchantID, StockQuantity: 3}

	f.userRepo.On("FindByID", ctx, merchantID).Return(merchantUser(merchantID), nil)
	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	f.packageRepo.On("SetStock", ctx, pkg.ID, 0).Return(nil)
	f.logRepo.On("Create", ctx, mock.AnythingOfType("*entity.InventoryLog")).Return(nil)

	out, err := f.service.AdjustInventory(ctx, merchantID, pkg.ID, usecase.AdjustInventoryInput{
		Type: "out", Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.CurrentQuantity)
	// The ledger keeps the full requested change even when stock clamps.
	assert.Equal(t, -10, out.Change)
}

func TestCatalogService_AdjustInventory_SetRecordsDelta(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	merchantID := uuid.New()
	pkg := &entity.FoodPackage{ID: uuid.New(), MerchantID: merchantID, StockQuantity: 10}

	f.userRepo.On("FindByID", ctx, merchantID).Return(merchantUser(merchantID), nil)
	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	f.packageRepo.On("SetStock", ctx, pkg.ID, 4).Return(nil)
	f.logRepo.On("Create", ctx, mock.AnythingOfType("*entity.InventoryLog")).Return(nil)

	out, err := f.service.AdjustInventory(ctx, merchantID, pkg.ID, usecase.AdjustInventoryInput{
		Type: "adjust", Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, out.CurrentQuantity)
	assert.Equal(t, -6, out.Change)
}

func TestCatalogService_AdjustInventory_InvalidType(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()

	_, err := f.service.AdjustInventory(ctx, uuid.New(), uuid.New(), usecase.AdjustInventoryInput{
		Type: "sale", Quantity: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdjustmentType)

	_, err = f.service.AdjustInventory(ctx, uuid.New(), uuid.New(), usecase.AdjustInventoryInput{
		Type: "bogus", Quantity: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdjustmentType)
}

func TestCatalogService_ListMerchantOrders_NoPackages(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	merchantID := uuid.New()

	f.userRepo.On("FindByID", ctx, merchantID).Return(merchantUser(merchantID), nil)
	f.packageRepo.On("List", ctx, mock.AnythingOfType("repository.PackageFilter")).
		Return([]*entity.FoodPackage{}, int64(0), nil)

	out, err := f.service.ListMerchantOrders(ctx, merchantID, "", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)
	f.orderRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCatalogService_ListMerchantOrders_FiltersByOwnedPackages(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	merchantID := uuid.New()
	pkgA := uuid.New()
	pkgB := uuid.New()

	f.userRepo.On("FindByID", ctx, merchantID).Return(merchantUser(merchantID), nil)
	// The package lookup must be unpaginated; a capped listing would drop
	// orders against the packages beyond the first page.
	f.packageRepo.On("List", ctx, repository.PackageFilter{MerchantID: merchantID, PageSize: -1}).
		Return([]*entity.FoodPackage{{ID: pkgA}, {ID: pkgB}}, int64(2), nil)
	f.orderRepo.On("List", ctx, repository.OrderFilter{
		PackageIDs: []uuid.UUID{pkgA, pkgB},
		Page:       1,
		PageSize:   10,
	}).Return([]*entity.Order{{ID: "ORD1700000000000042"}}, int64(1), nil)

	out, err := f.service.ListMerchantOrders(ctx, merchantID, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

func TestCatalogService_ListInventoryLogs_OwnershipRequired(t *testing.T) {
	f := newCatalogServiceFixture()
	ctx := context.Background()
	actorID := uuid.New()
	pkg := &entity.FoodPackage{ID: uuid.New(), MerchantID: uuid.New()}

	f.userRepo.On("FindByID", ctx, actorID).Return(merchantUser(actorID), nil)
	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)

	_, err := f.service.ListInventoryLogs(ctx, actorID, pkg.ID, 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
