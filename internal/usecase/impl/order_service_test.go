package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/domain/service"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service     usecase.OrderUsecase
	orderRepo   *mockOrderRepository
	packageRepo *mockFoodPackageRepository
	logRepo     *mockInventoryLogRepository
	paymentRepo *mockPaymentRepository
	qrcode      *mockQRCodeService
	publisher   *mockEventPublisher
}

func newOrderServiceFixture() *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo:   &mockOrderRepository{},
		packageRepo: &mockFoodPackageRepository{},
		logRepo:     &mockInventoryLogRepository{},
		paymentRepo: &mockPaymentRepository{},
		qrcode:      &mockQRCodeService{},
		publisher:   &mockEventPublisher{},
	}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		orderRepo:   f.orderRepo,
		packageRepo: f.packageRepo,
		logRepo:     f.logRepo,
		paymentRepo: f.paymentRepo,
	}}
	f.service = NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: f.orderRepo,
		QRCode:    f.qrcode,
		Publisher: f.publisher,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	merchantID := uuid.New()
	pkg := &entity.FoodPackage{
		ID:            uuid.New(),
		Name:          "川味快手餐",
		Image:         "sichuan.jpg",
		Price:         89,
		StockQuantity: 5,
		Status:        entity.PackageActive,
		MerchantID:    merchantID,
	}

	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	f.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.packageRepo.On("SetStock", ctx, pkg.ID, 2).Return(nil)
	f.logRepo.On("Create", ctx, mock.AnythingOfType("*entity.InventoryLog")).Return(nil)
	f.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := f.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		PackageID:    pkg.ID,
		Quantity:     3,
		ContactName:  "王小明",
		ContactPhone: "0912345678",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD\d{16}$`), order.ID)
	assert.Equal(t, entity.OrderPendingPayment, order.Status)
	assert.Equal(t, float64(267), order.TotalAmount)
	assert.Equal(t, "川味快手餐", order.PackageName)

	logRow := f.logRepo.Calls[0].Arguments.Get(1).(*entity.InventoryLog)
	assert.Equal(t, entity.AdjustSale, logRow.Type)
	assert.Equal(t, -3, logRow.ChangeQuantity)
	assert.Equal(t, 2, logRow.CurrentQuantity)
	assert.Equal(t, merchantID, logRow.MerchantID)
	assert.Equal(t, "訂單: "+order.ID, logRow.Remark)

	event := f.publisher.Calls[0].Arguments.Get(1).(*service.OrderEvent)
	assert.Equal(t, service.OrderEventCreated, event.EventType)
	assert.Equal(t, order.ID, event.OrderID)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	pkg := &entity.FoodPackage{
		ID:            uuid.New(),
		Price:         89,
		StockQuantity: 2,
		Status:        entity.PackageActive,
	}

	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)

	_, err := f.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{PackageID: pkg.ID, Quantity: 3})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	f.packageRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_InactivePackage(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	pkg := &entity.FoodPackage{
		ID:            uuid.New(),
		Price:         89,
		StockQuantity: 10,
		Status:        entity.PackageInactive,
	}

	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)

	_, err := f.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{PackageID: pkg.ID, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrPackageInactive)
}

func TestOrderService_CreateOrder_PackageNotFound(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	packageID := uuid.New()

	f.packageRepo.On("FindByID", ctx, packageID).Return(nil, repository.ErrPackageNotFound)

	_, err := f.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{PackageID: packageID, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestOrderService_PayOrder_Success(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:          "ORD1700000000000042",
		UserID:      userID,
		PackageID:   uuid.New(),
		TotalAmount: 267,
		Status:      entity.OrderPendingPayment,
	}

	f.orderRepo.On("FindByIDForUser", ctx, order.ID, userID).Return(order, nil)
	f.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.paymentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	f.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	out, err := f.service.PayOrder(ctx, userID, order.ID, usecase.PayOrderInput{})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PAY\d{16}$`), out.TransactionID)
	assert.Equal(t, entity.OrderPaid, out.Order.Status)
	assert.Equal(t, "mock", out.Order.PaymentMethod)
	require.NotNil(t, out.Order.PaymentTime)

	payment := f.paymentRepo.Calls[0].Arguments.Get(1).(*entity.Payment)
	assert.Equal(t, float64(267), payment.Amount)
	assert.Equal(t, entity.PaymentSuccess, payment.Status)
	assert.Equal(t, "mock", payment.PaymentMethod)
}

func TestOrderService_PayOrder_AlreadyPaid(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	order := &entity.Order{
		ID:          "ORD1700000000000042",
		UserID:      userID,
		Status:      entity.OrderPaid,
		PaymentTime: &now,
	}

	f.orderRepo.On("FindByIDForUser", ctx, order.ID, userID).Return(order, nil)

	_, err := f.service.PayOrder(ctx, userID, order.ID, usecase.PayOrderInput{PaymentMethod: "card"})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotPayable)
	f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_CancelOrder_RestoresStockWithoutLedgerRow(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	pkg := &entity.FoodPackage{ID: uuid.New(), StockQuantity: 2, Status: entity.PackageActive}
	order := &entity.Order{
		ID:        "ORD1700000000000042",
		UserID:    userID,
		PackageID: pkg.ID,
		Quantity:  3,
		Status:    entity.OrderPaid,
	}

	f.orderRepo.On("FindByIDForUser", ctx, order.ID, userID).Return(order, nil)
	f.packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	f.packageRepo.On("SetStock", ctx, pkg.ID, 5).Return(nil)
	f.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	err := f.service.CancelOrder(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, order.Status)
	f.logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CancelOrder_NotCancellable(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:     "ORD1700000000000042",
		UserID: userID,
		Status: entity.OrderPreparing,
	}

	f.orderRepo.On("FindByIDForUser", ctx, order.ID, userID).Return(order, nil)

	err := f.service.CancelOrder(ctx, userID, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
	f.packageRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PaymentQR_PendingOrderOnly(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:          "ORD1700000000000042",
		UserID:      userID,
		TotalAmount: 267,
		Status:      entity.OrderPendingPayment,
	}

	f.orderRepo.On("FindByIDForUser", ctx, order.ID, userID).Return(order, nil)
	f.qrcode.On("GeneratePaymentQR", order.ID, float64(267)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.PaymentQR(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_PaymentQR_PaidOrderRejected(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: "ORD1700000000000042", UserID: userID, Status: entity.OrderPaid}

	f.orderRepo.On("FindByIDForUser", ctx, order.ID, userID).Return(order, nil)

	_, err := f.service.PaymentQR(ctx, userID, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotPayable)
	f.qrcode.AssertNotCalled(t, "GeneratePaymentQR", mock.Anything, mock.Anything)
}

func TestOrderService_ListOrders_FiltersByOwner(t *testing.T) {
	f := newOrderServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.orderRepo.On("List", ctx, repository.OrderFilter{
		UserID:   userID,
		Status:   entity.OrderPaid,
		Page:     2,
		PageSize: 10,
	}).Return([]*entity.Order{{ID: "ORD1700000000000042"}}, int64(11), nil)

	out, err := f.service.ListOrders(ctx, userID, "paid", 2, 10)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(11), out.Total)
}
