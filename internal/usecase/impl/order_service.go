package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "mealkit/internal/delivery/context"
	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/domain/service"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPaymentMethod = "mock"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	qrcode    service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		qrcode:    params.QRCode,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order against an active package. The stock decrement,
// the sale ledger row and the order row commit or roll back together.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		packageRepo := repoFactory.NewFoodPackageRepository()
		orderRepo := repoFactory.NewOrderRepository()
		logRepo := repoFactory.NewInventoryLogRepository()

		pkg, err := packageRepo.FindByID(ctx, input.PackageID)
		if err != nil {
			if errors.Is(err, repository.ErrPackageNotFound) {
				return domainerrors.ErrPackageNotFound
			}

			return err
		}
		if !pkg.IsActive() {
			return domainerrors.ErrPackageInactive
		}
		if !pkg.HasStock(input.Quantity) {
			return domainerrors.ErrInsufficientStock
		}

		order = &entity.Order{
			ID:              entity.NewOrderID(),
			UserID:          userID,
			PackageID:       pkg.ID,
			PackageName:     pkg.Name,
			PackageImage:    pkg.Image,
			Quantity:        input.Quantity,
			TotalAmount:     pkg.Price * float64(input.Quantity),
			Status:          entity.OrderPendingPayment,
			DeliveryAddress: input.DeliveryAddress,
			ContactName:     input.ContactName,
			ContactPhone:    input.ContactPhone,
			Remark:          input.Remark,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		newQty, change := entity.AdjustSale.Apply(pkg.StockQuantity, input.Quantity)
		if err := packageRepo.SetStock(ctx, pkg.ID, newQty); err != nil {
			return err
		}

		return logRepo.Create(ctx, &entity.InventoryLog{
			PackageID:       pkg.ID,
			MerchantID:      pkg.MerchantID,
			ChangeQuantity:  change,
			CurrentQuantity: newQty,
			Type:            entity.AdjustSale,
			Remark:          fmt.Sprintf("訂單: %s", order.ID),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create order",
			slog.Any("userID", userID), slog.Any("packageID", input.PackageID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID),
		slog.Any("userID", userID),
		slog.Int("quantity", order.Quantity),
		slog.Float64("totalAmount", order.TotalAmount))

	srv.publishEvent(ctx, order, service.OrderEventCreated)

	return order, nil
}

// ListOrders returns one page of the user's own orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*usecase.OrderListOutput, error) {
	items, total, err := srv.orderRepo.List(ctx, repository.OrderFilter{
		UserID:   userID,
		Status:   entity.OrderStatus(status),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetOrder returns one of the user's own orders.
func (srv *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// PayOrder settles a pending order with the mock gateway. The order update
// and the payment record commit together.
func (srv *orderService) PayOrder(ctx context.Context, userID uuid.UUID, orderID string, input usecase.PayOrderInput) (*usecase.PayOrderOutput, error) {
	method := input.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}

	var out *usecase.PayOrderOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		order, err := orderRepo.FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}
		if !order.CanPay() {
			return domainerrors.ErrOrderNotPayable
		}

		now := time.Now()
		order.Status = entity.OrderPaid
		order.PaymentMethod = method
		order.PaymentTime = &now
		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}

		payment := &entity.Payment{
			OrderID:       order.ID,
			UserID:        userID,
			Amount:        order.TotalAmount,
			PaymentMethod: method,
			TransactionID: entity.NewTransactionID(),
			Status:        entity.PaymentSuccess,
			PaidAt:        now,
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		out = &usecase.PayOrderOutput{TransactionID: payment.TransactionID, Order: order}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to pay order",
			slog.String("orderID", orderID), slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order paid",
		slog.String("orderID", orderID),
		slog.String("transactionID", out.TransactionID),
		slog.String("paymentMethod", method))

	srv.publishEvent(ctx, out.Order, service.OrderEventPaid)

	return out, nil
}

// CancelOrder cancels a pending or paid order and restores the reserved
// stock. The restore does not write a ledger row; the original sale row
// plus the cancelled order document the movement.
func (srv *orderService) CancelOrder(ctx context.Context, userID uuid.UUID, orderID string) error {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		packageRepo := repoFactory.NewFoodPackageRepository()

		var err error
		order, err = orderRepo.FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}
		if !order.CanCancel() {
			return domainerrors.ErrOrderNotCancellable
		}

		pkg, err := packageRepo.FindByID(ctx, order.PackageID)
		if err == nil {
			if err := packageRepo.SetStock(ctx, pkg.ID, pkg.StockQuantity+order.Quantity); err != nil {
				return err
			}
		} else if !errors.Is(err, repository.ErrPackageNotFound) {
			// A deleted package forfeits the restock but never blocks the cancel.
			return err
		}

		order.Status = entity.OrderCancelled

		return orderRepo.Update(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to cancel order",
			slog.String("orderID", orderID), slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Order cancelled", slog.String("orderID", orderID), slog.Any("userID", userID))

	srv.publishEvent(ctx, order, service.OrderEventCancelled)

	return nil
}

// PaymentQR renders the PNG QR code for a pending order's payment link.
func (srv *orderService) PaymentQR(ctx context.Context, userID uuid.UUID, orderID string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanPay() {
		return nil, domainerrors.ErrOrderNotPayable
	}

	png, err := srv.qrcode.GeneratePaymentQR(order.ID, order.TotalAmount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR code")
	}

	return png, nil
}

// publishEvent emits an order lifecycle event. Publishing is best effort;
// a broker outage never fails the business operation.
func (srv *orderService) publishEvent(ctx context.Context, order *entity.Order, eventType string) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID,
		UserID:     order.UserID.String(),
		PackageID:  order.PackageID.String(),
		EventType:  eventType,
		Status:     string(order.Status),
		Quantity:   order.Quantity,
		Amount:     order.TotalAmount,
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", order.ID), slog.String("eventType", eventType), slog.Any("error", err))
	}
}
