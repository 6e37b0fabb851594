package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"mealkit/config"
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

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo          repository.UserRepository
	orderRepo         repository.OrderRepository
	packageRepo       repository.FoodPackageRepository
	subscriptionRepo  repository.SubscriptionRepository
	publisher         service.EventPublisher
	lowStockThreshold int
	logger            *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	OrderRepo        repository.OrderRepository
	PackageRepo      repository.FoodPackageRepository
	SubscriptionRepo repository.SubscriptionRepository
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:          params.UserRepo,
		orderRepo:         params.OrderRepo,
		packageRepo:       params.PackageRepo,
		subscriptionRepo:  params.SubscriptionRepo,
		publisher:         params.Publisher,
		lowStockThreshold: params.Config.Admin.LowStockThreshold,
		logger:            params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every registered account, newest first.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return domainerrors.ErrValidationFailed.WrapMessage("cannot delete own account")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.log(ctx).Info("User deleted by admin", slog.Any("userID", userID), slog.Any("actorID", actorID))

	return nil
}

// ListAllOrders returns one page of every order on the platform.
func (srv *adminService) ListAllOrders(ctx context.Context, status string, page, pageSize int) (*usecase.OrderListOutput, error) {
	items, total, err := srv.orderRepo.List(ctx, repository.OrderFilter{
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

// ListAllSubscriptions returns one page of every subscription on the platform.
func (srv *adminService) ListAllSubscriptions(ctx context.Context, status string, page, pageSize int) (*usecase.SubscriptionListOutput, error) {
	items, total, err := srv.subscriptionRepo.List(ctx, repository.SubscriptionFilter{
		Status:   entity.SubscriptionStatus(status),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return &usecase.SubscriptionListOutput{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateOrderStatus overrides an order's state from the closed assignable set.
// It never touches stock or settlement records.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	target := entity.OrderStatus(status)
	assignable := false
	for _, s := range entity.AdminAssignableOrderStatuses {
		if s == target {
			assignable = true

			break
		}
	}
	if !assignable {
		return domainerrors.ErrInvalidOrderStatus
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	order.Status = target
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return err
	}

	srv.log(ctx).Info("Order status overridden", slog.String("orderID", orderID), slog.String("status", status))

	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID,
		UserID:     order.UserID.String(),
		PackageID:  order.PackageID.String(),
		EventType:  service.OrderEventStatusChanged,
		Status:     string(order.Status),
		Quantity:   order.Quantity,
		Amount:     order.TotalAmount,
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", order.ID), slog.Any("error", err))
	}

	return nil
}

// Statistics builds the admin dashboard rollup. Cancelled orders are excluded
// from the counts and revenue totals but appear in the per-status breakdown.
func (srv *adminService) Statistics(ctx context.Context) (*usecase.StatisticsOutput, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	userTotal, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	userToday, err := srv.userRepo.CountCreatedSince(ctx, startOfToday)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's users")
	}

	orderTotal, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}
	totalAmount, err := srv.orderRepo.SumRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}
	orderToday, err := srv.orderRepo.CountCreatedSince(ctx, startOfToday)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's orders")
	}
	todayAmount, err := srv.orderRepo.SumRevenueSince(ctx, startOfToday)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum today's revenue")
	}
	byStatus, err := srv.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	packageTotal, err := srv.packageRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count packages")
	}
	lowStock, err := srv.packageRepo.CountLowStock(ctx, srv.lowStockThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count low-stock packages")
	}

	activeSubscriptions, err := srv.subscriptionRepo.CountByStatus(ctx, entity.SubscriptionActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active subscriptions")
	}

	statusCounts := make([]usecase.OrderStatusCount, 0, len(byStatus))
	for status, count := range byStatus {
		statusCounts = append(statusCounts, usecase.OrderStatusCount{Status: string(status), Count: count})
	}
	sort.Slice(statusCounts, func(i, j int) bool { return statusCounts[i].Status < statusCounts[j].Status })

	return &usecase.StatisticsOutput{
		Users: usecase.UserStats{Total: userTotal, Today: userToday},
		Orders: usecase.OrderStats{
			Total:       orderTotal,
			TotalAmount: totalAmount,
			Today:       orderToday,
			TodayAmount: todayAmount,
			ByStatus:    statusCounts,
		},
		Packages:      usecase.PackageStats{Total: packageTotal, LowStock: lowStock},
		Subscriptions: usecase.SubscriptionStats{Active: activeSubscriptions},
	}, nil
}
