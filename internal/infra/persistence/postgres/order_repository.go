package postgres

import (
	"context"
	"time"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/infra/persistence/model"
	"mealkit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPackageNotFound.WrapMessage("invalid package reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order by its prefixed identifier.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUser retrieves an order only when it belongs to the given user.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for user")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders matching the filter plus the total match count, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if len(filter.PackageIDs) > 0 {
		query = query.Where("package_id IN ?", filter.PackageIDs)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderMs []model.OrderModel
	if err := query.Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.PageSize)).
		Find(&orderMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(orderMs))
	for i := range orderMs {
		orders[i] = toOrderDomain(&orderMs[i])
	}

	return orders, total, nil
}

// Update modifies an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":         orderM.Status,
			"payment_method": orderM.PaymentMethod,
			"payment_time":   orderM.PaymentTime,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Count returns the number of non-cancelled orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("status <> ?", string(entity.OrderCancelled)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountCreatedSince returns the number of non-cancelled orders created
// at or after the given time.
func (repo *orderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("status <> ?", string(entity.OrderCancelled)).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders created since")
	}

	return count, nil
}

// CountByStatus returns the per-status order counts.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// SumRevenue returns the totalAmount sum over non-cancelled orders.
func (repo *orderRepository) SumRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status <> ?", string(entity.OrderCancelled)).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order revenue")
	}

	return total, nil
}

// SumRevenueSince returns the non-cancelled totalAmount sum for orders
// created at or after the given time.
func (repo *orderRepository) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status <> ?", string(entity.OrderCancelled)).
		Where("created_at >= ?", since).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order revenue since")
	}

	return total, nil
}

// toOrderDomain maps the persistence model to the pure domain entity.
func toOrderDomain(m *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		PackageID:       m.PackageID,
		PackageName:     m.PackageName,
		PackageImage:    m.PackageImage,
		Quantity:        m.Quantity,
		TotalAmount:     m.TotalAmount,
		Status:          entity.OrderStatus(m.Status),
		DeliveryAddress: util.UnmarshalOr(m.DeliveryAddress, entity.DeliveryAddress{}),
		ContactName:     m.ContactName,
		ContactPhone:    m.ContactPhone,
		PaymentMethod:   m.PaymentMethod,
		PaymentTime:     m.PaymentTime,
		Remark:          m.Remark,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// fromOrderDomain maps the domain entity to the persistence model.
func fromOrderDomain(o *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		PackageID:       o.PackageID,
		PackageName:     o.PackageName,
		PackageImage:    o.PackageImage,
		Quantity:        o.Quantity,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		DeliveryAddress: util.MarshalOrNull(o.DeliveryAddress),
		ContactName:     o.ContactName,
		ContactPhone:    o.ContactPhone,
		PaymentMethod:   o.PaymentMethod,
		PaymentTime:     o.PaymentTime,
		Remark:          o.Remark,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
