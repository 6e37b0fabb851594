package postgres

import (
	"context"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/infra/persistence/model"
	"mealkit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the domain.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create persists a new subscription.
func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	subM := fromSubscriptionDomain(sub)

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPackageNotFound.WrapMessage("invalid package reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	sub.CreatedAt = subM.CreatedAt
	sub.UpdatedAt = subM.UpdatedAt

	return nil
}

// FindByIDForUser retrieves a subscription only when it belongs to the given user.
func (repo *subscriptionRepository) FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription for user")
	}

	return toSubscriptionDomain(&subM), nil
}

// List returns subscriptions matching the filter plus the total match count, newest first.
func (repo *subscriptionRepository) List(ctx context.Context, filter repository.SubscriptionFilter) ([]*entity.Subscription, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SubscriptionModel{})

	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count subscriptions")
	}

	var subMs []model.SubscriptionModel
	if err := query.Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.PageSize)).
		Find(&subMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list subscriptions")
	}

	subs := make([]*entity.Subscription, len(subMs))
	for i := range subMs {
		subs[i] = toSubscriptionDomain(&subMs[i])
	}

	return subs, total, nil
}

// Update modifies an existing subscription.
func (repo *subscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	subM := fromSubscriptionDomain(sub)

	result := repo.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("id = ?", sub.ID).
		Updates(map[string]any{
			"status":             subM.Status,
			"next_delivery_date": subM.NextDeliveryDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// CountByStatus returns the number of subscriptions in the given state.
func (repo *subscriptionRepository) CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscriptions by status")
	}

	return count, nil
}

// toSubscriptionDomain maps the persistence model to the pure domain entity.
func toSubscriptionDomain(m *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:               m.ID,
		UserID:           m.UserID,
		PackageID:        m.PackageID,
		PackageName:      m.PackageName,
		PackageImage:     m.PackageImage,
		Frequency:        entity.SubscriptionFrequency(m.Frequency),
		Quantity:         m.Quantity,
		TotalAmount:      m.TotalAmount,
		DurationMonths:   m.DurationMonths,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		NextDeliveryDate: m.NextDeliveryDate,
		DeliveryAddress:  util.UnmarshalOr(m.DeliveryAddress, entity.DeliveryAddress{}),
		ContactName:      m.ContactName,
		ContactPhone:     m.ContactPhone,
		Status:           entity.SubscriptionStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// fromSubscriptionDomain maps the domain entity to the persistence model.
func fromSubscriptionDomain(s *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:               s.ID,
		UserID:           s.UserID,
		PackageID:        s.PackageID,
		PackageName:      s.PackageName,
		PackageImage:     s.PackageImage,
		Frequency:        string(s.Frequency),
		Quantity:         s.Quantity,
		TotalAmount:      s.TotalAmount,
		DurationMonths:   s.DurationMonths,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		NextDeliveryDate: s.NextDeliveryDate,
		DeliveryAddress:  util.MarshalOrNull(s.DeliveryAddress),
		ContactName:      s.ContactName,
		ContactPhone:     s.ContactPhone,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
