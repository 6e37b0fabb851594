package postgres

import (
	"context"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID

	return nil
}

// FindByOrderID retrieves the payment record of one order.
func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).Where("order_id = ?", orderID).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order id")
	}

	return toPaymentDomain(&paymentM), nil
}

// toPaymentDomain maps the persistence model to the pure domain entity.
func toPaymentDomain(m *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            m.ID,
		OrderID:       m.OrderID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		TransactionID: m.TransactionID,
		Status:        m.Status,
		PaidAt:        m.PaidAt,
	}
}

// fromPaymentDomain maps the domain entity to the persistence model.
func fromPaymentDomain(p *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:            p.ID,
		OrderID:       p.OrderID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		PaidAt:        p.PaidAt,
	}
}
