package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"mealkit/config"
	"mealkit/internal/domain/entity"
	"mealkit/internal/domain/repository"
	"mealkit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:   &config.AuthConfig{BcryptCost: 4},
		Upload: &config.UploadConfig{Dir: "/tmp/uploads", BaseURL: "http://localhost:8080/uploads", MaxBytes: 5 << 20},
		Admin:  &config.AdminConfig{LowStockThreshold: 20},
	}
}

// --- repository mocks ---

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)

	return args.Get(0).(int64), args.Error(1)
}

type mockFoodPackageRepository struct{ mock.Mock }

func (m *mockFoodPackageRepository) Create(ctx context.Context, pkg *entity.FoodPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockFoodPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodPackage, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.FoodPackage), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockFoodPackageRepository) List(ctx context.Context, filter repository.PackageFilter) ([]*entity.FoodPackage, int64, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.([]*entity.FoodPackage), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockFoodPackageRepository) Update(ctx context.Context, pkg *entity.FoodPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockFoodPackageRepository) SetStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockFoodPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFoodPackageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFoodPackageRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)

	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepository struct{ mock.Mock }

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id, userID)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, filter)
	if o := args.Get(0); o != nil {
		return o.([]*entity.Order), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.(map[entity.OrderStatus]int64), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) SumRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)

	return args.Get(0).(float64), args.Error(1)
}

func (m *mockOrderRepository) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	args := m.Called(ctx, since)

	return args.Get(0).(float64), args.Error(1)
}

type mockSubscriptionRepository struct{ mock.Mock }

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepository) FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, id, userID)
	if s := args.Get(0); s != nil {
		return s.(*entity.Subscription), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter repository.SubscriptionFilter) ([]*entity.Subscription, int64, error) {
	args := m.Called(ctx, filter)
	if s := args.Get(0); s != nil {
		return s.([]*entity.Subscription), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error) {
	args := m.Called(ctx, status)

	return args.Get(0).(int64), args.Error(1)
}

type mockInventoryLogRepository struct{ mock.Mock }

func (m *mockInventoryLogRepository) Create(ctx context.Context, log *entity.InventoryLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *mockInventoryLogRepository) ListByPackage(ctx context.Context, packageID uuid.UUID, page, pageSize int) ([]*entity.InventoryLog, int64, error) {
	args := m.Called(ctx, packageID, page, pageSize)
	if l := args.Get(0); l != nil {
		return l.([]*entity.InventoryLog), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

type mockPaymentRepository struct{ mock.Mock }

func (m *mockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	args := m.Called(ctx, orderID)
	if p := args.Get(0); p != nil {
		return p.(*entity.Payment), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockAddressRepository struct{ mock.Mock }

func (m *mockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id, userID)
	if a := args.Get(0); a != nil {
		return a.(*entity.Address), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, userID)
	if a := args.Get(0); a != nil {
		return a.([]*entity.Address), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepository) Update(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAddressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockDietProfileRepository struct{ mock.Mock }

func (m *mockDietProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.DietProfile, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.(*entity.DietProfile), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDietProfileRepository) Create(ctx context.Context, profile *entity.DietProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockDietProfileRepository) Update(ctx context.Context, profile *entity.DietProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockDietProfileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockUploadRepository struct{ mock.Mock }

func (m *mockUploadRepository) Create(ctx context.Context, upload *entity.Upload) error {
	return m.Called(ctx, upload).Error(0)
}

func (m *mockUploadRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Upload, error) {
	args := m.Called(ctx, id, userID)
	if u := args.Get(0); u != nil {
		return u.(*entity.Upload), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUploadRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Upload, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if u := args.Get(0); u != nil {
		return u.([]*entity.Upload), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockUploadRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- service mocks ---

type mockPasswordHasher struct{ mock.Mock }

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateToken(userID uuid.UUID, email string, roles []string) (string, error) {
	args := m.Called(userID, email, roles)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(token string) (*service.Claims, error) {
	args := m.Called(token)
	if c := args.Get(0); c != nil {
		return c.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockQRCodeService struct{ mock.Mock }

func (m *mockQRCodeService) GeneratePaymentQR(orderID string, amount float64) ([]byte, error) {
	args := m.Called(orderID, amount)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

type mockFileStore struct{ mock.Mock }

func (m *mockFileStore) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, content)

	return args.String(0), args.Error(1)
}

func (m *mockFileStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// --- transaction fakes ---

// fakeRepoFactory hands out the mocks above as transaction-bound repositories.
type fakeRepoFactory struct {
	userRepo         *mockUserRepository
	packageRepo      *mockFoodPackageRepository
	orderRepo        *mockOrderRepository
	subscriptionRepo *mockSubscriptionRepository
	logRepo          *mockInventoryLogRepository
	paymentRepo      *mockPaymentRepository
	addressRepo      *mockAddressRepository
	profileRepo      *mockDietProfileRepository
}

func (f *fakeRepoFactory) NewUserRepository() repository.UserRepository { return f.userRepo }
func (f *fakeRepoFactory) NewFoodPackageRepository() repository.FoodPackageRepository {
	return f.packageRepo
}
func (f *fakeRepoFactory) NewOrderRepository() repository.OrderRepository { return f.orderRepo }
func (f *fakeRepoFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return f.subscriptionRepo
}
func (f *fakeRepoFactory) NewInventoryLogRepository() repository.InventoryLogRepository {
	return f.logRepo
}
func (f *fakeRepoFactory) NewPaymentRepository() repository.PaymentRepository { return f.paymentRepo }
func (f *fakeRepoFactory) NewAddressRepository() repository.AddressRepository { return f.addressRepo }
func (f *fakeRepoFactory) NewDietProfileRepository() repository.DietProfileRepository {
	return f.profileRepo
}

// fakeTxManager runs the function directly against the fake factory.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (t *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(t.factory)
}
