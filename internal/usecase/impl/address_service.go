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

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the user's saved addresses, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetAddress returns one owned address.
func (srv *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	return srv.findOwned(ctx, userID, addressID)
}

// CreateAddress saves a new delivery address. Marking it default clears the
// flag from the user's other addresses in the same transaction.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{
		UserID:        userID,
		Name:          input.Name,
		Phone:         input.Phone,
		Province:      input.Province,
		City:          input.City,
		District:      input.District,
		DetailAddress: input.DetailAddress,
		IsDefault:     input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if input.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}

		return addressRepo.Create(ctx, address)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// UpdateAddress rewrites an owned address.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	var address *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		var err error
		address, err = addressRepo.FindByIDForUser(ctx, addressID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return err
		}

		if input.IsDefault && !address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}

		address.Name = input.Name
		address.Phone = input.Phone
		address.Province = input.Province
		address.City = input.City
		address.District = input.District
		address.DetailAddress = input.DetailAddress
		address.IsDefault = input.IsDefault

		return addressRepo.Update(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress removes an owned address permanently.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, userID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, addressID); err != nil {
		return err
	}

	srv.log(ctx).Info("Address deleted", slog.Any("addressID", addressID), slog.Any("userID", userID))

	return nil
}

// SetDefaultAddress promotes one address to default, demoting the rest.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	var address *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		var err error
		address, err = addressRepo.FindByIDForUser(ctx, addressID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return err
		}

		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return err
		}

		address.IsDefault = true

		return addressRepo.Update(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (srv *addressService) findOwned(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByIDForUser(ctx, addressID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}
