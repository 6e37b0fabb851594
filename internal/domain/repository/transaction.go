package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewFoodPackageRepository returns a FoodPackageRepository instance bound to the current transaction.
	NewFoodPackageRepository() FoodPackageRepository

	// NewOrderRepository returns an OrderRepository instance bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewSubscriptionRepository returns a SubscriptionRepository instance bound to the current transaction.
	NewSubscriptionRepository() SubscriptionRepository

	// NewInventoryLogRepository returns an InventoryLogRepository instance bound to the current transaction.
	NewInventoryLogRepository() InventoryLogRepository

	// NewPaymentRepository returns a PaymentRepository instance bound to the current transaction.
	NewPaymentRepository() PaymentRepository

	// NewAddressRepository returns an AddressRepository instance bound to the current transaction.
	NewAddressRepository() AddressRepository

	// NewDietProfileRepository returns a DietProfileRepository instance bound to the current transaction.
	NewDietProfileRepository() DietProfileRepository
}
