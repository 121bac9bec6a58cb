// Package postgres contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL is the production backend; SQLite serves local development and tests.
package postgres

import (
	"context"

	"chorechart/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewRepositoryFactory returns a factory whose repositories run directly on db.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAuthRepository() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) NewChoreRepository() repository.ChoreRepository {
	return NewChoreRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCompletionRepository() repository.CompletionRepository {
	return NewCompletionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRewardRepository() repository.RewardRepository {
	return NewRewardRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRedemptionRepository() repository.RedemptionRepository {
	return NewRedemptionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewBehaviorLogRepository() repository.BehaviorLogRepository {
	return NewBehaviorLogRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction (and, on SQLite, the only connection) open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error, annotated with the rollback failure.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
