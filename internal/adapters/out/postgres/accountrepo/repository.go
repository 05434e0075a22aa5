package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user. A duplicate email violates the unique index and is
// reported as an entity-in-use error.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewEntityInUseError(
				fmt.Sprintf("email %s is already registered", user.Email()))
		}
		return err
	}

	user.AssignID(dto.ID)
	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// GetByID retrieves a user by id.
func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*account.User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError(
				fmt.Sprintf("There is no user with id %d", id))
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetByEmail retrieves a user by lowercased email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError(
				fmt.Sprintf("There is no user with email %s", email))
		}
		return nil, err
	}

	return toDomain(dto), nil
}
