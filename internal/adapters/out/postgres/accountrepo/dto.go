// Package accountrepo provides data transfer objects and mapping functions
// for customer account persistence.
package accountrepo

import (
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
)

// UserDTO represents the database structure for persisting customer
// accounts. The email carries a unique index; duplicate registration fails at
// the database even under concurrent requests.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(80)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID(),
		Name:         user.Name(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		CreatedAt:    user.CreatedAt(),
	}
}

func toDomain(dto UserDTO) *account.User {
	return account.RestoreUser(dto.ID, dto.Name, dto.Email, dto.PasswordHash, dto.CreatedAt)
}
