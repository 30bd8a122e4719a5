// Package userrepo persists users through the shared gormrepo machinery.
package userrepo

import (
	"shop/internal/core/domain/model/user"
)

// UserDTO is the storage shape of a user. Username and email carry unique
// indexes; the password hash lives in the "password" column.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex:ix_users_username"`
	Email        string `gorm:"type:varchar(100);not null;uniqueIndex:ix_users_email"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

func toDomain(dto *UserDTO) *user.User {
	id := dto.ID
	return &user.User{
		ID:           &id,
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
	}
}
