package repository

import "github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"

// UserRepository porta de persistência para usuários.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
