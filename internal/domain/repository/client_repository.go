package repository

import "github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"

// ClientRepository porta de persistência para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Client, error)
	Count() (int, error)
}
