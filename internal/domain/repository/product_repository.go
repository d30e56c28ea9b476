package repository

import "github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"

// ProductRepository porta de persistência para o catálogo de produtos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByNameKey busca pelo nome normalizado (entity.NameKey) para a
	// pré-checagem de duplicados; o índice único do banco é o fallback
	// autoritativo.
	GetByNameKey(key string) (*entity.Product, error)
	// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
	// Usado pelo motor de estoque para serializar a validação de saída.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Product, error)
	Count() (int, error)
}
