package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
	"github.com/kvmarcenaria/marcenaria-api/pkg/brl"
)

// ProductUseCase casos de uso CRUD para o catálogo de produtos.
// O nome é único (case-insensitive, espaços colapsados): a pré-checagem via
// GetByNameKey e o índice único do banco produzem o mesmo resultado para o
// usuário, ErrDuplicate.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um novo produto. Preço na notação da oficina ("199,90").
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := parsePriceField(in.Price)
	if err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByNameKey(entity.NameKey(name))
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update atualiza um produto. Ao renomear, repete a checagem de duplicado
// ignorando o próprio registro.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByNameKey(entity.NameKey(name))
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		product.Name = name
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		price, err := parsePriceField(*in.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete exclui um produto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// parsePriceField valida o preço digitado: finito e >= 0.
// Texto não numérico é rejeitado antes de qualquer chamada ao banco.
func parsePriceField(s string) (decimal.Decimal, error) {
	price, err := brl.ParsePrice(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if price.Sign() < 0 {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return price, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}
