package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
	"github.com/kvmarcenaria/marcenaria-api/pkg/brl"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cria um novo cliente. O telefone é gravado já formatado.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     brl.FormatPhone(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtém um cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update atualiza um cliente existente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = name
	}
	if in.Phone != nil {
		client.Phone = brl.FormatPhone(*in.Phone)
	}
	if in.Address != nil {
		client.Address = strings.TrimSpace(*in.Address)
	}
	if in.Notes != nil {
		client.Notes = strings.TrimSpace(*in.Notes)
	}
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete exclui um cliente por ID.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista clientes com paginação.
func (uc *ClientUseCase) List(limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
