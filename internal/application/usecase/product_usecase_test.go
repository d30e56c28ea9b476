package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByNameKey(key string) (*entity.Product, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func TestProductCreate(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	repo.On("GetByNameKey", entity.NameKey("MDF Branco")).Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*entity.Product")).Return(nil)

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:     "MDF Branco",
		Category: "Chapas",
		Price:    "R$ 199,90",
	})

	assert.NoError(t, err)
	assert.Equal(t, "MDF Branco", resp.Name)
	assert.True(t, resp.Price.Equal(decimal.RequireFromString("199.90")))
	repo.AssertExpectations(t)
}

func TestProductCreate_NomeDuplicadoIgnorandoCaixa(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	// "Dobradiça" já existe; "dobradiça" produz a mesma chave normalizada
	repo.On("GetByNameKey", entity.NameKey("dobradiça")).
		Return(&entity.Product{ID: "prod-1", Name: "Dobradiça"}, nil)

	_, err := uc.Create(dto.CreateProductRequest{Name: "dobradiça", Price: "5,00"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductCreate_NomeDuplicadoComEspacos(t *testing.T) {
	assert.Equal(t, entity.NameKey("MDF Branco"), entity.NameKey(" mdf  BRANCO "))

	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	repo.On("GetByNameKey", entity.NameKey("MDF Branco")).
		Return(&entity.Product{ID: "prod-1", Name: "MDF Branco"}, nil)

	_, err := uc.Create(dto.CreateProductRequest{Name: " mdf  BRANCO ", Price: "199,90"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecoInvalido(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	for _, price := range []string{"abc", "", "-10,00"} {
		_, err := uc.Create(dto.CreateProductRequest{Name: "Parafuso", Price: price})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductUpdate_RenomearParaNomeLivre(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	repo.On("GetByID", "prod-1").Return(&entity.Product{ID: "prod-1", Name: "MDF Branco"}, nil)
	repo.On("GetByNameKey", entity.NameKey("MDF Cru")).Return(nil, nil)
	repo.On("Update", mock.AnythingOfType("*entity.Product")).Return(nil)

	name := "MDF Cru"
	resp, err := uc.Update("prod-1", dto.UpdateProductRequest{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "MDF Cru", resp.Name)
}

func TestProductUpdate_RenomearParaProprioNome(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	// a pré-checagem encontra o próprio registro: não é duplicado
	repo.On("GetByID", "prod-1").Return(&entity.Product{ID: "prod-1", Name: "MDF Branco"}, nil)
	repo.On("GetByNameKey", entity.NameKey("mdf branco")).
		Return(&entity.Product{ID: "prod-1", Name: "MDF Branco"}, nil)
	repo.On("Update", mock.AnythingOfType("*entity.Product")).Return(nil)

	name := "mdf branco"
	_, err := uc.Update("prod-1", dto.UpdateProductRequest{Name: &name})

	assert.NoError(t, err)
}

func TestProductUpdate_RenomearParaNomeOcupado(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	repo.On("GetByID", "prod-1").Return(&entity.Product{ID: "prod-1", Name: "MDF Branco"}, nil)
	repo.On("GetByNameKey", entity.NameKey("Dobradiça")).
		Return(&entity.Product{ID: "prod-2", Name: "Dobradiça"}, nil)

	name := "Dobradiça"
	_, err := uc.Update("prod-1", dto.UpdateProductRequest{Name: &name})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewProductUseCase(repo)

	repo.On("GetByID", "prod-x").Return(nil, nil)

	resp, err := uc.GetByID("prod-x")

	assert.NoError(t, err)
	assert.Nil(t, resp)
}
