package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

type MockStockMoveRepository struct {
	mock.Mock
}

func (m *MockStockMoveRepository) Create(move *entity.StockMove) error {
	args := m.Called(move)
	return args.Error(0)
}

func (m *MockStockMoveRepository) GetByID(id string) (*entity.StockMove, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StockMove), args.Error(1)
}

func (m *MockStockMoveRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStockMoveRepository) ListRecent(limit int) ([]*entity.StockMove, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.StockMove), args.Error(1)
}

func (m *MockStockMoveRepository) ListByProduct(productID string) ([]*entity.StockMove, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.StockMove), args.Error(1)
}

func (m *MockStockMoveRepository) BalanceByProduct(productID string) (decimal.Decimal, error) {
	args := m.Called(productID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStockMoveRepository) ListBalances() ([]*entity.ProductBalance, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductBalance), args.Error(1)
}

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

// fakeTxRunner executa fn diretamente sobre os mocks, sem transação real.
type fakeTxRunner struct {
	moveRepo repository.StockMoveRepository
	prodRepo repository.ProductRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.StockMoveRepository, repository.ProductRepository) error) error {
	return fn(f.moveRepo, f.prodRepo)
}

func newStockFixture() (*StockUseCase, *MockStockMoveRepository, *MockProductRepository) {
	moveRepo := new(MockStockMoveRepository)
	prodRepo := new(MockProductRepository)
	tx := &fakeTxRunner{moveRepo: moveRepo, prodRepo: prodRepo}
	return NewStockUseCase(tx, moveRepo, prodRepo), moveRepo, prodRepo
}

func qty(s string) dto.Quantity {
	return dto.Quantity{Decimal: decimal.RequireFromString(s)}
}

func TestRegisterMove_IN(t *testing.T) {
	uc, moveRepo, prodRepo := newStockFixture()

	prodRepo.On("GetForUpdate", "prod-1").Return(&entity.Product{ID: "prod-1", Name: "MDF Branco"}, nil)
	moveRepo.On("Create", mock.AnythingOfType("*entity.StockMove")).Return(nil)

	resp, err := uc.RegisterMove(context.Background(), "user-1", dto.RegisterMoveRequest{
		ProductID: "prod-1",
		MoveType:  entity.MoveTypeIN,
		Quantity:  qty("50"),
		Reason:    "compra fornecedor",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, entity.MoveTypeIN, resp.MoveType)
	assert.True(t, resp.Quantity.Equal(decimal.RequireFromString("50")))
	moveRepo.AssertExpectations(t)
	prodRepo.AssertExpectations(t)
}

func TestRegisterMove_OUTRejeitaAcimaDoSaldo(t *testing.T) {
	uc, moveRepo, prodRepo := newStockFixture()

	prodRepo.On("GetForUpdate", "prod-1").Return(&entity.Product{ID: "prod-1"}, nil)
	moveRepo.On("BalanceByProduct", "prod-1").Return(decimal.RequireFromString("25"), nil)

	_, err := uc.RegisterMove(context.Background(), "user-1", dto.RegisterMoveRequest{
		ProductID: "prod-1",
		MoveType:  entity.MoveTypeOUT,
		Quantity:  qty("30"),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	moveRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterMove_OUTNoLimiteDoSaldo(t *testing.T) {
	uc, moveRepo, prodRepo := newStockFixture()

	prodRepo.On("GetForUpdate", "prod-1").Return(&entity.Product{ID: "prod-1"}, nil)
	moveRepo.On("BalanceByProduct", "prod-1").Return(decimal.RequireFromString("25"), nil)
	moveRepo.On("Create", mock.AnythingOfType("*entity.StockMove")).Return(nil)

	resp, err := uc.RegisterMove(context.Background(), "user-1", dto.RegisterMoveRequest{
		ProductID: "prod-1",
		MoveType:  entity.MoveTypeOUT,
		Quantity:  qty("25"),
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	moveRepo.AssertExpectations(t)
}

func TestRegisterMove_ProdutoInexistente(t *testing.T) {
	uc, moveRepo, prodRepo := newStockFixture()

	prodRepo.On("GetForUpdate", "fantasma").Return(nil, nil)

	_, err := uc.RegisterMove(context.Background(), "user-1", dto.RegisterMoveRequest{
		ProductID: "fantasma",
		MoveType:  entity.MoveTypeIN,
		Quantity:  qty("1"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	moveRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterMove_ValidacaoDeEntrada(t *testing.T) {
	uc, _, _ := newStockFixture()

	cases := []dto.RegisterMoveRequest{
		{ProductID: "", MoveType: entity.MoveTypeIN, Quantity: qty("1")},
		{ProductID: "prod-1", MoveType: "TRANSFER", Quantity: qty("1")},
		{ProductID: "prod-1", MoveType: entity.MoveTypeIN, Quantity: qty("0")},
		{ProductID: "prod-1", MoveType: entity.MoveTypeOUT, Quantity: qty("-3")},
		{ProductID: "prod-1", MoveType: entity.MoveTypeADJUST, Quantity: qty("0")},
	}
	for _, in := range cases {
		_, err := uc.RegisterMove(context.Background(), "user-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegisterMove_ADJUSTNegativoAceito(t *testing.T) {
	uc, moveRepo, prodRepo := newStockFixture()

	prodRepo.On("GetForUpdate", "prod-1").Return(&entity.Product{ID: "prod-1"}, nil)
	moveRepo.On("Create", mock.AnythingOfType("*entity.StockMove")).Return(nil)

	resp, err := uc.RegisterMove(context.Background(), "user-1", dto.RegisterMoveRequest{
		ProductID: "prod-1",
		MoveType:  entity.MoveTypeADJUST,
		Quantity:  qty("-5"),
		Reason:    "quebra na serra",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Quantity.Equal(decimal.RequireFromString("-5")))
}

func TestDeleteMove(t *testing.T) {
	uc, moveRepo, _ := newStockFixture()

	moveRepo.On("GetByID", "mov-1").Return(&entity.StockMove{ID: "mov-1"}, nil)
	moveRepo.On("Delete", "mov-1").Return(nil)

	err := uc.DeleteMove(context.Background(), "mov-1")

	assert.NoError(t, err)
	moveRepo.AssertExpectations(t)
}

func TestDeleteMove_Inexistente(t *testing.T) {
	uc, moveRepo, _ := newStockFixture()

	moveRepo.On("GetByID", "mov-x").Return(nil, nil)

	err := uc.DeleteMove(context.Background(), "mov-x")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	moveRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestListRecent_LimitePadrao(t *testing.T) {
	uc, moveRepo, _ := newStockFixture()

	moveRepo.On("ListRecent", 40).Return([]*entity.StockMove{
		{ID: "mov-1", ProductID: "prod-1", MoveType: entity.MoveTypeIN, Quantity: decimal.NewFromInt(10), ProductName: "MDF Branco"},
	}, nil)

	moves, err := uc.ListRecent(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, moves, 1)
	assert.Equal(t, "MDF Branco", moves[0].ProductName)
}

func TestHistory_ProjetaSaldo(t *testing.T) {
	uc, moveRepo, prodRepo := newStockFixture()

	prodRepo.On("GetByID", "prod-1").Return(&entity.Product{ID: "prod-1", Name: "MDF Branco"}, nil)
	moveRepo.On("ListByProduct", "prod-1").Return([]*entity.StockMove{
		{ID: "mov-1", ProductID: "prod-1", MoveType: entity.MoveTypeIN, Quantity: decimal.NewFromInt(50)},
		{ID: "mov-2", ProductID: "prod-1", MoveType: entity.MoveTypeOUT, Quantity: decimal.NewFromInt(20)},
		{ID: "mov-3", ProductID: "prod-1", MoveType: entity.MoveTypeADJUST, Quantity: decimal.NewFromInt(-5)},
	}, nil)

	resp, err := uc.History(context.Background(), "prod-1")

	assert.NoError(t, err)
	assert.Len(t, resp.Moves, 3)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(25)))
}

func TestListBalances(t *testing.T) {
	uc, moveRepo, _ := newStockFixture()

	moveRepo.On("ListBalances").Return([]*entity.ProductBalance{
		{ProductID: "prod-1", Name: "MDF Branco", Balance: decimal.RequireFromString("25")},
		{ProductID: "prod-2", Name: "Dobradiça", Balance: decimal.Zero},
	}, nil)

	rows, err := uc.ListBalances(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.True(t, rows[1].Balance.IsZero())
}
