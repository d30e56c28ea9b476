package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) Create(quote *entity.Quote) error {
	args := m.Called(quote)
	if args.Error(0) == nil {
		quote.ID = "quote-1"
		quote.OrderNumber = 12
	}
	return args.Error(0)
}

func (m *MockQuoteRepository) GetByID(id string) (*entity.Quote, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quote), args.Error(1)
}

func (m *MockQuoteRepository) List(limit, offset int) ([]*entity.Quote, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Update(quote *entity.Quote) error {
	args := m.Called(quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateTotal(quoteID string, total decimal.Decimal) error {
	args := m.Called(quoteID, total)
	return args.Error(0)
}

func (m *MockQuoteRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockQuoteRepository) SumTotals() (decimal.Decimal, error) {
	args := m.Called()
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockQuoteItemRepository struct {
	mock.Mock
}

func (m *MockQuoteItemRepository) Create(item *entity.QuoteItem) error {
	args := m.Called(item)
	if args.Error(0) == nil {
		item.ID = "item-1"
		item.Subtotal = item.Quantity.Mul(item.UnitPrice)
	}
	return args.Error(0)
}

func (m *MockQuoteItemRepository) GetByID(id string) (*entity.QuoteItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuoteItem), args.Error(1)
}

func (m *MockQuoteItemRepository) ListByQuote(quoteID string) ([]*entity.QuoteItem, error) {
	args := m.Called(quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.QuoteItem), args.Error(1)
}

func (m *MockQuoteItemRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuoteItemRepository) SumByQuote(quoteID string) (decimal.Decimal, error) {
	args := m.Called(quoteID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(client *entity.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(id string) (*entity.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) Update(client *entity.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockClientRepository) List(limit, offset int) ([]*entity.Client, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Client), args.Error(1)
}

func (m *MockClientRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
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

type fakeTxRunner struct {
	quoteRepo repository.QuoteRepository
	itemRepo  repository.QuoteItemRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.QuoteRepository, repository.QuoteItemRepository) error) error {
	return fn(f.quoteRepo, f.itemRepo)
}

type quoteFixture struct {
	uc         *QuoteUseCase
	quoteRepo  *MockQuoteRepository
	itemRepo   *MockQuoteItemRepository
	clientRepo *MockClientRepository
	prodRepo   *MockProductRepository
}

func newQuoteFixture() quoteFixture {
	f := quoteFixture{
		quoteRepo:  new(MockQuoteRepository),
		itemRepo:   new(MockQuoteItemRepository),
		clientRepo: new(MockClientRepository),
		prodRepo:   new(MockProductRepository),
	}
	tx := &fakeTxRunner{quoteRepo: f.quoteRepo, itemRepo: f.itemRepo}
	f.uc = NewQuoteUseCase(tx, f.quoteRepo, f.itemRepo, f.clientRepo, f.prodRepo)
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateQuote_StatusPadrao(t *testing.T) {
	f := newQuoteFixture()

	f.clientRepo.On("GetByID", "cli-1").Return(&entity.Client{ID: "cli-1", Name: "João Pereira"}, nil)
	f.quoteRepo.On("Create", mock.AnythingOfType("*entity.Quote")).Return(nil)

	resp, err := f.uc.CreateQuote(context.Background(), dto.CreateQuoteRequest{ClientID: "cli-1"})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusOrcamento, resp.Status)
	assert.Equal(t, int64(12), resp.OrderNumber)
	assert.Equal(t, "João Pereira", resp.ClientName)
	assert.True(t, resp.Total.IsZero())
}

func TestCreateQuote_ClienteInexistente(t *testing.T) {
	f := newQuoteFixture()

	f.clientRepo.On("GetByID", "cli-x").Return(nil, nil)

	_, err := f.uc.CreateQuote(context.Background(), dto.CreateQuoteRequest{ClientID: "cli-x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.quoteRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateQuote_StatusDesconhecido(t *testing.T) {
	f := newQuoteFixture()

	f.clientRepo.On("GetByID", "cli-1").Return(&entity.Client{ID: "cli-1"}, nil)

	_, err := f.uc.CreateQuote(context.Background(), dto.CreateQuoteRequest{ClientID: "cli-1", Status: "Cancelado"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestAddItem_PrecoNaNotacaoDaOficina(t *testing.T) {
	f := newQuoteFixture()

	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1"}, nil)
	f.prodRepo.On("GetByID", "prod-1").Return(&entity.Product{ID: "prod-1", Name: "Armário sob medida", Price: dec("1500")}, nil)
	f.itemRepo.On("Create", mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	f.itemRepo.On("SumByQuote", "quote-1").Return(dec("399.80"), nil)
	f.quoteRepo.On("UpdateTotal", "quote-1", dec("399.80")).Return(nil)

	resp, err := f.uc.AddItem(context.Background(), "quote-1", dto.AddQuoteItemRequest{
		ProductID: "prod-1",
		Quantity:  dto.Quantity{Decimal: dec("2")},
		UnitPrice: "R$ 199,90",
	})

	assert.NoError(t, err)
	assert.True(t, resp.UnitPrice.Equal(dec("199.90")))
	assert.True(t, resp.Subtotal.Equal(dec("399.80")))
	f.quoteRepo.AssertExpectations(t)
}

func TestAddItem_PrecoVazioUsaCatalogo(t *testing.T) {
	f := newQuoteFixture()

	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1"}, nil)
	f.prodRepo.On("GetByID", "prod-1").Return(&entity.Product{ID: "prod-1", Price: dec("250")}, nil)
	f.itemRepo.On("Create", mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	f.itemRepo.On("SumByQuote", "quote-1").Return(dec("250"), nil)
	f.quoteRepo.On("UpdateTotal", "quote-1", dec("250")).Return(nil)

	resp, err := f.uc.AddItem(context.Background(), "quote-1", dto.AddQuoteItemRequest{
		ProductID: "prod-1",
		Quantity:  dto.Quantity{Decimal: dec("1")},
	})

	assert.NoError(t, err)
	assert.True(t, resp.UnitPrice.Equal(dec("250")))
}

func TestAddItem_Invalido(t *testing.T) {
	f := newQuoteFixture()

	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1"}, nil)
	f.prodRepo.On("GetByID", "prod-1").Return(&entity.Product{ID: "prod-1", Price: dec("250")}, nil)

	cases := []dto.AddQuoteItemRequest{
		{ProductID: "prod-1", Quantity: dto.Quantity{Decimal: decimal.Zero}},
		{ProductID: "prod-1", Quantity: dto.Quantity{Decimal: dec("1")}, UnitPrice: "abc"},
		{ProductID: "prod-1", Quantity: dto.Quantity{Decimal: dec("1")}, UnitPrice: "-10"},
	}
	for _, in := range cases {
		_, err := f.uc.AddItem(context.Background(), "quote-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	f.itemRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRemoveItem_RecalculaTotal(t *testing.T) {
	f := newQuoteFixture()

	f.itemRepo.On("GetByID", "item-1").Return(&entity.QuoteItem{ID: "item-1", QuoteID: "quote-1"}, nil)
	f.itemRepo.On("Delete", "item-1").Return(nil)
	f.itemRepo.On("SumByQuote", "quote-1").Return(decimal.Zero, nil)
	f.quoteRepo.On("UpdateTotal", "quote-1", decimal.Zero).Return(nil)

	err := f.uc.RemoveItem(context.Background(), "quote-1", "item-1")

	assert.NoError(t, err)
	f.quoteRepo.AssertExpectations(t)
}

func TestRemoveItem_DeOutroOrcamento(t *testing.T) {
	f := newQuoteFixture()

	f.itemRepo.On("GetByID", "item-1").Return(&entity.QuoteItem{ID: "item-1", QuoteID: "quote-2"}, nil)

	err := f.uc.RemoveItem(context.Background(), "quote-1", "item-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.itemRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestUpdateQuote_DataEStatus(t *testing.T) {
	f := newQuoteFixture()

	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1", ClientID: "cli-1", Status: entity.StatusOrcamento}, nil)
	f.quoteRepo.On("Update", mock.AnythingOfType("*entity.Quote")).Return(nil)
	f.itemRepo.On("SumByQuote", "quote-1").Return(dec("399.80"), nil)
	f.quoteRepo.On("UpdateTotal", "quote-1", dec("399.80")).Return(nil)

	status := entity.StatusProducao
	date := "2026-03-15"
	resp, err := f.uc.UpdateQuote(context.Background(), "quote-1", dto.UpdateQuoteRequest{Status: &status, QuoteDate: &date})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusProducao, resp.Status)
	assert.Equal(t, "2026-03-15", resp.QuoteDate.Format("2006-01-02"))
	assert.True(t, resp.Total.Equal(dec("399.80")))
}

func TestUpdateQuote_LimpaData(t *testing.T) {
	f := newQuoteFixture()

	d := time.Now()
	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1", QuoteDate: &d}, nil)
	f.quoteRepo.On("Update", mock.AnythingOfType("*entity.Quote")).Return(nil)
	f.itemRepo.On("SumByQuote", "quote-1").Return(decimal.Zero, nil)
	f.quoteRepo.On("UpdateTotal", "quote-1", decimal.Zero).Return(nil)

	empty := ""
	resp, err := f.uc.UpdateQuote(context.Background(), "quote-1", dto.UpdateQuoteRequest{QuoteDate: &empty})

	assert.NoError(t, err)
	assert.Nil(t, resp.QuoteDate)
}

func TestUpdateQuote_DataInvalida(t *testing.T) {
	f := newQuoteFixture()

	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1"}, nil)

	bad := "15/03/2026"
	_, err := f.uc.UpdateQuote(context.Background(), "quote-1", dto.UpdateQuoteRequest{QuoteDate: &bad})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetQuote_ComItens(t *testing.T) {
	f := newQuoteFixture()

	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1", Total: dec("399.80")}, nil)
	f.itemRepo.On("ListByQuote", "quote-1").Return([]*entity.QuoteItem{
		{ID: "item-1", QuoteID: "quote-1", ProductName: "Armário sob medida", Subtotal: dec("399.80")},
	}, nil)

	resp, err := f.uc.GetQuote(context.Background(), "quote-1")

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "Armário sob medida", resp.Items[0].ProductName)
}

type stubPDFGenerator struct {
	data PDFData
}

func (s *stubPDFGenerator) Generate(data PDFData) ([]byte, error) {
	s.data = data
	return []byte("%PDF-1.7"), nil
}

func TestQuotePDF_NomeDoArquivo(t *testing.T) {
	f := newQuoteFixture()
	gen := &stubPDFGenerator{}
	pdfUC := NewQuotePDFUseCase(f.quoteRepo, f.itemRepo, f.clientRepo, gen)

	f.quoteRepo.On("GetByID", "quote-1").Return(&entity.Quote{ID: "quote-1", ClientID: "cli-1", OrderNumber: 12}, nil)
	f.clientRepo.On("GetByID", "cli-1").Return(&entity.Client{ID: "cli-1", Name: "João Pereira"}, nil)
	f.itemRepo.On("ListByQuote", "quote-1").Return([]*entity.QuoteItem{}, nil)

	filename, content, err := pdfUC.Generate(context.Background(), "quote-1")

	assert.NoError(t, err)
	assert.Equal(t, "orcamento-12.pdf", filename)
	assert.NotEmpty(t, content)
	assert.Equal(t, "João Pereira", gen.data.Client.Name)
}

func TestQuotePDF_OrcamentoInexistente(t *testing.T) {
	f := newQuoteFixture()
	pdfUC := NewQuotePDFUseCase(f.quoteRepo, f.itemRepo, f.clientRepo, &stubPDFGenerator{})

	f.quoteRepo.On("GetByID", "quote-x").Return(nil, nil)

	_, _, err := pdfUC.Generate(context.Background(), "quote-x")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
