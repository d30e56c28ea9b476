package billing

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
	"github.com/kvmarcenaria/marcenaria-api/pkg/brl"
)

const quoteDateLayout = "2006-01-02"

// QuoteUseCase implementa o ciclo de vida de orçamentos: cabeçalho, itens
// e o total desnormalizado.
//
// O total gravado no cabeçalho é sempre recalculado no banco (soma dos
// subtotais) dentro da mesma transação de qualquer escrita que o afete.
type QuoteUseCase struct {
	txRunner   TxRunner
	quoteRepo  repository.QuoteRepository
	itemRepo   repository.QuoteItemRepository
	clientRepo repository.ClientRepository
	prodRepo   repository.ProductRepository
}

func NewQuoteUseCase(
	txRunner TxRunner,
	quoteRepo repository.QuoteRepository,
	itemRepo repository.QuoteItemRepository,
	clientRepo repository.ClientRepository,
	prodRepo repository.ProductRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		txRunner:   txRunner,
		quoteRepo:  quoteRepo,
		itemRepo:   itemRepo,
		clientRepo: clientRepo,
		prodRepo:   prodRepo,
	}
}

// CreateQuote abre um orçamento para um cliente existente.
// Status vazio assume "Orçamento"; status desconhecido é rejeitado.
func (uc *QuoteUseCase) CreateQuote(ctx context.Context, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.StatusOrcamento
	}
	if !entity.ValidQuoteStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now()
	quote := &entity.Quote{
		ClientID:  in.ClientID,
		Status:    status,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	quote.ClientName = client.Name
	return toQuoteResponse(quote), nil
}

// GetQuote devolve o cabeçalho com os itens.
func (uc *QuoteUseCase) GetQuote(ctx context.Context, id string) (*dto.QuoteDetailResponse, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByQuote(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.QuoteDetailResponse{
		QuoteResponse: *toQuoteResponse(quote),
		Items:         make([]dto.QuoteItemResponse, 0, len(items)),
	}
	for _, it := range items {
		detail.Items = append(detail.Items, toItemResponse(it))
	}
	return detail, nil
}

// ListQuotes lista orçamentos mais recentes primeiro.
func (uc *QuoteUseCase) ListQuotes(ctx context.Context, page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	quotes, err := uc.quoteRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.quoteRepo.Count()
	if err != nil {
		return nil, err
	}
	resp := &dto.QuoteListResponse{
		Items: make([]dto.QuoteResponse, 0, len(quotes)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, q := range quotes {
		resp.Items = append(resp.Items, *toQuoteResponse(q))
	}
	return resp, nil
}

// UpdateQuote aplica alterações parciais ao cabeçalho. Campos nulos ficam
// como estão; quote_date vazia limpa a data. O total é regravado a partir
// da soma dos itens na mesma transação.
func (uc *QuoteUseCase) UpdateQuote(ctx context.Context, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}

	if in.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		quote.ClientID = *in.ClientID
		quote.ClientName = client.Name
	}
	if in.Status != nil {
		if !entity.ValidQuoteStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		quote.Status = *in.Status
	}
	if in.QuoteDate != nil {
		if *in.QuoteDate == "" {
			quote.QuoteDate = nil
		} else {
			d, err := time.Parse(quoteDateLayout, *in.QuoteDate)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			quote.QuoteDate = &d
		}
	}
	quote.UpdatedAt = time.Now()

	err = uc.txRunner.Run(ctx, func(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
		if err := quoteRepo.Update(quote); err != nil {
			return err
		}
		total, err := itemRepo.SumByQuote(id)
		if err != nil {
			return err
		}
		quote.Total = total
		return quoteRepo.UpdateTotal(id, total)
	})
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// AddItem inclui uma linha no orçamento capturando o preço do momento.
// Preço vazio assume o preço de catálogo do produto; preço inválido ou
// negativo é rejeitado. O total do cabeçalho é regravado na mesma transação.
func (uc *QuoteUseCase) AddItem(ctx context.Context, quoteID string, in dto.AddQuoteItemRequest) (*dto.QuoteItemResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.prodRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	qty := in.Quantity.Decimal
	if qty.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	unitPrice := product.Price
	if strings.TrimSpace(in.UnitPrice) != "" {
		unitPrice, err = brl.ParsePrice(in.UnitPrice)
		if err != nil || unitPrice.Sign() < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	item := &entity.QuoteItem{
		QuoteID:         quoteID,
		ProductID:       in.ProductID,
		Quantity:        qty,
		UnitPrice:       unitPrice,
		CreatedAt:       time.Now(),
		ProductName:     product.Name,
		ProductCategory: product.Category,
	}

	err = uc.txRunner.Run(ctx, func(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		total, err := itemRepo.SumByQuote(quoteID)
		if err != nil {
			return err
		}
		return quoteRepo.UpdateTotal(quoteID, total)
	})
	if err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// RemoveItem exclui uma linha e regrava o total do cabeçalho na mesma
// transação. O item precisa pertencer ao orçamento informado.
func (uc *QuoteUseCase) RemoveItem(ctx context.Context, quoteID, itemID string) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.QuoteID != quoteID {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
		if err := itemRepo.Delete(itemID); err != nil {
			return err
		}
		total, err := itemRepo.SumByQuote(quoteID)
		if err != nil {
			return err
		}
		return quoteRepo.UpdateTotal(quoteID, total)
	})
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		ID:          q.ID,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		Status:      q.Status,
		QuoteDate:   q.QuoteDate,
		OrderNumber: q.OrderNumber,
		Total:       q.Total,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toItemResponse(it *entity.QuoteItem) dto.QuoteItemResponse {
	return dto.QuoteItemResponse{
		ID:              it.ID,
		QuoteID:         it.QuoteID,
		ProductID:       it.ProductID,
		ProductName:     it.ProductName,
		ProductCategory: it.ProductCategory,
		Quantity:        it.Quantity,
		UnitPrice:       it.UnitPrice,
		Subtotal:        it.Subtotal,
	}
}
