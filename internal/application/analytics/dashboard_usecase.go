package analytics

import (
	"context"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

const lastMovesLimit = 5

// DashboardUseCase agrega os contadores da página inicial: clientes,
// produtos, orçamentos (quantidade e soma) e as últimas movimentações.
type DashboardUseCase struct {
	clientRepo repository.ClientRepository
	prodRepo   repository.ProductRepository
	quoteRepo  repository.QuoteRepository
	moveRepo   repository.StockMoveRepository
}

func NewDashboardUseCase(
	clientRepo repository.ClientRepository,
	prodRepo repository.ProductRepository,
	quoteRepo repository.QuoteRepository,
	moveRepo repository.StockMoveRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clientRepo: clientRepo,
		prodRepo:   prodRepo,
		quoteRepo:  quoteRepo,
		moveRepo:   moveRepo,
	}
}

// Summary monta o painel. As leituras são independentes e qualquer falha
// aborta a resposta inteira.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	clients, err := uc.clientRepo.Count()
	if err != nil {
		return nil, err
	}
	products, err := uc.prodRepo.Count()
	if err != nil {
		return nil, err
	}
	quotes, err := uc.quoteRepo.Count()
	if err != nil {
		return nil, err
	}
	quotesTotal, err := uc.quoteRepo.SumTotals()
	if err != nil {
		return nil, err
	}
	moves, err := uc.moveRepo.ListRecent(lastMovesLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Clients:     clients,
		Products:    products,
		Quotes:      quotes,
		QuotesTotal: quotesTotal,
		LastMoves:   make([]dto.StockMoveResponse, 0, len(moves)),
	}
	for _, m := range moves {
		resp.LastMoves = append(resp.LastMoves, dto.StockMoveResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			MoveType:    m.MoveType,
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt,
		})
	}
	return resp, nil
}
