package billing

import (
	"context"
	"fmt"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

// QuotePDFUseCase gera o PDF da proposta de um orçamento.
type QuotePDFUseCase struct {
	quoteRepo  repository.QuoteRepository
	itemRepo   repository.QuoteItemRepository
	clientRepo repository.ClientRepository
	generator  PDFGenerator
}

func NewQuotePDFUseCase(
	quoteRepo repository.QuoteRepository,
	itemRepo repository.QuoteItemRepository,
	clientRepo repository.ClientRepository,
	generator PDFGenerator,
) *QuotePDFUseCase {
	return &QuotePDFUseCase{
		quoteRepo:  quoteRepo,
		itemRepo:   itemRepo,
		clientRepo: clientRepo,
		generator:  generator,
	}
}

// Generate monta o PDF e devolve o nome de arquivo sugerido
// ("orcamento-<número>.pdf") e o conteúdo.
func (uc *QuotePDFUseCase) Generate(ctx context.Context, quoteID string) (string, []byte, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return "", nil, err
	}
	if quote == nil {
		return "", nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil {
		return "", nil, err
	}
	items, err := uc.itemRepo.ListByQuote(quoteID)
	if err != nil {
		return "", nil, err
	}

	content, err := uc.generator.Generate(PDFData{Quote: quote, Client: client, Items: items})
	if err != nil {
		return "", nil, fmt.Errorf("gerando PDF do orçamento %s: %w", quoteID, err)
	}
	filename := fmt.Sprintf("orcamento-%d.pdf", quote.OrderNumber)
	return filename, content, nil
}
