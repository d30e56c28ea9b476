package billing

import (
	"context"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios de orçamento atados a essa transação. Mantém a escrita do
// item e a regravação do total como uma unidade.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		itemRepo repository.QuoteItemRepository,
	) error) error
}

// PDFData carrega tudo que o gerador precisa para montar a proposta.
type PDFData struct {
	Quote  *entity.Quote
	Client *entity.Client
	Items  []*entity.QuoteItem
}

// PDFGenerator monta o PDF da proposta de orçamento.
type PDFGenerator interface {
	Generate(data PDFData) ([]byte, error)
}
