package inventory

import (
	"context"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que a validação de saldo e
// a gravação do movimento enxerguem o mesmo estado do livro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		moveRepo repository.StockMoveRepository,
		productRepo repository.ProductRepository,
	) error) error
}
