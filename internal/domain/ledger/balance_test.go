package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/ledger"
)

func move(tipo string, qty string) entity.StockMove {
	return entity.StockMove{
		ProductID: "p1",
		MoveType:  tipo,
		Quantity:  decimal.RequireFromString(qty),
	}
}

func TestBalance_ConjuntoVazio(t *testing.T) {
	assert.True(t, ledger.Balance(nil).IsZero())
	assert.True(t, ledger.Balance([]entity.StockMove{}).IsZero())
}

// Cenário de referência: IN 50, OUT 20, ADJUST -5 → saldo 25.
func TestBalance_EntradaSaidaAjuste(t *testing.T) {
	moves := []entity.StockMove{
		move(entity.MoveTypeIN, "50"),
		move(entity.MoveTypeOUT, "20"),
		move(entity.MoveTypeADJUST, "-5"),
	}
	assert.True(t, decimal.NewFromInt(25).Equal(ledger.Balance(moves)))
}

func TestBalance_OrdemIrrelevante(t *testing.T) {
	a := []entity.StockMove{
		move(entity.MoveTypeIN, "50"),
		move(entity.MoveTypeOUT, "20"),
		move(entity.MoveTypeADJUST, "-5"),
	}
	b := []entity.StockMove{
		move(entity.MoveTypeADJUST, "-5"),
		move(entity.MoveTypeOUT, "20"),
		move(entity.MoveTypeIN, "50"),
	}
	assert.True(t, ledger.Balance(a).Equal(ledger.Balance(b)))
}

func TestBalance_AjustePositivoENegativo(t *testing.T) {
	moves := []entity.StockMove{
		move(entity.MoveTypeADJUST, "10"),
		move(entity.MoveTypeADJUST, "-4"),
	}
	assert.True(t, decimal.NewFromInt(6).Equal(ledger.Balance(moves)))
}

func TestBalance_QuantidadesFracionadas(t *testing.T) {
	moves := []entity.StockMove{
		move(entity.MoveTypeIN, "2.5"),
		move(entity.MoveTypeOUT, "1.25"),
	}
	assert.True(t, decimal.RequireFromString("1.25").Equal(ledger.Balance(moves)))
}

func TestBalance_TipoDesconhecidoContribuiZero(t *testing.T) {
	moves := []entity.StockMove{
		move(entity.MoveTypeIN, "10"),
		move("TRANSFER", "99"),
	}
	assert.True(t, decimal.NewFromInt(10).Equal(ledger.Balance(moves)))
}

func TestBalanceByProduct(t *testing.T) {
	moves := []entity.StockMove{
		{ProductID: "a", MoveType: entity.MoveTypeIN, Quantity: decimal.NewFromInt(5)},
		{ProductID: "b", MoveType: entity.MoveTypeIN, Quantity: decimal.NewFromInt(3)},
		{ProductID: "a", MoveType: entity.MoveTypeOUT, Quantity: decimal.NewFromInt(2)},
	}
	saldos := ledger.BalanceByProduct(moves)
	assert.True(t, decimal.NewFromInt(3).Equal(saldos["a"]))
	assert.True(t, decimal.NewFromInt(3).Equal(saldos["b"]))
}

func TestCoerceQuantity(t *testing.T) {
	assert.True(t, ledger.CoerceQuantity(nil).IsZero())
	assert.True(t, ledger.CoerceQuantity("").IsZero())
	assert.True(t, ledger.CoerceQuantity("abc").IsZero())
	assert.True(t, decimal.RequireFromString("2.5").Equal(ledger.CoerceQuantity("2,5")))
	assert.True(t, decimal.RequireFromString("2.5").Equal(ledger.CoerceQuantity("2.5")))
	assert.True(t, decimal.NewFromInt(7).Equal(ledger.CoerceQuantity(7)))
	assert.True(t, decimal.RequireFromString("1.5").Equal(ledger.CoerceQuantity(1.5)))
}
