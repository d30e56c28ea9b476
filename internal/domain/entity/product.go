package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Product representa um produto ou serviço do catálogo.
// O nome é único de forma case-insensitive e sem espaços duplicados (ver NameKey).
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal // preço de catálogo, >= 0
	CreatedAt   time.Time
}

var nameFolder = cases.Fold()

// NameKey normaliza um nome de produto para detecção de duplicados:
// trim, espaços internos colapsados e case folding Unicode.
// "MDF Branco", "mdf  branco" e " MDF Branco " produzem a mesma chave.
func NameKey(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	return nameFolder.String(collapsed)
}
