package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
// Price é texto na notação da oficina: "199,90", "R$ 199,90" ou "199.90".
type CreateProductRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// UpdateProductRequest entrada para atualizar um produto.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
