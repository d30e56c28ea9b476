package dto

import "github.com/shopspring/decimal"

// DashboardResponse contadores exibidos na página inicial.
type DashboardResponse struct {
	Clients     int                 `json:"clients"`
	Products    int                 `json:"products"`
	Quotes      int                 `json:"quotes"`
	QuotesTotal decimal.Decimal     `json:"quotes_total"`
	LastMoves   []StockMoveResponse `json:"last_moves"`
}
