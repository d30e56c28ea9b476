package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/analytics"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/auth"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/billing"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/inventory"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	StockUC     *inventory.StockUseCase
	QuoteUC     *billing.QuoteUseCase
	QuotePDFUC  *billing.QuotePDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Produtos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Estoque
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/movements", stockHandler.RegisterMove)
	stock.Get("/movements", stockHandler.ListRecent)
	stock.Delete("/movements/:id", stockHandler.DeleteMove)
	stock.Get("/balances", stockHandler.ListBalances)
	stock.Get("/products/:id/history", stockHandler.History)

	// Orçamentos
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.QuotePDFUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Post("/:id/items", quoteHandler.AddItem)
	quotes.Delete("/:id/items/:itemId", quoteHandler.RemoveItem)
	quotes.Get("/:id/pdf", quoteHandler.DownloadPDF)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
