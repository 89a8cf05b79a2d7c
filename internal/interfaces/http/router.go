package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/category"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/product"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/stock"
)

// RouterDeps carries the wired use cases into route registration.
type RouterDeps struct {
	CategoryUC *category.Service
	ProductUC  *product.Service
	SkuUC      *product.SkuService
	StockUC    *stock.Service
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Category tree
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.ListRoots)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Post("/:id/restore", categoryHandler.Restore)
	categories.Get("/:id/children", categoryHandler.ListChildren)
	categories.Get("/:id/ancestors", categoryHandler.ListAncestors)
	categories.Get("/:id/descendants", categoryHandler.ListDescendants)

	// Product catalog
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// SKUs hang off their product for creation and listing
	skuHandler := NewSkuHandler(deps.SkuUC, deps.StockUC)
	products.Post("/:id/skus", skuHandler.Create)
	products.Get("/:id/skus", skuHandler.ListByProduct)

	skus := api.Group("/skus")
	// Static segments before ":id" so Fiber does not swallow them.
	skus.Get("/low-stock", skuHandler.LowStock)
	skus.Get("/code/:code", skuHandler.GetByCode)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Delete("/:id", skuHandler.Delete)

	// Stock ledger operations
	stockHandler := NewStockHandler(deps.StockUC)
	skus.Post("/:id/stock/add", stockHandler.AddStock)
	skus.Post("/:id/stock/remove", stockHandler.RemoveStock)
	skus.Post("/:id/stock/reserve", stockHandler.Reserve)
	skus.Post("/:id/stock/release", stockHandler.Release)
	skus.Post("/:id/stock/adjust", stockHandler.Adjust)
	skus.Get("/:id/transactions", stockHandler.ListTransactions)
	api.Get("/transactions", stockHandler.ListTransactionsByType)
}
