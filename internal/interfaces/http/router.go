package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/report"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	CompanyUC        *usecase.CompanyUseCase
	ProductUC        *usecase.ProductUseCase
	InventoryUC      *usecase.InventoryUseCase
	RecommendationUC *usecase.RecommendationUseCase
	ReportUC         *report.UseCase
	Principals       *usecase.PrincipalService
	JWTSecret        string
}

// Router registra las rutas de la API.
// Solo la emisión y el refresco de tokens son públicos; todo recurso exige
// Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tokens (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/token", authHandler.Obtain)
	api.Post("/token/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; el caso de uso aplica las reglas de admin/propio usuario)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Principals)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Principals)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Get("/:id/products", companyHandler.ListProducts)

	// Products (protegido)
	// La ruta de recomendación va antes de /:id para que Fiber no la capture
	// como parámetro.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Principals)
	recommendationHandler := NewRecommendationHandler(deps.RecommendationUC)
	products.Get("/recommendation", recommendationHandler.Recommend)
	products.Post("/recommendation", recommendationHandler.Recommend)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/inventory", productHandler.GetInventory)

	// Inventory (protegido)
	// low_stock y generate_pdf van antes de /:id por la misma razón.
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportUC, deps.Principals)
	invGroup.Get("/low_stock", inventoryHandler.LowStock)
	invGroup.Post("/generate_pdf", inventoryHandler.GeneratePDF)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)
}
