package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/stalprokat/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router   *chi.Mux
	renderer *Renderer
	logger   logger.Logger
}

func NewRouter(router *chi.Mux, renderer *Renderer, logger logger.Logger) *Router {
	return &Router{router: router, renderer: renderer, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, searchUC usecase.SearchUC, adminUC usecase.AdminUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	catalogHandler := NewCatalogHandler(catalogUC, r.renderer, r.logger)
	searchHandler := NewSearchHandler(searchUC, r.renderer.mediaBaseURL(), r.logger)
	pageHandler := NewPageHandler(r.renderer)

	registerCatalogRoutes(r.router, catalogHandler, searchHandler, pageHandler)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		adminHandler := NewAdminHandler(adminUC, r.logger)
		registerAdminRoutes(v1, adminHandler)
	})

	r.router.NotFound(pageHandler.notFound)
}

func registerCatalogRoutes(router chi.Router, catalogHandler *CatalogHandler,
	searchHandler *SearchHandler, pageHandler *PageHandler) {
	router.Get("/", catalogHandler.home)
	router.Get("/category/{slug}/", catalogHandler.categoryDetail)
	router.Get("/category/{slug}/products/", catalogHandler.productList)
	router.Get("/product/{slug}/", catalogHandler.productDetail)
	router.Get("/services/", catalogHandler.servicesList)
	router.Get("/service/{slug}/", catalogHandler.serviceDetail)
	router.Get("/search/", searchHandler.search)

	router.Get("/about/", pageHandler.staticPage("about"))
	router.Get("/delivery/", pageHandler.staticPage("delivery"))
	router.Get("/payment/", pageHandler.staticPage("payment"))
	router.Get("/refund/", pageHandler.staticPage("refund"))
	router.Get("/contacts/", pageHandler.staticPage("contacts"))
}

func registerAdminRoutes(router chi.Router, adminHandler *AdminHandler) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Post("/categories", adminHandler.createCategory)
		admin.Patch("/categories/{id}/parent", adminHandler.moveCategory)
		admin.Delete("/categories/{id}", adminHandler.deleteCategory)
		admin.Post("/products", adminHandler.createProduct)
		admin.Post("/services", adminHandler.createService)
	})
}
