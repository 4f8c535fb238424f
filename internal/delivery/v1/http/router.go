package http

import (
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/session"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	prUC usecase.ProductUC,
	orUC usecase.OrderUC,
	supUC usecase.SupplierUC,
	sess *session.Session,
	copywriter usecase.CopywriterInfra,
) {
	prHandler := NewProductHandler(prUC, r.logger)
	cartHandler := NewCartHandler(sess, prUC, orUC, r.logger)
	prefHandler := NewPreferencesHandler(sess, r.logger)
	adminHandler := NewAdminHandler(prUC, orUC, supUC, copywriter, r.logger)

	r.router.Get("/", prHandler.storeFront)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, prHandler)
		registerCartRoutes(v1, cartHandler)
		registerPreferencesRoutes(v1, prefHandler)
		registerAdminRoutes(v1, adminHandler)
	})

	// Любой несуществующий путь возвращает на витрину
	r.router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusFound)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{id}", prHandler.getProduct)
	})
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", cartHandler.getCart)
		c.Delete("/", cartHandler.clearCart)
		c.Post("/items", cartHandler.addItem)
		c.Put("/items/{productID}", cartHandler.updateItemQuantity)
		c.Delete("/items/{productID}", cartHandler.removeItem)
	})
	router.Post("/checkout", cartHandler.checkout)
}

func registerPreferencesRoutes(router chi.Router, prefHandler *PreferencesHandler) {
	router.Route("/preferences", func(p chi.Router) {
		p.Get("/", prefHandler.getPreferences)
		p.Post("/theme/toggle", prefHandler.toggleTheme)
		p.Put("/language", prefHandler.setLanguage)
		p.Post("/admin/toggle", prefHandler.toggleAdminMode)
	})
}

// Админские маршруты не закрыты авторизацией: admin-mode — подсказка
// интерфейсу, а не граница безопасности.
func registerAdminRoutes(router chi.Router, adminHandler *AdminHandler) {
	router.Route("/admin", func(a chi.Router) {
		a.Get("/dashboard", adminHandler.dashboard)
		a.Post("/products", adminHandler.addProduct)
		a.Delete("/products/{id}", adminHandler.deleteProduct)
		a.Get("/orders", adminHandler.listOrders)
		a.Put("/orders/{id}/status", adminHandler.updateOrderStatus)
		a.Get("/suppliers", adminHandler.listSuppliers)
		a.Post("/suppliers/sync", adminHandler.syncSuppliers)
		a.Post("/copywriter/suggest", adminHandler.suggestProductCopy)
		a.Post("/copywriter/analyze", adminHandler.analyzeCompetitors)
		a.Get("/guide", adminHandler.businessGuide)
	})
}
