package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Pisarev203/tg-shop/internal/catalog"
	"github.com/Pisarev203/tg-shop/internal/handler"
	"github.com/Pisarev203/tg-shop/internal/order"
)

// NewRouter assembles the public and admin HTTP surface.
func NewRouter(adminToken string, catalogSvc catalog.Service, orderSvc order.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)

	r.Route("/api", func(r chi.Router) {
		catalogHandler.RegisterPublicRoutes(r)
		orderHandler.RegisterPublicRoutes(r)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handler.RequireAdmin(adminToken))
			catalogHandler.RegisterAdminRoutes(r)
			orderHandler.RegisterAdminRoutes(r)
		})
	})

	return r
}
