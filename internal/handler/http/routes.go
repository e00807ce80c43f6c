package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withSecurityHeaders)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", promhttp.Handler())

		r.Post("/api/auth/login", h.login)

		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/{id}", h.getProduct)
		r.Get("/api/categories", h.listCategories)
		r.Get("/api/categories/{id}", h.getCategory)
		r.Get("/api/uploads/{id}", h.getUpload)
		r.Get("/api/uploads/{id}/content", h.getUploadContent)
	})

	// routes behind the access gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/products", h.createProduct)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		r.Post("/api/categories", h.createCategory)
		r.Put("/api/categories/{id}", h.renameCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)

		r.Post("/api/uploads", h.uploadFiles)

		r.Post("/api/admins", h.createAdmin)
		r.Delete("/api/admins/{id}", h.deleteAdmin)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
