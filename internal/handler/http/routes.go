package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Kind path segments.
const (
	assetsPath              = "assets"
	contractDefinitionsPath = "contract-definitions"
	policyDefinitionsPath   = "policy-definitions"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		if h.tokenSignKey != "" {
			r.Use(h.auth)
		}
		r.Use(middleware.Compress(5, "application/json"))

		r.Route("/endpoints", func(r chi.Router) {
			r.Post("/", h.createEndpoint)
			r.Get("/", h.listEndpoints)

			r.Route("/{endpointID}", func(r chi.Router) {
				r.Get("/", h.getEndpoint)
				r.Delete("/", h.deleteEndpoint)
				r.Get("/drift", h.driftReport)

				mountEndpointKindRoutes(r, assetsPath, h.services.AssetService)
				mountEndpointKindRoutes(r, contractDefinitionsPath, h.services.ContractDefinitionService)
				mountEndpointKindRoutes(r, policyDefinitionsPath, h.services.PolicyDefinitionService)
			})
		})

		mountEntityRoutes(r, assetsPath, h.services.AssetService)
		mountEntityRoutes(r, contractDefinitionsPath, h.services.ContractDefinitionService)
		mountEntityRoutes(r, policyDefinitionsPath, h.services.PolicyDefinitionService)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
