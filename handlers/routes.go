// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Registers routes with logging and CORS middleware applied

package handlers

import (
	"net/http"

	"clab-gcp-planner/middleware"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Resource extraction
		{Method: http.MethodPost, Path: "/api/v1/analyze", Handler: h.Analyze},

		// Deployment optimization
		{Method: http.MethodPost, Path: "/api/v1/optimize", Handler: h.Optimize},
		{Method: http.MethodPost, Path: "/api/v1/compare", Handler: h.Compare},
		{Method: http.MethodPost, Path: "/api/v1/recommend", Handler: h.Recommend},
		{Method: http.MethodPost, Path: "/api/v1/plan", Handler: h.Plan},

		// Pricing
		{Method: http.MethodGet, Path: "/api/v1/pricing", Handler: h.Pricing},
	}
}

// Register wires all routes into a mux with the standard middleware
// chain.
func (h *Handler) Register(mux *http.ServeMux) {
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Path, middleware.Chain(route.Handler, middleware.LogRequest, middleware.CORS))
	}
}
