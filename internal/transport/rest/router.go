package rest

import "net/http"

// Handlers groups the handler set the router exposes.
type Handlers struct {
	Generate *GenerateHandler
	Dataset  *DatasetHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP route table. Middleware is applied by the caller
// around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/subdomains", h.Dataset.Subdomains)
	mux.HandleFunc("POST /api/generate-batch", h.Generate.GenerateBatch)
	mux.HandleFunc("GET /api/datasets", h.Dataset.List)
	mux.HandleFunc("GET /api/statistics", h.Dataset.Statistics)
	mux.HandleFunc("GET /api/export-csv", h.Dataset.ExportCSV)

	mux.HandleFunc("GET /api/health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	return mux
}
