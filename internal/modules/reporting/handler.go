package reporting

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes reporting HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/dashboard", h.dashboard)
		r.Get("/low-stock", h.lowStock)
	})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Dashboard(r.Context())
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, d)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	threshold := 0
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "threshold must be a positive integer", http.StatusBadRequest)
			return
		}
		threshold = n
	}
	items, err := h.service.LowStock(r.Context(), threshold)
	if err != nil {
		http.Error(w, "failed to load low stock report", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []*LowStockItem{}
	}
	respond(w, http.StatusOK, items)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
