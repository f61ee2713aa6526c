package sales

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the sales history endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/sales", h.listSales)
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListSales(r.Context())
	if err != nil {
		http.Error(w, "failed to list sales", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(records)
}
