package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amods/cantina-backend/internal/modules/auth"
	"github.com/amods/cantina-backend/internal/modules/reporting"
)

// Handler exposes the engine's operations over HTTP. All routes require an
// authenticated staff user.
type Handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
}

func NewHandler(service Service, authMiddleware func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, authMiddleware: authMiddleware}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Use(h.authMiddleware)
		r.Post("/products", h.registerProduct)
		r.Put("/products/{id}", h.updateProduct)
		r.Delete("/products/{id}", h.deleteProduct)
		r.Get("/products/{id}/stock", h.getStock)
		r.Post("/sales", h.recordSale)
		r.Get("/low-stock", h.lowStock)
	})
}

func (h *Handler) registerProduct(w http.ResponseWriter, r *http.Request) {
	var req RegisterProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.RegisterProduct(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getStock(w http.ResponseWriter, r *http.Request) {
	qty, err := h.service.GetStock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]int{"quantity": qty})
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	var req RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UserID = userID
	sale, err := h.service.RecordSale(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, sale)
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
	items, err := h.service.LowStockReport(r.Context(), threshold)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*reporting.LowStockItem{}
	}
	respond(w, http.StatusOK, items)
}

// writeError maps the engine's error taxonomy to HTTP. Storage failures stay
// generic: the detail is logged server-side, never leaked.
func writeError(w http.ResponseWriter, err error) {
	var (
		vErr *ValidationError
		iErr *InsufficientStockError
		hErr *HasSalesHistoryError
	)
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.As(err, &iErr):
		respond(w, http.StatusConflict, map[string]interface{}{
			"error":     iErr.Error(),
			"available": iErr.Available,
		})
	case errors.As(err, &hErr):
		respond(w, http.StatusConflict, map[string]interface{}{
			"error": hErr.Error(),
			"sales": hErr.Count,
		})
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
