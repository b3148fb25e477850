package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"restaurant-pos/kitchen-svc/internal/domain"
	"restaurant-pos/kitchen-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Kitchen service.KitchenInterface
}

func NewHandler(kitchen service.KitchenInterface) *Handler {
	return &Handler{Kitchen: kitchen}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/kitchen-orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/kitchen-orders/badges", h.badges).Methods("GET")
	r.HandleFunc("/api/kitchen-orders/clear-completed", h.clearCompleted).Methods("POST")
	r.HandleFunc("/api/kitchen-orders/{id}/ticket", h.getTicket).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateStatus).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "kitchen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	includeServed := r.URL.Query().Get("include_served") == "true"

	orders, err := h.Kitchen.ListOrders(includeServed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"orders": orders})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Kitchen.Advance(r.Context(), id, payload.Status)
	if err != nil {
		switch err {
		case service.ErrOrderNotFound:
			http.Error(w, err.Error(), http.StatusNotFound)
		case service.ErrInvalidStatus, service.ErrInvalidTransition:
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) clearCompleted(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.Kitchen.ClearCompleted(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "cleared": cleared})
}

func (h *Handler) badges(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Kitchen.Badges(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"badges": counts,
		"active": counts.Active(),
	})
}

func (h *Handler) getTicket(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	ticket, err := h.Kitchen.RenderTicket(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(ticket))
}
