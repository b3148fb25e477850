package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"restaurant-pos/inventory-svc/internal/domain"
	"restaurant-pos/inventory-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Inventory service.InventoryInterface
}

func NewHandler(inventory service.InventoryInterface) *Handler {
	return &Handler{Inventory: inventory}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/inventory", h.listItems).Methods("GET")
	r.HandleFunc("/api/inventory", h.createItem).Methods("POST")
	r.HandleFunc("/api/inventory/transactions", h.listTransactions).Methods("GET")
	r.HandleFunc("/api/inventory/{id}", h.updateItem).Methods("PUT")
	r.HandleFunc("/api/inventory/{id}/receive", h.receiveStock).Methods("POST")

	r.HandleFunc("/api/check-stock/{id}", h.checkStock).Methods("GET")

	r.HandleFunc("/api/recipes", h.listRecipes).Methods("GET")
	r.HandleFunc("/api/recipes", h.saveRecipe).Methods("PUT")
	r.HandleFunc("/api/recipes/{name}", h.deleteRecipe).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "inventory-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.ListItems()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"items": items})
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Inventory.CreateItem(&item); err != nil {
		if err == service.ErrItemNotSelected {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = id

	if err := h.Inventory.UpdateItem(&item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) receiveStock(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Quantity  float64 `json:"quantity"`
		StaffName string  `json:"staff_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Inventory.ReceiveStock(id, payload.Quantity, payload.StaffName)
	if err != nil {
		switch err {
		case service.ErrItemNotSelected, service.ErrInvalidQuantity:
			http.Error(w, err.Error(), http.StatusBadRequest)
		case service.ErrItemNotFound:
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "item": item})
}

func (h *Handler) checkStock(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	portions, _ := strconv.Atoi(r.URL.Query().Get("quantity"))

	shortages, err := h.Inventory.CheckStock(id, portions)
	if err != nil {
		if err == service.ErrMenuItemNotFound {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"available": len(shortages) == 0,
		"shortages": shortages,
	})
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	transactions, err := h.Inventory.Transactions(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"transactions": transactions})
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Inventory.ListRecipes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"recipes": recipes})
}

func (h *Handler) saveRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Inventory.SaveRecipe(&recipe); err != nil {
		switch err {
		case service.ErrMenuItemNotFound, service.ErrEmptyRecipe, service.ErrInvalidQuantity:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.Inventory.DeleteRecipe(name); err != nil {
		if err == service.ErrRecipeNotFound {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
