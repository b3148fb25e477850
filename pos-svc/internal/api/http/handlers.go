package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Auth       service.AuthInterface
	Menu       service.MenuInterface
	Settlement service.SettlementInterface
	Receipts   service.ReceiptInterface
	Backups    service.BackupInterface
	QR         service.QRGenerator
}

func NewHandler(auth service.AuthInterface, menu service.MenuInterface, settlement service.SettlementInterface,
	receipts service.ReceiptInterface, backups service.BackupInterface, qr service.QRGenerator) *Handler {
	return &Handler{
		Auth:       auth,
		Menu:       menu,
		Settlement: settlement,
		Receipts:   receipts,
		Backups:    backups,
		QR:         qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.requireAuth(h.logout)).Methods("POST")
	r.HandleFunc("/api/auth/me", h.me).Methods("GET")
	r.HandleFunc("/api/auth/permissions", h.requireAuth(h.permissions)).Methods("GET")

	r.HandleFunc("/api/auth/staff", h.requirePermission("staff", h.listStaff)).Methods("GET")
	r.HandleFunc("/api/auth/staff", h.requirePermission("staff", h.createStaff)).Methods("POST")
	r.HandleFunc("/api/auth/staff/{id}", h.requirePermission("staff", h.updateStaff)).Methods("PUT")
	r.HandleFunc("/api/auth/staff/{id}/reset-pin", h.requirePermission("staff", h.resetPIN)).Methods("POST")

	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products", h.requirePermission("settings", h.createProduct)).Methods("POST")
	r.HandleFunc("/api/products/{id}", h.requirePermission("settings", h.updateProduct)).Methods("PUT")
	r.HandleFunc("/api/products/{id}", h.requirePermission("settings", h.deleteProduct)).Methods("DELETE")
	r.HandleFunc("/api/specials", h.getSpecials).Methods("GET")

	r.HandleFunc("/api/restaurant-info", h.getRestaurantInfo).Methods("GET")
	r.HandleFunc("/api/restaurant-info", h.requirePermission("settings", h.updateRestaurantInfo)).Methods("PUT")

	r.HandleFunc("/api/orders", h.requireAuth(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/orders", h.requireAuth(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.requireAuth(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/receipt", h.requireAuth(h.getReceipt)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/backup", h.requirePermission("settings", h.exportBackup)).Methods("GET")
	r.HandleFunc("/api/backup/restore", h.requirePermission("settings", h.importBackup)).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.Auth.Login(r.Context(), payload.PIN)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Invalid PIN"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "user": session})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), SessionToken(r)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, err := h.Auth.Authenticate(r.Context(), SessionToken(r))
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"authenticated": false})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"authenticated": true, "user": session})
}

func (h *Handler) permissions(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"permissions": session.Permissions})
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Auth.ListStaff()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"staff": staff})
}

func (h *Handler) createStaff(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		domain.Staff
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.Staff.Active = true

	if err := h.Auth.CreateStaff(&payload.Staff, payload.PIN); err != nil {
		if err == service.ErrBadPINFormat {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "id": payload.Staff.ID})
}

func (h *Handler) updateStaff(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var staff domain.Staff
	if err := json.NewDecoder(r.Body).Decode(&staff); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	staff.ID = id

	if err := h.Auth.UpdateStaff(&staff); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *Handler) resetPIN(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Auth.ResetPIN(id, payload.PIN); err != nil {
		switch err {
		case service.ErrBadPINFormat:
			http.Error(w, err.Error(), http.StatusBadRequest)
		case service.ErrStaffNotFound:
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Menu.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"products": products})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.Price < 0 {
		http.Error(w, "price cannot be negative", http.StatusBadRequest)
		return
	}
	item.Available = true

	if err := h.Menu.Create(&item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.Price < 0 {
		http.Error(w, "price cannot be negative", http.StatusBadRequest)
		return
	}
	item.ID = id

	if err := h.Menu.Update(&item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	affected, err := h.Menu.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *Handler) getSpecials(w http.ResponseWriter, r *http.Request) {
	specials, err := h.Menu.Specials()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"specials": specials})
}

func (h *Handler) getRestaurantInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Auth.RestaurantInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

func (h *Handler) updateRestaurantInfo(w http.ResponseWriter, r *http.Request) {
	var info domain.RestaurantInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Auth.UpdateRestaurantInfo(&info); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := SessionFrom(r)
	req.StaffID = session.StaffID
	req.StaffName = session.Name

	order, err := h.Settlement.Settle(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrEmptyCart, service.ErrInvalidQuantity, service.ErrInvalidTip,
			service.ErrUnknownPaymentMethod, service.ErrInsufficientPayment,
			service.ErrInvalidCardNumber, service.ErrInvalidExpiry, service.ErrInvalidCVV,
			service.ErrMissingGiftCardNumber:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	response := map[string]interface{}{
		"success":      true,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.Total,
	}
	if order.Change != nil {
		response["change"] = *order.Change
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.Settlement.ListOrders(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"orders": orders})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Settlement.GetOrder(id)
	if err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	receipt, err := h.Receipts.Render(id)
	if err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(receipt))
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	png, err := h.QR.Generate(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.Backups.Export()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=pos-backup.json")
	json.NewEncoder(w).Encode(bundle)
}

func (h *Handler) importBackup(w http.ResponseWriter, r *http.Request) {
	var bundle domain.BackupBundle
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Backups.Import(&bundle); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
