package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurant-pos/pos-svc/internal/api/http"
	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/mocks"
	"restaurant-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	auth       *mocks.AuthInterface
	menu       *mocks.MenuInterface
	settlement *mocks.SettlementInterface
	receipts   *mocks.ReceiptInterface
	backups    *mocks.BackupInterface
	qr         *mocks.QRGenerator
}

func setupRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		auth:       mocks.NewAuthInterface(t),
		menu:       mocks.NewMenuInterface(t),
		settlement: mocks.NewSettlementInterface(t),
		receipts:   mocks.NewReceiptInterface(t),
		backups:    mocks.NewBackupInterface(t),
		qr:         mocks.NewQRGenerator(t),
	}
	handler := httpapi.NewHandler(m.auth, m.menu, m.settlement, m.receipts, m.backups, m.qr)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, m
}

func cashierSession() *domain.Session {
	return &domain.Session{
		Token:       "tok-1",
		StaffID:     2,
		Name:        "Sarah Staff",
		Role:        "staff",
		Permissions: map[string]bool{"pos": true},
	}
}

func adminSession() *domain.Session {
	return &domain.Session{
		Token:   "tok-admin",
		StaffID: 1,
		Name:    "Admin User",
		Role:    "admin",
		Permissions: map[string]bool{
			"pos": true, "inventory": true, "reports": true, "staff": true, "settings": true,
		},
	}
}

func TestLoginEndpoint(t *testing.T) {
	router, m := setupRouter(t)

	session := cashierSession()
	m.auth.On("Login", mock.Anything, "2222").Return(session, nil)

	body, _ := json.Marshal(map[string]string{"pin": "2222"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Success bool            `json:"success"`
		User    *domain.Session `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "tok-1", response.User.Token)
}

func TestLoginEndpointRejectsBadPIN(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Login", mock.Anything, "0000").Return(nil, service.ErrInvalidPIN)

	body, _ := json.Marshal(map[string]string{"pin": "0000"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	router, m := setupRouter(t)

	session := cashierSession()
	m.auth.On("Authenticate", mock.Anything, "tok-1").Return(session, nil)

	change := 0.49
	order := &domain.Order{
		ID:          7,
		OrderNumber: "ORD-20260830-0007",
		Total:       19.51,
		Change:      &change,
	}
	m.settlement.On("Settle", mock.Anything, mock.MatchedBy(func(req service.SettleRequest) bool {
		return req.StaffID == 2 && req.StaffName == "Sarah Staff"
	})).Return(order, nil)

	payload := map[string]interface{}{
		"table": "5",
		"items": []map[string]interface{}{
			{"id": 1, "name": "Classic Burger", "price": 12.99, "quantity": 1},
			{"id": 3, "name": "French Fries", "price": 4.99, "quantity": 1},
		},
		"payment": map[string]interface{}{"method": "cash", "amount_tendered": 20.00},
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer tok-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "ORD-20260830-0007", response["order_number"])
	assert.InDelta(t, 0.49, response["change"].(float64), 0.0001)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "").Return(nil, service.ErrSessionNotFound)

	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader([]byte("{}")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateOrderValidationError(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "tok-1").Return(cashierSession(), nil)
	m.settlement.On("Settle", mock.Anything, mock.Anything).Return(nil, service.ErrEmptyCart)

	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader([]byte(`{"table":"1","items":[]}`)))
	req.Header.Set("X-Session-Token", "tok-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetProductsEndpoint(t *testing.T) {
	router, m := setupRouter(t)

	m.menu.On("List").Return([]domain.MenuItem{
		{ID: 1, Name: "Classic Burger", Price: 12.99, Category: "Mains", Available: true},
	}, nil)

	req := httptest.NewRequest("GET", "/api/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Products []domain.MenuItem `json:"products"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response.Products, 1)
	assert.Equal(t, "Classic Burger", response.Products[0].Name)
}

func TestCreateProductRequiresSettingsPermission(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "tok-1").Return(cashierSession(), nil)

	body, _ := json.Marshal(domain.MenuItem{Name: "Steak", Price: 24.99, Category: "Mains"})
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer tok-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "tok-admin").Return(adminSession(), nil)

	body, _ := json.Marshal(domain.MenuItem{Name: "Steak", Price: -1, Category: "Mains"})
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer tok-admin")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.menu.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetReceiptEndpoint(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "tok-1").Return(cashierSession(), nil)
	m.receipts.On("Render", 7).Return("Demo Restaurant\nTOTAL 19.51\n", nil)

	req := httptest.NewRequest("GET", "/api/orders/7/receipt", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "TOTAL 19.51")
}

func TestGetReceiptUnknownOrder(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "tok-1").Return(cashierSession(), nil)
	m.receipts.On("Render", 999).Return("", service.ErrOrderNotFound)

	req := httptest.NewRequest("GET", "/api/orders/999/receipt", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestQRCodeEndpoint(t *testing.T) {
	router, m := setupRouter(t)

	m.qr.On("Generate", 7).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	req := httptest.NewRequest("GET", "/api/orders/7/qrcode", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
}

func TestBackupRoundTripEndpoints(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "tok-admin").Return(adminSession(), nil)
	m.backups.On("Export").Return(&domain.BackupBundle{
		RestaurantInfo: &domain.RestaurantInfo{Name: "Demo Restaurant", TaxRate: 8.5},
	}, nil)
	m.backups.On("Import", mock.AnythingOfType("*domain.BackupBundle")).Return(nil)

	req := httptest.NewRequest("GET", "/api/backup", nil)
	req.Header.Set("Authorization", "Bearer tok-admin")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")

	req = httptest.NewRequest("POST", "/api/backup/restore", bytes.NewReader(rr.Body.Bytes()))
	req.Header.Set("Authorization", "Bearer tok-admin")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMeEndpoint(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "tok-1").Return(cashierSession(), nil)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, true, response["authenticated"])
}

func TestMeEndpointUnauthenticated(t *testing.T) {
	router, m := setupRouter(t)

	m.auth.On("Authenticate", mock.Anything, "").Return(nil, service.ErrSessionNotFound)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
