package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurant-pos/kitchen-svc/internal/api/http"
	"restaurant-pos/kitchen-svc/internal/domain"
	"restaurant-pos/kitchen-svc/internal/mocks"
	"restaurant-pos/kitchen-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupHandlerRouter(t *testing.T) (*mux.Router, *mocks.KitchenInterface) {
	kitchen := mocks.NewKitchenInterface(t)
	handler := httpapi.NewHandler(kitchen)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, kitchen
}

func TestListKitchenOrdersEndpoint(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	kitchen.On("ListOrders", false).Return([]domain.KitchenOrder{
		*ticket(1, domain.StatusNew),
	}, nil)

	req := httptest.NewRequest("GET", "/api/kitchen-orders", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Orders []domain.KitchenOrder `json:"orders"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response.Orders, 1)
	assert.Equal(t, domain.StatusNew, response.Orders[0].Status)
}

func TestListKitchenOrdersIncludeServed(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	kitchen.On("ListOrders", true).Return([]domain.KitchenOrder{}, nil)

	req := httptest.NewRequest("GET", "/api/kitchen-orders?include_served=true", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	updated := ticket(1, domain.StatusPreparing)
	kitchen.On("Advance", mock.Anything, 1, domain.StatusPreparing).Return(updated, nil)

	body, _ := json.Marshal(map[string]string{"status": "preparing"})
	req := httptest.NewRequest("PUT", "/api/orders/1/status", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response domain.KitchenOrder
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, domain.StatusPreparing, response.Status)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	kitchen.On("Advance", mock.Anything, 1, domain.StatusServed).
		Return(nil, service.ErrInvalidTransition)

	body, _ := json.Marshal(map[string]string{"status": "served"})
	req := httptest.NewRequest("PUT", "/api/orders/1/status", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	kitchen.On("Advance", mock.Anything, 99, domain.StatusPreparing).
		Return(nil, service.ErrOrderNotFound)

	body, _ := json.Marshal(map[string]string{"status": "preparing"})
	req := httptest.NewRequest("PUT", "/api/orders/99/status", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBadgesEndpoint(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	kitchen.On("Badges", mock.Anything).Return(domain.BadgeCounts{New: 1, Ready: 2}, nil)

	req := httptest.NewRequest("GET", "/api/kitchen-orders/badges", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Active int `json:"active"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Active)
}

func TestTicketEndpoint(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	kitchen.On("RenderTicket", 1).Return("#101  Table 5\n2x Classic Burger\n", nil)

	req := httptest.NewRequest("GET", "/api/kitchen-orders/1/ticket", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "2x Classic Burger")
}

func TestClearCompletedEndpoint(t *testing.T) {
	router, kitchen := setupHandlerRouter(t)

	kitchen.On("ClearCompleted", mock.Anything).Return(int64(2), nil)

	req := httptest.NewRequest("POST", "/api/kitchen-orders/clear-completed", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, float64(2), response["cleared"])
}
