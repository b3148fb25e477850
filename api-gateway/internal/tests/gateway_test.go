package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-pos/api-gateway/internal/gateway"
	"restaurant-pos/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() gateway.Config {
	return gateway.Config{
		PosSvcURL:       "http://pos-svc",
		KitchenSvcURL:   "http://kitchen-svc",
		InventorySvcURL: "http://inventory-svc",
		ReportSvcURL:    "http://report-svc",
	}
}

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_OrdersGoToPos(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "pos-svc" && req.URL.Path == "/api/orders"
	})).Return(jsonResponse(http.StatusCreated, `{"success":true,"order_id":7}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "order_id")
}

func TestGateway_RouteHandler_StatusGoesToKitchen(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "kitchen-svc" && req.URL.Path == "/api/orders/7/status"
	})).Return(jsonResponse(http.StatusOK, `{"status":"preparing"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/orders/7/status", strings.NewReader(`{"status":"preparing"}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_KitchenOrders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "kitchen-svc"
	})).Return(jsonResponse(http.StatusOK, `{"orders":[]}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/kitchen-orders", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_InventoryRoutes(t *testing.T) {
	paths := []string{"/api/inventory", "/api/check-stock/1", "/api/recipes"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(testConfig(), mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.Host == "inventory-svc"
			})).Return(jsonResponse(http.StatusOK, `{}`), nil).Once()

			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestGateway_RouteHandler_ReportsRoute(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "report-svc" && req.URL.RawQuery == "period=week"
	})).Return(jsonResponse(http.StatusOK, `{"summary":{}}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/summary?period=week", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_ForwardsSessionHeader(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Authorization") == "Bearer tok-1"
	})).Return(jsonResponse(http.StatusOK, `{"orders":[]}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
