package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurant-pos/report-svc/internal/api/http"
	"restaurant-pos/report-svc/internal/domain"
	"restaurant-pos/report-svc/internal/mocks"
	"restaurant-pos/report-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupHandlerRouter(t *testing.T) (*mux.Router, *mocks.ReportInterface) {
	reports := mocks.NewReportInterface(t)
	handler := httpapi.NewHandler(reports)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, reports
}

func TestSummaryEndpoint(t *testing.T) {
	router, reports := setupHandlerRouter(t)

	reports.On("Summary", "today").Return(&domain.SalesSummary{Orders: 4, Revenue: 80}, nil)

	req := httptest.NewRequest("GET", "/api/reports/summary?period=today", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Summary      domain.SalesSummary `json:"summary"`
		AverageOrder float64             `json:"average_order"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 4, response.Summary.Orders)
	assert.Equal(t, 20.0, response.AverageOrder)
}

func TestSummaryEndpointRejectsUnknownPeriod(t *testing.T) {
	router, reports := setupHandlerRouter(t)

	reports.On("Summary", "quarter").Return(nil, service.ErrUnknownPeriod)

	req := httptest.NewRequest("GET", "/api/reports/summary?period=quarter", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTopItemsEndpoint(t *testing.T) {
	router, reports := setupHandlerRouter(t)

	reports.On("TopItems", "week", 3).Return([]domain.ItemSales{
		{Name: "Classic Burger", Quantity: 9, Revenue: 116.91},
		{Name: "French Fries", Quantity: 7, Revenue: 34.93},
	}, nil)

	req := httptest.NewRequest("GET", "/api/reports/top-items?period=week&limit=3", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Items []domain.ItemSales `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response.Items, 2)
	assert.Equal(t, "Classic Burger", response.Items[0].Name)
}

func TestHourlyEndpointRejectsBadDay(t *testing.T) {
	router, _ := setupHandlerRouter(t)

	req := httptest.NewRequest("GET", "/api/reports/hourly?day=yesterday", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExportEndpoint(t *testing.T) {
	router, reports := setupHandlerRouter(t)

	reports.On("ExportText", "today").Return("Sales Report 2026-08-30 - 2026-08-30\nOrders: 2\n", nil)

	req := httptest.NewRequest("GET", "/api/reports/export?period=today", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rr.Body.String(), "Sales Report")
}
