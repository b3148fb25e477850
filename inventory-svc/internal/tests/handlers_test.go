package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurant-pos/inventory-svc/internal/api/http"
	"restaurant-pos/inventory-svc/internal/domain"
	"restaurant-pos/inventory-svc/internal/mocks"
	"restaurant-pos/inventory-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupHandlerRouter(t *testing.T) (*mux.Router, *mocks.InventoryInterface) {
	inventory := mocks.NewInventoryInterface(t)
	handler := httpapi.NewHandler(inventory)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, inventory
}

func TestListInventoryEndpoint(t *testing.T) {
	router, inventory := setupHandlerRouter(t)

	inventory.On("ListItems").Return([]domain.InventoryItem{
		{ID: 1, Name: "Beef Patty", Stock: 45, Status: domain.StatusOK},
		{ID: 4, Name: "Chicken Wings", Stock: 0, Status: domain.StatusOut},
	}, nil)

	req := httptest.NewRequest("GET", "/api/inventory", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Items []domain.InventoryItem `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response.Items, 2)
	assert.Equal(t, domain.StatusOut, response.Items[1].Status)
}

func TestReceiveStockEndpoint(t *testing.T) {
	router, inventory := setupHandlerRouter(t)

	inventory.On("ReceiveStock", 4, 25.0, "Mike Cook").Return(&domain.InventoryItem{
		ID: 4, Name: "Chicken Wings", Stock: 25, ReorderLevel: 15, Status: domain.StatusOK,
	}, nil)

	body, _ := json.Marshal(map[string]interface{}{"quantity": 25.0, "staff_name": "Mike Cook"})
	req := httptest.NewRequest("POST", "/api/inventory/4/receive", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Success bool                  `json:"success"`
		Item    *domain.InventoryItem `json:"item"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, domain.StatusOK, response.Item.Status)
}

func TestReceiveStockEndpointRejectsBadQuantity(t *testing.T) {
	router, inventory := setupHandlerRouter(t)

	inventory.On("ReceiveStock", 4, -5.0, "").Return(nil, service.ErrInvalidQuantity)

	body, _ := json.Marshal(map[string]interface{}{"quantity": -5.0})
	req := httptest.NewRequest("POST", "/api/inventory/4/receive", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCheckStockEndpoint(t *testing.T) {
	router, inventory := setupHandlerRouter(t)

	inventory.On("CheckStock", 1, 3).Return([]domain.Shortage{
		{IngredientName: "Beef Patty", Required: 3, Available: 2},
	}, nil)

	req := httptest.NewRequest("GET", "/api/check-stock/1?quantity=3", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Available bool              `json:"available"`
		Shortages []domain.Shortage `json:"shortages"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.False(t, response.Available)
	assert.Len(t, response.Shortages, 1)
}

func TestCheckStockEndpointUnknownMenuItem(t *testing.T) {
	router, inventory := setupHandlerRouter(t)

	inventory.On("CheckStock", 99, 1).Return(nil, service.ErrMenuItemNotFound)

	req := httptest.NewRequest("GET", "/api/check-stock/99?quantity=1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSaveRecipeEndpoint(t *testing.T) {
	router, inventory := setupHandlerRouter(t)

	inventory.On("SaveRecipe", &domain.Recipe{
		MenuItemName: "Cheeseburger",
		Ingredients: []domain.RecipeIngredient{
			{IngredientName: "Cheese", QuantityPerUnit: 2},
		},
	}).Return(nil)

	body, _ := json.Marshal(domain.Recipe{
		MenuItemName: "Cheeseburger",
		Ingredients: []domain.RecipeIngredient{
			{IngredientName: "Cheese", QuantityPerUnit: 2},
		},
	})
	req := httptest.NewRequest("PUT", "/api/recipes", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListTransactionsEndpoint(t *testing.T) {
	router, inventory := setupHandlerRouter(t)

	inventory.On("Transactions", 50).Return([]domain.Transaction{
		{ID: 1, ItemName: "Beef Patty", Kind: "order", Quantity: -2},
		{ID: 2, ItemName: "Chicken Wings", Kind: "receive", Quantity: 25},
	}, nil)

	req := httptest.NewRequest("GET", "/api/inventory/transactions?limit=50", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response.Transactions, 2)
}
