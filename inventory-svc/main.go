package main

import (
	"log"

	"restaurant-pos/config"
	httpapi "restaurant-pos/inventory-svc/internal/api/http"
	"restaurant-pos/inventory-svc/internal/service"
	"restaurant-pos/inventory-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	inventory := service.NewInventoryService(repo)

	handler := httpapi.NewHandler(inventory)
	router := httpapi.NewRouter(handler)

	port := config.GetEnv("INVENTORY_SVC_PORT", "8083")
	httpapi.StartServer(":"+port, router)
}
