package main

import (
	"context"
	"log"
	"time"

	"restaurant-pos/config"
	httpapi "restaurant-pos/kitchen-svc/internal/api/http"
	"restaurant-pos/kitchen-svc/internal/service"
	"restaurant-pos/kitchen-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	badges := storage.NewRedisBadgeCache(redisClient, time.Minute)
	kitchen := service.NewKitchenService(repo, badges)

	if config.GetEnv("KITCHEN_JANITOR", "on") == "on" {
		janitor := service.NewJanitor(repo, badges, time.Minute, 30*time.Minute)
		go janitor.Run(context.Background())
	}

	handler := httpapi.NewHandler(kitchen)
	router := httpapi.NewRouter(handler)

	port := config.GetEnv("KITCHEN_SVC_PORT", "8082")
	httpapi.StartServer(":"+port, router)
}
