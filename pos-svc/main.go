package main

import (
	"log"
	"time"

	"restaurant-pos/config"
	httpapi "restaurant-pos/pos-svc/internal/api/http"
	"restaurant-pos/pos-svc/internal/service"
	"restaurant-pos/pos-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	kafkaWriter := config.NewKafkaWriter("orders.settled")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	sessions := storage.NewRedisSessionStore(redisClient, 8*time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	settlement := service.NewSettlementService(repo, repo, publisher)
	auth := service.NewAuthService(repo, sessions)
	menu := service.NewMenuService(repo)
	receipts := service.NewReceiptService(repo, repo)
	backups := service.NewBackupService(repo)
	qr := &service.DefaultQRGenerator{BaseURL: config.GetEnv("POS_PUBLIC_URL", "http://localhost:8080")}

	handler := httpapi.NewHandler(auth, menu, settlement, receipts, backups, qr)
	router := httpapi.NewRouter(handler)

	port := config.GetEnv("POS_SVC_PORT", "8081")
	httpapi.StartServer(":"+port, router)
}
