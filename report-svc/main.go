package main

import (
	"context"
	"log"

	"restaurant-pos/config"
	httpapi "restaurant-pos/report-svc/internal/api/http"
	"restaurant-pos/report-svc/internal/service"
	"restaurant-pos/report-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	store := storage.NewStore(db, redisClient)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	reader := config.NewKafkaReader("orders.settled", "report-svc")
	defer reader.Close()

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	reports := service.NewReportService(store)

	handler := httpapi.NewHandler(reports)
	router := httpapi.NewRouter(handler)

	port := config.GetEnv("REPORT_SVC_PORT", "8084")
	httpapi.StartServer(":"+port, router)
}
