package main

import (
	"log"
	"net/http"

	"restaurant-pos/api-gateway/internal/gateway"
	"restaurant-pos/config"

	"github.com/rs/cors"
)

func main() {
	gatewayConfig := gateway.Config{
		PosSvcURL:       config.GetEnv("POS_SVC_URL", "http://localhost:8081"),
		KitchenSvcURL:   config.GetEnv("KITCHEN_SVC_URL", "http://localhost:8082"),
		InventorySvcURL: config.GetEnv("INVENTORY_SVC_URL", "http://localhost:8083"),
		ReportSvcURL:    config.GetEnv("REPORT_SVC_URL", "http://localhost:8084"),
	}

	gw := gateway.NewGateway(gatewayConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	port := config.GetEnv("GATEWAY_PORT", "8080")
	log.Println("API Gateway starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
