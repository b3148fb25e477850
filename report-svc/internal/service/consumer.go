package service

import (
	"context"
	"encoding/json"
	"log"

	"restaurant-pos/report-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Report Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.SettledEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "order_settled" {
			c.ProcessSettlement(event)
		}
	}
}

func (c *Consumer) ProcessSettlement(event domain.SettledEvent) {
	if event.Type != "order_settled" {
		return
	}
	log.Printf("Processing settlement: OrderID=%d, Total=%.2f", event.OrderID, event.Total)

	if err := c.Store.RecordSettlement(event); err != nil {
		log.Printf("Error recording settlement: %v", err)
		return
	}

	log.Printf("Successfully recorded order %d", event.OrderID)
}
