package service

import (
	"context"
	"time"

	"restaurant-pos/report-svc/internal/domain"
)

type StoreInterface interface {
	RecordSettlement(event domain.SettledEvent) error
	Summary(from, to time.Time) (*domain.SalesSummary, error)
	TopItems(from, to time.Time, limit int) ([]domain.ItemSales, error)
	ByCategory(from, to time.Time) ([]domain.CategorySales, error)
	Hourly(day time.Time) ([]domain.HourlySales, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessSettlement(event domain.SettledEvent)
}

type ReportInterface interface {
	Summary(period string) (*domain.SalesSummary, error)
	TopItems(period string, limit int) ([]domain.ItemSales, error)
	ByCategory(period string) ([]domain.CategorySales, error)
	Hourly(day time.Time) ([]domain.HourlySales, error)
	ExportText(period string) (string, error)
}
