package tests

import (
	"testing"
	"time"

	"restaurant-pos/report-svc/internal/domain"
	"restaurant-pos/report-svc/internal/mocks"
	"restaurant-pos/report-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
}

func newReportService(store *mocks.StoreInterface) *service.ReportService {
	svc := service.NewReportService(store)
	svc.Now = fixedClock
	return svc
}

func TestPeriodRange(t *testing.T) {
	svc := newReportService(mocks.NewStoreInterface(t))

	tests := []struct {
		period       string
		expectedFrom string
		expectedTo   string
	}{
		{"today", "2026-08-30", "2026-08-31"},
		{"", "2026-08-30", "2026-08-31"},
		{"week", "2026-08-24", "2026-08-31"},
		{"month", "2026-08-01", "2026-08-31"},
	}

	for _, tt := range tests {
		t.Run("period "+tt.period, func(t *testing.T) {
			from, to, err := svc.PeriodRange(tt.period)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFrom, from.Format("2006-01-02"))
			assert.Equal(t, tt.expectedTo, to.Format("2006-01-02"))
		})
	}
}

func TestPeriodRangeUnknown(t *testing.T) {
	svc := newReportService(mocks.NewStoreInterface(t))

	_, _, err := svc.PeriodRange("quarter")
	assert.ErrorIs(t, err, service.ErrUnknownPeriod)
}

func TestSummaryFillsRange(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("Summary", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(&domain.SalesSummary{Orders: 12, Revenue: 240.0, Tax: 18.84, Tips: 24.0}, nil)

	svc := newReportService(store)

	summary, err := svc.Summary("today")

	assert.NoError(t, err)
	assert.Equal(t, 12, summary.Orders)
	assert.Equal(t, "2026-08-30", summary.From.Format("2006-01-02"))
	assert.Equal(t, 20.0, summary.AverageOrder())
}

func TestAverageOrderEmptyPeriod(t *testing.T) {
	summary := domain.SalesSummary{}
	assert.Equal(t, 0.0, summary.AverageOrder())
}

func TestTopItemsDefaultsLimit(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("TopItems", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), 5).
		Return([]domain.ItemSales{{Name: "Classic Burger", Quantity: 9, Revenue: 116.91}}, nil)

	svc := newReportService(store)

	items, err := svc.TopItems("week", 0)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestExportText(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("Summary", mock.Anything, mock.Anything).
		Return(&domain.SalesSummary{Orders: 2, Revenue: 39.02, Tax: 3.06, Tips: 0}, nil)
	store.On("TopItems", mock.Anything, mock.Anything, 5).
		Return([]domain.ItemSales{{Name: "Classic Burger", Quantity: 2, Revenue: 25.98}}, nil)
	store.On("ByCategory", mock.Anything, mock.Anything).
		Return([]domain.CategorySales{{Category: "Mains", Quantity: 2, Revenue: 25.98}}, nil)

	svc := newReportService(store)

	report, err := svc.ExportText("today")

	assert.NoError(t, err)
	assert.Contains(t, report, "Sales Report 2026-08-30 - 2026-08-30")
	assert.Contains(t, report, "Orders:        2")
	assert.Contains(t, report, "Classic Burger")
	assert.Contains(t, report, "Mains")
}
