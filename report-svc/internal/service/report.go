package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/report-svc/internal/domain"
)

var ErrUnknownPeriod = errors.New("unknown report period")

const defaultTopItemsLimit = 5

type ReportService struct {
	store StoreInterface
	Now   func() time.Time
}

func NewReportService(store StoreInterface) *ReportService {
	return &ReportService{store: store, Now: time.Now}
}

// PeriodRange resolves a named period into a half-open [from, to) range
// in local time.
func (s *ReportService) PeriodRange(period string) (time.Time, time.Time, error) {
	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case "", "today":
		return today, today.AddDate(0, 0, 1), nil
	case "week":
		return today.AddDate(0, 0, -6), today.AddDate(0, 0, 1), nil
	case "month":
		return today.AddDate(0, 0, -29), today.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
}

func (s *ReportService) Summary(period string) (*domain.SalesSummary, error) {
	from, to, err := s.PeriodRange(period)
	if err != nil {
		return nil, err
	}
	summary, err := s.store.Summary(from, to)
	if err != nil {
		return nil, err
	}
	summary.From = from
	summary.To = to
	return summary, nil
}

func (s *ReportService) TopItems(period string, limit int) ([]domain.ItemSales, error) {
	from, to, err := s.PeriodRange(period)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopItemsLimit
	}
	return s.store.TopItems(from, to, limit)
}

func (s *ReportService) ByCategory(period string) ([]domain.CategorySales, error) {
	from, to, err := s.PeriodRange(period)
	if err != nil {
		return nil, err
	}
	return s.store.ByCategory(from, to)
}

func (s *ReportService) Hourly(day time.Time) ([]domain.HourlySales, error) {
	return s.store.Hourly(day)
}

// ExportText renders the sales report as plain text, ready to print.
func (s *ReportService) ExportText(period string) (string, error) {
	summary, err := s.Summary(period)
	if err != nil {
		return "", err
	}
	topItems, err := s.TopItems(period, defaultTopItemsLimit)
	if err != nil {
		return "", err
	}
	byCategory, err := s.ByCategory(period)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sales Report %s - %s\n",
		summary.From.Format("2006-01-02"), summary.To.AddDate(0, 0, -1).Format("2006-01-02"))
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "Orders:        %d\n", summary.Orders)
	fmt.Fprintf(&b, "Revenue:       %.2f\n", summary.Revenue)
	fmt.Fprintf(&b, "Tax collected: %.2f\n", summary.Tax)
	fmt.Fprintf(&b, "Tips:          %.2f\n", summary.Tips)
	fmt.Fprintf(&b, "Average order: %.2f\n", summary.AverageOrder())

	if len(topItems) > 0 {
		b.WriteString("\nTop items\n")
		for _, item := range topItems {
			fmt.Fprintf(&b, "%3dx %-20s %8.2f\n", item.Quantity, item.Name, item.Revenue)
		}
	}

	if len(byCategory) > 0 {
		b.WriteString("\nBy category\n")
		for _, cat := range byCategory {
			fmt.Fprintf(&b, "%-20s %8.2f\n", cat.Category, cat.Revenue)
		}
	}

	return b.String(), nil
}
