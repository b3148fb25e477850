package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

const DefaultTaxRatePercent = 8.5

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidQuantity       = errors.New("quantity must be a positive number")
	ErrInvalidTip            = errors.New("tip cannot be negative")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
	ErrInsufficientPayment   = errors.New("insufficient amount tendered")
	ErrInvalidCardNumber     = errors.New("invalid card number")
	ErrInvalidExpiry         = errors.New("invalid expiry date (MM/YY)")
	ErrInvalidCVV            = errors.New("invalid cvv")
	ErrMissingGiftCardNumber = errors.New("gift card number is required")
	ErrOrderNotFound         = errors.New("order not found")
)

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

type Totals struct {
	Subtotal float64
	Tax      float64
	Tip      float64
	Total    float64
}

// ComputeTotals runs the fixed-order settlement math at full precision.
// Rounding happens only when the final order record is built.
func ComputeTotals(cart []domain.CartLine, taxRatePercent, tip float64) Totals {
	var subtotal float64
	for _, line := range cart {
		subtotal += line.Price * float64(line.Quantity)
	}
	tax := subtotal * taxRatePercent / 100
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Tip:      tip,
		Total:    subtotal + tax + tip,
	}
}

type SettleRequest struct {
	Table               string          `json:"table"`
	SpecialInstructions string          `json:"special_instructions"`
	Items               []domain.CartLine `json:"items"`
	Payment             *domain.Payment `json:"payment"`
	TipPercent          *float64        `json:"tip_percent"`
	TipAmount           *float64        `json:"tip_amount"`

	StaffID   int    `json:"-"`
	StaffName string `json:"-"`
}

type SettlementService struct {
	orders    OrderRepository
	staff     StaffRepository
	publisher OrderPublisher
}

func NewSettlementService(orders OrderRepository, staff StaffRepository, publisher OrderPublisher) *SettlementService {
	return &SettlementService{
		orders:    orders,
		staff:     staff,
		publisher: publisher,
	}
}

// Settle validates the cart and payment, then commits the order, the
// inventory depletion and the kitchen order in one transaction. Any
// validation failure aborts before anything is written.
func (s *SettlementService) Settle(ctx context.Context, req SettleRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 || line.Price < 0 {
			return nil, ErrInvalidQuantity
		}
	}

	taxRate := s.taxRatePercent()

	tip := 0.0
	switch {
	case req.TipAmount != nil:
		tip = *req.TipAmount
	case req.TipPercent != nil:
		var subtotal float64
		for _, line := range req.Items {
			subtotal += line.Price * float64(line.Quantity)
		}
		tip = subtotal * *req.TipPercent / 100
	}
	if tip < 0 {
		return nil, ErrInvalidTip
	}

	totals := ComputeTotals(req.Items, taxRate, tip)

	payment := req.Payment
	if payment == nil {
		// Kitchen-send flow without a payment step settles as exact cash.
		payment = &domain.Payment{Method: domain.PaymentCash, AmountTendered: totals.Total}
	}
	if err := validatePayment(payment, totals.Total); err != nil {
		return nil, err
	}

	order := buildOrder(req, payment, totals)
	ticket := domain.GroupTicketItems(order.Items)

	if err := s.orders.SettleOrder(order, ticket); err != nil {
		return nil, fmt.Errorf("failed to settle order: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishSettled(ctx, settledEvent(order))
	}

	return order, nil
}

func (s *SettlementService) GetOrder(id int) (*domain.Order, error) {
	return s.orders.GetOrder(id)
}

func (s *SettlementService) ListOrders(limit int) ([]domain.Order, error) {
	return s.orders.ListOrders(limit)
}

func (s *SettlementService) taxRatePercent() float64 {
	info, err := s.staff.GetRestaurantInfo()
	if err != nil || info == nil || info.TaxRate <= 0 {
		return DefaultTaxRatePercent
	}
	return info.TaxRate
}

func validatePayment(payment *domain.Payment, total float64) error {
	switch payment.Method {
	case domain.PaymentCash:
		if payment.AmountTendered < total {
			return ErrInsufficientPayment
		}
	case domain.PaymentCard:
		digits := strings.ReplaceAll(payment.CardNumber, " ", "")
		if len(digits) < 15 || len(digits) > 16 {
			return ErrInvalidCardNumber
		}
		if !expiryPattern.MatchString(payment.Expiry) {
			return ErrInvalidExpiry
		}
		if len(payment.CVV) < 3 || len(payment.CVV) > 4 {
			return ErrInvalidCVV
		}
	case domain.PaymentGift:
		if payment.GiftCardNumber == "" {
			return ErrMissingGiftCardNumber
		}
	default:
		return ErrUnknownPaymentMethod
	}
	return nil
}

func buildOrder(req SettleRequest, payment *domain.Payment, totals Totals) *domain.Order {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.Price,
			TotalPrice: domain.Round2(line.Price * float64(line.Quantity)),
		})
	}

	order := &domain.Order{
		Table:               req.Table,
		Items:               items,
		Subtotal:            domain.Round2(totals.Subtotal),
		Tax:                 domain.Round2(totals.Tax),
		Tip:                 domain.Round2(totals.Tip),
		Total:               domain.Round2(totals.Total),
		PaymentMethod:       payment.Method,
		Staff:               req.StaffName,
		StaffID:             req.StaffID,
		SpecialInstructions: req.SpecialInstructions,
	}

	if payment.Method == domain.PaymentCash {
		tendered := domain.Round2(payment.AmountTendered)
		change := domain.Round2(payment.AmountTendered - totals.Total)
		if change < 0 {
			change = 0
		}
		order.Tendered = &tendered
		order.Change = &change
	}

	return order
}

func settledEvent(order *domain.Order) domain.SettledEvent {
	items := make([]domain.SettledItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.SettledItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return domain.SettledEvent{
		Type:        "order_settled",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Table:       order.Table,
		Staff:       order.Staff,
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		Tip:         order.Tip,
		Total:       order.Total,
		Items:       items,
		Timestamp:   time.Now(),
	}
}
