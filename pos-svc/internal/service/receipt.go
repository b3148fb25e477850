package service

import (
	"fmt"
	"strings"

	"restaurant-pos/pos-svc/internal/domain"
)

const receiptDivider = "--------------------------------"

type ReceiptService struct {
	orders OrderRepository
	staff  StaffRepository
}

func NewReceiptService(orders OrderRepository, staff StaffRepository) *ReceiptService {
	return &ReceiptService{orders: orders, staff: staff}
}

// Render produces the plain-text customer receipt for a settled order.
func (s *ReceiptService) Render(orderID int) (string, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return "", ErrOrderNotFound
	}

	var b strings.Builder

	info, infoErr := s.staff.GetRestaurantInfo()
	if infoErr == nil && info != nil {
		fmt.Fprintf(&b, "%s\n", info.Name)
		if info.Address != "" {
			fmt.Fprintf(&b, "%s\n", info.Address)
		}
		if info.City != "" {
			fmt.Fprintf(&b, "%s, %s %s\n", info.City, info.State, info.Zip)
		}
		if info.Phone != "" {
			fmt.Fprintf(&b, "%s\n", info.Phone)
		}
	}

	fmt.Fprintf(&b, "%s\n", receiptDivider)
	fmt.Fprintf(&b, "Order: %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "%s\n", domain.TableLabel(order.Table))
	fmt.Fprintf(&b, "Staff: %s\n", order.Staff)
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format("01/02/2006 3:04 PM"))
	fmt.Fprintf(&b, "%s\n", receiptDivider)

	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %-20s %8.2f\n", item.Quantity, item.Name, item.TotalPrice)
	}

	fmt.Fprintf(&b, "%s\n", receiptDivider)
	fmt.Fprintf(&b, "%-23s %8.2f\n", "Subtotal", order.Subtotal)
	fmt.Fprintf(&b, "%-23s %8.2f\n", "Tax", order.Tax)
	if order.Tip > 0 {
		fmt.Fprintf(&b, "%-23s %8.2f\n", "Tip", order.Tip)
	}
	fmt.Fprintf(&b, "%-23s %8.2f\n", "TOTAL", order.Total)

	switch order.PaymentMethod {
	case domain.PaymentCash:
		if order.Tendered != nil {
			fmt.Fprintf(&b, "%-23s %8.2f\n", "Cash tendered", *order.Tendered)
		}
		if order.Change != nil {
			fmt.Fprintf(&b, "%-23s %8.2f\n", "Change", *order.Change)
		}
	case domain.PaymentCard:
		fmt.Fprintf(&b, "Paid by card\n")
	case domain.PaymentGift:
		fmt.Fprintf(&b, "Paid by gift card\n")
	}

	fmt.Fprintf(&b, "%s\n", receiptDivider)
	fmt.Fprintf(&b, "Thank you for dining with us!\n")

	return b.String(), nil
}
