package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"af-restro/internal/domain"
	"af-restro/internal/pricing"
)

var (
	ErrNoTable   = errors.New("select a table first")
	ErrEmptyCart = errors.New("cart is empty")
)

const (
	restaurantHeader = "AF RESTRO"
	receiptWidth     = 26
)

// CheckoutResult is what the client needs to hand the order to the
// messaging app: the composed text and the wa.me deep link carrying it.
type CheckoutResult struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// OrderService turns the cart into outbound artifacts: the WhatsApp
// checkout message, the POS receipt text and the checkout QR code. It
// never mutates the cart itself except through ConfirmCheckout, which
// models the user confirming that the order went out.
type OrderService struct {
	cart           CartServiceInterface
	publisher      OrderPublisher
	qr             QRGenerator
	whatsAppNumber string
}

func NewOrderService(cart CartServiceInterface, publisher OrderPublisher, qr QRGenerator, whatsAppNumber string) *OrderService {
	if whatsAppNumber == "" {
		whatsAppNumber = domain.DefaultWhatsAppNumber
	}
	return &OrderService{cart: cart, publisher: publisher, qr: qr, whatsAppNumber: whatsAppNumber}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// plain formats a price the way the source data carries it, without
// forcing two decimals (used for add-on annotations in the message).
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// padRight and truncate work in runes, not bytes, so Arabic dish names
// keep the receipt columns intact instead of being split mid-character.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func sizeAbbreviation(line domain.CartLine) string {
	if line.PricingOption == "1" {
		return "F"
	}
	switch line.Size {
	case domain.SizeSingle:
		return "S"
	case domain.SizeRegular:
		return "R"
	default:
		return "F"
	}
}

func validateOrder(lines []domain.CartLine, tableNumber string) error {
	if tableNumber == "" {
		return ErrNoTable
	}
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	return nil
}

// ComposeCheckoutMessage renders the WhatsApp order text: bolded header,
// one block per cart line with indented add-on rows, then the totals
// footer with the original amount and discount shown only when a
// discount applied.
func ComposeCheckoutMessage(lines []domain.CartLine, tableNumber string, totals domain.CartTotals, now time.Time) (string, error) {
	if err := validateOrder(lines, tableNumber); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s - NEW ORDER*\n", restaurantHeader)
	fmt.Fprintf(&b, "*Table:* %s\n", tableNumber)
	fmt.Fprintf(&b, "*Time:* %s\n\n", now.Format("3:04:05 PM"))

	for _, line := range lines {
		fmt.Fprintf(&b, "▪️ %dx %s (%s)\n   Amt: Đ %s\n",
			line.Quantity, line.DishName, line.Size, money(line.AdjustedPrice*float64(line.Quantity)))
		for _, cat := range line.SelectedAddons {
			for _, addon := range cat.Items {
				fmt.Fprintf(&b, "   + %s (Đ %s)\n", addon.Name, plain(addon.Price))
			}
		}
	}

	b.WriteString("\n------------------\n")
	if totals.DiscountTotal > 0.01 {
		fmt.Fprintf(&b, "Actual: Đ %s\n", money(totals.OriginalTotal))
		fmt.Fprintf(&b, "Discount: -Đ %s\n", money(totals.DiscountTotal))
	}
	fmt.Fprintf(&b, "Subtotal: Đ %s\n", money(totals.Subtotal))
	fmt.Fprintf(&b, "Tax (5%%): Đ %s\n", money(totals.Tax))
	fmt.Fprintf(&b, "*TOTAL: Đ %s*", money(totals.GrandTotal))

	return b.String(), nil
}

// ComposePosReceipt renders the fixed-width text block for thermal
// printers: 26-column layout, names truncated with a size abbreviation,
// add-ons as indented sub-rows, discount row only when meaningful.
func ComposePosReceipt(lines []domain.CartLine, tableNumber string, totals domain.CartTotals, now time.Time) (string, error) {
	if err := validateOrder(lines, tableNumber); err != nil {
		return "", err
	}

	divider := strings.Repeat("-", receiptWidth) + "\n"

	var b strings.Builder
	b.WriteString("      " + restaurantHeader + "\n")
	b.WriteString(" Premium Dining Experience\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "Table: %s\n", tableNumber)
	fmt.Fprintf(&b, "Date: %s\n", now.Format("1/2/2006, 3:04:05 PM"))
	b.WriteString(divider)
	b.WriteString("ITEM            QTY  PRICE\n")

	for _, line := range lines {
		name := padRight(fmt.Sprintf("%s (%s)", truncate(line.DishName, 10), sizeAbbreviation(line)), 15)
		qty := padRight("x"+strconv.Itoa(line.Quantity), 4)
		fmt.Fprintf(&b, "%s %s %s\n", name, qty, money(line.AdjustedPrice*float64(line.Quantity)))
		for _, cat := range line.SelectedAddons {
			for _, addon := range cat.Items {
				fmt.Fprintf(&b, " + %s    +%s\n", truncate(addon.Name, 10), money(addon.Price))
			}
		}
	}

	b.WriteString(divider)
	fmt.Fprintf(&b, "Subtotal:      %s\n", money(totals.Subtotal))
	if totals.DiscountTotal > 0.01 {
		fmt.Fprintf(&b, "Discount:     -%s\n", money(totals.DiscountTotal))
	}
	fmt.Fprintf(&b, "Tax (5%%):      %s\n", money(totals.Tax))
	b.WriteString(divider)
	fmt.Fprintf(&b, "TOTAL:        Đ %s\n", money(totals.GrandTotal))
	b.WriteString(divider)
	b.WriteString("  Thank you for dining!\n")
	b.WriteString("    Please visit again\n\n\n")

	return b.String(), nil
}

func (s *OrderService) compose(tableNumber string, now time.Time) (*CheckoutResult, []domain.CartLine, domain.CartTotals, error) {
	lines := s.cart.Lines()
	totals := pricing.Totals(lines)

	message, err := ComposeCheckoutMessage(lines, tableNumber, totals, now)
	if err != nil {
		return nil, nil, domain.CartTotals{}, err
	}
	link := fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, url.QueryEscape(message))
	return &CheckoutResult{Message: message, Link: link}, lines, totals, nil
}

// Checkout composes the order message and deep link from the current
// cart. The cart is left untouched; the caller clears it through
// ConfirmCheckout once the user confirms the handoff went through.
func (s *OrderService) Checkout(ctx context.Context, tableNumber string, now time.Time) (*CheckoutResult, error) {
	result, lines, totals, err := s.compose(tableNumber, now)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:       "order_placed",
			Table:      tableNumber,
			Subtotal:   totals.Subtotal,
			GrandTotal: totals.GrandTotal,
			Timestamp:  now,
		}
		for _, line := range lines {
			event.Items = append(event.Items, domain.OrderEventItem{
				DishID:   line.ID,
				DishName: line.DishName,
				Quantity: line.Quantity,
			})
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			logger.Warn().Err(err).Msg("failed to publish order event")
		}
	}

	return result, nil
}

// ConfirmCheckout clears the cart after the user confirms the order was
// sent or the receipt was printed.
func (s *OrderService) ConfirmCheckout() {
	s.cart.Clear()
}

func (s *OrderService) Receipt(tableNumber string, now time.Time) (string, error) {
	lines := s.cart.Lines()
	return ComposePosReceipt(lines, tableNumber, pricing.Totals(lines), now)
}

// CheckoutQR encodes the wa.me checkout link as a PNG so the order can
// be handed off by scanning at the counter. It does not publish an
// order event; Checkout already did that.
func (s *OrderService) CheckoutQR(tableNumber string, now time.Time) ([]byte, error) {
	result, _, _, err := s.compose(tableNumber, now)
	if err != nil {
		return nil, err
	}
	if s.qr == nil {
		return nil, errors.New("qr generation unavailable")
	}
	return s.qr.Generate(result.Link)
}

var _ OrderServiceInterface = (*OrderService)(nil)
