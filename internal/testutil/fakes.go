package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/internal/integrations/paypal"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/logger"
)

// Clock фиксированное время
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time {
	return c.T
}

// Gateway фейковый платежный шлюз. Разбор capture делегируется настоящему клиенту PayPal.
type Gateway struct {
	mu sync.Mutex

	Order     *domain.PaymentOrder
	CreateErr error
	Refund    *domain.RefundResult
	RefundErr error

	CreateCalls  int
	RefundCalls  int
	LastAmount   float64
	LastMeta     domain.OrderMetadata
	LastCapture  string
	RefundReason string

	parser *paypal.Client
}

func NewGateway() *Gateway {
	return &Gateway{
		Order:  &domain.PaymentOrder{OrderID: "ORDER1", ApprovalURL: "https://paypal.test/approve/ORDER1"},
		Refund: &domain.RefundResult{RefundID: "REF1", Status: "COMPLETED"},
		parser: paypal.NewClient(paypal.Config{BaseURL: "http://paypal.invalid"}, logger.NewNop()),
	}
}

func (g *Gateway) CreateOrder(_ context.Context, amount float64, meta domain.OrderMetadata) (*domain.PaymentOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.CreateCalls++
	g.LastAmount = amount
	g.LastMeta = meta
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}
	order := *g.Order
	return &order, nil
}

func (g *Gateway) CapturePayment(payload []byte) (*domain.CaptureResult, error) {
	return g.parser.CapturePayment(payload)
}

func (g *Gateway) RefundPayment(_ context.Context, captureID string, amount float64, reason string) (*domain.RefundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.RefundCalls++
	g.LastCapture = captureID
	g.LastAmount = amount
	g.RefundReason = reason
	if g.RefundErr != nil {
		return nil, g.RefundErr
	}
	refund := *g.Refund
	return &refund, nil
}

// Notifier записывает отправленные уведомления
type Notifier struct {
	mu     sync.Mutex
	Events []string
	Err    error
}

func (n *Notifier) record(event string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Events = append(n.Events, event)
	return nil
}

func (n *Notifier) SendConfirmation(_ context.Context, b *domain.Booking, _ *domain.BookingDetails) error {
	return n.record("confirmation:" + b.ID)
}

func (n *Notifier) SendAdminNotification(_ context.Context, b *domain.Booking, _ *domain.BookingDetails) error {
	return n.record("admin:" + b.ID)
}

func (n *Notifier) SendRefund(_ context.Context, b *domain.Booking) error {
	return n.record("refund:" + b.ID)
}

func (n *Notifier) SendAdminRefundNotification(_ context.Context, b *domain.Booking) error {
	return n.record("admin_refund:" + b.ID)
}

// Sent копия списка отправленных уведомлений
func (n *Notifier) Sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.Events...)
}

// Form заполненная форма бронирования на дату, слот 10:00, Cash, цена 50
func Form(date time.Time) domain.BookingForm {
	return domain.BookingForm{
		FirstName:            "Jane",
		LastName:             "Doe",
		Email:                "jane@example.com",
		ContactNumber:        "07700900000",
		SelectedDate:         date,
		SelectedTimeSlot:     "10:00",
		TotalPrice:           50,
		MakeAndModel:         "Ford Focus",
		RegistrationNo:       "AB12 CDE",
		HowDidYouHearAboutUs: "Google",
		PaymentMethod:        domain.PaymentMethodCash,
	}
}
