package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

const (
	tokenPath  = "/v1/oauth2/token"
	ordersPath = "/v2/checkout/orders"
	refundPath = "/v2/payments/captures/%s/refund"

	intentCapture = "CAPTURE"
	relApprove    = "approve"
)

// Config параметры подключения к PayPal REST API
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Currency     string
	ReturnURL    string
	CancelURL    string
	Timeout      time.Duration
}

// Client клиент PayPal Orders v2 / Payments v2.
// Токен OAuth2 (client credentials) кешируется до истечения срока.
type Client struct {
	cfg        Config
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента PayPal
func NewClient(cfg Config, log Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	base := &http.Client{Timeout: cfg.Timeout}
	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.BaseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	httpClient := credentials.Client(context.WithValue(context.Background(), oauth2.HTTPClient, base))
	httpClient.Timeout = cfg.Timeout

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        log,
	}
}

// WithMetrics включает счетчики обращений к шлюзу
func (c *Client) WithMetrics(m Metrics) *Client {
	c.metrics = m
	return c
}

// CreateOrder создает заказ с intent CAPTURE и возвращает ссылку для подтверждения оплаты
func (c *Client) CreateOrder(ctx context.Context, amount float64, meta domain.OrderMetadata) (order *domain.PaymentOrder, err error) {
	defer func() { c.observe("create_order", err) }()

	body := CreateOrderRequest{
		Intent: intentCapture,
		PurchaseUnits: []PurchaseUnit{{
			ReferenceID: meta.BookingID,
			CustomID:    meta.BookingID,
			Description: meta.Description(),
			Amount:      c.money(amount),
		}},
		ApplicationContext: ApplicationContext{
			ReturnURL:          c.cfg.ReturnURL,
			CancelURL:          c.cfg.CancelURL,
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "PAY_NOW",
		},
	}

	var resp OrderResponse
	if err := c.post(ctx, c.cfg.BaseURL+ordersPath, body, &resp); err != nil {
		return nil, err
	}

	if resp.ID == "" {
		return nil, fmt.Errorf("%w: order id is missing", ErrInvalidResponse)
	}

	approvalURL := ""
	for _, link := range resp.Links {
		if link.Rel == relApprove {
			approvalURL = link.Href
			break
		}
	}
	if approvalURL == "" {
		return nil, fmt.Errorf("%w: approval link is missing for order %s", ErrInvalidResponse, resp.ID)
	}

	c.log.Info("PayPal order created: order_id=%s, booking_id=%s, amount=%s",
		resp.ID, meta.BookingID, formatAmount(amount))

	return &domain.PaymentOrder{OrderID: resp.ID, ApprovalURL: approvalURL}, nil
}

// CapturePayment разбирает результат capture, полученный клиентом от PayPal.
// Сетевых вызовов не делает.
func (c *Client) CapturePayment(payload []byte) (*domain.CaptureResult, error) {
	var callback CaptureCallback
	if err := json.Unmarshal(payload, &callback); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if callback.ID == "" {
		return nil, fmt.Errorf("%w: order id is missing", ErrInvalidPayload)
	}

	result := &domain.CaptureResult{
		OrderID: callback.ID,
		Status:  callback.Status,
	}

	if len(callback.PurchaseUnits) == 0 {
		return result, nil
	}

	unit := callback.PurchaseUnits[0]
	amount := unit.Amount
	if len(unit.Payments.Captures) > 0 {
		capture := unit.Payments.Captures[0]
		result.CaptureID = capture.ID
		if amount == nil {
			amount = capture.Amount
		}
	}

	if amount != nil && amount.Value != "" {
		value, err := strconv.ParseFloat(amount.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q: %v", ErrInvalidPayload, amount.Value, err)
		}
		result.Amount = value
		result.Currency = amount.CurrencyCode
	}

	return result, nil
}

// RefundPayment возвращает amount по capture
func (c *Client) RefundPayment(ctx context.Context, captureID string, amount float64, reason string) (result *domain.RefundResult, err error) {
	defer func() { c.observe("refund", err) }()

	body := RefundRequest{
		Amount:      c.money(amount),
		NoteToPayer: reason,
	}

	var resp RefundResponse
	if err := c.post(ctx, c.cfg.BaseURL+fmt.Sprintf(refundPath, captureID), body, &resp); err != nil {
		return nil, err
	}

	if resp.ID == "" {
		return nil, fmt.Errorf("%w: refund id is missing", ErrInvalidResponse)
	}

	c.log.Info("PayPal refund completed: capture_id=%s, refund_id=%s, status=%s", captureID, resp.ID, resp.Status)

	return &domain.RefundResult{RefundID: resp.ID, Status: resp.Status}, nil
}

func (c *Client) post(ctx context.Context, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, readError(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) money(amount float64) Money {
	return Money{CurrencyCode: c.cfg.Currency, Value: formatAmount(amount)}
}

func (c *Client) observe(operation string, err error) {
	if c.metrics != nil {
		c.metrics.ObservePaymentCall(operation, err)
	}
	if err != nil {
		c.log.Error("PayPal %s failed: %v", operation, err)
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func readError(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 4096))

	var perr ErrorResponse
	if err := json.Unmarshal(body, &perr); err == nil && perr.Name != "" {
		return fmt.Sprintf("%s: %s (debug_id=%s)", perr.Name, perr.Message, perr.DebugID)
	}
	return string(body)
}
