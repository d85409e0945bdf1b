package paypal

// Money сумма в формате PayPal: строка с двумя знаками после точки
type Money struct {
	CurrencyCode string `json:"currency_code,omitempty"`
	Value        string `json:"value"`
}

// CreateOrderRequest тело POST /v2/checkout/orders
type CreateOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	ApplicationContext ApplicationContext `json:"application_context"`
}

type PurchaseUnit struct {
	ReferenceID string `json:"reference_id,omitempty"`
	Description string `json:"description,omitempty"`
	CustomID    string `json:"custom_id,omitempty"`
	Amount      Money  `json:"amount"`
}

type ApplicationContext struct {
	ReturnURL          string `json:"return_url,omitempty"`
	CancelURL          string `json:"cancel_url,omitempty"`
	ShippingPreference string `json:"shipping_preference,omitempty"`
	UserAction         string `json:"user_action,omitempty"`
}

// OrderResponse ответ на создание заказа
type OrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// CaptureCallback полезная нагрузка результата capture, которую присылает клиент после подтверждения оплаты
type CaptureCallback struct {
	ID            string                `json:"id"`
	Status        string                `json:"status"`
	PurchaseUnits []CapturePurchaseUnit `json:"purchase_units"`
}

type CapturePurchaseUnit struct {
	Amount   *Money `json:"amount,omitempty"`
	Payments struct {
		Captures []Capture `json:"captures"`
	} `json:"payments"`
}

type Capture struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount *Money `json:"amount,omitempty"`
}

// RefundRequest тело POST /v2/payments/captures/{id}/refund
type RefundRequest struct {
	Amount      Money  `json:"amount"`
	NoteToPayer string `json:"note_to_payer,omitempty"`
}

// RefundResponse ответ на возврат
type RefundResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки PayPal
type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	DebugID string `json:"debug_id"`
}
