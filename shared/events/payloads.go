package events

// InventoryStatus is the outcome of a stock reservation
type InventoryStatus string

const (
	InventoryReserved InventoryStatus = "RESERVED"
	InventoryFailed   InventoryStatus = "FAILED"
)

// PaymentStatus is the outcome of a payment authorization
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// OrderItemPayload is a line item inside an OrderCreatedData payload
type OrderItemPayload struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

// OrderCreatedData is the payload of OrderCreatedEvent_V1
type OrderCreatedData struct {
	OrderID     string             `json:"orderId"`
	CustomerID  string             `json:"customerId"`
	TotalAmount int64              `json:"totalAmount"`
	Currency    string             `json:"currency"`
	Items       []OrderItemPayload `json:"items"`
}

// InventoryStatusData is the payload of InventoryStatusEvent_V1
type InventoryStatusData struct {
	OrderID string          `json:"orderId"`
	Status  InventoryStatus `json:"status"`
}

// PaymentStatusData is the payload of PaymentStatusEvent_V1
type PaymentStatusData struct {
	OrderID string        `json:"orderId"`
	Status  PaymentStatus `json:"status"`
}
