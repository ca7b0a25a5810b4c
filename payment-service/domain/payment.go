package domain

import (
	"context"

	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/models"
	"github.com/pkg/errors"
)

// PaymentStatus represents the outcome of a payment authorization
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// AuthorizationPolicy decides whether a charge is authorized. Amounts above
// the threshold are declined.
type AuthorizationPolicy struct {
	ThresholdAmount int64
}

// NewAuthorizationPolicy creates an authorization policy
func NewAuthorizationPolicy(thresholdAmount int64) AuthorizationPolicy {
	return AuthorizationPolicy{ThresholdAmount: thresholdAmount}
}

// Authorizes reports whether the amount passes the policy
func (p AuthorizationPolicy) Authorizes(amount models.Money) bool {
	return amount.Amount <= p.ThresholdAmount
}

// Payment records one authorization attempt for an order
type Payment struct {
	ID         models.ID
	OrderID    models.ID
	Amount     models.Money
	Status     PaymentStatus
	Timestamps models.Timestamps
}

// ProcessPayment runs the authorization policy and records the outcome
func ProcessPayment(orderID models.ID, amount models.Money, policy AuthorizationPolicy) (*Payment, error) {
	if orderID == "" {
		return nil, errors.New("order ID is required")
	}
	if !amount.IsPositive() {
		return nil, errors.New("amount must be positive")
	}

	status := PaymentStatusFailed
	if policy.Authorizes(amount) {
		status = PaymentStatusSucceeded
	}

	return &Payment{
		ID:         models.GenerateUUID(),
		OrderID:    orderID,
		Amount:     amount,
		Status:     status,
		Timestamps: models.NewTimestamps(),
	}, nil
}

// StatusEventData builds the PaymentStatusEvent_V1 payload for this payment
func (p *Payment) StatusEventData() events.PaymentStatusData {
	status := events.PaymentFailed
	if p.Status == PaymentStatusSucceeded {
		status = events.PaymentSucceeded
	}

	return events.PaymentStatusData{
		OrderID: p.OrderID.String(),
		Status:  status,
	}
}

// PaymentRepository interface
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByOrderID(ctx context.Context, orderID models.ID) (*Payment, error)
}
