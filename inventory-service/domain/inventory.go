package domain

import (
	"context"

	"github.com/flowcart/order-system/shared/models"
	"github.com/pkg/errors"
)

// ErrInsufficientStock is returned when a reservation cannot be satisfied
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductInventory tracks the available quantity of one product.
// AvailableQuantity never goes negative.
type ProductInventory struct {
	ProductID         string
	AvailableQuantity int
	Timestamps        models.Timestamps
	Version           models.Version
}

// NewProductInventory creates a product inventory record
func NewProductInventory(productID string, quantity int) (*ProductInventory, error) {
	if productID == "" {
		return nil, errors.New("product ID is required")
	}
	if quantity < 0 {
		return nil, errors.New("quantity cannot be negative")
	}

	return &ProductInventory{
		ProductID:         productID,
		AvailableQuantity: quantity,
		Timestamps:        models.NewTimestamps(),
		Version:           models.NewVersion(),
	}, nil
}

// SetQuantity replaces the available quantity
func (p *ProductInventory) SetQuantity(quantity int) error {
	if quantity < 0 {
		return errors.New("quantity cannot be negative")
	}

	p.AvailableQuantity = quantity
	p.touch()
	return nil
}

func (p *ProductInventory) hasStock(quantity int) bool {
	return p.AvailableQuantity >= quantity
}

func (p *ProductInventory) decrement(quantity int) {
	p.AvailableQuantity -= quantity
	p.touch()
}

func (p *ProductInventory) touch() {
	p.Timestamps = p.Timestamps.Update()
	p.Version = p.Version.Update()
}

// ReservationItem is one requested product quantity
type ReservationItem struct {
	ProductID string
	Quantity  int
}

// Reserve decrements stock for every requested item. Quantities are summed
// per product first, so duplicate lines for the same product count against
// the combined total. All totals are checked before any stock is touched:
// a single missing or insufficient product fails the whole reservation and
// leaves every quantity unchanged.
func Reserve(stocks map[string]*ProductInventory, items []ReservationItem) error {
	requested := make(map[string]int, len(items))
	for _, item := range items {
		requested[item.ProductID] += item.Quantity
	}

	for _, item := range items {
		stock, ok := stocks[item.ProductID]
		if !ok || !stock.hasStock(requested[item.ProductID]) {
			return errors.Wrapf(ErrInsufficientStock, "product %s", item.ProductID)
		}
	}

	for productID, quantity := range requested {
		stocks[productID].decrement(quantity)
	}

	return nil
}

// InventoryRepository interface
type InventoryRepository interface {
	Save(ctx context.Context, inventory *ProductInventory) error
	Update(ctx context.Context, inventory *ProductInventory) error
	FindByProductID(ctx context.Context, productID string) (*ProductInventory, error)
	FindByProductIDForUpdate(ctx context.Context, productID string) (*ProductInventory, error)
}
