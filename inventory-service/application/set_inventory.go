package application

import (
	"context"

	"github.com/flowcart/order-system/inventory-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product has no inventory record
var ErrProductNotFound = errors.New("product not found")

// SetInventoryCommand replaces a product's available quantity
type SetInventoryCommand struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SetInventory creates or updates a product inventory record
type SetInventory struct {
	inventoryRepository domain.InventoryRepository
	tx                  database.TxManager
}

// NewSetInventory creates a new SetInventory use case
func NewSetInventory(inventoryRepository domain.InventoryRepository, tx database.TxManager) *SetInventory {
	return &SetInventory{
		inventoryRepository: inventoryRepository,
		tx:                  tx,
	}
}

// Execute executes the use case
func (uc *SetInventory) Execute(ctx context.Context, cmd *SetInventoryCommand) (*domain.ProductInventory, error) {
	var result *domain.ProductInventory

	err := uc.tx.WithTx(ctx, func(ctx context.Context) error {
		stock, err := uc.inventoryRepository.FindByProductIDForUpdate(ctx, cmd.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to load product inventory")
		}

		if stock == nil {
			stock, err = domain.NewProductInventory(cmd.ProductID, cmd.Quantity)
			if err != nil {
				return err
			}
			result = stock
			return errors.Wrap(uc.inventoryRepository.Save(ctx, stock), "failed to save product inventory")
		}

		if err := stock.SetQuantity(cmd.Quantity); err != nil {
			return err
		}
		result = stock
		return errors.Wrap(uc.inventoryRepository.Update(ctx, stock), "failed to update product inventory")
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetInventory reads a product inventory record
type GetInventory struct {
	inventoryRepository domain.InventoryRepository
}

// NewGetInventory creates a new GetInventory use case
func NewGetInventory(inventoryRepository domain.InventoryRepository) *GetInventory {
	return &GetInventory{inventoryRepository: inventoryRepository}
}

// Execute returns the inventory record for the given product
func (uc *GetInventory) Execute(ctx context.Context, productID string) (*domain.ProductInventory, error) {
	stock, err := uc.inventoryRepository.FindByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product inventory")
	}
	if stock == nil {
		return nil, ErrProductNotFound
	}

	return stock, nil
}
