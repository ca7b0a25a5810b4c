package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flowcart/order-system/inventory-service/application"
	"github.com/flowcart/order-system/inventory-service/domain"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// InventoryHandlers contains inventory HTTP handlers
type InventoryHandlers struct {
	setInventory *application.SetInventory
	getInventory *application.GetInventory
}

// NewInventoryHandlers creates new inventory handlers
func NewInventoryHandlers(
	setInventory *application.SetInventory,
	getInventory *application.GetInventory,
) *InventoryHandlers {
	return &InventoryHandlers{
		setInventory: setInventory,
		getInventory: getInventory,
	}
}

// InventoryResponse is the HTTP representation of a product inventory
type InventoryResponse struct {
	ProductID         string    `json:"product_id"`
	AvailableQuantity int       `json:"available_quantity"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toInventoryResponse(stock *domain.ProductInventory) *InventoryResponse {
	return &InventoryResponse{
		ProductID:         stock.ProductID,
		AvailableQuantity: stock.AvailableQuantity,
		UpdatedAt:         stock.Timestamps.UpdatedAt,
	}
}

type setInventoryRequest struct {
	Quantity int `json:"quantity"`
}

// SetInventory handles inventory replacement requests
func (h *InventoryHandlers) SetInventory(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		http.Error(w, "Product ID is required", http.StatusBadRequest)
		return
	}

	var req setInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stock, err := h.setInventory.Execute(r.Context(), &application.SetInventoryCommand{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toInventoryResponse(stock))
}

// GetInventory handles inventory retrieval requests
func (h *InventoryHandlers) GetInventory(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		http.Error(w, "Product ID is required", http.StatusBadRequest)
		return
	}

	stock, err := h.getInventory.Execute(r.Context(), productID)
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toInventoryResponse(stock))
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Put("/{productID}", h.SetInventory)
		r.Get("/{productID}", h.GetInventory)
	})
}
