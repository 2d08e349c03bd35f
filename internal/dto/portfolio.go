package dto

// AddStockRequest adds a holding to a session portfolio. Name and
// Price are optional when the symbol exists in the popular catalog.
type AddStockRequest struct {
	Symbol   string  `json:"symbol" validate:"required"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
