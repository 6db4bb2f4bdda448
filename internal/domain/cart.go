package domain

// CartItem is one product line in the cart. Quantity counts boxes, not units.
type CartItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	BoxCost     float64 `json:"boxCost"`
	UnitsPerBox int     `json:"unitsPerBox"`
	Quantity    int     `json:"quantity"`
}

// Cart is the client's current selection. Total is recomputed on every
// mutation as the sum of boxCost times quantity.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// CartTotal sums boxCost * quantity over items.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.BoxCost * float64(item.Quantity)
	}
	return total
}
