package domain

// OrderItem mirrors CartItem at submission time; the full item list is stored
// as one JSON-encoded CSV column.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	BoxCost     float64 `json:"boxCost"`
	UnitsPerBox int     `json:"unitsPerBox"`
	Quantity    int     `json:"quantity"`
}

// OrderForm is the checkout payload. Name, email, phone, company and
// shipping address are mandatory, as is at least one item.
type OrderForm struct {
	Name            string      `json:"name" form:"name"`
	Email           string      `json:"email" form:"email"`
	Phone           string      `json:"phone" form:"phone"`
	Company         string      `json:"company" form:"company"`
	ShippingAddress string      `json:"shippingAddress" form:"shippingAddress"`
	FreightOption   string      `json:"freightOption" form:"freightOption"` // "own" or the house carrier
	FreightCompany  string      `json:"freightCompany" form:"freightCompany"`
	FreightAccount  string      `json:"freightAccount" form:"freightAccount"`
	FreightContact  string      `json:"freightContact" form:"freightContact"`
	OrderNotes      string      `json:"orderNotes" form:"orderNotes"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total" form:"total"`
}

// OrderRecord is one row of DATABASE/Orders/orders.csv.
type OrderRecord struct {
	OrderID         string `csv:"order_id" json:"orderId"`
	OrderDate       string `csv:"order_date" json:"orderDate"` // RFC3339
	Name            string `csv:"name" json:"name"`
	Email           string `csv:"email" json:"email"`
	Phone           string `csv:"phone" json:"phone"`
	Company         string `csv:"company" json:"company"`
	ShippingAddress string `csv:"shipping_address" json:"shippingAddress"`
	FreightInfo     string `csv:"freight_info" json:"freightInfo"`
	FreightCompany  string `csv:"freight_company" json:"freightCompany"`
	FreightAccount  string `csv:"freight_account" json:"freightAccount"`
	FreightContact  string `csv:"freight_contact" json:"freightContact"`
	OrderNotes      string `csv:"order_notes" json:"orderNotes"`
	ItemsJSON       string `csv:"items" json:"items"`
	Total           string `csv:"total" json:"total"` // formatted with two decimals
}
