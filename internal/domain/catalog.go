package domain

// Product is a single sellable item derived from an item folder. It is rebuilt
// on every catalog read and never persisted.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	SKU            string   `json:"sku"`
	ItemCost       float64  `json:"itemCost"` // unit price in main currency units
	BoxCost        float64  `json:"boxCost"`  // price of one box
	UnitsPerBox    int      `json:"unitsPerBox"`
	Images         []string `json:"images"` // image URLs, filename-sorted
	CollectionID   string   `json:"collectionId"`
	CollectionName string   `json:"collectionName"`
}

// Collection groups the valid products of one collection folder.
type Collection struct {
	ID       string    `json:"id"`   // slug of the folder name
	Name     string    `json:"name"` // raw folder name
	Products []Product `json:"products"`
}
