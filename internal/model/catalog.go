package model

// CatalogItem is a single entry of the read-only fruit catalog.
type CatalogItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
