// internal/domain/product/entity.go
package product

// Product represents a sellable item in the products collection. Quantity is
// the available stock; from the storefront's point of view it is the only
// field checkout ever mutates. Creation and editing happen outside this
// service.
type Product struct {
	ID          string `bson:"_id,omitempty" json:"id,omitempty"`
	ProductName string `bson:"productName" json:"productName"`
	Price       int64  `bson:"price" json:"price"` // Price in minor units
	Quantity    int    `bson:"quantity" json:"quantity"`
	ImageURL    string `bson:"imageUrl" json:"imageUrl"`
	Description string `bson:"description" json:"description"`
	Discount    *int   `bson:"discount,omitempty" json:"discount,omitempty"` // Percentage off, when set
}

// IsInStock checks whether any units are available
func (p *Product) IsInStock() bool {
	return p.Quantity > 0
}

// GetFormattedPrice returns the price as a float in major units
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}
