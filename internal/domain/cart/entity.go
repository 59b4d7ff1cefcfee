// internal/domain/cart/entity.go
package cart

import "time"

// CartItem represents one user's purchase intent for one product, stored in
// the cart collection. Price is a snapshot taken when the item was added or
// last updated; it is not re-synced with the catalog.
type CartItem struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	PID         string    `bson:"pid" json:"pid"`
	Email       string    `bson:"email" json:"email"`
	ProductName string    `bson:"productName" json:"productName"`
	Price       int64     `bson:"price" json:"price"` // Price in minor units at time of add/update
	Quantity    int       `bson:"quantity" json:"quantity"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
	AddedAt     time.Time `bson:"addedAt" json:"addedAt"`
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique items
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`
}

// CartResponse represents a shopping cart with items and summary
type CartResponse struct {
	Email  string     `json:"email"`
	Items  []CartItem `json:"items"`
	Totals CartTotals `json:"totals"`
}
