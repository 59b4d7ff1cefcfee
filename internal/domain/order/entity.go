// internal/domain/order/entity.go
package order

// Order represents a persisted order in the DOrders collection. Orders are
// written exactly once at checkout and never updated; Total equals the sum
// of the line TotalAmounts as computed at creation time.
type Order struct {
	ID    string      `bson:"_id,omitempty" json:"id,omitempty"`
	Date  string      `bson:"date" json:"date"` // Calendar date only, no time component
	Email string      `bson:"email" json:"email"`
	Items []OrderItem `bson:"items" json:"items"`
	Total int64       `bson:"total" json:"total"` // In minor units
}

// OrderItem is a line snapshot taken from the cart at checkout. Price and
// TotalAmount come from the cart's price snapshot, not the catalog.
type OrderItem struct {
	ProductName string `bson:"productName" json:"productName"`
	Price       int64  `bson:"price" json:"price"`
	PID         string `bson:"pid" json:"pid"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	ImageURL    string `bson:"imageUrl" json:"imageUrl"`
	TotalAmount int64  `bson:"totalAmount" json:"totalAmount"` // Price * Quantity
}

// GetFormattedTotal returns the order total as a float in major units
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.Total) / 100
}
