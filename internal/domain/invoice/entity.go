// internal/domain/invoice/entity.go
package invoice

// Invoice is a billing document stored in the invoice collection
type Invoice struct {
	ID                 string `bson:"_id,omitempty" json:"id,omitempty"`
	InvoiceNumber      string `bson:"invoiceNumber" json:"invoiceNumber"`
	DateIssued         string `bson:"dateIssued" json:"dateIssued"`
	Total              int64  `bson:"total" json:"total"` // In minor units
	SalesPerson        string `bson:"salesPerson" json:"salesPerson"`
	FactoryDetails     string `bson:"factoryDetails" json:"factoryDetails"`
	FactoryPhoneNumber string `bson:"factoryPhoneNumber" json:"factoryPhoneNumber"`
	CustomerEmail      string `bson:"customerEmail" json:"customerEmail"`
}

// GetFormattedTotal returns the invoice total as a float in major units
func (i *Invoice) GetFormattedTotal() float64 {
	return float64(i.Total) / 100
}
