package inventory

import "github.com/medgate/medgate/pkg/coerce"

// Category codes used by the inventory backend.
const (
	CategoryMedication = "MED"
	CategoryEquipment  = "EQUIP"
	CategorySupplies   = "SUPP"
	CategoryOther      = "OTHER"
)

// Item is an inventory record. Quantity fields are coerce.Int because drafts
// arrive from forms where numbers may be strings, and the backend wants real
// integers.
type Item struct {
	ID            int64      `json:"id,omitempty"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Description   string     `json:"description,omitempty"`
	Quantity      coerce.Int `json:"quantity"`
	Unit          string     `json:"unit"`
	MinimumStock  coerce.Int `json:"minimum_stock"`
	LastRestocked string     `json:"last_restocked,omitempty"`
	Supplier      string     `json:"supplier,omitempty"`
	Location      string     `json:"location,omitempty"`
	ExpiryDate    *string    `json:"expiry_date"`
}

// IsLowStock reports whether the item is at or below its reorder threshold.
func (i Item) IsLowStock() bool {
	return int(i.Quantity) <= int(i.MinimumStock)
}

// Normalize cleans a submitted draft: an empty expiry date becomes null so
// the backend's date field validation does not trip on "".
func (i *Item) Normalize() {
	if i.ExpiryDate != nil && *i.ExpiryDate == "" {
		i.ExpiryDate = nil
	}
}
