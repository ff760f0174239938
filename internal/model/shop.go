// Package model holds the records exchanged between the repository,
// service and handler layers.
package model

// Shop is a single stored shop record.
//
// Title is empty and Price/Description are nil when a wholesale replace
// omitted them; empty fields are left out of the JSON body.
type Shop struct {
	ID          string  `json:"id"`
	Title       string  `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *Price  `json:"price,omitempty"`
}

// ShopInput holds the writable fields of a shop.
type ShopInput struct {
	Title       string
	Description *string
	Price       *Price
}

// NewShop builds the record stored for input under id.
func NewShop(id string, input ShopInput) Shop {
	return Shop{
		ID:          id,
		Title:       input.Title,
		Description: cloneString(input.Description),
		Price:       clonePrice(input.Price),
	}
}

// Clone returns a deep copy so callers cannot reach stored pointers.
func (s Shop) Clone() Shop {
	s.Description = cloneString(s.Description)
	s.Price = clonePrice(s.Price)
	return s
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func clonePrice(p *Price) *Price {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
