package models

// CartLine es un renglón del carrito. Name y UnitPrice se copian del
// catálogo al momento de agregar; un cambio de precio posterior no
// afecta renglones ya cargados.
type CartLine struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int64  `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * l.Quantity
}

// Cart holds the lines of one shopping session. Lines keep insertion
// order and contain at most one entry per ProductID. TotalItems and
// TotalPrice are derived values: they are only ever produced by
// RecomputeTotals, never mutated independently.
type Cart struct {
	SessionID  string     `json:"session_id"`
	Lines      []CartLine `json:"lines"`
	TotalItems int64      `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

func (c *Cart) RecomputeTotals() {
	var items, price int64
	for _, line := range c.Lines {
		items += line.Quantity
		price += line.Subtotal()
	}
	c.TotalItems = items
	c.TotalPrice = price
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clone returns a deep copy so callers never hold the live Lines slice.
func (c *Cart) Clone() *Cart {
	clone := &Cart{
		SessionID:  c.SessionID,
		TotalItems: c.TotalItems,
		TotalPrice: c.TotalPrice,
	}
	if len(c.Lines) > 0 {
		clone.Lines = make([]CartLine, len(c.Lines))
		copy(clone.Lines, c.Lines)
	}
	return clone
}
