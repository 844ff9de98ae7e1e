package domain

// Coordinates is a latitude/longitude pair as returned by the geocoding
// collaborator.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CartItem is a priced line in a cart. Name and UnitPrice are snapshots taken
// from the menu catalog at the time the item was added.
type CartItem struct {
	ItemID            string
	Name              string
	UnitPrice         float64
	Quantity          int
	VendorID          string
	VendorName        string
	VendorCoordinates *Coordinates
}

func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Cart holds the items a single customer is assembling from a single vendor.
// Insertion order is preserved for display. An empty cart has no vendor.
type Cart struct {
	Items []CartItem
}

// VendorID returns the vendor all items belong to, or "" for an empty cart.
func (c *Cart) VendorID() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].VendorID
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Find(itemID string) (int, bool) {
	for i, item := range c.Items {
		if item.ItemID == itemID {
			return i, true
		}
	}
	return -1, false
}

// Copy returns a deep copy. Checkout snapshots a cart through this so later
// cart mutations cannot touch a placed order's item list.
func (c *Cart) Copy() *Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].VendorCoordinates != nil {
			coords := *items[i].VendorCoordinates
			items[i].VendorCoordinates = &coords
		}
	}
	return &Cart{Items: items}
}
