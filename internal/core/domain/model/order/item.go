package order

// Item is one line of an order: an item identifier and its price.
type Item struct {
	ItemID string  `json:"itemId"`
	Price  float64 `json:"price"`
}

// Sum returns the total price of the given items. An order's total is always
// this sum over its current items; it is recomputed by the pipeline whenever
// the items change and is never accepted directly from a caller.
func Sum(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}
