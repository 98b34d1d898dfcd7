package domain

// CartLine is one cart row joined with its product, as returned to callers.
// CartID is the row's own primary key; quantity is always >= 1 — a line
// that would reach zero is deleted instead.
type CartLine struct {
	CartID    int64  `json:"cartId"`
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Img       string `json:"img"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartTotal sums the parsed line prices times quantities.
func CartTotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += ParsePrice(l.Price) * int64(l.Quantity)
	}
	return total
}
