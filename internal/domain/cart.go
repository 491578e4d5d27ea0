package domain

// CartItem is one cart line: a product+size combination with a quantity.
// The name/price/image/category fields are a snapshot taken at add time.
type CartItem struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}

// WishlistItem is keyed by slug alone; sizes do not apply to wishlists.
type WishlistItem struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}
