package domain

import "time"

// Categories enumerates the valid product categories.
var Categories = []string{"rings", "necklaces", "earrings", "bracelets", "bangles", "pendants"}

type Product struct {
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Price            float64   `json:"price"`
	OriginalPrice    float64   `json:"originalPrice,omitempty"`
	Currency         string    `json:"currency"`
	Images           []string  `json:"images"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Material         string    `json:"material"`
	Weight           string    `json:"weight,omitempty"`
	Purity           string    `json:"purity,omitempty"`
	Gemstones        []string  `json:"gemstones,omitempty"`
	Sizes            []string  `json:"sizes,omitempty"`
	Rating           float64   `json:"rating"`
	ReviewCount      int       `json:"reviewCount"`
	IsNew            bool      `json:"isNew"`
	IsBestseller     bool      `json:"isBestseller"`
	IsFeatured       bool      `json:"isFeatured"`
	InStock          bool      `json:"inStock"`
	Tags             []string  `json:"tags,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
