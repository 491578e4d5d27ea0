package catalog

import (
	"time"

	"jewelstore/internal/domain"
)

// Seed returns the bundled catalog: the seed source for the database and the
// fallback dataset when the database is unreachable. The slice is ordered
// newest-first and creation timestamps decrease along it, so "newest" sorts
// identically on both query paths.
func Seed() []domain.Product {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{
			Slug:             "royal-kundan-necklace",
			Name:             "Royal Kundan Necklace",
			Category:         "necklaces",
			Price:            1250,
			OriginalPrice:    1480,
			Images:           []string{"/images/products/royal-kundan-necklace-1.jpg", "/images/products/royal-kundan-necklace-2.jpg"},
			Description:      "A statement kundan necklace set in 22k gold with uncut polki diamonds and a row of south sea pearls. Handcrafted by Jaipur artisans using traditional jadau techniques.",
			ShortDescription: "22k gold kundan necklace with polki diamonds",
			Material:         "22k Gold",
			Weight:           "48g",
			Purity:           "22k",
			Gemstones:        []string{"Polki Diamond", "Pearl"},
			Rating:           4.9,
			ReviewCount:      87,
			IsNew:            true,
			IsFeatured:       true,
			InStock:          true,
			Tags:             []string{"kundan", "bridal", "gold", "statement"},
		},
		{
			Slug:             "emerald-drop-earrings",
			Name:             "Emerald Drop Earrings",
			Category:         "earrings",
			Price:            640,
			Images:           []string{"/images/products/emerald-drop-earrings-1.jpg"},
			Description:      "Zambian emerald drops framed in rose gold with a halo of pave diamonds. Secure lever backs, ideal for evening wear.",
			ShortDescription: "Rose gold drops with Zambian emeralds",
			Material:         "18k Rose Gold",
			Weight:           "9g",
			Purity:           "18k",
			Gemstones:        []string{"Emerald", "Diamond"},
			Rating:           4.8,
			ReviewCount:      142,
			IsNew:            true,
			IsBestseller:     true,
			InStock:          true,
			Tags:             []string{"emerald", "rose gold", "evening"},
		},
		{
			Slug:             "gold-solitaire-ring",
			Name:             "Gold Solitaire Ring",
			Category:         "rings",
			Price:            890,
			OriginalPrice:    990,
			Images:           []string{"/images/products/gold-solitaire-ring-1.jpg"},
			Description:      "A timeless solitaire with a brilliant-cut one carat diamond on a knife-edge 18k yellow gold band.",
			ShortDescription: "One carat solitaire on 18k gold",
			Material:         "18k Gold",
			Weight:           "4g",
			Purity:           "18k",
			Gemstones:        []string{"Diamond"},
			Sizes:            []string{"5", "6", "7", "8"},
			Rating:           4.9,
			ReviewCount:      215,
			IsBestseller:     true,
			IsFeatured:       true,
			InStock:          true,
			Tags:             []string{"solitaire", "engagement", "diamond"},
		},
		{
			Slug:             "pearl-strand-necklace",
			Name:             "Pearl Strand Necklace",
			Category:         "necklaces",
			Price:            420,
			Images:           []string{"/images/products/pearl-strand-necklace-1.jpg"},
			Description:      "A single strand of AAA freshwater pearls, hand-knotted on silk with an 18k white gold clasp.",
			ShortDescription: "Hand-knotted AAA freshwater pearl strand",
			Material:         "18k White Gold",
			Weight:           "32g",
			Gemstones:        []string{"Pearl"},
			Rating:           4.7,
			ReviewCount:      98,
			InStock:          true,
			Tags:             []string{"pearl", "classic", "wedding"},
		},
		{
			Slug:             "ruby-tennis-bracelet",
			Name:             "Ruby Tennis Bracelet",
			Category:         "bracelets",
			Price:            1120,
			OriginalPrice:    1300,
			Images:           []string{"/images/products/ruby-tennis-bracelet-1.jpg"},
			Description:      "Burmese rubies alternating with round diamonds in a flexible platinum link bracelet with a double safety clasp.",
			ShortDescription: "Platinum bracelet with Burmese rubies",
			Material:         "Platinum",
			Weight:           "15g",
			Gemstones:        []string{"Ruby", "Diamond"},
			Rating:           4.8,
			ReviewCount:      64,
			IsFeatured:       true,
			InStock:          true,
			Tags:             []string{"ruby", "tennis", "platinum"},
		},
		{
			Slug:             "temple-gold-bangles",
			Name:             "Temple Gold Bangles",
			Category:         "bangles",
			Price:            760,
			Images:           []string{"/images/products/temple-gold-bangles-1.jpg"},
			Description:      "A pair of 22k gold bangles with engraved temple motifs of peacocks and lotus blooms, finished in an antique matte.",
			ShortDescription: "Pair of engraved 22k temple bangles",
			Material:         "22k Gold",
			Weight:           "36g",
			Purity:           "22k",
			Sizes:            []string{"2.4", "2.6", "2.8"},
			Rating:           4.6,
			ReviewCount:      53,
			InStock:          true,
			Tags:             []string{"temple", "bangles", "traditional"},
		},
		{
			Slug:             "sapphire-halo-pendant",
			Name:             "Sapphire Halo Pendant",
			Category:         "pendants",
			Price:            540,
			Images:           []string{"/images/products/sapphire-halo-pendant-1.jpg"},
			Description:      "A cushion-cut Ceylon blue sapphire wrapped in a diamond halo, suspended from an 18k white gold chain.",
			ShortDescription: "Ceylon sapphire pendant with diamond halo",
			Material:         "18k White Gold",
			Weight:           "6g",
			Purity:           "18k",
			Gemstones:        []string{"Sapphire", "Diamond"},
			Rating:           4.7,
			ReviewCount:      76,
			IsBestseller:     true,
			InStock:          true,
			Tags:             []string{"sapphire", "pendant", "halo"},
		},
		{
			Slug:             "rose-gold-stacking-rings",
			Name:             "Rose Gold Stacking Rings",
			Category:         "rings",
			Price:            310,
			Images:           []string{"/images/products/rose-gold-stacking-rings-1.jpg"},
			Description:      "A trio of slim 14k rose gold bands, one plain, one hammered, one set with white topaz, made to wear together or apart.",
			ShortDescription: "Trio of slim 14k rose gold bands",
			Material:         "14k Rose Gold",
			Weight:           "5g",
			Purity:           "14k",
			Gemstones:        []string{"Topaz"},
			Sizes:            []string{"5", "6", "7", "8", "9"},
			Rating:           4.5,
			ReviewCount:      184,
			IsNew:            true,
			InStock:          true,
			Tags:             []string{"stacking", "rose gold", "minimal"},
		},
		{
			Slug:             "jhumka-chandelier-earrings",
			Name:             "Jhumka Chandelier Earrings",
			Category:         "earrings",
			Price:            480,
			OriginalPrice:    560,
			Images:           []string{"/images/products/jhumka-chandelier-earrings-1.jpg"},
			Description:      "Classic gold jhumkas with hanging pearl clusters and meenakari enamel work in peacock blue and green.",
			ShortDescription: "Gold jhumkas with meenakari enamel",
			Material:         "22k Gold",
			Weight:           "18g",
			Purity:           "22k",
			Gemstones:        []string{"Pearl"},
			Rating:           4.8,
			ReviewCount:      121,
			IsFeatured:       true,
			InStock:          true,
			Tags:             []string{"jhumka", "meenakari", "festive"},
		},
		{
			Slug:             "diamond-mangalsutra",
			Name:             "Diamond Mangalsutra",
			Category:         "necklaces",
			Price:            680,
			Images:           []string{"/images/products/diamond-mangalsutra-1.jpg"},
			Description:      "A modern mangalsutra with a diamond-set crescent pendant on a black bead and gold chain.",
			ShortDescription: "Modern diamond mangalsutra",
			Material:         "18k Gold",
			Weight:           "12g",
			Purity:           "18k",
			Gemstones:        []string{"Diamond"},
			Rating:           4.6,
			ReviewCount:      45,
			InStock:          true,
			Tags:             []string{"mangalsutra", "modern", "diamond"},
		},
		{
			Slug:             "infinity-charm-bracelet",
			Name:             "Infinity Charm Bracelet",
			Category:         "bracelets",
			Price:            260,
			Images:           []string{"/images/products/infinity-charm-bracelet-1.jpg"},
			Description:      "A delicate sterling silver chain bracelet with a pave diamond infinity charm and adjustable length.",
			ShortDescription: "Silver bracelet with diamond infinity charm",
			Material:         "Sterling Silver",
			Weight:           "7g",
			Gemstones:        []string{"Diamond"},
			Rating:           4.4,
			ReviewCount:      209,
			IsBestseller:     true,
			InStock:          true,
			Tags:             []string{"infinity", "silver", "gift"},
		},
		{
			Slug:             "navaratna-cocktail-ring",
			Name:             "Navaratna Cocktail Ring",
			Category:         "rings",
			Price:            950,
			Images:           []string{"/images/products/navaratna-cocktail-ring-1.jpg"},
			Description:      "Nine auspicious gemstones set in a bold 22k gold cocktail ring, arranged in the traditional navaratna grid.",
			ShortDescription: "Nine-gem cocktail ring in 22k gold",
			Material:         "22k Gold",
			Weight:           "11g",
			Purity:           "22k",
			Gemstones:        []string{"Ruby", "Emerald", "Sapphire", "Pearl", "Coral", "Topaz"},
			Sizes:            []string{"6", "7", "8"},
			Rating:           4.7,
			ReviewCount:      38,
			InStock:          true,
			Tags:             []string{"navaratna", "cocktail", "statement"},
		},
		{
			Slug:             "opal-teardrop-pendant",
			Name:             "Opal Teardrop Pendant",
			Category:         "pendants",
			Price:            375,
			Images:           []string{"/images/products/opal-teardrop-pendant-1.jpg"},
			Description:      "An Australian opal teardrop bezel-set in 14k yellow gold on a fine cable chain. Each stone shows its own play of color.",
			ShortDescription: "Australian opal in 14k gold bezel",
			Material:         "14k Gold",
			Weight:           "4g",
			Purity:           "14k",
			Gemstones:        []string{"Opal"},
			Rating:           4.5,
			ReviewCount:      67,
			IsNew:            true,
			InStock:          true,
			Tags:             []string{"opal", "teardrop", "boho"},
		},
		{
			Slug:             "antique-silver-kada",
			Name:             "Antique Silver Kada",
			Category:         "bangles",
			Price:            190,
			Images:           []string{"/images/products/antique-silver-kada-1.jpg"},
			Description:      "A solid sterling silver kada with oxidised elephant head terminals, cast from a vintage Rajasthani mould.",
			ShortDescription: "Oxidised silver kada with elephant motifs",
			Material:         "Sterling Silver",
			Weight:           "42g",
			Sizes:            []string{"2.4", "2.6"},
			Rating:           4.3,
			ReviewCount:      112,
			InStock:          true,
			Tags:             []string{"kada", "oxidised", "silver"},
		},
	}
	for i := range products {
		products[i].Currency = "USD"
		products[i].CreatedAt = base.Add(-time.Duration(i) * 24 * time.Hour)
	}
	return products
}
