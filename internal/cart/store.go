// Package cart holds the client-side cart, wishlist, and selected display
// currency. Every mutation is written through to the injected state
// repository; state is rehydrated once, at construction, best-effort.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"jewelstore/internal/currency"
	"jewelstore/internal/domain"
	"jewelstore/internal/localstate"
)

const (
	cartKey     = "cart"
	wishlistKey = "wishlist"
	currencyKey = "currency"
)

// Notifier receives transient user-facing messages ("X added to cart").
type Notifier func(msg string)

type Store struct {
	mu       sync.Mutex
	repo     localstate.Repository
	logger   *log.Logger
	notify   Notifier
	items    []domain.CartItem
	wishlist []domain.WishlistItem
	currency string
}

// New builds a Store and loads any saved state. A parse failure is logged and
// treated as no saved state. notify may be nil.
func New(repo localstate.Repository, logger *log.Logger, notify Notifier) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if notify == nil {
		notify = func(string) {}
	}
	s := &Store{
		repo:     repo,
		logger:   logger,
		notify:   notify,
		currency: currency.DefaultCode,
	}
	s.load()
	return s
}

func (s *Store) load() {
	if data, err := s.repo.Get(cartKey); err == nil {
		if err := json.Unmarshal(data, &s.items); err != nil {
			s.logger.Printf("cart store: load cart: %v", err)
			s.items = nil
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("cart store: load cart: %v", err)
	}
	if data, err := s.repo.Get(wishlistKey); err == nil {
		if err := json.Unmarshal(data, &s.wishlist); err != nil {
			s.logger.Printf("cart store: load wishlist: %v", err)
			s.wishlist = nil
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("cart store: load wishlist: %v", err)
	}
	if data, err := s.repo.Get(currencyKey); err == nil {
		var code string
		if err := json.Unmarshal(data, &code); err != nil || code == "" {
			s.logger.Printf("cart store: load currency: %v", err)
		} else {
			s.currency = code
		}
	}
}

// AddToCart merges into an existing (slug, size) line item or appends a new
// snapshot. Non-positive quantities count as 1.
func (s *Store) AddToCart(p domain.Product, quantity int, size string) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].Slug == p.Slug && s.items[i].Size == size {
			s.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		s.items = append(s.items, domain.CartItem{
			Slug:     p.Slug,
			Name:     p.Name,
			Price:    p.Price,
			Image:    image,
			Size:     size,
			Quantity: quantity,
			Category: p.Category,
		})
	}
	s.persistCart()
	s.mu.Unlock()
	s.notify(fmt.Sprintf("%s added to cart", p.Name))
}

// RemoveFromCart removes the matching line item; no-op when absent.
func (s *Store) RemoveFromCart(slug, size string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if !(it.Slug == slug && it.Size == size) {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.persistCart()
	s.mu.Unlock()
	s.notify("Item removed from cart")
}

// UpdateQuantity sets the quantity of the matching line item. Quantities
// below 1 are ignored; removal is always explicit.
func (s *Store) UpdateQuantity(slug, size string, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Slug == slug && s.items[i].Size == size {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persistCart()
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.persistCart()
	s.mu.Unlock()
	s.notify("Cart cleared")
}

// AddToWishlist toggles: adding an already-present slug removes it.
func (s *Store) AddToWishlist(p domain.Product) {
	s.mu.Lock()
	for i, it := range s.wishlist {
		if it.Slug == p.Slug {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persistWishlist()
			s.mu.Unlock()
			return
		}
	}
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	s.wishlist = append(s.wishlist, domain.WishlistItem{
		Slug:     p.Slug,
		Name:     p.Name,
		Price:    p.Price,
		Image:    image,
		Category: p.Category,
	})
	s.persistWishlist()
	s.mu.Unlock()
	s.notify(fmt.Sprintf("%s added to wishlist", p.Name))
}

// RemoveFromWishlist removes by slug; no-op when absent.
func (s *Store) RemoveFromWishlist(slug string) {
	s.mu.Lock()
	kept := s.wishlist[:0]
	for _, it := range s.wishlist {
		if it.Slug != slug {
			kept = append(kept, it)
		}
	}
	s.wishlist = kept
	s.persistWishlist()
	s.mu.Unlock()
	s.notify("Removed from wishlist")
}

func (s *Store) IsInWishlist(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.wishlist {
		if it.Slug == slug {
			return true
		}
	}
	return false
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Wishlist returns a copy of the current wishlist.
func (s *Store) Wishlist() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WishlistItem, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// CartTotal is recomputed on every call, never cached.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// CartCount is the sum of line quantities.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

// Currency returns the selected display currency code.
func (s *Store) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency selects the display currency and persists the choice.
func (s *Store) SetCurrency(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = code
	if data, err := json.Marshal(code); err == nil {
		if err := s.repo.Set(currencyKey, data); err != nil {
			s.logger.Printf("cart store: save currency: %v", err)
		}
	}
}

// ConvertPrice formats a USD amount in the selected display currency.
func (s *Store) ConvertPrice(amountUSD float64) string {
	return currency.Convert(amountUSD, s.Currency())
}

// CurrencySymbol returns the display symbol for the selected currency.
func (s *Store) CurrencySymbol() string {
	return currency.Symbol(s.Currency())
}

func (s *Store) persistCart() {
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Printf("cart store: marshal cart: %v", err)
		return
	}
	if err := s.repo.Set(cartKey, data); err != nil {
		s.logger.Printf("cart store: save cart: %v", err)
	}
}

func (s *Store) persistWishlist() {
	items := s.wishlist
	if items == nil {
		items = []domain.WishlistItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Printf("cart store: marshal wishlist: %v", err)
		return
	}
	if err := s.repo.Set(wishlistKey, data); err != nil {
		s.logger.Printf("cart store: save wishlist: %v", err)
	}
}
