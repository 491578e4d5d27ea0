// Package account holds the client-side session user, the durable list of
// registered credentials, and the device-scoped order history. Credentials
// are stored bcrypt-hashed; the session copy never carries a password.
package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"jewelstore/internal/domain"
	"jewelstore/internal/localstate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionKey     = "user"
	credentialsKey = "users"
	ordersKey      = "orders"

	orderIDPrefix = "SJJ-"
)

type Store struct {
	mu          sync.Mutex
	repo        localstate.Repository
	logger      *log.Logger
	now         func() time.Time
	user        *domain.User
	credentials []domain.Credential
	orders      []domain.Order
}

// New builds a Store and loads any saved session, credentials, and orders.
// Malformed saved state is logged and treated as absent.
func New(repo localstate.Repository, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	s.load()
	return s
}

func (s *Store) load() {
	if data, err := s.repo.Get(sessionKey); err == nil {
		var u domain.User
		if err := json.Unmarshal(data, &u); err != nil {
			s.logger.Printf("account store: load session: %v", err)
		} else {
			s.user = &u
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("account store: load session: %v", err)
	}
	if data, err := s.repo.Get(credentialsKey); err == nil {
		if err := json.Unmarshal(data, &s.credentials); err != nil {
			s.logger.Printf("account store: load credentials: %v", err)
			s.credentials = nil
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("account store: load credentials: %v", err)
	}
	if data, err := s.repo.Get(ordersKey); err == nil {
		if err := json.Unmarshal(data, &s.orders); err != nil {
			s.logger.Printf("account store: load orders: %v", err)
			s.orders = nil
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("account store: load orders: %v", err)
	}
}

// Register creates a new account and establishes it as the current session.
// Fails with domain.ErrDuplicateEmail when the email is already registered.
func (s *Store) Register(name, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.credentials {
		if c.Email == email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	s.credentials = append(s.credentials, domain.Credential{User: user, PasswordHash: string(hashed)})
	s.persistCredentials()

	s.user = &user
	s.persistSession()

	session := user
	return &session, nil
}

// Login verifies credentials and establishes the matched account as the
// current session. Fails with domain.ErrInvalidCredentials on any mismatch.
func (s *Store) Login(email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.credentials {
		if c.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		user := c.User
		s.user = &user
		s.persistSession()
		session := user
		return &session, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout clears the current session. Credentials and order history remain.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.repo.Delete(sessionKey); err != nil {
		s.logger.Printf("account store: clear session: %v", err)
	}
}

// ProfileUpdate carries partial profile fields; nil fields are untouched.
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Address *string
	City    *string
	Country *string
}

// UpdateProfile merges fields into the session user and into the matching
// credentials entry by id. No-op when nobody is logged in.
func (s *Store) UpdateProfile(up ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		s.logger.Printf("account store: update profile with no session")
		return
	}
	apply := func(u *domain.User) {
		if up.Name != nil {
			u.Name = *up.Name
		}
		if up.Phone != nil {
			u.Phone = *up.Phone
		}
		if up.Address != nil {
			u.Address = *up.Address
		}
		if up.City != nil {
			u.City = *up.City
		}
		if up.Country != nil {
			u.Country = *up.Country
		}
	}
	apply(s.user)
	s.persistSession()
	for i := range s.credentials {
		if s.credentials[i].ID == s.user.ID {
			apply(&s.credentials[i].User)
			break
		}
	}
	s.persistCredentials()
}

// PlaceOrder creates a confirmed order and prepends it to the history.
// The history is device-scoped: it persists across logout and is not
// partitioned by user id.
func (s *Store) PlaceOrder(items []domain.CartItem, total float64, currencyCode string) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartItem, len(items))
	copy(lines, items)

	now := s.now().UTC()
	order := domain.Order{
		ID:       orderIDPrefix + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)),
		Items:    lines,
		Total:    total,
		Currency: currencyCode,
		Status:   domain.OrderStatusConfirmed,
		Date:     now,
	}
	s.orders = append([]domain.Order{order}, s.orders...)
	s.persistOrders()
	return order
}

// CurrentUser returns a copy of the session user, or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Orders returns a copy of the order history, newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) persistSession() {
	if s.user == nil {
		if err := s.repo.Delete(sessionKey); err != nil {
			s.logger.Printf("account store: clear session: %v", err)
		}
		return
	}
	data, err := json.Marshal(s.user)
	if err != nil {
		s.logger.Printf("account store: marshal session: %v", err)
		return
	}
	if err := s.repo.Set(sessionKey, data); err != nil {
		s.logger.Printf("account store: save session: %v", err)
	}
}

func (s *Store) persistCredentials() {
	creds := s.credentials
	if creds == nil {
		creds = []domain.Credential{}
	}
	data, err := json.Marshal(creds)
	if err != nil {
		s.logger.Printf("account store: marshal credentials: %v", err)
		return
	}
	if err := s.repo.Set(credentialsKey, data); err != nil {
		s.logger.Printf("account store: save credentials: %v", err)
	}
}

func (s *Store) persistOrders() {
	orders := s.orders
	if orders == nil {
		orders = []domain.Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		s.logger.Printf("account store: marshal orders: %v", err)
		return
	}
	if err := s.repo.Set(ordersKey, data); err != nil {
		s.logger.Printf("account store: save orders: %v", err)
	}
}
