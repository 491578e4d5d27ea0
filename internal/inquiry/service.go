// Package inquiry validates, sanitizes, rate-limits, and persists contact
// form submissions.
package inquiry

import (
	"context"
	"io"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"jewelstore/internal/domain"
	inquiryrepo "jewelstore/internal/repository/inquiry"
)

const (
	rateWindow  = time.Minute
	rateMaxHits = 5

	maxName    = 100
	maxEmail   = 100
	maxPhone   = 20
	maxCountry = 50
	maxSubject = 200
	maxMessage = 2000
	maxProduct = 200
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// stripped removes markup and template-injection characters from free text.
var stripped = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", "$", "")

// Submission is the raw contact form payload.
type Submission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	ProductSlug string `json:"productSlug"`
}

type Service struct {
	repo    inquiryrepo.Repository
	logger  *log.Logger
	limiter *rateLimiter
}

func New(repo inquiryrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:    repo,
		logger:  logger,
		limiter: newRateLimiter(rateWindow, rateMaxHits),
	}
}

// Submit runs the intake pipeline: rate limit by address, required fields,
// email format, sanitization, persist. The limit check runs first, so every
// submission attempt counts against the window, accepted or not.
func (s *Service) Submit(ctx context.Context, ip string, in Submission) (*domain.Inquiry, error) {
	if !s.limiter.allow(ip) {
		s.logger.Printf("inquiry: rate limited ip=%s", ip)
		return nil, domain.ErrRateLimited
	}

	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Country) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return nil, domain.NewValidationError("All required fields must be filled")
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return nil, domain.NewValidationError("Invalid email address")
	}

	record := domain.Inquiry{
		Name:        sanitize(in.Name, maxName),
		Email:       strings.ToLower(sanitize(in.Email, maxEmail)),
		Phone:       sanitize(in.Phone, maxPhone),
		Country:     sanitize(in.Country, maxCountry),
		Subject:     sanitize(in.Subject, maxSubject),
		Message:     sanitize(in.Message, maxMessage),
		ProductSlug: sanitize(in.ProductSlug, maxProduct),
		Status:      domain.InquiryStatusNew,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("inquiry: created id=%s ip=%s", created.ID, ip)
	return created, nil
}

// sanitize strips <>{}$, trims, and truncates to at most max bytes without
// splitting a multi-byte rune.
func sanitize(v string, max int) string {
	v = strings.TrimSpace(stripped.Replace(v))
	if len(v) > max {
		cut := max
		for cut > 0 && !utf8.RuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	return v
}

// rateLimiter tracks accepted submissions per address over a sliding window.
// State is ephemeral process memory; it resets on restart.
type rateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
	now    func() time.Time
}

func newRateLimiter(window time.Duration, max int) *rateLimiter {
	return &rateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (l *rateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	recent := l.hits[ip][:0]
	for _, t := range l.hits[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= l.max {
		l.hits[ip] = recent
		return false
	}
	l.hits[ip] = append(recent, now)
	return true
}
