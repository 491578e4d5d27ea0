package inquiry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"jewelstore/internal/domain"
)

type stubRepo struct {
	created []domain.Inquiry
	err     error
}

func (s *stubRepo) Create(_ context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	if s.err != nil {
		return nil, s.err
	}
	in.ID = "inq-1"
	in.CreatedAt = time.Now().UTC()
	s.created = append(s.created, in)
	return &in, nil
}

func valid() Submission {
	return Submission{
		Name:    "Priya",
		Email:   "Priya@Example.com",
		Country: "India",
		Message: "Is the solitaire available in size 6?",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	got, err := svc.Submit(context.Background(), "1.2.3.4", valid())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got.Status != domain.InquiryStatusNew {
		t.Fatalf("status = %q, want new", got.Status)
	}
	if repo.created[0].Email != "priya@example.com" {
		t.Fatalf("email not lowercased: %q", repo.created[0].Email)
	}
}

func TestSubmitMissingRequiredFields(t *testing.T) {
	svc := New(&stubRepo{}, nil)
	for _, mutate := range []func(*Submission){
		func(s *Submission) { s.Name = "" },
		func(s *Submission) { s.Email = "   " },
		func(s *Submission) { s.Country = "" },
		func(s *Submission) { s.Message = "" },
	} {
		in := valid()
		mutate(&in)
		_, err := svc.Submit(context.Background(), "1.2.3.4", in)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	}
}

func TestSubmitRejectsBadEmail(t *testing.T) {
	svc := New(&stubRepo{}, nil)
	for _, bad := range []string{"plainaddress", "a@b", "a b@c.d", "@missing.local"} {
		in := valid()
		in.Email = bad
		_, err := svc.Submit(context.Background(), "1.2.3.4", in)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("email %q: expected ValidationError, got %v", bad, err)
		}
	}
}

func TestSubmitSanitizesFields(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	in := valid()
	in.Message = "  <script>alert('hi')</script>${payload}  "
	in.Subject = strings.Repeat("x", 500)
	if _, err := svc.Submit(context.Background(), "1.2.3.4", in); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got := repo.created[0]
	if strings.ContainsAny(got.Message, "<>{}$") {
		t.Fatalf("message not stripped: %q", got.Message)
	}
	if got.Message != "scriptalert('hi')/scriptpayload" {
		t.Fatalf("unexpected sanitized message %q", got.Message)
	}
	if len(got.Subject) != 200 {
		t.Fatalf("subject not truncated: %d", len(got.Subject))
	}
}

func TestTruncationKeepsValidUTF8(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	// 199 ASCII bytes followed by a 3-byte rune straddling the 200-byte cap.
	in := valid()
	in.Subject = strings.Repeat("x", 199) + "₹₹₹"
	if _, err := svc.Submit(context.Background(), "1.2.3.4", in); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got := repo.created[0]
	if !utf8.ValidString(got.Subject) {
		t.Fatalf("truncated subject is not valid UTF-8: %q", got.Subject)
	}
	if len(got.Subject) != 199 {
		t.Fatalf("truncated subject length = %d, want 199 (rune boundary)", len(got.Subject))
	}
}

func TestRateLimitWindow(t *testing.T) {
	svc := New(&stubRepo{}, nil)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	current := base
	svc.limiter.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(context.Background(), "9.9.9.9", valid()); err != nil {
			t.Fatalf("submission %d: %v", i+1, err)
		}
		current = current.Add(time.Second)
	}

	if _, err := svc.Submit(context.Background(), "9.9.9.9", valid()); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("6th submission: expected ErrRateLimited, got %v", err)
	}

	// A different address is unaffected.
	if _, err := svc.Submit(context.Background(), "8.8.8.8", valid()); err != nil {
		t.Fatalf("other address: %v", err)
	}

	// After the window elapses the original address succeeds again.
	current = base.Add(62 * time.Second)
	if _, err := svc.Submit(context.Background(), "9.9.9.9", valid()); err != nil {
		t.Fatalf("after window: %v", err)
	}
}

func TestRejectedSubmissionsConsumeWindowSlots(t *testing.T) {
	svc := New(&stubRepo{}, nil)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.limiter.now = func() time.Time { return base }

	// The limit check runs before validation, so submissions that fail
	// validation still count against the window.
	bad := valid()
	bad.Email = "not-an-email"
	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(context.Background(), "7.7.7.7", bad); err == nil {
			t.Fatalf("expected validation failure")
		}
	}
	if _, err := svc.Submit(context.Background(), "7.7.7.7", valid()); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("after 5 rejected submissions: got %v, want ErrRateLimited", err)
	}

	later := base.Add(61 * time.Second)
	svc.limiter.now = func() time.Time { return later }
	if _, err := svc.Submit(context.Background(), "7.7.7.7", valid()); err != nil {
		t.Fatalf("after window: %v", err)
	}
}

func TestStoreErrorSurfaces(t *testing.T) {
	svc := New(&stubRepo{err: errors.New("connection refused")}, nil)
	if _, err := svc.Submit(context.Background(), "1.2.3.4", valid()); err == nil {
		t.Fatalf("expected error from store")
	}
}
