package seed

import (
	"context"
	"errors"
	"testing"

	"jewelstore/internal/catalog"
	"jewelstore/internal/domain"
)

type stubWriter struct {
	count     int
	countErr  error
	insertErr error
	inserted  []domain.Product
}

func (s *stubWriter) Insert(_ context.Context, p domain.Product) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, p)
	return nil
}

func (s *stubWriter) Count(_ context.Context) (int, error) {
	return s.count, s.countErr
}

func TestApplyInsertsCatalog(t *testing.T) {
	w := &stubWriter{}
	n, err := Apply(context.Background(), w, nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n != len(catalog.Seed()) || len(w.inserted) != n {
		t.Fatalf("inserted %d, want %d", len(w.inserted), len(catalog.Seed()))
	}
}

func TestApplyRefusesNonEmptyStore(t *testing.T) {
	w := &stubWriter{count: 7}
	n, err := Apply(context.Background(), w, nil)
	if !errors.Is(err, ErrAlreadySeeded) {
		t.Fatalf("expected ErrAlreadySeeded, got %v", err)
	}
	if n != 7 {
		t.Fatalf("expected existing count 7, got %d", n)
	}
	if len(w.inserted) != 0 {
		t.Fatalf("must not insert into a non-empty store")
	}
}

func TestApplyStopsOnInsertError(t *testing.T) {
	w := &stubWriter{insertErr: errors.New("duplicate key")}
	if _, err := Apply(context.Background(), w, nil); err == nil {
		t.Fatalf("expected insert error to surface")
	}
}
