package currency

import "testing"

func TestConvertZeroDecimalCurrencies(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{100, "INR", "₹8,350"},
		{100, "JPY", "¥14,950"},
		{1, "INR", "₹84"}, // 83.5 rounds half-up
	}
	for _, tc := range cases {
		if got := Convert(tc.amount, tc.code); got != tc.want {
			t.Fatalf("Convert(%v, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestConvertTwoDecimalCurrencies(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{100, "USD", "$100.00"},
		{1234.5, "USD", "$1,234.50"},
		{100, "THB", "฿3,450.00"},
		{100, "ZAR", "R1,820.00"},
	}
	for _, tc := range cases {
		if got := Convert(tc.amount, tc.code); got != tc.want {
			t.Fatalf("Convert(%v, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestConvertUnknownCodeFallsBack(t *testing.T) {
	if got, want := Convert(100, "XYZ"), Convert(100, "INR"); got != want {
		t.Fatalf("unknown code: got %q, want fallback %q", got, want)
	}
	if got, want := Convert(100, ""), Convert(100, DefaultCode); got != want {
		t.Fatalf("empty code: got %q, want fallback %q", got, want)
	}
}

func TestConvertLowercaseCode(t *testing.T) {
	if got := Convert(10, "usd"); got != "$10.00" {
		t.Fatalf("lowercase code: got %q", got)
	}
}

func TestSupportedIsSorted(t *testing.T) {
	codes := Supported()
	if len(codes) != 5 {
		t.Fatalf("expected 5 codes, got %v", codes)
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}
