package mathcheck

import "testing"

func TestParsePolynomial(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"3x^2", "3x^2"},
		{"5x^3 + 2x + 7", "5x^3 + 2x + 7"},
		{"8", "8"},
		{"-x", "-x"},
		{"x^2 + x + 1", "x^2 + x + 1"},
		{"2x + 3x", "5x"},         // merged exponents
		{"x - x", "0"},            // cancellation
		{"7 + 5x^3 + 2x", "5x^3 + 2x + 7"}, // canonical order
		{"0.5x^2", "0.5x^2"},
	}
	for _, tc := range cases {
		p, err := ParsePolynomial(tc.expr)
		if err != nil {
			t.Errorf("ParsePolynomial(%q): unexpected error: %v", tc.expr, err)
			continue
		}
		if got := p.String(); got != tc.want {
			t.Errorf("ParsePolynomial(%q) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestParsePolynomial_Invalid(t *testing.T) {
	for _, expr := range []string{"", "what is x", "3y^2", "x^", "3x^2.5"} {
		if _, err := ParsePolynomial(expr); err == nil {
			t.Errorf("ParsePolynomial(%q): expected error", expr)
		}
	}
}

func TestDerivative(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"3x^2", "6x"},
		{"5x^3 + 2x + 7", "15x^2 + 2"},
		{"8", "0"},
		{"x", "1"},
		{"x^4", "4x^3"},
		{"-2x^2 + 3", "-4x"},
	}
	for _, tc := range cases {
		p, err := ParsePolynomial(tc.expr)
		if err != nil {
			t.Fatalf("ParsePolynomial(%q): %v", tc.expr, err)
		}
		if got := p.Derivative().String(); got != tc.want {
			t.Errorf("d/dx %q = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestEqual_IgnoresRendering(t *testing.T) {
	// "6x" and "6x^1" are the same polynomial.
	a, err := ParsePolynomial("6x")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParsePolynomial("6x^1")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("expected 6x == 6x^1")
	}

	c, _ := ParsePolynomial("6x^2")
	if a.Equal(c) {
		t.Error("expected 6x != 6x^2")
	}
}
