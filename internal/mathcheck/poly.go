package mathcheck

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Term is a single monomial c*x^n.
type Term struct {
	Coef float64
	Exp  int
}

// Polynomial is a sum of monomial terms in canonical form: descending
// exponent, merged exponents, no zero coefficients. The zero polynomial
// is the empty slice.
type Polynomial []Term

// termRe matches one signed monomial: an optional coefficient, an
// optional x with an optional non-negative exponent.
var termRe = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)?(x(?:\^(\d+))?)?$`)

// ParsePolynomial parses expressions like "5x^3 + 2x + 7", "3x^2", "-x",
// or "8" into canonical form.
func ParsePolynomial(expr string) (Polynomial, error) {
	s := strings.ReplaceAll(expr, " ", "")
	if s == "" {
		return nil, fmt.Errorf("empty expression")
	}

	merged := make(map[int]float64)
	for _, raw := range splitTerms(s) {
		coef, exp, err := parseTerm(raw)
		if err != nil {
			return nil, fmt.Errorf("term %q in %q: %w", raw, expr, err)
		}
		merged[exp] += coef
	}

	return canonical(merged), nil
}

// splitTerms splits a spaceless expression at top-level + and - signs,
// keeping the sign with the term that follows it.
func splitTerms(s string) []string {
	var terms []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			terms = append(terms, s[start:i])
			start = i
		}
	}
	return append(terms, s[start:])
}

func parseTerm(raw string) (coef float64, exp int, err error) {
	m := termRe.FindStringSubmatch(raw)
	if m == nil || (m[2] == "" && m[3] == "") {
		return 0, 0, fmt.Errorf("not a monomial")
	}

	coef = 1
	if m[2] != "" {
		coef, err = strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("coefficient: %w", err)
		}
	}
	if m[1] == "-" {
		coef = -coef
	}

	if m[3] != "" {
		exp = 1
		if m[4] != "" {
			exp, err = strconv.Atoi(m[4])
			if err != nil {
				return 0, 0, fmt.Errorf("exponent: %w", err)
			}
		}
	}
	return coef, exp, nil
}

// Derivative applies the power, sum, and constant rules: a constant term
// vanishes, c*x^n becomes (c*n)*x^(n-1), results are merged by exponent
// with zero coefficients dropped.
func (p Polynomial) Derivative() Polynomial {
	merged := make(map[int]float64)
	for _, t := range p {
		if t.Exp == 0 {
			continue
		}
		merged[t.Exp-1] += t.Coef * float64(t.Exp)
	}
	return canonical(merged)
}

// Equal reports whether two canonical polynomials have the same terms.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Exp != q[i].Exp {
			return false
		}
		if diff := p[i].Coef - q[i].Coef; diff > 1e-9 || diff < -1e-9 {
			return false
		}
	}
	return true
}

// String renders the canonical form, e.g. "15x^2 + 2". The zero
// polynomial renders as "0".
func (p Polynomial) String() string {
	if len(p) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, t := range p {
		coef := t.Coef
		if i == 0 {
			if coef < 0 {
				b.WriteString("-")
				coef = -coef
			}
		} else {
			if coef < 0 {
				b.WriteString(" - ")
				coef = -coef
			} else {
				b.WriteString(" + ")
			}
		}
		b.WriteString(formatTerm(coef, t.Exp))
	}
	return b.String()
}

func formatTerm(coef float64, exp int) string {
	c := strconv.FormatFloat(coef, 'f', -1, 64)
	switch {
	case exp == 0:
		return c
	case exp == 1:
		if coef == 1 {
			return "x"
		}
		return c + "x"
	default:
		if coef == 1 {
			return fmt.Sprintf("x^%d", exp)
		}
		return fmt.Sprintf("%sx^%d", c, exp)
	}
}

func canonical(merged map[int]float64) Polynomial {
	var p Polynomial
	for exp, coef := range merged {
		if coef == 0 {
			continue
		}
		p = append(p, Term{Coef: coef, Exp: exp})
	}
	sort.Slice(p, func(i, j int) bool { return p[i].Exp > p[j].Exp })
	return p
}
