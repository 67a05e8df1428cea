package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a currency amount in minor units (cents).
// All arithmetic on Amount is exact; percentage application
// floors toward zero and the caller decides what happens to
// the remainder.
type Amount int64

// Percent is a percentage in basis points: 1 Percent unit = 0.01%.
// 5000 = 50%, 10000 = 100%.
type Percent int64

const (
	// PercentBasis is the number of basis points in 100%.
	PercentBasis = 10000

	centsPerUnit = 100
)

// FromCents returns an Amount from a number of minor units.
func FromCents(cents int64) Amount {
	return Amount(cents)
}

// FromUnits returns an Amount from whole currency units (dollars).
func FromUnits(units int64) Amount {
	return Amount(units * centsPerUnit)
}

// PercentOf converts a whole-number percentage to basis points.
func PercentOf(pct int64) Percent {
	return Percent(pct * 100)
}

// Cents returns the amount in minor units.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return a + b
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return a - b
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// Percent returns p of a, floored to the minor unit.
// The discarded fraction is at most one cent per application and can
// be recovered with Split when it must be accounted for.
func (a Amount) Percent(p Percent) Amount {
	return Amount(int64(a) * int64(p) / PercentBasis)
}

// Div returns a divided into n equal floored shares and reports
// the remainder left over after the division.
func (a Amount) Div(n int64) (share Amount, remainder Amount) {
	if n <= 0 {
		return 0, a
	}
	share = Amount(int64(a) / n)
	remainder = a - share*Amount(n)
	return share, remainder
}

// Split applies each percentage to total and returns the floored
// shares plus the remainder total - Σshares - unallocated. The
// remainder is never negative as long as the percentages sum to
// at most 100%.
func Split(total Amount, percents ...Percent) (shares []Amount, remainder Amount) {
	shares = make([]Amount, len(percents))
	remainder = total
	var sum Percent
	for i, p := range percents {
		shares[i] = total.Percent(p)
		remainder -= shares[i]
		sum += p
	}
	if sum < PercentBasis {
		// The unallocated percentage is not a rounding remainder;
		// only report what flooring shaved off the allocated shares.
		remainder -= total.Percent(PercentBasis - sum)
	}
	return shares, remainder
}

// String formats the amount as a decimal string, e.g. "12.34" or "-0.05".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/centsPerUnit, v%centsPerUnit)
}

// Parse parses a decimal string such as "12.34", "5" or "0.5" into
// an Amount. More than two fractional digits is an error; this is
// currency, not math.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: more than two fractional digits in %q", ErrInvalidAmount, s)
	}
	// Digits only past this point; ParseInt would quietly accept a
	// second sign inside the fraction ("1.-5").
	if !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	total := units*centsPerUnit + cents
	if neg {
		total = -total
	}
	return Amount(total), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
