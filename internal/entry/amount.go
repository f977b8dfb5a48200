package entry

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

// MaxAmount is the largest accepted amount in yen. Totals over millions of
// entries at this ceiling still fit in an int64.
const MaxAmount int64 = 1_000_000_000_000

var maxAmount = decimal.NewFromInt(MaxAmount)

// ParseAmount parses a whole-yen amount. Full-width digits are folded to
// ASCII first. "1500", "１５００" and "1500.0" are accepted; "abc", "12.5",
// "1e3", "-1" and anything above MaxAmount are not.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(width.Narrow.String(raw))
	if s == "" {
		return 0, ErrMissingRequiredField
	}
	if strings.ContainsAny(s, "eE") {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, raw)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, raw)
	}
	if d.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, raw)
	}
	return d.IntPart(), nil
}
