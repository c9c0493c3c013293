package order

import (
	"fmt"
	"strconv"
	"strings"

	"exportpro/internal/pkg/errs"
)

// numberPrefix is the fixed prefix of human-facing order numbers.
const numberPrefix = "EXP"

// Number is the human-facing order number in the EXP-<year>-<seq> format,
// with the sequence zero-padded to three digits.
type Number struct {
	year int
	seq  int
}

// NewNumber creates an order number from its parts.
func NewNumber(year, seq int) (Number, error) {
	if year <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number year",
			fmt.Errorf("%d is not a valid year", year))
	}
	if seq <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number sequence",
			fmt.Errorf("%d is not greater than 0", seq))
	}

	return Number{year: year, seq: seq}, nil
}

// ParseNumber parses a formatted order number. The sequence is read from the
// segment after the last dash, mirroring how previously issued numbers are
// continued.
func ParseNumber(s string) (Number, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != numberPrefix {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match %s-<year>-<seq>", s, numberPrefix))
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number year", err)
	}

	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number sequence", err)
	}

	return NewNumber(year, seq)
}

// Validate returns an error for the zero value.
func (n Number) Validate() error {
	if n.year == 0 || n.seq == 0 {
		return errs.NewValueIsRequiredError("order number must be created via NewNumber or ParseNumber")
	}
	return nil
}

// Year returns the issue year encoded in the number.
func (n Number) Year() int {
	return n.year
}

// Seq returns the sequence component.
func (n Number) Seq() int {
	return n.seq
}

// String formats the number as EXP-<year>-<seq3>. Sequences beyond 999 keep
// growing without truncation.
func (n Number) String() string {
	return fmt.Sprintf("%s-%d-%03d", numberPrefix, n.year, n.seq)
}

// IsZero reports whether the number is the zero value.
func (n Number) IsZero() bool {
	return n.year == 0 && n.seq == 0
}

// NumberPolicy controls how the sequence behaves across a year boundary.
type NumberPolicy int

const (
	// ContinueAcrossYears keeps incrementing the previous sequence even when
	// the latest issued number belongs to a prior year. This matches the
	// historical numbering of the system and avoids any chance of reuse.
	ContinueAcrossYears NumberPolicy = iota

	// ResetEachYear restarts the sequence at 1 for the first order of a new
	// calendar year.
	ResetEachYear
)

// NextNumber produces the order number following latest for the given year.
// A nil latest (no prior order, or an unparseable prior number) starts the
// sequence at 1. The issued year is always the current year regardless of
// policy; the policy only decides whether the sequence continues or resets
// at a year boundary.
func NextNumber(latest *Number, year int, policy NumberPolicy) (Number, error) {
	if latest == nil {
		return NewNumber(year, 1)
	}
	if policy == ResetEachYear && latest.year != year {
		return NewNumber(year, 1)
	}
	return NewNumber(year, latest.seq+1)
}
