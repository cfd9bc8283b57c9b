package settings

import (
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// Cpl bounds.
const (
	CplMin = 32
	CplMax = 128
)

var (
	// ErrCplTooBig is returned for a cpl above CplMax.
	ErrCplTooBig = errors.Base("cpl is too big")

	// ErrCplTooLittle is returned for a non-zero cpl below CplMin.
	ErrCplTooLittle = errors.Base("cpl is too little")
)

// Cpl is a characters-per-line limit. Zero means unlimited.
type Cpl uint8

// Unlimited reports whether the limit is disabled.
func (c Cpl) Unlimited() bool {
	return c == 0
}

// String implements fmt.Stringer.
func (c Cpl) String() string {
	if c.Unlimited() {
		return "unlimited"
	}
	return strconv.Itoa(int(c))
}

// ParseCpl parses a cpl value: 0 for unlimited, or CplMin..=CplMax.
func ParseCpl(s string) (Cpl, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return NewCpl(uint(n))
}

// NewCpl validates n as a cpl value.
func NewCpl(n uint) (Cpl, error) {
	switch {
	case n == 0:
		return 0, nil
	case n > CplMax:
		return 0, errors.WithDetails(ErrCplTooBig, "cpl", n, "max", CplMax)
	case n < CplMin:
		return 0, errors.WithDetails(ErrCplTooLittle, "cpl", n, "min", CplMin)
	}
	return Cpl(n), nil
}
