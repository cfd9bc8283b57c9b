package predicates

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// CountRange is an inclusive range of separator occurrences.
// Max < 0 means unbounded.
type CountRange struct {
	Min int
	Max int
}

// Contains reports whether n lies in the range.
func (r CountRange) Contains(n int) bool {
	return n >= r.Min && (r.Max < 0 || n <= r.Max)
}

func (r CountRange) String() string {
	if r.Max < 0 {
		return fmt.Sprintf("%d..", r.Min)
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// ParseCountRange parses `min..max`, `min..`, `..max` or `n`.
func ParseCountRange(s string) (CountRange, error) {
	lo, hi, isRange := strings.Cut(s, "..")
	if !isRange {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return CountRange{}, errors.Errorf("invalid count %q", s)
		}
		return CountRange{Min: n, Max: n}, nil
	}

	r := CountRange{Max: -1}
	if lo != "" {
		n, err := strconv.Atoi(lo)
		if err != nil || n < 0 {
			return CountRange{}, errors.Errorf("invalid lower bound %q", lo)
		}
		r.Min = n
	}
	if hi != "" {
		n, err := strconv.Atoi(hi)
		if err != nil || n < r.Min {
			return CountRange{}, errors.Errorf("invalid upper bound %q", hi)
		}
		r.Max = n
	}
	return r, nil
}

// CountSeparators counts non-overlapping occurrences of sep in gap.
// An empty separator counts spaces.
func CountSeparators(gap, sep string) int {
	if sep == "" {
		sep = " "
	}
	return strings.Count(gap, sep)
}

// Space implements `(#space! ["sep"] ["range"] @a @b ...)`.
//
// The text between each pair of captured nodes is replaced with sep. When
// a range is given, pairs whose gap already holds an accepted number of
// separators are left alone.
type Space struct{}

// Name implements Predicate.
func (Space) Name() string { return "space!" }

// Apply implements Predicate.
func (Space) Apply(ctx *Context, args []syntax.Arg) error {
	sep := " "
	var gate *CountRange

	ix := 0
	if ix < len(args) && args[ix].String != nil {
		sep = *args[ix].String
		ix++
	}
	if ix < len(args) && args[ix].String != nil {
		r, err := ParseCountRange(*args[ix].String)
		if err != nil {
			return errors.WithStack(&ArgError{
				Index:    ix,
				Expected: "separator count range",
				Got:      strconv.Quote(*args[ix].String),
			})
		}
		gate = &r
		ix++
	}

	if rest := len(args) - ix; rest%2 != 0 {
		return errors.WithStack(&ArityError{Expected: "even number of capture pairs", Got: rest})
	}

	if !isASCIIWhitespace(sep) {
		ctx.log().Warn("spacing with non-ASCII-whitespace separator", "sep", strconv.Quote(sep))
	}

	ed := ctx.Editor
	for ; ix < len(args); ix += 2 {
		left, err := singleNode(ctx, args, ix)
		if err != nil {
			return err
		}
		right, err := singleNode(ctx, args, ix+1)
		if err != nil {
			return err
		}

		lh := ed.TrackSynced(left)
		rh := ed.TrackSynced(right)
		if rh.StartByte() < lh.EndByte() {
			return errors.WithStack(&ArgError{
				Index:    ix + 1,
				Expected: "node after " + syntax.Describe(&left),
				Got:      syntax.Describe(&right),
			})
		}

		if gate != nil {
			gap := string(ed.Slice(lh.EndByte(), rh.StartByte()))
			if n := CountSeparators(gap, sep); gate.Contains(n) {
				ctx.log().Debug("spacing already satisfied", "count", n, "range", gate)
				continue
			}
		}

		err = ed.Replace(syntax.Range{
			StartByte:  lh.EndByte(),
			EndByte:    rh.StartByte(),
			StartPoint: lh.EndPoint(),
			EndPoint:   rh.StartPoint(),
		}, sep)
		if err != nil {
			return err
		}
	}
	return nil
}
