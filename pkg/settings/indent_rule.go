package settings

import (
	"fmt"
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// IndentKind selects how an IndentRule computes its target indentation.
type IndentKind uint8

const (
	// IndentAbsolute is exactly N indent units.
	IndentAbsolute IndentKind = iota
	// IndentPlus is the parent's indentation plus N units.
	IndentPlus
	// IndentMinus is the parent's indentation minus N units.
	IndentMinus
	// IndentOffset aligns to the column of the Anchor node.
	IndentOffset
)

// IndentRule describes the indentation wanted for a node.
type IndentRule struct {
	Kind   IndentKind
	N      uint8
	Anchor uintptr
}

// Absolute returns an IndentAbsolute rule.
func Absolute(n uint8) IndentRule { return IndentRule{Kind: IndentAbsolute, N: n} }

// Plus returns an IndentPlus rule.
func Plus(n uint8) IndentRule { return IndentRule{Kind: IndentPlus, N: n} }

// Minus returns an IndentMinus rule.
func Minus(n uint8) IndentRule { return IndentRule{Kind: IndentMinus, N: n} }

// Offset returns an IndentOffset rule anchored on the node with id anchor.
func Offset(anchor uintptr) IndentRule { return IndentRule{Kind: IndentOffset, Anchor: anchor} }

// String renders the rule in its query syntax.
func (r IndentRule) String() string {
	switch r.Kind {
	case IndentAbsolute:
		return fmt.Sprintf("=%d", r.N)
	case IndentPlus:
		return fmt.Sprintf("+%d", r.N)
	case IndentMinus:
		return fmt.Sprintf("-%d", r.N)
	case IndentOffset:
		return fmt.Sprintf("#%d", r.Anchor)
	default:
		return "?"
	}
}

var (
	// ErrIndentRuleEmpty is returned for an empty rule.
	ErrIndentRuleEmpty = errors.Base("empty indent rule")

	// ErrIndentRuleValue is returned when an operator has no value.
	ErrIndentRuleValue = errors.Base("missing value for operator")
)

// NonDigitError reports a rule whose value does not start with a digit.
type NonDigitError struct {
	Char rune
}

func (e *NonDigitError) Error() string {
	return fmt.Sprintf("invalid non-digit character %q at index 1", e.Char)
}

// OperatorError reports an unknown rule operator.
type OperatorError struct {
	Op rune
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("invalid operator %q", e.Op)
}

// ParseIndentRule parses `=n`, `+n` or `-n` where n fits in a byte.
// Offset rules cannot be written as text.
func ParseIndentRule(s string) (IndentRule, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return IndentRule{}, errors.WithStack(ErrIndentRuleEmpty)
	}
	if len(runes) == 1 {
		return IndentRule{}, errors.WithStack(ErrIndentRuleValue)
	}
	if ch := runes[1]; ch < '0' || ch > '9' {
		return IndentRule{}, errors.WithStack(&NonDigitError{Char: ch})
	}

	n, err := strconv.ParseUint(string(runes[1:]), 10, 8)
	if err != nil {
		return IndentRule{}, errors.WithStack(err)
	}

	switch runes[0] {
	case '=':
		return Absolute(uint8(n)), nil
	case '+':
		return Plus(uint8(n)), nil
	case '-':
		return Minus(uint8(n)), nil
	default:
		return IndentRule{}, errors.WithStack(&OperatorError{Op: runes[0]})
	}
}
