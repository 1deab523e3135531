package addition

import (
	"strconv"
	"strings"
	"unicode"
)

// SumExpression evaluates an addition-only expression such as "2+3+4" or
// "1.5 + 2.5". expr must be a string or a []byte. The result is normalized,
// so "1.5+2.5" yields Int(4).
func SumExpression(expr any) (Number, error) {
	var s string
	switch x := expr.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return Number{}, ErrInvalidInputType
	}

	operands, err := ParseExpression(s)
	if err != nil {
		return Number{}, err
	}

	total, err := Sum(operands...)
	if err != nil {
		return Number{}, err
	}

	return Normalize(total), nil
}

// ParseExpression splits s into its operands. Whitespace is ignored.
// Characters are validated before the structure is, so "2+3-1" fails with
// ErrInvalidCharacter rather than ErrMalformedExpression.
func ParseExpression(s string) ([]Number, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if clean == "" {
		return nil, ErrEmptyExpression
	}

	for i, r := range clean {
		if !isExprChar(r) {
			return nil, &CharError{Char: r, Offset: i}
		}
	}

	parts := strings.Split(clean, "+")
	operands := make([]Number, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, &SyntaxError{Operand: i + 1}
		}
		n, err := ParseNumber(part)
		if err != nil {
			return nil, &SyntaxError{Operand: i + 1, Text: part, Err: err}
		}
		operands = append(operands, n)
	}

	return operands, nil
}

func isExprChar(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '+'
}

// ParseNumber parses s as a Float when it contains a '.' and as an Int
// otherwise.
func ParseNumber(s string) (Number, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}, err
		}
		return Float(f), nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Number{}, err
	}
	return Int(i), nil
}
