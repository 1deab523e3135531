package addition

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Sum or SumList get no operands.
	ErrEmptyInput = errors.New("addition: at least one number must be provided")

	// ErrInvalidOperandType is matched by every *OperandError.
	ErrInvalidOperandType = errors.New("addition: operand is not a number")

	// ErrInvalidContainerType is returned by SumList when its argument is
	// not a slice or an array.
	ErrInvalidContainerType = errors.New("addition: input must be a list")

	// ErrInvalidInputType is returned by SumExpression for non-text input.
	ErrInvalidInputType = errors.New("addition: expression must be a string")

	ErrEmptyExpression = errors.New("addition: expression cannot be empty")

	// ErrInvalidCharacter is matched by every *CharError.
	ErrInvalidCharacter = errors.New("addition: expression contains invalid characters")

	// ErrMalformedExpression is matched by every *SyntaxError.
	ErrMalformedExpression = errors.New("addition: invalid expression")
)

// OperandError reports the operand at Position (1-based) that is not a
// number.
type OperandError struct {
	Position int
	Value    any
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("addition: argument %d is not a number: %v", e.Position, e.Value)
}

func (e *OperandError) Is(target error) bool { return target == ErrInvalidOperandType }

// CharError reports a character outside digits, '.' and '+'. Offset indexes
// the expression after whitespace was removed.
type CharError struct {
	Char   rune
	Offset int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("addition: expression contains invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *CharError) Is(target error) bool { return target == ErrInvalidCharacter }

// SyntaxError reports an operand that is empty or not a valid number.
// Operand is 1-based. Err holds the strconv failure, if any.
type SyntaxError struct {
	Operand int
	Text    string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("addition: invalid expression: operand %d is empty", e.Operand)
	}
	return fmt.Sprintf("addition: invalid expression: cannot convert operand %d %q to a number", e.Operand, e.Text)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrMalformedExpression }

func (e *SyntaxError) Unwrap() error { return e.Err }
