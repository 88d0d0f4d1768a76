package operator

import "errors"

var (
	// ErrNotDivisible is returned by Divide when the running value is not an
	// exact multiple of the divisor.
	ErrNotDivisible = errors.New("not evenly divisible")

	// ErrInvalidOperand is returned for operands that break an operator's
	// precondition, such as dividing by zero or inserting a non-digit.
	ErrInvalidOperand = errors.New("invalid operand")
)

// Operator is a single step that turns the running value into the next one.
//
// Implementations are immutable value types, so two operators compare equal
// with == exactly when they are the same variant carrying the same value.
type Operator interface {
	Validate() error
	Apply(current int) (int, error)
	String() string
}

// NumberOperator is an Operator that carries a number.
type NumberOperator interface {
	Operator
	Value() int
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
