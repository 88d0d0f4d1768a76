package operator

import "fmt"

var _ NumberOperator = Divide{}

// Divide divides the running value by its value, but only when the result
// stays an integer.
type Divide struct {
	value int
}

func NewDivide(v int) Divide {
	return Divide{value: v}
}

func (op Divide) Value() int {
	return op.value
}

func (op Divide) Validate() error {
	if op.value == 0 {
		return fmt.Errorf("divide by zero: %w", ErrInvalidOperand)
	}
	return nil
}

func (op Divide) Apply(current int) (int, error) {
	if err := op.Validate(); err != nil {
		return 0, err
	}
	if current%op.value != 0 {
		return 0, fmt.Errorf("%d by %d: %w", current, op.value, ErrNotDivisible)
	}
	return current / op.value, nil
}

func (op Divide) String() string {
	return fmt.Sprintf("[ / %d ]", op.value)
}
