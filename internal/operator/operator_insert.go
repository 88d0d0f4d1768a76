package operator

import "fmt"

var _ NumberOperator = Insert{}

// Insert appends its value as the new least significant decimal digit of the
// running value. The sign of the running value is kept, with zero counted as
// non-negative, so inserting 5 onto -12 gives -125.
type Insert struct {
	value int
}

func NewInsert(v int) Insert {
	return Insert{value: v}
}

func (op Insert) Value() int {
	return op.value
}

func (op Insert) Validate() error {
	if op.value < 0 || op.value > 9 {
		return fmt.Errorf("insert %d is not a single digit: %w", op.value, ErrInvalidOperand)
	}
	return nil
}

// Apply does not check Validate; a multi-digit value is folded in as
// abs(current)*10 + value.
func (op Insert) Apply(current int) (int, error) {
	n := abs(current)*10 + op.value
	if current < 0 {
		return -n, nil
	}
	return n, nil
}

func (op Insert) String() string {
	return fmt.Sprintf("[ %d ]", op.value)
}
