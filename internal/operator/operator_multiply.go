package operator

import "fmt"

var _ NumberOperator = Multiply{}

type Multiply struct {
	value int
}

func NewMultiply(v int) Multiply {
	return Multiply{value: v}
}

func (op Multiply) Value() int {
	return op.value
}

func (op Multiply) Validate() error {
	return nil
}

func (op Multiply) Apply(current int) (int, error) {
	return current * op.value, nil
}

func (op Multiply) String() string {
	return fmt.Sprintf("[ * %d ]", op.value)
}
