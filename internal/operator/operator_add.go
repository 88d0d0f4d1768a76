package operator

import "fmt"

var _ NumberOperator = Add{}

// Add adds its value to the running value. Negative values subtract.
type Add struct {
	value int
}

func NewAdd(v int) Add {
	return Add{value: v}
}

func (op Add) Value() int {
	return op.value
}

func (op Add) Validate() error {
	return nil
}

func (op Add) Apply(current int) (int, error) {
	return current + op.value, nil
}

func (op Add) String() string {
	if op.value > 0 {
		return fmt.Sprintf("[ + %d ]", op.value)
	}
	return fmt.Sprintf("[ - %d ]", abs(op.value))
}
