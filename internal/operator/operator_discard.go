package operator

var _ Operator = Discard{}

// Discard drops the least significant decimal digit, truncating toward zero.
type Discard struct{}

func NewDiscard() Discard {
	return Discard{}
}

func (op Discard) Validate() error {
	return nil
}

func (op Discard) Apply(current int) (int, error) {
	// Go integer division already truncates toward zero.
	return current / 10, nil
}

func (op Discard) String() string {
	return "[ << ]"
}
