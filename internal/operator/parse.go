package operator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownOperator = errors.New("unknown operator")

// Parse reads a single tile. It accepts the compact notation used on the
// command line (+8, -3, *2, x2, /4, 7, <<) as well as the bracketed form
// produced by String, so Parse(op.String()) is equal to op for every operator
// that passes Validate.
func Parse(s string) (Operator, error) {
	t := strings.Join(strings.Fields(s), "")
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		t = t[1 : len(t)-1]
	}
	if t == "" {
		return nil, fmt.Errorf("empty tile: %w", ErrUnknownOperator)
	}
	if t == "<<" {
		return NewDiscard(), nil
	}

	switch t[0] {
	case '+', '-':
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("parse '%s': %w", s, ErrUnknownOperator)
		}
		return NewAdd(n), nil
	case '*', 'x', 'X':
		n, err := strconv.Atoi(t[1:])
		if err != nil {
			return nil, fmt.Errorf("parse '%s': %w", s, ErrUnknownOperator)
		}
		return NewMultiply(n), nil
	case '/':
		n, err := strconv.Atoi(t[1:])
		if err != nil {
			return nil, fmt.Errorf("parse '%s': %w", s, ErrUnknownOperator)
		}
		return NewDivide(n), nil
	}

	n, err := strconv.Atoi(t)
	if err != nil {
		return nil, fmt.Errorf("parse '%s': %w", s, ErrUnknownOperator)
	}
	return NewInsert(n), nil
}

// ParseAll parses and validates every tile in order.
func ParseAll(tiles []string) ([]Operator, error) {
	ops := make([]Operator, 0, len(tiles))
	for i, s := range tiles {
		op, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
