package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Operator
	}{
		{"+8", NewAdd(8)},
		{"-3", NewAdd(-3)},
		{"*2", NewMultiply(2)},
		{"x2", NewMultiply(2)},
		{"*-2", NewMultiply(-2)},
		{"/4", NewDivide(4)},
		{"7", NewInsert(7)},
		{"<<", NewDiscard()},
		{"[ + 5 ]", NewAdd(5)},
		{"[ - 5 ]", NewAdd(-5)},
		{"[ << ]", NewDiscard()},
		{" [ 0 ] ", NewInsert(0)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	ops := []Operator{
		NewAdd(5), NewAdd(-5), NewAdd(0),
		NewMultiply(4), NewMultiply(-4),
		NewDivide(4), NewDivide(-3),
		NewInsert(0), NewInsert(9),
		NewDiscard(),
	}
	for _, op := range ops {
		got, err := Parse(op.String())
		require.NoError(t, err, op.String())
		assert.True(t, got == op, "%s parsed as %s", op, got)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "[ ]", "abc", "*", "/x", "+", "<", "1.5"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnknownOperator, "%q", in)
	}
}

func TestParseAll(t *testing.T) {
	ops, err := ParseAll([]string{"+8", "*3", "<<"})
	require.NoError(t, err)
	assert.Equal(t, []Operator{NewAdd(8), NewMultiply(3), NewDiscard()}, ops)

	_, err = ParseAll([]string{"+8", "?"})
	require.ErrorIs(t, err, ErrUnknownOperator)
	assert.Contains(t, err.Error(), "tile 1")

	_, err = ParseAll([]string{"/0"})
	assert.ErrorIs(t, err, ErrInvalidOperand)

	_, err = ParseAll([]string{"12"})
	assert.ErrorIs(t, err, ErrInvalidOperand)
}
