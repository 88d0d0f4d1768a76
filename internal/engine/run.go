package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loozhengyuan/calcsolver/internal/operator"
)

// Move is a single operator application.
type Move struct {
	Operator operator.Operator
	From     int
	To       int
}

type Trace struct {
	Start int
	Moves []Move
}

// Result returns the value after the last move, or Start if nothing ran.
func (t Trace) Result() int {
	if len(t.Moves) == 0 {
		return t.Start
	}
	return t.Moves[len(t.Moves)-1].To
}

func (t Trace) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(t.Start))
	for _, m := range t.Moves {
		fmt.Fprintf(&b, " %s %d", m.Operator, m.To)
	}
	return b.String()
}

// StepError reports the operator that could not be applied.
type StepError struct {
	Index    int
	Operator operator.Operator
	Value    int
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: apply %s to %d: %v", e.Index, e.Operator, e.Value, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Run applies ops to start one at a time. It stops at the first operator
// that fails and returns the trace up to that point.
func Run(start int, ops ...operator.Operator) (Trace, error) {
	t := Trace{
		Start: start,
		Moves: make([]Move, 0, len(ops)),
	}
	v := start
	for i, op := range ops {
		next, err := op.Apply(v)
		if err != nil {
			return t, &StepError{Index: i, Operator: op, Value: v, Err: err}
		}
		t.Moves = append(t.Moves, Move{Operator: op, From: v, To: next})
		v = next
	}
	return t, nil
}
