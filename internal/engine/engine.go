package engine

import (
	"fmt"
	"io"

	"github.com/loozhengyuan/calcsolver/internal/operator"
)

type Engine struct {
	p        *Plan
	ops      []operator.Operator
	template string
}

// SetTemplate replaces the default trace output with a text/template
// rendered against TemplateContext.
func (e *Engine) SetTemplate(s string) {
	e.template = s
}

func (e *Engine) Execute(w io.Writer) (Trace, error) {
	t, err := Run(e.p.Start, e.ops...)
	if err != nil {
		return t, fmt.Errorf("run plan: %w", err)
	}

	out := t.String()
	if e.template != "" {
		c := TemplateContext{
			Plan:  *e.p,
			Trace: t,
		}
		if out, err = c.RenderString(e.template); err != nil {
			return t, fmt.Errorf("render output: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return t, fmt.Errorf("write output: %w", err)
	}
	return t, nil
}

func New(p *Plan) (*Engine, error) {
	ops, err := p.Operators()
	if err != nil {
		return nil, fmt.Errorf("get operators: %w", err)
	}
	return &Engine{p: p, ops: ops}, nil
}

func NewFromFile(name string) (*Engine, error) {
	p, err := NewPlanFromFile(name)
	if err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	return New(p)
}
