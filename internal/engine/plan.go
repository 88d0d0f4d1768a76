package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/loozhengyuan/calcsolver/internal/operator"
)

const PlanVersion = 1

var ErrInvalidStep = errors.New("invalid step")

type Plan struct {
	Version int    `json:"version"`
	Name    string `json:"name"`
	Start   int    `json:"start"`
	Steps   []Step `json:"steps"`
}

// Step holds exactly one operator, either spelled out by kind or as a tile.
type Step struct {
	Add      *int   `json:"add,omitempty"`
	Multiply *int   `json:"multiply,omitempty"`
	Divide   *int   `json:"divide,omitempty"`
	Insert   *int   `json:"insert,omitempty"`
	Discard  bool   `json:"discard,omitempty"`
	Tile     string `json:"tile,omitempty"`
}

func (s Step) GetOperator() (operator.Operator, error) {
	var ops []operator.Operator
	if s.Add != nil {
		ops = append(ops, operator.NewAdd(*s.Add))
	}
	if s.Multiply != nil {
		ops = append(ops, operator.NewMultiply(*s.Multiply))
	}
	if s.Divide != nil {
		ops = append(ops, operator.NewDivide(*s.Divide))
	}
	if s.Insert != nil {
		ops = append(ops, operator.NewInsert(*s.Insert))
	}
	if s.Discard {
		ops = append(ops, operator.NewDiscard())
	}
	if strings.TrimSpace(s.Tile) != "" {
		op, err := operator.Parse(s.Tile)
		if err != nil {
			return nil, fmt.Errorf("parse tile: %w", err)
		}
		ops = append(ops, op)
	}

	switch len(ops) {
	case 0:
		return nil, fmt.Errorf("no operator specified: %w", ErrInvalidStep)
	case 1:
		return ops[0], nil
	default:
		return nil, fmt.Errorf("%d operators specified: %w", len(ops), ErrInvalidStep)
	}
}

// Operators converts every step and checks its preconditions.
func (p *Plan) Operators() ([]operator.Operator, error) {
	if p.Version != PlanVersion {
		return nil, fmt.Errorf("unsupported version: %d", p.Version)
	}
	ops := make([]operator.Operator, 0, len(p.Steps))
	for i, step := range p.Steps {
		op, err := step.GetOperator()
		if err != nil {
			return nil, fmt.Errorf("steps.%d: %w", i, err)
		}
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("steps.%d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func NewPlanFromJSON(r io.Reader) (*Plan, error) {
	var p Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &p, nil
}

func NewPlanFromJSONFile(name string) (*Plan, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return NewPlanFromJSON(f)
}

func NewPlanFromYAML(r io.Reader) (*Plan, error) {
	var p Plan
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &p, nil
}

func NewPlanFromYAMLFile(name string) (*Plan, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return NewPlanFromYAML(f)
}

// NewPlanFromFile picks the decoder by file extension; anything that is not
// .json is read as YAML.
func NewPlanFromFile(name string) (*Plan, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return NewPlanFromJSONFile(name)
	}
	return NewPlanFromYAMLFile(name)
}
