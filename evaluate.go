package circuit

import (
	"fmt"

	"github.com/reity/circuit/op"
)

// Domain supplies operator application over an arbitrary value type,
// allowing the one traversal in EvaluateInDomain to serve both concrete bit
// evaluation and symbolic uses such as circuit composition.
type Domain[V any] interface {
	// Apply computes the result of an operator on already-computed operand
	// values. The argument count always equals the operator's arity.
	Apply(o op.Operator, args []V) (V, error)
}

// EvaluateInDomain walks the circuit's gates in id order, assigning each
// input gate the next value from inputs and computing every other gate with
// d.Apply. It returns the values of the output gates in id order. The length
// of inputs must equal the number of input gates.
//
// Because every operand id is strictly less than the id of the gate using
// it, a single forward sweep has every operand value available by the time
// it is needed; no sorting or recursion is involved.
func EvaluateInDomain[V any](c *Circuit, d Domain[V], inputs []V) ([]V, error) {
	if len(inputs) != c.NumInputs() {
		return nil, fmt.Errorf("%w: got %d input bits, want %d",
			ErrSignatureMismatch, len(inputs), c.NumInputs())
	}
	values := make([]V, len(c.gates))
	args := make([]V, 0, op.MaxArity)
	next := 0
	for i, g := range c.gates {
		if g.IsInput {
			values[i] = inputs[next]
			next++
			continue
		}
		args = args[:0]
		for _, o := range g.Operands {
			args = append(args, values[o])
		}
		v, err := d.Apply(g.Op, args)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	outputs := make([]V, 0, c.NumOutputs())
	for i, g := range c.gates {
		if g.IsOutput {
			outputs = append(outputs, values[i])
		}
	}
	return outputs, nil
}

// BitDomain evaluates operators on concrete bits via their truth tables. It
// is the domain behind Evaluate and EvaluateVectors.
type BitDomain struct{}

func (BitDomain) Apply(o op.Operator, args []int) (int, error) {
	if err := checkBits(args); err != nil {
		return 0, err
	}
	return o.Apply(args...), nil
}

func checkBits(bits []int) error {
	for _, b := range bits {
		if b != 0 && b != 1 {
			return fmt.Errorf("%w: each bit must be 0 or 1, got %d", ErrSignatureMismatch, b)
		}
	}
	return nil
}

// Evaluate computes the circuit's output bits for a flat input bit vector,
// one bit per input gate in declaration order. The circuit must not have a
// grouping signature; see EvaluateVectors for signed circuits.
//
// Evaluation never modifies the circuit, and repeated evaluation with the
// same input yields the same output.
func (c *Circuit) Evaluate(input []int) ([]int, error) {
	if c.sig != nil {
		return nil, fmt.Errorf("%w: circuit has a signature, use EvaluateVectors", ErrSignatureMismatch)
	}
	if err := checkBits(input); err != nil {
		return nil, err
	}
	return EvaluateInDomain[int](c, BitDomain{}, input)
}

// EvaluateVectors computes the circuit's outputs for inputs grouped
// according to the circuit's signature, returning outputs grouped the same
// way.
func (c *Circuit) EvaluateVectors(input [][]int) ([][]int, error) {
	if c.sig == nil {
		return nil, fmt.Errorf("%w: circuit has no signature, use Evaluate", ErrSignatureMismatch)
	}
	flat, err := c.sig.flatten(input)
	if err != nil {
		return nil, err
	}
	if err := checkBits(flat); err != nil {
		return nil, err
	}
	out, err := EvaluateInDomain[int](c, BitDomain{}, flat)
	if err != nil {
		return nil, err
	}
	if len(out) != c.sig.NumOutputs() {
		return nil, fmt.Errorf("%w: circuit has %d output gates, signature declares %d",
			ErrSignatureMismatch, len(out), c.sig.NumOutputs())
	}
	return c.sig.group(out), nil
}
