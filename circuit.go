// Package circuit implements programmatic construction, evaluation, and
// pruning of combinational boolean circuits.
//
// A circuit is a list of gates in which every gate refers to strictly
// earlier gates, so the list is always in topological order and evaluation
// is a single forward sweep. Gates are appended one at a time and never
// mutated; the only bulk change is PruneAndTopologicalSortStable, which
// replaces the whole gate list with a renumbered one.
//
// The data structure is not safe for concurrent mutation. Evaluations may
// run concurrently against a circuit that is no longer being modified;
// pruning requires exclusive access.
package circuit

import (
	"fmt"

	"github.com/reity/circuit/op"
)

// Gate is a single node of a circuit: an operator applied to the values of
// earlier gates. Operands refer to gates by id, and every operand id is
// strictly less than the id of the gate itself.
//
// An input gate carries the identity operator, has no operands, and receives
// its value from the evaluation input vector. An output gate's value is
// collected into the evaluation output vector.
type Gate struct {
	Op       op.Operator
	Operands []int
	IsInput  bool
	IsOutput bool
}

// Circuit is an ordered list of gates together with an optional signature.
// Gate ids are dense: the id of a gate is its index in the list.
type Circuit struct {
	gates []Gate
	sig   *Signature
}

// New returns an empty circuit with a flat (unsigned) input/output shape.
func New() *Circuit {
	return &Circuit{}
}

// NewWithSignature returns an empty circuit whose evaluation inputs and
// outputs are grouped according to sig.
func NewWithSignature(sig *Signature) *Circuit {
	return &Circuit{sig: sig}
}

// Len returns the number of gates in the circuit.
func (c *Circuit) Len() int {
	return len(c.gates)
}

// Gate returns a copy of the gate with the given id. It panics if the id is
// out of range, like a slice index.
func (c *Circuit) Gate(id int) Gate {
	g := c.gates[id]
	g.Operands = append([]int(nil), g.Operands...)
	return g
}

// Signature returns the circuit's signature, or nil if the circuit uses flat
// input and output vectors.
func (c *Circuit) Signature() *Signature {
	return c.sig
}

// SetSignature replaces the circuit's signature. If the circuit already
// contains gates, the signature's vector lengths must sum to the current
// input and output gate counts. A nil signature reverts to flat vectors.
func (c *Circuit) SetSignature(sig *Signature) error {
	if sig != nil && len(c.gates) > 0 {
		if sig.NumInputs() != c.NumInputs() || sig.NumOutputs() != c.NumOutputs() {
			return fmt.Errorf("%w: signature declares %d inputs and %d outputs, circuit has %d and %d",
				ErrSignatureMismatch, sig.NumInputs(), sig.NumOutputs(), c.NumInputs(), c.NumOutputs())
		}
	}
	c.sig = sig
	return nil
}

// CountFunc returns the number of gates satisfying the predicate.
func (c *Circuit) CountFunc(pred func(Gate) bool) int {
	n := 0
	for _, g := range c.gates {
		if pred(g) {
			n++
		}
	}
	return n
}

// NumInputs returns the number of input gates.
func (c *Circuit) NumInputs() int {
	return c.CountFunc(func(g Gate) bool { return g.IsInput })
}

// NumOutputs returns the number of output gates.
func (c *Circuit) NumOutputs() int {
	return c.CountFunc(func(g Gate) bool { return g.IsOutput })
}

// Append validates g and adds it to the circuit, returning the id of the new
// gate. On error the circuit is unchanged.
func (c *Circuit) Append(g Gate) (int, error) {
	if g.IsInput {
		// input gates hold the identity operator but no operands; their
		// value comes from the evaluation input vector
		if !g.Op.Equal(op.ID) || len(g.Operands) != 0 {
			return 0, fmt.Errorf("%w: got operator %q with %d operands",
				ErrInvalidInputGate, g.Op.Name(), len(g.Operands))
		}
		if c.sig != nil && c.NumInputs() >= c.sig.NumInputs() {
			return 0, fmt.Errorf("%w: signature declares %d input gates",
				ErrSignatureMismatch, c.sig.NumInputs())
		}
	} else if len(g.Operands) != g.Op.Arity() {
		return 0, fmt.Errorf("%w: operator %q has arity %d, got %d operands",
			ErrArityMismatch, g.Op.Name(), g.Op.Arity(), len(g.Operands))
	}
	for _, id := range g.Operands {
		if id < 0 || id >= len(c.gates) {
			return 0, fmt.Errorf("%w: operand %d (circuit has %d gates)",
				ErrUnknownReference, id, len(c.gates))
		}
		if c.gates[id].IsOutput {
			return 0, fmt.Errorf("%w: gate %d is an output gate and cannot be an operand",
				ErrInvalidOutputGate, id)
		}
	}
	if g.IsOutput {
		if !g.Op.Equal(op.ID) {
			return 0, fmt.Errorf("%w: output gate has operator %q, want identity",
				ErrInvalidOutputGate, g.Op.Name())
		}
		if c.sig != nil && c.NumOutputs() >= c.sig.NumOutputs() {
			return 0, fmt.Errorf("%w: signature declares %d output gates",
				ErrSignatureMismatch, c.sig.NumOutputs())
		}
	}
	g.Operands = append([]int(nil), g.Operands...)
	c.gates = append(c.gates, g)
	return len(c.gates) - 1, nil
}

// AddGate appends an internal gate applying o to the given operand gates and
// returns its id.
func (c *Circuit) AddGate(o op.Operator, operands ...int) (int, error) {
	return c.Append(Gate{Op: o, Operands: operands})
}

// AddInput appends an input gate and returns its id. Input gates receive
// their values from the evaluation input vector, in the order they were
// added.
func (c *Circuit) AddInput() (int, error) {
	return c.Append(Gate{Op: op.ID, IsInput: true})
}

// AddOutput appends an identity gate wrapping the gate with the given id and
// marks it as an output. The wrapped gate itself is not modified, so other
// gates referring to it are unaffected.
func (c *Circuit) AddOutput(id int) (int, error) {
	return c.Append(Gate{Op: op.ID, Operands: []int{id}, IsOutput: true})
}

// Depth returns the number of gates satisfying the predicate on the longest
// input-to-output path. With an always-true predicate it is the circuit
// depth counting every gate.
func (c *Circuit) Depth(pred func(Gate) bool) int {
	depths := make([]int, len(c.gates))
	max := 0
	for i, g := range c.gates {
		d := 0
		for _, o := range g.Operands {
			if depths[o] > d {
				d = depths[o]
			}
		}
		if pred(g) {
			d++
		}
		depths[i] = d
		if d > max {
			max = d
		}
	}
	return max
}
