package circuit

import (
	"fmt"

	"github.com/reity/circuit/op"
)

// gateDomain evaluates a circuit whose values are gate ids in a destination
// circuit: applying an operator appends the corresponding gate to the
// destination instead of computing a bit.
type gateDomain struct {
	dst *Circuit
}

func (d gateDomain) Apply(o op.Operator, args []int) (int, error) {
	return d.dst.AddGate(o, args...)
}

// Embed splices src into dst as a sub-expression. The input gates of src are
// substituted with the dst gates whose ids are given in inputs, one per src
// input gate in declaration order; every other gate of src is reproduced in
// dst with its operand references rewritten. The returned ids identify the
// gates of dst corresponding to src's output gates, in declaration order;
// they are not flagged as outputs of dst.
//
// Embed is the symbolic counterpart of Evaluate: it runs the same traversal
// with gate ids as the value domain.
//
// On error dst is left unchanged; all substitute ids are validated before
// any gate is appended.
func Embed(dst, src *Circuit, inputs []int) ([]int, error) {
	if len(inputs) != src.NumInputs() {
		return nil, fmt.Errorf("%w: got %d substitute gates, want %d",
			ErrSignatureMismatch, len(inputs), src.NumInputs())
	}
	for _, id := range inputs {
		if id < 0 || id >= dst.Len() {
			return nil, fmt.Errorf("%w: substitute gate %d (destination has %d gates)",
				ErrUnknownReference, id, dst.Len())
		}
		if dst.gates[id].IsOutput {
			return nil, fmt.Errorf("%w: substitute gate %d is an output gate of the destination",
				ErrInvalidOutputGate, id)
		}
	}
	return EvaluateInDomain[int](src, gateDomain{dst}, inputs)
}
