package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/reity/circuit/logger"
)

// PruneAndTopologicalSortStable removes every gate from which no output gate
// can be reached, input gates included, and renumbers the survivors densely
// while preserving their relative order. Because the original order was
// topological and the renumbering is order-preserving, the result is again
// topological: the gate list is rebuilt, operand references are rewritten
// through the old-to-new id table, and the signature's vector lengths are
// recomputed to account for dropped input or output gates.
//
// Pruning is idempotent, accepts empty circuits, and reduces a circuit with
// no output gates to an empty one. All gate ids held by the caller are
// invalidated.
func (c *Circuit) PruneAndTopologicalSortStable() {
	kept := bitset.New(uint(len(c.gates)))
	// Operands precede their gate, so one reverse sweep propagates
	// reachability from the output gates all the way back.
	for i := len(c.gates) - 1; i >= 0; i-- {
		g := c.gates[i]
		if g.IsOutput {
			kept.Set(uint(i))
		}
		if !kept.Test(uint(i)) {
			continue
		}
		for _, o := range g.Operands {
			kept.Set(uint(o))
		}
	}

	if c.sig != nil {
		c.sig = c.shrinkSignature(kept)
	}

	oldToNew := make([]int, len(c.gates))
	gates := make([]Gate, 0, kept.Count())
	for i, g := range c.gates {
		if !kept.Test(uint(i)) {
			continue
		}
		id := len(gates)
		oldToNew[i] = id
		operands := make([]int, len(g.Operands))
		for j, o := range g.Operands {
			operands[j] = oldToNew[o]
			if operands[j] >= id {
				// The order-preserving renumbering keeps every operand
				// strictly below its gate; reaching this means the kept set
				// or the remap table is corrupt.
				panic(fmt.Sprintf("unexpected: operand %d renumbered to %d, at or above gate %d",
					o, operands[j], id))
			}
		}
		g.Operands = operands
		gates = append(gates, g)
	}

	before := len(c.gates)
	c.gates = gates

	log := logger.Logger()
	log.Debug().
		Int("before", before).
		Int("after", len(gates)).
		Msg("pruned circuit")
}

// shrinkSignature recomputes the signature's vector lengths against the kept
// set, walking input and output gates in declaration order and assigning
// each to its signature vector by cumulative length. Vectors keep their
// relative order; a vector that lost all its gates keeps a zero length.
func (c *Circuit) shrinkSignature(kept *bitset.BitSet) *Signature {
	in := make([]int, len(c.sig.in))
	out := make([]int, len(c.sig.out))
	nthInput, nthOutput := 0, 0
	for i, g := range c.gates {
		if g.IsInput {
			if kept.Test(uint(i)) {
				in[vectorOf(c.sig.in, nthInput)]++
			}
			nthInput++
		}
		if g.IsOutput {
			if kept.Test(uint(i)) {
				out[vectorOf(c.sig.out, nthOutput)]++
			}
			nthOutput++
		}
	}
	return &Signature{in: in, out: out}
}

// vectorOf returns the index of the vector that the nth declared bit falls
// into, given the vector lengths.
func vectorOf(lengths []int, nth int) int {
	for i, n := range lengths {
		if nth < n {
			return i
		}
		nth -= n
	}
	// More flagged gates than the signature declares; Append prevents this.
	panic(fmt.Sprintf("unexpected: bit %d beyond signature vectors %v", nth, lengths))
}
