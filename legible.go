package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// LegibleGate is the compact human-readable form of a single gate: the
// operator's display name followed by its operand ids.
type LegibleGate struct {
	Name     string
	Operands []int
}

// ToLegible projects the gate list into its compact human-readable form, in
// gate-id order. It is a read-only view intended for inspection and tests;
// evaluation and pruning never consult it.
func (c *Circuit) ToLegible() []LegibleGate {
	legible := make([]LegibleGate, len(c.gates))
	for i, g := range c.gates {
		legible[i] = LegibleGate{
			Name:     g.Op.Name(),
			Operands: append([]int(nil), g.Operands...),
		}
	}
	return legible
}

// String renders the circuit one gate per line, in the style
//
//	v0 = id() in
//	v2 = and(v0, v1)
//	v3 = id(v2) out
func (c *Circuit) String() string {
	var sb strings.Builder
	for i, g := range c.gates {
		args := make([]string, len(g.Operands))
		for j, o := range g.Operands {
			args[j] = "v" + strconv.Itoa(o)
		}
		fmt.Fprintf(&sb, "v%d = %s(%s)", i, g.Op.Name(), strings.Join(args, ", "))
		if g.IsInput {
			sb.WriteString(" in")
		}
		if g.IsOutput {
			sb.WriteString(" out")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
