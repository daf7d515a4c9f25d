package circuit

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reity/circuit/logger"
	"github.com/reity/circuit/op"
)

func names(c *Circuit) []string {
	ns := make([]string, c.Len())
	for i, g := range c.ToLegible() {
		ns[i] = g.Name
	}
	return ns
}

func TestPruneRemovesDeadGate(t *testing.T) {
	c := buildXorOfNots(t, nil)
	require.Equal(t, 7, c.Len())

	truth := func() [][]int {
		var rows [][]int
		for _, in := range [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
			out, err := c.Evaluate(in)
			require.NoError(t, err)
			rows = append(rows, out)
		}
		return rows
	}
	before := truth()
	assert.Equal(t, [][]int{{0}, {1}, {1}, {0}}, before)

	c.PruneAndTopologicalSortStable()
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, before, truth())
	assert.Equal(t, []string{"id", "id", "not", "not", "xor", "id"}, names(c))
}

func TestPruneLogsGateCounts(t *testing.T) {
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))
	defer logger.Disable()

	c := buildXorOfNots(t, nil)
	c.PruneAndTopologicalSortStable()

	assert.Contains(t, buf.String(), "pruned circuit")
	assert.Contains(t, buf.String(), `"before":7`)
	assert.Contains(t, buf.String(), `"after":6`)
}

func TestPruneIsIdempotent(t *testing.T) {
	c := buildXorOfNots(t, nil)
	c.PruneAndTopologicalSortStable()
	once := c.ToLegible()
	c.PruneAndTopologicalSortStable()
	assert.Equal(t, once, c.ToLegible())
	assert.Equal(t, 6, c.Len())
}

func TestPruneNoOutputsYieldsEmptyCircuit(t *testing.T) {
	c := New()
	g0, _ := c.AddInput()
	g1, _ := c.AddInput()
	_, err := c.AddGate(op.AND, g0, g1)
	require.NoError(t, err)

	c.PruneAndTopologicalSortStable()
	assert.Equal(t, 0, c.Len())
}

func TestPruneEmptyCircuit(t *testing.T) {
	c := New()
	c.PruneAndTopologicalSortStable()
	assert.Equal(t, 0, c.Len())
}

func TestPruneDropsUnreachableInputs(t *testing.T) {
	// two disconnected components: an input-fed component with no path to
	// an output, and a constant component feeding the only output
	c := New()
	g0, _ := c.AddInput()
	_, err := c.AddInput()
	require.NoError(t, err)
	g2, _ := c.AddGate(op.NOT, g0)
	_, err = c.AddGate(op.AND, g0, g2)
	require.NoError(t, err)
	g4, _ := c.AddGate(op.NT)
	g5, _ := c.AddGate(op.NF)
	g6, _ := c.AddGate(op.OR, g4, g5)
	_, err = c.AddOutput(g6)
	require.NoError(t, err)
	require.Equal(t, 8, c.Len())

	c.PruneAndTopologicalSortStable()
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"nt", "nf", "or", "id"}, names(c))
	assert.Equal(t, 0, c.NumInputs())

	out, err := c.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, out)
}

func TestPrunePreservesRelativeOrder(t *testing.T) {
	c := New()
	g0, _ := c.AddInput()
	g1, _ := c.AddInput()
	g2, _ := c.AddInput()
	n0, _ := c.AddGate(op.NOT, g0)
	_, err := c.AddGate(op.AND, g1, g2) // dead
	require.NoError(t, err)
	n2, _ := c.AddGate(op.NOT, g2)
	o0, _ := c.AddOutput(n0)
	_, err = c.AddGate(op.OR, g0, g1) // dead
	require.NoError(t, err)
	o1, _ := c.AddOutput(n2)
	_ = o0
	_ = o1

	beforeOutputs := outputOperandNames(c)
	c.PruneAndTopologicalSortStable()

	// survivors keep their relative order; in particular the outputs still
	// negate the first and third inputs in that order
	assert.Equal(t, beforeOutputs, outputOperandNames(c))
	// the second input had no path to an output and is gone
	assert.Equal(t, []string{"id", "id", "not", "not", "id", "id"}, names(c))
	assert.Equal(t, 2, c.NumInputs())

	out, err := c.Evaluate([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, out)
}

// outputOperandNames renders each output gate as the operator name of the
// gate it wraps, in declaration order.
func outputOperandNames(c *Circuit) []string {
	var ns []string
	for i := 0; i < c.Len(); i++ {
		g := c.Gate(i)
		if g.IsOutput {
			ns = append(ns, c.Gate(g.Operands[0]).Op.Name())
		}
	}
	return ns
}

func TestPruneRewritesOperandReferences(t *testing.T) {
	c := buildXorOfNots(t, nil)
	c.PruneAndTopologicalSortStable()
	for i := 0; i < c.Len(); i++ {
		for _, o := range c.Gate(i).Operands {
			assert.GreaterOrEqual(t, o, 0)
			assert.Less(t, o, i)
		}
	}
}

func TestPruneShrinksSignature(t *testing.T) {
	sig, err := NewSignature([]int{2, 1}, []int{1})
	require.NoError(t, err)
	c := NewWithSignature(sig)
	g0, _ := c.AddInput()
	g1, _ := c.AddInput()
	_, err = c.AddInput() // third input is never used
	require.NoError(t, err)
	g3, _ := c.AddGate(op.AND, g0, g1)
	_, err = c.AddOutput(g3)
	require.NoError(t, err)

	c.PruneAndTopologicalSortStable()
	require.NotNil(t, c.Signature())
	assert.Equal(t, []int{2, 0}, c.Signature().InputLengths())
	assert.Equal(t, []int{1}, c.Signature().OutputLengths())

	out, err := c.EvaluateVectors([][]int{{1, 1}, {}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, out)
}
