package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reity/circuit/op"
)

func TestTruthTable(t *testing.T) {
	c := New()
	g0, _ := c.AddInput()
	g1, _ := c.AddInput()
	g2, _ := c.AddInput()
	a, _ := c.AddGate(op.AND, g0, g1)
	x, err := c.AddGate(op.XOR, g2, a)
	require.NoError(t, err)
	_, err = c.AddOutput(x)
	require.NoError(t, err)

	table, err := c.TruthTable()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1, 1, 0}, table)
}

func TestTruthTableRequiresSingleOutput(t *testing.T) {
	c := New()
	g0, _ := c.AddInput()
	g1, _ := c.AddGate(op.NOT, g0)
	_, err := c.AddOutput(g0)
	require.NoError(t, err)
	_, err = c.AddOutput(g1)
	require.NoError(t, err)

	_, err = c.TruthTable()
	require.Error(t, err)
}

func TestToOperator(t *testing.T) {
	c := buildXorOfNots(t, nil)
	o, err := c.ToOperator("xor-of-nots")
	require.NoError(t, err)
	assert.True(t, o.Equal(op.XOR))
	assert.Equal(t, "xor-of-nots", o.Name())
	assert.Equal(t, 2, o.Arity())
}

func TestToOperatorTooManyInputs(t *testing.T) {
	c := New()
	g0, _ := c.AddInput()
	g1, _ := c.AddInput()
	g2, _ := c.AddInput()
	a, _ := c.AddGate(op.AND, g0, g1)
	x, _ := c.AddGate(op.XOR, g2, a)
	_, err := c.AddOutput(x)
	require.NoError(t, err)

	_, err = c.ToOperator("three-wide")
	require.Error(t, err)
}
