package circuit

import (
	"fmt"

	"github.com/reity/circuit/op"
)

// TruthTable evaluates the circuit on every possible input and returns the
// output bit for each assignment, with the first input gate as the most
// significant bit of the row index. The circuit must have exactly one output
// gate. Running time and memory are exponential in the number of input
// gates.
func (c *Circuit) TruthTable() ([]int, error) {
	if n := c.NumOutputs(); n != 1 {
		return nil, fmt.Errorf("%w: circuit has %d output gates, want exactly 1",
			ErrSignatureMismatch, n)
	}
	nbIn := c.NumInputs()
	table := make([]int, 1<<nbIn)
	input := make([]int, nbIn)
	for row := range table {
		for j := range input {
			input[j] = (row >> (nbIn - 1 - j)) & 1
		}
		out, err := EvaluateInDomain[int](c, BitDomain{}, input)
		if err != nil {
			return nil, err
		}
		table[row] = out[0]
	}
	return table, nil
}

// ToOperator converts a single-output circuit with at most op.MaxArity
// input gates into the operator it computes.
func (c *Circuit) ToOperator(name string) (op.Operator, error) {
	if n := c.NumInputs(); n > op.MaxArity {
		return op.Operator{}, fmt.Errorf("circuit has %d input gates, operators support at most %d", n, op.MaxArity)
	}
	table, err := c.TruthTable()
	if err != nil {
		return op.Operator{}, err
	}
	return op.FromTable(name, c.NumInputs(), table)
}
