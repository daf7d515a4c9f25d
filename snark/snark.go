// Package snark embeds boolean circuits into gnark constraint systems. Each
// gate becomes the multilinear extension of its truth table over
// {0,1}-constrained variables, so a satisfying witness is exactly an
// input/output pair accepted by the boolean circuit's Evaluate.
package snark

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/reity/circuit"
	"github.com/reity/circuit/logger"
	"github.com/reity/circuit/op"
)

// Circuit is the gnark embedding of a boolean circuit. In carries one
// secret variable per input gate and Out one public variable per output
// gate, both in declaration order.
type Circuit struct {
	In  []frontend.Variable
	Out []frontend.Variable `gnark:",public"`

	Logic *circuit.Circuit `gnark:"-"`
}

// apiDomain evaluates gate operators as gnark constraints: values are
// frontend variables and operator application emits the multilinear
// extension of the truth table.
type apiDomain struct {
	api frontend.API
}

func (d apiDomain) Apply(o op.Operator, args []frontend.Variable) (frontend.Variable, error) {
	if o.Equal(op.ID) {
		return args[0], nil
	}
	table := o.Table()
	sum := frontend.Variable(0)
	for row, bit := range table {
		if bit == 0 {
			continue
		}
		term := frontend.Variable(1)
		for j := range args {
			if (row>>(len(args)-1-j))&1 == 1 {
				term = d.api.Mul(term, args[j])
			} else {
				term = d.api.Mul(term, d.api.Sub(1, args[j]))
			}
		}
		sum = d.api.Add(sum, term)
	}
	return sum, nil
}

// Define constrains every In variable to be boolean, evaluates the boolean
// circuit in the constraint domain, and binds the resulting output wires to
// Out.
func (c *Circuit) Define(api frontend.API) error {
	if c.Logic == nil {
		return errors.New("no boolean circuit bound")
	}
	if len(c.In) != c.Logic.NumInputs() || len(c.Out) != c.Logic.NumOutputs() {
		return fmt.Errorf("witness shape %dx%d does not match circuit %dx%d",
			len(c.In), len(c.Out), c.Logic.NumInputs(), c.Logic.NumOutputs())
	}
	for _, v := range c.In {
		api.AssertIsBoolean(v)
	}
	outputs, err := circuit.EvaluateInDomain[frontend.Variable](c.Logic, apiDomain{api}, c.In)
	if err != nil {
		return err
	}
	for i, v := range outputs {
		api.AssertIsEqual(v, c.Out[i])
	}
	return nil
}

// Placeholder returns the compile-time shape of the embedding of lc, with
// unassigned witness slots.
func Placeholder(lc *circuit.Circuit) *Circuit {
	return &Circuit{
		In:    make([]frontend.Variable, lc.NumInputs()),
		Out:   make([]frontend.Variable, lc.NumOutputs()),
		Logic: lc,
	}
}

// Assign evaluates lc on the given input bits and returns the full witness
// assignment for the embedding.
func Assign(lc *circuit.Circuit, input []int) (*Circuit, error) {
	for _, b := range input {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("input bit %d is not 0 or 1", b)
		}
	}
	outputs, err := circuit.EvaluateInDomain[int](lc, circuit.BitDomain{}, input)
	if err != nil {
		return nil, err
	}
	in := make([]frontend.Variable, len(input))
	for i, b := range input {
		in[i] = b
	}
	out := make([]frontend.Variable, len(outputs))
	for i, b := range outputs {
		out[i] = b
	}
	return &Circuit{In: in, Out: out, Logic: lc}, nil
}

// Compile builds the R1CS for the embedding of lc over the BN254 scalar
// field.
func Compile(lc *circuit.Circuit) (constraint.ConstraintSystem, error) {
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, Placeholder(lc))
	if err != nil {
		return nil, err
	}
	log := logger.Logger()
	log.Info().
		Int("nbGates", lc.Len()).
		Int("nbConstraints", cs.GetNbConstraints()).
		Msg("compiled boolean circuit")
	return cs, nil
}
