package circuit

import "fmt"

// Signature describes how a circuit's input and output gates are grouped
// into ordered bit vectors of fixed lengths. It shapes evaluation inputs and
// outputs only; it has no effect on how gate values are computed.
type Signature struct {
	in  []int
	out []int
}

// NewSignature builds a signature from the lengths of the input vectors and
// the lengths of the output vectors. Lengths must be non-negative; a zero
// length declares a vector with no bits.
func NewSignature(in, out []int) (*Signature, error) {
	for _, n := range in {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative input vector length %d", ErrSignatureMismatch, n)
		}
	}
	for _, n := range out {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative output vector length %d", ErrSignatureMismatch, n)
		}
	}
	return &Signature{
		in:  append([]int(nil), in...),
		out: append([]int(nil), out...),
	}, nil
}

// InputLengths returns the lengths of the input vectors.
func (s *Signature) InputLengths() []int {
	return append([]int(nil), s.in...)
}

// OutputLengths returns the lengths of the output vectors.
func (s *Signature) OutputLengths() []int {
	return append([]int(nil), s.out...)
}

// NumInputs returns the total number of input bits the signature declares.
func (s *Signature) NumInputs() int {
	return sum(s.in)
}

// NumOutputs returns the total number of output bits the signature declares.
func (s *Signature) NumOutputs() int {
	return sum(s.out)
}

// flatten checks vectors against the signature's input grouping and
// concatenates them into a flat bit vector.
func (s *Signature) flatten(vectors [][]int) ([]int, error) {
	if len(vectors) != len(s.in) {
		return nil, fmt.Errorf("%w: got %d input vectors, want %d",
			ErrSignatureMismatch, len(vectors), len(s.in))
	}
	flat := make([]int, 0, s.NumInputs())
	for i, v := range vectors {
		if len(v) != s.in[i] {
			return nil, fmt.Errorf("%w: input vector %d has %d bits, want %d",
				ErrSignatureMismatch, i, len(v), s.in[i])
		}
		flat = append(flat, v...)
	}
	return flat, nil
}

// group splits a flat output bit vector according to the signature's output
// grouping.
func (s *Signature) group(flat []int) [][]int {
	vectors := make([][]int, len(s.out))
	pos := 0
	for i, n := range s.out {
		vectors[i] = append([]int(nil), flat[pos:pos+n]...)
		pos += n
	}
	return vectors
}

func sum(ns []int) int {
	t := 0
	for _, n := range ns {
		t += n
	}
	return t
}
