package circuit

import "errors"

// Errors reported by circuit construction and evaluation. All of them are
// detected synchronously at the offending call and leave the circuit
// unchanged; they indicate misuse of the API rather than transient failure.
var (
	// ErrUnknownReference reports an operand id that does not exist yet in
	// the circuit.
	ErrUnknownReference = errors.New("unknown gate reference")

	// ErrArityMismatch reports an operand count that does not match the
	// operator's arity.
	ErrArityMismatch = errors.New("operand count does not match operator arity")

	// ErrInvalidInputGate reports an input-flagged gate with operands or a
	// non-identity operator.
	ErrInvalidInputGate = errors.New("input gate must be an identity gate with no operands")

	// ErrInvalidOutputGate reports an output-flagged gate with a
	// non-identity operator, or an output gate used as an operand.
	ErrInvalidOutputGate = errors.New("invalid use of output gate")

	// ErrSignatureMismatch reports an input or output shape that does not
	// match the circuit's signature or declared gates.
	ErrSignatureMismatch = errors.New("shape does not match circuit signature")
)
