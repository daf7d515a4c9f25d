// Package op provides the table of boolean operators used to label circuit
// gates. An operator is a pure function from zero, one, or two bits to one
// bit, represented by its truth table together with a display name.
package op

import "fmt"

// Operator is an immutable fixed-arity boolean function. The zero value is
// not a valid operator; use one of the package-level operators or FromTable.
type Operator struct {
	name  string
	arity int
	// truth table, row index formed by the input bits with the first
	// argument as the most significant bit; only the first 1<<arity
	// entries are meaningful
	table [4]uint8
}

// MaxArity is the largest operator arity supported by the package.
const MaxArity = 2

// FromTable builds an operator from an explicit truth table. The table must
// contain exactly 1<<arity entries, each 0 or 1.
func FromTable(name string, arity int, table []int) (Operator, error) {
	if arity < 0 || arity > MaxArity {
		return Operator{}, fmt.Errorf("operator arity %d is out of range", arity)
	}
	if len(table) != 1<<arity {
		return Operator{}, fmt.Errorf("truth table has %d entries, want %d", len(table), 1<<arity)
	}
	o := Operator{name: name, arity: arity}
	for i, b := range table {
		if b != 0 && b != 1 {
			return Operator{}, fmt.Errorf("truth table entry %d is %d, want 0 or 1", i, b)
		}
		o.table[i] = uint8(b)
	}
	return o, nil
}

// Name returns the display name of the operator.
func (o Operator) Name() string {
	return o.name
}

// Arity returns the number of input bits the operator consumes.
func (o Operator) Arity() int {
	return o.arity
}

// Table returns a copy of the operator's truth table, with 1<<arity entries.
func (o Operator) Table() []int {
	t := make([]int, 1<<o.arity)
	for i := range t {
		t[i] = int(o.table[i])
	}
	return t
}

// Apply evaluates the operator on the given bits. The number of arguments
// must equal the operator's arity and each bit must be 0 or 1; violations
// indicate a bug in the caller and panic.
func (o Operator) Apply(bits ...int) int {
	if len(bits) != o.arity {
		panic(fmt.Sprintf("unexpected: %d arguments for %q with arity %d", len(bits), o.name, o.arity))
	}
	row := 0
	for _, b := range bits {
		if b != 0 && b != 1 {
			panic(fmt.Sprintf("unexpected: argument %d for %q is not a bit", b, o.name))
		}
		row = row<<1 | b
	}
	return int(o.table[row])
}

// Equal reports whether two operators compute the same function, ignoring
// display names.
func (o Operator) Equal(other Operator) bool {
	return o.arity == other.arity && o.table == other.table
}

// The complete operator table: two nullary constants, the four unary
// operators, and all sixteen binary operators.
var (
	NF = Operator{name: "nf", arity: 0, table: [4]uint8{0}}
	NT = Operator{name: "nt", arity: 0, table: [4]uint8{1}}

	UF  = Operator{name: "uf", arity: 1, table: [4]uint8{0, 0}}
	UT  = Operator{name: "ut", arity: 1, table: [4]uint8{1, 1}}
	ID  = Operator{name: "id", arity: 1, table: [4]uint8{0, 1}}
	NOT = Operator{name: "not", arity: 1, table: [4]uint8{1, 0}}

	BF   = Operator{name: "bf", arity: 2, table: [4]uint8{0, 0, 0, 0}}
	BT   = Operator{name: "bt", arity: 2, table: [4]uint8{1, 1, 1, 1}}
	AND  = Operator{name: "and", arity: 2, table: [4]uint8{0, 0, 0, 1}}
	NAND = Operator{name: "nand", arity: 2, table: [4]uint8{1, 1, 1, 0}}
	OR   = Operator{name: "or", arity: 2, table: [4]uint8{0, 1, 1, 1}}
	NOR  = Operator{name: "nor", arity: 2, table: [4]uint8{1, 0, 0, 0}}
	XOR  = Operator{name: "xor", arity: 2, table: [4]uint8{0, 1, 1, 0}}
	XNOR = Operator{name: "xnor", arity: 2, table: [4]uint8{1, 0, 0, 1}}
	IMP  = Operator{name: "imp", arity: 2, table: [4]uint8{1, 1, 0, 1}}
	NIMP = Operator{name: "nimp", arity: 2, table: [4]uint8{0, 0, 1, 0}}
	IF   = Operator{name: "if", arity: 2, table: [4]uint8{1, 0, 1, 1}}
	NIF  = Operator{name: "nif", arity: 2, table: [4]uint8{0, 1, 0, 0}}
	FST  = Operator{name: "fst", arity: 2, table: [4]uint8{0, 0, 1, 1}}
	NFST = Operator{name: "nfst", arity: 2, table: [4]uint8{1, 1, 0, 0}}
	SND  = Operator{name: "snd", arity: 2, table: [4]uint8{0, 1, 0, 1}}
	NSND = Operator{name: "nsnd", arity: 2, table: [4]uint8{1, 0, 1, 0}}
)

// Nullary, Unary, and Binary list the operators of each arity; Every lists
// all of them, in arity order.
var (
	Nullary = []Operator{NF, NT}
	Unary   = []Operator{UF, UT, ID, NOT}
	Binary  = []Operator{
		BF, BT, AND, NAND, OR, NOR, XOR, XNOR,
		IMP, NIMP, IF, NIF, FST, NFST, SND, NSND,
	}
	Every = append(append(append([]Operator{}, Nullary...), Unary...), Binary...)
)

var byName = func() map[string]Operator {
	m := make(map[string]Operator, len(Every))
	for _, o := range Every {
		m[o.name] = o
	}
	return m
}()

// ByName resolves an operator by its display name.
func ByName(name string) (Operator, bool) {
	o, ok := byName[name]
	return o, ok
}
