package genie

import "golang.org/x/exp/constraints"

// field names the part of a raw patch that a code bit is sourced from.
type field uint8

const (
	constZero field = iota
	constOne
	fieldAddress
	fieldValue
	fieldCompare
)

// source describes where a single code bit comes from: a bit of a raw
// patch field or a constant.
type source struct {
	field field
	bit   uint8
}

func a(n uint8) source { return source{field: fieldAddress, bit: n} }
func v(n uint8) source { return source{field: fieldValue, bit: n} }
func c(n uint8) source { return source{field: fieldCompare, bit: n} }

var (
	zero = source{field: constZero}
	one  = source{field: constOne}
)

func (s source) constant() bool {
	return s.field == constZero || s.field == constOne
}

// mask returns a value with the lowest width bits set.
func mask[T constraints.Unsigned](width uint) T {
	return T(1)<<width - 1
}

// fits returns whether the value can be represented in width bits.
func fits[T constraints.Unsigned](value T, width uint) bool {
	return value&^mask[T](width) == 0
}

func bit[T constraints.Unsigned](value T, n uint8) T {
	return value >> n & 1
}

func hexDigits(value uint32) int {
	digits := 1
	for value > 0xF {
		value >>= 4
		digits++
	}
	return digits
}
