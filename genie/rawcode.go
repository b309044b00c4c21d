package genie

import (
	"fmt"
	"strings"
)

// RawCode is the raw patch that a Game Genie code describes: the value to
// write to an address, optionally only if the address currently holds the
// compare value. RawCode values are immutable and comparable.
type RawCode struct {
	system     System
	address    uint32
	value      uint32
	compare    uint32
	hasCompare bool
}

// NewRawCode returns a raw code without compare value for the system.
func NewRawCode(system System, address, value uint32) (RawCode, error) {
	con, err := lookup(system)
	if err != nil {
		return RawCode{}, err
	}
	if err := con.checkAddressValue(system, address, value); err != nil {
		return RawCode{}, err
	}

	return RawCode{
		system:  system,
		address: address,
		value:   value,
	}, nil
}

// NewRawCodeWithCompare returns a raw code with compare value for the system.
// Only systems that support compare values accept it.
func NewRawCodeWithCompare(system System, address, value, compare uint32) (RawCode, error) {
	con, err := lookup(system)
	if err != nil {
		return RawCode{}, err
	}
	if err := con.checkAddressValue(system, address, value); err != nil {
		return RawCode{}, err
	}
	if con.compareBits == 0 {
		return RawCode{}, fmt.Errorf("%w: %s codes do not support a compare value", ErrInvalidField, system)
	}
	if !fits(compare, con.compareBits) {
		return RawCode{}, fmt.Errorf("%w: compare 0x%X exceeds %d bits", ErrInvalidField, compare, con.compareBits)
	}

	return RawCode{
		system:     system,
		address:    address,
		value:      value,
		compare:    compare,
		hasCompare: true,
	}, nil
}

func (con *console) checkAddressValue(system System, address, value uint32) error {
	if address < con.addressBase || address > con.addressMax() {
		return fmt.Errorf("%w: address 0x%X is outside of the %s range 0x%X-0x%X",
			ErrInvalidField, address, system, con.addressBase, con.addressMax())
	}
	if !fits(value, con.valueBits) {
		return fmt.Errorf("%w: value 0x%X exceeds %d bits", ErrInvalidField, value, con.valueBits)
	}
	return nil
}

// System returns the system of the code.
func (r RawCode) System() System {
	return r.system
}

// Address returns the patched address.
func (r RawCode) Address() uint32 {
	return r.address
}

// Value returns the value that is written to the address.
func (r RawCode) Value() uint32 {
	return r.value
}

// Compare returns the compare value, it is only meaningful if HasCompare
// returns true.
func (r RawCode) Compare() uint32 {
	return r.compare
}

// HasCompare returns whether the patch is conditional on a compare value.
func (r RawCode) HasCompare() bool {
	return r.hasCompare
}

// String returns the code as address:value[:compare] in hex, using the
// display widths of the system.
func (r RawCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%0*X:%0*X", r.system.AddressDigits(), r.address, r.system.ValueDigits(), r.value)
	if r.hasCompare {
		fmt.Fprintf(&sb, ":%0*X", r.system.ValueDigits(), r.compare)
	}
	return sb.String()
}

// field returns the raw bit that a code bit is sourced from.
func (r RawCode) field(src source, addressBase uint32) uint64 {
	switch src.field {
	case constOne:
		return 1
	case fieldAddress:
		return uint64(bit(r.address-addressBase, src.bit))
	case fieldValue:
		return uint64(bit(r.value, src.bit))
	case fieldCompare:
		return uint64(bit(r.compare, src.bit))
	default:
		return 0
	}
}
