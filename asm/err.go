package asm

import (
	"errors"
	"fmt"

	"github.com/ezrec/c64asm/translate"
)

var f = translate.From

var (
	// ErrInternalCompiler is the root of all errors caused by an instruction
	// the opcode table cannot encode.
	ErrInternalCompiler = errors.New(f("internal compiler error"))
)

// ErrAddressNameUnknown is a reference to a name absent from the address book.
type ErrAddressNameUnknown string

func (err ErrAddressNameUnknown) Error() string {
	return f("address name %v unknown", string(err))
}

// ErrAddressNameDuplicate is a name declared more than once.
type ErrAddressNameDuplicate string

func (err ErrAddressNameDuplicate) Error() string {
	return f("address name %v duplicated", string(err))
}

// ErrBranchOutOfRange is a relative branch whose target is beyond a signed byte.
type ErrBranchOutOfRange struct {
	Name         string  // Target reference.
	Address      Address // Address of the branch instruction.
	Target       Address // Resolved target.
	Displacement int     // Displacement that does not fit.
}

func (err *ErrBranchOutOfRange) Error() string {
	return f("branch at %v to %v (%v) out of range by displacement %v",
		err.Address.String(), err.Name, err.Target.String(), err.Displacement)
}

// ErrLayoutUnstable is an instruction whose size changed after its operand
// was resolved, which happens to forward references into zero page.
type ErrLayoutUnstable struct {
	Name    string  // Operand reference.
	Address Address // Address of the instruction.
	Size    int     // Size assumed during layout.
	Want    int     // Size with the final address book.
}

func (err *ErrLayoutUnstable) Error() string {
	return f("instruction at %v referencing %v laid out as %v bytes, encodes as %v bytes",
		err.Address.String(), err.Name, err.Size, err.Want)
}

// ErrZeroPageRequired is an indexed indirect or indirect indexed operand
// that does not resolve to zero page.
type ErrZeroPageRequired struct {
	Name    string  // Operand reference.
	Address Address // Resolved operand.
}

func (err *ErrZeroPageRequired) Error() string {
	return f("operand %v (%v) must be in zero page", err.Name, err.Address.String())
}

// ErrAddressOutOfRange is a reference whose offset moves it outside of
// memory.
type ErrAddressOutOfRange struct {
	Name  string // Reference, with its offset.
	Value int    // Unwrapped address.
}

func (err *ErrAddressOutOfRange) Error() string {
	return f("address %v (%v) outside of memory", err.Name, hexValue(err.Value))
}

// ErrLayoutOverflow is a layout that runs past the end of memory.
type ErrLayoutOverflow struct {
	End int // First address after the layout.
}

func (err *ErrLayoutOverflow) Error() string {
	return f("layout ends at %v, past the end of memory", hexValue(err.End))
}

func hexValue(value int) string {
	if value < 0 {
		return fmt.Sprintf("-$%X", -value)
	}
	return fmt.Sprintf("$%X", value)
}

// ErrInternal is an instruction the opcode table cannot encode.
type ErrInternal struct {
	Operation string
	Mode      string
}

func (err *ErrInternal) Error() string {
	return f("%v: %v %v", ErrInternalCompiler.Error(), err.Operation, err.Mode)
}

func (err *ErrInternal) Is(target error) bool {
	return target == ErrInternalCompiler
}
