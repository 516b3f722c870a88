package asm

import (
	"fmt"

	"github.com/ezrec/c64asm/mos6502"
)

// AddressMode is the closed set of 6502 addressing modes, each carrying only
// the operand it needs.
type AddressMode interface {
	// Column is the opcode table column of the long form of the mode.
	Column() mos6502.Mode
	isAddressMode()
}

// Implied mode has no operand.
type Implied struct{}

// Accumulator mode operates on the A register.
type Accumulator struct{}

// ImmediateByte is a literal byte operand.
type ImmediateByte struct {
	Value byte
}

// ImmediateLow is the low byte of a resolved address.
type ImmediateLow struct {
	Ref AddressReference
}

// ImmediateHigh is the high byte of a resolved address.
type ImmediateHigh struct {
	Ref AddressReference
}

// Absolute addresses memory, discounted to zero page when possible.
type Absolute struct {
	Ref AddressReference
}

// AbsoluteX addresses memory indexed by X.
type AbsoluteX struct {
	Ref AddressReference
}

// AbsoluteY addresses memory indexed by Y.
type AbsoluteY struct {
	Ref AddressReference
}

// Relative is a branch target.
type Relative struct {
	Ref AddressReference
}

// Indirect jumps through a pointer.
type Indirect struct {
	Ref AddressReference
}

// IndexedIndirect is (zp,x).
type IndexedIndirect struct {
	Ref AddressReference
}

// IndirectIndexed is (zp),y.
type IndirectIndexed struct {
	Ref AddressReference
}

func (Implied) Column() mos6502.Mode         { return mos6502.IMP }
func (Accumulator) Column() mos6502.Mode     { return mos6502.ACC }
func (ImmediateByte) Column() mos6502.Mode   { return mos6502.IMM }
func (ImmediateLow) Column() mos6502.Mode    { return mos6502.IMM }
func (ImmediateHigh) Column() mos6502.Mode   { return mos6502.IMM }
func (Absolute) Column() mos6502.Mode        { return mos6502.ABS }
func (AbsoluteX) Column() mos6502.Mode       { return mos6502.ABX }
func (AbsoluteY) Column() mos6502.Mode       { return mos6502.ABY }
func (Relative) Column() mos6502.Mode        { return mos6502.REL }
func (Indirect) Column() mos6502.Mode        { return mos6502.IND }
func (IndexedIndirect) Column() mos6502.Mode { return mos6502.IDX }
func (IndirectIndexed) Column() mos6502.Mode { return mos6502.IDY }

func (Implied) isAddressMode()         {}
func (Accumulator) isAddressMode()     {}
func (ImmediateByte) isAddressMode()   {}
func (ImmediateLow) isAddressMode()    {}
func (ImmediateHigh) isAddressMode()   {}
func (Absolute) isAddressMode()        {}
func (AbsoluteX) isAddressMode()       {}
func (AbsoluteY) isAddressMode()       {}
func (Relative) isAddressMode()        {}
func (Indirect) isAddressMode()        {}
func (IndexedIndirect) isAddressMode() {}
func (IndirectIndexed) isAddressMode() {}

// Reference returns the address reference carried by a mode, if any.
func Reference(mode AddressMode) (ref AddressReference, ok bool) {
	switch m := mode.(type) {
	case nil, Implied, Accumulator, ImmediateByte:
		return
	case ImmediateLow:
		return m.Ref, true
	case ImmediateHigh:
		return m.Ref, true
	case Absolute:
		return m.Ref, true
	case AbsoluteX:
		return m.Ref, true
	case AbsoluteY:
		return m.Ref, true
	case Relative:
		return m.Ref, true
	case Indirect:
		return m.Ref, true
	case IndexedIndirect:
		return m.Ref, true
	case IndirectIndexed:
		return m.Ref, true
	default:
		panic(fmt.Sprintf("asm: unhandled address mode %T", mode))
	}
}
