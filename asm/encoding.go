package asm

import (
	"fmt"

	"github.com/ezrec/c64asm/mos6502"
)

// Encoding is the opcode selected for an instruction.
type Encoding struct {
	Column mos6502.Mode   // Opcode table column, after any zero page discount.
	Opcode mos6502.Opcode // UNSUPPORTED for labels and raw bytes.
	Size   int            // Encoded length in bytes.
}

// Select chooses the encoding of an instruction.
//
// The zero page form of an absolute mode is used only if the operand resolves
// to zero page and the opcode table provides the form. Operands not present
// in the book use the long form.
func Select(ins *Instruction, book *AddressBook) (enc Encoding, err error) {
	mode := ins.AddressMode()

	switch op := ins.Operation.(type) {
	case Label:
		enc = Encoding{Column: mode.Column(), Opcode: mos6502.UNSUPPORTED}
	case Raw:
		enc = Encoding{Column: mode.Column(), Opcode: mos6502.UNSUPPORTED, Size: len(op)}
	case Mnemonic:
		def, ok := mos6502.Lookup(string(op))
		if !ok {
			err = &ErrInternal{Operation: string(op), Mode: mode.Column().String()}
			return
		}

		column := mode.Column()
		if zp, ok := column.ZeroPage(); ok && def.Opcode(zp).Supported() {
			ref, _ := Reference(mode)
			addr, lookup_err := book.Address(ref)
			if lookup_err == nil && addr.IsZeroPage() {
				column = zp
			}
		}

		opcode := def.Opcode(column)
		if !opcode.Supported() {
			err = &ErrInternal{Operation: string(op), Mode: column.String()}
			return
		}

		enc = Encoding{Column: column, Opcode: opcode, Size: column.Size()}
	default:
		err = &ErrInternal{Operation: fmt.Sprintf("%T", ins.Operation), Mode: mode.Column().String()}
	}

	return
}

// Displacement returns the signed distance from the address following a
// branch to its target, and whether it fits in a signed byte.
func Displacement(next, target Address) (disp int, ok bool) {
	disp = int(target) - int(next)
	ok = disp >= -128 && disp <= 127
	return
}
