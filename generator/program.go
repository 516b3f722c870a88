// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package generator

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/ezrec/c64asm/asm"
)

// PROGRAM_HEADER_SIZE is the size of the load address preceding the code.
const PROGRAM_HEADER_SIZE = 2

// Program generates .prg byte code: the little-endian load address followed
// by the code placed at that address.
type Program struct {
	Verbose bool // If set, logs every emitted instruction.

	output []byte
}

// Generate encodes a validated layout.
func (gen *Program) Generate(layout *asm.Layout) (output []byte, err error) {
	app := layout.Application

	if layout.Overflow() {
		err = &asm.ErrLayoutOverflow{End: int(app.EntryPoint) + layout.Size()}
		return
	}

	gen.output = make([]byte, 0, PROGRAM_HEADER_SIZE+layout.Size())
	gen.addU16(app.EntryPoint)

	for ins := range app.All() {
		addr := gen.current(app)
		start := len(gen.output)

		err = gen.instruction(layout, ins, addr)
		if err != nil {
			err = fmt.Errorf("%v: %w", addr, err)
			return
		}

		if gen.Verbose && len(gen.output) > start {
			log.Printf("%v: % X\t%v", addr, gen.output[start:], instructionText(ins))
		}
	}

	output = gen.output
	return
}

// current returns the address of the next emitted byte.
func (gen *Program) current(app *asm.Application) asm.Address {
	return asm.Address(int(app.EntryPoint) + len(gen.output) - PROGRAM_HEADER_SIZE)
}

func (gen *Program) instruction(layout *asm.Layout, ins *asm.Instruction, addr asm.Address) (err error) {
	switch op := ins.Operation.(type) {
	case asm.Label:
		// Labels are markers only.
		return
	case asm.Raw:
		gen.output = append(gen.output, op...)
		return
	}

	enc, err := asm.Select(ins, layout.Book)
	if err != nil {
		return
	}

	mode := ins.AddressMode()

	var operand asm.Address
	ref, has_ref := asm.Reference(mode)
	if has_ref {
		operand, err = layout.Book.Address(ref)
		if err != nil {
			return
		}
	}

	gen.addU8(enc.Opcode.Byte())

	switch mode := mode.(type) {
	case asm.Implied, asm.Accumulator:
	case asm.ImmediateByte:
		gen.addU8(mode.Value)
	case asm.ImmediateLow:
		gen.addU8(operand.Low())
	case asm.ImmediateHigh:
		gen.addU8(operand.High())
	case asm.Absolute, asm.AbsoluteX, asm.AbsoluteY:
		if enc.Size == 2 {
			gen.addU8(operand.Low())
		} else {
			gen.addU16(operand)
		}
	case asm.Relative:
		next := asm.Address(int(addr) + enc.Size)
		disp, ok := asm.Displacement(next, operand)
		if !ok {
			err = &asm.ErrBranchOutOfRange{
				Name:         ref.String(),
				Address:      addr,
				Target:       operand,
				Displacement: disp,
			}
			return
		}
		gen.addU8(byte(int8(disp)))
	case asm.Indirect:
		gen.addU16(operand)
	case asm.IndexedIndirect, asm.IndirectIndexed:
		if !operand.IsZeroPage() {
			err = &asm.ErrZeroPageRequired{Name: ref.String(), Address: operand}
			return
		}
		gen.addU8(operand.Low())
	default:
		err = &asm.ErrInternal{Operation: fmt.Sprint(ins.Operation), Mode: fmt.Sprintf("%T", mode)}
	}

	return
}

func (gen *Program) addU8(value byte) {
	gen.output = append(gen.output, value)
}

func (gen *Program) addU16(addr asm.Address) {
	gen.output = binary.LittleEndian.AppendUint16(gen.output, uint16(addr))
}
