package generator

import (
	"fmt"
	"strings"

	"github.com/ezrec/c64asm/asm"
)

// COMMENT_COLUMN aligns trailing comments in generated source.
const COMMENT_COLUMN = 25

// Dasm generates source for the dasm cross assembler.
//
// Labels and operands stay symbolic, so the application does not need to be
// laid out first.
type Dasm struct {
	lines []string
}

// Generate returns the dasm source of an application.
func (gen *Dasm) Generate(app *asm.Application) (source string, err error) {
	gen.lines = gen.lines[:0]

	gen.add("; --- Application: %v ---", strings.ToUpper(app.Name))
	gen.add("; NOTE: This file is generated, do not modify")
	gen.add("")
	gen.add("  processor 6502")
	gen.add("")

	for _, define := range app.Defines {
		gen.add("%v = %v", define.Name, defineText(define.Address))
	}
	if len(app.Defines) != 0 {
		gen.add("")
	}

	gen.add("  org %v", app.EntryPoint.String())

	for n := range app.Modules {
		err = gen.module(&app.Modules[n])
		if err != nil {
			return
		}
	}

	source = strings.Join(gen.lines, "\n") + "\n"
	return
}

func (gen *Dasm) add(format string, args ...any) {
	gen.lines = append(gen.lines, fmt.Sprintf(format, args...))
}

func (gen *Dasm) module(mod *asm.Module) (err error) {
	name := strings.ToUpper(mod.Name)

	gen.add("")
	gen.add("; --- Module begin: %v ---", name)
	err = gen.instructions(mod.Instructions)
	if err != nil {
		return
	}

	for _, fn := range mod.Functions {
		gen.add("")
		gen.add("; --- Function begin: %v ---", strings.ToUpper(fn.Name))
		for _, doc := range fn.Documentation {
			gen.add("; %v", doc)
		}
		err = gen.instructions(fn.Instructions)
		if err != nil {
			return
		}
		gen.add("; --- Function end: %v ---", strings.ToUpper(fn.Name))
	}

	gen.add("; --- Module end: %v ---", name)
	return
}

func (gen *Dasm) instructions(stream asm.Instructions) (err error) {
	for ins := range stream.All() {
		var text string
		switch op := ins.Operation.(type) {
		case asm.Label:
			gen.add("")
			text = string(op) + ":"
		case asm.Raw, asm.Mnemonic:
			text = "  " + instructionText(ins)
		default:
			err = &asm.ErrInternal{Operation: fmt.Sprintf("%T", ins.Operation), Mode: fmt.Sprintf("%T", ins.Mode)}
			return
		}

		if len(ins.Comments) == 0 {
			gen.add("%v", text)
			continue
		}

		gen.add("%-*v ; %v", COMMENT_COLUMN-1, text, ins.Comments[0])
		for _, comment := range ins.Comments[1:] {
			gen.add("  ; %v", comment)
		}
	}

	return
}

// defineText formats a define, using the short form for zero page.
func defineText(addr asm.Address) string {
	if addr.IsZeroPage() {
		return fmt.Sprintf("$%02X", uint16(addr))
	}
	return addr.String()
}

// instructionText formats an instruction with a symbolic operand.
func instructionText(ins *asm.Instruction) string {
	switch op := ins.Operation.(type) {
	case asm.Label:
		return string(op) + ":"
	case asm.Raw:
		values := make([]string, len(op))
		for n, value := range op {
			values[n] = fmt.Sprintf("$%02X", value)
		}
		return "byte " + strings.Join(values, ", ")
	case asm.Mnemonic:
		operand := operandText(ins.AddressMode())
		if len(operand) == 0 {
			return string(op)
		}
		return string(op) + " " + operand
	}

	return fmt.Sprintf("%T", ins.Operation)
}

func operandText(mode asm.AddressMode) string {
	switch m := mode.(type) {
	case asm.Implied, asm.Accumulator:
		return ""
	case asm.ImmediateByte:
		return fmt.Sprintf("#$%02X", m.Value)
	case asm.ImmediateLow:
		return "#<" + m.Ref.String()
	case asm.ImmediateHigh:
		return "#>" + m.Ref.String()
	case asm.Absolute:
		return m.Ref.String()
	case asm.AbsoluteX:
		return m.Ref.String() + ",x"
	case asm.AbsoluteY:
		return m.Ref.String() + ",y"
	case asm.Relative:
		return m.Ref.String()
	case asm.Indirect:
		return "(" + m.Ref.String() + ")"
	case asm.IndexedIndirect:
		return "(" + m.Ref.String() + ",x)"
	case asm.IndirectIndexed:
		return "(" + m.Ref.String() + "),y"
	}

	return fmt.Sprintf("%T", mode)
}
