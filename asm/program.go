// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"

	"github.com/ezrec/c64asm/internal"
)

// DEFAULT_ENTRY_POINT is the load address of a BASIC launchable program.
const DEFAULT_ENTRY_POINT = Address(0x0800)

// Operation is what an instruction does: a Mnemonic, a Label or Raw bytes.
type Operation interface {
	isOperation()
}

// Mnemonic is a lower case opcode bearing operation, such as "lda".
type Mnemonic string

// Label binds a name to the address reached at this point of the stream.
type Label string

// Raw bytes are spliced into the stream verbatim.
type Raw []byte

func (Mnemonic) isOperation() {}
func (Label) isOperation()    {}
func (Raw) isOperation()      {}

// Instruction is an operation with its addressing mode.
type Instruction struct {
	Operation Operation
	Mode      AddressMode
	Comments  []string // Only used by listings.
}

// AddressMode returns the addressing mode, Implied if none was set.
func (ins *Instruction) AddressMode() AddressMode {
	if ins.Mode == nil {
		return Implied{}
	}
	return ins.Mode
}

// Instructions is an ordered instruction stream.
type Instructions []Instruction

// All iterates over pointers to the instructions of the stream.
func (stream Instructions) All() iter.Seq[*Instruction] {
	return func(yield func(*Instruction) bool) {
		for n := range stream {
			if !yield(&stream[n]) {
				return
			}
		}
	}
}

// Function is a replaceable public part of a module.
type Function struct {
	Name          string
	Documentation []string
	Instructions  Instructions
}

// Module groups shared instructions and functions.
type Module struct {
	Name         string
	Instructions Instructions
	Functions    []Function
}

// All iterates over the module's own instructions, followed by the
// instructions of each function in order.
func (mod *Module) All() iter.Seq[*Instruction] {
	seqs := []iter.Seq[*Instruction]{mod.Instructions.All()}
	for n := range mod.Functions {
		seqs = append(seqs, mod.Functions[n].Instructions.All())
	}
	return internal.IterSeqConcat(seqs...)
}

// Application is the root of a program.
type Application struct {
	Name       string
	EntryPoint Address // Load address of the first byte.
	Modules    []Module
	Defines    []Define
}

// NewApplication returns an empty application at the default entry point.
func NewApplication(name string) *Application {
	return &Application{
		Name:       name,
		EntryPoint: DEFAULT_ENTRY_POINT,
	}
}

// All iterates over every instruction in layout order.
func (app *Application) All() iter.Seq[*Instruction] {
	seqs := make([]iter.Seq[*Instruction], 0, len(app.Modules))
	for n := range app.Modules {
		seqs = append(seqs, app.Modules[n].All())
	}
	return internal.IterSeqConcat(seqs...)
}

// Labels iterates over every label declared in the application, in order.
func (app *Application) Labels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for ins := range app.All() {
			label, ok := ins.Operation.(Label)
			if !ok {
				continue
			}
			if !yield(string(label)) {
				return
			}
		}
	}
}
