// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"

	"github.com/ezrec/c64asm/internal"
)

// Placement is where an instruction was laid out.
type Placement struct {
	Address Address
	Size    int
}

// Layout is a resolved application. Its address book holds every define and
// every label.
type Layout struct {
	Application *Application
	Book        *AddressBook

	placements []Placement
	end        int
	overflow   bool
}

// Resolve lays out the application in a single pass.
//
// Labels are recorded as they are reached, so an absolute mode operand
// naming a later label is sized in its long form. Resolve never fails;
// problems are reported by Validate.
func Resolve(app *Application) (layout *Layout) {
	book := newAddressBook(app.Defines)
	counter := int(app.EntryPoint)

	layout = &Layout{
		Application: app,
		Book:        book,
	}

	for ins := range app.All() {
		if label, ok := ins.Operation.(Label); ok {
			if counter > MEMORY_END {
				layout.overflow = true
			}
			book.entries[string(label)] = Address(counter)
		}

		var size int
		enc, err := Select(ins, book)
		if err != nil {
			size = ins.AddressMode().Column().Size()
		} else {
			size = enc.Size
		}

		layout.placements = append(layout.placements, Placement{Address: Address(counter), Size: size})
		counter += size
	}

	layout.end = counter
	if counter > MEMORY_END+1 {
		layout.overflow = true
	}

	return
}

// All iterates over every instruction in layout order, with its placement.
func (layout *Layout) All() iter.Seq2[*Instruction, Placement] {
	return func(yield func(*Instruction, Placement) bool) {
		for n, ins := range internal.IterSeqIndex(layout.Application.All()) {
			if !yield(ins, layout.placements[n]) {
				return
			}
		}
	}
}

// Size returns the number of code bytes, excluding the load address.
func (layout *Layout) Size() int {
	return layout.end - int(layout.Application.EntryPoint)
}

// End returns the address following the last instruction.
func (layout *Layout) End() Address {
	return Address(layout.end)
}

// Overflow returns true if code or a label was placed past the last
// address. Addresses of such a layout have wrapped around.
func (layout *Layout) Overflow() bool {
	return layout.overflow
}

// Assemble resolves and validates an application.
func Assemble(app *Application) (layout *Layout, err error) {
	layout = Resolve(app)
	err = Validate(layout)
	return
}
