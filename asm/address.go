// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Address is a 16-bit memory address.
type Address uint16

// ZEROPAGE_END is the first address that cannot use zero page encodings.
const ZEROPAGE_END = Address(0x0100)

// MEMORY_END is the last addressable byte.
const MEMORY_END = 0xffff

// IsZeroPage returns true if the address is encodable in a single byte.
func (addr Address) IsZeroPage() bool {
	return addr < ZEROPAGE_END
}

// Low returns the low byte of the address.
func (addr Address) Low() byte {
	return byte(addr & 0xff)
}

// High returns the high byte of the address.
func (addr Address) High() byte {
	return byte(addr >> 8)
}

func (addr Address) String() string {
	return fmt.Sprintf("$%04X", uint16(addr))
}

// AddressReference names an address, with an offset applied after lookup.
type AddressReference struct {
	Name   string
	Offset int
}

// Ref returns a reference to a name.
func Ref(name string) AddressReference {
	return AddressReference{Name: name}
}

// RefOffset returns a reference to a name plus an offset.
func RefOffset(name string, offset int) AddressReference {
	return AddressReference{Name: name, Offset: offset}
}

func (ref AddressReference) String() string {
	switch {
	case ref.Offset > 0:
		return fmt.Sprintf("%v+%d", ref.Name, ref.Offset)
	case ref.Offset < 0:
		return fmt.Sprintf("%v-%d", ref.Name, -ref.Offset)
	}
	return ref.Name
}

// Define is a named constant address.
type Define struct {
	Name    string
	Address Address
}

// AddressBook maps names to addresses.
//
// An AddressBook is filled by Resolve and is read-only afterwards.
type AddressBook struct {
	entries map[string]Address
}

func newAddressBook(defines []Define) *AddressBook {
	book := &AddressBook{
		entries: make(map[string]Address, len(defines)),
	}
	for _, define := range defines {
		book.entries[define.Name] = define.Address
	}
	return book
}

// Lookup returns the address of a name.
func (book *AddressBook) Lookup(name string) (addr Address, ok bool) {
	addr, ok = book.entries[name]
	return
}

// Address resolves a reference. The offset may not move the address outside
// of memory.
func (book *AddressBook) Address(ref AddressReference) (addr Address, err error) {
	base, ok := book.entries[ref.Name]
	if !ok {
		err = ErrAddressNameUnknown(ref.Name)
		return
	}

	value := int(base) + ref.Offset
	if value < 0 || value > MEMORY_END {
		err = &ErrAddressOutOfRange{Name: ref.String(), Value: value}
		return
	}

	addr = Address(value)
	return
}

// Len returns the number of names in the book.
func (book *AddressBook) Len() int {
	return len(book.entries)
}

// All iterates over all names in alphabetical order.
func (book *AddressBook) All() iter.Seq2[string, Address] {
	return func(yield func(name string, addr Address) bool) {
		for _, name := range slices.Sorted(maps.Keys(book.entries)) {
			if !yield(name, book.entries[name]) {
				return
			}
		}
	}
}
