package script

import (
	"errors"

	"github.com/ezrec/c64asm/translate"
)

var f = translate.From

var (
	ErrNoModule = errors.New(f("instruction outside of a module"))
)

// ErrAddressingMode is raised when a mnemonic is given more than one
// addressing mode.
type ErrAddressingMode string

func (err ErrAddressingMode) Error() string {
	return f("%v: more than one addressing mode", string(err))
}

// ErrOffsetUnused is raised when an offset is given to a mnemonic whose
// addressing mode has no address.
type ErrOffsetUnused string

func (err ErrOffsetUnused) Error() string {
	return f("%v: offset given without an address", string(err))
}

// ErrByteRange is raised when a byte value is outside 0..255.
type ErrByteRange string

func (err ErrByteRange) Error() string {
	return f("%v: byte value out of range", string(err))
}

// ErrAddressRange is raised when an address is outside 0..65535.
type ErrAddressRange string

func (err ErrAddressRange) Error() string {
	return f("%v: address out of range", string(err))
}
