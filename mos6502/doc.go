// Package mos6502 is the opcode table of the MOS 6502 as found in the
// Commodore 64.
//
// The table maps a mnemonic and an addressing mode onto the opcode byte. Modes
// the CPU does not provide for a mnemonic hold the UNSUPPORTED sentinel, which
// must never reach an output stream.
package mos6502
