// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mos6502

import (
	"iter"
	"maps"
	"slices"
)

//go:generate go tool stringer -linecomment -type=Mode

// Mode is an opcode table addressing mode column.
type Mode int

const (
	IMP = Mode(0)  // imp
	IMM = Mode(1)  // imm
	ACC = Mode(2)  // acc
	ZPG = Mode(3)  // zpg
	ZPX = Mode(4)  // zpx
	ZPY = Mode(5)  // zpy
	ABS = Mode(6)  // abs
	ABX = Mode(7)  // abx
	ABY = Mode(8)  // aby
	REL = Mode(9)  // rel
	IND = Mode(10) // ind
	IDX = Mode(11) // idx
	IDY = Mode(12) // idy

	MODE_COUNT = 13
)

// ZeroPage returns the zero page column that discounts an absolute column,
// or false if the mode has no discounted form.
func (mode Mode) ZeroPage() (zp Mode, ok bool) {
	switch mode {
	case ABS:
		return ZPG, true
	case ABX:
		return ZPX, true
	case ABY:
		return ZPY, true
	}
	return mode, false
}

// Size is the encoded length in bytes of an instruction in this mode.
func (mode Mode) Size() int {
	switch mode {
	case IMP, ACC:
		return 1
	case ABS, ABX, ABY, IND:
		return 3
	default:
		return 2
	}
}

// Opcode is an opcode byte, or UNSUPPORTED.
type Opcode int

// UNSUPPORTED marks a mode that a mnemonic cannot be encoded with.
const UNSUPPORTED = Opcode(-1)

// Supported returns true if the opcode exists.
func (op Opcode) Supported() bool {
	return op >= 0 && op <= 0xff
}

// Byte returns the opcode byte.
func (op Opcode) Byte() byte {
	return byte(op)
}

// Instruction is a row of the opcode table.
type Instruction struct {
	Mnemonic string
	Opcodes  [MODE_COUNT]Opcode
}

// Opcode returns the opcode for the mode, or UNSUPPORTED.
func (ins *Instruction) Opcode(mode Mode) Opcode {
	if ins == nil || mode < 0 || mode >= MODE_COUNT {
		return UNSUPPORTED
	}
	return ins.Opcodes[mode]
}

// Branch returns true if the instruction is a relative branch.
func (ins *Instruction) Branch() bool {
	return ins.Opcode(REL).Supported()
}

const __ = UNSUPPORTED

// Official NMOS 6502 instruction set.
var instructionSet = map[string][MODE_COUNT]Opcode{
	//      imp   imm   acc   zpg   zpx   zpy   abs   abx   aby   rel   ind   idx   idy
	"adc": {__, 0x69, __, 0x65, 0x75, __, 0x6d, 0x7d, 0x79, __, __, 0x61, 0x71},
	"and": {__, 0x29, __, 0x25, 0x35, __, 0x2d, 0x3d, 0x39, __, __, 0x21, 0x31},
	"asl": {__, __, 0x0a, 0x06, 0x16, __, 0x0e, 0x1e, __, __, __, __, __},
	"bcc": {__, __, __, __, __, __, __, __, __, 0x90, __, __, __},
	"bcs": {__, __, __, __, __, __, __, __, __, 0xb0, __, __, __},
	"beq": {__, __, __, __, __, __, __, __, __, 0xf0, __, __, __},
	"bit": {__, __, __, 0x24, __, __, 0x2c, __, __, __, __, __, __},
	"bmi": {__, __, __, __, __, __, __, __, __, 0x30, __, __, __},
	"bne": {__, __, __, __, __, __, __, __, __, 0xd0, __, __, __},
	"bpl": {__, __, __, __, __, __, __, __, __, 0x10, __, __, __},
	"brk": {0x00, __, __, __, __, __, __, __, __, __, __, __, __},
	"bvc": {__, __, __, __, __, __, __, __, __, 0x50, __, __, __},
	"bvs": {__, __, __, __, __, __, __, __, __, 0x70, __, __, __},
	"clc": {0x18, __, __, __, __, __, __, __, __, __, __, __, __},
	"cld": {0xd8, __, __, __, __, __, __, __, __, __, __, __, __},
	"cli": {0x58, __, __, __, __, __, __, __, __, __, __, __, __},
	"clv": {0xb8, __, __, __, __, __, __, __, __, __, __, __, __},
	"cmp": {__, 0xc9, __, 0xc5, 0xd5, __, 0xcd, 0xdd, 0xd9, __, __, 0xc1, 0xd1},
	"cpx": {__, 0xe0, __, 0xe4, __, __, 0xec, __, __, __, __, __, __},
	"cpy": {__, 0xc0, __, 0xc4, __, __, 0xcc, __, __, __, __, __, __},
	"dec": {__, __, __, 0xc6, 0xd6, __, 0xce, 0xde, __, __, __, __, __},
	"dex": {0xca, __, __, __, __, __, __, __, __, __, __, __, __},
	"dey": {0x88, __, __, __, __, __, __, __, __, __, __, __, __},
	"eor": {__, 0x49, __, 0x45, 0x55, __, 0x4d, 0x5d, 0x59, __, __, 0x41, 0x51},
	"inc": {__, __, __, 0xe6, 0xf6, __, 0xee, 0xfe, __, __, __, __, __},
	"inx": {0xe8, __, __, __, __, __, __, __, __, __, __, __, __},
	"iny": {0xc8, __, __, __, __, __, __, __, __, __, __, __, __},
	"jmp": {__, __, __, __, __, __, 0x4c, __, __, __, 0x6c, __, __},
	"jsr": {__, __, __, __, __, __, 0x20, __, __, __, __, __, __},
	"lda": {__, 0xa9, __, 0xa5, 0xb5, __, 0xad, 0xbd, 0xb9, __, __, 0xa1, 0xb1},
	"ldx": {__, 0xa2, __, 0xa6, __, 0xb6, 0xae, __, 0xbe, __, __, __, __},
	"ldy": {__, 0xa0, __, 0xa4, 0xb4, __, 0xac, 0xbc, __, __, __, __, __},
	"lsr": {__, __, 0x4a, 0x46, 0x56, __, 0x4e, 0x5e, __, __, __, __, __},
	"nop": {0xea, __, __, __, __, __, __, __, __, __, __, __, __},
	"ora": {__, 0x09, __, 0x05, 0x15, __, 0x0d, 0x1d, 0x19, __, __, 0x01, 0x11},
	"pha": {0x48, __, __, __, __, __, __, __, __, __, __, __, __},
	"php": {0x08, __, __, __, __, __, __, __, __, __, __, __, __},
	"pla": {0x68, __, __, __, __, __, __, __, __, __, __, __, __},
	"plp": {0x28, __, __, __, __, __, __, __, __, __, __, __, __},
	"rol": {__, __, 0x2a, 0x26, 0x36, __, 0x2e, 0x3e, __, __, __, __, __},
	"ror": {__, __, 0x6a, 0x66, 0x76, __, 0x6e, 0x7e, __, __, __, __, __},
	"rti": {0x40, __, __, __, __, __, __, __, __, __, __, __, __},
	"rts": {0x60, __, __, __, __, __, __, __, __, __, __, __, __},
	"sbc": {__, 0xe9, __, 0xe5, 0xf5, __, 0xed, 0xfd, 0xf9, __, __, 0xe1, 0xf1},
	"sec": {0x38, __, __, __, __, __, __, __, __, __, __, __, __},
	"sed": {0xf8, __, __, __, __, __, __, __, __, __, __, __, __},
	"sei": {0x78, __, __, __, __, __, __, __, __, __, __, __, __},
	"sta": {__, __, __, 0x85, 0x95, __, 0x8d, 0x9d, 0x99, __, __, 0x81, 0x91},
	"stx": {__, __, __, 0x86, __, 0x96, 0x8e, __, __, __, __, __, __},
	"sty": {__, __, __, 0x84, 0x94, __, 0x8c, __, __, __, __, __, __},
	"tax": {0xaa, __, __, __, __, __, __, __, __, __, __, __, __},
	"tay": {0xa8, __, __, __, __, __, __, __, __, __, __, __, __},
	"tsx": {0xba, __, __, __, __, __, __, __, __, __, __, __, __},
	"txa": {0x8a, __, __, __, __, __, __, __, __, __, __, __, __},
	"txs": {0x9a, __, __, __, __, __, __, __, __, __, __, __, __},
	"tya": {0x98, __, __, __, __, __, __, __, __, __, __, __, __},
}

// Lookup returns the table row for a lower case mnemonic.
func Lookup(mnemonic string) (ins *Instruction, ok bool) {
	opcodes, ok := instructionSet[mnemonic]
	if !ok {
		return
	}

	ins = &Instruction{Mnemonic: mnemonic, Opcodes: opcodes}
	return
}

// Mnemonics returns all mnemonics in alphabetical order.
func Mnemonics() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(instructionSet)))
}
