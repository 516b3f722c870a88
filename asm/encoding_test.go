package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/c64asm/mos6502"
)

func TestSelect(t *testing.T) {
	assert := assert.New(t)

	book := newAddressBook([]Define{
		{Name: "ZP", Address: 0x00fe},
		{Name: "HI", Address: 0xc000},
	})

	table := [](struct {
		Ins    Instruction
		Column mos6502.Mode
		Opcode mos6502.Opcode
		Size   int
	}){
		{op("lda", Absolute{Ref: Ref("ZP")}), mos6502.ZPG, 0xa5, 2},
		{op("lda", Absolute{Ref: Ref("HI")}), mos6502.ABS, 0xad, 3},
		{op("lda", Absolute{Ref: RefOffset("ZP", 1)}), mos6502.ZPG, 0xa5, 2},
		{op("lda", Absolute{Ref: RefOffset("ZP", 2)}), mos6502.ABS, 0xad, 3},
		{op("lda", AbsoluteX{Ref: Ref("ZP")}), mos6502.ZPX, 0xb5, 2},
		{op("lda", AbsoluteY{Ref: Ref("ZP")}), mos6502.ABY, 0xb9, 3},
		{op("ldx", AbsoluteY{Ref: Ref("ZP")}), mos6502.ZPY, 0xb6, 2},
		{op("ldx", AbsoluteY{Ref: Ref("HI")}), mos6502.ABY, 0xbe, 3},
		{op("jsr", Absolute{Ref: Ref("ZP")}), mos6502.ABS, 0x20, 3},
		{op("lda", Absolute{Ref: Ref("missing")}), mos6502.ABS, 0xad, 3},
		{op("bne", Relative{Ref: Ref("HI")}), mos6502.REL, 0xd0, 2},
		{op("rts", Implied{}), mos6502.IMP, 0x60, 1},
		{op("lsr", Accumulator{}), mos6502.ACC, 0x4a, 1},
		{op("sta", IndirectIndexed{Ref: Ref("ZP")}), mos6502.IDY, 0x91, 2},
		{Instruction{Operation: Raw{1, 2}}, mos6502.IMP, mos6502.UNSUPPORTED, 2},
		{label("here"), mos6502.IMP, mos6502.UNSUPPORTED, 0},
	}

	for _, tc := range table {
		enc, err := Select(&tc.Ins, book)
		assert.NoError(err)
		assert.Equal(Encoding{Column: tc.Column, Opcode: tc.Opcode, Size: tc.Size}, enc, "%+v", tc.Ins)
	}
}

func TestSelectInternal(t *testing.T) {
	assert := assert.New(t)

	book := newAddressBook([]Define{
		{Name: "ZP", Address: 0x00fe},
		{Name: "HI", Address: 0xc000},
	})

	table := []Instruction{
		op("xyz", Implied{}),
		op("sta", ImmediateByte{Value: 1}),
		op("stx", AbsoluteY{Ref: Ref("HI")}),
		op("lda", Relative{Ref: Ref("HI")}),
		{Operation: nil},
	}

	for _, ins := range table {
		_, err := Select(&ins, book)
		assert.Error(err)
		assert.True(errors.Is(err, ErrInternalCompiler), "%+v", ins)

		var internal *ErrInternal
		assert.True(errors.As(err, &internal))
		var unknown ErrAddressNameUnknown
		assert.False(errors.As(err, &unknown))
	}

	// Zero page only forms are fine with a zero page operand.
	ins := op("stx", AbsoluteY{Ref: Ref("ZP")})
	enc, err := Select(&ins, book)
	assert.NoError(err)
	assert.Equal(mos6502.Opcode(0x96), enc.Opcode)
}

func TestDisplacement(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Next, Target Address
		Disp         int
		Ok           bool
	}){
		{0x0802, 0x0802, 0, true},
		{0x0802, 0x0803, 1, true},
		{0x0802, 0x0800, -2, true},
		{0x0802, 0x0802 + 127, 127, true},
		{0x0802, 0x0802 + 128, 128, false},
		{0x0900, 0x0900 - 128, -128, true},
		{0x0900, 0x0900 - 129, -129, false},
	}

	for _, tc := range table {
		disp, ok := Displacement(tc.Next, tc.Target)
		assert.Equal(tc.Disp, disp, "%+v", tc)
		assert.Equal(tc.Ok, ok, "%+v", tc)
	}
}
