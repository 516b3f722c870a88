package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNamesExist(t *testing.T) {
	assert := assert.New(t)

	app := singleModule(nil, op("jmp", Absolute{Ref: Ref("unknown_label")}))
	err := Validate(Resolve(app))

	var unknown ErrAddressNameUnknown
	assert.True(errors.As(err, &unknown))
	assert.Equal("unknown_label", string(unknown))

	app = singleModule(nil, op("jmp", Absolute{Ref: Ref("known_label")}), label("known_label"))
	assert.NoError(Validate(Resolve(app)))
}

func TestValidateNamesExistReportedOnce(t *testing.T) {
	assert := assert.New(t)

	app := singleModule(nil,
		op("lda", ImmediateLow{Ref: Ref("a")}),
		op("lda", ImmediateHigh{Ref: Ref("a")}),
		op("lda", Absolute{Ref: Ref("b")}),
	)
	errs := validateNamesExist(Resolve(app))
	assert.Equal([]error{ErrAddressNameUnknown("a"), ErrAddressNameUnknown("b")}, errs)
}

func TestValidateNamesUnique(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Name string
		App  *Application
		Dup  string
	}){
		{
			Name: "unique",
			App:  singleModule(nil, label("unique_label_a"), label("unique_label_b")),
		},
		{
			Name: "unique modules",
			App: &Application{Modules: []Module{
				{Instructions: Instructions{label("unique_label_a")}},
				{Instructions: Instructions{label("unique_label_b")}},
			}},
		},
		{
			Name: "one module",
			App:  singleModule(nil, label("not_unique_label"), label("not_unique_label")),
			Dup:  "not_unique_label",
		},
		{
			Name: "module and function",
			App: &Application{Modules: []Module{{
				Instructions: Instructions{label("not_unique_label")},
				Functions:    []Function{{Instructions: Instructions{label("not_unique_label")}}},
			}}},
			Dup: "not_unique_label",
		},
		{
			Name: "modules",
			App: &Application{Modules: []Module{
				{Instructions: Instructions{label("not_unique_label")}},
				{Instructions: Instructions{label("not_unique_label")}},
			}},
			Dup: "not_unique_label",
		},
		{
			Name: "label shadows define",
			App:  singleModule([]Define{{Name: "BORDER", Address: 0xd020}}, label("BORDER")),
			Dup:  "BORDER",
		},
		{
			Name: "defines",
			App:  singleModule([]Define{{Name: "X", Address: 1}, {Name: "X", Address: 2}}),
			Dup:  "X",
		},
	}

	for _, tc := range table {
		err := Validate(Resolve(tc.App))
		if tc.Dup == "" {
			assert.NoError(err, tc.Name)
			continue
		}
		var dup ErrAddressNameDuplicate
		assert.True(errors.As(err, &dup), tc.Name)
		assert.Equal(tc.Dup, string(dup), tc.Name)
	}
}

func TestValidateNamesUniqueReportedOnce(t *testing.T) {
	assert := assert.New(t)

	app := singleModule(nil, label("x"), label("x"), label("x"))
	errs := validateNamesUnique(app)
	assert.Equal([]error{ErrAddressNameDuplicate("x")}, errs)
}

func TestValidateUnknownAndDuplicate(t *testing.T) {
	assert := assert.New(t)

	app := singleModule(nil,
		label("twice"),
		op("jmp", Absolute{Ref: Ref("nowhere")}),
		label("twice"),
	)

	err := Validate(Resolve(app))
	assert.Error(err)

	// Both are reported, the unknown name first.
	var unknown ErrAddressNameUnknown
	assert.True(errors.As(err, &unknown))
	assert.Equal("nowhere", string(unknown))

	var dup ErrAddressNameDuplicate
	assert.True(errors.As(err, &dup))
	assert.Equal("twice", string(dup))

	joined, ok := err.(interface{ Unwrap() []error })
	assert.True(ok)
	errs := joined.Unwrap()
	assert.Equal(2, len(errs))
	assert.Equal(ErrAddressNameUnknown("nowhere"), errs[0])
	assert.Equal(ErrAddressNameDuplicate("twice"), errs[1])
}

func filler(count int) (stream Instructions) {
	for range count {
		stream = append(stream, op("nop", Implied{}))
	}
	return
}

func TestValidateBranchRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Name   string
		Stream Instructions
		Disp   int
	}){
		{
			Name:   "forward 127",
			Stream: append(append(Instructions{op("bne", Relative{Ref: Ref("target")})}, filler(127)...), label("target")),
		},
		{
			Name:   "forward 128",
			Stream: append(append(Instructions{op("bne", Relative{Ref: Ref("target")})}, filler(128)...), label("target")),
			Disp:   128,
		},
		{
			Name:   "backward 128",
			Stream: append(append(Instructions{label("target")}, filler(126)...), op("bne", Relative{Ref: Ref("target")})),
		},
		{
			Name:   "backward 129",
			Stream: append(append(Instructions{label("target")}, filler(127)...), op("bne", Relative{Ref: Ref("target")})),
			Disp:   -129,
		},
		{
			Name:   "unknown target",
			Stream: Instructions{op("bne", Relative{Ref: Ref("missing")})},
		},
	}

	for _, tc := range table {
		layout := Resolve(singleModule(nil, tc.Stream...))
		errs := validateBranchRange(layout)
		if tc.Disp == 0 {
			assert.Empty(errs, tc.Name)
			continue
		}
		if !assert.Equal(1, len(errs), tc.Name) {
			continue
		}
		var oor *ErrBranchOutOfRange
		assert.True(errors.As(errs[0], &oor), tc.Name)
		assert.Equal(tc.Disp, oor.Displacement, tc.Name)
		assert.Equal("target", oor.Name, tc.Name)

		assert.True(errors.As(Validate(layout), &oor), tc.Name)
	}
}

func TestValidateLayoutStable(t *testing.T) {
	assert := assert.New(t)

	// With code in zero page, a forward absolute reference is laid out
	// long but would encode short.
	app := singleModule(nil,
		op("lda", Absolute{Ref: Ref("data")}),
		op("rts", Implied{}),
		label("data"),
	)
	app.EntryPoint = 0x0010

	err := Validate(Resolve(app))
	var unstable *ErrLayoutUnstable
	assert.True(errors.As(err, &unstable))
	assert.Equal("data", unstable.Name)
	assert.Equal(Address(0x0010), unstable.Address)
	assert.Equal(3, unstable.Size)
	assert.Equal(2, unstable.Want)

	// Backward references in zero page are stable.
	app = singleModule(nil,
		label("data"),
		op("lda", Absolute{Ref: Ref("data")}),
		op("rts", Implied{}),
	)
	app.EntryPoint = 0x0010
	layout := Resolve(app)
	assert.NoError(Validate(layout))
	assert.Equal(3, layout.Size())

	// Forward references above zero page are stable.
	app = singleModule(nil,
		op("lda", Absolute{Ref: Ref("data")}),
		op("rts", Implied{}),
		label("data"),
	)
	assert.NoError(Validate(Resolve(app)))
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	app := singleModule([]Define{{Name: "VIC2_BORDER_COLOR", Address: 0xd020}},
		op("lda", ImmediateByte{Value: 0}),
		op("sta", Absolute{Ref: Ref("VIC2_BORDER_COLOR")}),
		op("rts", Implied{}),
	)

	layout, err := Assemble(app)
	assert.NoError(err)
	assert.Equal(6, layout.Size())

	app.Modules[0].Instructions = append(app.Modules[0].Instructions, op("jmp", Absolute{Ref: Ref("gone")}))
	_, err = Assemble(app)
	assert.Error(err)
}

func TestValidateZeroPageOperands(t *testing.T) {
	assert := assert.New(t)

	defines := []Define{
		{Name: "PTR", Address: 0x00fb},
		{Name: "SCREEN", Address: 0x0400},
	}

	app := singleModule(defines,
		op("lda", IndexedIndirect{Ref: Ref("PTR")}),
		op("sta", IndirectIndexed{Ref: RefOffset("PTR", 4)}),
	)
	assert.NoError(Validate(Resolve(app)))

	app = singleModule(defines,
		op("lda", IndexedIndirect{Ref: Ref("SCREEN")}),
		op("sta", IndirectIndexed{Ref: Ref("SCREEN")}),
		op("sta", IndirectIndexed{Ref: RefOffset("PTR", 5)}),
	)
	errs := validateZeroPageOperands(Resolve(app))
	assert.Equal([]error{
		&ErrZeroPageRequired{Name: "SCREEN", Address: 0x0400},
		&ErrZeroPageRequired{Name: "SCREEN", Address: 0x0400},
		&ErrZeroPageRequired{Name: "PTR+5", Address: 0x0100},
	}, errs)

	var zp *ErrZeroPageRequired
	assert.True(errors.As(Validate(Resolve(app)), &zp))
}

func TestValidateMemoryRange(t *testing.T) {
	assert := assert.New(t)

	// Code running past the last address wraps its labels into zero page.
	app := singleModule(nil,
		Instruction{Operation: Raw{0xea, 0xea, 0xea}},
		label("x"),
		op("lda", Absolute{Ref: Ref("x")}),
	)
	app.EntryPoint = 0xfffe

	layout := Resolve(app)
	assert.True(layout.Overflow())

	var overflow *ErrLayoutOverflow
	if assert.True(errors.As(Validate(layout), &overflow)) {
		assert.Equal(0x10003, overflow.End)
	}

	// A label right after the last byte is outside memory.
	app = singleModule(nil, op("nop", Implied{}), label("end"))
	app.EntryPoint = 0xffff
	assert.True(Resolve(app).Overflow())

	// Filling memory exactly is fine.
	app = singleModule(nil, op("nop", Implied{}))
	app.EntryPoint = 0xffff
	layout = Resolve(app)
	assert.False(layout.Overflow())
	assert.NoError(Validate(layout))

	// Offsets may not leave memory.
	app = singleModule([]Define{{Name: "TOP", Address: 0xfff0}, {Name: "BOTTOM", Address: 0x0002}},
		op("lda", Absolute{Ref: RefOffset("TOP", 0x10)}),
		op("lda", Absolute{Ref: RefOffset("BOTTOM", -3)}),
		op("lda", Absolute{Ref: RefOffset("TOP", 0x0f)}),
	)
	errs := validateMemoryRange(Resolve(app))
	assert.Equal([]error{
		&ErrAddressOutOfRange{Name: "TOP+16", Value: 0x10000},
		&ErrAddressOutOfRange{Name: "BOTTOM-3", Value: -1},
	}, errs)
}
