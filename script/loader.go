// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/c64asm/asm"
	"github.com/ezrec/c64asm/builder"
	"github.com/ezrec/c64asm/mos6502"
)

// Loader executes Starlark scripts that describe an application.
type Loader struct {
	Verbose bool // If set, logs every builtin call and script print.

	app     *builder.ApplicationBuilder
	modules []*moduleState
	stream  *builder.InstructionBuilder
}

type moduleState struct {
	name      string
	stream    *builder.InstructionBuilder
	functions []*functionState
}

type functionState struct {
	name   string
	doc    []string
	stream *builder.InstructionBuilder
}

// LoadFile loads the script at path.
func (ld *Loader) LoadFile(path string) (app *asm.Application, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "script %v", path)
		return
	}

	return ld.Load(path, src)
}

// Load executes a script. name is used in error messages, src is a string,
// []byte or io.Reader.
func (ld *Loader) Load(name string, src any) (app *asm.Application, err error) {
	ld.app = builder.NewApplication()
	ld.modules = nil
	ld.stream = nil

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if ld.Verbose {
				log.Printf("%v: %v", name, msg)
			}
		},
	}
	opts := syntax.FileOptions{}

	_, err = starlark.ExecFileOptions(&opts, thread, name, src, ld.predeclared())
	if err != nil {
		err = errors.Wrapf(err, "script %v", name)
		return
	}

	for _, mod := range ld.modules {
		mb := builder.NewModule().Name(mod.name).Instructions(mod.stream.Build())
		for _, fn := range mod.functions {
			mb.Function(builder.NewFunction().
				Name(fn.name).
				Doc(fn.doc...).
				Instructions(fn.stream.Build()).
				Build())
		}
		ld.app.Module(mb.Build())
	}

	app = ld.app.Build()
	return
}

type builtinFunc func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func (ld *Loader) predeclared() starlark.StringDict {
	dict := starlark.StringDict{}

	add := func(name string, impl builtinFunc) {
		dict[name] = starlark.NewBuiltin(name, ld.logged(impl))
	}

	add("name", ld.builtinName)
	add("entry_point", ld.builtinEntryPoint)
	add("define", ld.builtinDefine)
	add("include_vic2_defines", ld.builtinIncludeVic2Defines)
	add("include_sid_defines", ld.builtinIncludeSidDefines)
	add("module", ld.builtinModule)
	add("function", ld.builtinFunction)
	add("label", ld.builtinLabel)
	add("raw", ld.builtinRaw)
	add("basic_header", ld.builtinBasicHeader)
	add("comment", ld.builtinComment)

	for mnemonic := range mos6502.Mnemonics() {
		ins, _ := mos6502.Lookup(mnemonic)
		name := mnemonic
		if name == "and" {
			name = "and_"
		}
		dict[name] = starlark.NewBuiltin(name, ld.logged(ld.mnemonic(ins)))
	}

	return dict
}

func (ld *Loader) logged(impl builtinFunc) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if ld.Verbose {
			log.Printf("%v: %v%v %v", thread.CallFrame(1).Pos, fn.Name(), args, kwargs)
		}
		return impl(thread, fn, args, kwargs)
	}
}

func (ld *Loader) builtinName(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name)
	if err != nil {
		return nil, err
	}

	ld.app.Name(name)
	return starlark.None, nil
}

func (ld *Loader) builtinEntryPoint(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value int
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value)
	if err != nil {
		return nil, err
	}

	addr, err := toAddress(fn.Name(), value)
	if err != nil {
		return nil, err
	}

	ld.app.EntryPoint(addr)
	return starlark.None, nil
}

func (ld *Loader) builtinDefine(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value int
	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name, "address", &value)
	if err != nil {
		return nil, err
	}

	addr, err := toAddress(name, value)
	if err != nil {
		return nil, err
	}

	ld.app.DefineAddress(name, addr)
	return starlark.None, nil
}

func (ld *Loader) builtinIncludeVic2Defines(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	ld.app.IncludeVic2Defines()
	return starlark.None, nil
}

func (ld *Loader) builtinIncludeSidDefines(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	ld.app.IncludeSidDefines()
	return starlark.None, nil
}

// builtinModule starts a module. Instructions that follow belong to it.
func (ld *Loader) builtinModule(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name)
	if err != nil {
		return nil, err
	}

	mod := &moduleState{
		name:   name,
		stream: builder.NewInstructions(),
	}
	ld.modules = append(ld.modules, mod)
	ld.stream = mod.stream

	return starlark.None, nil
}

// builtinFunction starts a function in the current module. Instructions
// that follow belong to it, until the next module or function.
func (ld *Loader) builtinFunction(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var doc starlark.Value
	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name, "doc?", &doc)
	if err != nil {
		return nil, err
	}

	if len(ld.modules) == 0 {
		return nil, ErrNoModule
	}

	lines, err := stringList(fn.Name(), doc)
	if err != nil {
		return nil, err
	}

	function := &functionState{
		name:   name,
		doc:    lines,
		stream: builder.NewInstructions(),
	}
	mod := ld.modules[len(ld.modules)-1]
	mod.functions = append(mod.functions, function)
	ld.stream = function.stream

	return starlark.None, nil
}

func (ld *Loader) builtinLabel(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var comment string
	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name, "comment?", &comment)
	if err != nil {
		return nil, err
	}

	if ld.stream == nil {
		return nil, ErrNoModule
	}

	ld.stream.Label(name)
	ld.addComment(comment)
	return starlark.None, nil
}

// builtinRaw splices its positional byte arguments into the output.
func (ld *Loader) builtinRaw(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var comment string
	err := starlark.UnpackArgs(fn.Name(), nil, kwargs, "comment?", &comment)
	if err != nil {
		return nil, err
	}

	if ld.stream == nil {
		return nil, ErrNoModule
	}

	data := make([]byte, len(args))
	for n, arg := range args {
		data[n], err = toByte(fn.Name(), arg)
		if err != nil {
			return nil, err
		}
	}

	ld.stream.Raw(data...)
	ld.addComment(comment)
	return starlark.None, nil
}

func (ld *Loader) builtinBasicHeader(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0)
	if err != nil {
		return nil, err
	}

	if ld.stream == nil {
		return nil, ErrNoModule
	}

	ld.stream.AddBasicHeader()
	return starlark.None, nil
}

func (ld *Loader) builtinComment(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var comment string
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &comment)
	if err != nil {
		return nil, err
	}

	if ld.stream == nil {
		return nil, ErrNoModule
	}

	ld.stream.Comment(comment)
	return starlark.None, nil
}

func (ld *Loader) addComment(comment string) {
	if len(comment) != 0 {
		ld.stream.Comment(comment)
	}
}

// mnemonic returns the builtin for an instruction.
func (ld *Loader) mnemonic(ins *mos6502.Instruction) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var target, lo, hi, addr, addr_x, addr_y, ind, ind_x, ind_y string
		var value starlark.Value
		var acc bool
		var offset int
		var comment string

		err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"target?", &target,
			"imm?", &value,
			"lo?", &lo,
			"hi?", &hi,
			"addr?", &addr,
			"addr_x?", &addr_x,
			"addr_y?", &addr_y,
			"ind?", &ind,
			"ind_x?", &ind_x,
			"ind_y?", &ind_y,
			"acc?", &acc,
			"offset?", &offset,
			"comment?", &comment,
		)
		if err != nil {
			return nil, err
		}

		if ld.stream == nil {
			return nil, ErrNoModule
		}

		var modes []asm.AddressMode
		ref := func(name string) asm.AddressReference {
			return asm.RefOffset(name, offset)
		}

		if len(target) != 0 {
			if ins.Branch() {
				modes = append(modes, asm.Relative{Ref: ref(target)})
			} else {
				modes = append(modes, asm.Absolute{Ref: ref(target)})
			}
		}
		if value != nil {
			var b byte
			b, err = toByte(fn.Name(), value)
			if err != nil {
				return nil, err
			}
			modes = append(modes, asm.ImmediateByte{Value: b})
		}
		if len(lo) != 0 {
			modes = append(modes, asm.ImmediateLow{Ref: ref(lo)})
		}
		if len(hi) != 0 {
			modes = append(modes, asm.ImmediateHigh{Ref: ref(hi)})
		}
		if len(addr) != 0 {
			modes = append(modes, asm.Absolute{Ref: ref(addr)})
		}
		if len(addr_x) != 0 {
			modes = append(modes, asm.AbsoluteX{Ref: ref(addr_x)})
		}
		if len(addr_y) != 0 {
			modes = append(modes, asm.AbsoluteY{Ref: ref(addr_y)})
		}
		if len(ind) != 0 {
			modes = append(modes, asm.Indirect{Ref: ref(ind)})
		}
		if len(ind_x) != 0 {
			modes = append(modes, asm.IndexedIndirect{Ref: ref(ind_x)})
		}
		if len(ind_y) != 0 {
			modes = append(modes, asm.IndirectIndexed{Ref: ref(ind_y)})
		}
		if acc {
			modes = append(modes, asm.Accumulator{})
		}

		var mode asm.AddressMode
		switch len(modes) {
		case 0:
			mode = asm.Implied{}
		case 1:
			mode = modes[0]
		default:
			return nil, ErrAddressingMode(ins.Mnemonic)
		}

		if _, has_ref := asm.Reference(mode); offset != 0 && !has_ref {
			return nil, ErrOffsetUnused(ins.Mnemonic)
		}

		ld.stream.Op(ins.Mnemonic, mode)
		ld.addComment(comment)
		return starlark.None, nil
	}
}

func toByte(name string, value starlark.Value) (b byte, err error) {
	n, err := starlark.AsInt32(value)
	if err != nil {
		return
	}

	if n < 0 || n > 0xff {
		err = ErrByteRange(name)
		return
	}

	b = byte(n)
	return
}

func toAddress(name string, value int) (addr asm.Address, err error) {
	if value < 0 || value > 0xffff {
		err = ErrAddressRange(name)
		return
	}

	addr = asm.Address(value)
	return
}

// stringList accepts None, a string, or an iterable of strings.
func stringList(name string, value starlark.Value) (lines []string, err error) {
	switch v := value.(type) {
	case nil, starlark.NoneType:
		return
	case starlark.String:
		lines = []string{string(v)}
		return
	case starlark.Iterable:
		iter := v.Iterate()
		defer iter.Done()

		var item starlark.Value
		for iter.Next(&item) {
			str, ok := starlark.AsString(item)
			if !ok {
				err = errors.Errorf("%v: got %v, want string", name, item.Type())
				return
			}
			lines = append(lines, str)
		}
		return
	}

	err = errors.Errorf("%v: got %v, want string or list", name, value.Type())
	return
}
