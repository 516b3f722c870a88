// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package builder

import (
	"slices"

	"github.com/ezrec/c64asm/asm"
)

// ApplicationBuilder builds an asm.Application.
type ApplicationBuilder struct {
	app asm.Application
}

// NewApplication returns a builder for an application at the default entry point.
func NewApplication() *ApplicationBuilder {
	return &ApplicationBuilder{
		app: asm.Application{EntryPoint: asm.DEFAULT_ENTRY_POINT},
	}
}

// Name sets the application name, used in generated source.
func (b *ApplicationBuilder) Name(name string) *ApplicationBuilder {
	b.app.Name = name
	return b
}

// EntryPoint sets the load address. AddBasicHeader requires the default.
func (b *ApplicationBuilder) EntryPoint(addr asm.Address) *ApplicationBuilder {
	b.app.EntryPoint = addr
	return b
}

// DefineAddress adds a named address. Zero page addresses are selected
// automatically by the encoder.
func (b *ApplicationBuilder) DefineAddress(name string, addr asm.Address) *ApplicationBuilder {
	b.app.Defines = append(b.app.Defines, asm.Define{Name: name, Address: addr})
	return b
}

// Module appends a module.
func (b *ApplicationBuilder) Module(mod asm.Module) *ApplicationBuilder {
	b.app.Modules = append(b.app.Modules, mod)
	return b
}

// Build returns a copy of the application built so far.
func (b *ApplicationBuilder) Build() *asm.Application {
	app := b.app
	app.Defines = slices.Clone(b.app.Defines)
	app.Modules = slices.Clone(b.app.Modules)
	return &app
}

// ModuleBuilder builds an asm.Module.
type ModuleBuilder struct {
	mod asm.Module
}

// NewModule returns an empty module builder.
func NewModule() *ModuleBuilder {
	return &ModuleBuilder{}
}

// Name sets the module name, used in generated source.
func (b *ModuleBuilder) Name(name string) *ModuleBuilder {
	b.mod.Name = name
	return b
}

// Instructions sets the instructions shared by the module's functions.
func (b *ModuleBuilder) Instructions(stream asm.Instructions) *ModuleBuilder {
	b.mod.Instructions = stream
	return b
}

// Function appends a function.
func (b *ModuleBuilder) Function(fn asm.Function) *ModuleBuilder {
	b.mod.Functions = append(b.mod.Functions, fn)
	return b
}

// Build returns a copy of the module built so far.
func (b *ModuleBuilder) Build() asm.Module {
	mod := b.mod
	mod.Functions = slices.Clone(b.mod.Functions)
	return mod
}

// FunctionBuilder builds an asm.Function.
type FunctionBuilder struct {
	fn asm.Function
}

// NewFunction returns an empty function builder.
func NewFunction() *FunctionBuilder {
	return &FunctionBuilder{}
}

// Name sets the function name, used in generated source.
func (b *FunctionBuilder) Name(name string) *FunctionBuilder {
	b.fn.Name = name
	return b
}

// Doc appends documentation lines.
func (b *FunctionBuilder) Doc(lines ...string) *FunctionBuilder {
	b.fn.Documentation = append(b.fn.Documentation, lines...)
	return b
}

// Instructions sets the function body.
func (b *FunctionBuilder) Instructions(stream asm.Instructions) *FunctionBuilder {
	b.fn.Instructions = stream
	return b
}

// Build returns a copy of the function built so far.
func (b *FunctionBuilder) Build() asm.Function {
	fn := b.fn
	fn.Documentation = slices.Clone(b.fn.Documentation)
	return fn
}
