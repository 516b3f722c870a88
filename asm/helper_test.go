package asm

func op(mnemonic string, mode AddressMode) Instruction {
	return Instruction{Operation: Mnemonic(mnemonic), Mode: mode}
}

func label(name string) Instruction {
	return Instruction{Operation: Label(name)}
}

func singleModule(defines []Define, stream ...Instruction) *Application {
	app := NewApplication("test")
	app.Defines = defines
	app.Modules = []Module{{Name: "main", Instructions: stream}}
	return app
}
