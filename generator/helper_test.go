package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezrec/c64asm/asm"
	"github.com/ezrec/c64asm/builder"
)

// program returns a single module application.
func program(stream *builder.InstructionBuilder, defines ...asm.Define) *asm.Application {
	app := builder.NewApplication().Name("test")
	for _, define := range defines {
		app.DefineAddress(define.Name, define.Address)
	}
	return app.Module(builder.NewModule().Name("main").Instructions(stream.Build()).Build()).Build()
}

// assemble lays out and validates an application.
func assemble(t *testing.T, app *asm.Application) *asm.Layout {
	layout, err := asm.Assemble(app)
	require.NoError(t, err)
	return layout
}

// blackBorder sets the border color to black, started from BASIC.
func blackBorder() *asm.Application {
	return builder.NewApplication().
		Name("Set black border").
		IncludeVic2Defines().
		Module(builder.NewModule().
			Name("main").
			Instructions(builder.NewInstructions().
				AddBasicHeader().
				Label("main_entry_point").
				Imm("lda", 0x00).Comment("Load black color").
				Addr("sta", "VIC2_BORDER_COLOR").
				Implied("rts").
				Build()).
			Build()).
		Build()
}
