package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/c64asm/asm"
)

func TestApplicationBuild(t *testing.T) {
	assert := assert.New(t)

	b := NewApplication().
		Name("demo").
		DefineAddress("ZP", 0xFB).
		Module(NewModule().
			Name("main").
			Instructions(NewInstructions().Addr("sta", "ZP").Build()).
			Function(NewFunction().Name("f").Doc("one").Build()).
			Build())

	app := b.Build()
	assert.Equal("demo", app.Name)
	assert.Equal(asm.DEFAULT_ENTRY_POINT, app.EntryPoint)
	assert.Equal([]asm.Define{{Name: "ZP", Address: 0xFB}}, app.Defines)
	require.Len(t, app.Modules, 1)
	assert.Equal("main", app.Modules[0].Name)
	assert.Len(app.Modules[0].Instructions, 1)
	assert.Equal([]string{"one"}, app.Modules[0].Functions[0].Documentation)

	// Later changes to the builder do not leak into built applications.
	b.DefineAddress("OTHER", 0x1000).EntryPoint(0xC000)
	assert.Len(app.Defines, 1)
	assert.Equal(asm.DEFAULT_ENTRY_POINT, app.EntryPoint)
	assert.Len(b.Build().Defines, 2)
}

func TestApplicationDefines(t *testing.T) {
	assert := assert.New(t)

	app := NewApplication().IncludeVic2Defines().IncludeSidDefines().Build()
	assert.Len(app.Defines, len(VIC2_DEFINES)+len(SID_DEFINES))

	layout, err := asm.Assemble(app)
	require.NoError(t, err)

	table := [](struct {
		name string
		addr asm.Address
	}){
		{"VIC2_BASE", 0xD000},
		{"VIC2_BORDER_COLOR", 0xD020},
		{"VIC2_BACKGROUND_COLOR", 0xD021},
		{"VIC2_BACKGROUND_COLOR_0", 0xD021},
		{"VIC2_SPRITE_7_COLOR", 0xD02E},
		{"SID_BASE", 0xD400},
		{"SID_VOLUME_FC", 0xD418},
		{"SID_ENV3", 0xD41C},
	}

	for _, entry := range table {
		addr, ok := layout.Book.Lookup(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.addr, addr, entry.name)
	}
}
