// Package builder constructs asm applications with chained setters.
//
//	app := builder.NewApplication().
//		Name("Set black border").
//		IncludeVic2Defines().
//		Module(builder.NewModule().
//			Name("main").
//			Instructions(builder.NewInstructions().
//				AddBasicHeader().
//				Label("main_entry_point").
//				Imm("lda", 0x00).Comment("Load black color").
//				Addr("sta", "VIC2_BORDER_COLOR").
//				Implied("rts").
//				Build()).
//			Build()).
//		Build()
package builder
