package builder

import (
	"github.com/ezrec/c64asm/asm"
)

// VIC2_DEFINES are the VIC-II video chip registers.
var VIC2_DEFINES = []asm.Define{
	{Name: "VIC2_BASE", Address: 0xD000},
	{Name: "VIC2_SPRITE_0_X", Address: 0xD000},
	{Name: "VIC2_SPRITE_0_Y", Address: 0xD001},
	{Name: "VIC2_SPRITE_1_X", Address: 0xD002},
	{Name: "VIC2_SPRITE_1_Y", Address: 0xD003},
	{Name: "VIC2_SPRITE_2_X", Address: 0xD004},
	{Name: "VIC2_SPRITE_2_Y", Address: 0xD005},
	{Name: "VIC2_SPRITE_3_X", Address: 0xD006},
	{Name: "VIC2_SPRITE_3_Y", Address: 0xD007},
	{Name: "VIC2_SPRITE_4_X", Address: 0xD008},
	{Name: "VIC2_SPRITE_4_Y", Address: 0xD009},
	{Name: "VIC2_SPRITE_5_X", Address: 0xD00A},
	{Name: "VIC2_SPRITE_5_Y", Address: 0xD00B},
	{Name: "VIC2_SPRITE_6_X", Address: 0xD00C},
	{Name: "VIC2_SPRITE_6_Y", Address: 0xD00D},
	{Name: "VIC2_SPRITE_7_X", Address: 0xD00E},
	{Name: "VIC2_SPRITE_7_Y", Address: 0xD00F},
	{Name: "VIC2_SPRITE_X_MSB", Address: 0xD010},
	{Name: "VIC2_CONTROL_1", Address: 0xD011},
	{Name: "VIC2_RASTER", Address: 0xD012},
	{Name: "VIC2_LIGHT_PEN_X", Address: 0xD013},
	{Name: "VIC2_LIGHT_PEN_Y", Address: 0xD014},
	{Name: "VIC2_SPRITE_ENABLE", Address: 0xD015},
	{Name: "VIC2_CONTROL_2", Address: 0xD016},
	{Name: "VIC2_SPRITE_EXPAND_X", Address: 0xD017},
	{Name: "VIC2_MEMORY_SETUP", Address: 0xD018},
	{Name: "VIC2_IRQ_STATUS", Address: 0xD019},
	{Name: "VIC2_IRQ_ENABLE", Address: 0xD01A},
	{Name: "VIC2_SPRITE_PRIORITY", Address: 0xD01B},
	{Name: "VIC2_SPRITE_MULTICOLOR", Address: 0xD01C},
	{Name: "VIC2_SPRITE_EXPAND_Y", Address: 0xD01D},
	{Name: "VIC2_SPRITE_COLLISION", Address: 0xD01E},
	{Name: "VIC2_SPRITE_BG_COLLISION", Address: 0xD01F},
	{Name: "VIC2_BORDER_COLOR", Address: 0xD020},
	{Name: "VIC2_BACKGROUND_COLOR", Address: 0xD021},
	{Name: "VIC2_BACKGROUND_COLOR_0", Address: 0xD021},
	{Name: "VIC2_BACKGROUND_COLOR_1", Address: 0xD022},
	{Name: "VIC2_BACKGROUND_COLOR_2", Address: 0xD023},
	{Name: "VIC2_BACKGROUND_COLOR_3", Address: 0xD024},
	{Name: "VIC2_SPRITE_MULTICOLOR_0", Address: 0xD025},
	{Name: "VIC2_SPRITE_MULTICOLOR_1", Address: 0xD026},
	{Name: "VIC2_SPRITE_0_COLOR", Address: 0xD027},
	{Name: "VIC2_SPRITE_1_COLOR", Address: 0xD028},
	{Name: "VIC2_SPRITE_2_COLOR", Address: 0xD029},
	{Name: "VIC2_SPRITE_3_COLOR", Address: 0xD02A},
	{Name: "VIC2_SPRITE_4_COLOR", Address: 0xD02B},
	{Name: "VIC2_SPRITE_5_COLOR", Address: 0xD02C},
	{Name: "VIC2_SPRITE_6_COLOR", Address: 0xD02D},
	{Name: "VIC2_SPRITE_7_COLOR", Address: 0xD02E},
}

// SID_DEFINES are the SID sound chip registers.
var SID_DEFINES = []asm.Define{
	{Name: "SID_BASE", Address: 0xD400},
	{Name: "SID_VOICE_1_FREQ_LO", Address: 0xD400},
	{Name: "SID_VOICE_1_FREQ_HI", Address: 0xD401},
	{Name: "SID_VOICE_1_PW_LO", Address: 0xD402},
	{Name: "SID_VOICE_1_PW_HI", Address: 0xD403},
	{Name: "SID_VOICE_1_CTRL", Address: 0xD404},
	{Name: "SID_VOICE_1_AD", Address: 0xD405},
	{Name: "SID_VOICE_1_SR", Address: 0xD406},
	{Name: "SID_VOICE_2_FREQ_LO", Address: 0xD407},
	{Name: "SID_VOICE_2_FREQ_HI", Address: 0xD408},
	{Name: "SID_VOICE_2_PW_LO", Address: 0xD409},
	{Name: "SID_VOICE_2_PW_HI", Address: 0xD40A},
	{Name: "SID_VOICE_2_CTRL", Address: 0xD40B},
	{Name: "SID_VOICE_2_AD", Address: 0xD40C},
	{Name: "SID_VOICE_2_SR", Address: 0xD40D},
	{Name: "SID_VOICE_3_FREQ_LO", Address: 0xD40E},
	{Name: "SID_VOICE_3_FREQ_HI", Address: 0xD40F},
	{Name: "SID_VOICE_3_PW_LO", Address: 0xD410},
	{Name: "SID_VOICE_3_PW_HI", Address: 0xD411},
	{Name: "SID_VOICE_3_CTRL", Address: 0xD412},
	{Name: "SID_VOICE_3_AD", Address: 0xD413},
	{Name: "SID_VOICE_3_SR", Address: 0xD414},
	{Name: "SID_FILTER_CUTOFF_LO", Address: 0xD415},
	{Name: "SID_FILTER_CUTOFF_HI", Address: 0xD416},
	{Name: "SID_FILTER_CTRL", Address: 0xD417},
	{Name: "SID_VOLUME_FC", Address: 0xD418},
	{Name: "SID_POT_X", Address: 0xD419},
	{Name: "SID_POT_Y", Address: 0xD41A},
	{Name: "SID_OSC3_RANDOM", Address: 0xD41B},
	{Name: "SID_ENV3", Address: 0xD41C},
}

// IncludeVic2Defines adds VIC2_DEFINES.
func (b *ApplicationBuilder) IncludeVic2Defines() *ApplicationBuilder {
	b.app.Defines = append(b.app.Defines, VIC2_DEFINES...)
	return b
}

// IncludeSidDefines adds SID_DEFINES.
func (b *ApplicationBuilder) IncludeSidDefines() *ApplicationBuilder {
	b.app.Defines = append(b.app.Defines, SID_DEFINES...)
	return b
}
