// Package script loads application descriptions written in Starlark.
//
// A script calls builtins in program order:
//
//	name("Set black border")
//	include_vic2_defines()
//
//	module("main")
//	basic_header()
//	label("main_entry_point")
//	lda(imm=0x00, comment="Load black color")
//	sta(addr="VIC2_BORDER_COLOR")
//	rts()
//
// Every 6502 mnemonic is a builtin. The addressing mode is selected by a
// single keyword: imm, lo, hi, addr, addr_x, addr_y, ind, ind_x, ind_y or
// acc. A positional argument is a branch target for branch instructions and
// an absolute address otherwise. Without any of these the mode is implied.
// The offset keyword adds to the named address, and is an error for modes
// without one. The comment keyword attaches a comment. The AND mnemonic is spelled and_, since and is a keyword.
package script
