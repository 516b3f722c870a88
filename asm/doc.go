// Package asm implements the layout and encoding engine of the C64 assembler.
//
// An Application is a tree of modules and functions holding instruction
// streams that refer to memory by name. Resolve walks the tree once, assigning
// every label an address and every instruction its encoded size. Validate
// checks the resolved layout for unknown names, duplicate names and out of
// range branches. The resulting Layout is consumed by the generators.
package asm
