// Package generator turns an assembled application into a loadable .prg byte
// stream, or into dasm compatible source.
package generator
