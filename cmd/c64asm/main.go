// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/c64asm/asm"
	"github.com/ezrec/c64asm/generator"
	"github.com/ezrec/c64asm/script"
)

func main() {
	var compile string
	var output string
	var listing string
	var hexdump bool
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".star application script to compile")
	flag.StringVar(&output, "o", "", ".prg file to write")
	flag.StringVar(&listing, "l", "", "dasm source file to write, - for stdout")
	flag.BoolVar(&hexdump, "x", false, "Hexdump the program to stdout")
	flag.BoolVar(&dump, "dump", false, "Dump the application tree to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: No script given, use -c", os.Args[0])
	}

	loader := &script.Loader{Verbose: verbose}
	app, err := loader.LoadFile(compile)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if dump {
		pp.Fprintln(os.Stderr, app)
	}

	layout, err := asm.Assemble(app)
	if err != nil {
		log.Fatalf("%v:\n%v", compile, err)
	}

	if verbose {
		for name, addr := range layout.Book.All() {
			log.Printf("%v = %v", name, addr)
		}
		log.Printf("%v: %v bytes, %v..%v", compile, layout.Size(), app.EntryPoint, layout.End())
	}

	if len(listing) != 0 {
		gen := &generator.Dasm{}
		source, err := gen.Generate(app)
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}

		if listing == "-" {
			_, err = os.Stdout.WriteString(source)
		} else {
			err = os.WriteFile(listing, []byte(source), 0o644)
		}
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
	}

	if len(output) == 0 && !hexdump {
		return
	}

	gen := &generator.Program{Verbose: verbose}
	prg, err := gen.Generate(layout)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if hexdump {
		err = generator.Hexdump(os.Stdout, prg)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(output) != 0 {
		err = os.WriteFile(output, prg, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}
}
