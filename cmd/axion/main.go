// Command axion is the launcher for the Axion scripting language:
//
//	axion run <file>   execute a script
//	axion              start the interactive REPL
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/axion-lang/axion/interp"
	"github.com/axion-lang/axion/parser"
	"github.com/axion-lang/axion/repl"
	"github.com/fatih/color"
)

const (
	version = "v0.1.0"
	author  = "axion-lang"
	license = "MIT"
	prompt  = "axion >>> "
	line    = "----------------------------------------------------------------"
	banner  = `   _          _
  /_\  __ __ (_) ___  _ _
 / _ \ \ \ / | |/ _ \| ' \
/_/ \_\/_\_\ |_|\___/|_||_|
`
)

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "run" {
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing file. Usage: axion run <file>\n")
			os.Exit(1)
		}
		runFile(os.Args[2])
		return
	}

	if len(os.Args) > 1 {
		fmt.Fprintf(os.Stderr, "usage: axion run <file>\n       axion\n")
		os.Exit(1)
	}

	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(os.Stdout)
}

// runFile reads and executes a script file, recovering from any
// internal panic and exiting 1 on any lex/parse/eval error. A break,
// skip or return that escapes its enclosing frame is not a panic: the
// interpreter returns it as an ordinary RuntimeError.
func runFile(path string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "RuntimeError: %v\n", r)
			os.Exit(1)
		}
	}()

	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	if err := execute(string(src), os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

// execute parses and evaluates src, writing logln/log output to w.
// Factored out of runFile so tests can exercise it without an
// os.Exit in the success path.
func execute(src string, w io.Writer) error {
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}
	it := interp.New()
	it.SetWriter(w)
	return it.Run(prog)
}
