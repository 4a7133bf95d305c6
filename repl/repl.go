// Package repl implements Axion's interactive Read-Eval-Print Loop:
// line editing/history via github.com/chzyer/readline, colored output
// via github.com/fatih/color.
package repl

import (
	"io"
	"strings"

	"github.com/axion-lang/axion/interp"
	"github.com/axion-lang/axion/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for one interactive
// session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Axion!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until '.exit', EOF, or a readline error. A
// single *interp.Interp persists across lines so declarations and
// function definitions accumulate across the session.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	it := interp.New()
	it.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, it, line)
	}
}

// evalLine parses and evaluates one line against a persistent
// interpreter, printing any lex/parse/eval error in red. A statement
// that lacks a trailing `;` is retried with one appended, so a bare
// REPL expression like `1 + 2` need not be terminated by hand.
func (r *Repl) evalLine(writer io.Writer, it *interp.Interp, line string) {
	prog, err := parser.Parse(line)
	if err != nil {
		if !strings.HasSuffix(strings.TrimSpace(line), ";") {
			if retried, retryErr := parser.Parse(line + ";"); retryErr == nil {
				prog, err = retried, nil
			}
		}
	}
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	if err := it.Run(prog); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
