/*
File    : pym/cmd/pym/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the pym lexer/evaluator demo CLI.
There is no parser in this module, so it has two honest modes instead of
the usual "run a file":

 1. pym <file>         lexes the file and pretty-prints its token stream.
 2. pym -demo <name>    runs a named hand-built AST program through
    interp.Program and prints its output.

Falling back to a REPL with neither argument mirrors a typical
file-vs-interactive CLI split.
*/
package main

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/rhea-kapoor/pym/demo"
	"github.com/rhea-kapoor/pym/interp"
	"github.com/rhea-kapoor/pym/lexer"
	"github.com/rhea-kapoor/pym/repl"
	"github.com/rhea-kapoor/pym/runtime"
	"github.com/rhea-kapoor/pym/token"
)

// VERSION is the current version of the pym demo CLI.
var VERSION = "v0.1.0"

// AUTHOR contains the contact information of this module's author.
var AUTHOR = "rhea.kapoor(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "pym >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ██████╗ ██╗   ██╗███╗   ███╗
  ██╔══██╗╚██╗ ██╔╝████╗ ████║
  ██████╔╝ ╚████╔╝ ██╔████╔██║
  ██╔═══╝   ╚██╔╝  ██║╚██╔╝██║
  ██║        ██║   ██║ ╚═╝ ██║
  ╚═╝        ╚═╝   ╚═╝     ╚═╝
`

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}
		if arg == "-demo" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing demo name. Usage: pym -demo <name>\n")
				os.Exit(1)
			}
			runDemo(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays usage information for the pym demo CLI.
func showHelp() {
	cyanColor.Println("pym - a tree-walking OO scripting language core")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  pym                    Start interactive REPL mode")
	yellowColor.Println("  pym <path-to-file>     Lex a .pym file and print its token stream")
	yellowColor.Println("  pym -demo <name>       Run a named demo program through the evaluator")
	yellowColor.Println("  pym --help             Display this help message")
	yellowColor.Println("  pym --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("DEMOS:")
	for _, name := range demo.Names() {
		p, _ := demo.Lookup(name)
		yellowColor.Printf("  %-10s %s\n", p.Name, p.Description)
	}
	cyanColor.Println("")
	cyanColor.Println("There is no parser in this module: file mode only lexes, it does")
	cyanColor.Println("not execute. -demo runs AST built directly in Go.")
}

// showVersion displays version information for the pym demo CLI.
func showVersion() {
	cyanColor.Println("pym - a tree-walking OO scripting language core")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName, lexes it in full, and pretty-prints the
// resulting token stream, one token per line, colorized by kind.
func runFile(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	lx, err := lexer.New(string(src))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LEXER ERROR] %v\n", err)
		os.Exit(1)
	}

	cyanColor.Printf("Tokens for %s:\n", fileName)
	for _, tok := range lx.Tokens() {
		printToken(os.Stdout, tok)
	}
}

// runDemo runs the named demo program through interp.Program, writing
// its output to stdout, or lists the available demos if name is unknown.
func runDemo(name string) {
	p, ok := demo.Lookup(name)
	if !ok {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] unknown demo %q. Available demos:\n", name)
		for _, n := range demo.Names() {
			redColor.Fprintf(os.Stderr, "  %s\n", n)
		}
		os.Exit(1)
	}

	prog := interp.New(runtime.StdoutContext{})
	if _, err := prog.Run(p.Build()); err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		os.Exit(1)
	}
}

// printToken writes one colorized line describing tok to w: structural
// markers in blue, keywords in magenta, literals in yellow, everything
// else (punctuation) plain.
func printToken(w io.Writer, tok token.Token) {
	c := plainColor
	switch tok.Kind {
	case token.Newline, token.Indent, token.Dedent, token.Eof:
		c = color.New(color.FgBlue)
	case token.Class, token.Return, token.If, token.Else, token.Def, token.Print,
		token.And, token.Or, token.Not, token.None, token.True, token.False:
		c = color.New(color.FgMagenta)
	case token.Number, token.Id, token.String:
		c = color.New(color.FgYellow)
	}
	c.Fprintf(w, "%s\n", tok.String())
}

var plainColor = color.New(color.Reset)
