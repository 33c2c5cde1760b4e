/*
File    : pym/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the pym lexer and
evaluator. With no parser in this module, the REPL cannot execute
arbitrary lines of source, so each line is lexed and its token stream is
printed, colorized by kind; a leading '.run <demo>' invokes one of the
named demo programs from the demo package through interp.Program. The
REPL uses the readline library for history and line editing.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rhea-kapoor/pym/demo"
	"github.com/rhea-kapoor/pym/interp"
	"github.com/rhea-kapoor/pym/lexer"
	"github.com/rhea-kapoor/pym/runtime"
	"github.com/rhea-kapoor/pym/token"
)

// Color definitions for REPL output.
var (
	blueColor    = color.New(color.FgBlue)
	yellowColor  = color.New(color.FgYellow)
	redColor     = color.New(color.FgRed)
	greenColor   = color.New(color.FgGreen)
	cyanColor    = color.New(color.FgCyan)
	magentaColor = color.New(color.FgMagenta)
)

// Repl represents the Read-Eval-Print Loop instance.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to pym!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line and press enter to see its token stream")
	cyanColor.Fprintf(writer, "%s\n", "Type '.run <demo>' to run a demo program, '.demos' to list them")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: lexing each line and printing its
// tokens, until '.exit' or EOF (Ctrl+D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery handles one REPL line with panic recovery, so a
// bug in the lexer or a demo program doesn't take down the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	if line == ".demos" {
		for _, name := range demo.Names() {
			p, _ := demo.Lookup(name)
			yellowColor.Fprintf(writer, "  %-10s %s\n", p.Name, p.Description)
		}
		return
	}

	if rest, ok := strings.CutPrefix(line, ".run "); ok {
		r.runDemo(writer, strings.TrimSpace(rest))
		return
	}

	lx, err := lexer.New(line)
	if err != nil {
		redColor.Fprintf(writer, "[LEXER ERROR] %v\n", err)
		return
	}
	for _, tok := range lx.Tokens() {
		printToken(writer, tok)
	}
}

// runDemo runs the named demo program through a fresh interp.Program
// writing to writer; on an unknown name it prints a hint to use .demos.
func (r *Repl) runDemo(writer io.Writer, name string) {
	p, ok := demo.Lookup(name)
	if !ok {
		redColor.Fprintf(writer, "unknown demo %q, try .demos\n", name)
		return
	}

	ctx := runtime.NewBufferedContext()
	prog := interp.New(ctx)
	if _, err := prog.Run(p.Build()); err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", err)
		return
	}
	writer.Write([]byte(ctx.String()))
}

// printToken writes one colorized line describing tok to w: structural
// markers in blue, keywords in magenta, literals in yellow, everything
// else plain.
func printToken(w io.Writer, tok token.Token) {
	c := color.New(color.Reset)
	switch tok.Kind {
	case token.Newline, token.Indent, token.Dedent, token.Eof:
		c = blueColor
	case token.Class, token.Return, token.If, token.Else, token.Def, token.Print,
		token.And, token.Or, token.Not, token.None, token.True, token.False:
		c = magentaColor
	case token.Number, token.Id, token.String:
		c = yellowColor
	}
	c.Fprintf(w, "%s\n", tok.String())
}
