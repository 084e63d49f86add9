package main

import (
	"io"
	"strings"

	"github.com/atomforge/atomforge/engine"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching the teacher's repl/repl.go
// palette: blue for decorative lines, yellow for results, red for
// errors, green for the banner, cyan for instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is the interactive read-parse-expand-print loop for the engine.
// It holds only the cosmetic configuration; all language state lives in
// the *engine.Engine it is given.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl with the given banner, version, separator line,
// and prompt string.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions to
// writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to atomforge!")
	cyanColor.Fprintf(writer, "%s\n", "Type a source fragment and press enter to see it macro-expanded.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against e, reading lines via readline and
// writing results to writer. It returns once the user exits or input is
// exhausted.
func (r *Repl) Start(e *engine.Engine, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[READLINE ERROR] %v\n", err)
		return
	}
	defer rl.Close()

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
		r.evalWithRecovery(writer, line, e)
	}
}

// evalWithRecovery parses, macro-expands, and serializes line against e,
// recovering from any panic raised by the underlying pipeline so a
// single malformed line cannot kill the session.
func (r *Repl) evalWithRecovery(writer io.Writer, line string, e *engine.Engine) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	tree, err := e.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}

	expanded := e.Macroexpand(tree)
	yellowColor.Fprintf(writer, "%s\n", e.Serialize(expanded))
}
