/*
Package main is the entry point for the atomforge CLI demo: a REPL and
file runner exercising engine.Engine end to end, analogous to the
teacher's repl/ + main/ split.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atomforge/atomforge/engine"
	"github.com/fatih/color"
)

// VERSION is the current version of the atomforge CLI.
var VERSION = "v0.1.0"

// PROMPT is the command prompt shown in REPL mode.
var PROMPT = "atomforge >>> "

// BANNER is the ASCII banner shown at REPL startup.
var BANNER = `
   ▄▄▄▄▄▄▄  ▄▄▄▄▄▄▄  ▄▄▄▄▄▄▄  ▄▄▄▄▄▄▄ ▄▄▄▄▄▄  ▄▄▄▄▄▄    ▄▄▄▄▄▄   ▄▄▄▄▄▄▄ ▄▄▄▄▄▄▄▄▄▄▄
  ██▀▀▀▀██ ██▀▀▀▀██    ██    ██▀▀▀▀▀▀██▀▀▀▀██ ██▀▀▀▀██ ██▀▀▀▀██ ██▀▀▀▀▀▀ ▀▀▀██▀▀▀
  ██    ██ ██    ██    ██    ██     ██    ██ ██    ██ ██    ██ ██ ▄▄▄▄     ██
  ██▄▄▄▄██ ██▄▄▄▄██    ██    ██     ██▄▄▄▄█▀ ██▄▄▄▄██ ██▄▄▄▄██ ██▄▄▄▄██    ██
`

// Color definitions for file-execution output, matching the teacher's
// main/main.go palette.
var (
	redColorMain    = color.New(color.FgRed)
	yellowColorMain = color.New(color.FgYellow)
	cyanColorMain   = color.New(color.FgCyan)
)

func main() {
	packsFlag := flag.String("packs", "", "comma-separated list of bundled macro packs to activate (qs,qg,fn,defmacro,dfn,string,std)")
	packsFile := flag.String("packs-file", "", "path to a YAML file naming bundled packs and ad-hoc macros to register")
	output := flag.String("o", "", "write the expanded source to this path instead of stdout (file mode only)")
	flag.Parse()

	e := engine.New()

	if *packsFlag != "" {
		names := strings.Split(*packsFlag, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		if _, err := e.Configure(names...); err != nil {
			redColorMain.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
			os.Exit(1)
		}
	}

	if *packsFile != "" {
		if err := loadPackFile(e, *packsFile); err != nil {
			redColorMain.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		repl := NewRepl(BANNER, VERSION, strings.Repeat("-", 66), PROMPT)
		repl.Start(e, os.Stdout)
		return
	}

	runFile(e, args[0], *output)
}

// runFile reads fileName, runs it through Parse → Macroexpand →
// Serialize, and writes the result to outputPath (or stdout when
// outputPath is empty).
func runFile(e *engine.Engine, fileName, outputPath string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColorMain.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	result, err := expandFileWithRecovery(e, string(source))
	if err != nil {
		redColorMain.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if outputPath == "" {
		yellowColorMain.Fprintf(os.Stdout, "%s\n", result)
		return
	}
	if err := os.WriteFile(outputPath, []byte(result+"\n"), 0644); err != nil {
		redColorMain.Fprintf(os.Stderr, "[FILE ERROR] could not write file %q: %v\n", outputPath, err)
		os.Exit(1)
	}
	cyanColorMain.Fprintf(os.Stdout, "wrote %s\n", outputPath)
}

// expandFileWithRecovery runs the Parse → Macroexpand → Serialize
// pipeline with panic recovery, matching the teacher's
// executeFileWithRecovery shape in main/main.go.
func expandFileWithRecovery(e *engine.Engine, source string) (result string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("[RUNTIME ERROR] %v", recovered)
		}
	}()

	tree, parseErr := e.Parse(source)
	if parseErr != nil {
		return "", fmt.Errorf("[PARSE ERROR] %w", parseErr)
	}

	expanded := e.Macroexpand(tree)
	return e.Serialize(expanded), nil
}
