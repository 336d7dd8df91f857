/*
Package main is the entry point for the Quetite interpreter. It
provides two modes of operation:
 1. File mode: execute a Quetite source file given on the command line
 2. REPL mode (default, no arguments): interactive read-eval-print loop

Grounded on main/main.go's dual file/REPL dispatch and panic-recovery
wrapping, and main.go's --dump-tokens/--dump-ast debugging hooks
(the teacher's PrintingVisitor), adapted to Quetite's own lexer/parser
pipeline and Outcome-based error propagation (no panics escape eval).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/eval"
	"github.com/qewer33/quetite/lexer"
	"github.com/qewer33/quetite/native"
	"github.com/qewer33/quetite/parser"
	"github.com/qewer33/quetite/repl"
)

// VERSION is the current Quetite interpreter version.
var VERSION = "v0.1.0"

// PROMPT is the prompt string shown in REPL mode.
var PROMPT = "quetite >>> "

// BANNER is the ASCII banner shown at REPL startup.
var BANNER = `
   ____              _   _ _
  / __ \            | | (_) |
 | |  | |_   _  ___ | |_ _| |_ ___
 | |  | | | | |/ _ \| __| | __/ _ \
 | |__| | |_| |  __/| |_| | ||  __/
  \___\_\\__,_|\___| \__|_|\__\___|
`

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]
	dumpTokens := false
	dumpAST := false
	var path string

	for _, a := range args {
		switch a {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			cyanColor.Printf("Quetite %s\n", VERSION)
			os.Exit(0)
		case "--dump-tokens":
			dumpTokens = true
		case "--dump-ast":
			dumpAST = true
		default:
			if path == "" {
				path = a
			}
		}
	}

	if path == "" {
		repler := repl.New(BANNER, VERSION, LINE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	runFile(path, dumpTokens, dumpAST)
}

func showHelp() {
	cyanColor.Println("Quetite - a small interpreted scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  quetite                    Start interactive REPL mode")
	yellowColor.Println("  quetite <path-to-file>     Execute a Quetite file (.qt)")
	yellowColor.Println("  quetite --dump-tokens <f>  Print the token stream instead of running")
	yellowColor.Println("  quetite --dump-ast <f>     Print the parsed AST instead of running")
	yellowColor.Println("  quetite --help             Display this help message")
	yellowColor.Println("  quetite --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  /exit                      Exit the REPL")
	yellowColor.Println("  /scope                     Show the current top-level bindings")
}

// loadFile reads and tokenizes+parses a single Quetite source file,
// implementing the eval.Loader contract `use` statements call through.
func loadFile(path string) ([]ast.Stmt, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.Tokenize(path, string(src))
	if err != nil {
		return nil, err
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return stmts, nil
}

// runFile reads, lexes, parses, and evaluates a single Quetite source
// file, reporting lex/parse/runtime errors to stderr in red and
// exiting non-zero on any failure (main/main.go's executeFileWithRecovery).
func runFile(path string, dumpTokens, dumpAST bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	tokens, err := lexer.Tokenize(path, string(src))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LEX ERROR] %v\n", err)
		os.Exit(1)
	}
	if dumpTokens {
		for _, t := range tokens {
			fmt.Printf("%s %q\n", t.Kind, t.Lexeme)
		}
		return
	}

	stmts, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR]\n%v\n", err)
		os.Exit(1)
	}
	if dumpAST {
		for _, s := range stmts {
			fmt.Printf("%#v\n", s)
		}
		return
	}

	global := env.New(nil)
	ev := eval.New(global, loadFile)
	native.Install(global, ev, args())

	outcome := ev.Run(stmts, global)
	if outcome.Kind == eval.Thrown {
		redColor.Fprintf(os.Stderr, "[%s] %s\n", outcome.ErrKind, outcome.Value.String())
		os.Exit(1)
	}
}

// args returns the program arguments following the script path, which
// Sys.args() exposes to running scripts.
func args() []string {
	for i, a := range os.Args[1:] {
		if a == "--dump-tokens" || a == "--dump-ast" {
			continue
		}
		return os.Args[i+2:]
	}
	return nil
}
