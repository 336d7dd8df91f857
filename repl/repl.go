/*
Package repl implements Quetite's Read-Eval-Print Loop. The REPL keeps
one Evaluator alive across lines, so declarations and variables from
an earlier line remain visible to later ones (spec.md section 3's
global frame persists for the process lifetime), and uses readline for
history and line editing.

Grounded on repl/repl.go's Repl struct (Banner/Version/Line/Prompt
fields, PrintBannerInfo, executeWithRecovery) and colored
success/error output split, adapted from Go-Mix's single parser+Eval()
pipeline to Quetite's lexer->parser->eval.Evaluator.ExecStmt pipeline,
and `.exit` renamed `/exit` with an added `/scope` per spec.md's REPL
section.
*/
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/qewer33/quetite/ast"
	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/eval"
	"github.com/qewer33/quetite/lexer"
	"github.com/qewer33/quetite/native"
	"github.com/qewer33/quetite/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version, separator line,
// and prompt string.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type Quetite code and press enter.")
	cyanColor.Fprintln(w, "Type /exit to quit, /scope to list top-level bindings.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// loadForRepl is the eval.Loader the REPL's Evaluator uses for `use`
// statements typed at the prompt: resolved paths are read from disk
// exactly as runFile's loader does, since `use` always names a file.
func loadForRepl(path string) ([]ast.Stmt, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.Tokenize(path, string(src))
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Start runs the REPL main loop. reader is accepted for interface
// symmetry with file-mode execution but unused directly: readline
// owns stdin itself once started.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	_ = reader
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	global := env.New(nil)
	ev := eval.New(global, loadForRepl)
	native.Install(global, ev, nil)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/exit" {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		if line == "/scope" {
			r.printScope(writer, global)
			continue
		}
		rl.SaveHistory(line)
		r.execLine(writer, line, ev, global)
	}
}

func (r *Repl) printScope(w io.Writer, e *env.Env) {
	for _, name := range e.Names() {
		v, _ := e.Lookup(name)
		yellowColor.Fprintf(w, "%s = %s\n", name, v.String())
	}
}

func (r *Repl) execLine(w io.Writer, line string, ev *eval.Evaluator, global *env.Env) {
	tokens, err := lexer.Tokenize("<repl>", line)
	if err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}

	outcome := ev.Run(stmts, global)
	if outcome.Kind == eval.Thrown {
		redColor.Fprintf(w, "[%s] %s\n", outcome.ErrKind, outcome.Value.String())
	}
}
