package native

import (
	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/eval"
	"github.com/qewer33/quetite/value"
)

// sharedProto is the synthetic Kind every value kind's prototype lookup
// falls back to, matching eval's own fallback key (spec.md section 4.7).
const sharedProto value.Kind = "Value"

// RegisterGlobal installs a single builtin directly into the global
// frame, implementing the registry's registerGlobal(name, callable).
func RegisterGlobal(g *env.Env, b Builtin) {
	g.Define(b.Name, b.callable())
}

// RegisterNamespace installs a table of builtins as the static methods
// of a namespace Obj (e.g. Sys, Math), so `Sys.args()` reuses the same
// Get/Call dispatch as a user-declared `obj`'s static methods — the
// registry's registerNamespace(name, table) with no extra evaluator
// machinery needed.
func RegisterNamespace(g *env.Env, name string, methods []Builtin) {
	ns := value.NewObj(name)
	for _, m := range methods {
		ns.Static[m.Name] = m.callable()
	}
	g.Define(name, ns)
}

// InstallPrototype forwards a table of builtins to the evaluator's
// per-kind method table, implementing installPrototype(kind, table).
func InstallPrototype(ev *eval.Evaluator, kind value.Kind, methods []Builtin) {
	table := make(map[string]*value.Callable, len(methods))
	for _, m := range methods {
		table[m.Name] = m.callable()
	}
	ev.InstallPrototype(kind, table)
}

// Install wires every native namespace, global builtin, and prototype
// table into g, using ev for prototype registration. argv is exposed
// through Sys.args(). This is the process-wide native bring-up spec.md
// section 4.7 and DESIGN NOTES' "global registry... performed once
// before any script executes" describe.
func Install(g *env.Env, ev *eval.Evaluator, argv []string) {
	RegisterGlobal(g, Builtin{Name: "print", Arity: -1, Fn: printFn})
	RegisterGlobal(g, Builtin{Name: "println", Arity: -1, Fn: printlnFn})
	RegisterGlobal(g, Builtin{Name: "read", Arity: 0, Fn: readFn})
	RegisterGlobal(g, Builtin{Name: "err", Arity: 2, Fn: errFn})

	RegisterNamespace(g, "Sys", sysMethods(argv))
	RegisterNamespace(g, "Math", mathMethods)
	RegisterNamespace(g, "Rand", randMethods)
	RegisterNamespace(g, "Json", jsonMethods)
	RegisterNamespace(g, "Regex", regexMethods)
	RegisterNamespace(g, "Http", httpMethods)
	RegisterNamespace(g, "Time", timeMethods)

	installFileObj(g)

	InstallPrototype(ev, value.KindStr, strMethods)
	InstallPrototype(ev, value.KindList, append(listMethods, listFunctionalMethods(ev)...))
	InstallPrototype(ev, value.KindDict, dictMethods)
	InstallPrototype(ev, value.KindNum, numMethods)
	InstallPrototype(ev, sharedProto, valueMethods)
}
