package native

import (
	"os"
	"time"

	"github.com/qewer33/quetite/value"
)

// sysMethods builds the Sys namespace: args/env/exit/clock/sleep,
// grounded on std/os.go's osMethods (argsFunc, exitFunc, sleepFunc) and
// std/common.go's env exposure, trimmed to spec.md's smaller surface
// (no exec/user/hostname — those are host-process concerns SPEC_FULL.md
// doesn't ask for).
func sysMethods(argv []string) []Builtin {
	return []Builtin{
		{Name: "args", Arity: 0, Fn: func(args []value.Value) (value.Value, error) {
			elems := make([]value.Value, len(argv))
			for i, a := range argv {
				elems[i] = value.Str(a)
			}
			return value.NewList(elems), nil
		}},
		{Name: "env", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
			name, err := wantStr("Sys.env", args, 0)
			if err != nil {
				return nil, err
			}
			v, ok := os.LookupEnv(name)
			if !ok {
				return value.Null, nil
			}
			return value.Str(v), nil
		}},
		{Name: "exit", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
			code, err := wantNum("Sys.exit", args, 0)
			if err != nil {
				return nil, err
			}
			os.Exit(int(code))
			return value.Null, nil
		}},
		{Name: "clock", Arity: 0, Fn: func(args []value.Value) (value.Value, error) {
			return value.Num(float64(time.Now().UnixNano()) / 1e9), nil
		}},
		{Name: "sleep", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
			ms, err := wantNum("Sys.sleep", args, 0)
			if err != nil {
				return nil, err
			}
			time.Sleep(time.Duration(ms) * time.Millisecond)
			return value.Null, nil
		}},
	}
}
