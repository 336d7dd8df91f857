package native

import (
	"regexp"

	"github.com/qewer33/quetite/value"
)

// regexMethods is the Regex namespace: match/find_all/replace, grounded
// on std/regex.go, which is itself stdlib regexp-only (no third-party
// regex engine appears in the pack, so this stays stdlib — see
// DESIGN.md).
var regexMethods = []Builtin{
	{Name: "match", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		pattern, err := wantStr("Regex.match", args, 0)
		if err != nil {
			return nil, err
		}
		s, err := wantStr("Regex.match", args, 1)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, value.NewError(value.ValueErr, "Regex.match: %v", err)
		}
		return value.Bool(re.MatchString(s)), nil
	}},
	{Name: "find_all", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		pattern, err := wantStr("Regex.find_all", args, 0)
		if err != nil {
			return nil, err
		}
		s, err := wantStr("Regex.find_all", args, 1)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, value.NewError(value.ValueErr, "Regex.find_all: %v", err)
		}
		matches := re.FindAllString(s, -1)
		elems := make([]value.Value, len(matches))
		for i, m := range matches {
			elems[i] = value.Str(m)
		}
		return value.NewList(elems), nil
	}},
	{Name: "replace", Arity: 3, Fn: func(args []value.Value) (value.Value, error) {
		pattern, err := wantStr("Regex.replace", args, 0)
		if err != nil {
			return nil, err
		}
		s, err := wantStr("Regex.replace", args, 1)
		if err != nil {
			return nil, err
		}
		repl, err := wantStr("Regex.replace", args, 2)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, value.NewError(value.ValueErr, "Regex.replace: %v", err)
		}
		return value.Str(re.ReplaceAllString(s, repl)), nil
	}},
}
