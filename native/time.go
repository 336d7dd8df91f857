package native

import (
	"strings"
	"time"

	"github.com/qewer33/quetite/value"
)

// timeMethods is the Time namespace: now/format, grounded on
// std/time.go's now/format builtins.
var timeMethods = []Builtin{
	{Name: "now", Arity: 0, Fn: func(args []value.Value) (value.Value, error) {
		return value.Num(float64(time.Now().Unix())), nil
	}},
	{Name: "format", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		unix, err := wantNum("Time.format", args, 0)
		if err != nil {
			return nil, err
		}
		layout, err := wantStr("Time.format", args, 1)
		if err != nil {
			return nil, err
		}
		goLayout := strftimeToGo(layout)
		return value.Str(time.Unix(int64(unix), 0).UTC().Format(goLayout)), nil
	}},
}

// strftimeToGo translates the handful of strftime-style directives
// Go-Mix's own time.go accepts (%Y, %m, %d, %H, %M, %S) into Go's
// reference-time layout, since Go has no native strftime support.
func strftimeToGo(layout string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006", "%m", "01", "%d", "02",
		"%H", "15", "%M", "04", "%S", "05",
	)
	return replacer.Replace(layout)
}
