package native

import (
	"encoding/json"

	"github.com/qewer33/quetite/value"
)

// jsonMethods is the Json namespace: encode/decode, grounded on
// std/json.go's jsonStringEncode/jsonStringDecode. The teacher's own
// json.go is stdlib-only (encoding/json) — no third-party JSON library
// appears anywhere in the retrieval pack, so this stays stdlib too
// (see DESIGN.md).
var jsonMethods = []Builtin{
	{Name: "encode", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		native := toGo(args[0])
		b, err := json.Marshal(native)
		if err != nil {
			return nil, nativeErr("Json.encode: %v", err)
		}
		return value.Str(string(b)), nil
	}},
	{Name: "decode", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		s, err := wantStr("Json.decode", args, 0)
		if err != nil {
			return nil, err
		}
		var decoded interface{}
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, value.NewError(value.ValueErr, "Json.decode: %v", err)
		}
		return fromGo(decoded), nil
	}},
}

// toGo converts a Value into a plain interface{} tree encoding/json
// can marshal, the inverse of fromGo below.
func toGo(v value.Value) interface{} {
	switch t := v.(type) {
	case value.NullValue:
		return nil
	case value.Bool:
		return bool(t)
	case value.Num:
		return float64(t)
	case value.Str:
		return string(t)
	case *value.List:
		out := make([]interface{}, len(t.Elems))
		for i, e := range t.Elems {
			out[i] = toGo(e)
		}
		return out
	case *value.Dict:
		out := make(map[string]interface{}, t.Len())
		for _, entry := range t.Entries() {
			out[displayString(entry.Key)] = toGo(entry.Value)
		}
		return out
	default:
		return v.String()
	}
}

// fromGo converts a decoded encoding/json interface{} tree back into a
// Value, the inverse of toGo above.
func fromGo(v interface{}) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Bool(t)
	case float64:
		return value.Num(t)
	case string:
		return value.Str(t)
	case []interface{}:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = fromGo(e)
		}
		return value.NewList(elems)
	case map[string]interface{}:
		d := value.NewDict()
		for k, e := range t {
			d.Set(value.Str(k), fromGo(e))
		}
		return d
	default:
		return value.Null
	}
}
