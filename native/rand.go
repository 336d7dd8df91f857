package native

import (
	crand "crypto/rand"
	"encoding/hex"
	"math/rand"
	"sync"

	"github.com/qewer33/quetite/value"
)

// gen is a mutable package-level generator so Rand.seed(n) actually
// affects subsequent Rand.int/Rand.float calls, grounded on
// std/crypto.go's split between math/rand (fast, seedable, used for
// Rand.int/float) and crypto/rand (cryptographically secure, used only
// for Rand.token).
var (
	genMu sync.Mutex
	gen   = rand.New(rand.NewSource(1))
)

var randMethods = []Builtin{
	{Name: "int", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		lo, err := wantNum("Rand.int", args, 0)
		if err != nil {
			return nil, err
		}
		hi, err := wantNum("Rand.int", args, 1)
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, value.NewError(value.ValueErr, "Rand.int: hi must be >= lo")
		}
		span := int64(hi) - int64(lo) + 1
		genMu.Lock()
		n := int64(lo) + gen.Int63n(span)
		genMu.Unlock()
		return value.Num(n), nil
	}},
	{Name: "float", Arity: 0, Fn: func(args []value.Value) (value.Value, error) {
		genMu.Lock()
		f := gen.Float64()
		genMu.Unlock()
		return value.Num(f), nil
	}},
	{Name: "seed", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		n, err := wantNum("Rand.seed", args, 0)
		if err != nil {
			return nil, err
		}
		genMu.Lock()
		gen = rand.New(rand.NewSource(int64(n)))
		genMu.Unlock()
		return value.Null, nil
	}},
	{Name: "token", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		n, err := wantNum("Rand.token", args, 0)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, int(n))
		if _, err := crand.Read(buf); err != nil {
			return nil, nativeErr("Rand.token: %v", err)
		}
		return value.Str(hex.EncodeToString(buf)), nil
	}},
}
