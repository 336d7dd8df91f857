package native

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/qewer33/quetite/value"
)

// stdin is a shared buffered reader so repeated read() calls don't
// re-wrap os.Stdin, grounded on std/io.go's single package-level
// bufio.Reader for Scanln-style input.
var stdin = bufio.NewReader(os.Stdin)

// printFn implements `print(args...)`: writes each argument's display
// form space-separated, no trailing newline, grounded on
// std/common.go's print builtin.
func printFn(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = displayString(a)
	}
	fmt.Print(strings.Join(parts, " "))
	return value.Null, nil
}

// printlnFn implements `println(args...)`, identical to print but with
// a trailing newline.
func printlnFn(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = displayString(a)
	}
	fmt.Println(strings.Join(parts, " "))
	return value.Null, nil
}

// readFn implements `read()`: reads one line from stdin, stripping the
// trailing newline, grounded on std/io.go's readLine builtin.
func readFn(args []value.Value) (value.Value, error) {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return nil, ioErr("read: %v", err)
	}
	return value.Str(strings.TrimRight(line, "\r\n")), nil
}

// errFn implements `err(kind, msg)`: constructs the internal error
// object Throw/Try special-case (spec.md section 4.5), validating kind
// against the closed ErrKind set.
func errFn(args []value.Value) (value.Value, error) {
	kindStr, err := wantStr("err", args, 0)
	if err != nil {
		return nil, err
	}
	msg, err := wantStr("err", args, 1)
	if err != nil {
		return nil, err
	}
	kind := value.ErrKind(kindStr)
	switch kind {
	case value.NameErr, value.TypeErr, value.ArityErr, value.ValueErr,
		value.NativeErr, value.IOErr, value.UserErr:
	default:
		return nil, value.NewError(value.ValueErr, "err: unknown error kind %q", kindStr)
	}
	return &value.ErrObject{ErrKind: kind, Message: msg}, nil
}
