package native

import (
	"fmt"
	"os"

	"github.com/qewer33/quetite/env"
	"github.com/qewer33/quetite/value"
)

// fileHandle is an opaque Value wrapping an open *os.File, grounded on
// file/file.go's FileObject. It implements value.Value directly rather
// than living in the value package, since it is a native-only runtime
// detail the evaluator never needs to know about.
type fileHandle struct {
	f    *os.File
	path string
}

func (*fileHandle) Kind() value.Kind { return value.KindInstance }

func (fh *fileHandle) String() string { return fmt.Sprintf("<file %s>", fh.path) }

func asFileHandle(name string, args []value.Value, i int) (*fileHandle, error) {
	fh, ok := args[i].(*fileHandle)
	if !ok {
		return nil, value.NewError(value.TypeErr, "%s: argument %d must be a file handle, got %s", name, i, value.TypeName(args[i]))
	}
	return fh, nil
}

// installFileObj registers the File namespace: fopen/fread/fwrite/
// fclose/fseek/ftell, grounded on file/file.go's fopen/fread/fwrite/
// fclose/fseek/ftell Builtins, adapted from GoMix's separate `file`
// package into one native namespace Quetite scripts address as
// `File.fopen(...)`.
func installFileObj(g *env.Env) {
	RegisterNamespace(g, "File", []Builtin{
		{Name: "fopen", Arity: 2, Fn: fopen},
		{Name: "fclose", Arity: 1, Fn: fclose},
		{Name: "fread", Arity: 2, Fn: fread},
		{Name: "fwrite", Arity: 2, Fn: fwrite},
		{Name: "fseek", Arity: 2, Fn: fseek},
		{Name: "ftell", Arity: 1, Fn: ftell},
	})
}

// fopen(path, mode) opens path per mode ("r", "w", "a", "r+") and
// returns an opaque file handle.
func fopen(args []value.Value) (value.Value, error) {
	path, err := wantStr("File.fopen", args, 0)
	if err != nil {
		return nil, err
	}
	mode, err := wantStr("File.fopen", args, 1)
	if err != nil {
		return nil, err
	}
	var flag int
	switch mode {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	default:
		return nil, value.NewError(value.ValueErr, "File.fopen: unknown mode %q", mode)
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, ioErr("File.fopen: %v", err)
	}
	return &fileHandle{f: f, path: path}, nil
}

func fclose(args []value.Value) (value.Value, error) {
	fh, err := asFileHandle("File.fclose", args, 0)
	if err != nil {
		return nil, err
	}
	if err := fh.f.Close(); err != nil {
		return nil, ioErr("File.fclose: %v", err)
	}
	return value.Null, nil
}

// fread(handle, n) reads up to n bytes from the handle's position. When
// n <= 0 it re-reads the whole file from its path, from the start,
// regardless of the handle's position.
func fread(args []value.Value) (value.Value, error) {
	fh, err := asFileHandle("File.fread", args, 0)
	if err != nil {
		return nil, err
	}
	n, err := wantNum("File.fread", args, 1)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		data, err := os.ReadFile(fh.path)
		if err != nil {
			return nil, ioErr("File.fread: %v", err)
		}
		return value.Str(string(data)), nil
	}
	buf := make([]byte, int(n))
	read, err := fh.f.Read(buf)
	if err != nil && read == 0 {
		return nil, ioErr("File.fread: %v", err)
	}
	return value.Str(string(buf[:read])), nil
}

func fwrite(args []value.Value) (value.Value, error) {
	fh, err := asFileHandle("File.fwrite", args, 0)
	if err != nil {
		return nil, err
	}
	data, err := wantStr("File.fwrite", args, 1)
	if err != nil {
		return nil, err
	}
	n, err := fh.f.WriteString(data)
	if err != nil {
		return nil, ioErr("File.fwrite: %v", err)
	}
	return value.Num(n), nil
}

// fseek(handle, offset) seeks from the start of the file.
func fseek(args []value.Value) (value.Value, error) {
	fh, err := asFileHandle("File.fseek", args, 0)
	if err != nil {
		return nil, err
	}
	offset, err := wantNum("File.fseek", args, 1)
	if err != nil {
		return nil, err
	}
	pos, err := fh.f.Seek(int64(offset), 0)
	if err != nil {
		return nil, ioErr("File.fseek: %v", err)
	}
	return value.Num(pos), nil
}

func ftell(args []value.Value) (value.Value, error) {
	fh, err := asFileHandle("File.ftell", args, 0)
	if err != nil {
		return nil, err
	}
	pos, err := fh.f.Seek(0, 1)
	if err != nil {
		return nil, ioErr("File.ftell: %v", err)
	}
	return value.Num(pos), nil
}
