package mila

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// File wraps an *os.File so open/fclose/fprint/fread/fseek/ftell can
// expose one as an opaque "file" value.
type File struct {
	f      *os.File
	reader *bufio.Reader
	closed bool
}

func fileDisplay(v *Value) string {
	fh, ok := v.Opaque().(*File)
	if !ok || fh.f == nil {
		return "<file>"
	}
	return fmt.Sprintf("<file:%s>", fh.f.Name())
}

func newFileValue(f *os.File) *Value {
	fh := &File{f: f, reader: bufio.NewReader(f)}
	return NewOpaqueTagged(fh, fileDisplay, "file", func(a any) {
		h := a.(*File)
		if !h.closed && h.f != nil {
			h.f.Close()
		}
	})
}

func registerIO(env *Env) {
	it := env.Interp()

	stdoutVal := newFileValue(os.Stdout)
	if f, ok := asFile(stdoutVal); ok {
		f.closed = true // never close the process's own stdout on final release
	}
	stderrVal := newFileValue(os.Stderr)
	if f, ok := asFile(stderrVal); ok {
		f.closed = true
	}
	env.define("stdout", stdoutVal)
	env.define("stderr", stderrVal)

	env.define("SEEK_SET", NewInt(int64(io.SeekStart)))
	env.define("SEEK_CUR", NewInt(int64(io.SeekCurrent)))
	env.define("SEEK_END", NewInt(int64(io.SeekEnd)))

	env.define("print", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		for _, a := range argv {
			fmt.Fprint(it.Stdout, a.String())
		}
		return NewNull()
	}, "print"))

	env.define("printr", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		for _, a := range argv {
			fmt.Fprint(it.Stdout, a.Repr())
		}
		return NewNull()
	}, "printr"))

	env.define("println", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		for _, a := range argv {
			fmt.Fprint(it.Stdout, a.String())
		}
		fmt.Fprintln(it.Stdout)
		return NewNull()
	}, "println"))

	env.define("input", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		r := bufio.NewReader(it.Stdin)
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return NewNull()
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return NewString(line)
	}, "input"))

	env.define("open", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString, KindString) {
			return NewNull()
		}
		path, mode := argv[0].Str(), argv[1].Str()
		var flag int
		switch mode {
		case "r":
			flag = os.O_RDONLY
		case "w":
			flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		case "a":
			flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		default:
			flag = os.O_RDWR | os.O_CREATE
		}
		if flag&os.O_CREATE == 0 {
			if resolved, err := it.resolvePath(path); err == nil {
				path = resolved
			}
		}
		f, err := os.OpenFile(path, flag, 0644)
		if err != nil {
			return NewNull()
		}
		return newFileValue(f)
	}, "open"))

	env.define("fclose", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		fh, ok := asFile(argOr(argv, 0))
		if !ok || fh.closed {
			return NewNull()
		}
		fh.closed = true
		fh.f.Close()
		return NewNull()
	}, "fclose"))

	env.define("fprint", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		fh, ok := asFile(argOr(argv, 0))
		if !ok {
			return NewNull()
		}
		for _, a := range argv[1:] {
			fmt.Fprint(fh.f, a.String())
		}
		return NewNull()
	}, "fprint"))

	env.define("fread", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		fh, ok := asFile(argOr(argv, 0))
		if !ok {
			return NewNull()
		}
		line, err := fh.reader.ReadString('\n')
		if err != nil && line == "" {
			return NewNull()
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return NewString(line)
	}, "fread"))

	env.define("fseek", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		fh, ok := asFile(argOr(argv, 0))
		if !ok || !MatchTypes(argv, KindOpaque, KindInt, KindInt) {
			return NewBool(false)
		}
		_, err := fh.f.Seek(argv[1].Int(), int(argv[2].Int()))
		fh.reader.Reset(fh.f)
		return NewBool(err == nil)
	}, "fseek"))

	env.define("ftell", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		fh, ok := asFile(argOr(argv, 0))
		if !ok {
			return NewInt(-1)
		}
		pos, err := fh.f.Seek(0, io.SeekCurrent)
		if err != nil {
			return NewInt(-1)
		}
		return NewInt(pos)
	}, "ftell"))
}

func asFile(v *Value) (*File, bool) {
	if v == nil || v.Kind() != KindOpaque {
		return nil, false
	}
	f, ok := v.Opaque().(*File)
	return f, ok
}
