package mila

import (
	"fmt"
	"io"
	"os"
)

// Options configures a new Interpreter. The zero value is usable: stdio
// defaults to the process's own streams and the search path defaults to
// the current directory.
type Options struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	SearchPath []string
	Args       []string
}

// Interpreter owns everything a running program needs beyond its lexical
// scope chain: host I/O streams, the library search path used by load/run,
// the table of dynamically loaded plugin handles, and the top-level
// (global) frame. Unlike the source this design is grounded on, none of
// this lives in a package-level global — every native function reaches it
// through the Env chain it was called with (see Env.Interp), so two
// Interpreters in the same process never interfere with each other.
type Interpreter struct {
	Global *Env

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	SearchPath []string
	Args       []string

	plugins map[string]*loadedPlugin
}

// New constructs an Interpreter with its global frame populated by every
// registered builtin.
func New(opts Options) *Interpreter {
	it := &Interpreter{
		Stdout:     opts.Stdout,
		Stderr:     opts.Stderr,
		Stdin:      opts.Stdin,
		SearchPath: opts.SearchPath,
		Args:       opts.Args,
		plugins:    make(map[string]*loadedPlugin),
	}
	if it.Stdout == nil {
		it.Stdout = os.Stdout
	}
	if it.Stderr == nil {
		it.Stderr = os.Stderr
	}
	if it.Stdin == nil {
		it.Stdin = os.Stdin
	}
	if it.SearchPath == nil {
		it.SearchPath = []string{"."}
	}
	it.Global = newRootEnv(it)
	registerBuiltins(it.Global)

	argvVal := newArrayValue()
	arr, _ := asArray(argvVal)
	for _, a := range it.Args {
		sv := NewString(a)
		arr.push(sv)
		sv.Release()
	}
	it.Global.define("argv", argvVal)

	return it
}

func (it *Interpreter) errorf(format string, args ...any) {
	fmt.Fprintf(it.Stderr, format, args...)
}

// EvalStr evaluates src as a standalone top-level program in a fresh child
// frame of the global environment and returns the value of its last
// statement (Null if src produced an error, per EvalSource).
func (it *Interpreter) EvalStr(src string) *Value {
	frame := NewEnv(it.Global)
	c := NewCursor(src)
	res := EvalSource(c, frame)
	frame.Free()
	return res
}

// EvalPath reads the named file directly (no search-path lookup, matching
// the behavior of loading a program named on the command line rather than
// a library named to load()) and evaluates it.
func (it *Interpreter) EvalPath(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return it.EvalStr(string(data)), nil
}

// MatchTypes reports whether every value in argv (up to len(kinds)) has the
// corresponding Kind, used by native functions to validate arguments
// before touching their payloads.
func MatchTypes(argv []*Value, kinds ...Kind) bool {
	if len(argv) < len(kinds) {
		return false
	}
	for i, k := range kinds {
		if argv[i].Kind() != k {
			return false
		}
	}
	return true
}

// argOr returns argv[i] if present, else nil — used by natives with
// optional arguments; the asArray/asDict/asFile helpers treat nil as a
// type mismatch.
func argOr(argv []*Value, i int) *Value {
	if i < len(argv) {
		return argv[i]
	}
	return nil
}
