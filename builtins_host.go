package mila

import (
	"os"
	"os/exec"
	"time"
)

func registerHost(env *Env) {
	it := env.Interp()

	env.define("report", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		switch {
		case argc == 1 && argv[0].Kind() == KindString:
			return NewErrorf("report(message): %s", argv[0].Str())
		case argc == 0:
			return NewErrorf("report(message) - No details given.")
		default:
			return NewErrorf("report(message): Invalid number of arguments given.")
		}
	}, "report"))

	env.define("exit", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		code := 0
		if MatchTypes(argv, KindInt) {
			code = int(argv[0].Int())
		}
		os.Exit(code)
		return NewNull()
	}, "exit"))

	env.define("get_time", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		return NewInt(time.Now().Unix())
	}, "get_time"))

	env.define("system", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewInt(-1)
		}
		cmd := exec.Command("/bin/sh", "-c", argv[0].Str())
		cmd.Stdout = it.Stdout
		cmd.Stderr = it.Stderr
		cmd.Stdin = nil
		if err := cmd.Run(); err != nil {
			if ee, ok := err.(*exec.ExitError); ok {
				return NewInt(int64(ee.ExitCode()))
			}
			return NewInt(-1)
		}
		return NewInt(0)
	}, "system"))

	env.define("run", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewErrorf("run expects a path string")
		}
		path, err := it.resolvePath(argv[0].Str())
		if err != nil {
			return NewErrorf("%s", err.Error())
		}
		res, err := it.EvalPath(path)
		if err != nil {
			return NewErrorf("%s", err.Error())
		}
		return res
	}, "run"))

	env.define("load", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewNull()
		}
		return it.loadPlugin(argv[0].Str())
	}, "load"))

	env.define("eval", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewNull()
		}
		return it.EvalStr(argv[0].Str())
	}, "eval"))
}
