package mila

import (
	"strconv"
	"strings"
)

func registerCast(env *Env) {
	env.define("cast.int", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) == 0 {
			return NewNull()
		}
		switch argv[0].Kind() {
		case KindInt:
			return NewInt(argv[0].Int())
		case KindFloat:
			return NewInt(int64(argv[0].Float()))
		case KindBool:
			if argv[0].Bool() {
				return NewInt(1)
			}
			return NewInt(0)
		case KindString:
			i, err := strconv.ParseInt(strings.TrimSpace(argv[0].Str()), 10, 64)
			if err != nil {
				return NewNull()
			}
			return NewInt(i)
		default:
			return NewNull()
		}
	}, "cast.int"))

	env.define("cast.float", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) == 0 {
			return NewNull()
		}
		switch argv[0].Kind() {
		case KindInt:
			return NewFloat(float64(argv[0].Int()))
		case KindFloat:
			return NewFloat(argv[0].Float())
		case KindString:
			f, err := strconv.ParseFloat(strings.TrimSpace(argv[0].Str()), 64)
			if err != nil {
				return NewNull()
			}
			return NewFloat(f)
		default:
			return NewNull()
		}
	}, "cast.float"))

	env.define("cast.string", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) == 0 {
			return NewString("")
		}
		return NewString(argv[0].String())
	}, "cast.string"))

	env.define("typeof", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) == 0 {
			return NewString(KindNull.String())
		}
		return NewString(argv[0].Kind().String())
	}, "typeof"))

	env.define("_typeof", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) == 0 {
			return NewString(KindNull.String())
		}
		if argv[0].Kind() == KindOpaque && argv[0].TypeName() != "" {
			return NewString(argv[0].TypeName())
		}
		return NewString(argv[0].Kind().String())
	}, "_typeof"))
}
