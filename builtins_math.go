package mila

import "math"

func registerMath(env *Env) {
	unary := func(name string, fn func(float64) float64) {
		env.define(name, NewNative(func(env *Env, argc int, argv []*Value) *Value {
			if !MatchTypes(argv, KindInt) && !MatchTypes(argv, KindFloat) {
				return NewNull()
			}
			return NewFloat(fn(argv[0].ToFloat64()))
		}, name))
	}
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("sqrt", math.Sqrt)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)

	env.define("atan2", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) < 2 {
			return NewNull()
		}
		return NewFloat(math.Atan2(argv[0].ToFloat64(), argv[1].ToFloat64()))
	}, "atan2"))

	env.define("pow", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) < 2 {
			return NewNull()
		}
		return NewFloat(math.Pow(argv[0].ToFloat64(), argv[1].ToFloat64()))
	}, "pow"))

	// Bitwise natives — distinct from the non-short-circuiting && and ||
	// operators in the grammar itself; these operate on Int payloads only.
	env.define("and", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindInt, KindInt) {
			return NewNull()
		}
		return NewInt(argv[0].Int() & argv[1].Int())
	}, "and"))

	env.define("or", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindInt, KindInt) {
			return NewNull()
		}
		return NewInt(argv[0].Int() | argv[1].Int())
	}, "or"))

	env.define("xor", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindInt, KindInt) {
			return NewNull()
		}
		return NewInt(argv[0].Int() ^ argv[1].Int())
	}, "xor"))

	env.define("not", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindInt) {
			return NewNull()
		}
		return NewInt(^argv[0].Int())
	}, "not"))
}
