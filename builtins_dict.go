package mila

func registerDict(env *Env) {
	env.define("dict", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		return newDictValue()
	}, "dict"))

	env.define("dict.get", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		d, ok := asDict(argOr(argv, 0))
		if !ok || !MatchTypes(argv, KindOpaque, KindString) {
			return NewNull()
		}
		v := d.get(argv[1].Str())
		if v == nil {
			return NewNull()
		}
		return v.Retain()
	}, "dict.get"))

	env.define("dict.set", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		d, ok := asDict(argOr(argv, 0))
		if !ok || len(argv) < 3 || argv[1].Kind() != KindString {
			return NewBool(false)
		}
		d.set(argv[1].Str(), argv[2])
		return NewBool(true)
	}, "dict.set"))

	env.define("dict.rem", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		d, ok := asDict(argOr(argv, 0))
		if !ok || !MatchTypes(argv, KindOpaque, KindString) {
			return NewBool(false)
		}
		return NewBool(d.remove(argv[1].Str()))
	}, "dict.rem"))

	env.define("dict.free", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		d, ok := asDict(argOr(argv, 0))
		if ok {
			d.free()
		}
		return NewNull()
	}, "dict.free"))
}
