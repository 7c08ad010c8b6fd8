package mila

func registerArray(env *Env) {
	env.define("array", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		v := newArrayValue()
		arr, _ := asArray(v)
		for _, a := range argv {
			arr.push(a)
		}
		return v
	}, "array"))

	env.define("array.get", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		arr, ok := asArray(argOr(argv, 0))
		if !ok || !MatchTypes(argv, KindOpaque, KindInt) {
			return NewNull()
		}
		v := arr.get(int(argv[1].Int()))
		if v == nil {
			return NewNull()
		}
		return v.Retain()
	}, "array.get"))

	env.define("array.set", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		arr, ok := asArray(argOr(argv, 0))
		if !ok || len(argv) < 3 || argv[1].Kind() != KindInt {
			return NewBool(false)
		}
		return NewBool(arr.set(int(argv[1].Int()), argv[2]))
	}, "array.set"))

	env.define("array.len", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		arr, ok := asArray(argOr(argv, 0))
		if !ok {
			return NewInt(0)
		}
		return NewInt(int64(arr.len()))
	}, "array.len"))

	env.define("array.free", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		arr, ok := asArray(argOr(argv, 0))
		if ok {
			arr.free()
		}
		return NewNull()
	}, "array.free"))
}
