package mila

func registerString(env *Env) {
	env.define("str.length", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewInt(0)
		}
		return NewInt(int64(len(argv[0].Str())))
	}, "str.length"))

	env.define("str.slice", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString, KindInt, KindInt) {
			return NewNull()
		}
		s := argv[0].Str()
		start, end := int(argv[1].Int()), int(argv[2].Int())
		if start < 0 {
			start = 0
		}
		if end > len(s) {
			end = len(s)
		}
		if start > end {
			return NewString("")
		}
		return NewString(s[start:end])
	}, "str.slice"))

	env.define("str.index", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString, KindInt) {
			return NewNull()
		}
		s := argv[0].Str()
		i := int(argv[1].Int())
		if i < 0 || i >= len(s) {
			return NewNull()
		}
		return NewString(string(s[i]))
	}, "str.index"))

	env.define("str.patch", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString, KindInt, KindString) {
			return NewBool(false)
		}
		base := argv[0]
		i := int(argv[1].Int())
		patch := argv[2].Str()
		s := []byte(base.Str())
		if i < 0 || i+len(patch) > len(s) {
			return NewBool(false)
		}
		copy(s[i:], patch)
		base.SetStr(string(s))
		return NewBool(true)
	}, "str.patch"))

	env.define("str.pop_f", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewNull()
		}
		base := argv[0]
		s := base.Str()
		if len(s) == 0 {
			return NewNull()
		}
		base.SetStr(s[1:])
		return NewString(s[:1])
	}, "str.pop_f"))

	env.define("str.pop_b", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewNull()
		}
		base := argv[0]
		s := base.Str()
		if len(s) == 0 {
			return NewNull()
		}
		base.SetStr(s[:len(s)-1])
		return NewString(s[len(s)-1:])
	}, "str.pop_b"))

	env.define("ascii.to", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindInt) {
			return NewNull()
		}
		return NewString(string(rune(argv[0].Int())))
	}, "ascii.to"))

	env.define("ascii.from", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) || len(argv[0].Str()) == 0 {
			return NewNull()
		}
		return NewInt(int64(argv[0].Str()[0]))
	}, "ascii.from"))
}
