package mila

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the discriminant of a Value's tagged union.
type Kind int

const (
	KindNull Kind = iota
	KindNone
	KindInt
	KindFloat
	KindBool
	KindString
	KindFunction
	KindNative
	KindOpaque
	KindReturn
	KindBreak
	KindContinue
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindNative:
		return "native"
	case KindOpaque:
		return "opaque"
	case KindReturn:
		return "return"
	case KindBreak:
		return "break"
	case KindContinue:
		return "continue"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Display overrides a value's textual rendering in both plain and repr
// modes. Attached to opaque values (file handles, dicts, arrays) so each
// host-managed type can describe itself.
type Display func(v *Value) string

// Function is the payload of a script-defined closure: the parameter
// names, the brace-included body text (re-parsed on every call), the
// environment active at the point of definition, and a debug name
// assigned the first time the value is bound to an identifier.
type Function struct {
	Params  []string
	Body    string
	Closure *Env
	Name    string
}

// NativeFunc is the calling convention for host-provided functions: it
// receives the calling environment and a borrowed argument slice, and
// returns a newly owned Value.
type NativeFunc func(env *Env, argc int, argv []*Value) *Value

// Native is the payload of a host function value.
type Native struct {
	Name string
	Fn   NativeFunc
}

// Value is a tagged, reference-counted, heterogeneous runtime value.
//
// Go's garbage collector reclaims the struct itself and any cyclic
// Env/Function graph reachable from it automatically — manual frame
// free()ing has no Go analogue. The refcount field is kept anyway because
// the ownership-transfer contract (retain on store, release on scope
// exit, release-then-replace on combining operators) is part of the
// observable discipline spec.md's CORE pins down, and because opaque
// values use the count to trigger a destructor exactly once (file
// handles, loaded plugins) — see Release.
type Value struct {
	kind     Kind
	refcount int

	i int64
	f float64
	b bool
	s string

	fn     *Function
	native *Native

	opaque     any
	typeName   string
	destructor func(any)

	inner   *Value
	message string

	display Display
}

// Kind reports the value's discriminant.
func (v *Value) Kind() Kind { return v.kind }

// NewNull constructs a fresh Null value with refcount 1.
func NewNull() *Value { return &Value{kind: KindNull, refcount: 1} }

// NewNone constructs a fresh None value with refcount 1.
func NewNone() *Value { return &Value{kind: KindNone, refcount: 1} }

// NewBreak constructs a fresh Break sentinel.
func NewBreak() *Value { return &Value{kind: KindBreak, refcount: 1} }

// NewContinue constructs a fresh Continue sentinel.
func NewContinue() *Value { return &Value{kind: KindContinue, refcount: 1} }

// NewErrorf constructs an Error value carrying a formatted message.
func NewErrorf(format string, args ...any) *Value {
	return &Value{kind: KindError, refcount: 1, message: fmt.Sprintf(format, args...)}
}

// NewInt constructs an Int value.
func NewInt(i int64) *Value { return &Value{kind: KindInt, refcount: 1, i: i} }

// NewFloat constructs a Float value.
func NewFloat(f float64) *Value { return &Value{kind: KindFloat, refcount: 1, f: f} }

// NewBool constructs a Bool value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, refcount: 1, b: b} }

// NewString constructs a String value owning s.
func NewString(s string) *Value { return &Value{kind: KindString, refcount: 1, s: s} }

// NewOpaque wraps a host-managed pointer. A nil p is implicitly downgraded
// to Null at construction time, per the opaque-value invariant.
func NewOpaque(p any) *Value {
	if p == nil {
		return NewNull()
	}
	return &Value{kind: KindOpaque, refcount: 1, opaque: p}
}

// NewOpaqueTagged wraps p with a display callback, a human-readable type
// tag (used by typeof/_typeof and the opaque print form), and an optional
// destructor invoked once on final release.
func NewOpaqueTagged(p any, display Display, typeName string, destructor func(any)) *Value {
	v := NewOpaque(p)
	if v.kind != KindOpaque {
		return v
	}
	v.display = display
	v.typeName = typeName
	v.destructor = destructor
	return v
}

// NewNative wraps a host function under a display name.
func NewNative(fn NativeFunc, name string) *Value {
	return &Value{kind: KindNative, refcount: 1, native: &Native{Name: name, Fn: fn}}
}

// NewFunction constructs a script-defined closure value. The debug name is
// left blank and assigned on first bind, per Env.SetLocal/Env.Set.
func NewFunction(params []string, body string, closure *Env) *Value {
	return &Value{kind: KindFunction, refcount: 1, fn: &Function{Params: params, Body: body, Closure: closure}}
}

// NewReturn wraps inner as a Return sentinel, retaining inner to reflect
// the carried ownership.
func NewReturn(inner *Value) *Value {
	if inner == nil {
		inner = NewNull()
	}
	return &Value{kind: KindReturn, refcount: 1, inner: inner.Retain()}
}

// Retain bumps the refcount and returns v, so calls can be chained at the
// store site: env.vars[name] = v.Retain().
func (v *Value) Retain() *Value {
	if v == nil {
		return nil
	}
	v.refcount++
	return v
}

// Release drops the refcount; at zero it releases owned internals (the
// wrapped value of a Return, the destructor of an opaque) and the struct
// becomes eligible for garbage collection like any other Go value.
func (v *Value) Release() {
	if v == nil {
		return
	}
	v.refcount--
	if v.refcount > 0 {
		return
	}
	switch v.kind {
	case KindReturn:
		v.inner.Release()
	case KindOpaque:
		if v.destructor != nil {
			v.destructor(v.opaque)
		}
	}
}

// IsTruthy implements the truthiness table: Bool by its flag, Int/Float by
// non-zero magnitude, String by non-nil backing (an empty string is
// truthy), everything else truthy except Null and None.
func (v *Value) IsTruthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0.0
	case KindString:
		return true
	case KindNull, KindNone:
		return false
	default:
		return true
	}
}

// IsNumber reports whether v is Int or Float.
func (v *Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// ToFloat64 widens Int/Float to float64; other kinds yield 0.
func (v *Value) ToFloat64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	default:
		return 0
	}
}

// Int returns the raw int64 payload (valid only when Kind() == KindInt).
func (v *Value) Int() int64 { return v.i }

// Float returns the raw float64 payload (valid only when Kind() == KindFloat).
func (v *Value) Float() float64 { return v.f }

// Bool returns the raw bool payload (valid only when Kind() == KindBool).
func (v *Value) Bool() bool { return v.b }

// Str returns the raw string payload (valid only when Kind() == KindString).
func (v *Value) Str() string { return v.s }

// SetStr mutates the string payload in place — used by natives that patch
// a string argument in place (str.pop_f, str.pop_b) since strings are
// mutable through host functions per the shared-resource policy.
func (v *Value) SetStr(s string) { v.s = s }

// Message returns the Error payload's text.
func (v *Value) Message() string { return v.message }

// Inner returns the wrapped value of a Return sentinel.
func (v *Value) Inner() *Value { return v.inner }

// Function returns the Function payload (valid only when Kind() == KindFunction).
func (v *Value) Function() *Function { return v.fn }

// Native returns the Native payload (valid only when Kind() == KindNative).
func (v *Value) Native() *Native { return v.native }

// Opaque returns the host-managed payload (valid only when Kind() == KindOpaque).
func (v *Value) Opaque() any { return v.opaque }

// TypeName returns the opaque value's human-readable type tag, or "" if
// none was set.
func (v *Value) TypeName() string { return v.typeName }

// SetDisplay attaches a display callback, overriding default rendering.
func (v *Value) SetDisplay(d Display) { v.display = d }

// String renders v in plain mode: strings unquoted, numbers in natural
// form, functions/natives as "<kind:name at addr>", opaques as
// "<opaque:addr tag>".
func (v *Value) String() string {
	if v.display != nil {
		return v.display(v)
	}
	switch v.kind {
	case KindNull:
		return "null"
	case KindNone:
		return "none"
	case KindBreak:
		return "<break>"
	case KindContinue:
		return "<continue>"
	case KindError:
		return fmt.Sprintf("<error:%s>", v.message)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', 6, 64)
	case KindString:
		return v.s
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindFunction:
		name := v.fn.Name
		if name == "" {
			name = "(lambda)"
		}
		return fmt.Sprintf("<function:%s at %p>", name, v)
	case KindNative:
		name := v.native.Name
		if name == "" {
			name = "???"
		}
		return fmt.Sprintf("<native:%s at %p>", name, v.native.Fn)
	case KindOpaque:
		if v.typeName != "" {
			return fmt.Sprintf("<opaque:%p %s>", v.opaque, v.typeName)
		}
		return fmt.Sprintf("<opaque:%p>", v.opaque)
	case KindReturn:
		return fmt.Sprintf("<return:%s>", v.inner.Repr())
	default:
		return "???"
	}
}

// Repr renders v in repr mode: like String, but strings are double-quoted
// (and a display callback's output is wrapped in quotes rather than
// overridden, per the display-callback invariant).
func (v *Value) Repr() string {
	if v.display != nil {
		return "\"" + v.display(v) + "\""
	}
	if v.kind == KindString {
		var b strings.Builder
		b.WriteByte('"')
		b.WriteString(v.s)
		b.WriteByte('"')
		return b.String()
	}
	return v.String()
}
