package mila

import "strings"

// Array is the payload behind every "array" opaque value: a resizable,
// reference-counted slice of Values. The C original backs this with a
// realloc'd C array of pointers; a Go slice of *Value is the direct
// translation.
type Array struct {
	items []*Value
}

func newArray() *Array {
	return &Array{}
}

func (a *Array) get(i int) *Value {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

func (a *Array) set(i int, v *Value) bool {
	if i < 0 {
		return false
	}
	for i >= len(a.items) {
		a.items = append(a.items, NewNull())
	}
	a.items[i].Release()
	a.items[i] = v.Retain()
	return true
}

func (a *Array) push(v *Value) {
	a.items = append(a.items, v.Retain())
}

func (a *Array) len() int { return len(a.items) }

func (a *Array) free() {
	for _, v := range a.items {
		v.Release()
	}
	a.items = nil
}

func arrayDisplay(v *Value) string {
	arr, ok := v.Opaque().(*Array)
	if !ok {
		return "<array>"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range arr.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.Repr())
	}
	b.WriteByte(']')
	return b.String()
}

func newArrayValue() *Value {
	a := newArray()
	return NewOpaqueTagged(a, arrayDisplay, "array", func(p any) {
		p.(*Array).free()
	})
}

func asArray(v *Value) (*Array, bool) {
	if v == nil || v.Kind() != KindOpaque {
		return nil, false
	}
	a, ok := v.Opaque().(*Array)
	return a, ok
}
