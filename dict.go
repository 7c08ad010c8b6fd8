package mila

import (
	"sort"
	"strings"
)

// Dict is the payload behind every "dict" opaque value. The source this is
// grounded on chains fixed-size hash buckets by hand; a Go map supplies
// the same average-case O(1) get/set/remove with no bucket-count tuning
// and no hand-rolled collision chain, so that machinery isn't reproduced
// here — see DESIGN.md.
type Dict struct {
	m map[string]*Value
}

func newDict() *Dict {
	return &Dict{m: make(map[string]*Value)}
}

func (d *Dict) get(key string) *Value {
	if v, ok := d.m[key]; ok {
		return v
	}
	return nil
}

func (d *Dict) set(key string, v *Value) {
	if old, ok := d.m[key]; ok {
		old.Release()
	}
	d.m[key] = v.Retain()
}

func (d *Dict) remove(key string) bool {
	if old, ok := d.m[key]; ok {
		old.Release()
		delete(d.m, key)
		return true
	}
	return false
}

func (d *Dict) free() {
	for _, v := range d.m {
		v.Release()
	}
	d.m = nil
}

func dictDisplay(v *Value) string {
	d, ok := v.Opaque().(*Dict)
	if !ok {
		return "<dict>"
	}
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(d.m[k].Repr())
	}
	b.WriteByte('}')
	return b.String()
}

func newDictValue() *Value {
	d := newDict()
	return NewOpaqueTagged(d, dictDisplay, "dict", func(a any) {
		a.(*Dict).free()
	})
}

func asDict(v *Value) (*Dict, bool) {
	if v == nil || v.Kind() != KindOpaque {
		return nil, false
	}
	d, ok := v.Opaque().(*Dict)
	return d, ok
}
