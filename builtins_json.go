package mila

import (
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// registerJSON wires json.parse/json.stringify — a supplemental feature
// the engine proper never needed in its own grammar, added so scripts can
// exchange structured data with the host without hand-rolling a parser.
func registerJSON(env *Env) {
	env.define("json.parse", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if !MatchTypes(argv, KindString) {
			return NewNull()
		}
		v, err := jsonParseAny([]byte(argv[0].Str()))
		if err != nil {
			return NewErrorf("json.parse: %s", err.Error())
		}
		return v
	}, "json.parse"))

	env.define("json.stringify", NewNative(func(env *Env, argc int, argv []*Value) *Value {
		if len(argv) == 0 {
			return NewString("null")
		}
		var b strings.Builder
		valueToJSON(&b, argv[0])
		return NewString(b.String())
	}, "json.stringify"))
}

func jsonParseAny(data []byte) (*Value, error) {
	v, dt, _, err := jsonparser.Get(data)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, err
	}
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(v)
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case jsonparser.Number:
		if strings.ContainsAny(string(v), ".eE") {
			f, err := strconv.ParseFloat(string(v), 64)
			if err != nil {
				return nil, err
			}
			return NewFloat(f), nil
		}
		i, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return nil, err
		}
		return NewInt(i), nil
	case jsonparser.Boolean:
		return NewBool(string(v) == "true"), nil
	case jsonparser.Null:
		return NewNull(), nil
	case jsonparser.Array:
		arrVal := newArrayValue()
		arr, _ := asArray(arrVal)
		var outerErr error
		_, _ = jsonparser.ArrayEach(v, func(item []byte, dataType jsonparser.ValueType, offset int, err error) {
			if outerErr != nil {
				return
			}
			elem, e := jsonParseAny(item)
			if e != nil {
				outerErr = e
				return
			}
			arr.push(elem)
			elem.Release()
		})
		if outerErr != nil {
			arrVal.Release()
			return nil, outerErr
		}
		return arrVal, nil
	case jsonparser.Object:
		dictVal := newDictValue()
		d, _ := asDict(dictVal)
		var outerErr error
		_ = jsonparser.ObjectEach(v, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
			if outerErr != nil {
				return nil
			}
			elem, e := jsonParseAny(value)
			if e != nil {
				outerErr = e
				return nil
			}
			d.set(string(key), elem)
			elem.Release()
			return nil
		})
		if outerErr != nil {
			dictVal.Release()
			return nil, outerErr
		}
		return dictVal, nil
	default:
		return NewNull(), nil
	}
}

func valueToJSON(b *strings.Builder, v *Value) {
	switch v.Kind() {
	case KindString:
		b.WriteString(strconv.Quote(v.Str()))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindOpaque:
		if arr, ok := asArray(v); ok {
			b.WriteByte('[')
			for i := 0; i < arr.len(); i++ {
				if i > 0 {
					b.WriteByte(',')
				}
				valueToJSON(b, arr.get(i))
			}
			b.WriteByte(']')
			return
		}
		if d, ok := asDict(v); ok {
			b.WriteByte('{')
			first := true
			for k, item := range d.m {
				if !first {
					b.WriteByte(',')
				}
				first = false
				b.WriteString(strconv.Quote(k))
				b.WriteByte(':')
				valueToJSON(b, item)
			}
			b.WriteByte('}')
			return
		}
		b.WriteString("null")
	default:
		b.WriteString("null")
	}
}
