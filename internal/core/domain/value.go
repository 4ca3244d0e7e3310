package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

// Value variants.
const (
	// KindString is a UTF-8 string.
	KindString ValueKind = iota + 1

	// KindInt is a 64-bit signed integer.
	KindInt

	// KindObject is a mapping from string keys to nested values.
	KindObject
)

// String returns the string representation.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is the structured payload carried by documents and rows.
// It is a closed union of string, integer and object; the zero Value
// has no kind and is treated as invalid.
//
// Values are immutable once built: ObjectValue copies its input and
// accessors never expose the backing map.
type Value struct {
	kind ValueKind
	str  string
	num  int64
	obj  map[string]Value
}

// StringValue builds a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue builds an integer Value.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// ObjectValue builds an object Value from fields.
func ObjectValue(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsValid reports whether v holds one of the known variants.
func (v Value) IsValid() bool {
	switch v.kind {
	case KindString, KindInt, KindObject:
		return true
	default:
		return false
	}
}

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the integer payload and whether v is an integer.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// Field returns the named field of an object Value.
// Non-objects have no fields.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.obj[key]
	return f, ok
}

// Len returns the number of fields of an object Value, or 0.
func (v Value) Len() int {
	return len(v.obj)
}

// Keys returns the field names of an object Value in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether v and other hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, f := range v.obj {
			o, ok := other.obj[k]
			if !ok || !f.Equal(o) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders v for debugging: strings are quoted, objects list
// their fields in key order.
func (v Value) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v Value) writeTo(b *strings.Builder) {
	switch v.kind {
	case KindString:
		b.WriteString(strconv.Quote(v.str))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.num, 10))
	case KindObject:
		b.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			v.obj[k].writeTo(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("<invalid>")
	}
}
