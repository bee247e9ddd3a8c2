// Package thicket implements the core of a parser for an
// indentation-structured, human-authored markup notation that produces a
// tree of typed values: scalars, lists, and maps, with multi-line strings,
// quoted strings, radix-prefixed numbers, and an extensible
// conversion-specifier mechanism for routing blocks to named sub-parsers.
package thicket

import "fmt"

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt    // signed integer
	KindUint   // unsigned integer
	KindFloat  // 64-bit float
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the tagged-union result of parsing a markup document. The zero
// Value is KindNull.
//
// Scalar kinds (null, bool, int, uint, float, string) are comparable and
// may be used as map keys. List and Map values carry reference types
// internally and are not comparable; they can only ever appear as values,
// never as keys, enforced by the parser rather than the type system.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	list []Value
	m    *Map
}

func Null() Value              { return Value{kind: KindNull} }
func Bool(b bool) Value        { return Value{kind: KindBool, b: b} }
func Int(i int64) Value        { return Value{kind: KindInt, i: i} }
func Uint(u uint64) Value      { return Value{kind: KindUint, u: u} }
func Float(f float64) Value    { return Value{kind: KindFloat, f: f} }
func String(s string) Value    { return Value{kind: KindString, s: s} }
func List(items []Value) Value { return Value{kind: KindList, list: items} }
func MapValue(m *Map) Value    { return Value{kind: KindMap, m: m} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() (bool, bool)       { return v.b, v.kind == KindBool }
func (v Value) Int() (int64, bool)       { return v.i, v.kind == KindInt }
func (v Value) Uint() (uint64, bool)     { return v.u, v.kind == KindUint }
func (v Value) Float() (float64, bool)   { return v.f, v.kind == KindFloat }
func (v Value) String_() (string, bool)  { return v.s, v.kind == KindString }
func (v Value) List() ([]Value, bool)    { return v.list, v.kind == KindList }
func (v Value) Map() (*Map, bool)        { return v.m, v.kind == KindMap }

// Interface converts a Value to its natural Go representation: nil, bool,
// int64, uint64, float64, string, []any, or map-like *Map for maps (maps
// may have non-string keys, so they are not flattened to map[string]any).
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		return v.m
	default:
		return nil
	}
}

// keyID returns a canonical string that uniquely identifies a scalar
// Value when used as a map key. List and Map values never reach here;
// the parser only ever offers scalar values as keys.
func keyID(v Value) string {
	switch v.kind {
	case KindNull:
		return "n:"
	case KindBool:
		if v.b {
			return "b:true"
		}
		return "b:false"
	case KindInt:
		return fmt.Sprintf("i:%d", v.i)
	case KindUint:
		return fmt.Sprintf("u:%d", v.u)
	case KindFloat:
		return fmt.Sprintf("f:%g", v.f)
	case KindString:
		return "s:" + v.s
	default:
		return fmt.Sprintf("?:%p", &v)
	}
}

// MapEntry is one key/value pair of a Map, in insertion order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an insertion-ordered mapping from Value to Value. Keys are
// restricted by the parser to null, bool, int, uint, float, or string
// values; inserting a duplicate key overwrites the previous entry's value
// in place, preserving its original position (last write wins).
type Map struct {
	entries []MapEntry
	index   map[string]int
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

// Set inserts or overwrites key with value, preserving insertion order of
// the first occurrence of key.
func (m *Map) Set(key, value Value) {
	id := keyID(key)
	if i, ok := m.index[id]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[id] = len(m.entries)
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
}

// Get looks up the value for key.
func (m *Map) Get(key Value) (Value, bool) {
	if i, ok := m.index[keyID(key)]; ok {
		return m.entries[i].Value, true
	}
	return Value{}, false
}

// Has reports whether key is present.
func (m *Map) Has(key Value) bool {
	_, ok := m.index[keyID(key)]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns the entries in insertion order. The slice must not be
// mutated by callers.
func (m *Map) Entries() []MapEntry { return m.entries }

// StringKeyed returns the map as a map[string]any, for callers that know
// all keys are strings (e.g. decoding into a Go struct). Non-string keys
// are skipped.
func (m *Map) StringKeyed() map[string]any {
	out := make(map[string]any, len(m.entries))
	for _, e := range m.entries {
		if s, ok := e.Key.String_(); ok {
			out[s] = e.Value.Interface()
		}
	}
	return out
}
