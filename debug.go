package thicket

import "github.com/davecgh/go-spew/spew"

// Dump renders v as a deeply-expanded, human-readable tree for debugging
// and test failure output. Unlike Value.Interface, it shows Map entries
// in insertion order with their Go-level types intact.
func Dump(v Value) string {
	return spew.Sdump(dumpable(v))
}

// dumpable converts v into a form spew prints usefully: maps as their
// ordered MapEntry slice rather than the opaque *Map pointer.
func dumpable(v Value) any {
	switch v.Kind() {
	case KindList:
		items, _ := v.List()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = dumpable(item)
		}
		return out
	case KindMap:
		m, _ := v.Map()
		entries := m.Entries()
		out := make([]struct {
			Key   any
			Value any
		}, len(entries))
		for i, e := range entries {
			out[i].Key = dumpable(e.Key)
			out[i].Value = dumpable(e.Value)
		}
		return out
	default:
		return v.Interface()
	}
}
