package tag

import (
	"iter"
	"slices"
	"strings"
)

// Attr is a single attribute name and its unescaped value.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an immutable set of stream attributes.
//
// Keys are unique; With replaces an existing key. Attributes are held in
// ascending key order so serialization never depends on insertion order.
// The zero value is an empty set ready to use.
//
// Every method returns a new value and leaves the receiver untouched, so an
// Attributes can be shared between goroutines and reused as a base for
// several streams:
//
//	base := tag.NewAttributes("classes", "active")
//	a := base.With("targets", "#a")
//	b := base.With("targets", "#b")
type Attributes struct {
	attrs []Attr
}

// NewAttributes builds a set from alternating key/value pairs.
// A trailing key without a value is given an empty value.
func NewAttributes(kv ...string) Attributes {
	var a Attributes
	for i := 0; i < len(kv); i += 2 {
		value := ""
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		a = a.With(kv[i], value)
	}
	return a
}

// AttributesFrom copies a map into a set.
func AttributesFrom(m map[string]string) Attributes {
	attrs := make([]Attr, 0, len(m))
	for k, v := range m {
		attrs = append(attrs, Attr{Key: k, Value: v})
	}
	slices.SortFunc(attrs, func(x, y Attr) int {
		return strings.Compare(x.Key, y.Key)
	})
	return Attributes{attrs: attrs}
}

// With returns a copy of the set with key set to value.
func (a Attributes) With(key, value string) Attributes {
	i, found := a.search(key)
	if found {
		attrs := slices.Clone(a.attrs)
		attrs[i].Value = value
		return Attributes{attrs: attrs}
	}
	attrs := make([]Attr, 0, len(a.attrs)+1)
	attrs = append(attrs, a.attrs[:i]...)
	attrs = append(attrs, Attr{Key: key, Value: value})
	attrs = append(attrs, a.attrs[i:]...)
	return Attributes{attrs: attrs}
}

// Merge returns the union of both sets. Keys in other win.
func (a Attributes) Merge(other Attributes) Attributes {
	out := a
	for _, attr := range other.attrs {
		out = out.With(attr.Key, attr.Value)
	}
	return out
}

// Without returns a copy of the set with key removed.
func (a Attributes) Without(key string) Attributes {
	i, found := a.search(key)
	if !found {
		return a
	}
	return Attributes{attrs: slices.Delete(slices.Clone(a.attrs), i, i+1)}
}

// Get returns the value stored for key.
func (a Attributes) Get(key string) (string, bool) {
	i, found := a.search(key)
	if !found {
		return "", false
	}
	return a.attrs[i].Value, true
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.attrs)
}

// All iterates the attributes in serialization order.
func (a Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, attr := range a.attrs {
			if !yield(attr.Key, attr.Value) {
				return
			}
		}
	}
}

// Keys returns the attribute names in serialization order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a.attrs))
	for i, attr := range a.attrs {
		keys[i] = attr.Key
	}
	return keys
}

// Map returns the attributes as a freshly allocated map.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a.attrs))
	for _, attr := range a.attrs {
		m[attr.Key] = attr.Value
	}
	return m
}

func (a Attributes) search(key string) (int, bool) {
	return slices.BinarySearchFunc(a.attrs, key, func(attr Attr, key string) int {
		return strings.Compare(attr.Key, key)
	})
}
