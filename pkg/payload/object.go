package payload

import (
	"iter"
	"slices"
	"sort"
)

// Object is a JSON object that remembers key insertion order.
// It is not safe for concurrent mutation.
type Object struct {
	keys []string
	vals map[string]Value
}

func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// ObjectFromMap builds an object from m with keys in sorted order.
func ObjectFromMap(m map[string]any) (*Object, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	o := NewObject()
	for _, k := range keys {
		v, err := FromAny(m[k])
		if err != nil {
			return nil, err
		}
		o.Set(k, v)
	}
	return o, nil
}

// Len returns the number of keys. A nil object has length zero.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.vals[key]
	return v, ok
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores v under key. Existing keys keep their position.
func (o *Object) Set(key string, v Value) {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.vals[key]; !ok {
		return false
	}
	delete(o.vals, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// All iterates over key/value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Cloning nil yields an empty object.
func (o *Object) Clone() *Object {
	out := NewObject()
	for k, v := range o.All() {
		out.Set(k, v.Clone())
	}
	return out
}

// Map converts the object into a plain map. Key order is lost.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, o.Len())
	for k, v := range o.All() {
		out[k] = v.Interface()
	}
	return out
}

// Equal compares keys and values, ignoring order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for k, v := range o.All() {
		ov, ok := other.Get(k)
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}

// Contains reports whether every key of sub is present in o with an equal value.
func (o *Object) Contains(sub *Object) bool {
	for k, v := range sub.All() {
		ov, ok := o.Get(k)
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}
