package nn

import "iter"

// ordered is a string-keyed map that remembers insertion order.
//
// Overwriting an existing key keeps its original position.
type ordered[V any] struct {
	keys  []string
	items map[string]V
}

func (o *ordered[V]) set(key string, v V) {
	if o.items == nil {
		o.items = make(map[string]V)
	}
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.items[key] = v
}

func (o *ordered[V]) get(key string) (V, bool) {
	v, ok := o.items[key]
	return v, ok
}

func (o *ordered[V]) len() int {
	return len(o.keys)
}

func (o *ordered[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.items[k]) {
				return
			}
		}
	}
}
