package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key-value pairs in insertion order. It is a typed facade over
// github.com/wk8/go-ordered-map; overwriting a key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	m *wk8.OrderedMap
}

// Iterator points at one pair of an OrderedMap. Obtain one with Front or Back.
type Iterator[K comparable, V any] struct {
	Key   *K
	Value V
	pair  *wk8.Pair
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: wk8.New()}
}

// Set will store a key-value pair. If the key already exists,
// it will overwrite the existing value and keep the key's position
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.m.Set(key, val)
}

// SetIfAbsent stores the pair only when key is not yet present and reports whether it did
func (o *OrderedMap[K, V]) SetIfAbsent(key K, val V) bool {
	if _, ok := o.m.Get(key); ok {
		return false
	}
	o.m.Set(key, val)

	return true
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, ok := o.m.Get(key)
	if !ok {
		return *new(V), false
	}

	return val.(V), true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, ok := o.m.Get(key)
	return ok
}

// Delete will remove the key and its associated value.
func (o *OrderedMap[K, V]) Delete(key K) {
	o.m.Delete(key)
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return o.m.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(K))
	}

	return keys
}

// Values returns the values in key insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value.(V))
	}

	return values
}

// Front returns an iterator pointing to the oldest (inserted-first) pair or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o == nil {
		return nil
	}

	return newIterator[K, V](o.m.Oldest())
}

// Back returns an Iterator pointing to the newest (inserted-last) pair or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Iterator[K, V] {
	if o == nil {
		return nil
	}

	return newIterator[K, V](o.m.Newest())
}

// Next gets the next pair or nil when no more values can be iterated on
func (n *Iterator[K, V]) Next() *Iterator[K, V] {
	if n == nil || n.pair == nil {
		return nil
	}

	return newIterator[K, V](n.pair.Next())
}

// Prev gets the previous pair or nil when no more values can be iterated on
func (n *Iterator[K, V]) Prev() *Iterator[K, V] {
	if n == nil || n.pair == nil {
		return nil
	}

	return newIterator[K, V](n.pair.Prev())
}

func newIterator[K comparable, V any](pair *wk8.Pair) *Iterator[K, V] {
	if pair == nil {
		return nil
	}

	key := pair.Key.(K)

	return &Iterator[K, V]{
		Key:   &key,
		Value: pair.Value.(V),
		pair:  pair,
	}
}
