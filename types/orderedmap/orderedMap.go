// Package orderedmap provides a generic map which remembers insertion order. Command children, named arguments and
// argument groups are all kept in registration order with it.
package orderedmap

import (
	"container/list"
)

// Iterator walks an OrderedMap starting at OrderedMap.Front or OrderedMap.Back
type Iterator[K comparable, V any] struct {
	forward bool
	el      *list.Element
}

// OrderedMap stores key-value pairs in insertion order. Overwriting an existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores a key-value pair, replacing the value of an existing key in place
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = entry[K, V]{key: key, value: val}
		return
	}
	o.store[key] = o.keys.PushBack(entry[K, V]{key: key, value: val})
}

// Get returns the value associated with the key. The second return value is false when the key is absent.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}
	return e.Value.(entry[K, V]).value, true
}

// Has reports whether the key is stored
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes the key and its associated value
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}
	o.keys.Remove(e)
	delete(o.store, key)
}

// Count returns the number of keys in the OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	if o == nil {
		return 0
	}
	return o.keys.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Count())
	for it := o.Front(); it != nil; it = it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values returns the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.Count())
	for it := o.Front(); it != nil; it = it.Next() {
		values = append(values, it.Value())
	}
	return values
}

// Front returns an iterator pointing to the oldest (inserted-first) entry, or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o == nil || o.keys.Len() == 0 {
		return nil
	}
	return &Iterator[K, V]{forward: true, el: o.keys.Front()}
}

// Back returns an iterator pointing to the newest (inserted-last) entry, or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Iterator[K, V] {
	if o == nil || o.keys.Len() == 0 {
		return nil
	}
	return &Iterator[K, V]{forward: false, el: o.keys.Back()}
}

// Next moves the iterator along its direction and returns nil when no more entries can be iterated on
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	if it == nil || it.el == nil {
		return nil
	}
	if it.forward {
		it.el = it.el.Next()
	} else {
		it.el = it.el.Prev()
	}
	if it.el == nil {
		return nil
	}
	return it
}

// Key returns the key of the current entry
func (it *Iterator[K, V]) Key() K {
	return it.el.Value.(entry[K, V]).key
}

// Value returns the value of the current entry
func (it *Iterator[K, V]) Value() V {
	return it.el.Value.(entry[K, V]).value
}
