// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scaffold

import (
	"iter"

	"gopkg.in/yaml.v3"
)

// Entry is one key/value pair of a map-valued field.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Pair returns an entry.
func Pair[K comparable, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Value: v}
}

// Entries is the resolved form of a map-valued field.
// It keeps the order entries were put in; a key put twice appears twice.
type Entries[K comparable, V any] []Entry[K, V]

// Lookup returns the value of the last entry with key k.
func (es Entries[K, V]) Lookup(k K) (V, bool) {
	for i := len(es) - 1; i >= 0; i-- {
		if es[i].Key == k {
			return es[i].Value, true
		}
	}
	var zero V
	return zero, false
}

// Keys yields the keys in order, duplicates included.
func (es Entries[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range es {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// All yields every pair in order.
func (es Entries[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range es {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// ToMap collapses the entries into a map; later keys win.
func (es Entries[K, V]) ToMap() map[K]V {
	m := make(map[K]V, len(es))
	for _, e := range es {
		m[e.Key] = e.Value
	}
	return m
}

// MarshalYAML renders the entries as a mapping in their original order.
func (es Entries[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range es {
		var k, v yaml.Node
		if err := k.Encode(e.Key); err != nil {
			return nil, err
		}
		if err := v.Encode(e.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &k, &v)
	}
	return node, nil
}
