package table

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Entry is a single key/value pair held by a container
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Container holds the entries declared in one scope. Entries keep their
// declaration order and keys are compared with the equality function the
// container was built with, which lets method signatures match loosely.
type Container[K, V any] struct {
	id       uuid.UUID
	parent   *Container[K, V]
	children map[uuid.UUID]*Container[K, V]
	entries  []Entry[K, V]
	equal    func(a, b K) bool
}

// Equal is the equality function for comparable keys
func Equal[K comparable](a, b K) bool {
	return a == b
}

// NewContainer creates a container with an optional parent scope
func NewContainer[K, V any](id uuid.UUID, parent *Container[K, V], equal func(a, b K) bool, seed ...Entry[K, V]) *Container[K, V] {
	c := &Container[K, V]{
		id:       id,
		parent:   parent,
		children: make(map[uuid.UUID]*Container[K, V]),
		entries:  make([]Entry[K, V], 0, len(seed)),
		equal:    equal,
	}
	for _, e := range seed {
		c.Set(e.Key, e.Value)
	}
	return c
}

func (c *Container[K, V]) ID() uuid.UUID {
	return c.id
}

func (c *Container[K, V]) Parent() *Container[K, V] {
	return c.parent
}

// Child returns the direct child registered under id
func (c *Container[K, V]) Child(id uuid.UUID) (*Container[K, V], bool) {
	child, ok := c.children[id]
	return child, ok
}

// AddChild creates a child scope. Ids are unique among siblings.
func (c *Container[K, V]) AddChild(id uuid.UUID, seed ...Entry[K, V]) (*Container[K, V], error) {
	if _, exists := c.children[id]; exists {
		return nil, errors.Errorf("container %s already has a child %s", c.id, id)
	}
	child := NewContainer(id, c, c.equal, seed...)
	c.children[id] = child
	return child, nil
}

func (c *Container[K, V]) index(key K) int {
	for i, e := range c.entries {
		if c.equal(e.Key, key) {
			return i
		}
	}
	return -1
}

// Declare adds a key to this scope
func (c *Container[K, V]) Declare(key K, value V) error {
	if c.index(key) >= 0 {
		return errors.Errorf("%v is already declared in %s", key, c.id)
	}
	c.entries = append(c.entries, Entry[K, V]{Key: key, Value: value})
	return nil
}

// Set overwrites the key in this scope, declaring it when missing
func (c *Container[K, V]) Set(key K, value V) {
	if i := c.index(key); i >= 0 {
		c.entries[i].Value = value
		return
	}
	c.entries = append(c.entries, Entry[K, V]{Key: key, Value: value})
}

// Get finds a key in this scope only
func (c *Container[K, V]) Get(key K) (V, bool) {
	if i := c.index(key); i >= 0 {
		return c.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// Lookup finds a key in this scope or parent scopes and returns the
// container that declares it.
func (c *Container[K, V]) Lookup(key K) (V, *Container[K, V], bool) {
	for scope := c; scope != nil; scope = scope.parent {
		if value, ok := scope.Get(key); ok {
			return value, scope, true
		}
	}
	var zero V
	return zero, nil, false
}

// Contains reports whether the key is declared here, or along the parent
// chain when recursive is set.
func (c *Container[K, V]) Contains(key K, recursive bool) bool {
	if !recursive {
		return c.index(key) >= 0
	}
	_, _, ok := c.Lookup(key)
	return ok
}

// AddOrUpdate writes to the nearest container declaring the key, or
// declares it here.
func (c *Container[K, V]) AddOrUpdate(key K, value V) {
	if _, owner, ok := c.Lookup(key); ok {
		owner.Set(key, value)
		return
	}
	c.Set(key, value)
}

func (c *Container[K, V]) Remove(key K) bool {
	i := c.index(key)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return true
}

// Clear drops the entries of this scope. Children are kept so they can be
// reused by id.
func (c *Container[K, V]) Clear() {
	c.entries = c.entries[:0]
}

// Replace swaps this scope's entries for a copy of entries
func (c *Container[K, V]) Replace(entries []Entry[K, V]) {
	c.entries = append(c.entries[:0:0], entries...)
}

func (c *Container[K, V]) Len() int {
	return len(c.entries)
}

// Entries returns a copy of this scope's entries in declaration order
func (c *Container[K, V]) Entries() []Entry[K, V] {
	result := make([]Entry[K, V], len(c.entries))
	copy(result, c.entries)
	return result
}

func (c *Container[K, V]) Keys() []K {
	keys := make([]K, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Root walks up to the outermost container
func (c *Container[K, V]) Root() *Container[K, V] {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}
