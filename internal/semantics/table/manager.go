package table

import "github.com/google/uuid"

// Manager tracks the current container while a tree is walked
type Manager[K, V any] struct {
	current *Container[K, V]
}

// NewManager creates a manager whose root container has the nil id
func NewManager[K, V any](equal func(a, b K) bool) *Manager[K, V] {
	return &Manager[K, V]{current: NewContainer[K, V](uuid.Nil, nil, equal)}
}

func (m *Manager[K, V]) Current() *Container[K, V] {
	return m.current
}

func (m *Manager[K, V]) Root() *Container[K, V] {
	return m.current.Root()
}

// Enter moves into the child with the given id. An existing child is
// cleared and reused, a missing one is created. The seed entries are
// declared in the entered scope. The returned func moves back out.
func (m *Manager[K, V]) Enter(id uuid.UUID, seed ...Entry[K, V]) (leave func()) {
	if child, ok := m.current.Child(id); ok {
		child.Clear()
		for _, e := range seed {
			child.Set(e.Key, e.Value)
		}
		m.current = child
	} else {
		// the id is known to be free
		child, _ := m.current.AddChild(id, seed...)
		m.current = child
	}

	entered := m.current
	return func() {
		if entered.parent != nil {
			m.current = entered.parent
		}
	}
}

// Depth is the number of containers between the current one and the root
func (m *Manager[K, V]) Depth() int {
	depth := 0
	for c := m.current; c.parent != nil; c = c.parent {
		depth++
	}
	return depth
}
