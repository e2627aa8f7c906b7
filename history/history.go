// SPDX-License-Identifier: MIT

// Package history keeps linear undo/redo stacks of whole-state snapshots.
//
// The manager never looks inside a Snapshot; callers decide when to capture
// state (Push before every mutating action) and what to restore.
//
//	past:   oldest ... newest   (Undo pops the newest)
//	future: oldest ... newest   (Redo pops the newest)
//
// Push clears future. Undo moves the caller's current state onto future and
// Redo moves it back onto past, so the two stacks never share an entry.
package history

import (
	"fmt"
	"sync"
)

// Snapshot is the full editable state: both operand texts and the last result.
type Snapshot struct {
	A      string
	B      string
	Result string
}

// Unlimited disables eviction of old entries (the default).
const Unlimited = 0

// Option configures a Manager.
type Option func(*Manager)

// WithLimit caps the number of undo entries; the oldest are dropped first.
// Panics when n < 0. Unlimited (0) removes the cap.
func WithLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("history: WithLimit(%d): limit must be >= 0", n))
	}

	return func(m *Manager) { m.limit = n }
}

// Manager owns the past and future stacks. Safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	past   []Snapshot
	future []Snapshot
	limit  int
}

// New returns an empty manager.
func New(opts ...Option) *Manager {
	m := &Manager{limit: Unlimited}
	for _, set := range opts {
		set(m)
	}

	return m
}

// Push records s as the state to return to and clears the redo stack.
func (m *Manager) Push(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.past = append(m.past, s)
	m.future = m.future[:0]
	m.evict()
}

// Undo pops the newest past entry and saves current for Redo.
// It reports false and changes nothing when there is nothing to undo.
func (m *Manager) Undo(current Snapshot) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := pop(&m.past)
	if !ok {
		return Snapshot{}, false
	}
	m.future = append(m.future, current)

	return prev, true
}

// Redo pops the newest future entry and saves current for Undo.
// It reports false and changes nothing when there is nothing to redo.
func (m *Manager) Redo(current Snapshot) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, ok := pop(&m.future)
	if !ok {
		return Snapshot{}, false
	}
	m.past = append(m.past, current)
	m.evict()

	return next, true
}

// CanUndo reports whether Undo would succeed.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.past) > 0
}

// CanRedo reports whether Redo would succeed.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.future) > 0
}

// Len returns the sizes of the undo and redo stacks.
func (m *Manager) Len() (past, future int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.past), len(m.future)
}

// Reset drops both stacks.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.past, m.future = nil, nil
}

// evict drops the oldest past entries beyond the limit. Caller holds mu.
func (m *Manager) evict() {
	if m.limit == Unlimited || len(m.past) <= m.limit {
		return
	}
	drop := len(m.past) - m.limit
	m.past = append(m.past[:0], m.past[drop:]...)
}

func pop(stack *[]Snapshot) (Snapshot, bool) {
	n := len(*stack)
	if n == 0 {
		return Snapshot{}, false
	}
	s := (*stack)[n-1]
	*stack = (*stack)[:n-1]

	return s, true
}
