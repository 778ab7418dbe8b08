package stack

import (
	"errors"

	"github.com/katalvlaran/mcore/core"
)

// Sentinel errors for stack operations.
var (
	// ErrNilStack indicates a mutating call on a nil *Stack.
	ErrNilStack = errors.New("stack: stack is nil")

	// ErrStackFreed indicates a push after Free.
	ErrStackFreed = errors.New("stack: stack is freed")
)

// node is one stack cell; below is nil for the base.
type node struct {
	value core.Value
	below *node
}

// Stack is a singly linked LIFO list.
type Stack struct {
	top   *node
	count int
	freed bool
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push places v on top of the stack.
// Returns ErrNilStack or ErrStackFreed for an unusable receiver.
// Complexity: O(1).
func (s *Stack) Push(v core.Value) error {
	if s == nil {
		return ErrNilStack
	}
	if s.freed {
		return ErrStackFreed
	}
	s.top = &node{value: v, below: s.top}
	s.count++

	return nil
}

// Pop removes the top node and returns its Value.
// On an empty (or nil) stack it returns the zero Value and false with no
// side effect. The payload is not released: the caller now owns it and
// may call Release on the returned Value when done.
// Complexity: O(1).
func (s *Stack) Pop() (core.Value, bool) {
	if s == nil || s.top == nil {
		return core.Value{}, false
	}
	n := s.top
	s.top = n.below
	n.below = nil
	s.count--

	return n.value, true
}

// Peek returns the top Value without removing it, or false when empty.
// Complexity: O(1).
func (s *Stack) Peek() (core.Value, bool) {
	if s == nil || s.top == nil {
		return core.Value{}, false
	}

	return s.top.value, true
}

// IsEmpty reports whether the stack is nil or holds no nodes.
func (s *Stack) IsEmpty() bool {
	return s == nil || s.top == nil
}

// Size returns the number of stacked values, or 0 for a nil stack.
func (s *Stack) Size() int {
	if s == nil {
		return 0
	}

	return s.count
}

// Free unlinks every node from top to bottom, releasing owned payloads,
// and marks the stack unusable for further pushes.
// Freeing a nil or already freed stack is a no-op.
// Complexity: O(n).
func (s *Stack) Free() {
	if s == nil || s.freed {
		return
	}
	for n := s.top; n != nil; {
		below := n.below
		n.below = nil
		n.value.Release()
		n = below
	}
	s.top = nil
	s.count = 0
	s.freed = true
}
