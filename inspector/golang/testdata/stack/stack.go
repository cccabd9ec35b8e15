// Package stack provides a generic LIFO container.
//
//	s := stack.New[string]()
//	s.Push("a")
package stack

import "fmt"

// DefaultCapacity is the initial capacity of a new stack
const DefaultCapacity = 8

var created int

// Container is implemented by collections that report their size
type Container interface {
	// Len returns number of items
	Len() int
}

// Stack is a generic LIFO container.
// The zero value is ready to use.
type Stack[T any] struct {
	// Name labels the stack in String output
	Name  string
	items []T
}

// Label is a stack label
type Label = string

// New creates an empty stack
func New[T any]() *Stack[T] {
	created++
	return &Stack[T]{items: make([]T, 0, DefaultCapacity)}
}

// Push adds an item on top
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top item
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Len returns number of items
func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) String() string {
	return fmt.Sprintf("Stack with %d items", len(s.items))
}

// Debug dumps stack internals.
//
//docfold:hidden
func Debug[T any](s *Stack[T]) string {
	return fmt.Sprintf("%#v", s.items)
}

type frame struct {
	depth int
}

func (f frame) Depth() int {
	return f.depth
}
