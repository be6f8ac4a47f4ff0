// Package list implements a singly linked list whose list is just its head node.
//
// Every operation works relative to the receiver as head. A nil *Node is the
// empty chain and is accepted by all read-only operations.
package list

import (
	"errors"
	"os"

	"github.com/qjpcpu/linkedlist/assert"
	fmt2 "github.com/qjpcpu/linkedlist/fmt"
)

// Debug would print splice information
var Debug bool

var debugPrint = fmt2.Fprinter(os.Stderr).PrependTime().PrependTag("list")

// ErrEmptyList returned when building a chain from no values
var ErrEmptyList = errors.New("list: at least one value required")

// Node of a singly linked list, it owns its successor
type Node[T comparable] struct {
	Value T
	Next  *Node[T]
}

// New node with value and successor, next could be nil
func New[T comparable](value T, next *Node[T]) *Node[T] {
	return &Node[T]{Value: value, Next: next}
}

// Build chain in order of values, return the head
func Build[T comparable](first T, rest ...T) *Node[T] {
	head := New(first, nil)
	tail := head
	for _, v := range rest {
		tail.Next = New(v, nil)
		tail = tail.Next
	}
	return head
}

// FromSlice build chain from slice, values must not be empty
func FromSlice[T comparable](values []T) (*Node[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyList
	}
	return Build(values[0], values[1:]...), nil
}

// MustFromSlice panic if values is empty
func MustFromSlice[T comparable](values []T) *Node[T] {
	n, err := FromSlice(values)
	assert.ShouldBeNil(err, "build list from %d values", len(values))
	return n
}

// Push value in front of chain, the receiver is untouched
func (n *Node[T]) Push(value T) *Node[T] {
	return New(value, n)
}

// IsTail is end of chain, the empty chain has no successor either
func (n *Node[T]) IsTail() bool {
	return n == nil || n.Next == nil
}

// Same node, identity rather than value
func (n *Node[T]) Same(other *Node[T]) bool {
	return n == other
}

func debugf(format string, args ...interface{}) {
	if Debug {
		debugPrint(format, args...)
	}
}
