package list

import "iter"

// Each yields every node from n to the end of chain
func (n *Node[T]) Each() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for cur := n; cur != nil; cur = cur.Next {
			if !yield(cur) {
				return
			}
		}
	}
}

// Values of chain in order
func (n *Node[T]) Values() []T {
	var out []T
	for node := range n.Each() {
		out = append(out, node.Value)
	}
	return out
}

// Len of chain
func (n *Node[T]) Len() int {
	var size int
	for range n.Each() {
		size++
	}
	return size
}

// Last node of chain, nil for empty chain
func (n *Node[T]) Last() *Node[T] {
	var last *Node[T]
	for node := range n.Each() {
		last = node
	}
	return last
}

// Find first node matches fn
func (n *Node[T]) Find(fn func(*Node[T]) bool) *Node[T] {
	for node := range n.Each() {
		if fn(node) {
			return node
		}
	}
	return nil
}

// Map create a new chain by fn, source chain is untouched
// example: Map(Build(1, 2), func(i int) string { return strconv.Itoa(i) })
func Map[T, U comparable](n *Node[T], fn func(T) U) *Node[U] {
	var head, tail *Node[U]
	for node := range n.Each() {
		next := New(fn(node.Value), nil)
		if head == nil {
			head = next
		} else {
			tail.Next = next
		}
		tail = next
	}
	return head
}

// Reduce with initval and reduce function
// example: Reduce(Build(1, 2), 0, func(sum int, i int) int { return sum + i })
func Reduce[T comparable, M any](n *Node[T], initval M, fn func(M, T) M) M {
	memo := initval
	for node := range n.Each() {
		memo = fn(memo, node.Value)
	}
	return memo
}
