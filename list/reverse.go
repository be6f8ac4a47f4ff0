package list

// Reverse create a new chain with values in reverse order, n is untouched
func (n *Node[T]) Reverse() *Node[T] {
	var head *Node[T]
	for node := range n.Each() {
		head = New(node.Value, head)
	}
	return head
}

// ReverseInPlace relink nodes of chain backwards, return the new head
func (n *Node[T]) ReverseInPlace() *Node[T] {
	return n.ReverseOnto(nil)
}

// ReverseOnto relink nodes of chain backwards and attach n, the new tail, to successor.
// No node is allocated, the old tail is returned as new head.
func (n *Node[T]) ReverseOnto(successor *Node[T]) *Node[T] {
	if n == nil {
		return successor
	}
	prev, cur := successor, n
	for cur != nil {
		next := cur.Next
		cur.Next = prev
		prev, cur = cur, next
	}
	debugf("reverse from %v onto %v, new head %v", n.Value, valueOf(successor), prev.Value)
	return prev
}

func valueOf[T comparable](n *Node[T]) interface{} {
	if n == nil {
		return "<nil>"
	}
	return n.Value
}
