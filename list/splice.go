package list

// InsertAfter splice newNode after the first node matches fn,
// or after the last node if nothing matches. The head is returned.
func (n *Node[T]) InsertAfter(newNode *Node[T], fn func(*Node[T]) bool) *Node[T] {
	if n == nil {
		return newNode
	}
	at := n
	for at.Next != nil && !fn(at) {
		at = at.Next
	}
	at.spliceAfter(newNode)
	return n
}

// InsertBefore splice newNode before the first node matches fn.
// The head is never tested, so a chain without a matched successor
// gets newNode appended. The head is returned.
func (n *Node[T]) InsertBefore(newNode *Node[T], fn func(*Node[T]) bool) *Node[T] {
	if n == nil {
		return newNode
	}
	at := n
	for at.Next != nil && !fn(at.Next) {
		at = at.Next
	}
	at.spliceAfter(newNode)
	return n
}

// DeleteWhen remove the first node matches fn, return the new head.
// The removed node is detached from chain.
func (n *Node[T]) DeleteWhen(fn func(*Node[T]) bool) *Node[T] {
	if n == nil {
		return nil
	}
	if fn(n) {
		head := n.Next
		n.Next = nil
		debugf("delete head %v", n.Value)
		return head
	}
	for prev := n; prev.Next != nil; prev = prev.Next {
		if target := prev.Next; fn(target) {
			prev.Next = target.Next
			target.Next = nil
			debugf("delete %v after %v", target.Value, prev.Value)
			break
		}
	}
	return n
}

// DeleteNode remove target by identity, return the new head
func (n *Node[T]) DeleteNode(target *Node[T]) *Node[T] {
	return n.DeleteWhen(target.Same)
}

func (n *Node[T]) spliceAfter(newNode *Node[T]) {
	newNode.Next = n.Next
	n.Next = newNode
	debugf("insert %v after %v", newNode.Value, n.Value)
}
