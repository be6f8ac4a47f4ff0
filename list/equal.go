package list

// Equal compare chains by value, position by position.
// Chains of different length are never equal.
func (n *Node[T]) Equal(other *Node[T]) bool {
	a, b := n, other
	for a != nil && b != nil {
		if a == b {
			// the rest is shared
			return true
		}
		if a.Value != b.Value {
			return false
		}
		a, b = a.Next, b.Next
	}
	return a == nil && b == nil
}
