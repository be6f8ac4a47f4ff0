package list

import (
	"bytes"
	"fmt"

	"github.com/qjpcpu/linkedlist/json"
)

// MarshalJSON encode chain as array of values, the empty chain is null
func (n *Node[T]) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Values())
}

// UnmarshalJSON decode array of values, n becomes the head of decoded chain.
// null leaves n untouched.
func (n *Node[T]) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("list: decode values: %w", err)
	}
	head, err := FromSlice(values)
	if err != nil {
		return err
	}
	*n = *head
	return nil
}
