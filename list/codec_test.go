package list

import (
	"encoding/json"
	"testing"

	json2 "github.com/qjpcpu/linkedlist/json"
	"github.com/stretchr/testify/assert"
)

func TestMarshalJSON(t *testing.T) {
	assert := assert.New(t)
	data, err := json2.Marshal(Build(1, 2, 3))
	assert.Nil(err)
	assert.Equal(`[1,2,3]`, string(data))

	data, err = json.Marshal(struct {
		L *Node[string] `json:"l"`
	}{L: Build("a", "b")})
	assert.Nil(err)
	assert.Equal(`{"l":["a","b"]}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	assert := assert.New(t)
	var l Node[int]
	assert.Nil(json2.Unmarshal([]byte(`[4,5,6]`), &l))
	assert.True(l.Equal(Build(4, 5, 6)))

	head := new(Node[int])
	assert.Equal(ErrEmptyList, json.Unmarshal([]byte(`[]`), head))
	assert.NotNil(json.Unmarshal([]byte(`["x"]`), head))
}

func TestJSONNull(t *testing.T) {
	assert := assert.New(t)
	var empty *Node[int]
	data, err := empty.MarshalJSON()
	assert.Nil(err)
	assert.Equal("null", string(data))

	data, err = json.Marshal(struct {
		L *Node[int] `json:"l"`
	}{})
	assert.Nil(err)
	assert.Equal(`{"l":null}`, string(data))

	l := Build(1, 2)
	assert.Nil(l.UnmarshalJSON([]byte(`null`)))
	assert.Equal([]int{1, 2}, l.Values())

	var out struct {
		L *Node[int] `json:"l"`
	}
	assert.Nil(json2.Unmarshal([]byte(`{"l":null}`), &out))
	assert.Nil(out.L)
	assert.Nil(json2.Unmarshal([]byte(`{"l":[3]}`), &out))
	assert.Equal([]int{3}, out.L.Values())
}
