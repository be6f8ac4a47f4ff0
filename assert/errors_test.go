package assert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldBeNil(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("boom")
	assert.Nil(AllowPanic(func() { ShouldBeNil(nil) }))
	assert.Equal(err, AllowPanic(func() { ShouldBeNil(err, "doing %s", "work") }))
	assert.Equal(err, AllowPanic(func() { ShouldBeNil(err, "step %d of %d", 1, 2) }))
	assert.Equal(err, AllowPanic(func() { ShouldBeNil(err, 1, 2) }))
}

func TestShouldBeTrue(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(AllowPanic(func() { ShouldBeTrue(true) }))
	assert.Equal("should be true", AllowPanic(func() { ShouldBeTrue(false, "msg") }))
}
