package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReversed(t *testing.T) {
	in := []int{1, 2, 3}
	out := Reversed(in)

	assert.Equal(t, []int{3, 2, 1}, out)
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Nil(t, Reversed([]int(nil)))
	assert.Equal(t, []int{}, Reversed([]int{}))
}
