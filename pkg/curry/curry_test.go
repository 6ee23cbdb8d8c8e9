package curry

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCurry2(t *testing.T) {
	add := func(a, b int) int { return a + b }
	addFive := Curry2(add)(5)
	assert.Equal(t, addFive(3), 8)
	assert.Equal(t, addFive(-5), 0)
}
