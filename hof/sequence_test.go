package hof_test

import (
	"strconv"
	"testing"

	"github.com/sghaida/hof/hof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMap verifies Map applies the function in order and may change the element type.
func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3, 6, 9}, hof.Map([]int{1, 2, 3}, hof.Triple))
	assert.Equal(t, []string{"1", "2"}, hof.Map([]int{1, 2}, strconv.Itoa))

	got := hof.Map[int, int](nil, hof.Triple)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// TestReduce verifies left folding and the empty-input identity.
func TestReduce(t *testing.T) {
	t.Parallel()

	sum := func(acc, x int) int { return acc + x }
	assert.Equal(t, 10, hof.Reduce([]int{1, 2, 3, 4}, 0, sum))
	assert.Equal(t, 7, hof.Reduce[int](nil, 7, sum))

	concat := func(acc string, x int) string { return acc + strconv.Itoa(x) }
	assert.Equal(t, ">123", hof.Reduce([]int{1, 2, 3}, ">", concat))
}

// TestCompose verifies g runs after f.
func TestCompose(t *testing.T) {
	t.Parallel()

	tripleThenString := hof.Compose(hof.Triple, strconv.Itoa)
	assert.Equal(t, "12", tripleThenString(4))

	addThenTriple := hof.Compose(hof.AddBy(1), hof.Triple)
	assert.Equal(t, 9, addThenTriple(2))
}

// TestPipe verifies left-to-right order, nil skipping, and the empty identity.
func TestPipe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, hof.Pipe(hof.Triple, hof.AddBy(1))(2))
	assert.Equal(t, 9, hof.Pipe(hof.AddBy(1), hof.Triple)(2))
	assert.Equal(t, 24, hof.Pipe(hof.Triple, nil, hof.Quadruple)(2))
	assert.Equal(t, 5, hof.Pipe[int]()(5))
}
