package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_SameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}

func TestSequence_PopsThenFallsBack(t *testing.T) {
	s := &Sequence{Ints: []int{3, 250}, Bools: []bool{true}}
	assert.Equal(t, 3, s.IntN(10))
	assert.Equal(t, 50, s.IntN(100))
	assert.Equal(t, 0, s.IntN(100))
	assert.True(t, s.Bool())
	assert.False(t, s.Bool())
	assert.Equal(t, 3, s.IntCalls)
	assert.Equal(t, 2, s.BoolCalls)
}

func TestBetween(t *testing.T) {
	assert.Equal(t, 5, Between(Constant{Int: 0}, 5, 10))
	assert.Equal(t, 9, Between(Constant{Int: 99}, 5, 10))
	assert.Equal(t, 7, Between(Constant{Int: 3}, 7, 7))
}

func TestOneIn(t *testing.T) {
	assert.True(t, OneIn(Constant{Int: 0}, 100))
	assert.False(t, OneIn(Constant{Int: 1}, 100))
}
