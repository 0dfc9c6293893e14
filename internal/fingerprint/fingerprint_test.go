package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type limits struct {
	MaxConns int
	Hosts    []string
}

func TestComputeDeterministic(t *testing.T) {
	a := Compute(limits{MaxConns: 8, Hosts: []string{"a", "b"}})
	b := Compute(limits{MaxConns: 8, Hosts: []string{"a", "b"}})
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestComputeDistinguishesValues(t *testing.T) {
	assert.NotEqual(t,
		Compute(limits{MaxConns: 8}),
		Compute(limits{MaxConns: 9}),
	)
}

func TestComputeUnencodable(t *testing.T) {
	assert.Equal(t, "invalid-chan int", Compute(make(chan int)))
}
