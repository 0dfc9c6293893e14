//go:build !staticcell_debug

package staticcell

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseBuildHasNoChecks(t *testing.T) {
	assert.False(t, DebugChecks)

	resetScratch(t)
	first := Init[scratch](1)
	second := Init[scratch](2)
	assert.Equal(t, 2, *first.Get(), "a second Init overwrites in place")
	assert.Same(t, first.Get(), second.Get())
}

func TestReleaseHandleIsOnePointer(t *testing.T) {
	word := reflect.TypeFor[uintptr]().Size()
	assert.Equal(t, word, reflect.TypeFor[Ptr[A]]().Size())
	assert.Equal(t, word, reflect.TypeFor[Ptr[Point]]().Size())
	assert.Zero(t, reflect.TypeFor[handleGuard]().Size())
}
