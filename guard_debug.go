//go:build staticcell_debug

package staticcell

import (
	"fmt"
	"sync/atomic"
)

// DebugChecks reports whether Init and Get verify the cell state. It is true when the
// package is built with the staticcell_debug tag.
const DebugChecks = true

const (
	stateEmpty uint32 = iota
	stateWriting
	stateReady
)

// guard tracks the write lifecycle of one Cell.
type guard struct {
	state atomic.Uint32
}

// handleGuard is the part of a Ptr that reaches its cell's guard. A nil g belongs to a
// handle built by PtrAt and always passes.
type handleGuard struct {
	g *guard
}

func guardOf(g *guard) handleGuard { return handleGuard{g: g} }

func checkRead[T any](h handleGuard) {
	if h.g != nil && h.g.state.Load() != stateReady {
		panic(fmt.Sprintf("staticcell: %s read before initialization", typeName[T]()))
	}
}

// claimWrite takes the single write or panics.
func claimWrite[T any](h handleGuard) {
	if h.g != nil && !h.g.state.CompareAndSwap(stateEmpty, stateWriting) {
		panic(fmt.Sprintf("staticcell: %s initialized more than once", typeName[T]()))
	}
}

func publishWrite(h handleGuard) {
	if h.g != nil {
		h.g.state.Store(stateReady)
	}
}
