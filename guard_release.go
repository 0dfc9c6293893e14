//go:build !staticcell_debug

package staticcell

// DebugChecks reports whether Init and Get verify the cell state. It is false unless the
// package is built with the staticcell_debug tag.
const DebugChecks = false

// guard is empty in release builds and the hooks below compile to nothing.
type guard struct{}

// handleGuard is the part of a Ptr that reaches its cell's guard. Empty here, so a Ptr
// stays one pointer wide.
type handleGuard struct{}

func guardOf(*guard) handleGuard { return handleGuard{} }

func checkRead[T any](handleGuard)  {}
func claimWrite[T any](handleGuard) {}
func publishWrite(handleGuard)      {}
