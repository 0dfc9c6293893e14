package staticcell

// Inited is a zero-sized proof that the value bound to S has been written and will not be
// written again. Holders read the value through Get from any goroutine without
// synchronization.
//
// The sanctioned source of an Inited is Init. AssumeInit and the zero value
// Inited[S, T]{} also produce one; using either before the value is written is a forged
// proof.
type Inited[S Static[T], T any] struct {
	_ [0]func(S) T
}

// AssumeInit returns a proof without writing anything.
//
// Callers use it when the value behind S's handle was written by other means, for
// example by a previous boot stage into memory reached through PtrAt, and they can show
// that write happens-before every Get. It is never checked outside debug builds.
func AssumeInit[S Static[T], T any]() Inited[S, T] {
	return Inited[S, T]{}
}

// Get returns the address of the value bound to S. Every call, on any copy of the proof,
// returns the same address.
func (Inited[S, T]) Get() *T {
	var s S
	return s.Holder().deref()
}

func (Inited[S, T]) String() string {
	return "Inited[" + typeName[T]() + "]"
}
