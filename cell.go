package staticcell

// Cell is the backing storage for one process-wide value of type T.
//
// The zero value is ready to use and a Cell is meant to be declared at package scope,
// where it sits at a fixed address until the process exits. A Cell has no read or write
// methods of its own: it is written through Init and read through an Inited proof.
//
// A Cell must not be copied after first use.
type Cell[T any] struct {
	_     noCopy
	guard guard
	value T
}

// Ptr returns the handle of the cell's storage. Repeated calls return handles to the
// same address.
func (c *Cell[T]) Ptr() Ptr[T] {
	return Ptr[T]{handleGuard: guardOf(&c.guard), value: &c.value}
}

// noCopy lets go vet's copylocks check flag Cells passed or assigned by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
