package staticcell

import (
	"fmt"
	"unsafe"
)

// Ptr locates a T in memory. It is not proof that the memory holds a value: reading
// through a Ptr is only sound once the value has been written, which is what an Inited
// proof certifies.
//
// In release builds a Ptr is a single pointer.
type Ptr[T any] struct {
	handleGuard
	value *T
}

// PtrAt builds a handle from a raw address, for values written outside the Cell path
// such as a buffer filled by an earlier boot stage.
//
// addr must point to a properly aligned T that stays valid for the life of the process.
// Handles built this way are never checked, even in debug builds.
func PtrAt[T any](addr unsafe.Pointer) Ptr[T] {
	return Ptr[T]{value: (*T)(addr)}
}

// deref returns the stored value's address, assuming it was initialized.
func (p Ptr[T]) deref() *T {
	checkRead[T](p.handleGuard)
	return p.value
}

// write stores v. Only Init calls it.
func (p Ptr[T]) write(v T) {
	claimWrite[T](p.handleGuard)
	*p.value = v
	publishWrite(p.handleGuard)
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
