package staticcell

// Static binds a type to the one Cell holding its process-wide value.
//
// Implementations are non-pointer types whose Holder ignores the receiver and returns the
// Ptr of a single package-level Cell:
//
//	var limitsCell staticcell.Cell[Limits]
//
//	func (Limits) Holder() staticcell.Ptr[Limits] { return limitsCell.Ptr() }
//
// Holder is always called on the zero value of the implementing type. Returning handles
// to different cells from different calls, or sharing one cell between two
// implementations, breaks every proof for those types without any diagnostic.
type Static[T any] interface {
	Holder() Ptr[T]
}

// Init writes value into the cell bound to S and returns the proof that it is there.
//
// Init must be called at most once for a given S across the whole process, and it must
// happen-before every read through the returned proof or any copy of it. A second call
// overwrites the value while readers may be using it; nothing detects this outside debug
// builds.
func Init[S Static[T], T any](value T) Inited[S, T] {
	var s S
	s.Holder().write(value)
	return Inited[S, T]{}
}
