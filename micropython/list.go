// Package micropython binds list objects living on a MicroPython-style
// interpreter heap to host Go code.
//
// The heap owns every list: host code allocates through the interpreter's
// allocator, holds the result only as a Gc-annotated reference, and never
// releases anything itself. Allocation may fail; the failure surfaces as an
// ordinary *Error after crossing the unwind bridge in runtime.go. Converting
// between a concrete list reference and the generic Obj handle is free in
// one direction and type-gated in the other.
package micropython

import "iter"

// AllocList allocates a new list pre-populated with a copy of values.
// The source slice is neither retained nor mutated.
func (rt *Runtime) AllocList(values []Obj) (Gc[List], error) {
	return catchException(func() Gc[List] {
		return gcFromRaw(rt.newListRaw(len(values), values))
	})
}

// ListWithCapacity allocates a list with room for capacity elements and
// logical length 0.
func (rt *Runtime) ListWithCapacity(capacity int) (Gc[List], error) {
	return catchException(func() Gc[List] {
		l := rt.newListRaw(capacity, nil)
		// The allocator sets length == capacity. We preallocate and fill
		// via Append, so rewind the length to 0.
		rt.listSetLen(l, 0)
		return gcFromRaw(l)
	})
}

// ListFromSeq builds a list from a finite sequence of (object, conversion
// error) pairs, preserving order. hint is an upper bound on the sequence
// length used to size the initial allocation; pass 0 (or any negative
// value) when unknown. The first conversion or append failure aborts the
// build and is returned; the partially built list is abandoned to the
// collector, unreferenced.
func (rt *Runtime) ListFromSeq(hint int, seq iter.Seq2[Obj, error]) (Gc[List], error) {
	if hint < 0 {
		hint = 0
	}
	gcl, err := rt.ListWithCapacity(hint)
	if err != nil {
		return Gc[List]{}, err
	}
	l := gcl.Mut()
	for v, cerr := range seq {
		if cerr != nil {
			return Gc[List]{}, cerr
		}
		if err := l.Append(v); err != nil {
			return Gc[List]{}, err
		}
	}
	return gcl, nil
}

// Append stores v as the new last element, growing the backing array
// through the heap allocator when needed. On failure the list is unchanged.
// Requires exclusive access to the list.
func (l *List) Append(v Obj) error {
	return catchErr(func() {
		l.rt.listAppend(l, v)
	})
}

// Len reports the list's logical length.
func (l *List) Len() int {
	return len(l.AsSlice())
}

// AsSlice returns a read-only view over exactly Len() elements of the
// current backing array. The view aliases heap memory: it is invalidated
// by any subsequent mutation that may reallocate (Append), and callers
// must not write through it — use AsMutSlice for that.
func (l *List) AsSlice() []Obj {
	n, items := l.rt.listParts(l)
	if items == nil {
		panic("micropython: live list reports nil backing array")
	}
	return items[:n:n]
}

// AsMutSlice is AsSlice with in-place element replacement allowed.
// It requires exclusive access to the list for the view's whole lifetime:
// no other view, read or write, may coexist with it.
func (l *List) AsMutSlice() []Obj {
	n, items := l.rt.listParts(l)
	if items == nil {
		panic("micropython: live list reports nil backing array")
	}
	return items[:n:n]
}

// AsObj wraps the list as a generic handle. No ownership moves: it is the
// same heap memory viewed through the interpreter's universal handle type.
func (l *List) AsObj() Obj {
	return objFromPtr(l)
}

// ListFromObj down-converts a generic handle to a list reference. It
// succeeds iff the handle's type discriminator marks a list; this check is
// the only legal way to reinterpret an Obj as a List.
func ListFromObj(v Obj) (Gc[List], error) {
	if !isListType(v) {
		return Gc[List]{}, errType("object is not a list")
	}
	l, _ := v.asListPtr()
	return gcFromRaw(l), nil
}
