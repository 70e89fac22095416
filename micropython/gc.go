// gc.go — ownership annotation for heap-owned memory.

package micropython

// Gc marks a pointer whose memory is owned, and will eventually be
// reclaimed, by the interpreter's collector — never by host code. Holding a
// Gc entails no release obligation; the pointee stays valid for as long as
// the reference (or a handle derived from it) remains reachable from a
// collector root.
//
// Access discipline, enforced by convention rather than by the heap:
// any number of Ref views may be live at once, or exactly one Mut view,
// never both.
type Gc[T any] struct {
	ptr *T
}

// gcFromRaw wraps a raw heap address. Only heap code that just allocated
// the pointee, or a type-gated down-conversion, may call this.
func gcFromRaw[T any](p *T) Gc[T] { return Gc[T]{ptr: p} }

// Ref returns a shared view of the pointee. Callers must not mutate
// through it.
func (g Gc[T]) Ref() *T { return g.ptr }

// Mut returns an exclusive view of the pointee. No other view of the same
// object may be used while the result is live.
func (g Gc[T]) Mut() *T { return g.ptr }
