// heap.go — the interpreter side of the binding seam.
//
// Runtime emulates the slice of the interpreter that the list binding
// consumes: a cell-budgeted heap plus the five raw accessors the real
// interpreter exports for list objects (create, set-length, append,
// get-parts, type check). The raw accessors signal allocation failure with
// raise(), exactly like the interpreter's allocator; only list.go, through
// catchException, is allowed to call the raising ones.
//
// The collector itself is out of scope here: the budget tracks the
// allocation watermark and nothing is ever reclaimed. One Runtime is one
// logical interpreter instance and is not safe for concurrent use.

package micropython

import "github.com/xyproto/env/v2"

// DefaultHeapCells is the heap budget used when none is configured.
const DefaultHeapCells = 4096

// listMinAlloc is the smallest backing array a list is ever given,
// mirroring the interpreter's list allocation policy.
const listMinAlloc = 4

// Runtime owns the emulated interpreter heap that list objects live on.
type Runtime struct {
	heapCells int
	usedCells int
}

// NewRuntime returns a runtime with a heap budget of the given number of
// object cells. Non-positive budgets fall back to DefaultHeapCells.
func NewRuntime(heapCells int) *Runtime {
	if heapCells <= 0 {
		heapCells = DefaultHeapCells
	}
	return &Runtime{heapCells: heapCells}
}

// NewRuntimeFromEnv returns a runtime whose heap budget comes from the
// MPY_HEAP_CELLS environment variable, defaulting to DefaultHeapCells.
func NewRuntimeFromEnv() *Runtime {
	return NewRuntime(env.Int("MPY_HEAP_CELLS", DefaultHeapCells))
}

// HeapCells reports the total heap budget in object cells.
func (rt *Runtime) HeapCells() int { return rt.heapCells }

// HeapUsed reports the number of cells allocated so far.
func (rt *Runtime) HeapUsed() int { return rt.usedCells }

// reserve charges cells against the heap budget, raising an allocation
// error when the budget cannot cover them. It must be called before any
// observable mutation so that a raise leaves no partial state behind.
func (rt *Runtime) reserve(cells int) {
	if rt.usedCells+cells > rt.heapCells {
		raise(errAlloc("heap exhausted: need %d cells, %d of %d in use",
			cells, rt.usedCells, rt.heapCells))
	}
	rt.usedCells += cells
}

// List is the runtime layout of a list object. It belongs to the heap, not
// to the binding: list.go reads it only through listParts and mutates it
// only through listSetLen/listAppend.
type List struct {
	rt    *Runtime
	items []Obj // backing array; len(items) is the allocated capacity
	n     int   // logical length, n <= len(items)
}

// newListRaw allocates a list of length n, copying initial elements from
// items when non-nil (items must then hold at least n handles). Unfilled
// cells read as none. Raises on heap exhaustion.
func (rt *Runtime) newListRaw(n int, items []Obj) *List {
	capacity := n
	if capacity < listMinAlloc {
		capacity = listMinAlloc
	}
	rt.reserve(capacity)
	l := &List{rt: rt, items: make([]Obj, capacity), n: n}
	if items != nil {
		copy(l.items, items[:n])
	}
	return l
}

// listSetLen forces the logical length. Used to rewind an over-allocated
// list to length 0; never grows storage.
func (rt *Runtime) listSetLen(l *List, n int) {
	if n < 0 || n > len(l.items) {
		panic("micropython: listSetLen outside allocated storage")
	}
	l.n = n
}

// listAppend stores v as the new last element, growing the backing array
// when full. Raises on heap exhaustion; the budget is charged before any
// element moves, so a raise leaves the list unchanged.
func (rt *Runtime) listAppend(l *List, v Obj) {
	if l.n == len(l.items) {
		newCap := len(l.items) * 2
		if newCap < listMinAlloc {
			newCap = listMinAlloc
		}
		rt.reserve(newCap - len(l.items))
		grown := make([]Obj, newCap)
		copy(grown, l.items)
		l.items = grown
	}
	l.items[l.n] = v
	l.n++
}

// listParts exposes (logical length, backing array). Pure accessor.
func (rt *Runtime) listParts(l *List) (int, []Obj) {
	return l.n, l.items
}

// isListType is the interpreter's type-discriminator check for lists.
func isListType(o Obj) bool {
	_, ok := o.asListPtr()
	return ok
}
