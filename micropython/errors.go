// errors.go — typed error values crossing the binding boundary.
//
// Every fallible operation in this package reports failure through *Error,
// discriminated by Kind:
//
//   - DiagAlloc   — the interpreter heap could not satisfy a create/grow
//     request. Recoverable; callers decide whether to retry or degrade.
//   - DiagType    — a generic object handle was down-converted to a concrete
//     type it does not carry (e.g. ListFromObj on an int object).
//   - DiagConvert — a host value could not be encoded as an interpreter
//     object during bulk construction.
//
// Internal-consistency faults (a live list reporting a nil backing array)
// are plain panics, never *Error: they indicate a broken heap contract and
// are not meant to be caught and resumed.
package micropython

import "fmt"

// DiagKind discriminates the failure classes surfaced by this package.
type DiagKind int

const (
	DiagAlloc   DiagKind = iota // heap allocation failure
	DiagType                    // type-tag mismatch on down-conversion
	DiagConvert                 // host value not encodable as an object
)

// Error is the single error type returned across the binding boundary.
type Error struct {
	Kind DiagKind
	Msg  string
}

func (e *Error) Error() string {
	switch e.Kind {
	case DiagAlloc:
		return "alloc error: " + e.Msg
	case DiagType:
		return "type error: " + e.Msg
	case DiagConvert:
		return "convert error: " + e.Msg
	default:
		return e.Msg
	}
}

func errAlloc(format string, args ...any) *Error {
	return &Error{Kind: DiagAlloc, Msg: fmt.Sprintf(format, args...)}
}

func errType(format string, args ...any) *Error {
	return &Error{Kind: DiagType, Msg: fmt.Sprintf(format, args...)}
}

func errConvert(format string, args ...any) *Error {
	return &Error{Kind: DiagConvert, Msg: fmt.Sprintf(format, args...)}
}
