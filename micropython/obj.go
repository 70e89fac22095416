// obj.go — the generic tagged object handle.
//
// Obj is the universal carrier for interpreter-level values: the interpreter
// side traffics exclusively in Obj, and the binding converts between Obj and
// concrete host types at the boundary. The handle is opaque on purpose — the
// only legal way to reinterpret an Obj as a structured type is through a
// type-gated down-conversion such as ListFromObj.

package micropython

import (
	"fmt"
	"math"
	"strconv"
)

// ObjTag enumerates the object kinds a handle may carry.
// The tag determines the dynamic type of the handle's payload.
type ObjTag int

const (
	OTNone ObjTag = iota // none (no payload)
	OTBool               // bool
	OTInt                // int64
	OTStr                // string
	OTPtr                // pointer to a heap-allocated object (*List)
)

// Obj is an opaque tagged reference to an interpreter-level value.
//
// Scalar payloads (bool, int, str) are carried inline; structured objects
// are carried as a raw pointer into the interpreter heap together with a
// type discriminator. The zero Obj is None.
type Obj struct {
	tag  ObjTag
	data interface{}
}

// Tag reports the handle's type discriminator.
func (o Obj) Tag() ObjTag { return o.tag }

// None is the singleton none handle.
var None = Obj{tag: OTNone}

// Scalar constructors.
func Bool(b bool) Obj  { return Obj{tag: OTBool, data: b} }
func Int(n int64) Obj  { return Obj{tag: OTInt, data: n} }
func Str(s string) Obj { return Obj{tag: OTStr, data: s} }

// Uint encodes an unsigned host integer. It fails when the value does not
// fit the interpreter's signed integer representation.
func Uint(u uint64) (Obj, error) {
	if u > math.MaxInt64 {
		return Obj{}, errConvert("uint %d overflows the object integer range", u)
	}
	return Int(int64(u)), nil
}

// IsNone reports whether the handle is the none value.
func (o Obj) IsNone() bool { return o.tag == OTNone }

// AsBool extracts a bool payload, failing on any other tag.
func (o Obj) AsBool() (bool, error) {
	if o.tag != OTBool {
		return false, errType("object is not a bool")
	}
	return o.data.(bool), nil
}

// AsInt extracts an integer payload, failing on any other tag.
func (o Obj) AsInt() (int64, error) {
	if o.tag != OTInt {
		return 0, errType("object is not an int")
	}
	return o.data.(int64), nil
}

// AsStr extracts a string payload, failing on any other tag.
func (o Obj) AsStr() (string, error) {
	if o.tag != OTStr {
		return "", errType("object is not a str")
	}
	return o.data.(string), nil
}

// String renders a human-friendly debug representation.
func (o Obj) String() string {
	switch o.tag {
	case OTNone:
		return "none"
	case OTBool:
		return fmt.Sprintf("%v", o.data.(bool))
	case OTInt:
		return strconv.FormatInt(o.data.(int64), 10)
	case OTStr:
		return fmt.Sprintf("%q", o.data.(string))
	case OTPtr:
		if l, ok := o.data.(*List); ok {
			return fmt.Sprintf("<list len=%d>", l.n)
		}
		return "<object>"
	default:
		return "<unknown>"
	}
}

// objFromPtr wraps a raw heap address as a generic handle. The caller is
// responsible for the pointee being a live, heap-owned object.
func objFromPtr(p *List) Obj { return Obj{tag: OTPtr, data: p} }

// asListPtr extracts the raw list address, if the handle carries one.
// This is the raw accessor behind the type gate; use ListFromObj instead.
func (o Obj) asListPtr() (*List, bool) {
	if o.tag != OTPtr {
		return nil, false
	}
	l, ok := o.data.(*List)
	return l, ok
}
