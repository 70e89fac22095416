package micropython

import (
	"math"
	"testing"
)

func Test_Obj_ZeroValueIsNone(t *testing.T) {
	var o Obj
	if !o.IsNone() || o.Tag() != OTNone {
		t.Fatalf("zero Obj is not none: %v", o)
	}
}

func Test_Obj_ScalarRoundtrips(t *testing.T) {
	if n, err := Int(-42).AsInt(); err != nil || n != -42 {
		t.Fatalf("int roundtrip: %d, %v", n, err)
	}
	if s, err := Str("abc").AsStr(); err != nil || s != "abc" {
		t.Fatalf("str roundtrip: %q, %v", s, err)
	}
	if b, err := Bool(true).AsBool(); err != nil || !b {
		t.Fatalf("bool roundtrip: %v, %v", b, err)
	}
}

func Test_Obj_WrongTagExtract(t *testing.T) {
	if _, err := Str("7").AsInt(); err == nil {
		t.Fatal("AsInt on a str should fail")
	}
	if _, err := Int(7).AsStr(); err == nil {
		t.Fatal("AsStr on an int should fail")
	}
	if _, err := None.AsBool(); err == nil {
		t.Fatal("AsBool on none should fail")
	}
}

func Test_Obj_UintOverflow(t *testing.T) {
	if _, err := Uint(math.MaxInt64); err != nil {
		t.Fatalf("MaxInt64 should encode: %v", err)
	}
	_, err := Uint(math.MaxInt64 + 1)
	wantKind(t, err, DiagConvert)
}

func Test_Obj_String_Repr(t *testing.T) {
	cases := []struct {
		o    Obj
		want string
	}{
		{None, "none"},
		{Bool(false), "false"},
		{Int(12), "12"},
		{Str("x"), `"x"`},
	}
	for _, c := range cases {
		if got := c.o.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}

func Test_Obj_ListRepr(t *testing.T) {
	rt := newRT()
	gcl, err := rt.AllocList([]Obj{Int(1), Int(2)})
	if err != nil {
		t.Fatalf("AllocList: %v", err)
	}
	if got := gcl.Ref().AsObj().String(); got != "<list len=2>" {
		t.Fatalf("String() = %q", got)
	}
}
