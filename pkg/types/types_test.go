package types

import (
	"testing"

	"semcore/pkg/ast"
)

func TestArrayImpliesReference(t *testing.T) {
	ty := New("int")
	ty.SetArray(true)
	if !ty.IsReferenceType() {
		t.Fatalf("expected array type to be a reference type")
	}
}

func TestPrimitivesNonReferenceUnlessArrayed(t *testing.T) {
	for _, name := range []ast.Identifier{"byte", "char", "int", "long", "float", "bool"} {
		ty := New(name)
		if ty.IsReferenceType() {
			t.Fatalf("%s: expected non-reference primitive", name)
		}
	}
}

func TestIntegerToByteNotImplicit(t *testing.T) {
	if AreBuiltInsImplicitlyConvertable(Integer, Byte) {
		t.Fatalf("Integer -> Byte must not be implicit")
	}
}

func TestImplicitConversionTable(t *testing.T) {
	cases := []struct {
		from, to BuiltIn
		want     bool
	}{
		{Byte, Char, true},
		{Byte, Integer, true},
		{Byte, Long, true},
		{Byte, Float, true},
		{Char, Byte, true},
		{Char, Integer, true},
		{Integer, Long, true},
		{String, Object, true},
		{Integer, Byte, false},
		{Long, Integer, false},
		{Float, Integer, false},
	}
	for _, c := range cases {
		if got := AreBuiltInsImplicitlyConvertable(c.from, c.to); got != c.want {
			t.Errorf("%v -> %v: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestExplicitConvertibility(t *testing.T) {
	cases := []struct {
		from, to BuiltIn
		want     bool
	}{
		{Integer, Byte, true},
		{Float, Integer, true},
		{Char, Float, true},
		{Boolean, Integer, false},
		{String, Object, true},
		{Object, String, false},
	}
	for _, c := range cases {
		if got := AreBuiltInsConvertable(c.from, c.to); got != c.want {
			t.Errorf("%v -> %v: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestAreInitializableArrayFlagsMustMatch(t *testing.T) {
	l := New("int")
	r := New("int")
	r.SetArray(true)
	if AreInitializable(l, r) {
		t.Fatalf("mismatched array flags must not be initializable")
	}
}

func TestAreInitializableFromNullRequiresReference(t *testing.T) {
	ref := New("object")
	if !AreInitializable(ref, NullType) {
		t.Fatalf("reference type must accept null")
	}
	val := New("int")
	if AreInitializable(val, NullType) {
		t.Fatalf("non-reference type must not accept null")
	}
}

func TestIsInitializableByExpressionTightensSmallIntLiterals(t *testing.T) {
	byteSlot := New("byte")
	intType := New("int")
	if !IsInitializableByExpression(byteSlot, intType, true, 42) {
		t.Fatalf("literal 42 should tighten into a byte slot")
	}
	if IsInitializableByExpression(byteSlot, intType, true, 1000) {
		t.Fatalf("literal 1000 must not tighten into a byte slot")
	}
	if IsInitializableByExpression(byteSlot, intType, false, 0) {
		t.Fatalf("without a literal, int must not initialize byte")
	}
}

func TestToStringRoundTrips(t *testing.T) {
	ty := New("Cat")
	ty.Constant = true
	if got, want := ty.String(), "Cat"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToStringVarPrefixAndArraySuffix(t *testing.T) {
	ty := New("int")
	ty.SetArray(true)
	if got, want := ty.String(), "var int[]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNullRendersAsNull(t *testing.T) {
	if got, want := NullType.String(), "null"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCalculateCommonTypeIdempotent(t *testing.T) {
	ty := New("int")
	ty.Constant = true
	if got := CalculateCommonType(ty, ty); got != ty {
		t.Fatalf("calculateCommonType(t,t) must return t unchanged")
	}
}

func TestAreConvertableObjectFromInterface(t *testing.T) {
	iface := &ast.ClassDefinition{Name: "Shape", Kind: ast.ClassKindInterface}
	ifaceType := New("Shape")
	ifaceType.SetDefinition(&Definition{Class: iface})

	obj := New("object")
	if !AreConvertable(obj, ifaceType) {
		t.Fatalf("object must be convertable from any interface")
	}
}

func TestAreConvertableSubclass(t *testing.T) {
	base := &ast.ClassDefinition{Name: "Animal"}
	derived := &ast.ClassDefinition{Name: "Cat", SuperClass: base}

	baseType := New("Animal")
	baseType.SetDefinition(&Definition{Class: base})
	derivedType := New("Cat")
	derivedType.SetDefinition(&Definition{Class: derived})

	if !AreConvertable(baseType, derivedType) {
		t.Fatalf("Cat must be convertable to Animal")
	}
	if AreConvertable(derivedType, baseType) {
		t.Fatalf("Animal must not be convertable to Cat")
	}
}

func TestUpcastDowncast(t *testing.T) {
	base := &ast.ClassDefinition{Name: "Animal"}
	derived := &ast.ClassDefinition{Name: "Cat", SuperClass: base}
	baseType := New("Animal")
	baseType.SetDefinition(&Definition{Class: base})
	derivedType := New("Cat")
	derivedType.SetDefinition(&Definition{Class: derived})

	if !IsUpcast(derivedType, baseType) {
		t.Fatalf("Cat -> Animal must be an upcast")
	}
	if !IsDowncast(baseType, derivedType) {
		t.Fatalf("Animal -> Cat must be a downcast")
	}
}
