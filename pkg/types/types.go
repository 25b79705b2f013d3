// Package types implements the type-equivalence and convertibility
// algebra: canonical Type values, structural equality, initializability,
// assignability, and common-type computation.
package types

import (
	"fmt"
	"strings"

	"semcore/pkg/ast"
)

// BuiltIn tags the built-in kind a Type carries, or NotBuiltIn for a
// user-named class/interface/enum reference.
type BuiltIn int

const (
	Void BuiltIn = iota
	Null
	Placeholder
	Implicit
	Byte
	Char
	Integer
	Long
	Float
	Boolean
	String
	Lambda
	Function
	Object
	Enumeration
	NotBuiltIn
)

func (b BuiltIn) String() string {
	switch b {
	case Void:
		return "void"
	case Null:
		return "null"
	case Placeholder:
		return "_"
	case Implicit:
		return "var"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Integer:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Boolean:
		return "bool"
	case String:
		return "string"
	case Lambda:
		return "lambda"
	case Function:
		return "function"
	case Object:
		return "object"
	case Enumeration:
		return "enum"
	default:
		return "notbuiltin"
	}
}

// keywords maps reserved type-name keywords to their built-in kind, the
// construction rule from §4.1.
var keywords = map[ast.Identifier]BuiltIn{
	"void":   Void,
	"var":    Implicit,
	"byte":   Byte,
	"char":   Char,
	"int":    Integer,
	"long":   Long,
	"float":  Float,
	"bool":   Boolean,
	"string": String,
	"object": Object,
}

// FunctionSignature pairs a return type with ordered argument types,
// carried by Function/Lambda kinds only.
type FunctionSignature struct {
	ReturnType    *Type
	ArgumentTypes []*Type
}

func (s *FunctionSignature) clone() *FunctionSignature {
	if s == nil {
		return nil
	}
	args := make([]*Type, len(s.ArgumentTypes))
	for i, a := range s.ArgumentTypes {
		args[i] = a.Clone()
	}
	return &FunctionSignature{ReturnType: s.ReturnType.Clone(), ArgumentTypes: args}
}

func (s *FunctionSignature) equal(other *FunctionSignature, constCheck bool) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !s.ReturnType.equal(other.ReturnType, constCheck) {
		return false
	}
	if len(s.ArgumentTypes) != len(other.ArgumentTypes) {
		return false
	}
	for i := range s.ArgumentTypes {
		if !s.ArgumentTypes[i].equal(other.ArgumentTypes[i], constCheck) {
			return false
		}
	}
	return true
}

// Definition is the weak, non-owning reference a Type carries to the
// class/enum/generic-parameter definition it names. Exactly one of the
// two fields is set, or both are nil ("absent").
type Definition struct {
	Class        *ast.ClassDefinition
	GenericParam *ast.GenericTypeParameterDefinition
}

func (d *Definition) isGenericParam() bool { return d != nil && d.GenericParam != nil }

// Type is the single tagged value the whole algebra operates over, in
// place of an open class hierarchy: every built-in and every
// user-named kind is one of these, discriminated by BuiltIn.
type Type struct {
	BuiltInKind       BuiltIn
	Name              ast.Identifier
	Generics          []*Type
	Def               *Definition
	FunctionSignature *FunctionSignature
	Constant          bool
	Reference         bool
	Array             bool
}

// New is the construction factory from §4.1: a name identifier maps to
// a built-in kind when it is a reserved keyword, else a NotBuiltIn
// user type is produced.
func New(name ast.Identifier) *Type {
	if kind, ok := keywords[name]; ok {
		return &Type{BuiltInKind: kind, Name: name, Reference: referenceForBuiltIn(kind)}
	}
	return &Type{BuiltInKind: NotBuiltIn, Name: name}
}

// NewBuiltIn constructs a Type of a known BuiltIn kind directly,
// bypassing keyword lookup (used for produced/internal Void and Null
// singletons and for kinds with no surface keyword, like Lambda).
func NewBuiltIn(kind BuiltIn) *Type {
	return &Type{BuiltInKind: kind, Name: ast.Identifier(kind.String()), Reference: referenceForBuiltIn(kind)}
}

func referenceForBuiltIn(kind BuiltIn) bool {
	switch kind {
	case String, Lambda, Function, Object:
		return true
	default:
		return false
	}
}

// VoidType and NullType are the shared, read-only singletons §9 calls
// for: allocated once, observed by reference, never mutated by callers.
var VoidType = NewBuiltIn(Void)
var NullType = NewBuiltIn(Null)

// Clone performs a deep copy over Generics and FunctionSignature;
// Def is shared (a weak reference, never owned).
func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}
	clone := &Type{
		BuiltInKind: t.BuiltInKind,
		Name:        t.Name,
		Def:         t.Def,
		Constant:    t.Constant,
		Reference:   t.Reference,
		Array:       t.Array,
	}
	if t.Generics != nil {
		clone.Generics = make([]*Type, len(t.Generics))
		for i, g := range t.Generics {
			clone.Generics[i] = g.Clone()
		}
	}
	clone.FunctionSignature = t.FunctionSignature.clone()
	return clone
}

// String implements toString: an optional `var ` prefix when
// non-constant, then the constructed generic name, the closure
// interface name, or the plain name, then `[]` when arrayed. Null
// always renders as `null`.
func (t *Type) String() string {
	if t.BuiltInKind == Null {
		return "null"
	}
	var b strings.Builder
	if !t.Constant {
		b.WriteString("var ")
	}
	switch {
	case t.BuiltInKind == Function || t.BuiltInKind == Lambda:
		b.WriteString(t.closureInterfaceName())
	case len(t.Generics) > 0:
		b.WriteString(t.fullConstructedName())
	default:
		b.WriteString(string(t.Name))
	}
	if t.Array {
		b.WriteString("[]")
	}
	return b.String()
}

func (t *Type) fullConstructedName() string {
	parts := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		parts[i] = g.String()
	}
	return fmt.Sprintf("%s<%s>", t.Name, strings.Join(parts, ","))
}

func (t *Type) closureInterfaceName() string {
	sig := t.FunctionSignature
	if sig == nil {
		return fmt.Sprintf("fun %s()", VoidType.String())
	}
	parts := make([]string, len(sig.ArgumentTypes))
	for i, a := range sig.ArgumentTypes {
		parts[i] = a.String()
	}
	return fmt.Sprintf("fun %s(%s)", sig.ReturnType.String(), strings.Join(parts, ","))
}

// IsReferenceType reports the Reference flag.
func (t *Type) IsReferenceType() bool { return t.Reference }

// IsIntegerNumber reports whether the type is one of the integral
// built-ins.
func (t *Type) IsIntegerNumber() bool {
	switch t.BuiltInKind {
	case Byte, Char, Integer, Long:
		return true
	default:
		return false
	}
}

// IsNumber reports whether the type is any numeric built-in.
func (t *Type) IsNumber() bool {
	return t.IsIntegerNumber() || t.BuiltInKind == Float
}

// IsPrimitive reports whether the type is a scalar built-in kind with
// a definition-free representation.
func (t *Type) IsPrimitive() bool {
	switch t.BuiltInKind {
	case Byte, Char, Integer, Long, Float, Boolean:
		return true
	default:
		return false
	}
}

// IsInterface reports whether the bound class definition, if any, is
// an interface.
func (t *Type) IsInterface() bool {
	return t.Def != nil && t.Def.Class != nil && t.Def.Class.IsInterface()
}

// GetClass returns the bound class definition, or nil when this type
// is not class-backed (built-in, or a generic parameter reference).
func (t *Type) GetClass() *ast.ClassDefinition {
	if t.Def == nil {
		return nil
	}
	return t.Def.Class
}

// SetDefinition, SetReference, SetArray are the mutators §4.1 expects
// callers (construction sites outside this package) to use once a
// Type's binding becomes known.
func (t *Type) SetDefinition(def *Definition) { t.Def = def }
func (t *Type) SetReference(r bool)            { t.Reference = r }
func (t *Type) SetArray(a bool) {
	t.Array = a
	if a {
		t.Reference = true
	}
}

// AreTypeParametersMatching reports whether t and other carry
// pointwise-equal generic parameter sequences under AreEqualNoConstCheck.
func AreTypeParametersMatching(t, other *Type) bool {
	if len(t.Generics) != len(other.Generics) {
		return false
	}
	for i := range t.Generics {
		if !AreEqualNoConstCheck(t.Generics[i], other.Generics[i]) {
			return false
		}
	}
	return true
}

// AreEqualNoConstCheck implements the equality rule from §4.1 with the
// constant flag deliberately ignored.
func AreEqualNoConstCheck(a, b *Type) bool {
	return a.equal(b, false)
}

// Equal is the public `==`: AreEqualNoConstCheck plus constant equality.
func Equal(a, b *Type) bool {
	return a.equal(b, true)
}

func (t *Type) equal(other *Type, constCheck bool) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.BuiltInKind == Placeholder || other.BuiltInKind == Placeholder {
		return t.Array == other.Array
	}
	if t.BuiltInKind != other.BuiltInKind || t.Name != other.Name ||
		t.Reference != other.Reference || t.Array != other.Array {
		return false
	}
	if (t.BuiltInKind == Function || t.BuiltInKind == Lambda) &&
		!t.FunctionSignature.equal(other.FunctionSignature, constCheck) {
		return false
	}
	if !AreTypeParametersMatching(t, other) {
		return false
	}
	if constCheck && t.Constant != other.Constant {
		return false
	}
	return true
}

// IsMessageOrPrimitive implements the messageness predicate: the
// definition's class is primitive or message, and every generic
// parameter satisfies the predicate recursively.
func (t *Type) IsMessageOrPrimitive() bool {
	cls := t.GetClass()
	if cls == nil {
		return t.IsPrimitive()
	}
	if !cls.IsPrimitive() && !cls.IsMessage() {
		return false
	}
	for _, g := range t.Generics {
		if !g.IsMessageOrPrimitive() {
			return false
		}
	}
	return true
}

// GetConcreteTypeAssignedToGenericTypeParameter yields a clone of the
// bound concrete type, inheriting t's Array and Constant flags, or nil
// when t does not name a bound generic parameter.
func (t *Type) GetConcreteTypeAssignedToGenericTypeParameter() *Type {
	if t.Def == nil || !t.Def.isGenericParam() {
		return nil
	}
	bound := t.Def.GenericParam.GetConcreteType()
	if bound == nil {
		return nil
	}
	concrete, ok := bound.Opaque.(*Type)
	if !ok || concrete == nil {
		return nil
	}
	clone := concrete.Clone()
	clone.Array = t.Array
	clone.Constant = t.Constant
	return clone
}

var implicitBuiltInConversions = map[BuiltIn][]BuiltIn{
	Byte:    {Char, Integer, Long, Float},
	Char:    {Byte, Integer, Long, Float},
	Integer: {Long},
	String:  {Object},
}

// AreBuiltInsImplicitlyConvertable reports whether a value of built-in
// kind from may implicitly convert to built-in kind to, per §4.1's
// fixed table. Integer -> Byte is deliberately absent.
func AreBuiltInsImplicitlyConvertable(from, to BuiltIn) bool {
	for _, target := range implicitBuiltInConversions[from] {
		if target == to {
			return true
		}
	}
	return false
}

var explicitConvertiblePrimitives = map[BuiltIn]bool{Byte: true, Char: true, Integer: true, Long: true, Float: true}

// AreBuiltInsConvertable reports explicit built-in convertibility:
// reflexive, plus every pair among {Byte,Char,Integer,Long,Float} both
// ways, plus String -> Object.
func AreBuiltInsConvertable(from, to BuiltIn) bool {
	if from == to {
		return true
	}
	if explicitConvertiblePrimitives[from] && explicitConvertiblePrimitives[to] {
		return true
	}
	return from == String && to == Object
}

// AreConvertable implements class-hierarchy convertibility: names and
// type parameters match, or L is Object and R is an interface, or both
// have class definitions where R's class is a subclass of L's class.
func AreConvertable(l, r *Type) bool {
	if l.Name == r.Name && AreTypeParametersMatching(l, r) {
		return true
	}
	if l.BuiltInKind == Object && r.IsInterface() {
		return true
	}
	lc, rc := l.GetClass(), r.GetClass()
	if lc != nil && rc != nil && rc.IsSubclassOf(lc) {
		return true
	}
	return false
}

// AreInitializable implements §4.1's governing rule for whether a
// value of type r may initialize a slot of type l.
func AreInitializable(l, r *Type) bool {
	if l.BuiltInKind == Placeholder || r.BuiltInKind == Placeholder {
		return l.Array == r.Array
	}
	if l.Reference && r.BuiltInKind == Null {
		return true
	}
	ok := false
	switch {
	case l.BuiltInKind == Enumeration && r.BuiltInKind == Enumeration:
		ok = l.Name == r.Name && AreTypeParametersMatching(l, r)
	case l.BuiltInKind == Function && r.BuiltInKind == Function,
		l.BuiltInKind == Lambda && r.BuiltInKind == Lambda:
		ok = l.FunctionSignature.equal(r.FunctionSignature, false)
	case isBuiltInKind(l.BuiltInKind) && isBuiltInKind(r.BuiltInKind):
		ok = l.BuiltInKind == r.BuiltInKind || AreBuiltInsImplicitlyConvertable(r.BuiltInKind, l.BuiltInKind)
	default:
		ok = AreConvertable(l, r)
	}
	if !ok {
		return false
	}
	return l.Array == r.Array
}

func isBuiltInKind(k BuiltIn) bool {
	switch k {
	case Byte, Char, Integer, Long, Float, Boolean, String, Object:
		return true
	default:
		return false
	}
}

// AreAssignable implements §4.1's assignability rule.
func AreAssignable(l, r *Type) bool {
	return !l.Constant && AreInitializable(l, r)
}

// IsInitializableByExpression applies the expression-sensitive rule:
// when hasIntLiteral is true and the literal's value is under 256, r
// is reinterpreted as Byte before the AreInitializable check.
func IsInitializableByExpression(l, r *Type, hasIntLiteral bool, literalValue int64) bool {
	effective := r
	if hasIntLiteral && literalValue < 256 {
		effective = r.Clone()
		effective.BuiltInKind = Byte
		effective.Name = "byte"
	}
	return AreInitializable(l, effective)
}

// IsAssignableByExpression is IsInitializableByExpression plus the
// mutability check from AreAssignable.
func IsAssignableByExpression(l, r *Type, hasIntLiteral bool, literalValue int64) bool {
	return !l.Constant && IsInitializableByExpression(l, r, hasIntLiteral, literalValue)
}

// IsUpcast reports interface->Object or class-to-ancestor widening.
func IsUpcast(from, to *Type) bool {
	if from.IsInterface() && to.BuiltInKind == Object {
		return true
	}
	fc, tc := from.GetClass(), to.GetClass()
	return fc != nil && tc != nil && fc.IsSubclassOf(tc)
}

// IsDowncast reports Object->interface or class-to-descendant narrowing.
func IsDowncast(from, to *Type) bool {
	if from.BuiltInKind == Object && to.IsInterface() {
		return true
	}
	fc, tc := from.GetClass(), to.GetClass()
	return fc != nil && tc != nil && tc.IsSubclassOf(fc)
}

// CalculateCommonType implements §4.1's widening rule across
// successively observed branch types.
func CalculateCommonType(prev, cur *Type) *Type {
	if prev.BuiltInKind == Null && cur.Reference {
		return cur
	}
	if cur.BuiltInKind == Null && prev.Reference {
		return prev
	}
	if !AreInitializable(prev, cur) {
		return prev
	}
	if prev.BuiltInKind == Enumeration && cur.BuiltInKind == Enumeration {
		for i := range prev.Generics {
			if i >= len(cur.Generics) {
				break
			}
			if prev.Generics[i].BuiltInKind == Placeholder && cur.Generics[i].BuiltInKind != Placeholder {
				return cur
			}
		}
	}
	return prev
}
