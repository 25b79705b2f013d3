// Package semcontext implements the Context abstraction consumed by
// the pattern core (§6): current bindings for name resolution, a
// classifier for static-data-member references, a way to fork a
// throw-away child context for speculative type-checking, and a
// narrow typeCheck capability over the expression shapes the core
// itself introduces or inspects.
//
// Full expression type inference belongs to the general
// statement type-checker, named in §1 as an external collaborator;
// this package only resolves what the core's own expression shapes
// need (literals, named entities, member selectors against known
// class layouts) and otherwise defers to type annotations the
// external checker is assumed to have already attached.
package semcontext

import (
	"semcore/pkg/ast"
	"semcore/pkg/binding"
	"semcore/pkg/trace"
	"semcore/pkg/types"
)

// Context is the interface pkg/pattern depends on.
type Context interface {
	Bindings() *binding.NameBindings
	IsReferencingStaticDataMember(named *ast.NamedEntityExpression) bool
	NewChild() Context
	TypeCheck(expr ast.Expression) *types.Type
	ResolveTypeExpr(t *ast.SimpleTypeExpression) *types.Type
	LookupClass(name ast.Identifier) (*ast.ClassDefinition, bool)
}

// TreeContext is the concrete Context used by the driver and by
// tests: a NameBindings scope plus a flat class registry and an
// annotation map standing in for the external type-checker's output.
type TreeContext struct {
	bindings    *binding.NameBindings
	classes     map[ast.Identifier]*ast.ClassDefinition
	annotations map[ast.Expression]*types.Type
	parent      *TreeContext
}

// NewRoot builds a root context over classes, with an empty root
// scope.
func NewRoot(classes map[ast.Identifier]*ast.ClassDefinition) *TreeContext {
	return &TreeContext{
		bindings:    binding.New(nil),
		classes:     classes,
		annotations: make(map[ast.Expression]*types.Type),
	}
}

func (c *TreeContext) Bindings() *binding.NameBindings { return c.bindings }

// Annotate records the type the (external) checker assigned to expr;
// TypeCheck consults this for any expression shape it cannot resolve
// on its own.
func (c *TreeContext) Annotate(expr ast.Expression, t *types.Type) {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	root.annotations[expr] = t
}

func (c *TreeContext) lookupAnnotation(expr ast.Expression) (*types.Type, bool) {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	t, ok := root.annotations[expr]
	return t, ok
}

// IsReferencingStaticDataMember classifies named as a reference to a
// static data member already bound in scope, versus a fresh local
// name the pattern will introduce a binding for.
func (c *TreeContext) IsReferencingStaticDataMember(named *ast.NamedEntityExpression) bool {
	b, ok := c.bindings.Lookup(named.Name)
	return ok && b.Kind == binding.DataMember
}

// NewChild forks a scratch child scope for speculative type-checking,
// sharing the class registry and annotation table but never mutating
// the parent's bindings.
func (c *TreeContext) NewChild() Context {
	return &TreeContext{
		bindings: binding.New(c.bindings),
		classes:  c.classes,
		parent:   c,
	}
}

func (c *TreeContext) LookupClass(name ast.Identifier) (*ast.ClassDefinition, bool) {
	cls, ok := c.classes[name]
	return cls, ok
}

// ResolveTypeExpr turns a SimpleTypeExpression into a canonical Type:
// a built-in when the name is a reserved keyword, otherwise a
// class/enum-backed NotBuiltIn or Enumeration type bound to the
// registered ClassDefinition.
func (c *TreeContext) ResolveTypeExpr(t *ast.SimpleTypeExpression) *types.Type {
	if t == nil {
		return types.VoidType
	}
	resolved := types.New(t.Name)
	if len(t.Generics) > 0 {
		resolved.Generics = make([]*types.Type, len(t.Generics))
		for i, g := range t.Generics {
			resolved.Generics[i] = c.ResolveTypeExpr(g)
		}
	}
	if resolved.BuiltInKind != types.NotBuiltIn {
		return resolved
	}
	cls, ok := c.LookupClass(t.Name)
	if !ok {
		return resolved
	}
	if cls.IsEnumeration() || cls.IsEnumerationVariant() {
		resolved.BuiltInKind = types.Enumeration
	}
	resolved.SetDefinition(&types.Definition{Class: cls})
	if cls.IsEnumeration() {
		return resolved
	}
	return resolved
}

// TypeCheck resolves the static type of expr. Literal and pattern
// scaffolding shapes are resolved directly; anything else falls back
// to a prior Annotate call, and an unannotated expression of unknown
// shape is a fatal internal error — the same "no recoverable
// diagnostics" surface every other core operation uses.
func (c *TreeContext) TypeCheck(expr ast.Expression) *types.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteralExpression:
		return types.NewBuiltIn(types.Integer)
	case *ast.BooleanLiteralExpression:
		return types.NewBuiltIn(types.Boolean)
	case *ast.NullExpression:
		return types.NullType
	case *ast.NamedEntityExpression:
		if b, ok := c.bindings.Lookup(e.Name); ok {
			switch b.Kind {
			case binding.DataMember:
				return c.ResolveTypeExpr(b.DataMemberDef.TypeExpr)
			case binding.LocalObject:
				if b.LocalObject.TypeExpr != nil {
					return c.ResolveTypeExpr(b.LocalObject.TypeExpr)
				}
			case binding.Class:
				return c.ResolveTypeExpr(&ast.SimpleTypeExpression{Name: b.ClassDef.Name})
			}
		}
	case *ast.LocalVariableExpression:
		if b, ok := c.bindings.Lookup(e.Name); ok && b.Kind == binding.LocalObject && b.LocalObject.TypeExpr != nil {
			return c.ResolveTypeExpr(b.LocalObject.TypeExpr)
		}
	case *ast.MethodSelectorExpression:
		subjectType := c.TypeCheck(e.Subject)
		if cls := subjectType.GetClass(); cls != nil {
			if m, ok := cls.FindMember(e.Member); ok {
				return c.ResolveTypeExpr(m.TypeExpr)
			}
		}
	}
	if t, ok := c.lookupAnnotation(expr); ok {
		return t
	}
	trace.Fatalf(expr, "internal error: no type available for expression")
	return nil
}
