package semcontext

import (
	"testing"

	"semcore/pkg/ast"
	"semcore/pkg/binding"
	"semcore/pkg/types"
)

func loc() ast.Location { return ast.Location{File: "t.able", Line: 1, Column: 1} }

func TestResolveTypeExprKeywordVsClass(t *testing.T) {
	cat := &ast.ClassDefinition{Name: "Cat"}
	ctx := NewRoot(map[ast.Identifier]*ast.ClassDefinition{"Cat": cat})

	intType := ctx.ResolveTypeExpr(&ast.SimpleTypeExpression{Name: "int"})
	if intType.BuiltInKind != types.Integer {
		t.Fatalf("expected int to resolve to the built-in integer type, got %+v", intType)
	}

	catType := ctx.ResolveTypeExpr(&ast.SimpleTypeExpression{Name: "Cat"})
	if catType.BuiltInKind != types.NotBuiltIn || catType.GetClass() != cat {
		t.Fatalf("expected Cat to resolve to a class-backed type, got %+v", catType)
	}
}

func TestResolveTypeExprEnumeration(t *testing.T) {
	enumDef := &ast.ClassDefinition{Name: "Color", Kind: ast.ClassKindEnumeration}
	ctx := NewRoot(map[ast.Identifier]*ast.ClassDefinition{"Color": enumDef})

	colorType := ctx.ResolveTypeExpr(&ast.SimpleTypeExpression{Name: "Color"})
	if colorType.BuiltInKind != types.Enumeration {
		t.Fatalf("expected Color to resolve to the enumeration built-in kind, got %+v", colorType)
	}
}

func TestIsReferencingStaticDataMember(t *testing.T) {
	ctx := NewRoot(nil)
	ctx.Bindings().InsertDataMember(&ast.DataMemberDefinition{Name: "ORIGIN", TypeExpr: &ast.SimpleTypeExpression{Name: "int"}})
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("x", &ast.SimpleTypeExpression{Name: "int"}, nil, loc()))

	if !ctx.IsReferencingStaticDataMember(ast.NewNamedEntity("ORIGIN", loc())) {
		t.Fatalf("expected ORIGIN to be classified as a static data member reference")
	}
	if ctx.IsReferencingStaticDataMember(ast.NewNamedEntity("x", loc())) {
		t.Fatalf("expected x (a local object) to not be classified as a data member reference")
	}
	if ctx.IsReferencingStaticDataMember(ast.NewNamedEntity("nowhere", loc())) {
		t.Fatalf("expected an unbound name to not be classified as a data member reference")
	}
}

func TestNewChildForksWithoutMutatingParent(t *testing.T) {
	ctx := NewRoot(nil)
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("x", &ast.SimpleTypeExpression{Name: "int"}, nil, loc()))

	child := ctx.NewChild()
	child.Bindings().InsertLocalObject(ast.NewVariableDeclaration("y", &ast.SimpleTypeExpression{Name: "int"}, nil, loc()))

	if _, ok := ctx.Bindings().Lookup("y"); ok {
		t.Fatalf("child bindings must not leak back into the parent scope")
	}
	if _, ok := child.Bindings().Lookup("x"); !ok {
		t.Fatalf("child scope should still see bindings inherited from its parent")
	}
}

func TestTypeCheckResolvesLiteralsAndLocalObjects(t *testing.T) {
	ctx := NewRoot(nil)
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("n", &ast.SimpleTypeExpression{Name: "int"}, nil, loc()))

	intLit := ctx.TypeCheck(ast.NewIntegerLiteral(1, loc()))
	if intLit.BuiltInKind != types.Integer {
		t.Fatalf("expected an integer literal to type-check as int, got %+v", intLit)
	}

	boolLit := ctx.TypeCheck(ast.NewBooleanLiteral(true, loc()))
	if boolLit.BuiltInKind != types.Boolean {
		t.Fatalf("expected a boolean literal to type-check as bool, got %+v", boolLit)
	}

	named := ctx.TypeCheck(ast.NewNamedEntity("n", loc()))
	if named.BuiltInKind != types.Integer {
		t.Fatalf("expected n to type-check via its declared type, got %+v", named)
	}
}

func TestTypeCheckFallsBackToAnnotation(t *testing.T) {
	ctx := NewRoot(nil)
	expr := ast.NewWildcard(loc())
	ctx.Annotate(expr, types.NewBuiltIn(types.String))

	resolved := ctx.TypeCheck(expr)
	if resolved.BuiltInKind != types.String {
		t.Fatalf("expected the annotated type to be used, got %+v", resolved)
	}
}

func TestTypeCheckUnannotatedUnknownShapeIsFatal(t *testing.T) {
	ctx := NewRoot(nil)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected TypeCheck to panic on an unannotated, unresolvable expression")
		}
	}()
	ctx.TypeCheck(ast.NewWildcard(loc()))
}

func TestBindingsReturnsUnderlyingScope(t *testing.T) {
	ctx := NewRoot(nil)
	if ctx.Bindings() == nil {
		t.Fatalf("expected a non-nil root bindings scope")
	}
	var _ *binding.NameBindings = ctx.Bindings()
}
