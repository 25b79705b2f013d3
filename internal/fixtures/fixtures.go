// Package fixtures builds the small set of builtin match scenarios the
// driver runs against pkg/pattern: the same boolean, array, enum,
// typed, and class-decomposition shapes worked through in §8, wired up
// as constructible inputs instead of test assertions.
package fixtures

import (
	"fmt"

	"semcore/pkg/ast"
	"semcore/pkg/coverage"
	"semcore/pkg/pattern"
	"semcore/pkg/semcontext"
)

func loc(line int) ast.Location { return ast.Location{File: "fixture.able", Line: line, Column: 1} }

// Case is one pattern lowered against a subject within a scenario.
type Case struct {
	Label   string
	Pattern ast.Expression
	Guard   bool
}

// Scenario bundles a context, a subject expression, coverage tracker,
// and the ordered cases a match statement over that subject would
// carry.
type Scenario struct {
	Name    string
	Context semcontext.Context
	Subject ast.Expression
	Cover   *coverage.MatchCoverage
	Cases   []Case
}

// Registry returns every builtin scenario, in a stable order.
func Registry() []Scenario {
	return []Scenario{
		booleanExhaustiveness(),
		arrayBinding(),
		enumVariantPayload(),
		typedDowncast(),
		nestedDecomposition(),
	}
}

// Names returns each scenario's name, used to build the default
// configuration's fixture list.
func Names() []string {
	scenarios := Registry()
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}

func booleanExhaustiveness() Scenario {
	ctx := semcontext.NewRoot(nil)
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("flag", &ast.SimpleTypeExpression{Name: "bool"}, nil, loc(1)))
	return Scenario{
		Name:    "boolean-exhaustiveness",
		Context: ctx,
		Subject: ast.NewNamedEntity("flag", loc(1)),
		Cover:   coverage.NewBoolean(),
		Cases: []Case{
			{Label: "true", Pattern: ast.NewBooleanLiteral(true, loc(2))},
			{Label: "false", Pattern: ast.NewBooleanLiteral(false, loc(3))},
		},
	}
}

func arrayBinding() Scenario {
	ctx := semcontext.NewRoot(nil)
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("xs", &ast.SimpleTypeExpression{Name: "int"}, nil, loc(1)))
	pat := ast.NewArrayLiteral([]ast.Expression{
		ast.NewNamedEntity("head", loc(2)),
		ast.NewWildcard(loc(2)),
		ast.NewNamedEntity("tail", loc(2)),
	}, loc(2))
	return Scenario{
		Name:    "array-binding",
		Context: ctx,
		Subject: ast.NewNamedEntity("xs", loc(1)),
		Cover:   coverage.NewOther(),
		Cases:   []Case{{Label: "head/middle/tail", Pattern: pat}},
	}
}

func enumClasses() (enumDef, variantDef *ast.ClassDefinition) {
	variantDef = &ast.ClassDefinition{
		Name:            "Some",
		Kind:            ast.ClassKindEnumerationVariant,
		Members:         []ast.DataMemberDefinition{{Name: "value", TypeExpr: &ast.SimpleTypeExpression{Name: "int"}}},
		PrimaryCtorArgs: []ast.DataMemberDefinition{{Name: "value", TypeExpr: &ast.SimpleTypeExpression{Name: "int"}}},
	}
	none := &ast.ClassDefinition{Name: "None", Kind: ast.ClassKindEnumerationVariant}
	enumDef = &ast.ClassDefinition{
		Name:         "Option",
		Kind:         ast.ClassKindEnumeration,
		EnumVariants: []*ast.ClassDefinition{variantDef, none},
	}
	variantDef.VariantOf = enumDef
	none.VariantOf = enumDef
	return enumDef, variantDef
}

func enumVariantPayload() Scenario {
	enumDef, variantDef := enumClasses()
	registry := map[ast.Identifier]*ast.ClassDefinition{
		enumDef.Name:    enumDef,
		variantDef.Name: variantDef,
		"None":          enumDef.EnumVariants[1],
	}
	ctx := semcontext.NewRoot(registry)
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("opt", &ast.SimpleTypeExpression{Name: "Option"}, nil, loc(1)))
	some := ast.NewMethodCall("Some", []ast.Expression{ast.NewNamedEntity("value", loc(2))}, loc(2))
	none := ast.NewNamedEntity("None", loc(3))
	none.Call = &ast.ConstructorCallInfo{Class: enumDef.EnumVariants[1]}
	return Scenario{
		Name:    "enum-variant-payload",
		Context: ctx,
		Subject: ast.NewNamedEntity("opt", loc(1)),
		Cover:   coverage.NewEnumeration([]ast.Identifier{"Some", "None"}),
		Cases: []Case{
			{Label: "Some(value)", Pattern: some},
			{Label: "None", Pattern: none},
		},
	}
}

func classHierarchy() (animal, cat *ast.ClassDefinition) {
	animal = &ast.ClassDefinition{Name: "Animal"}
	cat = &ast.ClassDefinition{Name: "Cat", SuperClass: animal}
	return animal, cat
}

func typedDowncast() Scenario {
	animal, cat := classHierarchy()
	ctx := semcontext.NewRoot(map[ast.Identifier]*ast.ClassDefinition{animal.Name: animal, cat.Name: cat})
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("pet", &ast.SimpleTypeExpression{Name: "Animal"}, nil, loc(1)))
	pat := ast.NewTyped("c", true, &ast.SimpleTypeExpression{Name: "Cat"}, loc(2))
	return Scenario{
		Name:    "typed-downcast",
		Context: ctx,
		Subject: ast.NewNamedEntity("pet", loc(1)),
		Cover:   coverage.NewOther(),
		Cases:   []Case{{Label: "c: Cat", Pattern: pat}},
	}
}

func pointClass() *ast.ClassDefinition {
	return &ast.ClassDefinition{
		Name: "Point",
		Members: []ast.DataMemberDefinition{
			{Name: "x", TypeExpr: &ast.SimpleTypeExpression{Name: "int"}},
			{Name: "y", TypeExpr: &ast.SimpleTypeExpression{Name: "int"}},
		},
		PrimaryCtorArgs: []ast.DataMemberDefinition{
			{Name: "x", TypeExpr: &ast.SimpleTypeExpression{Name: "int"}},
			{Name: "y", TypeExpr: &ast.SimpleTypeExpression{Name: "int"}},
		},
	}
}

func nestedDecomposition() Scenario {
	point := pointClass()
	ctx := semcontext.NewRoot(map[ast.Identifier]*ast.ClassDefinition{point.Name: point})
	ctx.Bindings().InsertLocalObject(ast.NewVariableDeclaration("origin", &ast.SimpleTypeExpression{Name: "Point"}, nil, loc(1)))
	pat := ast.NewClassDecomposition(&ast.SimpleTypeExpression{Name: "Point"}, []ast.ClassDecompositionMember{
		{FieldName: "x", Pattern: ast.NewIntegerLiteral(0, loc(2))},
		{FieldName: "y", Pattern: ast.NewNamedEntity("y", loc(2))},
	}, loc(2))
	return Scenario{
		Name:    "nested-decomposition",
		Context: ctx,
		Subject: ast.NewNamedEntity("origin", loc(1)),
		Cover:   coverage.NewOther(),
		Cases:   []Case{{Label: "Point(x: 0, y)", Pattern: pat}},
	}
}

// Result is one lowered case plus the error, if any, raised while
// lowering it.
type Result struct {
	Case    Case
	Lowered *pattern.LoweredCase
	Err     error
}

// Run lowers every case in s in order, stopping at the first error
// (mirroring a real match statement, where a fatal diagnostic in one
// case aborts the whole statement).
func (s Scenario) Run() ([]Result, error) {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		lowered, err := pattern.Lower(c.Pattern, s.Subject, s.Cover, c.Guard, s.Context)
		results = append(results, Result{Case: c, Lowered: lowered, Err: err})
		if err != nil {
			return results, fmt.Errorf("scenario %s: case %s: %w", s.Name, c.Label, err)
		}
	}
	return results, nil
}

// ByName looks up a single registered scenario.
func ByName(name string) (Scenario, bool) {
	for _, s := range Registry() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
