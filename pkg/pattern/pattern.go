// Package pattern implements the four pattern kinds, the
// irrefutability and exhaustiveness decisions, and lowering into a
// boolean comparison expression tree plus introduced declarations and
// temporaries.
package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/coverage"
	"semcore/pkg/semcontext"
)

// Symbol-name conventions, bit-exact per §6.
const (
	TagFieldName        ast.Identifier = "__tag"
	MatchSubjectLengthName ast.Identifier = "__match_subject_length"
)

func variantDataField(variant ast.Identifier) ast.Identifier {
	return ast.Identifier("__" + string(variant) + "_data")
}

func variantTagConstName(variant ast.Identifier) ast.Identifier {
	return ast.Identifier("__" + string(variant) + "_tag")
}

// Pattern is the common capability every one of the four concrete
// kinds implements: two accumulators plus exhaustiveness and lowering.
type Pattern interface {
	Declarations() []*ast.VariableDeclarationStatement
	Temporaries() []*ast.VariableDeclarationStatement
	IsMatchExhaustive(subject ast.Expression, cov *coverage.MatchCoverage, hasGuard bool, ctx semcontext.Context) bool
	GenerateComparisonExpression(subject ast.Expression, ctx semcontext.Context) ast.Expression
}

// base implements the two accumulators shared by every concrete kind.
type base struct {
	declarations []*ast.VariableDeclarationStatement
	temporaries  []*ast.VariableDeclarationStatement
}

func (b *base) Declarations() []*ast.VariableDeclarationStatement { return b.declarations }
func (b *base) Temporaries() []*ast.VariableDeclarationStatement  { return b.temporaries }

func (b *base) addDeclaration(d *ast.VariableDeclarationStatement) {
	b.declarations = append(b.declarations, d)
}

func (b *base) addTemporary(t *ast.VariableDeclarationStatement) {
	b.temporaries = append(b.temporaries, t)
}

// mergeFrom absorbs a nested pattern's accumulators into this one, the
// merge step class-decomposition member analysis performs after
// recursing into a sub-pattern.
func (b *base) mergeFrom(p Pattern) {
	b.declarations = append(b.declarations, p.Declarations()...)
	b.temporaries = append(b.temporaries, p.Temporaries()...)
}

// Create dispatches on the expression shape per §4.4.1.
func Create(e ast.Expression, ctx semcontext.Context) Pattern {
	switch v := e.(type) {
	case *ast.ArrayLiteralExpression:
		return NewArrayPattern(v)
	case *ast.TypedExpression:
		return NewTypedPattern(v)
	case *ast.ClassDecompositionExpression:
		return NewClassDecompositionPattern(v)
	case *ast.MethodCallExpression:
		return NewClassDecompositionPattern(rewriteConstructorCall(v, ctx))
	case *ast.NamedEntityExpression:
		if v.Call != nil {
			return NewClassDecompositionPattern(rewriteNamedConstructor(v, ctx))
		}
		return NewSimplePattern(v)
	case *ast.MemberSelectorExpression:
		if call, ok := v.GetRhsCall(); ok {
			return NewClassDecompositionPattern(rewriteConstructorCall(call, ctx))
		}
		return NewSimplePattern(v)
	default:
		return NewSimplePattern(e)
	}
}

// isIrrefutable implements §4.4.2: absent/placeholder are irrefutable;
// a named entity that is not a static data member reference
// introduces a binding and is irrefutable; a class decomposition is
// irrefutable when every one of its own member patterns is; anything
// else is refutable.
func isIrrefutable(sub ast.Expression, ctx semcontext.Context) bool {
	if sub == nil || ast.IsPlaceholder(sub) {
		return true
	}
	switch v := sub.(type) {
	case *ast.NamedEntityExpression:
		return !ctx.IsReferencingStaticDataMember(v)
	case *ast.ClassDecompositionExpression:
		return areAllMemberPatternsIrrefutable(v.Members, ctx)
	default:
		return false
	}
}

func areAllMemberPatternsIrrefutable(members []ast.ClassDecompositionMember, ctx semcontext.Context) bool {
	for _, m := range members {
		if !isIrrefutable(m.Pattern, ctx) {
			return false
		}
	}
	return true
}
