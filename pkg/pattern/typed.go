package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/coverage"
	"semcore/pkg/semcontext"
	"semcore/pkg/types"
)

// TypedPattern is the `x: T` pattern form: a safe downcast test with
// an optional bound result name.
type TypedPattern struct {
	base
	Expr *ast.TypedExpression
}

func NewTypedPattern(e *ast.TypedExpression) *TypedPattern {
	return &TypedPattern{Expr: e}
}

// IsMatchExhaustive implements §4.4.3: exhaustive iff the pattern type
// equals the subject type and no guard is present.
func (p *TypedPattern) IsMatchExhaustive(subject ast.Expression, _ *coverage.MatchCoverage, hasGuard bool, ctx semcontext.Context) bool {
	if hasGuard {
		return false
	}
	subjectType := ctx.TypeCheck(subject)
	patternType := ctx.ResolveTypeExpr(p.Expr.TypeExpr)
	return types.Equal(subjectType, patternType)
}

// GenerateComparisonExpression implements §4.4.4's TypedPattern rule:
// a cast temporary, the cast-and-compare test, and (when a result name
// is present) a declaration binding that name to the temporary.
func (p *TypedPattern) GenerateComparisonExpression(subject ast.Expression, _ semcontext.Context) ast.Expression {
	loc := p.Expr.GetLocation()
	suffix := ast.GenerateVariableName(subject)
	tempName := ast.GenerateTemporaryName(p.Expr.TypeExpr.Name, suffix)
	p.addTemporary(ast.NewTemporaryDeclaration(tempName, p.Expr.TypeExpr, loc))

	tempRef := ast.NewLocalVariable(tempName, loc)
	cast := ast.NewTypeCast(p.Expr.TypeExpr, subject, loc)
	assign := ast.NewAssign(tempRef, cast, loc)
	comparison := ast.NewBinaryExpression(ast.OpNe, assign, ast.NewNullExpression(loc), loc)

	if p.Expr.HasName {
		p.addDeclaration(ast.NewVariableDeclaration(p.Expr.Name, nil, ast.NewLocalVariable(tempName, loc), loc))
	}
	return comparison
}
