package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/coverage"
	"semcore/pkg/semcontext"
	"semcore/pkg/types"
)

// SimplePattern wraps any expression that isn't an array literal,
// typed expression, class decomposition, or constructor-shaped call:
// literals, placeholders, and plain name references.
type SimplePattern struct {
	base
	Expr ast.Expression
}

func NewSimplePattern(e ast.Expression) *SimplePattern {
	return &SimplePattern{Expr: e}
}

func boolCaseName(v bool) ast.Identifier {
	if v {
		return "true"
	}
	return "false"
}

// IsMatchExhaustive implements §4.4.3's SimplePattern rules.
func (p *SimplePattern) IsMatchExhaustive(subject ast.Expression, cov *coverage.MatchCoverage, hasGuard bool, ctx semcontext.Context) bool {
	if ast.IsPlaceholder(p.Expr) {
		return !hasGuard
	}
	if lit, ok := p.Expr.(*ast.BooleanLiteralExpression); ok {
		if ctx.TypeCheck(subject).BuiltInKind != types.Boolean {
			return false
		}
		name := boolCaseName(lit.Value)
		if cov.IsCaseCovered(name) {
			fatalUnreachablePattern(p.Expr)
		}
		if !hasGuard {
			cov.MarkCaseAsCovered(name)
		}
		return cov.AreAllCasesCovered()
	}
	if named, ok := p.Expr.(*ast.NamedEntityExpression); ok {
		if ast.ReferencesSameName(named, subject) || !ctx.IsReferencingStaticDataMember(named) {
			return !hasGuard
		}
	}
	return false
}

// GenerateComparisonExpression implements §4.4.4's SimplePattern rule:
// a name that introduces a binding emits a declaration but still
// contributes a comparison term; a placeholder contributes no
// comparison term (it is irrefutable and binds nothing); in every
// other case the subject is compared against the pattern expression.
func (p *SimplePattern) GenerateComparisonExpression(subject ast.Expression, ctx semcontext.Context) ast.Expression {
	if ast.IsPlaceholder(p.Expr) {
		return nil
	}
	if named, ok := p.Expr.(*ast.NamedEntityExpression); ok && !ctx.IsReferencingStaticDataMember(named) {
		p.addDeclaration(ast.NewVariableDeclaration(named.Name, nil, subject, named.GetLocation()))
	}
	return ast.NewBinaryExpression(ast.OpEq, subject, p.Expr, p.Expr.GetLocation())
}
