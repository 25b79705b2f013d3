package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/coverage"
	"semcore/pkg/semcontext"
)

// ArrayPattern decomposes an array literal used as a pattern:
// `[a, .., b]`.
type ArrayPattern struct {
	base
	Literal *ast.ArrayLiteralExpression
}

func NewArrayPattern(lit *ast.ArrayLiteralExpression) *ArrayPattern {
	return &ArrayPattern{Literal: lit}
}

// IsMatchExhaustive implements §4.4.3: exhaustive iff the pattern is a
// single-element array whose element is the wildcard token and no
// guard is present.
func (p *ArrayPattern) IsMatchExhaustive(_ ast.Expression, _ *coverage.MatchCoverage, hasGuard bool, _ semcontext.Context) bool {
	if hasGuard {
		return false
	}
	return len(p.Literal.Elements) == 1 && ast.IsWildcard(p.Literal.Elements[0])
}

// GenerateMatchSubjectLengthDeclaration is the caller-side helper from
// §4.4.4: one `int __match_subject_length = subject.length()`
// declaration, emitted once per array-pattern case, before this
// pattern's own comparison expression runs.
func GenerateMatchSubjectLengthDeclaration(subject ast.Expression, loc ast.Location) *ast.VariableDeclarationStatement {
	lengthCall := ast.NewMethodSelector(subject, "length", loc)
	return ast.NewVariableDeclaration(MatchSubjectLengthName, &ast.SimpleTypeExpression{Name: "int"}, lengthCall, loc)
}

// GenerateComparisonExpression implements §4.4.4's ArrayPattern rules.
func (p *ArrayPattern) GenerateComparisonExpression(subject ast.Expression, ctx semcontext.Context) ast.Expression {
	elements := p.Literal.Elements
	loc := p.Literal.GetLocation()

	wildcardCount := 0
	for _, e := range elements {
		if ast.IsWildcard(e) {
			wildcardCount++
		}
	}
	if wildcardCount > 1 {
		fatalDuplicateWildcard(p.Literal)
	}
	hasWildcard := wildcardCount == 1
	nonWildcard := len(elements) - wildcardCount

	lengthVar := ast.NewLocalVariable(MatchSubjectLengthName, loc)
	lengthOp := ast.OpEq
	if hasWildcard {
		lengthOp = ast.OpGe
	}
	terms := []ast.Expression{
		ast.NewBinaryExpression(lengthOp, lengthVar, ast.NewIntegerLiteral(int64(nonWildcard), loc), loc),
	}

	toTheRightOfWildcard := false
	for i, e := range elements {
		if ast.IsWildcard(e) {
			toTheRightOfWildcard = true
			continue
		}
		if ast.IsPlaceholder(e) {
			continue
		}
		elemLoc := e.GetLocation()
		var idx ast.Expression
		if !toTheRightOfWildcard {
			idx = ast.NewIntegerLiteral(int64(i), elemLoc)
		} else {
			reverseIndex := len(elements) - i
			idx = ast.NewBinaryExpression(ast.OpSub, lengthVar, ast.NewIntegerLiteral(int64(reverseIndex), elemLoc), elemLoc)
		}
		subscript := ast.NewArraySubscript(subject, idx, elemLoc)
		if named, ok := e.(*ast.NamedEntityExpression); ok && !ctx.IsReferencingStaticDataMember(named) {
			p.addDeclaration(ast.NewVariableDeclaration(named.Name, nil, subscript, named.GetLocation()))
			continue
		}
		terms = append(terms, ast.NewBinaryExpression(ast.OpEq, subscript, e, elemLoc))
	}
	return ast.Conjoin(terms...)
}
