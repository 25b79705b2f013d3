package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/coverage"
	"semcore/pkg/semcontext"
	"semcore/pkg/types"
)

// ClassDecompositionPattern destructures a class or enum-variant value
// member by member: `T(field1: p1, field2: p2, ...)`.
type ClassDecompositionPattern struct {
	base
	TypeExpr    *ast.SimpleTypeExpression
	VariantName ast.Identifier
	IsVariant   bool
	Members     []ast.ClassDecompositionMember
}

func NewClassDecompositionPattern(e *ast.ClassDecompositionExpression) *ClassDecompositionPattern {
	return &ClassDecompositionPattern{
		TypeExpr:    e.TypeExpr,
		VariantName: e.VariantName,
		IsVariant:   e.IsVariant,
		Members:     e.Members,
	}
}

// IsMatchExhaustive implements §4.4.3's two ClassDecompositionPattern
// rules, enum-variant and non-enum.
func (p *ClassDecompositionPattern) IsMatchExhaustive(subject ast.Expression, cov *coverage.MatchCoverage, hasGuard bool, ctx semcontext.Context) bool {
	subjectType := ctx.TypeCheck(subject)
	patternType := ctx.ResolveTypeExpr(p.TypeExpr)

	if p.IsVariant {
		if !types.Equal(subjectType, patternType) {
			fatalEnumTypeMismatch(subject, patternType.String(), subjectType.String())
		}
		if cov.IsCaseCovered(p.VariantName) {
			fatalUnreachablePattern(subject)
		}
		if !hasGuard && areAllMemberPatternsIrrefutable(p.Members, ctx) {
			cov.MarkCaseAsCovered(p.VariantName)
		}
		return cov.AreAllCasesCovered()
	}

	if !types.Equal(subjectType, patternType) {
		return false
	}
	return !hasGuard && areAllMemberPatternsIrrefutable(p.Members, ctx)
}

func (p *ClassDecompositionPattern) memberSelector(effectiveSubject ast.Expression, field ast.Identifier, loc ast.Location) ast.Expression {
	if p.IsVariant {
		dataSelector := ast.NewMethodSelector(effectiveSubject, variantDataField(p.VariantName), loc)
		return ast.NewMethodSelector(dataSelector, field, loc)
	}
	return ast.NewMethodSelector(effectiveSubject, field, loc)
}

// GenerateComparisonExpression implements §4.4.4's two-phase
// ClassDecompositionPattern lowering: type discrimination, then
// member decomposition.
func (p *ClassDecompositionPattern) GenerateComparisonExpression(subject ast.Expression, ctx semcontext.Context) ast.Expression {
	loc := subject.GetLocation()
	patternType := ctx.ResolveTypeExpr(p.TypeExpr)
	effectiveSubject := subject

	var discrimination ast.Expression
	if p.IsVariant {
		tagSelector := ast.NewMethodSelector(subject, TagFieldName, loc)
		tagConst := ast.NewMethodSelector(ast.NewNamedEntity(p.TypeExpr.Name, loc), variantTagConstName(p.VariantName), loc)
		discrimination = ast.NewBinaryExpression(ast.OpEq, tagSelector, tagConst, loc)
	} else if subjectType := ctx.TypeCheck(subject); !types.Equal(subjectType, patternType) {
		suffix := ast.GenerateVariableName(subject)
		tempName := ast.GenerateTemporaryName(p.TypeExpr.Name, suffix)
		p.addTemporary(ast.NewTemporaryDeclaration(tempName, p.TypeExpr, loc))
		tempRef := ast.NewLocalVariable(tempName, loc)
		cast := ast.NewTypeCast(p.TypeExpr, subject, loc)
		assign := ast.NewAssign(tempRef, cast, loc)
		discrimination = ast.NewBinaryExpression(ast.OpNe, assign, ast.NewNullExpression(loc), loc)
		effectiveSubject = tempRef
	}

	terms := []ast.Expression{discrimination}
	for _, m := range p.Members {
		terms = append(terms, p.generateMemberComparisonExpression(m, effectiveSubject, ctx))
	}
	return ast.Conjoin(terms...)
}

func (p *ClassDecompositionPattern) generateMemberComparisonExpression(m ast.ClassDecompositionMember, effectiveSubject ast.Expression, ctx semcontext.Context) ast.Expression {
	if m.Pattern == nil || ast.IsPlaceholder(m.Pattern) {
		return nil
	}
	loc := effectiveSubject.GetLocation()
	selector := p.memberSelector(effectiveSubject, m.FieldName, loc)

	if named, ok := m.Pattern.(*ast.NamedEntityExpression); ok && !ctx.IsReferencingStaticDataMember(named) {
		p.addDeclaration(ast.NewVariableDeclaration(named.Name, nil, selector, named.GetLocation()))
		return nil
	}

	sub := Create(m.Pattern, ctx.NewChild())
	term := sub.GenerateComparisonExpression(selector, ctx)
	p.mergeFrom(sub)
	return term
}
