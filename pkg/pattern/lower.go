package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/coverage"
	"semcore/pkg/semcontext"
	"semcore/pkg/trace"
)

// LoweredCase is the full output of lowering one match case: the
// pattern instance (carrying its declarations/temporaries
// accumulators), the produced comparison expression tree, and whether
// this case proves the match exhaustive at this point.
type LoweredCase struct {
	Pattern    Pattern
	Comparison ast.Expression
	Exhaustive bool
}

// Lower is the one exported boundary for the pattern subsystem: it
// classifies e into a concrete Pattern, decides exhaustiveness against
// cov, generates the comparison expression tree, and recovers any
// fatal trace raised along the way into a returned error instead of
// letting the panic escape. Callers inject the returned declarations
// and temporaries into the enclosing case body and block respectively.
func Lower(e ast.Expression, subject ast.Expression, cov *coverage.MatchCoverage, hasGuard bool, ctx semcontext.Context) (result *LoweredCase, err error) {
	defer trace.Recover(&err)

	p := Create(e, ctx)
	exhaustive := p.IsMatchExhaustive(subject, cov, hasGuard, ctx)
	comparison := p.GenerateComparisonExpression(subject, ctx)
	return &LoweredCase{Pattern: p, Comparison: comparison, Exhaustive: exhaustive}, nil
}
