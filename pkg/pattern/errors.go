package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/trace"
)

// The four fatal error kinds from §7, each raised through the single
// trace.Fatal funnel.

func fatalUnreachablePattern(node ast.Node) {
	trace.Fatal("unreachable pattern", node)
}

func fatalArityMismatch(node ast.Node, name ast.Identifier, want, got int) {
	trace.Fatalf(node, "constructor %q expects %d argument(s), got %d", name, want, got)
}

func fatalEnumTypeMismatch(node ast.Node, patternType, subjectType string) {
	trace.Fatalf(node, "pattern type %s does not match subject type %s", patternType, subjectType)
}

func fatalDuplicateWildcard(node ast.Node) {
	trace.Fatal("Wildcard '..' can only be present once in an array pattern.", node)
}
