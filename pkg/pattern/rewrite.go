package pattern

import (
	"semcore/pkg/ast"
	"semcore/pkg/semcontext"
	"semcore/pkg/trace"
)

// isConstructorShaped reports whether e is a method call, a named
// entity that resolves to a constructor, or a member selector whose
// RHS is a call — the three shapes §4.4.1 rewrites into a class
// decomposition before building a ClassDecompositionPattern.
func isConstructorShaped(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.MethodCallExpression:
		return true
	case *ast.NamedEntityExpression:
		return v.Call != nil
	case *ast.MemberSelectorExpression:
		_, ok := v.GetRhsCall()
		return ok
	}
	return false
}

func variantWrap(decomp *ast.ClassDecompositionExpression, class *ast.ClassDefinition) {
	if !class.IsEnumerationVariant() {
		return
	}
	decomp.IsVariant = true
	decomp.VariantName = class.Name
	if class.VariantOf != nil {
		decomp.TypeExpr = &ast.SimpleTypeExpression{Name: class.VariantOf.Name}
	}
}

// rewriteConstructorCall implements §4.4.5: allocate a class
// decomposition of the called class, verify the primary-constructor
// arg count, and recurse into any argument that is itself
// constructor-shaped.
func rewriteConstructorCall(call *ast.MethodCallExpression, ctx semcontext.Context) *ast.ClassDecompositionExpression {
	class, ok := ctx.LookupClass(call.Name)
	if !ok {
		trace.Fatalf(call, "unknown constructor %q", call.Name)
	}
	ctorArgs := class.GetPrimaryCtorArgDataMembers()
	if len(ctorArgs) != len(call.Arguments) {
		fatalArityMismatch(call, call.Name, len(ctorArgs), len(call.Arguments))
	}

	members := make([]ast.ClassDecompositionMember, len(ctorArgs))
	for i, field := range ctorArgs {
		arg := call.Arguments[i]
		if isConstructorShaped(arg) {
			arg = nestedDecomposition(arg, ctx)
		}
		members[i] = ast.ClassDecompositionMember{FieldName: field.Name, Pattern: arg}
	}

	decomp := ast.NewClassDecomposition(&ast.SimpleTypeExpression{Name: class.Name}, members, call.GetLocation())
	variantWrap(decomp, class)
	return decomp
}

// rewriteNamedConstructor handles a bare NamedEntityExpression
// resolving to a constructor with zero arguments — §4.4.5's
// "empty argument lists produce a bare tag-discrimination
// decomposition".
func rewriteNamedConstructor(named *ast.NamedEntityExpression, ctx semcontext.Context) *ast.ClassDecompositionExpression {
	class := named.Call.Class
	if class == nil {
		trace.Fatalf(named, "unknown constructor %q", named.Name)
	}
	decomp := ast.NewClassDecomposition(&ast.SimpleTypeExpression{Name: class.Name}, nil, named.GetLocation())
	variantWrap(decomp, class)
	return decomp
}

func nestedDecomposition(e ast.Expression, ctx semcontext.Context) ast.Expression {
	switch v := e.(type) {
	case *ast.MethodCallExpression:
		return rewriteConstructorCall(v, ctx)
	case *ast.NamedEntityExpression:
		return rewriteNamedConstructor(v, ctx)
	case *ast.MemberSelectorExpression:
		if call, ok := v.GetRhsCall(); ok {
			return rewriteConstructorCall(call, ctx)
		}
	}
	return e
}
