package ast

// ReferencesSameName reports whether named refers to the same
// identifier as subject, when subject is itself a name-carrying
// expression (a NamedEntityExpression or a produced
// LocalVariableExpression). This is the isReferencingName(subject)
// capability from the consumed expression interface.
func ReferencesSameName(named *NamedEntityExpression, subject Expression) bool {
	switch s := subject.(type) {
	case *NamedEntityExpression:
		return s.Name == named.Name
	case *LocalVariableExpression:
		return s.Name == named.Name
	default:
		return false
	}
}

// GenerateVariableName produces the deterministic mangled identifier
// fragment §6 requires as the suffix half of a cast temporary's name.
func GenerateVariableName(e Expression) string {
	switch v := e.(type) {
	case *NamedEntityExpression:
		return string(v.Name)
	case *LocalVariableExpression:
		return string(v.Name)
	case *MethodSelectorExpression:
		return GenerateVariableName(v.Subject) + "_" + string(v.Member)
	case *ArraySubscriptExpression:
		return GenerateVariableName(v.Array) + "_elem"
	case *MemberSelectorExpression:
		return GenerateVariableName(v.Lhs)
	default:
		return "subject"
	}
}
