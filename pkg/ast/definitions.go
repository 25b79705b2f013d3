package ast

// DataMemberDefinition describes one field of a class, interface, or
// enum variant.
type DataMemberDefinition struct {
	Name      Identifier
	TypeExpr  *SimpleTypeExpression
	IsCtorArg bool
}

// MethodDefinition describes one overload of a method, or one enum
// constructor.
type MethodDefinition struct {
	Name         Identifier
	ArgumentList []DataMemberDefinition
	Class        *ClassDefinition
	enumCtor     bool
}

func NewMethodDefinition(name Identifier, args []DataMemberDefinition, owner *ClassDefinition) *MethodDefinition {
	return &MethodDefinition{Name: name, ArgumentList: args, Class: owner}
}

func (m *MethodDefinition) GetName() Identifier                     { return m.Name }
func (m *MethodDefinition) GetArgumentList() []DataMemberDefinition { return m.ArgumentList }
func (m *MethodDefinition) IsEnumConstructor() bool                 { return m.enumCtor }
func (m *MethodDefinition) GetClass() *ClassDefinition              { return m.Class }
func (m *MethodDefinition) MarkEnumConstructor()                    { m.enumCtor = true }

// GenericTypeParameterDefinition names one generic parameter of a
// class or method, optionally already bound to a concrete type (as
// happens inside an instantiated generic context).
type GenericTypeParameterDefinition struct {
	Name     Identifier
	Concrete *ResolvedType // nil when unbound
}

func (g *GenericTypeParameterDefinition) GetConcreteType() *ResolvedType { return g.Concrete }

// ClassKind distinguishes the shapes a ClassDefinition can take; the
// core only cares about these four.
type ClassKind int

const (
	ClassKindOrdinary ClassKind = iota
	ClassKindInterface
	ClassKindEnumeration
	ClassKindEnumerationVariant
)

// ClassDefinition describes a class, interface, enumeration, or one
// variant of an enumeration.
type ClassDefinition struct {
	Name            Identifier
	Kind            ClassKind
	IsMessageFlag   bool
	IsPrimitiveFlag bool
	GenericParams   []*GenericTypeParameterDefinition
	Members         []DataMemberDefinition
	Methods         []*MethodDefinition
	PrimaryCtorArgs []DataMemberDefinition
	SuperClass      *ClassDefinition // nil for Object and interfaces with no parent
	NestedClasses   map[Identifier]*ClassDefinition
	// EnumVariants holds one entry per constructor when Kind is
	// ClassKindEnumeration, in declaration order.
	EnumVariants []*ClassDefinition
	// VariantOf points back at the owning enumeration when Kind is
	// ClassKindEnumerationVariant.
	VariantOf *ClassDefinition
}

func (c *ClassDefinition) GetPrimaryCtorArgDataMembers() []DataMemberDefinition { return c.PrimaryCtorArgs }
func (c *ClassDefinition) IsEnumeration() bool                                 { return c.Kind == ClassKindEnumeration }
func (c *ClassDefinition) IsEnumerationVariant() bool                          { return c.Kind == ClassKindEnumerationVariant }
func (c *ClassDefinition) IsInterface() bool                                   { return c.Kind == ClassKindInterface }
func (c *ClassDefinition) IsMessage() bool                                     { return c.IsMessageFlag }
func (c *ClassDefinition) IsPrimitive() bool                                   { return c.IsPrimitiveFlag }
func (c *ClassDefinition) GetMembers() []DataMemberDefinition                  { return c.Members }

func (c *ClassDefinition) GetNestedClass(name Identifier) (*ClassDefinition, bool) {
	if c.NestedClasses == nil {
		return nil, false
	}
	cls, ok := c.NestedClasses[name]
	return cls, ok
}

// IsSubclassOf walks the superclass chain; a class is not its own
// subclass.
func (c *ClassDefinition) IsSubclassOf(other *ClassDefinition) bool {
	for p := c.SuperClass; p != nil; p = p.SuperClass {
		if p == other {
			return true
		}
	}
	return false
}

// FindMember returns the data member named name, if any.
func (c *ClassDefinition) FindMember(name Identifier) (DataMemberDefinition, bool) {
	for _, m := range c.Members {
		if m.Name == name {
			return m, true
		}
	}
	return DataMemberDefinition{}, false
}

// FindVariant returns the enum variant constructor named name when c
// is an enumeration.
func (c *ClassDefinition) FindVariant(name Identifier) (*ClassDefinition, bool) {
	for _, v := range c.EnumVariants {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}
