// Package binding implements nested symbol scopes: classes, data
// members, overloaded methods, locals, generic parameters, and labels.
package binding

import "semcore/pkg/ast"

// Kind discriminates the tagged Binding variant, closed per §9 rather
// than left open for inheritance.
type Kind int

const (
	Class Kind = iota
	GenericTypeParameter
	DataMember
	Method
	LocalObject
	Label
)

// Binding is the tagged variant from §4.2's C2 data model. Exactly
// the fields matching Kind are meaningful; the rest are zero.
type Binding struct {
	Kind         Kind
	ClassDef     *ast.ClassDefinition
	GenericParam *ast.GenericTypeParameterDefinition
	DataMemberDef *ast.DataMemberDefinition
	// Methods is the overload set, ordered by insertion; non-empty for
	// a freshly inserted Method binding, but §9's open question (ii)
	// means it may legitimately be empty after RemoveLastOverloadedMethod.
	Methods     []*ast.MethodDefinition
	LocalObject *ast.VariableDeclarationStatement
}

func classBinding(def *ast.ClassDefinition) *Binding { return &Binding{Kind: Class, ClassDef: def} }
func genericParamBinding(def *ast.GenericTypeParameterDefinition) *Binding {
	return &Binding{Kind: GenericTypeParameter, GenericParam: def}
}
func dataMemberBinding(def *ast.DataMemberDefinition) *Binding {
	return &Binding{Kind: DataMember, DataMemberDef: def}
}
func methodBinding(def *ast.MethodDefinition) *Binding {
	return &Binding{Kind: Method, Methods: []*ast.MethodDefinition{def}}
}
func localObjectBinding(decl *ast.VariableDeclarationStatement) *Binding {
	return &Binding{Kind: LocalObject, LocalObject: decl}
}
func labelBinding() *Binding { return &Binding{Kind: Label} }

// NameBindings is one lexical scope: an identifier-to-Binding map plus
// an optional enclosing scope. Scopes form a tree following lexical
// nesting; lookup walks toward the root.
type NameBindings struct {
	enclosing *NameBindings
	bindings  map[ast.Identifier]*Binding
}

// New creates a scope nested inside enclosing, or a root scope when
// enclosing is nil.
func New(enclosing *NameBindings) *NameBindings {
	return &NameBindings{enclosing: enclosing, bindings: make(map[ast.Identifier]*Binding)}
}

// Enclosing returns the parent scope, or nil at the root.
func (nb *NameBindings) Enclosing() *NameBindings { return nb.enclosing }

// Lookup walks the current scope then each enclosing scope in order,
// returning the first hit.
func (nb *NameBindings) Lookup(name ast.Identifier) (*Binding, bool) {
	for s := nb; s != nil; s = s.enclosing {
		if b, ok := s.bindings[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// LookupType is like Lookup but only hits on Class or
// GenericTypeParameter bindings; any other kind is skipped in favor of
// continuing to the enclosing scope.
func (nb *NameBindings) LookupType(name ast.Identifier) (*Binding, bool) {
	for s := nb; s != nil; s = s.enclosing {
		if b, ok := s.bindings[name]; ok && (b.Kind == Class || b.Kind == GenericTypeParameter) {
			return b, true
		}
	}
	return nil, false
}

// LookupLocal inspects only the current scope.
func (nb *NameBindings) LookupLocal(name ast.Identifier) (*Binding, bool) {
	b, ok := nb.bindings[name]
	return b, ok
}

func (nb *NameBindings) insert(name ast.Identifier, b *Binding) bool {
	if _, exists := nb.bindings[name]; exists {
		return false
	}
	nb.bindings[name] = b
	return true
}

// InsertLocalObject inserts a LocalObject binding keyed by the
// declaration's identifier.
func (nb *NameBindings) InsertLocalObject(decl *ast.VariableDeclarationStatement) bool {
	return nb.insert(decl.Name, localObjectBinding(decl))
}

// InsertClass inserts a Class binding; fails on collision.
func (nb *NameBindings) InsertClass(def *ast.ClassDefinition) bool {
	return nb.insert(def.Name, classBinding(def))
}

// InsertDataMember inserts a DataMember binding; fails on collision.
func (nb *NameBindings) InsertDataMember(def *ast.DataMemberDefinition) bool {
	return nb.insert(def.Name, dataMemberBinding(def))
}

// InsertGenericTypeParameter inserts a GenericTypeParameter binding;
// fails on collision.
func (nb *NameBindings) InsertGenericTypeParameter(def *ast.GenericTypeParameterDefinition) bool {
	return nb.insert(def.Name, genericParamBinding(def))
}

// RemoveDataMember succeeds only if the existing local binding is a
// DataMember.
func (nb *NameBindings) RemoveDataMember(name ast.Identifier) bool {
	b, ok := nb.bindings[name]
	if !ok || b.Kind != DataMember {
		return false
	}
	delete(nb.bindings, name)
	return true
}

// InsertMethod inserts a fresh overload set of one.
func (nb *NameBindings) InsertMethod(name ast.Identifier, def *ast.MethodDefinition) bool {
	return nb.insert(name, methodBinding(def))
}

// OverloadMethod inserts a fresh Method binding when name is absent;
// appends to the existing overload list when present and a Method
// binding; fails without mutation for any other existing binding kind.
func (nb *NameBindings) OverloadMethod(name ast.Identifier, def *ast.MethodDefinition) bool {
	b, ok := nb.bindings[name]
	if !ok {
		return nb.InsertMethod(name, def)
	}
	if b.Kind != Method {
		return false
	}
	b.Methods = append(b.Methods, def)
	return true
}

// UpdateMethodName moves an existing Method binding from old to new in
// the local scope. Fails if old is absent or not a method, or if new
// is already taken locally.
func (nb *NameBindings) UpdateMethodName(old, new ast.Identifier) bool {
	b, ok := nb.bindings[old]
	if !ok || b.Kind != Method {
		return false
	}
	if _, taken := nb.bindings[new]; taken {
		return false
	}
	delete(nb.bindings, old)
	nb.bindings[new] = b
	return true
}

// RemoveLastOverloadedMethod pops the most recently added overload; the
// binding itself is left in place even when the overload list becomes
// empty, per §9's open question (ii).
func (nb *NameBindings) RemoveLastOverloadedMethod(name ast.Identifier) bool {
	b, ok := nb.bindings[name]
	if !ok || b.Kind != Method || len(b.Methods) == 0 {
		return false
	}
	b.Methods = b.Methods[:len(b.Methods)-1]
	return true
}

// InsertLabel fails if any enclosing scope (including this one)
// already defines name as any binding kind; labels are visible across
// the whole enclosing tree.
func (nb *NameBindings) InsertLabel(name ast.Identifier) bool {
	for s := nb; s != nil; s = s.enclosing {
		if _, exists := s.bindings[name]; exists {
			return false
		}
	}
	nb.bindings[name] = labelBinding()
	return true
}

// CopyFrom deep-copies every binding from other into this scope,
// overwriting any existing entry with the same key.
func (nb *NameBindings) CopyFrom(other *NameBindings) {
	for name, b := range other.bindings {
		nb.bindings[name] = cloneBinding(b)
	}
}

// Use imports only Class, Method, and DataMember bindings from other,
// the "use a namespace" operation. Each imported binding is copied over
// any existing entry with the same key; a Method binding's copy holds
// other's overloads in a fresh slice (it does not alias other's slice).
func (nb *NameBindings) Use(other *NameBindings) {
	for name, b := range other.bindings {
		switch b.Kind {
		case Class, DataMember:
			nb.bindings[name] = cloneBinding(b)
		case Method:
			nb.bindings[name] = cloneBinding(b)
		}
	}
}

func cloneBinding(b *Binding) *Binding {
	clone := *b
	if b.Methods != nil {
		clone.Methods = append([]*ast.MethodDefinition(nil), b.Methods...)
	}
	return &clone
}

// RemoveObsoleteLocalBindings sweeps the current scope, dropping any
// LocalObject binding whose key no longer matches the current
// identifier stored on its referenced declaration (declarations may be
// renamed to become unique; stale keyed bindings are garbage).
func (nb *NameBindings) RemoveObsoleteLocalBindings() {
	for name, b := range nb.bindings {
		if b.Kind == LocalObject && b.LocalObject.Name != name {
			delete(nb.bindings, name)
		}
	}
}
