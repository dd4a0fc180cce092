package treecmp

import (
	"fmt"

	"github.com/bufbuild/treecmp/ast"
)

const (
	// NonRef nodes never carry a denotation and are always compared
	// field-by-field, recursively.
	NonRef RefKind = iota
	// NameRef nodes are name-like: plain names, member selects, type
	// projections and singletons, constructor references. They are compared
	// by denotation, so two of them are equal exactly when both resolved and
	// resolved to the same definition.
	NameRef
	// OpaqueRef nodes are self-referential (this/super) or privacy
	// qualifiers. Like NameRef they are compared by denotation, but they are
	// only ever meaningfully compared to nodes of the same kind.
	OpaqueRef
	// StructuralRef nodes are ref-shaped but their identity is their written
	// form: import selectors and constructor-reference applications. They
	// are compared field-by-field even if a resolver attached a denotation.
	StructuralRef
)

// RefKind is the comparison category of a node kind: it decides whether the
// engines compare nodes of that kind structurally or by denotation.
type RefKind int8

// String implements [fmt.Stringer].
func (k RefKind) String() string {
	switch k {
	case NonRef:
		return "NonRef"
	case NameRef:
		return "NameRef"
	case OpaqueRef:
		return "OpaqueRef"
	case StructuralRef:
		return "StructuralRef"
	default:
		return fmt.Sprintf("treecmp.RefKind(%d)", int(k))
	}
}

// refKinds is the classification table. It is fixed domain knowledge derived
// from the node catalogue, and it must list every kind explicitly, including
// the NonRef ones: TestClassifyTotal checks it against [ast.Kinds] so that
// growing the catalogue without deciding a category is caught.
var refKinds = map[ast.Kind]RefKind{
	ast.KindLit:        NonRef,
	ast.KindTermApply:  NonRef,
	ast.KindTermAssign: NonRef,
	ast.KindTermBlock:  NonRef,
	ast.KindTermFunc:   NonRef,
	ast.KindTypeApply:  NonRef,
	ast.KindDefVal:     NonRef,
	ast.KindDefDef:     NonRef,
	ast.KindDefClass:   NonRef,
	ast.KindDefObject:  NonRef,
	ast.KindParam:      NonRef,
	ast.KindTemplate:   NonRef,
	ast.KindInit:       NonRef,
	ast.KindSelf:       NonRef,
	ast.KindPkg:        NonRef,
	ast.KindImport:     NonRef,
	ast.KindImporter:   NonRef,

	ast.KindTermName:      NameRef,
	ast.KindTermSelect:    NameRef,
	ast.KindTypeName:      NameRef,
	ast.KindTypeSelect:    NameRef,
	ast.KindTypeProject:   NameRef,
	ast.KindTypeSingleton: NameRef,
	ast.KindCtorName:      NameRef,
	ast.KindCtorSelect:    NameRef,
	ast.KindCtorProject:   NameRef,

	ast.KindTermThis:     OpaqueRef,
	ast.KindTermSuper:    OpaqueRef,
	ast.KindModPrivate:   OpaqueRef,
	ast.KindModProtected: OpaqueRef,

	ast.KindImporteeWildcard: StructuralRef,
	ast.KindImporteeRename:   StructuralRef,
	ast.KindImporteeUnimport: StructuralRef,
	ast.KindCtorApply:        StructuralRef,
}

// Classify returns the comparison category for a node kind.
//
// Classify is total over valid kinds; kinds missing from the table (which
// only happens if the catalogue grew without this table being updated, a
// state the tests reject) fall back to NonRef.
func Classify(kind ast.Kind) RefKind {
	return refKinds[kind]
}

// flavor is the kind discriminant mixed into denotation-based hashes. It
// distinguishes the ref families (term, type, ctor) without distinguishing
// kinds within a family; [Hash] must not be finer-grained than [Equal], and
// equality of denotation-compared nodes already requires matching kinds, so
// the family is all the hash needs.
func flavor(kind ast.Kind) uint64 {
	switch kind {
	case ast.KindTermName, ast.KindTermSelect, ast.KindTermThis, ast.KindTermSuper:
		return 1
	case ast.KindTypeName, ast.KindTypeSelect, ast.KindTypeProject, ast.KindTypeSingleton:
		return 2
	case ast.KindCtorName, ast.KindCtorSelect, ast.KindCtorProject:
		return 3
	default:
		return 0
	}
}
