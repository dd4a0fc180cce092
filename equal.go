package treecmp

import "github.com/bufbuild/treecmp/ast"

// Equal reports whether two resolved trees are semantically equal:
// structurally equal everywhere except at ref nodes, where denotation
// identity governs.
//
// Both inputs must already have been through a resolution pass; comparing
// unresolved trees silently treats every name as unresolved, and unresolved
// refs are never equal to anything, including themselves. Use [Comparer] to
// fold resolution into the call.
//
// Two nil trees are equal; a nil tree is not equal to any non-nil tree.
//
// Note one deliberate quirk, inherited behavior that interoperating tools
// rely on: two name-like refs of different kinds (say a plain name and a
// member select) compare unequal even when they denote the same definition.
// The denotation rule applies only after the kinds match.
func Equal(a, b *ast.Tree) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	}

	ca, cb := Classify(a.Kind()), Classify(b.Kind())
	if ca != cb {
		return false
	}

	switch ca {
	case NameRef, OpaqueRef:
		return a.Kind() == b.Kind() && a.Denotation().Equal(b.Denotation())
	default:
		// NonRef and StructuralRef are both compared by written form.
		return structuralEqual(a, b)
	}
}

func structuralEqual(a, b *ast.Tree) bool {
	if a.Kind() != b.Kind() || a.NumFields() != b.NumFields() {
		return false
	}
	for i := range a.NumFields() {
		if !fieldEqual(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

func fieldEqual(a, b ast.Field) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case ast.FieldKindNode, ast.FieldKindOptional:
		// Equal already treats absent-vs-absent as equal and
		// absent-vs-present as unequal, which is exactly the optional rule.
		return Equal(a.AsNode(), b.AsNode())
	case ast.FieldKindSeq:
		x, y := a.AsSeq(), b.AsSeq()
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case ast.FieldKindValue:
		return a.AsValue().Equal(b.AsValue())
	default:
		return false
	}
}
