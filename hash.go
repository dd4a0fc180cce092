package treecmp

import (
	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/internal/hashx"
)

const (
	// fieldFold is the fold constant for the ordered-field combinator,
	// acc = acc*fieldFold + hash(field).
	fieldFold = 37
	// absentHash stands in for an absent optional field.
	absentHash = 41
)

// Hash returns a hash of a resolved tree, consistent with [Equal]: trees
// that compare equal hash equal. The converse does not hold.
//
// Denotation-compared nodes (NameRef, OpaqueRef) hash their denotation and
// their ref family only, ignoring their fields, just as [Equal] ignores
// their fields. Everything else hashes structurally. A nil tree hashes to 0.
//
// Hashes are stable within a process only; see package hashx's caveats.
func Hash(t *ast.Tree) uint64 {
	if t == nil {
		return 0
	}

	switch Classify(t.Kind()) {
	case NameRef, OpaqueRef:
		return hashx.Mix(t.Denotation().Hash(), flavor(t.Kind()))
	default:
		var fields uint64
		for f := range t.Fields() {
			fields = fields*fieldFold + fieldHash(f)
		}
		return hashx.Mix(hashx.Int(t.Kind()), fields)
	}
}

func fieldHash(f ast.Field) uint64 {
	switch f.Kind() {
	case ast.FieldKindNode:
		return Hash(f.AsNode())
	case ast.FieldKindOptional:
		if f.AsNode() == nil {
			return absentHash
		}
		return Hash(f.AsNode())
	case ast.FieldKindSeq:
		var h uint64
		for _, t := range f.AsSeq() {
			h = h*fieldFold + Hash(t)
		}
		return h
	case ast.FieldKindValue:
		return f.AsValue().Hash()
	default:
		return 0
	}
}
