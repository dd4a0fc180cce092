// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const (
	FieldKindNode FieldKind = iota + 1
	FieldKindOptional
	FieldKindSeq
	FieldKindValue
)

// FieldKind is the kind of value stored in a [Field]. There is one value of
// FieldKind for each arm of the field union; the zero value is invalid.
type FieldKind int8

// String implements [fmt.Stringer].
func (k FieldKind) String() string {
	switch k {
	case FieldKindNode:
		return "node"
	case FieldKindOptional:
		return "optional"
	case FieldKindSeq:
		return "seq"
	case FieldKindValue:
		return "value"
	default:
		return fmt.Sprintf("ast.FieldKind(%d)", int(k))
	}
}

// Tree is a single node of an immutable syntax tree: a [Kind] plus an
// ordered list of fields.
//
// Trees are never modified after construction. A resolution pass that wants
// to attach information to a node does so by rebuilding it, see
// [Tree.WithDenotation]. Because of this, trees may be freely shared between
// goroutines without synchronization.
type Tree struct {
	kind   Kind
	denot  Denotation
	fields []Field
}

// New constructs a new tree node of the given kind.
//
// The fields slice is copied, so the caller may reuse its backing array.
func New(kind Kind, fields ...Field) *Tree {
	return &Tree{kind: kind, fields: slices.Clone(fields)}
}

// Kind returns the kind of node this is. This is suitable for use in a
// switch statement.
func (t *Tree) Kind() Kind {
	return t.kind
}

// NumFields returns the number of fields on this node.
func (t *Tree) NumFields() int {
	return len(t.fields)
}

// At returns the nth field of this node.
//
// Panics if n is out of range.
func (t *Tree) At(n int) Field {
	return t.fields[n]
}

// Fields returns an iterator over this node's fields, in declaration order.
func (t *Tree) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, f := range t.fields {
			if !yield(f) {
				return
			}
		}
	}
}

// Denotation returns the denotation attached to this node, if any.
//
// Nodes that have not been through a resolution pass, and resolved nodes
// that did not resolve to anything, carry the zero [Denotation].
func (t *Tree) Denotation() Denotation {
	return t.denot
}

// WithDenotation returns a copy of this node with the given denotation
// attached. The receiver is not modified.
func (t *Tree) WithDenotation(d Denotation) *Tree {
	clone := *t
	clone.denot = d
	return &clone
}

// String implements [fmt.Stringer].
//
// The rendering is a single-line s-expression intended for debugging and
// test failure output, e.g. Term.Select(Term.Name("a"), Term.Name("b")).
func (t *Tree) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

func (t *Tree) render(sb *strings.Builder) {
	if t == nil {
		sb.WriteString("<nil>")
		return
	}

	sb.WriteString(t.kind.String())
	sb.WriteByte('(')
	for i, f := range t.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		f.render(sb)
	}
	sb.WriteByte(')')

	if !t.denot.IsZero() {
		fmt.Fprintf(sb, "#%d", int(t.denot.sym))
	}
}

// Field is one field of a [Tree] node: a child node, an optional child node,
// an ordered sequence of child nodes, or a leaf [Value].
//
// Field is a closed union; the zero value is invalid. Which accessors are
// meaningful is determined by [Field.Kind].
type Field struct {
	kind FieldKind
	node *Tree
	seq  []*Tree
	val  Value
}

// Node wraps a child node as a [Field]. The child must not be nil.
func Node(t *Tree) Field {
	return Field{kind: FieldKindNode, node: t}
}

// Optional wraps an optional child node as a [Field]. A nil child means the
// field is absent.
func Optional(t *Tree) Field {
	return Field{kind: FieldKindOptional, node: t}
}

// Seq wraps an ordered sequence of child nodes as a [Field].
//
// The slice is copied, so the caller may reuse its backing array.
func Seq(ts ...*Tree) Field {
	return Field{kind: FieldKindSeq, seq: slices.Clone(ts)}
}

// Leaf wraps an opaque leaf value as a [Field].
func Leaf(v Value) Field {
	return Field{kind: FieldKindValue, val: v}
}

// Kind returns which arm of the union this field is.
func (f Field) Kind() FieldKind {
	return f.kind
}

// AsNode returns the child node of a [FieldKindNode] or [FieldKindOptional]
// field. For an absent optional field it returns nil.
//
// Returns nil for the other field kinds.
func (f Field) AsNode() *Tree {
	return f.node
}

// AsSeq returns the child nodes of a [FieldKindSeq] field.
//
// The returned slice aliases the field's storage and must not be modified.
// Returns nil for the other field kinds.
func (f Field) AsSeq() []*Tree {
	return f.seq
}

// AsValue returns the leaf value of a [FieldKindValue] field.
//
// Returns the zero [Value] for the other field kinds.
func (f Field) AsValue() Value {
	return f.val
}

// String implements [fmt.Stringer].
func (f Field) String() string {
	var sb strings.Builder
	f.render(&sb)
	return sb.String()
}

func (f Field) render(sb *strings.Builder) {
	switch f.kind {
	case FieldKindNode:
		f.node.render(sb)
	case FieldKindOptional:
		if f.node == nil {
			sb.WriteString("<absent>")
		} else {
			f.node.render(sb)
		}
	case FieldKindSeq:
		sb.WriteByte('[')
		for i, t := range f.seq {
			if i > 0 {
				sb.WriteString(", ")
			}
			t.render(sb)
		}
		sb.WriteByte(']')
	case FieldKindValue:
		sb.WriteString(f.val.String())
	default:
		sb.WriteString("<invalid>")
	}
}
