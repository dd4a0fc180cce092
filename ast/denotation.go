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

	"github.com/bufbuild/treecmp/intern"
	"github.com/bufbuild/treecmp/internal/hashx"
)

// Denotation is an opaque token identifying the definition a ref node
// resolves to. Denotations are minted by a resolver, typically out of an
// [intern.Table] of fully-qualified definition paths; consumers treat them
// as black-box comparable, hashable values.
//
// The zero Denotation means "unresolved". It is not equal to anything,
// including another zero Denotation: two unresolved refs never denote the
// same definition, they merely both fail to denote one.
type Denotation struct {
	sym intern.ID
}

// Denote mints a denotation out of an interned definition path.
func Denote(sym intern.ID) Denotation {
	return Denotation{sym: sym}
}

// IsZero returns whether this is the zero (unresolved) denotation.
func (d Denotation) IsZero() bool {
	return d.sym == 0
}

// Sym returns the interned definition path this denotation was minted from.
//
// This is for resolvers that derive new denotations from old ones; equality
// and hashing callers have no business looking inside.
func (d Denotation) Sym() intern.ID {
	return d.sym
}

// Equal reports whether two denotations identify the same definition.
//
// A zero denotation equals nothing, so Equal is not reflexive at zero.
func (d Denotation) Equal(o Denotation) bool {
	return !d.IsZero() && d == o
}

// Hash returns a hash of this denotation, consistent with [Denotation.Equal].
func (d Denotation) Hash() uint64 {
	return hashx.Int(d.sym)
}

// String implements [fmt.Stringer].
func (d Denotation) String() string {
	if d.IsZero() {
		return "ast.Denotation(zero)"
	}
	return fmt.Sprintf("ast.Denotation(%d)", int(d.sym))
}
