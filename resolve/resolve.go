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

// Package resolve provides the standard [treecmp.Resolver]: a lexical-scope
// binder that attaches denotations to a tree's ref nodes.
//
// The binder interprets trees using the field conventions documented on
// [Binder]. It mints denotations out of fully-qualified definition paths
// ("pkg.Outer.inner"), interned in a shared [intern.Table], so that two
// refs to the same definition receive equal denotations no matter how they
// were written down.
package resolve

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tidwall/btree"

	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/intern"
)

// ErrRedeclared is returned (wrapped) by [Binder.Resolve] when a scope
// declares the same name twice.
var ErrRedeclared = errors.New("name redeclared in scope")

// Binder is a lexical-scope resolver. It implements [treecmp.Resolver].
//
// The binder expects the field conventions this module's builders follow:
// definition kinds (Def.Val, Def.Def, Def.Class, Def.Object, Param, Pkg)
// carry their name as their first field, a name node whose own first field
// is the name text; select-like refs carry a qualifier node followed by a
// name node; Term.This and Term.Super carry a qualifier text leaf.
//
// Scoping nodes (Pkg, Template, Term.Block, Term.Func, Def.Def) introduce a
// scope. Definitions in a scope are declared before any of the scope's
// statements are resolved, so members may refer to each other regardless of
// order. Declaring the same name twice in one scope is an error.
//
// A Binder is safe for concurrent use: the interning table synchronizes
// itself, and all other state is per-call.
type Binder struct {
	// The table denotations are minted from. If nil, a table private to this
	// binder is created on first use; sharing one table across binders makes
	// their denotations comparable with each other.
	Table *intern.Table

	once sync.Once
}

// table returns the interning table, creating a private one on first use.
func (b *Binder) table() *intern.Table {
	b.once.Do(func() {
		if b.Table == nil {
			b.Table = new(intern.Table)
		}
	})
	return b.Table
}

// Resolve returns a copy of t with denotations attached to every ref node
// that names something in scope. Refs to nothing in scope keep the zero
// denotation. The input is never modified.
//
// Resolve fails with an error wrapping [ErrRedeclared] if any scope in t
// declares the same name twice.
func (b *Binder) Resolve(t *ast.Tree) (*ast.Tree, error) {
	if t == nil {
		return nil, nil
	}

	bind := &binding{table: b.table()}
	bind.push("")
	defer bind.pop()

	// The root node may itself be a scope's worth of statements (a Pkg or a
	// Block); resolve handles that per-kind.
	return bind.resolve(t)
}

// binding is the per-call state of a resolution pass.
type binding struct {
	table *intern.Table

	// Innermost scope last. Each frame maps simple names to denotations and
	// remembers the definition path prefix for names declared in it.
	scopes []*scope

	// Denotations of the enclosing class/object definitions, innermost last.
	// This is what this/super resolve against.
	owners []ast.Denotation

	// Disambiguates anonymous scopes (blocks, function literals) so that
	// same-named locals in sibling scopes get distinct paths.
	anon int
}

type scope struct {
	syms btree.Map[string, ast.Denotation]
	path string
}

func (b *binding) push(path string) {
	b.scopes = append(b.scopes, &scope{path: path})
}

func (b *binding) pop() {
	b.scopes = b.scopes[:len(b.scopes)-1]
}

func (b *binding) top() *scope {
	return b.scopes[len(b.scopes)-1]
}

// pushAnon pushes a scope whose declarations cannot be named from outside.
func (b *binding) pushAnon() {
	b.anon++
	b.push(fmt.Sprintf("%s<%d>", b.top().path, b.anon))
}

// declare binds name in the innermost scope and returns its denotation.
func (b *binding) declare(name string) (ast.Denotation, error) {
	top := b.top()
	if _, ok := top.syms.Get(name); ok {
		return ast.Denotation{}, fmt.Errorf("%w: %q", ErrRedeclared, b.qualify(top.path, name))
	}

	d := ast.Denote(b.table.Intern(b.qualify(top.path, name)))
	top.syms.Set(name, d)
	return d, nil
}

func (b *binding) qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// lookup finds name in the innermost scope that declares it.
func (b *binding) lookup(name string) ast.Denotation {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		if d, ok := b.scopes[i].syms.Get(name); ok {
			return d
		}
	}
	return ast.Denotation{}
}

// owner returns the enclosing definition this/super resolve to. A non-empty
// qualifier restricts the search to the enclosing definition with that
// simple name, as in outer-class references.
func (b *binding) owner(qual string) ast.Denotation {
	for i := len(b.owners) - 1; i >= 0; i-- {
		d := b.owners[i]
		if qual == "" {
			return d
		}
		path := b.table.Value(d.Sym())
		if path[strings.LastIndexByte(path, '.')+1:] == qual {
			return d
		}
	}
	return ast.Denotation{}
}
