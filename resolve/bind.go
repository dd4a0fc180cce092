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

package resolve

import (
	"github.com/bufbuild/treecmp/ast"
)

// resolve rebuilds t with denotations attached. Every case returns a new
// node; the input tree is shared, never written.
func (b *binding) resolve(t *ast.Tree) (*ast.Tree, error) {
	if t == nil {
		return nil, nil
	}

	switch t.Kind() {
	case ast.KindTermName, ast.KindTypeName, ast.KindCtorName:
		// A plain name in use position.
		return t.WithDenotation(b.lookup(nameText(t))), nil

	case ast.KindTermSelect, ast.KindTypeSelect, ast.KindCtorSelect,
		ast.KindTypeProject, ast.KindCtorProject:
		return b.resolveSelect(t)

	case ast.KindTypeSingleton:
		// The singleton type of a term denotes whatever the term denotes.
		ref, err := b.resolve(t.At(0).AsNode())
		if err != nil {
			return nil, err
		}
		return ast.New(t.Kind(), ast.Node(ref)).WithDenotation(ref.Denotation()), nil

	case ast.KindTermThis, ast.KindTermSuper:
		return t.WithDenotation(b.owner(nameText(t))), nil

	case ast.KindModPrivate, ast.KindModProtected:
		within, err := b.resolve(t.At(0).AsNode())
		if err != nil {
			return nil, err
		}
		var d ast.Denotation
		if within != nil {
			d = within.Denotation()
		}
		return ast.New(t.Kind(), ast.Optional(within)).WithDenotation(d), nil

	case ast.KindDefVal:
		return b.resolveDefVal(t)
	case ast.KindDefDef:
		return b.resolveDefDef(t)
	case ast.KindDefClass, ast.KindDefObject:
		return b.resolveDefTemplate(t)
	case ast.KindParam:
		return b.resolveParam(t)

	case ast.KindPkg:
		return b.resolvePkg(t)
	case ast.KindTemplate:
		return b.resolveTemplate(t)
	case ast.KindTermBlock:
		return b.resolveBlock(t)
	case ast.KindTermFunc:
		return b.resolveFunc(t)

	default:
		return b.resolveFields(t)
	}
}

// resolveSelect handles the qualifier-plus-name ref shapes. The select node
// and its name child both receive the member denotation.
func (b *binding) resolveSelect(t *ast.Tree) (*ast.Tree, error) {
	qual, err := b.resolve(t.At(0).AsNode())
	if err != nil {
		return nil, err
	}
	name := t.At(1).AsNode()
	d := b.member(qual.Denotation(), nameText(name))
	return ast.New(t.Kind(),
		ast.Node(qual),
		ast.Node(name.WithDenotation(d)),
	).WithDenotation(d), nil
}

// member mints the denotation for a member named name of the definition
// denoted by qual. An unresolved qualifier makes every member unresolved.
func (b *binding) member(qual ast.Denotation, name string) ast.Denotation {
	if qual.IsZero() || name == "" {
		return ast.Denotation{}
	}
	return ast.Denote(b.table.Intern(b.table.Value(qual.Sym()) + "." + name))
}

func (b *binding) resolveDefVal(t *ast.Tree) (*ast.Tree, error) {
	name, d, err := b.defName(t)
	if err != nil {
		return nil, err
	}
	typ, err := b.resolve(t.At(1).AsNode())
	if err != nil {
		return nil, err
	}
	rhs, err := b.resolve(t.At(2).AsNode())
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindDefVal,
		ast.Node(name.WithDenotation(d)),
		ast.Optional(typ),
		ast.Node(rhs),
	), nil
}

func (b *binding) resolveDefDef(t *ast.Tree) (*ast.Tree, error) {
	name, d, err := b.defName(t)
	if err != nil {
		return nil, err
	}

	b.push(b.table.Value(d.Sym()))
	defer b.pop()

	params, err := b.resolveParams(t.At(1).AsSeq())
	if err != nil {
		return nil, err
	}
	typ, err := b.resolve(t.At(2).AsNode())
	if err != nil {
		return nil, err
	}
	body, err := b.resolve(t.At(3).AsNode())
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindDefDef,
		ast.Node(name.WithDenotation(d)),
		ast.Seq(params...),
		ast.Optional(typ),
		ast.Node(body),
	), nil
}

// resolveDefTemplate handles Def.Class and Def.Object: the definition opens
// a member scope and becomes the owner that this/super resolve to.
func (b *binding) resolveDefTemplate(t *ast.Tree) (*ast.Tree, error) {
	name, d, err := b.defName(t)
	if err != nil {
		return nil, err
	}

	b.push(b.table.Value(d.Sym()))
	b.owners = append(b.owners, d)
	defer func() {
		b.owners = b.owners[:len(b.owners)-1]
		b.pop()
	}()

	fields := []ast.Field{ast.Node(name.WithDenotation(d))}
	if t.Kind() == ast.KindDefClass {
		params, err := b.resolveParams(t.At(1).AsSeq())
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.Seq(params...))
	}
	tmpl, err := b.resolve(t.At(t.NumFields() - 1).AsNode())
	if err != nil {
		return nil, err
	}
	fields = append(fields, ast.Node(tmpl))
	return ast.New(t.Kind(), fields...), nil
}

func (b *binding) resolveParam(t *ast.Tree) (*ast.Tree, error) {
	name, d, err := b.defName(t)
	if err != nil {
		return nil, err
	}
	typ, err := b.resolve(t.At(1).AsNode())
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindParam,
		ast.Node(name.WithDenotation(d)),
		ast.Optional(typ),
	), nil
}

func (b *binding) resolvePkg(t *ast.Tree) (*ast.Tree, error) {
	name, d, err := b.defName(t)
	if err != nil {
		return nil, err
	}

	b.push(b.table.Value(d.Sym()))
	defer b.pop()

	stats, err := b.resolveStats(t.At(1).AsSeq())
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindPkg,
		ast.Node(name.WithDenotation(d)),
		ast.Seq(stats...),
	), nil
}

// resolveTemplate resolves a class body in the scope its definition pushed.
// Members are declared up front so they may refer to each other regardless
// of order.
func (b *binding) resolveTemplate(t *ast.Tree) (*ast.Tree, error) {
	inits := t.At(0).AsSeq()
	self := t.At(1).AsNode()
	stats := t.At(2).AsSeq()

	rinits := make([]*ast.Tree, len(inits))
	for i, init := range inits {
		r, err := b.resolve(init)
		if err != nil {
			return nil, err
		}
		rinits[i] = r
	}
	rself, err := b.resolve(self)
	if err != nil {
		return nil, err
	}
	rstats, err := b.resolveStats(stats)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindTemplate,
		ast.Seq(rinits...),
		ast.Optional(rself),
		ast.Seq(rstats...),
	), nil
}

func (b *binding) resolveBlock(t *ast.Tree) (*ast.Tree, error) {
	b.pushAnon()
	defer b.pop()

	stats, err := b.resolveStats(t.At(0).AsSeq())
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindTermBlock, ast.Seq(stats...)), nil
}

func (b *binding) resolveFunc(t *ast.Tree) (*ast.Tree, error) {
	b.pushAnon()
	defer b.pop()

	params, err := b.resolveParams(t.At(0).AsSeq())
	if err != nil {
		return nil, err
	}
	body, err := b.resolve(t.At(1).AsNode())
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindTermFunc, ast.Seq(params...), ast.Node(body)), nil
}

// resolveStats declares the definitions among stats into the current scope,
// then resolves every stat.
func (b *binding) resolveStats(stats []*ast.Tree) ([]*ast.Tree, error) {
	for _, stat := range stats {
		switch stat.Kind() {
		case ast.KindDefVal, ast.KindDefDef, ast.KindDefClass, ast.KindDefObject:
			if _, err := b.declare(nameText(stat.At(0).AsNode())); err != nil {
				return nil, err
			}
		}
	}

	out := make([]*ast.Tree, len(stats))
	for i, stat := range stats {
		r, err := b.resolve(stat)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func (b *binding) resolveParams(params []*ast.Tree) ([]*ast.Tree, error) {
	for _, p := range params {
		if _, err := b.declare(nameText(p.At(0).AsNode())); err != nil {
			return nil, err
		}
	}

	out := make([]*ast.Tree, len(params))
	for i, p := range params {
		r, err := b.resolve(p)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// defName fetches (or, for definitions outside any declaring statement
// list, mints) the denotation for a definition's name child.
func (b *binding) defName(t *ast.Tree) (*ast.Tree, ast.Denotation, error) {
	name := t.At(0).AsNode()
	text := nameText(name)
	if d, ok := b.top().syms.Get(text); ok {
		return name, d, nil
	}
	d, err := b.declare(text)
	if err != nil {
		return nil, ast.Denotation{}, err
	}
	return name, d, nil
}

// resolveFields is the generic case: rebuild every field, resolving child
// nodes, and keep whatever denotation the node already had.
func (b *binding) resolveFields(t *ast.Tree) (*ast.Tree, error) {
	fields := make([]ast.Field, 0, t.NumFields())
	for f := range t.Fields() {
		switch f.Kind() {
		case ast.FieldKindNode:
			r, err := b.resolve(f.AsNode())
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.Node(r))
		case ast.FieldKindOptional:
			r, err := b.resolve(f.AsNode())
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.Optional(r))
		case ast.FieldKindSeq:
			children := f.AsSeq()
			out := make([]*ast.Tree, len(children))
			for i, child := range children {
				r, err := b.resolve(child)
				if err != nil {
					return nil, err
				}
				out[i] = r
			}
			fields = append(fields, ast.Seq(out...))
		default:
			fields = append(fields, f)
		}
	}
	return ast.New(t.Kind(), fields...).WithDenotation(t.Denotation()), nil
}

// nameText extracts the text of a name-like node, whose first field is a
// string leaf. Returns "" for anything else.
func nameText(t *ast.Tree) string {
	if t == nil || t.NumFields() == 0 {
		return ""
	}
	f := t.At(0)
	if f.Kind() != ast.FieldKindValue || f.AsValue().Kind() != ast.ValueKindString {
		return ""
	}
	return f.AsValue().AsString()
}
