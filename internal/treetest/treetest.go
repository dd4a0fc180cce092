// Package treetest provides helpers for building and inspecting trees in
// tests: shorthand constructors that follow the field conventions the
// resolver expects, a deterministic random tree generator, and diffing
// helpers for failure output.
package treetest

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/intern"
	"github.com/bufbuild/treecmp/walk"
)

// Name builds a Term.Name node.
func Name(text string) *ast.Tree {
	return ast.New(ast.KindTermName, ast.Leaf(ast.StringValue(text)))
}

// TypeName builds a Type.Name node.
func TypeName(text string) *ast.Tree {
	return ast.New(ast.KindTypeName, ast.Leaf(ast.StringValue(text)))
}

// CtorName builds a Ctor.Name node.
func CtorName(text string) *ast.Tree {
	return ast.New(ast.KindCtorName, ast.Leaf(ast.StringValue(text)))
}

// Select builds a Term.Select of a member of qual.
func Select(qual *ast.Tree, member string) *ast.Tree {
	return ast.New(ast.KindTermSelect, ast.Node(qual), ast.Node(Name(member)))
}

// This builds a Term.This with the given qualifier text ("" for unqualified).
func This(qual string) *ast.Tree {
	return ast.New(ast.KindTermThis, ast.Leaf(ast.StringValue(qual)))
}

// LitInt builds an integer literal.
func LitInt(n int64) *ast.Tree {
	return ast.New(ast.KindLit, ast.Leaf(ast.IntValue(n)))
}

// LitString builds a string literal.
func LitString(s string) *ast.Tree {
	return ast.New(ast.KindLit, ast.Leaf(ast.StringValue(s)))
}

// Val builds an untyped Def.Val.
func Val(name string, rhs *ast.Tree) *ast.Tree {
	return ast.New(ast.KindDefVal,
		ast.Node(Name(name)),
		ast.Optional(nil),
		ast.Node(rhs),
	)
}

// Def builds a Def.Def with untyped parameters and no declared result type.
func Def(name string, params []string, body *ast.Tree) *ast.Tree {
	ps := make([]*ast.Tree, len(params))
	for i, p := range params {
		ps[i] = Param(p)
	}
	return ast.New(ast.KindDefDef,
		ast.Node(Name(name)),
		ast.Seq(ps...),
		ast.Optional(nil),
		ast.Node(body),
	)
}

// Param builds an untyped Param.
func Param(name string) *ast.Tree {
	return ast.New(ast.KindParam, ast.Node(Name(name)), ast.Optional(nil))
}

// Class builds a parameterless Def.Class whose template holds stats.
func Class(name string, stats ...*ast.Tree) *ast.Tree {
	return ast.New(ast.KindDefClass,
		ast.Node(TypeName(name)),
		ast.Seq(),
		ast.Node(Template(stats...)),
	)
}

// Object builds a Def.Object whose template holds stats.
func Object(name string, stats ...*ast.Tree) *ast.Tree {
	return ast.New(ast.KindDefObject,
		ast.Node(Name(name)),
		ast.Node(Template(stats...)),
	)
}

// Template builds a Template with no inits and no self.
func Template(stats ...*ast.Tree) *ast.Tree {
	return ast.New(ast.KindTemplate,
		ast.Seq(),
		ast.Optional(nil),
		ast.Seq(stats...),
	)
}

// Block builds a Term.Block.
func Block(stats ...*ast.Tree) *ast.Tree {
	return ast.New(ast.KindTermBlock, ast.Seq(stats...))
}

// Pkg builds a Pkg.
func Pkg(name string, stats ...*ast.Tree) *ast.Tree {
	return ast.New(ast.KindPkg, ast.Node(Name(name)), ast.Seq(stats...))
}

// Apply builds a Term.Apply.
func Apply(fn *ast.Tree, args ...*ast.Tree) *ast.Tree {
	return ast.New(ast.KindTermApply, ast.Node(fn), ast.Seq(args...))
}

// Denoted attaches the denotation for path, interned in table, to t.
func Denoted(t *ast.Tree, table *intern.Table, path string) *ast.Tree {
	return t.WithDenotation(ast.Denote(table.Intern(path)))
}

// Denotations renders the denotation of every resolved node in t, in
// pre-order, as "Kind -> path" lines. Handy for comparing with cmp.Diff.
func Denotations(table *intern.Table, t *ast.Tree) []string {
	var out []string
	_ = walk.Trees(t, func(t *ast.Tree) error {
		if d := t.Denotation(); !d.IsZero() {
			out = append(out, fmt.Sprintf("%v -> %s", t.Kind(), table.Value(d.Sym())))
		}
		return nil
	})
	return out
}

// Diff returns a unified diff between two renderings, for failure messages.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return strings.TrimSuffix(diff, "\n")
}
