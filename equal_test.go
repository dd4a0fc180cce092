package treecmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/treecmp"
	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/intern"
	"github.com/bufbuild/treecmp/internal/treetest"
)

func TestEqualNil(t *testing.T) {
	t.Parallel()

	tree := treetest.LitInt(1)
	assert.True(t, treecmp.Equal(nil, nil))
	assert.False(t, treecmp.Equal(nil, tree))
	assert.False(t, treecmp.Equal(tree, nil))
}

func TestEqualRefReflexivity(t *testing.T) {
	t.Parallel()

	var table intern.Table
	resolved := treetest.Denoted(treetest.Name("x"), &table, "pkg.x")
	assert.True(t, treecmp.Equal(resolved, resolved))

	// An unresolved ref does not even equal itself: there is no definition
	// to agree on.
	unresolved := treetest.Name("x")
	assert.False(t, treecmp.Equal(unresolved, unresolved))
}

func TestEqualByDenotation(t *testing.T) {
	t.Parallel()

	var table intern.Table

	// The names are spelled differently but denote the same definition.
	a := treetest.Denoted(treetest.Name("a"), &table, "pkg.D1")
	b := treetest.Denoted(treetest.Name("b"), &table, "pkg.D1")
	assert.True(t, treecmp.Equal(a, b))

	// Same spelling, different definitions: shadowing.
	c := treetest.Denoted(treetest.Name("a"), &table, "pkg.D2")
	assert.False(t, treecmp.Equal(a, c))
}

// TestEqualCrossShape pins down the deliberate quirk: name-like refs of
// different kinds are unequal even when they denote the same definition.
func TestEqualCrossShape(t *testing.T) {
	t.Parallel()

	var table intern.Table
	name := treetest.Denoted(treetest.Name("x"), &table, "pkg.x")
	sel := treetest.Denoted(
		treetest.Select(treetest.Denoted(treetest.Name("pkg"), &table, "pkg"), "x"),
		&table, "pkg.x",
	)
	tname := treetest.Denoted(treetest.TypeName("x"), &table, "pkg.x")

	assert.False(t, treecmp.Equal(name, sel))
	assert.False(t, treecmp.Equal(name, tname))
	assert.True(t, treecmp.Equal(sel, sel))
}

func TestEqualOpaqueRef(t *testing.T) {
	t.Parallel()

	var table intern.Table
	this1 := treetest.Denoted(treetest.This(""), &table, "pkg.O")
	this2 := treetest.Denoted(treetest.This("O"), &table, "pkg.O")
	super := treetest.Denoted(
		ast.New(ast.KindTermSuper, ast.Leaf(ast.StringValue(""))),
		&table, "pkg.O",
	)

	// Same kind, same denotation: the qualifier spelling does not matter.
	assert.True(t, treecmp.Equal(this1, this2))
	// this vs. super never compare equal, whatever they denote.
	assert.False(t, treecmp.Equal(this1, super))
	// Unresolved this does not equal itself.
	assert.False(t, treecmp.Equal(treetest.This(""), treetest.This("")))
}

func TestEqualStructuralRef(t *testing.T) {
	t.Parallel()

	var table intern.Table
	rename := func(from, to string) *ast.Tree {
		return ast.New(ast.KindImporteeRename,
			ast.Node(treetest.Name(from)),
			ast.Node(treetest.Name(to)),
		)
	}

	// Identical written form wins even with different attached denotations.
	a := treetest.Denoted(rename("x", "y"), &table, "pkg.D1")
	b := treetest.Denoted(rename("x", "y"), &table, "pkg.D2")
	assert.False(t, treecmp.Equal(rename("x", "y"), rename("x", "z")))

	// The inner names are unresolved NameRefs, so they make the whole
	// comparison fail; wildcards have no children and compare clean.
	assert.False(t, treecmp.Equal(a, b))
	w1 := treetest.Denoted(ast.New(ast.KindImporteeWildcard), &table, "pkg.D1")
	w2 := treetest.Denoted(ast.New(ast.KindImporteeWildcard), &table, "pkg.D2")
	assert.True(t, treecmp.Equal(w1, w2))
}

func TestEqualStructural(t *testing.T) {
	t.Parallel()

	// Sequence fields: equal only pointwise, in order, at equal length.
	assert.True(t, treecmp.Equal(
		treetest.Block(treetest.LitInt(1), treetest.LitInt(2), treetest.LitInt(3)),
		treetest.Block(treetest.LitInt(1), treetest.LitInt(2), treetest.LitInt(3)),
	))
	assert.False(t, treecmp.Equal(
		treetest.Block(treetest.LitInt(1), treetest.LitInt(2), treetest.LitInt(3)),
		treetest.Block(treetest.LitInt(1), treetest.LitInt(3), treetest.LitInt(2)),
	))
	assert.False(t, treecmp.Equal(
		treetest.Block(treetest.LitInt(1), treetest.LitInt(2), treetest.LitInt(3)),
		treetest.Block(treetest.LitInt(1), treetest.LitInt(2)),
	))

	// Optional fields: present vs. absent is unequal.
	withType := ast.New(ast.KindDefVal,
		ast.Node(treetest.Name("x")),
		ast.Optional(treetest.TypeName("T")),
		ast.Node(treetest.LitInt(1)),
	)
	assert.False(t, treecmp.Equal(withType, treetest.Val("x", treetest.LitInt(1))))
	assert.True(t, treecmp.Equal(
		treetest.Val("x", treetest.LitInt(1)),
		treetest.Val("x", treetest.LitInt(1)),
	))

	// Leaf values.
	assert.False(t, treecmp.Equal(treetest.LitInt(1), treetest.LitInt(2)))
	assert.False(t, treecmp.Equal(treetest.LitInt(1), treetest.LitString("1")))

	// Kind mismatch, including non-ref vs. ref.
	assert.False(t, treecmp.Equal(treetest.LitInt(1), treetest.Name("x")))
	assert.False(t, treecmp.Equal(
		treetest.Block(),
		ast.New(ast.KindTemplate, ast.Seq(), ast.Optional(nil), ast.Seq()),
	))
}

// TestEqualNestedRefs checks that refs buried inside non-ref structure get
// ref-aware treatment.
func TestEqualNestedRefs(t *testing.T) {
	t.Parallel()

	var table intern.Table
	call := func(path string) *ast.Tree {
		return treetest.Apply(
			treetest.Denoted(treetest.Name("f"), &table, path),
			treetest.LitInt(1),
		)
	}
	assert.True(t, treecmp.Equal(call("pkg.f"), call("pkg.f")))
	assert.False(t, treecmp.Equal(call("pkg.f"), call("pkg.g")))
	// Unresolved inner ref poisons the outer structural comparison.
	assert.False(t, treecmp.Equal(
		treetest.Apply(treetest.Name("f")),
		treetest.Apply(treetest.Name("f")),
	))
}
