package walk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/internal/treetest"
	"github.com/bufbuild/treecmp/walk"
)

func TestTrees(t *testing.T) {
	t.Parallel()

	tree := treetest.Pkg("p",
		treetest.Val("x", treetest.LitInt(1)),
		treetest.Val("y", treetest.Name("x")),
	)

	var kinds []ast.Kind
	err := walk.Trees(tree, func(t *ast.Tree) error {
		kinds = append(kinds, t.Kind())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []ast.Kind{
		ast.KindPkg,
		ast.KindTermName, // p
		ast.KindDefVal,
		ast.KindTermName, // x
		ast.KindLit,
		ast.KindDefVal,
		ast.KindTermName, // y
		ast.KindTermName, // the ref to x
	}, kinds)
}

func TestTreesNil(t *testing.T) {
	t.Parallel()

	err := walk.Trees(nil, func(*ast.Tree) error {
		t.Fatal("callback reached for nil tree")
		return nil
	})
	assert.NoError(t, err)
}

func TestTreesAbort(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tree := treetest.Block(treetest.LitInt(1), treetest.LitInt(2), treetest.LitInt(3))

	var n int
	err := walk.Trees(tree, func(t *ast.Tree) error {
		n++
		if t.Kind() == ast.KindLit {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, n, "walk must stop at the first error")
}

func TestTreesEnterAndExit(t *testing.T) {
	t.Parallel()

	tree := treetest.Block(treetest.LitInt(1))

	var trace []string
	err := walk.TreesEnterAndExit(tree,
		func(t *ast.Tree) error {
			trace = append(trace, "enter "+t.Kind().String())
			return nil
		},
		func(t *ast.Tree) error {
			trace = append(trace, "exit "+t.Kind().String())
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enter Term.Block",
		"enter Lit",
		"exit Lit",
		"exit Term.Block",
	}, trace)
}
