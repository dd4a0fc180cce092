package treecmp_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/treecmp"
	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/intern"
	"github.com/bufbuild/treecmp/internal/treetest"
	"github.com/bufbuild/treecmp/resolve"
)

func TestComparer(t *testing.T) {
	t.Parallel()

	c := &treecmp.Comparer{Resolver: &resolve.Binder{}}

	// The packages bind x and y to the same paths, so refs resolve to the
	// same definitions in independently built trees.
	prog := func(ref string) *ast.Tree {
		return treetest.Pkg("p",
			treetest.Val("x", treetest.LitInt(1)),
			treetest.Val("y", treetest.Name(ref)),
		)
	}

	eq, err := c.Equal(prog("x"), prog("x"))
	require.NoError(t, err)
	assert.True(t, eq)

	// An unresolved ref never equals anything, so pointing y at a name
	// that binds nothing breaks equality even against an identical tree.
	eq, err = c.Equal(prog("zzz"), prog("zzz"))
	require.NoError(t, err)
	assert.False(t, eq)

	eq, err = c.Equal(prog("x"), prog("y"))
	require.NoError(t, err)
	assert.False(t, eq)

	// Hash goes through the same resolver and agrees with Equal.
	h1, err := c.Hash(prog("x"))
	require.NoError(t, err)
	h2, err := c.Hash(prog("x"))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	// Nil trees never reach the resolver.
	eq, err = (&treecmp.Comparer{}).Equal(nil, nil)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestComparerStrict(t *testing.T) {
	t.Parallel()

	c := &treecmp.Comparer{Resolver: &resolve.Binder{}, Strict: true}

	_, err := c.Equal(treetest.Name("x"), treetest.Val("x", treetest.LitInt(1)))
	require.ErrorIs(t, err, treecmp.ErrIncomparable)

	eq, err := c.Equal(
		treetest.Block(treetest.LitInt(1)),
		treetest.Block(treetest.LitInt(1)),
	)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestComparerResolverError(t *testing.T) {
	t.Parallel()

	c := &treecmp.Comparer{Resolver: &resolve.Binder{}}

	dup := treetest.Block(
		treetest.Val("x", treetest.LitInt(1)),
		treetest.Val("x", treetest.LitInt(2)),
	)
	_, err := c.Equal(dup, treetest.Block())
	require.ErrorIs(t, err, resolve.ErrRedeclared)

	_, err = c.Hash(dup)
	require.ErrorIs(t, err, resolve.ErrRedeclared)
}

// TestConcurrentUse hammers the engines from several goroutines over shared
// immutable trees. There is nothing to synchronize; the race detector is the
// real assertion here.
func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	var table intern.Table
	a := treetest.Denoted(treetest.Name("a"), &table, "pkg.D1")
	b := treetest.Denoted(treetest.Name("b"), &table, "pkg.D1")
	block := treetest.Block(
		treetest.Apply(a, treetest.LitInt(1)),
		treetest.Apply(b, treetest.LitInt(1)),
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.True(t, treecmp.Equal(a, b))
				assert.Equal(t, treecmp.Hash(a), treecmp.Hash(b))
				assert.True(t, treecmp.Equal(block, block))
			}
		}()
	}
	wg.Wait()
}
