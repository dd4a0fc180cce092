package treecmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/treecmp"
	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/internal/treetest"
)

// TestBranchesTotal is the drift check for the comparability tables.
func TestBranchesTotal(t *testing.T) {
	t.Parallel()

	for kind := range ast.Kinds() {
		assert.NotEmpty(t, treecmp.Branches(kind), "kind %v has no branches", kind)
	}
	for kind := range treecmp.KindBranchTable {
		assert.True(t, kind.IsValid(), "stale branch entry %d", int(kind))
	}

	// Every branch except the root reaches the root through its parents;
	// otherwise the ancestor walk would wander off the hierarchy.
	for branch, parents := range treecmp.BranchParentList {
		assert.NotEqual(t, treecmp.BranchTree, branch)
		assert.NotEmpty(t, parents, "branch %v has no parents", branch)
	}
}

func TestCanCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b ast.Kind
		want bool
	}{
		// Shared specific branch.
		{ast.KindTermName, ast.KindTermSelect, true},
		{ast.KindTermName, ast.KindTypeName, true}, // both Name
		{ast.KindTermName, ast.KindLit, true},      // both Term
		{ast.KindTermThis, ast.KindTermName, true},
		{ast.KindTypeSelect, ast.KindTypeApply, true},
		{ast.KindDefVal, ast.KindDefClass, true},
		{ast.KindImporteeWildcard, ast.KindImporteeRename, true},
		{ast.KindLit, ast.KindLit, true},

		// Same too-general branch still counts as the same branch.
		{ast.KindPkg, ast.KindPkg, true},
		{ast.KindPkg, ast.KindTemplate, true}, // both exactly Scope

		// Nothing in common below Tree/Stat/Scope.
		{ast.KindTermName, ast.KindDefVal, false},
		{ast.KindModPrivate, ast.KindImporteeWildcard, false},
		{ast.KindLit, ast.KindModPrivate, false},
		{ast.KindImport, ast.KindImporter, false}, // share only Stat/Tree
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, treecmp.CanCompare(tt.a, tt.b),
			"CanCompare(%v, %v)", tt.a, tt.b)
		assert.Equal(t, tt.want, treecmp.CanCompare(tt.b, tt.a),
			"CanCompare(%v, %v)", tt.b, tt.a)
	}
}

func TestStrictEqual(t *testing.T) {
	t.Parallel()

	eq, err := treecmp.StrictEqual(nil, nil)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = treecmp.StrictEqual(treetest.LitInt(1), treetest.LitInt(1))
	require.NoError(t, err)
	assert.True(t, eq)

	// A term and a definition are statically unrelated: the comparison is
	// rejected, not answered.
	_, err = treecmp.StrictEqual(
		treetest.Name("x"),
		treetest.Val("x", treetest.LitInt(1)),
	)
	require.ErrorIs(t, err, treecmp.ErrIncomparable)
	assert.ErrorContains(t, err, "Term.Name")
	assert.ErrorContains(t, err, "Def.Val")
}
