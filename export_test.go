package treecmp

import "github.com/bufbuild/treecmp/ast"

// Exported for drift tests, which need to see the raw tables rather than
// the lookup functions' fallback behavior.
var (
	RefKindTable     = refKinds
	KindBranchTable  = kindBranches
	BranchParentList = branchParents
)

func Flavor(kind ast.Kind) uint64 { return flavor(kind) }
