package treetest

import (
	"fmt"
	"math/rand/v2"

	"github.com/bufbuild/treecmp/ast"
	"github.com/bufbuild/treecmp/intern"
)

// Rand generates a pseudo-random resolved tree of at most the given depth,
// drawing denotations from table. Two generators seeded identically produce
// structurally identical trees with equal denotations, which is how tests
// manufacture equal pairs without sharing nodes.
func Rand(rng *rand.Rand, table *intern.Table, depth int) *ast.Tree {
	g := &gen{rng: rng, table: table}
	return g.tree(depth)
}

type gen struct {
	rng   *rand.Rand
	table *intern.Table
}

func (g *gen) tree(depth int) *ast.Tree {
	if depth <= 0 {
		return g.leaf()
	}

	switch g.rng.IntN(8) {
	case 0:
		return g.leaf()
	case 1:
		return g.ref()
	case 2:
		return ast.New(ast.KindTermApply,
			ast.Node(g.tree(depth-1)),
			ast.Seq(g.trees(depth-1)...),
		)
	case 3:
		return ast.New(ast.KindTermAssign,
			ast.Node(g.tree(depth-1)),
			ast.Node(g.tree(depth-1)),
		)
	case 4:
		return ast.New(ast.KindTermBlock, ast.Seq(g.trees(depth-1)...))
	case 5:
		var opt *ast.Tree
		if g.rng.IntN(2) == 0 {
			opt = g.tree(depth - 1)
		}
		return ast.New(ast.KindDefVal,
			ast.Node(g.name(ast.KindTermName)),
			ast.Optional(opt),
			ast.Node(g.tree(depth-1)),
		)
	case 6:
		return ast.New(ast.KindImporteeRename,
			ast.Node(g.name(ast.KindTermName)),
			ast.Node(g.name(ast.KindTermName)),
		)
	default:
		return ast.New(ast.KindTypeApply,
			ast.Node(g.tree(depth-1)),
			ast.Seq(g.trees(depth-1)...),
		)
	}
}

func (g *gen) trees(depth int) []*ast.Tree {
	out := make([]*ast.Tree, g.rng.IntN(3))
	for i := range out {
		out[i] = g.tree(depth)
	}
	return out
}

func (g *gen) leaf() *ast.Tree {
	switch g.rng.IntN(3) {
	case 0:
		return LitInt(int64(g.rng.IntN(100)))
	case 1:
		return LitString(fmt.Sprintf("s%d", g.rng.IntN(10)))
	default:
		return g.ref()
	}
}

// ref produces a name-like node. Most are resolved; a few keep the zero
// denotation so the unresolved paths get exercised too.
func (g *gen) ref() *ast.Tree {
	kind := ast.KindTermName
	if g.rng.IntN(2) == 0 {
		kind = ast.KindTypeName
	}
	t := g.name(kind)
	if g.rng.IntN(4) == 0 {
		return t
	}
	path := fmt.Sprintf("pkg.sym%d", g.rng.IntN(16))
	return t.WithDenotation(ast.Denote(g.table.Intern(path)))
}

func (g *gen) name(kind ast.Kind) *ast.Tree {
	return ast.New(kind, ast.Leaf(ast.StringValue(fmt.Sprintf("n%d", g.rng.IntN(8)))))
}
