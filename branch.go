package treecmp

import (
	"fmt"

	"github.com/bufbuild/treecmp/ast"
)

const (
	// BranchTree is the universal root; every branch descends from it.
	BranchTree Branch = iota + 1
	// BranchStat and BranchScope are, like the root, too general to make a
	// pair of kinds comparable on their own.
	BranchStat
	BranchScope

	BranchTerm
	BranchType
	BranchPat
	BranchRef
	BranchName
	BranchLit
	BranchMod
	BranchImportee
	BranchMember
	BranchDefn
	BranchCtor

	branchCount
)

// Branch is a node in the static variant hierarchy of the tree catalogue.
// Branches exist only to decide which pairs of kinds are sensible to
// compare at all; the runtime engines never look at them.
type Branch int8

var branchNames = [...]string{
	BranchTree:     "Tree",
	BranchStat:     "Stat",
	BranchScope:    "Scope",
	BranchTerm:     "Term",
	BranchType:     "Type",
	BranchPat:      "Pat",
	BranchRef:      "Ref",
	BranchName:     "Name",
	BranchLit:      "Lit",
	BranchMod:      "Mod",
	BranchImportee: "Importee",
	BranchMember:   "Member",
	BranchDefn:     "Defn",
	BranchCtor:     "Ctor",
}

// String implements [fmt.Stringer].
func (b Branch) String() string {
	if b > 0 && b < branchCount {
		return branchNames[b]
	}
	return fmt.Sprintf("treecmp.Branch(%d)", int(b))
}

// branchParents records each branch's declared parents. BranchTree has none.
var branchParents = map[Branch][]Branch{
	BranchStat:     {BranchTree},
	BranchScope:    {BranchTree},
	BranchTerm:     {BranchStat},
	BranchType:     {BranchTree},
	BranchPat:      {BranchTree},
	BranchRef:      {BranchTree},
	BranchName:     {BranchRef},
	BranchLit:      {BranchTerm, BranchPat},
	BranchMod:      {BranchTree},
	BranchImportee: {BranchTree},
	BranchMember:   {BranchTree},
	BranchDefn:     {BranchStat, BranchScope},
	BranchCtor:     {BranchTree},
}

// kindBranches records the branch set of each kind. A kind may sit on
// several branches via structural refinement (a literal is both a term and
// a pattern). Checked for totality against [ast.Kinds] in tests, like the
// classification table.
var kindBranches = map[ast.Kind][]Branch{
	ast.KindLit:        {BranchLit},
	ast.KindTermName:   {BranchTerm, BranchName},
	ast.KindTermSelect: {BranchTerm, BranchRef},
	ast.KindTermApply:  {BranchTerm},
	ast.KindTermAssign: {BranchTerm},
	ast.KindTermBlock:  {BranchTerm, BranchScope},
	ast.KindTermFunc:   {BranchTerm, BranchScope},
	ast.KindTermThis:   {BranchTerm, BranchRef},
	ast.KindTermSuper:  {BranchTerm, BranchRef},

	ast.KindTypeName:      {BranchType, BranchName},
	ast.KindTypeSelect:    {BranchType, BranchRef},
	ast.KindTypeProject:   {BranchType, BranchRef},
	ast.KindTypeSingleton: {BranchType, BranchRef},
	ast.KindTypeApply:     {BranchType},

	ast.KindCtorName:    {BranchCtor, BranchName},
	ast.KindCtorSelect:  {BranchCtor, BranchRef},
	ast.KindCtorProject: {BranchCtor, BranchRef},
	ast.KindCtorApply:   {BranchCtor},

	ast.KindModPrivate:   {BranchMod},
	ast.KindModProtected: {BranchMod},

	ast.KindImporteeWildcard: {BranchImportee},
	ast.KindImporteeRename:   {BranchImportee},
	ast.KindImporteeUnimport: {BranchImportee},

	ast.KindDefVal:    {BranchDefn, BranchMember},
	ast.KindDefDef:    {BranchDefn, BranchMember},
	ast.KindDefClass:  {BranchDefn, BranchMember},
	ast.KindDefObject: {BranchDefn, BranchMember},
	ast.KindParam:     {BranchMember},
	ast.KindTemplate:  {BranchScope},
	ast.KindInit:      {BranchScope},
	ast.KindSelf:      {BranchMember},

	ast.KindPkg:      {BranchScope},
	ast.KindImport:   {BranchStat},
	ast.KindImporter: {BranchTree},
}

// Branches returns the branch set a kind belongs to.
//
// The returned slice must not be modified.
func Branches(kind ast.Kind) []Branch {
	return kindBranches[kind]
}

// CanCompare reports whether comparing nodes of the two given kinds is
// sensible: some branch of a must be compatible with some branch of b. Two
// branches are compatible when they are the same branch, or when they share
// an ancestor other than the too-general Tree, Stat and Scope branches.
//
// Ideally this would be a purely static, call-site check on the declared
// types of the two operands. Go generics cannot express hierarchy
// subsumption, so the check is exposed as a plain predicate on kinds, which
// [StrictEqual] applies to the root kinds at runtime; a vet-style lint can
// apply it to declared types where those are known.
func CanCompare(a, b ast.Kind) bool {
	for _, ba := range kindBranches[a] {
		for _, bb := range kindBranches[b] {
			if compatible(ba, bb) {
				return true
			}
		}
	}
	return false
}

func compatible(a, b Branch) bool {
	if a == b {
		return true
	}
	for anc := range ancestors(a) {
		if tooGeneral(anc) {
			continue
		}
		if hasAncestor(b, anc) {
			return true
		}
	}
	return false
}

func tooGeneral(b Branch) bool {
	return b == BranchTree || b == BranchStat || b == BranchScope
}

// ancestors yields b and every branch reachable through parent links.
func ancestors(b Branch) map[Branch]bool {
	seen := map[Branch]bool{}
	var visit func(Branch)
	visit = func(b Branch) {
		if seen[b] {
			return
		}
		seen[b] = true
		for _, p := range branchParents[b] {
			visit(p)
		}
	}
	visit(b)
	return seen
}

func hasAncestor(b, anc Branch) bool {
	return ancestors(b)[anc]
}
