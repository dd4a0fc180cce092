package treecmp

import (
	"errors"
	"fmt"

	"github.com/bufbuild/treecmp/ast"
)

// ErrIncomparable is returned (wrapped) by [StrictEqual] and
// [Comparer.Equal] when the two operands live in unrelated corners of the
// tree catalogue and comparing them cannot be meaningful.
var ErrIncomparable = errors.New("tree kinds are not comparable")

// Resolver attaches denotations to a tree's ref nodes.
//
// Resolve must not mutate its input; it returns a resolved copy (or the
// input itself if there was nothing to do). Implementations are how
// denotations come into existence; everything else in this package merely
// consumes them. The standard implementation is resolve.Binder.
type Resolver interface {
	Resolve(t *ast.Tree) (*ast.Tree, error)
}

// Comparer compares and hashes trees that have not yet been resolved, by
// running a [Resolver] over them first. This is the top-level entry point;
// callers who already hold resolved trees can use [Equal] and [Hash]
// directly.
//
// A Comparer is safe for concurrent use if its Resolver is.
type Comparer struct {
	// Resolves trees before comparison. This field is required.
	Resolver Resolver

	// If true, comparisons between kinds rejected by [CanCompare] fail with
	// [ErrIncomparable] instead of merely returning false.
	Strict bool
}

// Equal resolves both trees and compares them semantically.
//
// Two nil trees are equal, a nil tree equals no non-nil tree, and nil trees
// are not resolved (so a Resolver need not handle nil).
func (c *Comparer) Equal(a, b *ast.Tree) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}
	if c.Strict {
		if err := checkComparable(a, b); err != nil {
			return false, err
		}
	}

	ra, err := c.Resolver.Resolve(a)
	if err != nil {
		return false, err
	}
	rb, err := c.Resolver.Resolve(b)
	if err != nil {
		return false, err
	}
	return Equal(ra, rb), nil
}

// Hash resolves a tree and hashes it, consistently with [Comparer.Equal].
// A nil tree hashes to 0.
func (c *Comparer) Hash(t *ast.Tree) (uint64, error) {
	if t == nil {
		return 0, nil
	}
	r, err := c.Resolver.Resolve(t)
	if err != nil {
		return 0, err
	}
	return Hash(r), nil
}

// StrictEqual is [Equal] with the comparability check applied first: if the
// root kinds of the two trees are rejected by [CanCompare], it fails with an
// error wrapping [ErrIncomparable] rather than computing an answer.
//
// This check wants to run on the declared static types of the operands,
// before any code does. Applying it to the root kinds at runtime is the
// closest a library-level API can get; see [CanCompare].
func StrictEqual(a, b *ast.Tree) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}
	if err := checkComparable(a, b); err != nil {
		return false, err
	}
	return Equal(a, b), nil
}

func checkComparable(a, b *ast.Tree) error {
	if !CanCompare(a.Kind(), b.Kind()) {
		return fmt.Errorf(
			"%w: %v and %v share no branch more specific than %v",
			ErrIncomparable, a.Kind(), b.Kind(), BranchTree,
		)
	}
	return nil
}
