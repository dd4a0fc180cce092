// Package walk provides helpers for traversing trees depth-first.
package walk

import "github.com/bufbuild/treecmp/ast"

// Trees walks the tree rooted at t in depth-first pre-order, calling fn for
// each node. If fn returns an error, the walk stops and that error is
// returned.
func Trees(t *ast.Tree, fn func(*ast.Tree) error) error {
	return TreesEnterAndExit(t, fn, nil)
}

// TreesEnterAndExit walks the tree rooted at t in depth-first order, calling
// enter for each node before its children and exit (if non-nil) after them.
// If either callback returns an error, the walk stops and that error is
// returned.
//
// A nil t is a no-op.
func TreesEnterAndExit(t *ast.Tree, enter, exit func(*ast.Tree) error) error {
	if t == nil {
		return nil
	}
	if err := enter(t); err != nil {
		return err
	}
	for f := range t.Fields() {
		switch f.Kind() {
		case ast.FieldKindNode, ast.FieldKindOptional:
			if err := TreesEnterAndExit(f.AsNode(), enter, exit); err != nil {
				return err
			}
		case ast.FieldKindSeq:
			for _, child := range f.AsSeq() {
				if err := TreesEnterAndExit(child, enter, exit); err != nil {
					return err
				}
			}
		}
	}
	if exit != nil {
		return exit(t)
	}
	return nil
}
