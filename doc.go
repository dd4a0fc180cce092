// Package treecmp implements semantic equality and hashing for syntax trees
// that carry resolved-symbol information.
//
// A tree fresh out of a parser is purely structural. After a resolution pass,
// ref nodes (names, member selects, this/super, and friends) additionally
// carry a denotation: an opaque token identifying the definition they
// resolve to. Two trees that look different can denote the same program
// element, and two identical-looking refs can denote different ones, so
// plain field-by-field comparison is wrong for resolved trees. The
// comparison implemented here is structural everywhere except at ref
// boundaries, where denotation identity governs.
//
// The pieces are:
//  1. The tree model, in package ast: a generic node (kind plus ordered
//     fields) with an optional attached denotation.
//  2. The classifier: a total mapping from node kind to how that kind
//     participates in comparison. See [Classify].
//  3. The engines: [Equal] and [Hash] over resolved trees, with the usual
//     contract that equal trees hash equal.
//  4. A comparability check, [CanCompare], which rejects comparisons between
//     unrelated corners of the tree catalogue before they run. See
//     [StrictEqual].
//
// Resolution itself is not this package's job. [Equal] and [Hash] assume
// their inputs are resolved; the [Comparer] type bundles a [Resolver] for
// callers who want resolution folded into the call. Package resolve provides
// a standard lexical-scope resolver.
//
// Everything here is pure computation over immutable data; all functions and
// methods are safe for concurrent use.
package treecmp
