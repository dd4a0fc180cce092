// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast defines the generic tree representation that the comparison
// engines in package treecmp operate on.
//
// A [Tree] is a [Kind] plus an ordered list of fields, where each field is a
// child node, an optional child node, an ordered sequence of child nodes, or
// an opaque leaf [Value]. The catalogue of kinds is closed; [Kinds] iterates
// it so that tables keyed by kind can be checked for drift when the
// catalogue grows.
//
// Nodes of ref kinds (names, selects, this/super, and friends) may
// additionally carry a [Denotation]: an opaque token, minted by a resolution
// pass, identifying the definition the node refers to. The zero Denotation
// means the node did not resolve.
//
// Trees are immutable once constructed. Passes that attach information do so
// by rebuilding nodes ([Tree.WithDenotation]); nothing in this module ever
// mutates a tree in place, which makes sharing trees across goroutines safe
// without synchronization.
package ast
