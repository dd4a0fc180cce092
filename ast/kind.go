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

package ast

import (
	"fmt"
	"iter"
)

const (
	// Literals and plain terms.
	KindLit Kind = iota + 1
	KindTermName
	KindTermSelect
	KindTermApply
	KindTermAssign
	KindTermBlock
	KindTermFunc
	KindTermThis
	KindTermSuper

	// Types.
	KindTypeName
	KindTypeSelect
	KindTypeProject
	KindTypeSingleton
	KindTypeApply

	// Constructor references.
	KindCtorName
	KindCtorSelect
	KindCtorProject
	KindCtorApply

	// Modifiers.
	KindModPrivate
	KindModProtected

	// Import selectors.
	KindImporteeWildcard
	KindImporteeRename
	KindImporteeUnimport

	// Definitions and their supporting nodes.
	KindDefVal
	KindDefDef
	KindDefClass
	KindDefObject
	KindParam
	KindTemplate
	KindInit
	KindSelf

	// Top-level structure.
	KindPkg
	KindImport
	KindImporter

	kindCount
)

// Kind identifies the concrete kind of a [Tree] node. There is one value of
// Kind for each node shape in the catalogue; the zero value is invalid.
//
// Two nodes built with the same kind always have fields of pairwise
// corresponding types and arity. That invariant is owned by whoever
// constructs the tree; this package does not re-check it.
type Kind int8

var kindNames = [...]string{
	KindLit:              "Lit",
	KindTermName:         "Term.Name",
	KindTermSelect:       "Term.Select",
	KindTermApply:        "Term.Apply",
	KindTermAssign:       "Term.Assign",
	KindTermBlock:        "Term.Block",
	KindTermFunc:         "Term.Func",
	KindTermThis:         "Term.This",
	KindTermSuper:        "Term.Super",
	KindTypeName:         "Type.Name",
	KindTypeSelect:       "Type.Select",
	KindTypeProject:      "Type.Project",
	KindTypeSingleton:    "Type.Singleton",
	KindTypeApply:        "Type.Apply",
	KindCtorName:         "Ctor.Name",
	KindCtorSelect:       "Ctor.Select",
	KindCtorProject:      "Ctor.Project",
	KindCtorApply:        "Ctor.Apply",
	KindModPrivate:       "Mod.Private",
	KindModProtected:     "Mod.Protected",
	KindImporteeWildcard: "Importee.Wildcard",
	KindImporteeRename:   "Importee.Rename",
	KindImporteeUnimport: "Importee.Unimport",
	KindDefVal:           "Def.Val",
	KindDefDef:           "Def.Def",
	KindDefClass:         "Def.Class",
	KindDefObject:        "Def.Object",
	KindParam:            "Param",
	KindTemplate:         "Template",
	KindInit:             "Init",
	KindSelf:             "Self",
	KindPkg:              "Pkg",
	KindImport:           "Import",
	KindImporter:         "Importer",
}

// IsValid returns whether this kind names a node shape in the catalogue.
func (k Kind) IsValid() bool {
	return k > 0 && k < kindCount
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("ast.Kind(%d)", int(k))
}

// Kinds returns an iterator over every valid [Kind], in declaration order.
//
// This is intended for exhaustiveness checks: any table keyed by node kind
// can be validated against the full catalogue without hard-coding its size.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := Kind(1); k < kindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}
