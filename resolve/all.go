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

package resolve

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/treecmp/ast"
)

// All resolves a batch of trees concurrently against the binder's shared
// table, so refs in different trees to the same definition path receive
// equal denotations. Results are positional: out[i] is the resolution of
// trees[i].
//
// The first error stops the batch; partial results are discarded.
func (b *Binder) All(ctx context.Context, trees ...*ast.Tree) ([]*ast.Tree, error) {
	if len(trees) == 0 {
		return nil, nil
	}

	par := runtime.GOMAXPROCS(-1)
	if cpus := runtime.NumCPU(); par > cpus {
		par = cpus
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(par)

	out := make([]*ast.Tree, len(trees))
	for i, t := range trees {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := b.Resolve(t)
			out[i] = r
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
