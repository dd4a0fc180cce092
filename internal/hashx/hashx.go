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

// Package hashx provides the hash mixing primitives shared by the tree
// hashing engine and its leaf types.
//
// Hashes produced with this package are stable within a process, but not
// across processes or versions, much like Go's built-in map hashing. Callers
// must not persist them.
package hashx

import "golang.org/x/exp/constraints"

const (
	fnvOffset64 uint64 = 0xcbf29ce484222325
	fnvPrime64  uint64 = 0x00000100000001b3
)

// String hashes a string using 64-bit FNV-1a.
func String(s string) uint64 {
	h := fnvOffset64
	for i := range len(s) {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

// Int hashes a single integer value.
func Int[I constraints.Integer](n I) uint64 {
	return split(uint64(int64(n)))
}

// Mix folds n into the running hash h.
//
// Mix is not commutative: Mix(a, b) and callers that fold a sequence of
// values must do so in a deterministic order.
func Mix[I constraints.Integer](h uint64, n I) uint64 {
	return split(h ^ split(uint64(int64(n))))
}

// split is the splitmix64 finalizer, which distributes the bits of n.
func split(n uint64) uint64 {
	n ^= n >> 30
	n *= 0xbf58476d1ce4e5b9
	n ^= n >> 27
	n *= 0x94d049bb133111eb
	n ^= n >> 31
	return n
}
