// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"testing"
)

func TestCoreDeterminism(t *testing.T) {
	c1 := New(Default().New(7))
	c2 := New(Default().New(7))
	for i := 0; i < 100; i++ {
		if c1.IntN(6) != c2.IntN(6) {
			t.Fatalf("IntN mismatch at %d", i)
		}
	}
}

func TestIntNRange(t *testing.T) {
	c := New(Default().New(3))
	if got := c.IntN(0); got != -1 {
		t.Fatalf("expected -1 for max 0, got %d", got)
	}
	if got := c.IntN(-4); got != -1 {
		t.Fatalf("expected -1 for negative max, got %d", got)
	}
	seen := [6]int{}
	for i := 0; i < 6000; i++ {
		v := c.IntN(6)
		if v < 0 || v >= 6 {
			t.Fatalf("IntN(6) out of range: %d", v)
		}
		seen[v]++
	}
	for face, n := range seen {
		if n == 0 {
			t.Fatalf("face %d never drawn in 6000 draws", face+1)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	c1 := New(Default().New(1))
	c2 := New(Default().New(2))
	same := 0
	for i := 0; i < 100; i++ {
		if c1.IntN(6) == c2.IntN(6) {
			same++
		}
	}
	if same == 100 {
		t.Fatalf("adjacent seeds produced identical streams")
	}
}

func TestNewSeedPositive(t *testing.T) {
	for i := 0; i < 10; i++ {
		s, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed: %v", err)
		}
		if s < 1 {
			t.Fatalf("seed must be positive, got %d", s)
		}
	}
}
