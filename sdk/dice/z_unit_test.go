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

package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zintix-labs/crapslab/sdk/core"
	"github.com/zintix-labs/crapslab/sdk/dice"
)

func TestRoll2Range(t *testing.T) {
	src := core.New(core.Default().New(42))
	seen := map[int]int{}
	for i := 0; i < 20000; i++ {
		th := dice.Roll2(src)
		require.GreaterOrEqual(t, th.First, 1)
		require.LessOrEqual(t, th.First, 6)
		require.GreaterOrEqual(t, th.Second, 1)
		require.LessOrEqual(t, th.Second, 6)
		require.Equal(t, th.First+th.Second, th.Sum())
		seen[th.Sum()]++
	}
	// 每個點數和 [2,12] 都應出現過
	for s := dice.MinSum; s <= dice.MaxSum; s++ {
		assert.Positive(t, seen[s], "sum %d never rolled", s)
	}
	// 7 是最常見的點數和（理論機率 1/6）
	assert.Greater(t, seen[7], seen[2])
	assert.Greater(t, seen[7], seen[12])
}

func TestScriptedReplaysFaces(t *testing.T) {
	src := dice.NewScripted(3, 4, 6, 6)
	assert.Equal(t, dice.Throw{First: 3, Second: 4}, dice.Roll2(src))
	assert.Equal(t, 12, dice.Roll2(src).Sum())
	assert.Zero(t, src.Remaining())
	assert.Panics(t, func() { dice.Roll2(src) })
}

func TestScriptedSums(t *testing.T) {
	sums := []int{2, 4, 7, 11, 12}
	src := dice.NewScriptedSums(sums...)
	for _, want := range sums {
		assert.Equal(t, want, dice.Roll2(src).Sum())
	}
	assert.Panics(t, func() { dice.NewScriptedSums(13) })
	assert.Panics(t, func() { dice.NewScripted(0) })
	assert.Panics(t, func() { dice.NewScripted(1).IntN(4) })
}

func TestThrowString(t *testing.T) {
	assert.Equal(t, "2+5=7", dice.Throw{First: 2, Second: 5}.String())
}
