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

package dice

import "fmt"

// Scripted 是依序回放預先排好骰面的 Source，用來強制規則引擎走指定路徑。
//
// 序列用完之後再呼叫 IntN 會 panic：代表測試腳本與被測邏輯的擲骰次數不一致。
type Scripted struct {
	faces []int
	pos   int
}

// NewScripted 以骰面序列（每個值在 [1,6]）建立 Scripted
func NewScripted(faces ...int) *Scripted {
	for _, f := range faces {
		if f < 1 || f > Sides {
			panic(fmt.Sprintf("dice: scripted face out of range: %d", f))
		}
	}
	return &Scripted{faces: faces}
}

// NewScriptedSums 以點數和序列建立 Scripted，每個點數和會拆成一組固定的兩顆骰面。
func NewScriptedSums(sums ...int) *Scripted {
	faces := make([]int, 0, 2*len(sums))
	for _, s := range sums {
		a, b := SplitSum(s)
		faces = append(faces, a, b)
	}
	return NewScripted(faces...)
}

// SplitSum 把 [2,12] 的點數和拆成兩顆骰面（第一顆盡量小）
func SplitSum(sum int) (int, int) {
	if sum < MinSum || sum > MaxSum {
		panic(fmt.Sprintf("dice: sum out of range: %d", sum))
	}
	first := max(1, sum-Sides)
	return first, sum - first
}

// IntN 回傳下一個骰面減一；只接受 n == Sides
func (s *Scripted) IntN(n int) int {
	if n != Sides {
		panic(fmt.Sprintf("dice: scripted source only serves d%d, got IntN(%d)", Sides, n))
	}
	if s.pos >= len(s.faces) {
		panic(fmt.Sprintf("dice: scripted source exhausted after %d faces", len(s.faces)))
	}
	f := s.faces[s.pos]
	s.pos++
	return f - 1
}

// Remaining 尚未被取用的骰面數
func (s *Scripted) Remaining() int {
	return len(s.faces) - s.pos
}
