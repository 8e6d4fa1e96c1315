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

// Package dice 提供兩顆六面骰的擲骰器。
//
// 擲骰器本身不保存狀態，也不負責輸出；亂數來源一律由呼叫端注入（Source），
// 因此正式執行時接 core.Core，測試時接 Scripted 即可得到決定性的序列。
package dice

import "fmt"

// Sides 每顆骰子的面數
const Sides = 6

const (
	MinSum = 2
	MaxSum = 2 * Sides
)

// Source 擲骰所需的唯一亂數操作：回傳 [0,n) 的整數。
//
// *core.Core 滿足此介面。
type Source interface {
	IntN(n int) int
}

// Throw 一次擲出的兩顆骰子點數，各在 [1,6]
type Throw struct {
	First  int `json:"First"  yaml:"First"`
	Second int `json:"Second" yaml:"Second"`
}

// Sum 回傳兩顆骰子點數和，範圍 [2,12]
func (t Throw) Sum() int {
	return t.First + t.Second
}

func (t Throw) String() string {
	return fmt.Sprintf("%d+%d=%d", t.First, t.Second, t.Sum())
}

// Roll2 以 src 擲兩顆獨立的六面骰
func Roll2(src Source) Throw {
	return Throw{
		First:  face(src),
		Second: face(src),
	}
}

func face(src Source) int {
	return src.IntN(Sides) + 1
}
