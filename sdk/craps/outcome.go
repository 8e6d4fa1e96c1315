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

package craps

// Outcome 單局結果
type Outcome uint8

const (
	NaturalWin   Outcome = iota // come-out 擲出 7 或 11：贏，但必須交出骰子
	CrapLoss                    // come-out 擲出 2、3、12：輸，但可以再擲
	PassWin                     // point 階段先擲回目標點數：贏，可以再擲
	SevenOutLoss                // point 階段先擲出 7：輸，必須交出骰子
)

var outcomeStr = map[Outcome]string{
	NaturalWin:   "natural",
	CrapLoss:     "craps",
	PassWin:      "pass",
	SevenOutLoss: "seven-out",
}

func (o Outcome) String() string {
	if s, ok := outcomeStr[o]; ok {
		return s
	}
	return "unknown"
}

// Win 玩家是否贏下這一局（Play-To-Win 的語意）
func (o Outcome) Win() bool {
	return o == NaturalWin || o == PassWin
}

// Replay 玩家是否保有骰子、可以再擲下一局（Play-To-Replay 的語意）
func (o Outcome) Replay() bool {
	return o == CrapLoss || o == PassWin
}

// Class come-out 點數和的分類
type Class uint8

const (
	ClassPoint   Class = iota // 4,5,6,8,9,10：建立 point
	ClassNatural              // 7,11
	ClassCraps                // 2,3,12
)

// Classify 分類 come-out 擲出的點數和
func Classify(sum int) Class {
	switch sum {
	case 7, 11:
		return ClassNatural
	case 2, 3, 12:
		return ClassCraps
	default:
		return ClassPoint
	}
}

// Points 所有可能成為 point 的點數，依大小排序
var Points = [...]int{4, 5, 6, 8, 9, 10}

// IsPoint 回報 sum 是否為合法的 point
func IsPoint(sum int) bool {
	for _, p := range Points {
		if p == sum {
			return true
		}
	}
	return false
}
