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

// Package craps 實作單人、不下注的花旗骰規則引擎。
//
// 一局分兩個階段：
//  1. Come Out：擲一次。7/11 為 natural（贏），2/3/12 為 craps（輸），其餘點數成為 point。
//  2. Point：持續擲骰，直到擲回 point（pass，贏）或擲出 7（seven-out，輸）。
//
// Point 階段沒有擲骰次數上限：終止的機率為 1，但步數沒有確定的上界。
// 需要精確控制終止路徑時，請注入 dice.Scripted。
package craps

import (
	"io"

	"github.com/zintix-labs/crapslab/sdk/dice"
)

// Result 單局完整結果
type Result struct {
	ComeOut dice.Throw `json:"ComeOut"`
	Point   int        `json:"Point"` // 未建立 point 時為 0
	Rolls   int        `json:"Rolls"` // 含 come-out 的總擲骰次數
	Outcome Outcome    `json:"Outcome"`
}

// Game 一位擲骰者：持有亂數來源與旁白。
//
// Game 不是併發安全的；多 worker 模擬請每個 worker 各建一個 Game。
type Game struct {
	src  dice.Source
	narr Narrator
}

// New 建立 Game；narr 為 nil 時不輸出任何旁白
func New(src dice.Source, narr Narrator) *Game {
	if narr == nil {
		narr = Nop{}
	}
	return &Game{src: src, narr: narr}
}

// NewVerbose 相當於 New(src, NewTextNarrator(w))
func NewVerbose(src dice.Source, w io.Writer) *Game {
	return New(src, NewTextNarrator(w))
}

// Roll2 擲一次兩顆骰並回報給旁白
func (g *Game) Roll2() dice.Throw {
	t := dice.Roll2(g.src)
	g.narr.Throw(t)
	return t
}

// ComeOut 第一階段：擲一次，回傳點數和（不做分類）
func (g *Game) ComeOut() int {
	return g.comeOut().Sum()
}

// Point 第二階段：持續擲骰直到擲出 target（回傳 true）或 7（回傳 false）
func (g *Game) Point(target int) bool {
	win, _ := g.point(target)
	return win
}

// Play 完整進行一局並回傳結果
func (g *Game) Play() Result {
	first := g.comeOut()
	r := Result{ComeOut: first, Rolls: 1}
	sum := first.Sum()

	switch Classify(sum) {
	case ClassNatural:
		r.Outcome = NaturalWin
	case ClassCraps:
		r.Outcome = CrapLoss
	default:
		r.Point = sum
		win, n := g.point(sum)
		r.Rolls += n
		if win {
			r.Outcome = PassWin
		} else {
			r.Outcome = SevenOutLoss
		}
	}
	g.narr.Outcome(r.Outcome)
	return r
}

// PlayToReplay 進行一局，回傳玩家是否保有骰子（natural=false, craps=true, point=是否 pass）
func (g *Game) PlayToReplay() bool {
	return g.Play().Outcome.Replay()
}

// PlayToWin 進行一局，回傳玩家是否獲勝（natural=true, craps=false, point=是否 pass）
func (g *Game) PlayToWin() bool {
	return g.Play().Outcome.Win()
}

func (g *Game) comeOut() dice.Throw {
	g.narr.Phase(PhaseComeOut)
	t := g.Roll2()
	g.narr.Target(t.Sum())
	return t
}

// point 回傳勝負與這個階段的擲骰次數
func (g *Game) point(target int) (bool, int) {
	g.narr.Phase(PhasePoint)
	n := 1
	total := g.Roll2().Sum()
	for total != 7 && total != target {
		total = g.Roll2().Sum()
		n++
	}
	return total == target, n
}
