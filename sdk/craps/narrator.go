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

import (
	"fmt"
	"io"

	"github.com/zintix-labs/crapslab/sdk/dice"
)

// Phase 一局中的階段
type Phase uint8

const (
	PhaseComeOut Phase = iota + 1
	PhasePoint
)

// Narrator 接收規則引擎在每個步驟發出的事件。
//
// 規則引擎本身不做任何輸出；verbose 與否只取決於注入哪一個 Narrator。
type Narrator interface {
	Welcome()
	Again()
	Phase(p Phase)
	Throw(t dice.Throw)
	Target(sum int)
	Outcome(o Outcome)
}

// Nop 丟棄所有事件（odds 模擬使用）
type Nop struct{}

func (Nop) Welcome()         {}
func (Nop) Again()           {}
func (Nop) Phase(Phase)      {}
func (Nop) Throw(dice.Throw) {}
func (Nop) Target(int)       {}
func (Nop) Outcome(Outcome)  {}

// TextNarrator 把事件以牌桌旁白的格式寫到 w
//
// 寫入錯誤會被忽略（與 fmt.Println 相同的語意）。
type TextNarrator struct {
	w io.Writer
}

func NewTextNarrator(w io.Writer) *TextNarrator {
	if w == nil {
		w = io.Discard
	}
	return &TextNarrator{w: w}
}

func (n *TextNarrator) Welcome() {
	fmt.Fprintln(n.w, "Welcome to the craps table.")
}

func (n *TextNarrator) Again() {
	fmt.Fprintln(n.w, "\nPlaying again...")
}

func (n *TextNarrator) Phase(p Phase) {
	switch p {
	case PhaseComeOut:
		fmt.Fprintln(n.w, "Phase I, the Come Out")
	case PhasePoint:
		fmt.Fprintln(n.w, "Phase II, the Point")
	}
}

func (n *TextNarrator) Throw(t dice.Throw) {
	fmt.Fprintf(n.w, "\tThrew %s\n", t)
}

func (n *TextNarrator) Target(sum int) {
	fmt.Fprintf(n.w, "\tTarget established: %d\n", sum)
}

func (n *TextNarrator) Outcome(o Outcome) {
	switch o {
	case NaturalWin:
		fmt.Fprintln(n.w, "A natural! You've won the game, but must yield the dice to the next player.")
	case CrapLoss:
		fmt.Fprintln(n.w, "You've crapped out, but may play again.")
	case PassWin:
		fmt.Fprintln(n.w, "A pass! You've won the game, and may play again.")
	case SevenOutLoss:
		fmt.Fprintln(n.w, "You've sevened out, and must yield the dice to the next player.")
	}
}
