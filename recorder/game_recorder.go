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

package recorder

import (
	"github.com/zintix-labs/crapslab/errs"
	"github.com/zintix-labs/crapslab/sdk/craps"
	"github.com/zintix-labs/crapslab/sdk/dice"
	"github.com/zintix-labs/crapslab/stats"
)

// GameRecorder 遊戲紀錄員
//
// GameRecorder 只累積 int 計數（熱路徑不做浮點運算），並透過 Done 輸出統計報表。
// 單一 GameRecorder 不是併發安全的：多 worker 時每個 worker 各持一個，結束後再 Merge。
type GameRecorder struct {
	Basic *BasicRecord
	Point *PointRecord
}

// BasicRecord 基本勝負紀錄
type BasicRecord struct {
	Games      int
	Wins       int
	Naturals   int
	Craps      int
	Passes     int
	SevenOuts  int
	Rolls      int
	RollsSqSum int // 平方和
	MaxRolls   int
}

// PointRecord 以點數和為索引的 point 紀錄
type PointRecord struct {
	Established [dice.MaxSum + 1]int
	Made        [dice.MaxSum + 1]int
}

func NewGameRecorder() *GameRecorder {
	return &GameRecorder{
		Basic: new(BasicRecord),
		Point: new(PointRecord),
	}
}

// Record 紀錄一局結果
func (g *GameRecorder) Record(r craps.Result) {
	b := g.Basic
	b.Games++
	b.Rolls += r.Rolls
	b.RollsSqSum += r.Rolls * r.Rolls
	if r.Rolls > b.MaxRolls {
		b.MaxRolls = r.Rolls
	}
	switch r.Outcome {
	case craps.NaturalWin:
		b.Naturals++
	case craps.CrapLoss:
		b.Craps++
	case craps.PassWin:
		b.Passes++
		g.Point.Made[r.Point]++
	case craps.SevenOutLoss:
		b.SevenOuts++
	}
	if r.Outcome.Win() {
		b.Wins++
	}
	if r.Point != 0 {
		g.Point.Established[r.Point]++
	}
}

// MergeGameRecorder 合併多個 worker 的紀錄
func MergeGameRecorder(rs []*GameRecorder) (*GameRecorder, error) {
	if len(rs) == 0 {
		return nil, errs.NewFatal("merge game record err : no recorder")
	}
	out := NewGameRecorder()
	for _, r := range rs {
		if r == nil || r.Basic == nil || r.Point == nil {
			return nil, errs.NewFatal("merge game record err : nil recorder")
		}
		b := r.Basic
		out.Basic.Games += b.Games
		out.Basic.Wins += b.Wins
		out.Basic.Naturals += b.Naturals
		out.Basic.Craps += b.Craps
		out.Basic.Passes += b.Passes
		out.Basic.SevenOuts += b.SevenOuts
		out.Basic.Rolls += b.Rolls
		out.Basic.RollsSqSum += b.RollsSqSum
		out.Basic.MaxRolls = max(out.Basic.MaxRolls, b.MaxRolls)
		for i := range r.Point.Established {
			out.Point.Established[i] += r.Point.Established[i]
			out.Point.Made[i] += r.Point.Made[i]
		}
	}
	return out, nil
}

// Done 產出報表（尚未呼叫 OddsReport.Done，呼叫端可先補上 Seed/Workers）
func (g *GameRecorder) Done() *stats.OddsReport {
	b := g.Basic
	rep := &stats.OddsReport{
		Summary: &stats.SummaryReport{
			Workers:   1,
			Games:     b.Games,
			Wins:      b.Wins,
			Naturals:  b.Naturals,
			Craps:     b.Craps,
			Passes:    b.Passes,
			SevenOuts: b.SevenOuts,
			Expected:  craps.WinProbability(),
		},
		Points: make([]stats.PointReport, 0, len(craps.Points)),
		Rolls: &stats.RollReport{
			Total: b.Rolls,
			SqSum: b.RollsSqSum,
			Max:   b.MaxRolls,
		},
	}
	for _, p := range craps.Points {
		rep.Points = append(rep.Points, stats.PointReport{
			Point:       p,
			Established: g.Point.Established[p],
			Made:        g.Point.Made[p],
			Expected:    craps.PointMakeProbability(p),
		})
	}
	return rep
}
