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
	"testing"

	"github.com/zintix-labs/crapslab/sdk/craps"
)

func sampleResults() []craps.Result {
	return []craps.Result{
		{Point: 0, Rolls: 1, Outcome: craps.NaturalWin},
		{Point: 0, Rolls: 1, Outcome: craps.CrapLoss},
		{Point: 4, Rolls: 3, Outcome: craps.PassWin},
		{Point: 4, Rolls: 2, Outcome: craps.SevenOutLoss},
		{Point: 9, Rolls: 6, Outcome: craps.PassWin},
	}
}

func TestRecordCounts(t *testing.T) {
	g := NewGameRecorder()
	for _, r := range sampleResults() {
		g.Record(r)
	}
	b := g.Basic
	if b.Games != 5 || b.Wins != 3 {
		t.Fatalf("games/wins got %d/%d", b.Games, b.Wins)
	}
	if b.Naturals != 1 || b.Craps != 1 || b.Passes != 2 || b.SevenOuts != 1 {
		t.Fatalf("outcome counts: %+v", b)
	}
	if b.Rolls != 13 || b.RollsSqSum != 1+1+9+4+36 || b.MaxRolls != 6 {
		t.Fatalf("rolls: %+v", b)
	}
	if g.Point.Established[4] != 2 || g.Point.Made[4] != 1 || g.Point.Made[9] != 1 {
		t.Fatalf("points: %+v", g.Point)
	}
	if b.Naturals+b.Craps+b.Passes+b.SevenOuts != b.Games {
		t.Fatalf("outcomes must partition games")
	}
}

func TestMergeMatchesSingleRecorder(t *testing.T) {
	all := NewGameRecorder()
	parts := []*GameRecorder{NewGameRecorder(), NewGameRecorder()}
	for i, r := range sampleResults() {
		all.Record(r)
		parts[i%2].Record(r)
	}
	merged, err := MergeGameRecorder(parts)
	if err != nil {
		t.Fatal(err)
	}
	if *merged.Basic != *all.Basic {
		t.Fatalf("basic mismatch: %+v vs %+v", merged.Basic, all.Basic)
	}
	if *merged.Point != *all.Point {
		t.Fatalf("point mismatch")
	}

	if _, err := MergeGameRecorder(nil); err == nil {
		t.Fatalf("expected error for empty merge")
	}
	if _, err := MergeGameRecorder([]*GameRecorder{nil}); err == nil {
		t.Fatalf("expected error for nil recorder")
	}
}

func TestDoneBuildsReport(t *testing.T) {
	g := NewGameRecorder()
	for _, r := range sampleResults() {
		g.Record(r)
	}
	rep := g.Done()
	rep.Done()
	if rep.Summary.Games != 5 || rep.Summary.Wins != 3 || rep.Summary.Odds != 0.6 {
		t.Fatalf("summary: %+v", rep.Summary)
	}
	if len(rep.Points) != len(craps.Points) || rep.Points[0].Point != 4 {
		t.Fatalf("points: %+v", rep.Points)
	}
	if rep.Points[0].Established != 2 || rep.Points[0].MadeRate != 0.5 {
		t.Fatalf("point 4 row: %+v", rep.Points[0])
	}
}
