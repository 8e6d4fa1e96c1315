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

// Package crapslab 是花旗骰模擬的組裝入口：把亂數工廠、規則引擎與紀錄員串起來，
// 提供單局（verbose）、測試模式（擲到交出骰子為止）與勝率模擬三種運行方式。
//
// 可重現性：同一個 PRNGFactory + 同一個 seed（以及同樣的 worker 數）必定得到同樣的結果。
package crapslab

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/crapslab/errs"
	"github.com/zintix-labs/crapslab/recorder"
	"github.com/zintix-labs/crapslab/sdk/core"
	"github.com/zintix-labs/crapslab/sdk/craps"
	"github.com/zintix-labs/crapslab/stats"
)

// DefaultOddsGames odds 模式未指定局數時的預設值
const DefaultOddsGames = 1000

// Simulator 持有亂數工廠與初始種子，依需求建立擲骰者（craps.Game）。
type Simulator struct {
	cf       core.PRNGFactory
	initSeed int64
}

// NewSimulator 以隨機 seed 建立 Simulator
func NewSimulator(cf core.PRNGFactory) (*Simulator, error) {
	seed, err := core.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSimulatorWithSeed(cf, seed)
}

// NewSimulatorWithSeed 以指定 seed 建立 Simulator
func NewSimulatorWithSeed(cf core.PRNGFactory, seed int64) (*Simulator, error) {
	if cf == nil {
		return nil, errs.NewFatal("core factory required")
	}
	return &Simulator{
		cf:       cf,
		initSeed: seed,
	}, nil
}

// Seed 回傳初始種子（用於重現）
func (s *Simulator) Seed() int64 {
	return s.initSeed
}

// Table 建立一位以初始種子擲骰的 Game；w 為 nil 時不輸出旁白
func (s *Simulator) Table(w io.Writer) *craps.Game {
	src := core.New(s.cf.New(s.initSeed))
	if w == nil {
		return craps.New(src, nil)
	}
	return craps.NewVerbose(src, w)
}

// PlayOne 以 verbose 旁白進行一局 Play-To-Win，回傳是否獲勝
func (s *Simulator) PlayOne(w io.Writer) bool {
	return s.Table(w).PlayToWin()
}

// Shooter 測試模式：以 verbose 旁白擲到交出骰子為止，回傳進行的局數
func (s *Simulator) Shooter(w io.Writer) int {
	return len(s.Table(w).Shooter())
}

// Odds 單線勝率模擬：以一位擲骰者安靜地進行 games 局 Play-To-Win，回傳報表與用時
func (s *Simulator) Odds(games int, showpb bool) (*stats.OddsReport, time.Duration, error) {
	return s.OddsMP(games, 1, showpb)
}

// OddsMP 平行勝率模擬：把 games 局平均分給 workers 個擲骰者，合併統計結果後回傳報表與用時
//
// worker 0 使用初始種子，其餘 worker 的種子由 seedMaker 依序派生，因此結果只取決於 (seed, workers)。
// workers 大於 games 時會縮減為 games。
func (s *Simulator) OddsMP(games int, workers int, showpb bool) (*stats.OddsReport, time.Duration, error) {
	if games < 1 {
		return nil, 0, errs.Degeneratef("number of games must > 0, got %d", games)
	}
	if workers < 1 {
		return nil, 0, errs.InvalidArgf("workers must > 0, got %d", workers)
	}
	workers = min(workers, games)

	sm := newSeedMaker(s.initSeed)
	tables := make([]*craps.Game, workers)
	recs := make([]*recorder.GameRecorder, workers)
	quota := make([]int, workers)
	for i := 0; i < workers; i++ {
		seed := s.initSeed
		if i > 0 {
			seed = sm.next()
		}
		tables[i] = craps.New(core.New(s.cf.New(seed)), nil)
		recs[i] = recorder.NewGameRecorder()
		quota[i] = games / workers
		if i < games%workers {
			quota[i]++
		}
	}

	bar := pb.New(games)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	bar.Start()
	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go play(wg, tables[i], recs[i], quota[i], bar)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	merged, err := recorder.MergeGameRecorder(recs)
	if err != nil {
		return nil, 0, err
	}
	rep := merged.Done()
	rep.Summary.Seed = s.initSeed
	rep.Summary.Workers = workers
	rep.Done()
	return rep, used, nil
}

func play(wg *sync.WaitGroup, g *craps.Game, r *recorder.GameRecorder, games int, bar *pb.ProgressBar) {
	defer wg.Done()
	for range games {
		r.Record(g.Play())
		bar.Increment()
	}
}

const mask63 = uint64(1<<63) - 1

type seedMaker struct {
	state atomic.Uint64 // always in [0, 2^63)
}

func newSeedMaker(seed int64) *seedMaker {
	s := &seedMaker{}
	s.state.Store(uint64(seed) & mask63)
	return s
}

// next 以全週期 LCG 推進 state，再用可逆的 mix63 打散後回傳（一定非負）。
//
// CAS 迴圈保證併發呼叫時每次取得唯一的下一個 state。
func (s *seedMaker) next() int64 {
	for {
		old := s.state.Load()
		next := (old*6364136223846793005 + 1442695040888963407) & mask63
		if s.state.CompareAndSwap(old, next) {
			return int64(mix63(next))
		}
	}
}

// mix63：只用可逆的 bit 操作 + 乘奇數（mod 2^63）
func mix63(x uint64) uint64 {
	x &= mask63
	x ^= x >> 30
	x = (x * 0xBF58476D1CE4E5B9) & mask63
	x ^= x >> 27
	x = (x * 0x94D049BB133111EB) & mask63
	x ^= x >> 31
	return x & mask63
}
