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

// Package core 提供擲骰所需的亂數核心：PRNG 合約、預設 PCG64 工廠與每個進程的種子來源。
package core

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/zintix-labs/crapslab/errs"
)

// PRNG 定義 Core 所需的亂數來源。
//
// IntN 是擲骰唯一需要的操作（dice.Source 只要求它）。
type PRNG interface {
	// IntN 回傳 [0,max) 的 int 亂數，若 max <= 0 回傳 -1。
	IntN(int) int
}

type PRNGFactory interface {
	// New 以指定 seed 建立新的 PRNG。
	//
	// 合約：在同一個實作與同一個版本下，New(seed) 必須是決定性的，
	// 相同的 seed 必須產生相同的輸出序列。多 worker 模擬的可重現性依賴這一點。
	New(int64) PRNG
}

// DefaultPRNG 實作預設的 PRNGFactory
type DefaultPRNG struct{}

// New 滿足合約
func (d *DefaultPRNG) New(seed int64) PRNG {
	return newPCG64WithSeed(seed)
}

func Default() *DefaultPRNG {
	return &DefaultPRNG{}
}

// Core 封裝 PRNG；桌上的每一位擲骰者各自持有一個。
type Core struct {
	PRNG
}

// New 允許使用外部自實現的 PRNG 建立 Core。
func New(rng PRNG) *Core {
	return &Core{rng}
}

// NewSeed 由 crypto/rand 產生一個正的 int64 種子。
//
// 每次進程啟動都應取得不同的種子；要重現某次結果時請改為明確傳入種子。
func NewSeed() (int64, error) {
	seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, errs.Wrap(err, "new crypto seed error in go std lib")
	}
	// 0 在 CLI 中代表「未指定」，避開它
	return max(seed.Int64(), 1), nil
}
