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

// Shooter 測試模式：以 Play-To-Replay 連續進行，直到玩家必須交出骰子。
//
// 回傳每一局的結果（長度即局數）。與 Point 階段相同，局數沒有上限。
func (g *Game) Shooter() []Result {
	g.narr.Welcome()
	results := make([]Result, 0, 4)
	r := g.Play()
	results = append(results, r)
	for r.Outcome.Replay() {
		g.narr.Again()
		r = g.Play()
		results = append(results, r)
	}
	return results
}
