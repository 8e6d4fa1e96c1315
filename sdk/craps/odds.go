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

// 以 36 種等機率骰面組合推得的理論機率，供模擬結果比對。

// Ways 擲出點數和 sum 的組合數（36 種之中）
func Ways(sum int) int {
	if sum < 2 || sum > 12 {
		return 0
	}
	d := sum - 7
	if d < 0 {
		d = -d
	}
	return 6 - d
}

// PointMakeProbability 已建立 point 後，在 7 之前擲回 point 的機率
func PointMakeProbability(point int) float64 {
	w := Ways(point)
	if w == 0 {
		return 0
	}
	return float64(w) / float64(w+Ways(7))
}

// WinProbability 單局獲勝的理論機率（= 244/495 ≈ 0.4929）
func WinProbability() float64 {
	p := float64(Ways(7)+Ways(11)) / 36
	for _, pt := range Points {
		p += float64(Ways(pt)) / 36 * PointMakeProbability(pt)
	}
	return p
}
