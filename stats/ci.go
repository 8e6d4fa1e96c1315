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

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ProportionCI 回傳 k/n 的點估計與 Clopper–Pearson 精確信賴區間
//
// n == 0 時回傳 (0, [0,1])：沒有樣本就沒有資訊。
func ProportionCI(k int, n int, confidence float64) (pHat float64, ci CI) {
	if n == 0 {
		return 0, CI{0, 1}
	}
	alpha := 1 - confidence
	pHat = float64(k) / float64(n)

	// Beta PPF 映射，處理邊界
	if k == 0 {
		ci.Lo = 0
	} else {
		b := distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}
		ci.Lo = b.Quantile(alpha / 2)
	}
	if k == n {
		ci.Hi = 1
	} else {
		b := distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}
		ci.Hi = b.Quantile(1 - alpha/2)
	}
	return
}

// ZTest 以常態近似檢定 k/n 是否偏離理論機率 p0，回傳 z 值與雙尾 p-value
//
// p0 不在 (0,1) 或 n == 0 時回傳 (0, 1)。
func ZTest(k int, n int, p0 float64) (z float64, pValue float64) {
	if n == 0 || p0 <= 0 || p0 >= 1 {
		return 0, 1
	}
	se := math.Sqrt(p0 * (1 - p0) / float64(n))
	z = (float64(k)/float64(n) - p0) / se
	pValue = 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z)))
	return z, pValue
}
