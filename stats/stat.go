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
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// Confidence 所有區間估計使用的信賴水準
const Confidence = 0.95

// 信賴區間
type CI struct {
	Lo float64 `json:"Lo" yaml:"Lo"`
	Hi float64 `json:"Hi" yaml:"Hi"`
}

// OddsReport 勝率模擬報告
type OddsReport struct {
	Summary *SummaryReport `json:"Summary" yaml:"Summary"`
	Points  []PointReport  `json:"Points"  yaml:"Points"`
	Rolls   *RollReport    `json:"Rolls"   yaml:"Rolls"`
	isDone  bool
}

// SummaryReport 整體勝負統計
type SummaryReport struct {
	Seed      int64   `json:"Seed"      yaml:"Seed"`
	Workers   int     `json:"Workers"   yaml:"Workers"`
	Games     int     `json:"Games"     yaml:"Games"`
	Wins      int     `json:"Wins"      yaml:"Wins"`
	Losses    int     `json:"Losses"    yaml:"Losses"`
	Naturals  int     `json:"Naturals"  yaml:"Naturals"`
	Craps     int     `json:"Craps"     yaml:"Craps"`
	Passes    int     `json:"Passes"    yaml:"Passes"`
	SevenOuts int     `json:"SevenOuts" yaml:"SevenOuts"`
	Odds      float64 `json:"Odds"      yaml:"Odds"`
	OddsCI    CI      `json:"OddsCI"    yaml:"OddsCI"`
	Expected  float64 `json:"Expected"  yaml:"Expected"` // 理論勝率
	ZScore    float64 `json:"ZScore"    yaml:"ZScore"`
	PValue    float64 `json:"PValue"    yaml:"PValue"`
}

// PointReport 單一 point 的建立與達成統計
type PointReport struct {
	Point       int     `json:"Point"       yaml:"Point"`
	Established int     `json:"Established" yaml:"Established"`
	Made        int     `json:"Made"        yaml:"Made"`
	MadeRate    float64 `json:"MadeRate"    yaml:"MadeRate"`
	MadeCI      CI      `json:"MadeCI"      yaml:"MadeCI"`
	Expected    float64 `json:"Expected"    yaml:"Expected"`
}

// RollReport 每局擲骰次數統計
//
// 紀錄時只累積 int；Done() 才換算平均與標準差
type RollReport struct {
	Total int     `json:"Total" yaml:"Total"`
	SqSum int     `json:"SqSum" yaml:"SqSum"` // 平方和
	Max   int     `json:"Max"   yaml:"Max"`
	Mean  float64 `json:"Mean"  yaml:"Mean"`
	Std   float64 `json:"Std"   yaml:"Std"`
}

// ============================================================
// ** 公開方法 **
// ============================================================

// Done 將累積計數轉換為最終統計結果並鎖定 isDone 標記。
//
// 重複呼叫不會重算。
func (r *OddsReport) Done() {
	if r.isDone {
		return
	}
	s := r.Summary
	s.Losses = s.Games - s.Wins
	s.Odds, s.OddsCI = ProportionCI(s.Wins, s.Games, Confidence)
	s.ZScore, s.PValue = ZTest(s.Wins, s.Games, s.Expected)

	for i := range r.Points {
		p := &r.Points[i]
		p.MadeRate, p.MadeCI = ProportionCI(p.Made, p.Established, Confidence)
	}

	r.Rolls.Mean, r.Rolls.Std = meanStd(r.Rolls.Total, r.Rolls.SqSum, s.Games)
	r.isDone = true
}

// Legacy 以三行的精簡格式輸出局數、勝場與勝率
func (r *OddsReport) Legacy(w io.Writer) error {
	r.Done()
	s := r.Summary
	_, err := fmt.Fprintf(w, "\nOut of %d games:\n\tWins: %d\n\tOdds: %s\n",
		s.Games, s.Wins, strconv.FormatFloat(s.Odds, 'g', -1, 64))
	return err
}

// StdOut 輸出用時與報表表格
func (r *OddsReport) StdOut(w io.Writer, ut time.Duration) error {
	r.Done()
	if _, err := io.WriteString(w, formatDuration(ut, r.Summary.Games)); err != nil {
		return err
	}
	sk, sm := r.fmtBasic()
	if _, err := fmt.Fprintln(w, fmtTable("Craps Odds", sk, sm)); err != nil {
		return err
	}
	pk, pm := r.fmtPoints()
	_, err := fmt.Fprintln(w, fmtTable("Point Phase", pk, pm))
	return err
}

func (r *OddsReport) WriteWith(w io.Writer, rep ReportRender) error {
	r.Done()
	return rep.Write(w, r)
}

// ============================================================
// ** 內部方法 **
// ============================================================

func meanStd(total, sqSum, n int) (float64, float64) {
	if n == 0 {
		return 0, 0
	}
	fn := float64(n)
	mean := float64(total) / fn
	if n < 2 {
		return mean, 0
	}
	variance := (float64(sqSum) - float64(total)*float64(total)/fn) / (fn - 1)
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

func formatDuration(d time.Duration, games int) string {
	p := message.NewPrinter(lang)
	if d < 0 {
		d = -d
	}
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	gps := int(float64(games) / sec)
	if sec < 60.0 {
		return p.Sprintf("used: %.2f seconds\ngps : %d games/sec\n", sec, gps)
	}
	s := int(d.Seconds()) % 60
	m := int(d.Minutes()) % 60
	h := int(d.Hours())
	if h == 0 {
		return p.Sprintf("used: %dm %ds\ngps : %d games/sec\n", m, s, gps)
	}
	return p.Sprintf("used: %dh:%dm:%ds\ngps : %d games/sec\n", h, m, s, gps)
}

func (r *OddsReport) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	s := r.Summary
	basic := map[string]string{
		"Seed":         fmt.Sprintf("%d", s.Seed),
		"Workers":      p.Sprintf("%d", s.Workers),
		"Games":        p.Sprintf("%d", s.Games),
		"Wins":         p.Sprintf("%d", s.Wins),
		"Losses":       p.Sprintf("%d", s.Losses),
		"Naturals":     p.Sprintf("%d", s.Naturals),
		"Craps":        p.Sprintf("%d", s.Craps),
		"Passes":       p.Sprintf("%d", s.Passes),
		"Seven-Outs":   p.Sprintf("%d", s.SevenOuts),
		"Odds":         p.Sprintf("%.4f %%", 100.0*s.Odds),
		"Odds 95% CI":  p.Sprintf("[%.4f%%,%.4f%%]", 100.0*s.OddsCI.Lo, 100.0*s.OddsCI.Hi),
		"Expected":     p.Sprintf("%.4f %%", 100.0*s.Expected),
		"Z / p-value":  p.Sprintf("%.3f / %.4f", s.ZScore, s.PValue),
		"Rolls / Game": p.Sprintf("%.3f (std %.3f)", r.Rolls.Mean, r.Rolls.Std),
		"Longest Game": p.Sprintf("%d rolls", r.Rolls.Max),
		"Total Rolls":  p.Sprintf("%d", r.Rolls.Total),
	}
	keys := []string{"Seed", "Workers", "Games", "Wins", "Losses", "Naturals", "Craps", "Passes", "Seven-Outs",
		"Odds", "Odds 95% CI", "Expected", "Z / p-value", "Rolls / Game", "Longest Game", "Total Rolls"}
	return keys, basic
}

func (r *OddsReport) fmtPoints() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	keys := make([]string, 0, len(r.Points))
	msg := make(map[string]string, len(r.Points))
	for _, pt := range r.Points {
		k := fmt.Sprintf("Point %d", pt.Point)
		keys = append(keys, k)
		msg[k] = p.Sprintf("%d / %d made %.2f%% (exp %.2f%%)", pt.Made, pt.Established, 100.0*pt.MadeRate, 100.0*pt.Expected)
	}
	return keys, msg
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	// 標題比內容寬時撐開值欄
	if titleW := runewidth.StringWidth(title); titleW > maxKeyLen+maxValLen+1 {
		maxValLen = titleW - maxKeyLen - 1
	}

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	sb.WriteString(divider)
	for _, k := range keys {
		sb.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) +
			" | " + msg[k] + blank(maxValLen-2-runewidth.StringWidth(msg[k])) + " |\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
