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

package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// lockedBuffer 讓背景 worker 寫入與測試讀取不產生 data race
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestParseMode(t *testing.T) {
	cases := map[string]LogMode{
		"ModeDev":     ModeDev,
		"prod":        ModeProd,
		"ModeSilence": ModeSilence,
		"":            ModeSilence,
	}
	for in, want := range cases {
		got, ok := ParseMode(in)
		if !ok || got != want {
			t.Fatalf("ParseMode(%q) = %v,%v want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseMode("verbose"); ok {
		t.Fatalf("expected unknown mode to fail")
	}
}

func TestAsyncDrainOnClose(t *testing.T) {
	var out lockedBuffer
	log, ah := NewAsync(64, ModeDev, &out)
	for i := 0; i < 10; i++ {
		log.Debug("odds.progress", slog.Int("i", i))
	}
	ah.Close()
	if got := strings.Count(out.String(), "odds.progress"); got != 10 {
		t.Fatalf("expected 10 drained records, got %d:\n%s", got, out.String())
	}

	// Close 之後的紀錄一律丟棄
	log.Info("late")
	if ah.Dropped() != 1 {
		t.Fatalf("expected 1 dropped record, got %d", ah.Dropped())
	}
	ah.Close() // idempotent
}

func TestProdModeFiltersDebug(t *testing.T) {
	var out lockedBuffer
	log, ah := NewAsync(8, ModeProd, &out)
	log.Debug("hidden")
	log.Info("shown", slog.Int64("seed", 7))
	ah.Close()
	s := out.String()
	if strings.Contains(s, "hidden") || !strings.Contains(s, `"seed":7`) {
		t.Fatalf("unexpected prod output: %s", s)
	}
}

func TestSilenceWritesNothing(t *testing.T) {
	var out lockedBuffer
	log, ah := NewAsync(8, ModeSilence, &out)
	log.Error("nope")
	ah.Close()
	if out.String() != "" {
		t.Fatalf("silence mode wrote: %q", out.String())
	}
}
