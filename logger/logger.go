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

// Package logger 組裝 CLI 使用的 *slog.Logger。
//
// 牌桌旁白與報表走 stdout（由 craps.Narrator / stats 輸出），不是 log；
// 這裡的 logger 只記錄運行資訊（模式、種子、局數、用時），一律寫到 stderr，避免污染 stdout 的 JSON/YAML 報表。
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// enum LogMode
type LogMode uint8

const (
	ModeDev LogMode = iota
	ModeProd
	ModeSilence
)

// ParseMode 解析 -log-mode 旗標；不認得的值回傳 ok=false
func ParseMode(s string) (LogMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modedev", "dev":
		return ModeDev, true
	case "modeprod", "prod":
		return ModeProd, true
	case "modesilence", "silence", "":
		return ModeSilence, true
	default:
		return ModeSilence, false
	}
}

// NewAsync builds a *slog.Logger using LogMode defaults written to w, then wraps its handler with AsyncHandler.
//
// 呼叫端必須在結束前呼叫 AsyncHandler.Close，才能確保緩衝中的紀錄寫出。
func NewAsync(buf int, mode LogMode, w io.Writer) (*slog.Logger, *AsyncHandler) {
	if w == nil {
		w = os.Stderr
	}
	ah := NewAsyncHandler(buildHandler(mode, w), buf)
	return slog.New(ah), ah
}

// AsyncHandler 是一個 slog.Handler wrapper：
//   - Handle 只做 enqueue（channel），不阻塞呼叫端
//   - 背景 goroutine 逐筆呼叫 next.Handle(...) 寫出
//   - channel 滿時丟棄（drop），丟棄數可由 Dropped 取得
//
// 注意：slog.Logger 會忽略 Handler.Handle 回傳的 error。
type AsyncHandler struct {
	next slog.Handler
	d    *asyncDispatcher
}

type asyncDispatcher struct {
	ch     chan asyncItem
	closed chan struct{}
	once   sync.Once
	wg     sync.WaitGroup

	dropCount atomic.Uint64
}

type asyncItem struct {
	ctx     context.Context
	rec     slog.Record
	handler slog.Handler
}

// NewAsyncHandler wraps next with an async dispatcher.
func NewAsyncHandler(next slog.Handler, buf int) *AsyncHandler {
	if next == nil {
		next = buildHandler(ModeDev, os.Stderr)
	}
	if buf <= 0 {
		buf = 1024
	}

	d := &asyncDispatcher{
		ch:     make(chan asyncItem, buf),
		closed: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.worker()

	return &AsyncHandler{next: next, d: d}
}

func (h *AsyncHandler) Ready() bool {
	return h != nil && h.d != nil
}

// Dropped returns number of dropped log records due to a full buffer or a closed handler.
func (h *AsyncHandler) Dropped() uint64 {
	if !h.Ready() {
		return 0
	}
	return h.d.dropCount.Load()
}

// Close stops the dispatcher and drains buffered logs.
func (h *AsyncHandler) Close() {
	if !h.Ready() {
		return
	}
	h.d.once.Do(func() { close(h.d.closed) })
	h.d.wg.Wait()
}

func (d *asyncDispatcher) worker() {
	defer d.wg.Done()

	// 收到 closed 後會 drain 直到 channel 空
	for {
		select {
		case it := <-d.ch:
			_ = it.handler.Handle(it.ctx, it.rec)
		case <-d.closed:
			for {
				select {
				case it := <-d.ch:
					_ = it.handler.Handle(it.ctx, it.rec)
				default:
					return
				}
			}
		}
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Ready() {
		return nil
	}

	select {
	case <-h.d.closed:
		h.d.dropCount.Add(1)
		return nil
	default:
	}

	// r.Clone() 複製 attributes，跨 goroutine 使用 Record 必須如此
	it := asyncItem{ctx: ctx, rec: r.Clone(), handler: h.next}

	select {
	case h.d.ch <- it:
		return nil
	default:
		h.d.dropCount.Add(1)
		return nil
	}
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), d: h.d}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), d: h.d}
}

func buildHandler(logmode LogMode, w io.Writer) slog.Handler {
	switch logmode {
	case ModeDev:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	case ModeProd:
		// JSON，給 log 收集器
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	default:
		return slog.NewTextHandler(io.Discard, nil)
	}
}
