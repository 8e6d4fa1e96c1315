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

// Package perf 包裝 runtime/pprof，讓 odds 模擬可以選擇性地輸出 profile。
package perf

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/zintix-labs/crapslab/errs"
)

const DefaultDir = "build/profiling" // pprof檔案寫入路徑

// ValidMode 回報 mode 是否為支援的 profile 種類
func ValidMode(mode string) bool {
	switch mode {
	case "", "cpu", "heap", "allocs":
		return true
	default:
		return false
	}
}

// RunPProf 依 mode 決定執行哪種 Profiling；mode 為空時直接執行 exe。
// exe 的錯誤原樣回傳；profile 本身的 I/O 錯誤包成 Fatal。
func RunPProf(exe func() error, mode string, dir string) error {
	if !ValidMode(mode) {
		return errs.InvalidArgf("pprof mode %q (want '', cpu, heap, allocs)", mode)
	}
	if dir == "" {
		dir = DefaultDir
	}
	switch mode {
	case "cpu":
		return PProfCPU(exe, dir)
	case "heap":
		return PProfHeap(exe, dir)
	case "allocs":
		return PProfAllocs(exe, dir)
	default:
		return exe()
	}
}

// PProfCPU 在 exe 執行期間開啟 CPU profiling
//
// 可以作性能分析，也可以拿來做構建時給pgo的優化blueprint
//
// Usage like:
//
//	go run ./cmd/craps -p cpu odds 10000000
func PProfCPU(exe func() error, dir string) error {
	f, err := create(dir, "cpu.pprof")
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return errs.Wrap(err, "failed to start pprof")
	}
	defer pprof.StopCPUProfile()

	return exe()
}

// PProfHeap 會在 exe() 執行完後，寫出一次 Heap Snapshot（in-use memory）。
// 寫出前先呼叫 runtime.GC()，以獲得較準確的 Live Objects 視圖。
func PProfHeap(exe func() error, dir string) error {
	if err := exe(); err != nil {
		return err
	}
	runtime.GC()

	f, err := create(dir, "heap.pprof")
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return errs.Wrap(err, "failed to write heap profile")
	}
	return nil
}

// PProfAllocs 會在 exe() 後寫出「累積配置」(allocs) Profile，
// 需要搭配 -alloc_space / -alloc_objects 查看。
func PProfAllocs(exe func() error, dir string) error {
	if err := exe(); err != nil {
		return err
	}

	f, err := create(dir, "allocs.pprof")
	if err != nil {
		return err
	}
	defer f.Close()

	if prof := pprof.Lookup("allocs"); prof != nil {
		if err := prof.WriteTo(f, 0); err != nil {
			return errs.Wrap(err, "failed to write allocs profile")
		}
	}
	return nil
}

func create(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create profiling dir")
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, errs.WrapWithExtra(err, "failed to create profile", name)
	}
	return f, nil
}
