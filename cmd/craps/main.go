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

package main

import "os"

// craps CLI
//
// Usage like:
//
//	go run ./cmd/craps                        # 一局 verbose
//	go run ./cmd/craps test                   # 擲到交出骰子為止
//	go run ./cmd/craps -worker 4 odds 1000000 # 勝率模擬（局數需為整數）
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
