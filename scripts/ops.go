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

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// 開發用任務：
//
//	go run ./scripts test      # 只顯示 ok / FAIL 行
//	go run ./scripts cover     # 全部套件 + coverage
//	go run ./scripts profile   # 以 CPU profile 跑一次大量 odds
func main() {
	if len(os.Args) < 2 {
		printColor(colorYellow, "Usage: go run ./scripts [test|cover|profile]")
		os.Exit(1)
	}
	var err error
	switch task := os.Args[1]; task {
	case "test":
		printColor(colorGreen, "running tests")
		err = filtered("go", "test", "./...", "-cover", "-count=1")
	case "cover":
		printColor(colorGreen, "running tests (all with coverage)")
		err = passthrough("go", "test", "./...", "-cover", "-count=1")
	case "profile":
		printColor(colorGreen, "profiling odds -> build/profiling/cpu.pprof")
		err = passthrough("go", "run", "./cmd/craps", "-p", "cpu", "-worker", "4", "-pb", "odds", "10000000")
	default:
		printColor(colorYellow, fmt.Sprintf("Unknown task: %s", task))
		os.Exit(1)
	}
	if err != nil {
		printColor(colorRed, fmt.Sprintf("\n%s finished with errors: %v", os.Args[1], err))
		os.Exit(1)
	}
}

func passthrough(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// filtered 只印出 ok / FAIL 與建置失敗的行（等同 grep -E '^(ok|FAIL)'）
func filtered(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout // 2>&1
	if err := cmd.Start(); err != nil {
		return err
	}

	sc := bufio.NewScanner(pipe)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "ok"):
			printColor(colorGreen, line)
		case strings.HasPrefix(line, "FAIL"),
			strings.Contains(line, "build failed"),
			strings.Contains(line, "setup failed"):
			printColor(colorRed, line)
		}
	}
	return cmd.Wait()
}

type ansiColor string

const (
	colorYellow ansiColor = "\033[33m"
	colorGreen  ansiColor = "\033[32m"
	colorRed    ansiColor = "\033[31m"
	colorReset            = "\033[0m"
)

func printColor(c ansiColor, msg string) {
	fmt.Printf("%s%s%s\n", c, msg, colorReset)
}
