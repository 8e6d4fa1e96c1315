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
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/zintix-labs/crapslab"
	"github.com/zintix-labs/crapslab/errs"
	"github.com/zintix-labs/crapslab/logger"
	"github.com/zintix-labs/crapslab/sdk/core"
	"github.com/zintix-labs/crapslab/sdk/perf"
	"github.com/zintix-labs/crapslab/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	exitOK    = 0
	exitErr   = 1 // 執行期錯誤
	exitUsage = 2 // 參數錯誤
)

type config struct {
	seed      int64
	worker    int
	format    string
	showpb    bool
	logmode   string
	pprofmode string

	mode logger.LogMode
}

// command 為位置參數解析後的子命令
type command struct {
	name  string // "", "test", "odds"
	games int    // 只有 odds 使用
}

func bindVar(fs *flag.FlagSet, cfg *config) {
	// 綁定 Flag 到本地變數的指標 (&)
	fs.Int64Var(&cfg.seed, "seed", -1, "int64 seed for random number generator (< 1 means random)")
	fs.IntVar(&cfg.worker, "worker", 1, "number of workers for odds")
	fs.StringVar(&cfg.format, "format", "text", "odds report format: text, json, yaml")
	fs.BoolVar(&cfg.showpb, "pb", false, "show progress bar for odds")
	fs.StringVar(&cfg.logmode, "log-mode", "ModeSilence", "log mode: ModeDev, ModeProd, ModeSilence")
	fs.StringVar(&cfg.pprofmode, "p", "", "pprof for odds: '', cpu, heap, allocs")
}

func (cfg *config) valid() error {
	// 工作協程檢查(併發數)
	if cfg.worker < 1 {
		return errs.InvalidArgf("workers must > 0, got %d", cfg.worker)
	}
	switch cfg.format {
	case "text", "json", "yaml":
	default:
		return errs.InvalidArgf("format %q (want text, json, yaml)", cfg.format)
	}
	mode, ok := logger.ParseMode(cfg.logmode)
	if !ok {
		return errs.InvalidArgf("log mode %q (want ModeDev, ModeProd, ModeSilence)", cfg.logmode)
	}
	cfg.mode = mode
	if !perf.ValidMode(cfg.pprofmode) {
		return errs.InvalidArgf("pprof mode %q (want '', cpu, heap, allocs)", cfg.pprofmode)
	}
	return nil
}

// parseArgs 解析旗標與位置參數。旗標必須在子命令之前。
func parseArgs(args []string, stderr io.Writer) (*config, command, error) {
	cfg := new(config)
	fs := flag.NewFlagSet("craps", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: craps [flags] [test | odds [N]]")
		fs.PrintDefaults()
	}
	bindVar(fs, cfg)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, command{}, err
		}
		return nil, command{}, errs.InvalidArgf("%v", err)
	}
	if err := cfg.valid(); err != nil {
		return nil, command{}, err
	}
	cmd, err := parseCommand(fs.Args())
	if err != nil {
		return nil, command{}, err
	}
	return cfg, cmd, nil
}

func parseCommand(rest []string) (command, error) {
	if len(rest) == 0 {
		return command{}, nil
	}
	switch rest[0] {
	case "test":
		if len(rest) > 1 {
			return command{}, errs.InvalidArgf("test takes no arguments, got %q", rest[1:])
		}
		return command{name: "test"}, nil
	case "odds":
		cmd := command{name: "odds", games: crapslab.DefaultOddsGames}
		switch len(rest) {
		case 1:
		case 2:
			n, err := strconv.Atoi(rest[1])
			if err != nil {
				return command{}, errs.InvalidArgf("number of games %q is not an integer", rest[1])
			}
			// N <= 0 交給模擬器回報 Degenerate-Input
			cmd.games = n
		default:
			return command{}, errs.InvalidArgf("odds takes at most one argument, got %q", rest[1:])
		}
		return cmd, nil
	default:
		return command{}, errs.UnknownCommandf("%q (want test or odds)", rest[0])
	}
}

// run 是 CLI 的實際入口，回傳 exit code；main 以 os.Exit(run(...)) 呼叫，確保 defer 都會執行
func run(args []string, stdout, stderr io.Writer) int {
	cfg, cmd, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return report(stderr, err, nil)
	}

	log, ah := logger.NewAsync(256, cfg.mode, stderr)
	defer ah.Close()

	// given seed illeagel -> random seed
	if cfg.seed < 1 {
		seed, err := core.NewSeed()
		if err != nil {
			return report(stderr, err, ah)
		}
		cfg.seed = seed
	}
	sim, err := crapslab.NewSimulatorWithSeed(core.Default(), cfg.seed)
	if err != nil {
		return report(stderr, err, ah)
	}
	log.Info("craps.start",
		slog.String("cmd", cmdName(cmd)),
		slog.Int64("seed", cfg.seed),
		slog.Int("worker", cfg.worker),
		slog.String("format", cfg.format),
	)

	switch cmd.name {
	case "":
		win := sim.PlayOne(stdout)
		log.Debug("craps.game", slog.Bool("win", win))
	case "test":
		n := sim.Shooter(stdout)
		log.Debug("craps.test", slog.Int("games", n))
	case "odds":
		exe := func() error { return runOdds(sim, cfg, cmd.games, stdout, log) }
		if err := perf.RunPProf(exe, cfg.pprofmode, perf.DefaultDir); err != nil {
			return report(stderr, err, ah)
		}
	}
	return exitOK
}

func runOdds(sim *crapslab.Simulator, cfg *config, games int, stdout io.Writer, log *slog.Logger) error {
	if cfg.format == "text" && games > 0 {
		green, reset := "", ""
		if isTerminal(stdout) { // 導向檔案或 pipe 時不輸出 ANSI 色碼
			green, reset = "\033[1;32m", "\033[0m"
		}
		p := message.NewPrinter(language.English)
		p.Fprintf(stdout, "%s[WORKERS:%d] [GAMES:%d] [SEED:%d]%s\n", green, min(cfg.worker, games), games, cfg.seed, reset)
	}

	rep, used, err := sim.OddsMP(games, cfg.worker, cfg.showpb)
	if err != nil {
		return errs.Wrap(err, "odds")
	}
	log.Info("odds.done",
		slog.Int("games", rep.Summary.Games),
		slog.Int("wins", rep.Summary.Wins),
		slog.Float64("odds", rep.Summary.Odds),
		slog.Duration("elapsed", used),
	)

	switch cfg.format {
	case "json":
		return rep.WriteWith(stdout, &stats.JsonReportRender{})
	case "yaml":
		return rep.WriteWith(stdout, &stats.YAMLReportRender{})
	default:
		if err := rep.Legacy(stdout); err != nil {
			return err
		}
		return rep.StdOut(stdout, used)
	}
}

// report 把錯誤寫到 stderr 並換算 exit code。
// 先關閉 ah（排空非同步 log），stderr 上同一時間只會有一個寫入者。
func report(stderr io.Writer, err error, ah *logger.AsyncHandler) int {
	ah.Close()
	fmt.Fprintf(stderr, "craps: %v\n", err)
	if isUsage(err) {
		fmt.Fprintln(stderr, "run 'craps -h' for usage")
		return exitUsage
	}
	return exitErr
}

// 使用者輸入造成的錯誤一律視為 usage error
func isUsage(err error) bool {
	return errs.IsKind(err, errs.KindInvalidArgument) ||
		errs.IsKind(err, errs.KindUnknownCommand) ||
		errs.IsKind(err, errs.KindDegenerateInput)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func cmdName(c command) string {
	if c.name == "" {
		return "play"
	}
	return c.name
}
