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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zintix-labs/crapslab"
	"github.com/zintix-labs/crapslab/errs"
	"github.com/zintix-labs/crapslab/logger"
	"github.com/zintix-labs/crapslab/stats"
)

func runCLI(args ...string) (int, string, string) {
	var out, errb bytes.Buffer
	code := run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		args  []string
		want  command
		kind  errs.Kind
		isErr bool
	}{
		{args: nil, want: command{}},
		{args: []string{"test"}, want: command{name: "test"}},
		{args: []string{"odds"}, want: command{name: "odds", games: crapslab.DefaultOddsGames}},
		{args: []string{"odds", "250"}, want: command{name: "odds", games: 250}},
		{args: []string{"odds", "-3"}, want: command{name: "odds", games: -3}},
		{args: []string{"odds", "abc"}, isErr: true, kind: errs.KindInvalidArgument},
		{args: []string{"odds", "1", "2"}, isErr: true, kind: errs.KindInvalidArgument},
		{args: []string{"test", "x"}, isErr: true, kind: errs.KindInvalidArgument},
		{args: []string{"roll"}, isErr: true, kind: errs.KindUnknownCommand},
	}
	for _, c := range cases {
		got, err := parseCommand(c.args)
		if c.isErr {
			require.Error(t, err, "%v", c.args)
			assert.True(t, errs.IsKind(err, c.kind), "%v: %v", c.args, err)
			continue
		}
		require.NoError(t, err, "%v", c.args)
		assert.Equal(t, c.want, got, "%v", c.args)
	}
}

func TestParseArgsFlags(t *testing.T) {
	var errb bytes.Buffer
	cfg, cmd, err := parseArgs([]string{"-seed", "9", "-worker", "3", "-format", "yaml", "-log-mode", "ModeDev", "odds", "10"}, &errb)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.seed)
	assert.Equal(t, 3, cfg.worker)
	assert.Equal(t, "yaml", cfg.format)
	assert.Equal(t, logger.ModeDev, cfg.mode)
	assert.Equal(t, command{name: "odds", games: 10}, cmd)

	for _, bad := range [][]string{
		{"-format", "xml"},
		{"-worker", "0"},
		{"-log-mode", "loud"},
		{"-p", "trace"},
		{"-nope"},
	} {
		_, _, err := parseArgs(bad, &errb)
		assert.True(t, errs.IsKind(err, errs.KindInvalidArgument), "%v: %v", bad, err)
	}
}

func TestRunSingleGame(t *testing.T) {
	code, out, _ := runCLI("-seed", "7")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Phase I, the Come Out")
	assert.NotContains(t, out, "Welcome to the craps table.")
}

func TestRunTestLoop(t *testing.T) {
	code, out, _ := runCLI("-seed", "7", "test")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Welcome to the craps table.")
}

func TestRunOddsText(t *testing.T) {
	code, out, _ := runCLI("-seed", "11", "odds", "200")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "\nOut of 200 games:\n\tWins: ")
	assert.Contains(t, out, "Craps Odds")
}

func TestRunOddsJSONIsPureReport(t *testing.T) {
	code, out, _ := runCLI("-seed", "11", "-worker", "2", "-format", "json", "odds", "300")
	require.Equal(t, exitOK, code)

	var rep stats.OddsReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 300, rep.Summary.Games)
	assert.Equal(t, 2, rep.Summary.Workers)
	assert.Equal(t, int64(11), rep.Summary.Seed)
}

func TestRunSameSeedSameOdds(t *testing.T) {
	_, a, _ := runCLI("-seed", "5", "-format", "yaml", "odds", "400")
	_, b, _ := runCLI("-seed", "5", "-format", "yaml", "odds", "400")
	assert.Equal(t, a, b)
}

func TestRunExitCodes(t *testing.T) {
	cases := []struct {
		args []string
		code int
		msg  string
	}{
		{[]string{"odds", "abc"}, exitUsage, "invalid argument"},
		{[]string{"odds", "0"}, exitUsage, "degenerate input"},
		{[]string{"roll"}, exitUsage, "unknown command"},
		{[]string{"-h"}, exitOK, "usage: craps"},
	}
	for _, c := range cases {
		code, out, errOut := runCLI(c.args...)
		assert.Equal(t, c.code, code, "%v", c.args)
		assert.Contains(t, errOut, c.msg, "%v", c.args)
		assert.Empty(t, out, "%v", c.args)
	}
}

func TestRunLogsToStderr(t *testing.T) {
	code, out, errOut := runCLI("-seed", "3", "-log-mode", "ModeProd", "-format", "json", "odds", "20")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, `"msg":"odds.done"`)
	assert.NotContains(t, out, "odds.done")
}

func TestRunErrorAfterLogDrain(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, out, errOut := runCLI("-seed", "3", "-log-mode", "ModeDev", "odds", "0")
		require.Equal(t, exitUsage, code)
		assert.Empty(t, out)

		logAt := strings.Index(errOut, "craps.start")
		errAt := strings.Index(errOut, "craps: ")
		require.GreaterOrEqual(t, logAt, 0, errOut)
		require.GreaterOrEqual(t, errAt, 0, errOut)
		assert.Less(t, logAt, errAt, "log records must be flushed before the error line")
	}
}

func TestRunOddsBannerPlainWhenPiped(t *testing.T) {
	code, out, _ := runCLI("-seed", "2", "-worker", "2", "odds", "1500")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "[WORKERS:2] [GAMES:1,500] [SEED:2]\n")
	assert.NotContains(t, out, "\033[")
}
