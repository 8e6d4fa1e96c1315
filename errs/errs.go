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

package errs

import (
	"errors"
	"fmt"
)

// ErrLevel : Error 分級，使最上層理解問題嚴重程度
type ErrLevel uint8

const (
	None ErrLevel = iota
	Fatal
	Warn
	Log
)

var errLvMap = map[ErrLevel]string{
	None:  "",
	Fatal: "fatal",
	Warn:  "warn",
	Log:   "log",
}

func ErrLv(errlv ErrLevel) string {
	if str, ok := errLvMap[errlv]; ok {
		return str
	}
	return ""
}

// Kind : 錯誤類別，讓 CLI 邊界決定提示訊息與 exit code
type Kind uint8

const (
	KindNone            Kind = iota
	KindInvalidArgument      // 參數無法解析（例如 odds 局數不是整數）
	KindDegenerateInput      // 參數可解析但無意義（例如 odds 局數 <= 0）
	KindUnknownCommand       // 不認得的子命令
)

var kindMap = map[Kind]string{
	KindNone:            "",
	KindInvalidArgument: "invalid argument",
	KindDegenerateInput: "degenerate input",
	KindUnknownCommand:  "unknown command",
}

func (k Kind) String() string {
	return kindMap[k]
}

// E 是統一的錯誤型別。
// Message 為主訊息；Extra 為呼叫端可追加的額外上下文；
// Cause 可串接下層錯誤（wrap）；Kind 為錯誤類別。
type E struct {
	Message string
	Extra   string
	Cause   error
	ErrLv   ErrLevel
	Kind    Kind
}

// Error 實作 error 介面並回傳格式化後的錯誤訊息。
func (e *E) Error() string {
	base := e.Message
	if e.Kind != KindNone {
		base = e.Kind.String() + ": " + base
	}
	if e.Extra != "" {
		base += " | extra: " + e.Extra
	}
	if e.Cause != nil {
		base += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return base
}

// Unwrap 讓 errors.Is / errors.As 能夠向下展開。
func (e *E) Unwrap() error { return e.Cause }

// New 依錯誤等級與訊息建立錯誤
func New(errLv ErrLevel, msg string) *E {
	return &E{Message: msg, ErrLv: errLv}
}

func NewFatal(msg string) *E {
	return &E{Message: msg, ErrLv: Fatal}
}

func NewWarn(msg string) *E {
	return &E{Message: msg, ErrLv: Warn}
}

func Warnf(format string, a ...any) *E {
	return NewWarn(fmt.Sprintf(format, a...))
}

// InvalidArgf 建立 Warn 等級的 Invalid-Argument 錯誤
func InvalidArgf(format string, a ...any) *E {
	e := Warnf(format, a...)
	e.Kind = KindInvalidArgument
	return e
}

// Degeneratef 建立 Warn 等級的 Degenerate-Input 錯誤
func Degeneratef(format string, a ...any) *E {
	e := Warnf(format, a...)
	e.Kind = KindDegenerateInput
	return e
}

// UnknownCommandf 建立 Warn 等級的 Unknown-Command 錯誤
func UnknownCommandf(format string, a ...any) *E {
	e := Warnf(format, a...)
	e.Kind = KindUnknownCommand
	return e
}

// Wrap 使用給定的訊息包裝底層錯誤，建立一個 *E。
//
// ErrLevel / Kind 規則：
//   - 若 cause 已經是 *E，則沿用其 ErrLv 與 Kind。
//   - 若 cause 不是本包定義的 *E（多半是標準庫或三方依賴錯誤），則 ErrLv 一律視為 Fatal。
func Wrap(cause error, msg string) *E {
	errLv := Fatal
	kind := KindNone
	if e, ok := AsErr(cause); ok {
		errLv = e.ErrLv
		kind = e.Kind
	}
	r := New(errLv, msg)
	r.Kind = kind
	r.Cause = cause
	return r
}

// WrapWithExtra 與 Wrap 相同，但可附加額外上下文字串。
func WrapWithExtra(cause error, msg string, extra string) *E {
	r := Wrap(cause, msg)
	r.Extra = extra
	return r
}

func AsErr(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return e, false
}

// IsKind 回報錯誤鏈上是否存在指定類別的 *E
func IsKind(err error, k Kind) bool {
	for err != nil {
		e, ok := AsErr(err)
		if !ok {
			return false
		}
		if e.Kind == k {
			return true
		}
		err = e.Cause
	}
	return false
}
