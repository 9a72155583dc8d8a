//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

import "fmt"

// ConfigError reports an invalid configuration value or a contradictory
// combination of settings caught at configuration time, before a search
// ever starts.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Msg)
}

// Validate checks the current Settings for known contradictions and
// out-of-range values. It never mutates Settings silently for values a
// caller explicitly set through setoption/config file - it reports them
// instead so the caller can decide.
func Validate() error {
	if Settings.Search.TTSize > 0 && Settings.Search.TTSize < 1 {
		return &ConfigError{Msg: "hash size must be at least 1 MB"}
	}
	if Settings.Search.UseMTDf && Settings.Search.UsePVS {
		return &ConfigError{Msg: "MTD(f) and PVS cannot be enabled simultaneously"}
	}
	return nil
}
