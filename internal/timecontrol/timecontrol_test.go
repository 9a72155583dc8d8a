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

package timecontrol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFixedMoveTime(t *testing.T) {
	c := NewFixedMoveTime(500 * time.Millisecond)
	assert.EqualValues(t, 500, c.Hard().Milliseconds())
	assert.EqualValues(t, 500, c.Soft().Milliseconds())
	// extensions never apply to a fixed per-move budget
	c.AddExtraTime(2.0)
	assert.EqualValues(t, 0, c.ExtraTime().Milliseconds())
}

func TestNewFromRemaining(t *testing.T) {
	c := NewFromRemaining(60*time.Second, 2*time.Second, 20)
	assert.EqualValues(t, 6950, c.Hard().Milliseconds())
	assert.EqualValues(t, 5560, c.Soft().Milliseconds())
}

func TestNewFromRemainingDefaultMovesToGo(t *testing.T) {
	c := NewFromRemaining(60*time.Second, 2*time.Second, 0)
	assert.EqualValues(t, 3475, c.Hard().Milliseconds())
}

func TestNewFromRemainingEmergencyShrink(t *testing.T) {
	// very little time left and many moves to go - hard deadline lands
	// below the emergency threshold and gets shrunk by another 10%.
	c := NewFromRemaining(1500*time.Millisecond, 0, 40)
	assert.Less(t, c.Hard().Milliseconds(), int64(100))
}

func TestAddExtraTime(t *testing.T) {
	c := NewFromRemaining(60*time.Second, 0, 40)
	hard := c.Hard()
	c.AddExtraTime(1.5)
	assert.EqualValues(t, hard/2, c.ExtraTime())
	assert.True(t, c.HardReached(hard+c.ExtraTime()))
	assert.False(t, c.HardReached(hard))
}

func TestSoftAndHardReached(t *testing.T) {
	c := NewFromRemaining(60*time.Second, 2*time.Second, 20)
	assert.False(t, c.SoftReached(0))
	assert.True(t, c.SoftReached(c.Soft()+time.Second))
	assert.False(t, c.HardReached(0))
	assert.True(t, c.HardReached(c.Hard()+time.Second))
}
