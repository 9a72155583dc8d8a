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

// Package timecontrol converts a client's time-control description into a
// soft and hard wall-clock deadline and supports multiplicative extensions.
// It holds no reference to the search or position packages - it is a pure
// deadline calculator the search orchestrator polls and feeds.
package timecontrol

import "time"

// safetyMargin is reserved off the reported remaining time to leave room
// for communication and bookkeeping overhead around the actual search.
const safetyMargin = 1000 * time.Millisecond

// defaultMovesLeft is used when the client does not report a moves-to-go
// count (e.g. no 40-move time control in effect).
const defaultMovesLeft = 40

// emergencyThreshold marks a hard deadline so small that the final
// computed limit gets shrunk further as an emergency margin.
const emergencyThreshold = 100 * time.Millisecond

// Controller computes and tracks the soft/hard deadlines for one search.
type Controller struct {
	hard        time.Duration
	soft        time.Duration
	extraTime   time.Duration
	fixedBudget bool // true for a fixed per-move time budget: extensions never apply
}

// NewFixedMoveTime returns a Controller for a fixed per-move time budget
// (UCI "movetime"). Soft and hard deadlines are identical and extensions
// have no effect.
func NewFixedMoveTime(moveTime time.Duration) *Controller {
	return &Controller{hard: moveTime, soft: moveTime, fixedBudget: true}
}

// NewFromRemaining derives soft/hard deadlines from the remaining time and
// increment for the side to move plus an optional moves-to-go count (0 if
// the client did not supply one).
func NewFromRemaining(remaining time.Duration, increment time.Duration, movesToGo int) *Controller {
	timeLeft := remaining - safetyMargin
	if timeLeft < 0 {
		timeLeft = 0
	}
	movesLeft := movesToGo
	if movesLeft <= 0 {
		movesLeft = defaultMovesLeft
	}
	hard := (timeLeft + time.Duration(defaultMovesLeft)*increment) / time.Duration(movesLeft)
	if hard < emergencyThreshold {
		hard = time.Duration(float64(hard) * 0.9)
	}
	soft := time.Duration(float64(hard) * 0.8)
	return &Controller{hard: hard, soft: soft}
}

// Hard returns the current hard deadline, not including extra time.
func (c *Controller) Hard() time.Duration {
	return c.hard
}

// Soft returns the current soft deadline, not including extra time.
func (c *Controller) Soft() time.Duration {
	return c.soft
}

// ExtraTime returns the extra time accumulated so far via AddExtraTime.
func (c *Controller) ExtraTime() time.Duration {
	return c.extraTime
}

// AddExtraTime accumulates factor-1 of the hard deadline into the extra
// time budget. factor==1.0 is a no-op, >1.0 extends, <1.0 shrinks. Has no
// effect on a fixed per-move budget.
func (c *Controller) AddExtraTime(factor float64) {
	if c.fixedBudget {
		return
	}
	c.extraTime += time.Duration(float64(c.hard) * (factor - 1.0))
}

// SoftReached reports whether elapsed has passed the soft deadline. Used
// at iteration boundaries to decide whether starting another iterative
// deepening pass is still worthwhile.
func (c *Controller) SoftReached(elapsed time.Duration) bool {
	return elapsed >= c.soft+time.Duration(float64(c.extraTime)*0.8)
}

// HardReached reports whether elapsed has passed the hard deadline. Used
// inside the search to stop mid-iteration.
func (c *Controller) HardReached(elapsed time.Duration) bool {
	return elapsed >= c.hard+c.extraTime
}
