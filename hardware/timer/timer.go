// This file is part of Gopherdmg.
//
// Gopherdmg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdmg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdmg.  If not, see <https://www.gnu.org/licenses/>.

package timer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/logger"
)

// Sentinel errors returned by the timer.
var (
	ErrZeroPeriod        = errors.New("timer: period must be positive")
	ErrDuplicatePeriod   = errors.New("timer: period already registered")
	ErrUnknownPeriod     = errors.New("timer: period not registered")
	ErrEmptySequence     = errors.New("timer: sequence has no phases")
	ErrInvalidPhase      = errors.New("timer: phase length must be positive")
	ErrDuplicateSequence = errors.New("timer: sequence already registered")
	ErrUnknownSequence   = errors.New("timer: sequence not registered")
)

// Ticker is the state of a periodic counter.
type Ticker struct {
	Period int

	// cycles accumulated towards the next firing. one period is subtracted
	// each time the ticker fires so the value can exceed the period after a
	// large advance, in which case the ticker fires again on the next advance
	Accumulated int

	// sticky. cleared by DidFire()
	Fired bool
}

func (tck Ticker) String() string {
	fired := "-"
	if tck.Fired {
		fired = "F"
	}
	return fmt.Sprintf("%d:%d/%s", tck.Period, tck.Accumulated, fired)
}

// Sequencer is the state of a multi-phase cyclic counter.
type Sequencer struct {
	Name   string
	Phases []int

	// index into Phases
	Phase int

	// cycles elapsed in the current phase
	Offset int
}

func (seq Sequencer) String() string {
	return fmt.Sprintf("%s:%d+%d", seq.Name, seq.Phase, seq.Offset)
}

// Timer tracks all registered tickers and sequencers. It implements the
// memory.Timer interface.
type Timer struct {
	// registration order is iteration order. the maps index into the slices
	tickers    []Ticker
	tickerIdx  map[int]int
	sequencers []Sequencer
	seqIdx     map[string]int

	// total number of cycles since the timer was created
	Cycles uint64
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{
		tickerIdx: make(map[int]int),
		seqIdx:    make(map[string]int),
	}
}

func (tmr *Timer) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("cycles=%d", tmr.Cycles))
	for _, t := range tmr.tickers {
		s.WriteString(" ")
		s.WriteString(t.String())
	}
	for _, q := range tmr.sequencers {
		s.WriteString(" ")
		s.WriteString(q.String())
	}
	return s.String()
}

// RegisterPeriodic adds a ticker that fires every period cycles.
func (tmr *Timer) RegisterPeriodic(period int) error {
	if period <= 0 {
		return fmt.Errorf("%w: %d", ErrZeroPeriod, period)
	}
	if _, ok := tmr.tickerIdx[period]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicatePeriod, period)
	}
	tmr.tickerIdx[period] = len(tmr.tickers)
	tmr.tickers = append(tmr.tickers, Ticker{Period: period})
	logger.Logf(logger.Allow, "timer", "registered ticker with period %d", period)
	return nil
}

// DidFire returns true if the ticker for period has fired since the last call
// to DidFire(). The fired state is cleared.
func (tmr *Timer) DidFire(period int) (bool, error) {
	i, ok := tmr.tickerIdx[period]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownPeriod, period)
	}
	fired := tmr.tickers[i].Fired
	tmr.tickers[i].Fired = false
	return fired, nil
}

// RegisterSequence adds a sequencer with the named phases. The phase lengths
// are copied.
func (tmr *Timer) RegisterSequence(name string, phases []int) error {
	if len(phases) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySequence, name)
	}
	for i, p := range phases {
		if p <= 0 {
			return fmt.Errorf("%w: %s phase %d is %d", ErrInvalidPhase, name, i, p)
		}
	}
	if _, ok := tmr.seqIdx[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSequence, name)
	}
	tmr.seqIdx[name] = len(tmr.sequencers)
	tmr.sequencers = append(tmr.sequencers, Sequencer{
		Name:   name,
		Phases: append([]int(nil), phases...),
	})
	logger.Logf(logger.Allow, "timer", "registered sequence %s with %d phases", name, len(phases))
	return nil
}

// CurrentPhase returns the index of the current phase of the named sequencer.
func (tmr *Timer) CurrentPhase(name string) (int, error) {
	i, ok := tmr.seqIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSequence, name)
	}
	return tmr.sequencers[i].Phase, nil
}

// Advance all tickers and sequencers by the number of cycles.
func (tmr *Timer) Advance(cycles int) {
	if cycles <= 0 {
		return
	}

	tmr.Cycles += uint64(cycles)

	for i := range tmr.tickers {
		t := &tmr.tickers[i]
		t.Accumulated += cycles
		if t.Accumulated >= t.Period {
			t.Accumulated -= t.Period
			t.Fired = true
		}
	}

	for i := range tmr.sequencers {
		q := &tmr.sequencers[i]
		q.Offset += cycles
		for q.Offset >= q.Phases[q.Phase] {
			q.Offset -= q.Phases[q.Phase]
			q.Phase = (q.Phase + 1) % len(q.Phases)
		}
	}
}

// Tickers returns a copy of the state of every ticker in registration order.
func (tmr *Timer) Tickers() []Ticker {
	return append([]Ticker(nil), tmr.tickers...)
}

// Sequencers returns a copy of the state of every sequencer in registration
// order.
func (tmr *Timer) Sequencers() []Sequencer {
	s := make([]Sequencer, len(tmr.sequencers))
	for i, q := range tmr.sequencers {
		s[i] = q
		s[i].Phases = append([]int(nil), q.Phases...)
	}
	return s
}
