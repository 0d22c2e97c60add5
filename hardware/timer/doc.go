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

// Package timer accounts for elapsed CPU cycles. It does not emulate a
// particular hardware timer. Instead, other components register the events
// they are interested in and query the timer after each instruction.
//
// A ticker fires every time a fixed number of cycles has elapsed. The fired
// state is sticky and is cleared when read with DidFire(). Tickers keep any
// excess cycles so that a ticker never drifts, even when instructions overrun
// the period.
//
// A sequencer cycles through a list of phases, each phase lasting a number of
// cycles. The current phase is read with CurrentPhase(). After the last phase
// the sequencer returns to the first.
//
// Tickers and sequencers are advanced in the order in which they were
// registered.
package timer
