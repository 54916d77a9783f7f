// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package hook

import "errors"

// ErrReentrantCall is returned when an operation targets an order key that
// is in the middle of another operation, typically a pool collaborator
// calling back into the ledger before settlement completed.
var ErrReentrantCall = errors.New("reentrant call on order key")

// guard is a key-scoped reentrancy lock. Operations mark the keys they
// touch for their whole duration, the host's serialised execution makes a
// mutex unnecessary but a collaborator callback runs on the same goroutine
// and would slip past one anyway.
type guard struct {
	busy map[string]struct{}
}

func newGuard() *guard {
	return &guard{
		busy: map[string]struct{}{},
	}
}

// enter marks the given key digests busy, failing without side effects if
// any of them already is.
func (g *guard) enter(ids ...string) error {
	for _, id := range ids {
		if _, ok := g.busy[id]; ok {
			return ErrReentrantCall
		}
	}
	for _, id := range ids {
		g.busy[id] = struct{}{}
	}
	return nil
}

// exit clears the given key digests.
func (g *guard) exit(ids ...string) {
	for _, id := range ids {
		delete(g.busy, id)
	}
}
