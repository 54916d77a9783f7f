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

package ledger

import (
	"sort"

	"github.com/tickbook/tickbook/core/types"
)

// Table is the order arena. All order slots live in a single mapping from
// the composite-key digest to the record, rather than nested pool -> tick ->
// direction maps, so ownership and iteration stay straightforward. Slots are
// never removed, a slot at zero balances is dormant.
type Table struct {
	orders map[string]*types.Order
}

// NewTable returns an empty order arena.
func NewTable() *Table {
	return &Table{
		orders: map[string]*types.Order{},
	}
}

// Get returns the order slot for the given key if it was ever deposited into.
func (t *Table) Get(key types.OrderKey) (*types.Order, bool) {
	o, ok := t.orders[key.ID()]
	return o, ok
}

// GetByID returns the order slot for a composite-key digest.
func (t *Table) GetByID(id string) (*types.Order, bool) {
	o, ok := t.orders[id]
	return o, ok
}

// GetOrCreate returns the slot for the key, creating a dormant one on first
// use. The caller flips Exists on first deposit.
func (t *Table) GetOrCreate(key types.OrderKey) *types.Order {
	id := key.ID()
	if o, ok := t.orders[id]; ok {
		return o
	}
	o := types.NewOrder()
	t.orders[id] = o
	return o
}

// Len returns the number of slots ever created.
func (t *Table) Len() int {
	return len(t.orders)
}

// IDs returns the digests of all slots, sorted for deterministic iteration.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.orders))
	for id := range t.orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
