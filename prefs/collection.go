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

package prefs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Collection functions.
var (
	ErrDuplicateKey = errors.New("prefs: duplicate key")
	ErrUnknownKey   = errors.New("prefs: unknown key")
)

// Collection associates preference values with keys. The zero value is ready
// to use.
type Collection struct {
	keys   []string
	values map[string]Pref
}

// Add a preference value to the collection.
func (c *Collection) Add(key string, p Pref) error {
	if c.values == nil {
		c.values = make(map[string]Pref)
	}
	if _, ok := c.values[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	c.keys = append(c.keys, key)
	c.values[key] = p
	return nil
}

// Set the value for key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.values[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := p.Set(v); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	return nil
}

// Get the value for key.
func (c *Collection) Get(key string) (Value, error) {
	p, ok := c.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return p.Get(), nil
}

// Keys returns the keys in the order they were added.
func (c *Collection) Keys() []string {
	return append([]string(nil), c.keys...)
}

// ApplyCommandLine sets every value in the collection that has an entry in
// the current command line group. Entries are consumed as they are applied.
func (c *Collection) ApplyCommandLine() error {
	for _, k := range c.keys {
		if v, ok := GetCommandLinePref(k); ok {
			if err := c.Set(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Collection) String() string {
	s := strings.Builder{}
	for _, k := range c.keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, c.values[k]))
	}
	return s.String()
}
