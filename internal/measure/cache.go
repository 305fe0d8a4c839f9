/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package measure

import (
	"sync"

	"journalpage/internal/domain"
)

// Cache memoizes measurements keyed by (text, font). Each distinct string is
// measured once through the wrapped Measurer at the reference size; other
// sizes are derived by linear scaling, which is exact for a fixed font since
// glyph metrics scale linearly with size. Safe for concurrent use.
type Cache struct {
	next Measurer
	ref  float64

	mu     sync.Mutex
	widths map[cacheKey]float64
}

type cacheKey struct {
	text string
	id   domain.FontID
}

// NewCache wraps next with an in-memory width cache. referenceSize must be
// positive; it should match the layout engine's reference size so engine
// probes hit the cache directly.
func NewCache(next Measurer, referenceSize float64) *Cache {
	if referenceSize <= 0 {
		referenceSize = 100
	}
	return &Cache{next: next, ref: referenceSize, widths: make(map[cacheKey]float64)}
}

// Width implements Measurer.
func (c *Cache) Width(text string, id domain.FontID, size float64) float64 {
	key := cacheKey{text: text, id: id}
	c.mu.Lock()
	w, ok := c.widths[key]
	c.mu.Unlock()
	if !ok {
		w = c.next.Width(text, id, c.ref)
		c.mu.Lock()
		c.widths[key] = w
		c.mu.Unlock()
	}
	return w / c.ref * size
}

// Len reports the number of cached strings.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.widths)
}
