/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"sort"

	"journalpage/internal/domain"
)

// Segments computes the ordered free horizontal spans on one baseline after
// subtracting obstacle overlaps.
//
// A line occupies an asymmetric vertical band around its baseline (text
// sits mostly above the baseline). Only obstacles intersecting that band and
// the writing width count. Candidate gaps keep ObstaclePadding of clearance
// from obstacle edges and are dropped entirely, not shrunk, when narrower
// than MinSegmentWidth; a mostly blocked line contributes no unusable
// sliver. An empty result tells the packer to skip this baseline.
func Segments(baselineY, lineHeight float64, obstacles []domain.Obstacle, geo domain.PageGeometry, tun Tunables) []domain.Segment {
	left := geo.LeftMargin
	right := geo.Width - geo.RightMargin
	bandTop := baselineY - tun.BandAbove*lineHeight
	bandBottom := baselineY + tun.BandBelow*lineHeight

	var blocking []domain.Obstacle
	for _, o := range obstacles {
		if o.Bottom() <= bandTop || o.Y >= bandBottom {
			continue
		}
		if o.Right() <= left || o.X >= right {
			continue
		}
		blocking = append(blocking, o)
	}

	// Common case: nothing intersects the band.
	if len(blocking) == 0 {
		return []domain.Segment{{StartX: left, Width: right - left}}
	}

	sort.Slice(blocking, func(i, j int) bool { return blocking[i].X < blocking[j].X })

	var segs []domain.Segment
	cursor := left
	for _, o := range blocking {
		gapEnd := o.X - tun.ObstaclePadding
		if w := gapEnd - cursor; w >= tun.MinSegmentWidth {
			segs = append(segs, domain.Segment{StartX: cursor, Width: w})
		}
		if next := o.Right() + tun.ObstaclePadding; next > cursor {
			cursor = next
		}
	}
	if w := right - cursor; w >= tun.MinSegmentWidth {
		segs = append(segs, domain.Segment{StartX: cursor, Width: w})
	}
	return segs
}
