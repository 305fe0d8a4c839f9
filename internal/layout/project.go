/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"math"

	"journalpage/internal/domain"
)

// ProjectPlacements converts photo placements authored in a source space of
// the given width into obstacle rectangles in page-native units.
//
// Width and height derive from the base dimension and the placement's scale,
// preserving the photo's aspect ratio; position and size are then rescaled
// by pageWidth/sourceWidth. Placements that project to a non-finite or
// non-positive rectangle are dropped so malformed input never propagates.
// Output order is unspecified; the segment calculator re-sorts by x.
func ProjectPlacements(placements []domain.PhotoPlacement, sourceWidth, pageWidth float64, tun Tunables) []domain.Obstacle {
	scale := 1.0
	if sourceWidth > 0 && pageWidth > 0 {
		scale = pageWidth / sourceWidth
	}
	obstacles := make([]domain.Obstacle, 0, len(placements))
	for _, p := range placements {
		base := tun.PhotoBaseSize
		var w, h float64
		if p.AspectRatio > 1 {
			w = base
			h = base / p.AspectRatio
		} else {
			h = base
			w = base * p.AspectRatio
		}
		o := domain.Obstacle{
			X: p.X * scale,
			Y: p.Y * scale,
			W: w * p.Scale * scale,
			H: h * p.Scale * scale,
		}
		if !finiteRect(o) || o.W <= 0 || o.H <= 0 {
			continue
		}
		obstacles = append(obstacles, o)
	}
	return obstacles
}

func finiteRect(o domain.Obstacle) bool {
	for _, v := range [4]float64{o.X, o.Y, o.W, o.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
