/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package layout is the page layout engine: it sizes the date, location and
// body text to the fixed page geometry and wraps the body words around
// photo obstacles across the page's writing baselines. The engine is a pure
// function of its inputs plus an injected measure capability; it holds no
// state between calls and never panics on well-formed geometry.
package layout

// Tunables collects every named layout constant in one injected value.
// All lengths are page-native units.
type Tunables struct {
	// ObstaclePadding is the horizontal clearance kept between text and an
	// obstacle edge.
	ObstaclePadding float64
	// MinSegmentWidth drops free-space slivers narrower than this.
	MinSegmentWidth float64
	// SafetyMargin inflates measured widths to absorb measurement and
	// rasterization rounding. Applied to every fit decision.
	SafetyMargin float64
	// BandAbove/BandBelow define the vertical band a line occupies around
	// its baseline, as fractions of the line height. Asymmetric: text sits
	// mostly above its baseline.
	BandAbove float64
	BandBelow float64
	// ReferenceSize is the size each distinct string is measured at; other
	// sizes are derived by linear scaling.
	ReferenceSize float64
	// PhotoBaseSize is the reference base dimension a placement's scale
	// multiplies when projecting a photo to an obstacle.
	PhotoBaseSize float64

	// Body text font size search range and descent step.
	BodyMinSize float64
	BodyMaxSize float64
	BodyStep    float64

	// Date and location are single short lines; they use their own, larger
	// integer search ranges.
	DateMinSize     int
	DateMaxSize     int
	LocationMinSize int
	LocationMaxSize int
}

// DefaultTunables returns the standard constants for the 1860x2620 page.
func DefaultTunables() Tunables {
	return Tunables{
		ObstaclePadding: 15,
		MinSegmentWidth: 100,
		SafetyMargin:    1.05,
		BandAbove:       0.8,
		BandBelow:       0.2,
		ReferenceSize:   100,
		PhotoBaseSize:   150,
		BodyMinSize:     17,
		BodyMaxSize:     84,
		BodyStep:        0.5,
		DateMinSize:     40,
		DateMaxSize:     110,
		LocationMinSize: 30,
		LocationMaxSize: 90,
	}
}
