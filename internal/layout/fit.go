/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package layout

import (
	"errors"
	"math"

	"journalpage/internal/domain"
	"journalpage/internal/measure"
)

// ErrMeasurementContract reports that the measure collaborator broke its
// contract (non-finite or negative width). The solver still returns a usable
// minimum size; callers log and carry on.
var ErrMeasurementContract = errors.New("measurement contract violation")

// SolveMaxSize finds the largest integer size in [minSize, maxSize] at which
// text fits constraintWidth, by binary search.
//
// The text is measured once at the reference size and scaled linearly to
// each candidate, so one measurement call serves the whole search. Every
// candidate width is inflated by the safety margin before comparison. If no
// size fits, minSize is returned; the result is always usable.
func SolveMaxSize(m measure.Measurer, text string, id domain.FontID, constraintWidth float64, minSize, maxSize int, tun Tunables) (int, error) {
	if maxSize < minSize {
		return minSize, nil
	}
	refWidth := m.Width(text, id, tun.ReferenceSize)
	if math.IsNaN(refWidth) || math.IsInf(refWidth, 0) || refWidth < 0 {
		return minSize, ErrMeasurementContract
	}
	perUnit := refWidth / tun.ReferenceSize

	best := -1
	lo, hi := minSize, maxSize
	for lo <= hi {
		mid := (lo + hi) / 2
		estimated := perUnit * float64(mid) * tun.SafetyMargin
		if estimated <= constraintWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if best < 0 {
		return minSize, nil
	}
	return best, nil
}
