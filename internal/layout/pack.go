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
	"journalpage/internal/measure"
)

// PackResult reports how far a packing pass got.
type PackResult struct {
	Runs     []domain.TextRun
	Consumed int
	// ContractViolated is set when the measurer returned a non-finite or
	// negative width; the affected word is treated as not fitting.
	ContractViolated bool
}

// Full reports whether every word was placed.
func (r PackResult) Full(words []string) bool { return r.Consumed == len(words) }

// Pack greedily distributes words into the free segments of each baseline,
// in order, at the given body font size.
//
// Within a segment, words are appended one at a time and the whole candidate
// line is re-measured; measuring per word would miss inter-word spacing. A
// segment narrower than the next word is skipped without emitting a run,
// which is distinct from a baseline having no segments at all. Baselines
// left over once words run out stay empty.
func Pack(m measure.Measurer, words []string, id domain.FontID, fontSize float64, obstacles []domain.Obstacle, geo domain.PageGeometry, tun Tunables) PackResult {
	var res PackResult
	widthAt := func(text string) (float64, bool) {
		ref := m.Width(text, id, tun.ReferenceSize)
		if math.IsNaN(ref) || math.IsInf(ref, 0) || ref < 0 {
			return 0, false
		}
		return ref / tun.ReferenceSize * fontSize * tun.SafetyMargin, true
	}

	idx := 0
	for _, baselineY := range geo.Baselines {
		if idx >= len(words) {
			break
		}
		for _, seg := range Segments(baselineY, fontSize, obstacles, geo, tun) {
			if idx >= len(words) {
				break
			}
			line := ""
			for idx < len(words) {
				candidate := words[idx]
				if line != "" {
					candidate = line + " " + words[idx]
				}
				w, ok := widthAt(candidate)
				if !ok {
					res.ContractViolated = true
					break
				}
				if w > seg.Width {
					break
				}
				line = candidate
				idx++
			}
			if line != "" {
				res.Runs = append(res.Runs, domain.TextRun{Text: line, BaselineY: baselineY, StartX: seg.StartX})
			}
		}
	}
	res.Consumed = idx
	return res
}
