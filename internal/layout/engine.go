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
	"fmt"
	"log/slog"
	"strings"

	"journalpage/internal/domain"
	applog "journalpage/internal/log"
	"journalpage/internal/measure"
)

// Request carries everything one layout pass needs. All entities are fresh
// per request and discarded once the plan is produced.
type Request struct {
	Geometry domain.PageGeometry
	Date     string
	Location string // optional; empty is fine
	BodyText string // whitespace-word-split; empty yields zero runs

	// Photos are placements in a caller-defined source space of SourceWidth
	// units. SourceWidth <= 0 means placements are already page-native.
	Photos      []domain.PhotoPlacement
	SourceWidth float64
	// Obstacles are additional pre-projected rectangles in page-native
	// units, merged with the projected photos.
	Obstacles []domain.Obstacle

	TitleFont domain.FontID // used for date and location
	BodyFont  domain.FontID
}

// Engine orchestrates the font-fit solver and line packer into a LayoutPlan.
// It is stateless between calls; concurrent Layout calls are independent as
// long as the measurer is safe for concurrent use.
type Engine struct {
	measurer measure.Measurer
	tun      Tunables
	log      *slog.Logger
}

// New returns an engine using the given measurer and tunables. A nil
// measurer falls back to the deterministic basicfont measurer.
func New(m measure.Measurer, tun Tunables) *Engine {
	if m == nil {
		m = measure.Basic{}
	}
	return &Engine{measurer: m, tun: tun, log: applog.WithComponent("layout")}
}

// Layout produces the layout plan for one page. The only error condition is
// invalid geometry; every "no fit" case degrades to a defined fallback
// (minimum size, empty segment list, Overflowed flag) instead of failing.
// Identical inputs with a deterministic measurer produce identical plans.
func (e *Engine) Layout(req Request) (domain.LayoutPlan, error) {
	if err := req.Geometry.Validate(); err != nil {
		return domain.LayoutPlan{}, fmt.Errorf("layout: %w", err)
	}

	obstacles := ProjectPlacements(req.Photos, req.SourceWidth, req.Geometry.Width, e.tun)
	obstacles = append(obstacles, req.Obstacles...)
	writing := req.Geometry.WritingWidth()

	dateSize, err := SolveMaxSize(e.measurer, req.Date, req.TitleFont, writing, e.tun.DateMinSize, e.tun.DateMaxSize, e.tun)
	if err != nil {
		e.reportContract("date", err)
	}
	locationSize, err := SolveMaxSize(e.measurer, req.Location, req.TitleFont, writing, e.tun.LocationMinSize, e.tun.LocationMaxSize, e.tun)
	if err != nil {
		e.reportContract("location", err)
	}

	words := strings.Fields(req.BodyText)
	bodySize, packed := e.fitBody(words, req.BodyFont, obstacles, req.Geometry)
	if packed.ContractViolated {
		e.reportContract("body", ErrMeasurementContract)
	}

	return domain.LayoutPlan{
		DateFontSize:     float64(dateSize),
		LocationFontSize: float64(locationSize),
		BodyFontSize:     bodySize,
		BodyRuns:         packed.Runs,
		Overflowed:       packed.Consumed < len(words),
	}, nil
}

// fitBody descends from the maximum body size in fixed steps until a pack
// consumes every word, or settles on the minimum size's partial result.
func (e *Engine) fitBody(words []string, id domain.FontID, obstacles []domain.Obstacle, geo domain.PageGeometry) (float64, PackResult) {
	step := e.tun.BodyStep
	if step <= 0 {
		step = DefaultTunables().BodyStep
	}
	size := e.tun.BodyMaxSize
	for {
		res := Pack(e.measurer, words, id, size, obstacles, geo, e.tun)
		if res.Full(words) || size <= e.tun.BodyMinSize {
			return size, res
		}
		size -= step
		if size < e.tun.BodyMinSize {
			size = e.tun.BodyMinSize
		}
	}
}

func (e *Engine) reportContract(part string, err error) {
	if errors.Is(err, ErrMeasurementContract) {
		e.log.Warn("measurer broke its contract, falling back to minimum size",
			slog.String("part", part))
		return
	}
	e.log.Warn("font fit failed", slog.String("part", part), slog.Any("err", err))
}
