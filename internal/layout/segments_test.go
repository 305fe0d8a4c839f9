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
	"testing"

	"journalpage/internal/domain"
)

func almostEq(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func testGeo(t *testing.T) domain.PageGeometry {
	t.Helper()
	g, err := domain.NewPageGeometry(1000, 1400, 50, 50, []float64{400, 460, 520})
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	return g
}

func TestSegments_NoObstaclesFullWidth(t *testing.T) {
	g := testGeo(t)
	segs := Segments(400, 40, nil, g, DefaultTunables())
	if len(segs) != 1 {
		t.Fatalf("expected one segment, got %d", len(segs))
	}
	if segs[0].StartX != 50 || segs[0].Width != 900 {
		t.Fatalf("expected full writing width [50,900], got %+v", segs[0])
	}
}

func TestSegments_FullBlockYieldsEmpty(t *testing.T) {
	g := testGeo(t)
	// spans the entire writing width inside the band
	ob := []domain.Obstacle{{X: 50, Y: 360, W: 900, H: 80}}
	if segs := Segments(400, 40, ob, g, DefaultTunables()); len(segs) != 0 {
		t.Fatalf("expected zero segments, got %+v", segs)
	}
}

func TestSegments_ObstacleOutsideBandIgnored(t *testing.T) {
	g := testGeo(t)
	tun := DefaultTunables()
	// band for baseline 400 at line height 40 is [368, 408]
	cases := []domain.Obstacle{
		{X: 100, Y: 100, W: 800, H: 50},  // far above
		{X: 100, Y: 420, W: 800, H: 50},  // below the band
		{X: 960, Y: 360, W: 100, H: 80},  // right of the writing area
		{X: -200, Y: 360, W: 240, H: 80}, // left of the writing area
	}
	for i, ob := range cases {
		segs := Segments(400, 40, []domain.Obstacle{ob}, g, tun)
		if len(segs) != 1 || segs[0].Width != 900 {
			t.Fatalf("case %d: expected full-width segment, got %+v", i, segs)
		}
	}
}

func TestSegments_SplitsAroundObstaclesWithPadding(t *testing.T) {
	g := testGeo(t)
	tun := DefaultTunables()
	obs := []domain.Obstacle{
		{X: 600, Y: 390, W: 150, H: 100},
		{X: 200, Y: 360, W: 100, H: 60}, // out of x order on purpose
	}
	segs := Segments(400, 40, obs, g, tun)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %+v", segs)
	}
	want := []domain.Segment{
		{StartX: 50, Width: 135},  // up to 200 - padding
		{StartX: 315, Width: 270}, // 300+padding .. 600-padding
		{StartX: 765, Width: 185}, // 750+padding .. 950
	}
	for i := range want {
		if !almostEq(segs[i].StartX, want[i].StartX, 1e-9) || !almostEq(segs[i].Width, want[i].Width, 1e-9) {
			t.Fatalf("segment %d = %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestSegments_SliverDroppedNotShrunk(t *testing.T) {
	g := testGeo(t)
	tun := DefaultTunables()
	// gap before the obstacle is 140-15-50 = 75 < MinSegmentWidth
	obs := []domain.Obstacle{{X: 140, Y: 360, W: 400, H: 80}}
	segs := Segments(400, 40, obs, g, tun)
	if len(segs) != 1 {
		t.Fatalf("expected only the trailing segment, got %+v", segs)
	}
	if !almostEq(segs[0].StartX, 555, 1e-9) || !almostEq(segs[0].Width, 395, 1e-9) {
		t.Fatalf("trailing segment = %+v", segs[0])
	}
	for _, s := range segs {
		if s.Width <= 0 {
			t.Fatalf("emitted non-positive segment: %+v", s)
		}
	}
}

func TestSegments_OverlappingObstaclesDoNotEmitNegativeGap(t *testing.T) {
	g := testGeo(t)
	tun := DefaultTunables()
	obs := []domain.Obstacle{
		{X: 200, Y: 360, W: 400, H: 80},
		{X: 300, Y: 360, W: 200, H: 80}, // nested inside the first
	}
	segs := Segments(400, 40, obs, g, tun)
	for _, s := range segs {
		if s.Width < tun.MinSegmentWidth {
			t.Fatalf("segment below minimum width: %+v", s)
		}
	}
	if len(segs) != 2 {
		t.Fatalf("expected leading and trailing segments, got %+v", segs)
	}
}
