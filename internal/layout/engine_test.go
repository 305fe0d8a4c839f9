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
	"reflect"
	"strings"
	"testing"

	"journalpage/internal/domain"
)

func pageGeo(t *testing.T, baselines ...float64) domain.PageGeometry {
	t.Helper()
	g, err := domain.NewPageGeometry(1860, 2620, 48, 48, baselines)
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	return g
}

func TestLayout_SingleShortLine(t *testing.T) {
	e := New(fixedMeasurer{perChar: 0.5}, DefaultTunables())
	plan, err := e.Layout(Request{
		Geometry:  pageGeo(t, 420, 534),
		Date:      "2026-08-25",
		Location:  "Lisbon",
		BodyText:  "hello world",
		TitleFont: "title",
		BodyFont:  "body",
	})
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if plan.Overflowed {
		t.Fatalf("unexpected overflow")
	}
	if len(plan.BodyRuns) != 1 {
		t.Fatalf("expected one run, got %+v", plan.BodyRuns)
	}
	run := plan.BodyRuns[0]
	if run.Text != "hello world" || run.BaselineY != 420 || run.StartX != 48 {
		t.Fatalf("run = %+v", run)
	}
	if plan.BodyFontSize != 84 {
		t.Fatalf("short text should keep the max body size, got %v", plan.BodyFontSize)
	}
	if plan.DateFontSize != 110 || plan.LocationFontSize != 90 {
		t.Fatalf("date/location sizes = %v/%v", plan.DateFontSize, plan.LocationFontSize)
	}
}

func TestLayout_BlockedBaselineFlowsToNext(t *testing.T) {
	e := New(fixedMeasurer{perChar: 0.5}, DefaultTunables())
	plan, err := e.Layout(Request{
		Geometry: pageGeo(t, 420, 534),
		BodyText: "a b",
		// spans the whole writing width across baseline 420's band
		Obstacles: []domain.Obstacle{{X: 48, Y: 380, W: 1764, H: 80}},
		BodyFont:  "body",
	})
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if plan.Overflowed {
		t.Fatalf("unexpected overflow")
	}
	if len(plan.BodyRuns) != 1 {
		t.Fatalf("expected one run, got %+v", plan.BodyRuns)
	}
	if plan.BodyRuns[0].Text != "a b" || plan.BodyRuns[0].BaselineY != 534 {
		t.Fatalf("run = %+v", plan.BodyRuns[0])
	}
	for _, r := range plan.BodyRuns {
		if r.BaselineY == 420 {
			t.Fatalf("blocked baseline received a run: %+v", r)
		}
	}
}

func TestLayout_OverflowDegradesToMinimumSize(t *testing.T) {
	e := New(fixedMeasurer{perChar: 0.5}, DefaultTunables())
	words := make([]string, 500)
	for i := range words {
		words[i] = fmt.Sprintf("%03d-abcdefghijklmnop", i)
	}
	plan, err := e.Layout(Request{
		Geometry: pageGeo(t, 420, 534, 648),
		BodyText: strings.Join(words, " "),
		BodyFont: "body",
	})
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if !plan.Overflowed {
		t.Fatalf("expected overflow with 500 words on 3 baselines")
	}
	if plan.BodyFontSize != DefaultTunables().BodyMinSize {
		t.Fatalf("expected descent to minimum size, got %v", plan.BodyFontSize)
	}
	got := reconstruct(plan.BodyRuns)
	if len(got) == 0 || len(got) >= len(words) {
		t.Fatalf("expected a partial run list, got %d of %d words", len(got), len(words))
	}
	// conservation holds up to the consumed count
	for i := range got {
		if got[i] != words[i] {
			t.Fatalf("word %d = %q, want %q", i, got[i], words[i])
		}
	}
}

func TestLayout_Idempotent(t *testing.T) {
	e := New(fixedMeasurer{perChar: 0.5}, DefaultTunables())
	req := Request{
		Geometry:  pageGeo(t, 420, 534),
		Date:      "2026-08-25",
		Location:  "Lisbon",
		BodyText:  "the quick brown fox jumps over the lazy dog",
		Photos:    []domain.PhotoPlacement{{X: 300, Y: 400, Scale: 2, AspectRatio: 1.2}},
		TitleFont: "title",
		BodyFont:  "body",
	}
	p1, err := e.Layout(req)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	p2, err := e.Layout(req)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Fatalf("plans differ:\n%+v\n%+v", p1, p2)
	}
}

func TestLayout_EmptyBodyYieldsZeroRuns(t *testing.T) {
	e := New(fixedMeasurer{perChar: 0.5}, DefaultTunables())
	for _, body := range []string{"", "   \n\t  "} {
		plan, err := e.Layout(Request{Geometry: pageGeo(t, 420), BodyText: body, BodyFont: "body"})
		if err != nil {
			t.Fatalf("Layout error for %q: %v", body, err)
		}
		if len(plan.BodyRuns) != 0 || plan.Overflowed {
			t.Fatalf("expected zero runs and no overflow for %q, got %+v", body, plan)
		}
	}
}

func TestLayout_InvalidGeometryRejected(t *testing.T) {
	e := New(fixedMeasurer{perChar: 0.5}, DefaultTunables())
	_, err := e.Layout(Request{Geometry: domain.PageGeometry{Width: -1}})
	if !errors.Is(err, domain.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestLayout_NilMeasurerUsesBasic(t *testing.T) {
	e := New(nil, DefaultTunables())
	plan, err := e.Layout(Request{Geometry: pageGeo(t, 420, 534), BodyText: "hello", BodyFont: "body"})
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if len(plan.BodyRuns) != 1 {
		t.Fatalf("expected one run, got %+v", plan.BodyRuns)
	}
}
