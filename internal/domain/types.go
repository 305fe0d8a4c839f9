/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package domain defines the core data model for journal page layout.
// All coordinates are page-native units: the fixed coordinate system of the
// rendered output (e.g. 1860x2620), independent of display pixel density.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a PageGeometry fails validation.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// PageGeometry describes the fixed page: pixel dimensions, horizontal
// margins, and the ordered baselines available for body text lines.
// It is immutable once validated; construct via NewPageGeometry.
type PageGeometry struct {
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	LeftMargin  float64   `json:"leftMargin"`
	RightMargin float64   `json:"rightMargin"`
	Baselines   []float64 `json:"baselines"` // ascending Y coordinates
}

// NewPageGeometry validates and returns a page geometry.
func NewPageGeometry(width, height, leftMargin, rightMargin float64, baselines []float64) (PageGeometry, error) {
	g := PageGeometry{
		Width:       width,
		Height:      height,
		LeftMargin:  leftMargin,
		RightMargin: rightMargin,
		Baselines:   append([]float64(nil), baselines...),
	}
	if err := g.Validate(); err != nil {
		return PageGeometry{}, err
	}
	return g, nil
}

// Validate rejects non-positive dimensions, margins exceeding the page
// width, and empty or non-ascending baseline lists.
func (g PageGeometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: non-positive page size %gx%g", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.LeftMargin < 0 || g.RightMargin < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidGeometry)
	}
	if g.LeftMargin+g.RightMargin >= g.Width {
		return fmt.Errorf("%w: margins %g+%g exceed page width %g", ErrInvalidGeometry, g.LeftMargin, g.RightMargin, g.Width)
	}
	if len(g.Baselines) == 0 {
		return fmt.Errorf("%w: no baselines", ErrInvalidGeometry)
	}
	prev := 0.0
	for i, y := range g.Baselines {
		if y <= prev {
			return fmt.Errorf("%w: baselines must be positive and ascending (index %d)", ErrInvalidGeometry, i)
		}
		prev = y
	}
	return nil
}

// WritingWidth is the horizontal span available to text between the margins.
func (g PageGeometry) WritingWidth() float64 { return g.Width - g.LeftMargin - g.RightMargin }

// PhotoPlacement is one photograph as placed by the user in a caller-defined
// source coordinate space (typically a screen whose width differs from the
// page's). Scale multiplies the reference base size; AspectRatio is the
// photo's width/height ratio.
type PhotoPlacement struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Scale       float64 `json:"scale"`
	AspectRatio float64 `json:"aspectRatio"`
}

// Obstacle is an axis-aligned rectangle in page-native units that body text
// must flow around. Obstacles are produced from photo placements by the
// layout projector; the renderer never consumes them.
type Obstacle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the obstacle's right edge.
func (o Obstacle) Right() float64 { return o.X + o.W }

// Bottom returns the obstacle's bottom edge.
func (o Obstacle) Bottom() float64 { return o.Y + o.H }

// Segment is a contiguous horizontal span on one baseline free of obstacles.
// Width is always positive; unusable slivers are never emitted.
type Segment struct {
	StartX float64 `json:"startX"`
	Width  float64 `json:"width"`
}

// TextRun is one positioned piece of body text, ready for rendering at the
// plan's body font size. Text is never empty.
type TextRun struct {
	Text      string  `json:"text"`
	BaselineY float64 `json:"baselineY"`
	StartX    float64 `json:"startX"`
}

// LayoutPlan is the complete result of a layout pass.
// Overflowed reports that not all words fit even at the minimum body size;
// the runs then hold the words that did fit, in order.
type LayoutPlan struct {
	DateFontSize     float64   `json:"dateFontSize"`
	LocationFontSize float64   `json:"locationFontSize"`
	BodyFontSize     float64   `json:"bodyFontSize"`
	BodyRuns         []TextRun `json:"bodyRuns"`
	Overflowed       bool      `json:"overflowed"`
}

// FontID is an opaque handle naming a measurable font to the host's
// measurement capability.
type FontID string

// Color is an RGBA color used for the location label and render styling.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}
