/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render turns a layout plan into output files. It is the host-side
// collaborator of the layout engine: the engine computes positions and
// sizes, this package draws them. Photographs are drawn from the original
// placement data; the engine's projected obstacles never reach here.
package render

import (
	"golang.org/x/image/font"

	"journalpage/internal/domain"
)

// FaceSource resolves a drawable face for a font id at a size.
// measure.Library implements it; a nil source falls back to the built-in
// bitmap face so rendering always produces a legible page.
type FaceSource interface {
	Face(id domain.FontID, size float64) (font.Face, error)
}

// Photo pairs a placement with the image file to draw for it.
type Photo struct {
	Placement domain.PhotoPlacement
	Image     string
}

// Page bundles one laid-out journal page for drawing.
type Page struct {
	Geometry  domain.PageGeometry
	Plan      domain.LayoutPlan
	Date      string
	Location  string
	TitleFont domain.FontID
	BodyFont  domain.FontID
}

// Options controls drawing details the plan does not dictate.
type Options struct {
	// Background is an image file stretched over the page; unset paints
	// plain paper.
	Background string
	// Photos to composite, in original (source-space) coordinates.
	Photos []Photo
	// SourceWidth of the space the photo placements were authored in;
	// <= 0 means page-native.
	SourceWidth float64
	// PhotoBaseSize mirrors the layout tunable of the same name so drawn
	// photos line up with the obstacles text flowed around. Default 150.
	PhotoBaseSize float64

	LocationColor domain.Color

	// DateY/LocationY are the baselines for the two header strings;
	// zero derives them from the first body baseline.
	DateY     float64
	LocationY float64
}

func (o Options) photoBase() float64 {
	if o.PhotoBaseSize > 0 {
		return o.PhotoBaseSize
	}
	return 150
}

func (o Options) dateY(geo domain.PageGeometry) float64 {
	if o.DateY > 0 {
		return o.DateY
	}
	return 0.55 * geo.Baselines[0]
}

func (o Options) locationY(geo domain.PageGeometry) float64 {
	if o.LocationY > 0 {
		return o.LocationY
	}
	return 0.85 * geo.Baselines[0]
}

// photoRect maps a placement into page coordinates, the same arithmetic the
// layout projector applies minus its defensive filtering.
func photoRect(p domain.PhotoPlacement, base, sourceWidth, pageWidth float64) (x, y, w, h float64) {
	scale := 1.0
	if sourceWidth > 0 && pageWidth > 0 {
		scale = pageWidth / sourceWidth
	}
	if p.AspectRatio > 1 {
		w, h = base, base/p.AspectRatio
	} else {
		w, h = base*p.AspectRatio, base
	}
	return p.X * scale, p.Y * scale, w * p.Scale * scale, h * p.Scale * scale
}
