/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"log/slog"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"journalpage/internal/domain"
	applog "journalpage/internal/log"
)

// PNG draws the page to a PNG file at the page's native pixel size.
// Draw order: background, date, location, body runs, photographs.
func PNG(page Page, faces FaceSource, opt Options, outPath string) error {
	l := applog.WithOperation(applog.WithComponent("render"), "png")
	geo := page.Geometry
	if err := geo.Validate(); err != nil {
		return fmt.Errorf("render png: %w", err)
	}

	dc := gg.NewContext(int(geo.Width), int(geo.Height))
	dc.SetRGB255(252, 250, 243) // plain paper
	dc.Clear()

	if opt.Background != "" {
		img, err := gg.LoadImage(opt.Background)
		if err != nil {
			return fmt.Errorf("load background %s: %w", opt.Background, err)
		}
		b := img.Bounds()
		dc.Push()
		dc.Scale(geo.Width/float64(b.Dx()), geo.Height/float64(b.Dy()))
		dc.DrawImage(img, 0, 0)
		dc.Pop()
	}

	// Date
	if page.Date != "" {
		dc.SetFontFace(faceFor(faces, page.TitleFont, page.Plan.DateFontSize))
		dc.SetRGB255(40, 40, 40)
		dc.DrawString(page.Date, geo.LeftMargin, opt.dateY(geo))
	}

	// Location label in its color
	if page.Location != "" {
		dc.SetFontFace(faceFor(faces, page.TitleFont, page.Plan.LocationFontSize))
		c := opt.LocationColor
		if c.A == 0 {
			c = domain.Color{R: 200, G: 60, B: 40, A: 255}
		}
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
		dc.DrawString(page.Location, geo.LeftMargin, opt.locationY(geo))
	}

	// Body runs at the chosen body size
	if len(page.Plan.BodyRuns) > 0 {
		dc.SetFontFace(faceFor(faces, page.BodyFont, page.Plan.BodyFontSize))
		dc.SetRGB255(30, 30, 30)
		for _, run := range page.Plan.BodyRuns {
			dc.DrawString(run.Text, run.StartX, run.BaselineY)
		}
	}

	// Photographs from the original placement data
	for _, ph := range opt.Photos {
		x, y, w, h := photoRect(ph.Placement, opt.photoBase(), opt.SourceWidth, geo.Width)
		if w <= 0 || h <= 0 {
			continue
		}
		if ph.Image == "" {
			dc.SetRGB255(220, 220, 220)
			dc.DrawRectangle(x, y, w, h)
			dc.Fill()
			continue
		}
		img, err := gg.LoadImage(ph.Image)
		if err != nil {
			l.Warn("photo not drawable", slog.String("image", ph.Image), slog.Any("err", err))
			continue
		}
		b := img.Bounds()
		dc.Push()
		dc.Translate(x, y)
		dc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		dc.DrawImage(img, 0, 0)
		dc.Pop()
	}

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("save png %s: %w", outPath, err)
	}
	l.Debug("page rendered", slog.String("path", outPath), slog.Int("runs", len(page.Plan.BodyRuns)))
	return nil
}

// faceFor resolves a face, falling back to the built-in bitmap face when no
// source is available. A missing font never fails the render.
func faceFor(faces FaceSource, id domain.FontID, size float64) font.Face {
	if faces != nil {
		if f, err := faces.Face(id, size); err == nil {
			return f
		}
	}
	return basicfont.Face7x13
}
