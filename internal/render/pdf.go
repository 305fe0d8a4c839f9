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

	"github.com/jung-kurt/gofpdf"

	"journalpage/internal/domain"
)

// PDF writes the page as a single-page vector PDF sized 1:1 in points.
// Text uses built-in Helvetica for portability; photos without an image file
// become placeholder rectangles.
func PDF(page Page, opt Options, outPath string) error {
	geo := page.Geometry
	if err := geo.Validate(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: geo.Width, Ht: geo.Height},
		OrientationStr: "",
	})
	pdf.SetTitle("Journal page", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if opt.Background != "" {
		pdf.ImageOptions(opt.Background, 0, 0, geo.Width, geo.Height, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	if page.Date != "" {
		pdf.SetFont("Helvetica", "", page.Plan.DateFontSize)
		pdf.SetTextColor(40, 40, 40)
		pdf.Text(geo.LeftMargin, opt.dateY(geo), page.Date)
	}

	if page.Location != "" {
		c := opt.LocationColor
		if c.A == 0 {
			c = domain.Color{R: 200, G: 60, B: 40, A: 255}
		}
		pdf.SetFont("Helvetica", "", page.Plan.LocationFontSize)
		pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
		pdf.Text(geo.LeftMargin, opt.locationY(geo), page.Location)
	}

	pdf.SetFont("Helvetica", "", page.Plan.BodyFontSize)
	pdf.SetTextColor(30, 30, 30)
	for _, run := range page.Plan.BodyRuns {
		pdf.Text(run.StartX, run.BaselineY, run.Text)
	}

	for _, ph := range opt.Photos {
		x, y, w, h := photoRect(ph.Placement, opt.photoBase(), opt.SourceWidth, geo.Width)
		if w <= 0 || h <= 0 {
			continue
		}
		if ph.Image == "" {
			pdf.SetFillColor(220, 220, 220)
			pdf.Rect(x, y, w, h, "F")
			continue
		}
		pdf.ImageOptions(ph.Image, x, y, w, h, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf %s: %w", outPath, err)
	}
	return nil
}
