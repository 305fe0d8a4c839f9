/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package measure isolates glyph width measurement behind a deterministic
// interface so the layout engine never touches a concrete font library.
// Implementations must be deterministic and monotonic non-decreasing in size
// for a fixed text and font.
package measure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"journalpage/internal/domain"
)

// Measurer reports the width of text in page-native units when drawn with
// the given font at the given size.
type Measurer interface {
	Width(text string, id domain.FontID, size float64) float64
}

// Func adapts a plain function to the Measurer interface.
type Func func(text string, id domain.FontID, size float64) float64

// Width implements Measurer.
func (f Func) Width(text string, id domain.FontID, size float64) float64 { return f(text, id, size) }

// basicSize is the nominal size of basicfont.Face7x13.
const basicSize = 13

// Basic measures with the fixed-width basicfont face, scaled linearly to the
// requested size. It ignores the font id. Deterministic; intended for tests
// and as a last-resort fallback.
type Basic struct{}

// Width implements Measurer.
func (Basic) Width(text string, _ domain.FontID, size float64) float64 {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := float64(d.MeasureString(text)) / 64
	return w * size / basicSize
}
