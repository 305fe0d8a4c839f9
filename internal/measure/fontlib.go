/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package measure

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"journalpage/internal/domain"
)

// Library stores loaded OpenType fonts keyed by font id and measures text
// through them. Unknown ids fall back to the Fallback measurer (Basic if
// unset) so a missing font degrades measurement, never fails it.
type Library struct {
	fonts    map[domain.FontID]*opentype.Font
	Fallback Measurer
}

// NewLibrary returns an empty font library.
func NewLibrary() *Library { return &Library{fonts: make(map[domain.FontID]*opentype.Font)} }

// LoadTTF loads a TTF/OTF file and registers it under id.
func (l *Library) LoadTTF(id domain.FontID, path string) error {
	if l.fonts == nil {
		l.fonts = make(map[domain.FontID]*opentype.Font)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", path, err)
	}
	l.fonts[id] = f
	return nil
}

// Has reports whether a font is registered under id.
func (l *Library) Has(id domain.FontID) bool {
	if l == nil {
		return false
	}
	_, ok := l.fonts[id]
	return ok
}

// Face resolves a drawable face for id at the given size (72 DPI, so one
// point equals one page unit). Returns an error for unknown ids.
func (l *Library) Face(id domain.FontID, size float64) (font.Face, error) {
	if l == nil || l.fonts[id] == nil {
		return nil, fmt.Errorf("font %q not loaded", id)
	}
	face, err := opentype.NewFace(l.fonts[id], &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("face %q at %g: %w", id, size, err)
	}
	return face, nil
}

// Width implements Measurer.
func (l *Library) Width(text string, id domain.FontID, size float64) float64 {
	face, err := l.Face(id, size)
	if err != nil {
		fb := l.Fallback
		if fb == nil {
			fb = Basic{}
		}
		return fb.Width(text, id, size)
	}
	d := &font.Drawer{Face: face}
	return float64(d.MeasureString(text)) / 64
}
