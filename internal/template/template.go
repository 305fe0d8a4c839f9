/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package template reads the on-disk JSON documents the CLI works with: page
// templates (fixed geometry plus background and font references) and render
// requests (one journal entry). Both are validated against embedded JSON
// Schemas before decoding.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"journalpage/internal/domain"
)

// Template is a page template: the fixed geometry the engine lays out
// against, plus the background image and font files the renderer uses.
type Template struct {
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	LeftMargin  float64   `json:"leftMargin"`
	RightMargin float64   `json:"rightMargin"`
	Baselines   []float64 `json:"baselines"`
	Background  string    `json:"background,omitempty"`
	Fonts       Fonts     `json:"fonts,omitempty"`
}

// Fonts maps the two logical font roles to font files.
type Fonts struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// Default returns the built-in A4-ish scan template used when a request
// names no template: 1860x2620 with 48pt side margins and 21 ruled lines.
func Default() Template {
	baselines := make([]float64, 21)
	for i := range baselines {
		baselines[i] = 420 + float64(i)*100
	}
	return Template{
		Width:       1860,
		Height:      2620,
		LeftMargin:  48,
		RightMargin: 48,
		Baselines:   baselines,
	}
}

// Geometry converts the template to a validated page geometry.
func (t Template) Geometry() (domain.PageGeometry, error) {
	return domain.NewPageGeometry(t.Width, t.Height, t.LeftMargin, t.RightMargin, t.Baselines)
}

// LoadTemplate reads and validates a template file.
func LoadTemplate(path string) (Template, error) {
	var t Template
	if err := loadValidated(path, templateSchema, &t); err != nil {
		return Template{}, fmt.Errorf("template %s: %w", path, err)
	}
	return t, nil
}

// Photo is a placement plus the image file the renderer should draw for it.
type Photo struct {
	domain.PhotoPlacement
	Image string `json:"image,omitempty"`
}

// Request is one journal entry to lay out and render.
type Request struct {
	Date          string       `json:"date"`
	Location      string       `json:"location,omitempty"`
	LocationColor domain.Color `json:"locationColor,omitempty"`
	Body          string       `json:"body,omitempty"`
	SourceWidth   float64      `json:"sourceWidth,omitempty"`
	Photos        []Photo      `json:"photos,omitempty"`
	// Template optionally points at the template file to use.
	Template string `json:"template,omitempty"`
}

// Placements strips the image references for the layout engine.
func (r Request) Placements() []domain.PhotoPlacement {
	out := make([]domain.PhotoPlacement, len(r.Photos))
	for i, p := range r.Photos {
		out[i] = p.PhotoPlacement
	}
	return out
}

// LoadRequest reads and validates a render request file.
func LoadRequest(path string) (Request, error) {
	var r Request
	if err := loadValidated(path, requestSchema, &r); err != nil {
		return Request{}, fmt.Errorf("request %s: %w", path, err)
	}
	return r, nil
}

func loadValidated(path, schema string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
