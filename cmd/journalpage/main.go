/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"journalpage/internal/config"
	"journalpage/internal/crash"
	"journalpage/internal/domain"
	"journalpage/internal/layout"
	applog "journalpage/internal/log"
	"journalpage/internal/measure"
	"journalpage/internal/render"
	"journalpage/internal/template"
	"journalpage/internal/version"
)

func usage() {
	fmt.Println("journalpage: journal page layout and rendering")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  journalpage version|-v|--version          Show version")
	fmt.Println("  journalpage layout <request.json>          Lay out an entry and print the plan as JSON")
	fmt.Println("  journalpage render <request.json> <out>    Lay out and render to <out>.png or <out>.pdf")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}
	applog.Init(applog.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, File: cfg.Logging.File})
	l := applog.WithComponent("cli")
	defer crash.Recover()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "layout":
		if len(args) < 3 {
			fmt.Println("layout requires <request.json>")
			usage()
			os.Exit(2)
		}
		plan, _, _, err := runLayout(cfg, args[2])
		if err != nil {
			l.Error("layout failed", slog.Any("err", err))
			fmt.Fprintf(os.Stderr, "layout: %v\n", err)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode plan: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	case "render":
		if len(args) < 4 {
			fmt.Println("render requires <request.json> and <out>")
			usage()
			os.Exit(2)
		}
		if err := runRender(cfg, args[2], args[3]); err != nil {
			l.Error("render failed", slog.Any("err", err))
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", args[3])
	default:
		usage()
		os.Exit(2)
	}
}

// runLayout loads the request and its template, builds the measurement
// stack, and runs the engine.
func runLayout(cfg config.AppConfig, requestPath string) (domain.LayoutPlan, template.Request, template.Template, error) {
	req, err := template.LoadRequest(requestPath)
	if err != nil {
		return domain.LayoutPlan{}, template.Request{}, template.Template{}, err
	}
	tpl := template.Default()
	if req.Template != "" {
		path := req.Template
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(requestPath), path)
		}
		if tpl, err = template.LoadTemplate(path); err != nil {
			return domain.LayoutPlan{}, template.Request{}, template.Template{}, err
		}
	}
	geo, err := tpl.Geometry()
	if err != nil {
		return domain.LayoutPlan{}, template.Request{}, template.Template{}, err
	}

	tun := cfg.Tunables()
	m, closeFn, err := buildMeasurer(cfg, tpl, tun)
	if err != nil {
		return domain.LayoutPlan{}, template.Request{}, template.Template{}, err
	}
	defer closeFn()

	engine := layout.New(m, tun)
	plan, err := engine.Layout(layout.Request{
		Geometry:    geo,
		Date:        req.Date,
		Location:    req.Location,
		BodyText:    req.Body,
		Photos:      req.Placements(),
		SourceWidth: req.SourceWidth,
		TitleFont:   "title",
		BodyFont:    "body",
	})
	return plan, req, tpl, err
}

func runRender(cfg config.AppConfig, requestPath, outPath string) error {
	plan, req, tpl, err := runLayout(cfg, requestPath)
	if err != nil {
		return err
	}
	geo, err := tpl.Geometry()
	if err != nil {
		return err
	}

	lib, err := loadFonts(cfg, tpl)
	if err != nil {
		return err
	}

	page := render.Page{
		Geometry:  geo,
		Plan:      plan,
		Date:      req.Date,
		Location:  req.Location,
		TitleFont: "title",
		BodyFont:  "body",
	}
	photos := make([]render.Photo, len(req.Photos))
	for i, p := range req.Photos {
		photos[i] = render.Photo{Placement: p.PhotoPlacement, Image: p.Image}
	}
	opt := render.Options{
		Background:    tpl.Background,
		Photos:        photos,
		SourceWidth:   req.SourceWidth,
		PhotoBaseSize: cfg.Tunables().PhotoBaseSize,
		LocationColor: req.LocationColor,
	}

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".pdf":
		return render.PDF(page, opt, outPath)
	case ".png", "":
		return render.PNG(page, lib, opt, outPath)
	default:
		return fmt.Errorf("unsupported output format %q (use .png or .pdf)", filepath.Ext(outPath))
	}
}

// buildMeasurer assembles the measurement stack: font library, optional
// persistent width cache, in-memory cache on top.
func buildMeasurer(cfg config.AppConfig, tpl template.Template, tun layout.Tunables) (measure.Measurer, func(), error) {
	lib, err := loadFonts(cfg, tpl)
	if err != nil {
		return nil, nil, err
	}
	var m measure.Measurer = lib
	closeFn := func() {}
	if cfg.Cache.Enabled && cfg.Cache.Path != "" {
		db, err := measure.OpenDBCache(cfg.Cache.Path, m, tun.ReferenceSize)
		if err != nil {
			return nil, nil, err
		}
		m = db
		closeFn = func() { _ = db.Close() }
	}
	return measure.NewCache(m, tun.ReferenceSize), closeFn, nil
}

// loadFonts registers the title and body fonts; template entries win over
// config entries. Missing fonts fall back to the built-in face.
func loadFonts(cfg config.AppConfig, tpl template.Template) (*measure.Library, error) {
	lib := measure.NewLibrary()
	l := applog.WithComponent("fonts")
	load := func(id domain.FontID, name string) {
		if name == "" {
			return
		}
		path := name
		if !filepath.IsAbs(path) && cfg.Fonts.Dir != "" {
			path = filepath.Join(cfg.Fonts.Dir, name)
		}
		if err := lib.LoadTTF(id, path); err != nil {
			l.Warn("font not loaded, using fallback", slog.String("font", string(id)), slog.Any("err", err))
		}
	}
	load("title", firstNonEmpty(tpl.Fonts.Title, cfg.Fonts.Title))
	load("body", firstNonEmpty(tpl.Fonts.Body, cfg.Fonts.Body))
	return lib, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
