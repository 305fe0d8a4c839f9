/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package measure

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"journalpage/internal/domain"
	applog "journalpage/internal/log"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// DBCache is a persistent width cache backed by SQLite, for measurement
// backends expensive enough that reference widths are worth keeping across
// runs. Semantics match Cache: one stored measurement per (text, font) at
// the reference size, linear scaling for other sizes. Database errors only
// degrade to the wrapped Measurer; they never fail a measurement.
type DBCache struct {
	next Measurer
	ref  float64
	db   *sql.DB
	log  *slog.Logger
}

// OpenDBCache opens (creating if needed) the cache database at path and
// wraps next with it.
func OpenDBCache(path string, next Measurer, referenceSize float64) (*DBCache, error) {
	if referenceSize <= 0 {
		referenceSize = 100
	}
	l := applog.WithComponent("measure")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open width cache: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS widths (
		font TEXT NOT NULL,
		text TEXT NOT NULL,
		width REAL NOT NULL,
		PRIMARY KEY (font, text)
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create widths table: %w", err)
	}
	l.Debug("width cache opened", slog.String("path", path))
	return &DBCache{next: next, ref: referenceSize, db: db, log: l}, nil
}

// Width implements Measurer.
func (c *DBCache) Width(text string, id domain.FontID, size float64) float64 {
	var w float64
	err := c.db.QueryRow("SELECT width FROM widths WHERE font = ? AND text = ?", string(id), text).Scan(&w)
	switch {
	case err == nil:
		return w / c.ref * size
	case errors.Is(err, sql.ErrNoRows):
		// fall through to measure and store
	default:
		c.log.Warn("width cache read failed", slog.Any("err", err))
	}
	w = c.next.Width(text, id, c.ref)
	if _, err := c.db.Exec("INSERT OR REPLACE INTO widths (font, text, width) VALUES (?, ?, ?)", string(id), text, w); err != nil {
		c.log.Warn("width cache write failed", slog.Any("err", err))
	}
	return w / c.ref * size
}

// Close releases the underlying database.
func (c *DBCache) Close() error { return c.db.Close() }
