/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package measure

import (
	"math"
	"testing"

	"journalpage/internal/domain"
)

func almostEq(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestBasic_LinearInSize(t *testing.T) {
	m := Basic{}
	w100 := m.Width("hello", "body", 100)
	w50 := m.Width("hello", "body", 50)
	if w100 <= 0 {
		t.Fatalf("expected positive width, got %v", w100)
	}
	if !almostEq(w100, 2*w50, 1e-9) {
		t.Fatalf("expected linear scaling, got w100=%v w50=%v", w100, w50)
	}
}

func TestBasic_MonotonicInText(t *testing.T) {
	m := Basic{}
	if m.Width("ab", "body", 20) <= m.Width("a", "body", 20) {
		t.Fatalf("longer text should measure wider")
	}
	if m.Width("", "body", 20) != 0 {
		t.Fatalf("empty text should measure zero")
	}
}

func TestFunc_Adapter(t *testing.T) {
	var gotText string
	var gotID domain.FontID
	m := Func(func(text string, id domain.FontID, size float64) float64 {
		gotText, gotID = text, id
		return size * 2
	})
	if w := m.Width("x", "title", 10); w != 20 {
		t.Fatalf("Width = %v, want 20", w)
	}
	if gotText != "x" || gotID != "title" {
		t.Fatalf("adapter did not forward args: %q %q", gotText, gotID)
	}
}

func TestLibrary_FallsBackForUnknownFont(t *testing.T) {
	lib := NewLibrary()
	want := Basic{}.Width("hello", "missing", 40)
	if got := lib.Width("hello", "missing", 40); got != want {
		t.Fatalf("fallback width = %v, want %v", got, want)
	}
	if lib.Has("missing") {
		t.Fatalf("Has reported an unloaded font")
	}
	if _, err := lib.Face("missing", 40); err == nil {
		t.Fatalf("Face should fail for unknown font")
	}
}

func TestLibrary_LoadTTFErrors(t *testing.T) {
	lib := NewLibrary()
	if err := lib.LoadTTF("body", "does/not/exist.ttf"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
