/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package voicemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validMap = `{
  "Elena": {"id": "v-1", "name": "Clear", "archetype": "narrator", "tone": "warm"},
  "Elder Mira": {"id": "v-2", "name": "Sage", "archetype": "wise_elder", "tone": "authoritative"}
}`

func TestParseValidMap(t *testing.T) {
	m, err := Parse([]byte(validMap))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	p, ok := m["Elder Mira"]
	if !ok {
		t.Fatalf("missing entry for Elder Mira: %v", m)
	}
	if p.ID != "v-2" || p.Archetype != "wise_elder" || p.Tone != "authoritative" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestParseRejectsMissingRequiredFields(t *testing.T) {
	bad := `{"Elena": {"id": "v-1", "name": "Clear"}}`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatalf("expected schema error for missing fields")
	} else if !strings.Contains(err.Error(), "invalid voice map") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsNonObjectDocument(t *testing.T) {
	if _, err := Parse([]byte(`["not", "a", "map"]`)); err == nil {
		t.Fatalf("expected schema error for array document")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voices.json")
	if err := os.WriteFile(path, []byte(validMap), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := m["Elena"]; !ok {
		t.Fatalf("loaded map missing Elena: %v", m)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
