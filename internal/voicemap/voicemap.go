/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package voicemap loads externally supplied character-to-voice assignments
// from JSON, validated against the embedded voicemap.schema.json.
// The resulting map is read-only input to the parser.
package voicemap

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"storyvoice/internal/voices"
)

//go:embed voicemap.schema.json
var schemaJSON string

// Load reads and validates a voice map file.
func Load(path string) (map[string]voices.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read voice map: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("voice map %s: %w", path, err)
	}
	return m, nil
}

// Parse validates raw JSON against the voice map schema and unmarshals it.
// Character names are the top-level keys, matched verbatim by the parser.
func Parse(data []byte) (map[string]voices.Profile, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid voice map: %s", strings.Join(msgs, "; "))
	}
	var m map[string]voices.Profile
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal voice map: %w", err)
	}
	return m, nil
}
