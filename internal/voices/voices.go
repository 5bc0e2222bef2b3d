/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package voices holds the synthesized-voice profile catalog and the
// name-based archetype heuristic used when no explicit assignment exists.
package voices

import "strings"

// Profile is a resolved voice descriptor handed to downstream synthesis.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Archetype string `json:"archetype"`
	Tone      string `json:"tone"`
}

// Archetype identifiers. The set is fixed; synthesis presets key off these.
const (
	ArchetypeWiseElder = "wise_elder"
	ArchetypeChild     = "child"
	ArchetypeGuide     = "guide"
	ArchetypeNarrator  = "narrator"
)

// Built-in presets, one per archetype. The narrator preset doubles as the
// fallback voice for characters no rule recognizes.
var presets = map[string]Profile{
	ArchetypeWiseElder: {ID: "voice-elder", Name: "Sage", Archetype: ArchetypeWiseElder, Tone: "authoritative"},
	ArchetypeChild:     {ID: "voice-child", Name: "Sprout", Archetype: ArchetypeChild, Tone: "playful"},
	ArchetypeGuide:     {ID: "voice-guide", Name: "Mentor", Archetype: ArchetypeGuide, Tone: "compassionate"},
	ArchetypeNarrator:  {ID: "voice-narrator", Name: "Teller", Archetype: ArchetypeNarrator, Tone: "warm"},
}

// heuristicRules are evaluated in order; the first keyword hit decides the
// archetype. Ordering is part of the contract ("Elder Child" is a wise_elder).
var heuristicRules = []struct {
	keywords  []string
	archetype string
}{
	{[]string{"elder", "wise", "sage"}, ArchetypeWiseElder},
	{[]string{"child", "young", "little"}, ArchetypeChild},
	{[]string{"guide", "teacher", "mentor"}, ArchetypeGuide},
}

// Preset returns the built-in profile for an archetype, falling back to the
// narrator preset for unknown archetypes.
func Preset(archetype string) Profile {
	if p, ok := presets[archetype]; ok {
		return p
	}
	return presets[ArchetypeNarrator]
}

// Resolve picks a voice profile for a character name. An entry in the
// external map (exact name key) wins verbatim; otherwise the name is
// classified by case-insensitive keyword matching, defaulting to narrator.
func Resolve(name string, external map[string]Profile) Profile {
	if p, ok := external[name]; ok {
		return p
	}
	lower := strings.ToLower(name)
	for _, rule := range heuristicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return presets[rule.archetype]
			}
		}
	}
	return presets[ArchetypeNarrator]
}
