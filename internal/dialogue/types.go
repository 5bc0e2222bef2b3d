/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dialogue

import "storyvoice/internal/voices"

// SegmentType classifies one line of story prose.
// Dialogue:  spoken line attributed to a character
// Narrative: default prose (the catch-all)
// Action:    stage direction, "(sighs heavily) I suppose so."
// Thought:   inner monologue delimited by asterisks
type SegmentType string

const (
	SegmentDialogue  SegmentType = "dialogue"
	SegmentNarrative SegmentType = "narrative"
	SegmentAction    SegmentType = "action"
	SegmentThought   SegmentType = "thought"
)

// Segment is one classified unit of text. Offsets are byte positions into
// the original input (half-open range) and never overlap across segments.
type Segment struct {
	ID                string      `json:"id"`
	Type              SegmentType `json:"type"`
	Text              string      `json:"text"`
	Speaker           string      `json:"speaker,omitempty"`
	SpeakerTag        string      `json:"speakerTag,omitempty"`
	Emotion           string      `json:"emotion,omitempty"`
	VoiceInstructions string      `json:"voiceInstructions,omitempty"`
	StartPosition     int         `json:"startPosition"`
	EndPosition       int         `json:"endPosition"`
	IsProcessed       bool        `json:"isProcessed"`
}

// CharacterVoiceMapping is one entry per distinct detected speaker.
// Character identity is a case-insensitive exact name match; CharacterName
// keeps the casing of the first occurrence.
type CharacterVoiceMapping struct {
	CharacterName  string         `json:"characterName"`
	SpeakerTag     string         `json:"speakerTag"`
	VoiceProfile   voices.Profile `json:"voiceProfile"`
	DialogueCount  int            `json:"dialogueCount"`
	EmotionalRange []string       `json:"emotionalRange"`
}

// ParsedContent is the terminal output of a parse run. The filtered views
// preserve the relative order of Segments. Nothing in here is mutated after
// the parse completes.
type ParsedContent struct {
	OriginalText      string                  `json:"originalText"`
	Segments          []Segment               `json:"segments"`
	CharacterMappings []CharacterVoiceMapping `json:"characterMappings"`
	NarrativeSegments []Segment               `json:"narrativeSegments"`
	DialogueSegments  []Segment               `json:"dialogueSegments"`
	TotalCharacters   int                     `json:"totalCharacters"`
	ReadingTime       int                     `json:"readingTime"`
}
