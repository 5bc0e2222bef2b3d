/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dialogue

import (
	"fmt"
	"regexp"
	"strings"
)

// Line classification patterns, tried in this exact order; the first match
// wins and later patterns are not evaluated. Markup patterns (brackets,
// braces, asterisks) are more specific than the narrative catch-all, and
// quoted dialogue must be tried before the looser name-colon form.
//
//   - [S<n>] tagged dialogue:   [S7] Hello there. (angry) {whisper}
//   - Quoted dialogue:          "I am leaving," said Elena.
//   - Named-speaker dialogue:   Marcus: "Wait for me!"
//   - Action/parenthetical:     (sighs heavily) I suppose so.
//   - Thought:                  *I wonder if this is real.*
//
// Anything else, including lines with unbalanced markup, is narrative.
var (
	reTaggedLine = regexp.MustCompile(`^\[S(\d+)\]\s*(.*)$`)
	reQuotedLine = regexp.MustCompile(`^"([^"]+)"\s*(.*)$`)
	reNamedLine  = regexp.MustCompile(`^([A-Z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*)*)\s*:\s*(.+)$`)
	reActionLine = regexp.MustCompile(`^\(([^)]+)\)\s*(.*)$`)
	reThought    = regexp.MustCompile(`^\*(.+)\*$`)

	// Inline markup inside a tagged dialogue line.
	reEmotion = regexp.MustCompile(`\(([^)]*)\)`)
	reVoicing = regexp.MustCompile(`\{([^}]*)\}`)

	// Attribution clause after quoted dialogue, "Elena said." or "said Elena.".
	reNameVerb = regexp.MustCompile(`^[,.\s]*([A-Z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*)*)\s+(?:said|whispered|replied)\b`)
	reVerbName = regexp.MustCompile(`^[,.\s]*(?:said|whispered|replied)\s+([A-Z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*)*)`)
)

// segmentLines splits text into one Segment per non-blank line with byte
// offsets into the original input. Blank lines emit no segment but still
// advance the offset past their content and terminator.
func segmentLines(text string) []Segment {
	var segs []Segment
	pos := 0
	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		content := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(content)
		if trimmed != "" {
			seg := classifyLine(trimmed, i+1)
			seg.StartPosition = pos
			seg.EndPosition = pos + len(content)
			segs = append(segs, seg)
		}
		pos += len(raw) + 1 // line plus terminator
	}
	return segs
}

// classifyLine applies the pattern chain to a single trimmed line.
func classifyLine(line string, lineNo int) Segment {
	// 1. Speaker-tag dialogue
	if m := reTaggedLine.FindStringSubmatch(line); m != nil && strings.TrimSpace(m[2]) != "" {
		rest := m[2]
		var emotion, voicing string
		if em := reEmotion.FindStringSubmatch(rest); em != nil {
			emotion = strings.TrimSpace(em[1])
			rest = strings.Replace(rest, em[0], " ", 1)
		}
		if vm := reVoicing.FindStringSubmatch(rest); vm != nil {
			voicing = strings.TrimSpace(vm[1])
			rest = strings.Replace(rest, vm[0], " ", 1)
		}
		return Segment{
			ID:                segmentID(SegmentDialogue, lineNo),
			Type:              SegmentDialogue,
			Text:              strings.Join(strings.Fields(rest), " "),
			Speaker:           "Speaker " + m[1],
			SpeakerTag:        "[S" + m[1] + "]",
			Emotion:           emotion,
			VoiceInstructions: voicing,
		}
	}

	// 2. Quoted dialogue with optional attribution clause
	if m := reQuotedLine.FindStringSubmatch(line); m != nil {
		speaker := attributedSpeaker(m[2])
		return Segment{
			ID:      segmentID(SegmentDialogue, lineNo),
			Type:    SegmentDialogue,
			Text:    m[1],
			Speaker: speaker,
		}
	}

	// 3. Named-speaker dialogue, quotes around the spoken text optional
	if m := reNamedLine.FindStringSubmatch(line); m != nil {
		return Segment{
			ID:      segmentID(SegmentDialogue, lineNo),
			Type:    SegmentDialogue,
			Text:    stripQuotes(strings.TrimSpace(m[2])),
			Speaker: strings.TrimSpace(m[1]),
		}
	}

	// 4. Action/parenthetical
	if m := reActionLine.FindStringSubmatch(line); m != nil {
		text := strings.TrimSpace(m[2])
		if text == "" {
			text = strings.TrimSpace(m[1])
		}
		return Segment{
			ID:      segmentID(SegmentAction, lineNo),
			Type:    SegmentAction,
			Text:    text,
			Emotion: strings.TrimSpace(m[1]),
		}
	}

	// 5. Thought
	if m := reThought.FindStringSubmatch(line); m != nil {
		return Segment{
			ID:   segmentID(SegmentThought, lineNo),
			Type: SegmentThought,
			Text: strings.TrimSpace(m[1]),
		}
	}

	// 6. Narrative fallback
	return Segment{
		ID:   segmentID(SegmentNarrative, lineNo),
		Type: SegmentNarrative,
		Text: line,
	}
}

// attributedSpeaker extracts a speaker name from the clause trailing a
// quoted line, trying "Name said" before "said Name". Unattributed quotes
// get the literal "Unknown".
func attributedSpeaker(trailing string) string {
	if m := reNameVerb.FindStringSubmatch(trailing); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reVerbName.FindStringSubmatch(trailing); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Unknown"
}

func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

func segmentID(t SegmentType, lineNo int) string {
	return fmt.Sprintf("%s-%d", t, lineNo)
}
