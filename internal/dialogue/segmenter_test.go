/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dialogue

import "testing"

func TestClassifyTaggedDialogue(t *testing.T) {
	segs := segmentLines("[S7] Hello there.")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	s := segs[0]
	if s.Type != SegmentDialogue {
		t.Fatalf("expected dialogue, got %+v", s)
	}
	if s.Speaker != "Speaker 7" || s.SpeakerTag != "[S7]" {
		t.Fatalf("speaker attribution wrong: %+v", s)
	}
	if s.Text != "Hello there." {
		t.Fatalf("unexpected text: %q", s.Text)
	}
}

func TestClassifyTaggedDialogueWithMarkup(t *testing.T) {
	segs := segmentLines("[S2] (angrily) Get out! {low growl}")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	s := segs[0]
	if s.Emotion != "angrily" {
		t.Fatalf("emotion not extracted: %+v", s)
	}
	if s.VoiceInstructions != "low growl" {
		t.Fatalf("voice instructions not extracted: %+v", s)
	}
	if s.Text != "Get out!" {
		t.Fatalf("markup not stripped from text: %q", s.Text)
	}
}

func TestClassifyQuotedDialogueAttribution(t *testing.T) {
	cases := []struct {
		line    string
		speaker string
		text    string
	}{
		{`"I am leaving," said Elena.`, "Elena", "I am leaving,"},
		{`"Quiet now," whispered Old Tom.`, "Old Tom", "Quiet now,"},
		{`"Fine." Elena replied.`, "Elena", "Fine."},
		{`"Nobody here."`, "Unknown", "Nobody here."},
		{`"Who knows," the woman said.`, "Unknown", "Who knows,"},
	}
	for _, c := range cases {
		segs := segmentLines(c.line)
		if len(segs) != 1 {
			t.Fatalf("%q: expected 1 segment, got %d", c.line, len(segs))
		}
		s := segs[0]
		if s.Type != SegmentDialogue {
			t.Fatalf("%q: expected dialogue, got %+v", c.line, s)
		}
		if s.Speaker != c.speaker {
			t.Fatalf("%q: speaker = %q, want %q", c.line, s.Speaker, c.speaker)
		}
		if s.Text != c.text {
			t.Fatalf("%q: text = %q, want %q", c.line, s.Text, c.text)
		}
	}
}

func TestClassifyNamedSpeakerDialogue(t *testing.T) {
	segs := segmentLines("Marcus: \"Wait for me!\"\nElder Mira: You cannot stay.")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Speaker != "Marcus" || segs[0].Text != "Wait for me!" {
		t.Fatalf("quoted named dialogue wrong: %+v", segs[0])
	}
	if segs[1].Speaker != "Elder Mira" || segs[1].Text != "You cannot stay." {
		t.Fatalf("unquoted named dialogue wrong: %+v", segs[1])
	}
}

func TestClassifyActionAndThought(t *testing.T) {
	segs := segmentLines("(sighs heavily) I suppose so.\n(waves)\n*I wonder if this is real.*")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].Type != SegmentAction || segs[0].Emotion != "sighs heavily" || segs[0].Text != "I suppose so." {
		t.Fatalf("action with trailing text wrong: %+v", segs[0])
	}
	// Bare parenthetical keeps its content as text.
	if segs[1].Type != SegmentAction || segs[1].Text != "waves" || segs[1].Emotion != "waves" {
		t.Fatalf("bare action wrong: %+v", segs[1])
	}
	if segs[2].Type != SegmentThought || segs[2].Text != "I wonder if this is real." {
		t.Fatalf("thought wrong: %+v", segs[2])
	}
}

func TestClassifyNarrativeFallback(t *testing.T) {
	cases := []string{
		"The rain had not stopped for days.",
		"*unterminated thought",
		"(unbalanced action",
		"lowercase name: not a speaker",
	}
	for _, line := range cases {
		segs := segmentLines(line)
		if len(segs) != 1 {
			t.Fatalf("%q: expected 1 segment, got %d", line, len(segs))
		}
		if segs[0].Type != SegmentNarrative {
			t.Fatalf("%q: expected narrative, got %+v", line, segs[0])
		}
		if segs[0].Text != line {
			t.Fatalf("%q: narrative text modified: %q", line, segs[0].Text)
		}
	}
}

func TestSegmentOffsetsAndBlankLines(t *testing.T) {
	input := "First line.\n\nSecond line.\nMarcus: Hi."
	segs := segmentLines(input)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	// Offsets are half-open ranges into the input; the blank line emits no
	// segment but still advances the counter.
	if segs[0].StartPosition != 0 || segs[0].EndPosition != len("First line.") {
		t.Fatalf("segment 0 offsets wrong: %+v", segs[0])
	}
	if input[segs[1].StartPosition:segs[1].EndPosition] != "Second line." {
		t.Fatalf("segment 1 range does not cover its line: %+v", segs[1])
	}
	if input[segs[2].StartPosition:segs[2].EndPosition] != "Marcus: Hi." {
		t.Fatalf("segment 2 range does not cover its line: %+v", segs[2])
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].StartPosition < segs[i-1].EndPosition {
			t.Fatalf("segment ranges overlap: %+v then %+v", segs[i-1], segs[i])
		}
	}
}

func TestSegmentIDsDeriveFromTypeAndLine(t *testing.T) {
	segs := segmentLines("Narration here.\n[S1] Hi.")
	if segs[0].ID != "narrative-1" {
		t.Fatalf("unexpected id: %q", segs[0].ID)
	}
	if segs[1].ID != "dialogue-2" {
		t.Fatalf("unexpected id: %q", segs[1].ID)
	}
}
